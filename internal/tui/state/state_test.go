package state

import "testing"

func TestInsertThenDeleteRestoresText(t *testing.T) {
	original := []rune("example.com")
	for cursor := 0; cursor <= len(original); cursor++ {
		text, c := InsertRunes(original, cursor, []rune{'x'})
		if c != cursor+1 {
			t.Fatalf("cursor after insert at %d: got %d", cursor, c)
		}
		text, c = DeleteBefore(text, c)
		if string(text) != string(original) {
			t.Fatalf("insert+delete at %d changed text: %q", cursor, string(text))
		}
		if c != cursor {
			t.Fatalf("insert+delete at %d changed cursor: %d", cursor, c)
		}
	}
}

func TestInsertRunesDoesNotAliasInput(t *testing.T) {
	original := []rune("abcd")
	inserted, _ := InsertRunes(original, 2, []rune{'X'})
	if string(original) != "abcd" {
		t.Fatalf("input mutated: %q", string(original))
	}
	if string(inserted) != "abXcd" {
		t.Fatalf("unexpected result: %q", string(inserted))
	}
}

func TestDeleteBeforeAtStart(t *testing.T) {
	text, cursor := DeleteBefore([]rune("ab"), 0)
	if string(text) != "ab" || cursor != 0 {
		t.Fatalf("delete at start should be a no-op, got %q cursor=%d", string(text), cursor)
	}
}

func TestClampCursor(t *testing.T) {
	if got := ClampCursor(-3, 5); got != 0 {
		t.Fatalf("expected clamp to 0, got %d", got)
	}
	if got := ClampCursor(9, 5); got != 5 {
		t.Fatalf("expected clamp to 5, got %d", got)
	}
	if got := ClampCursor(5, 5); got != 5 {
		t.Fatalf("expected insertion point at end to be valid, got %d", got)
	}
}

func TestScrollNeverExceedsTagBound(t *testing.T) {
	for tagCount := 0; tagCount < 5; tagCount++ {
		offset := 0
		// A long arbitrary up/down sequence, applied with clamping the way
		// the model applies it.
		moves := []int{1, 1, 1, 1, -1, 1, 1, -1, -1, 1, 1, 1, 1, 1, -1}
		for _, move := range moves {
			offset = ClampScroll(offset+move, tagCount)
			if offset < 0 || offset > MaxScroll(tagCount) {
				t.Fatalf("offset %d escaped bounds for tagCount %d", offset, tagCount)
			}
		}
	}
}

func TestVisibleRange(t *testing.T) {
	cases := []struct {
		offset, capacity, total int
		wantStart, wantEnd      int
	}{
		{0, 5, 10, 0, 5},
		{7, 5, 10, 7, 10},
		{42, 5, 10, 9, 10},
		{0, 0, 10, 0, 0},
		{3, 5, 0, 0, 0},
	}
	for _, tc := range cases {
		start, end := VisibleRange(tc.offset, tc.capacity, tc.total)
		if start != tc.wantStart || end != tc.wantEnd {
			t.Errorf("VisibleRange(%d,%d,%d) = %d,%d want %d,%d",
				tc.offset, tc.capacity, tc.total, start, end, tc.wantStart, tc.wantEnd)
		}
	}
}

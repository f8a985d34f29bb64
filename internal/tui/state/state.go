package state

// InsertRunes places runes at the insertion point and returns the new text
// and cursor. The input slice is never mutated; models hold value copies.
func InsertRunes(text []rune, cursor int, runes []rune) ([]rune, int) {
	cursor = ClampCursor(cursor, len(text))
	out := make([]rune, 0, len(text)+len(runes))
	out = append(out, text[:cursor]...)
	out = append(out, runes...)
	out = append(out, text[cursor:]...)
	return out, cursor + len(runes)
}

// DeleteBefore removes the rune preceding the insertion point. At position
// zero it is a no-op.
func DeleteBefore(text []rune, cursor int) ([]rune, int) {
	cursor = ClampCursor(cursor, len(text))
	if cursor == 0 {
		return text, 0
	}
	out := make([]rune, 0, len(text)-1)
	out = append(out, text[:cursor-1]...)
	out = append(out, text[cursor:]...)
	return out, cursor - 1
}

// ClampCursor keeps an insertion point inside [0, length].
func ClampCursor(cursor, length int) int {
	if cursor < 0 {
		return 0
	}
	if cursor > length {
		return length
	}
	return cursor
}

// MaxScroll is the largest valid first-visible-row index for a list of
// tagCount rows.
func MaxScroll(tagCount int) int {
	if tagCount <= 1 {
		return 0
	}
	return tagCount - 1
}

// ClampScroll keeps a scroll offset inside [0, MaxScroll(tagCount)].
func ClampScroll(offset, tagCount int) int {
	if offset < 0 {
		return 0
	}
	if max := MaxScroll(tagCount); offset > max {
		return max
	}
	return offset
}

// VisibleRange returns the half-open row window [start, end) shown by a
// panel with the given capacity.
func VisibleRange(offset, capacity, total int) (int, int) {
	offset = ClampScroll(offset, total)
	if capacity <= 0 || total == 0 {
		return offset, offset
	}
	end := offset + capacity
	if end > total {
		end = total
	}
	return offset, end
}

package rules

import "bytes"

// lastOpeningBrace returns the byte offset of the last '{' inside the
// half-open range [start, start+length) of text, or -1 when the range
// is empty, out of bounds, or contains no opening brace. Offsets coming
// from the syntax tree are byte offsets, so the scan works on bytes,
// never on runes.
func lastOpeningBrace(text []byte, start, length int) int {
	if start < 0 || length <= 0 {
		return -1
	}
	end := start + length
	if start >= len(text) || end > len(text) {
		return -1
	}
	idx := bytes.LastIndexByte(text[start:end], '{')
	if idx < 0 {
		return -1
	}
	return start + idx
}

package types

import (
	"bytes"
	"sort"
)

// LineIndex maps byte offsets in a file's content to line and column
// numbers. Lines and columns are 1-indexed (first line is 1, first column
// is 1). Offsets at or beyond the end of content clamp to the final
// position, so callers never receive an out-of-range coordinate.
type LineIndex struct {
	content []byte
	starts  []int // byte offset of each line start; starts[0] == 0
}

// NewLineIndex scans content once and records the start offset of every
// line. Building is O(len(content)); lookups are O(log lines).
func NewLineIndex(content []byte) *LineIndex {
	starts := make([]int, 1, bytes.Count(content, []byte{'\n'})+1)
	starts[0] = 0
	for i, b := range content {
		if b == '\n' {
			starts = append(starts, i+1)
		}
	}
	return &LineIndex{content: content, starts: starts}
}

// NumLines returns the number of lines. Content ending in a newline
// counts a final empty line; empty content has one empty line.
func (x *LineIndex) NumLines() int {
	return len(x.starts)
}

// LineOf returns the 1-based line containing byteOffset.
func (x *LineIndex) LineOf(byteOffset int) int {
	off := x.clamp(byteOffset)
	return sort.Search(len(x.starts), func(i int) bool {
		return x.starts[i] > off
	})
}

// PositionOf returns the 1-based line and column of byteOffset.
func (x *LineIndex) PositionOf(byteOffset int) (line, column int) {
	off := x.clamp(byteOffset)
	line = x.LineOf(off)
	column = off - x.starts[line-1] + 1
	return line, column
}

// LineRange returns the half-open byte range [start, end) of the given
// 1-based line, excluding its terminator ("\n" or "\r\n"). Out-of-range
// lines yield an empty range.
func (x *LineIndex) LineRange(line int) (start, end int) {
	if line < 1 || line > len(x.starts) {
		return 0, 0
	}
	start = x.starts[line-1]
	if line == len(x.starts) {
		end = len(x.content)
	} else {
		end = x.starts[line] - 1
	}
	if end > start && x.content[end-1] == '\r' {
		end--
	}
	return start, end
}

func (x *LineIndex) clamp(byteOffset int) int {
	if byteOffset < 0 {
		return 0
	}
	if byteOffset > len(x.content) {
		return len(x.content)
	}
	return byteOffset
}

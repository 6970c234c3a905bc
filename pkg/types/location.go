package types

import "fmt"

// Location is a single point in a source file: the byte offset within the
// file's content plus its 1-based line and column.
type Location struct {
	File   string `json:"file"`
	Offset int    `json:"offset"`
	Line   int    `json:"line"`
	Column int    `json:"column"`
}

// String formats as "path:line:column".
func (l Location) String() string {
	return fmt.Sprintf("%s:%d:%d", l.File, l.Line, l.Column)
}

package input

import "fmt"

// Position is the line and column a byte offset into a source resolves to,
// as computed by Locate. Offset is kept alongside for diagnostics.
type Position struct {
	Filename string
	Offset   int
	Line     int
	Column   int
}

// String formats the position as file:line:column, or line:column when the
// source is unnamed.
func (p Position) String() string {
	if p.Filename != "" {
		return fmt.Sprintf("%s:%d:%d", p.Filename, p.Line, p.Column)
	}
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// Locate converts a byte offset into src to a 1-based line and column.
// Columns count bytes, not runes. Offsets past the end are clamped.
func Locate(filename string, src []byte, offset int) Position {
	offset = max(0, min(offset, len(src)))
	pos := Position{Filename: filename, Offset: offset, Line: 1, Column: 1}
	for _, ch := range src[:offset] {
		if ch == '\n' {
			pos.Line++
			pos.Column = 1
		} else {
			pos.Column++
		}
	}
	return pos
}

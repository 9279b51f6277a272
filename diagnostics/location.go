// Package diagnostics provides source-location annotation and an
// accumulating error list shared by the parser and the analyzer (§6.3, §7).
package diagnostics

import "fmt"

// Location annotates a span of source text: a filename plus first/last
// line/column. The zero value means "no location known".
type Location struct {
	Filename                             string
	FirstLine, FirstColumn               int
	LastLine, LastColumn                 int
}

// Known reports whether the location carries any positional information.
func (l Location) Known() bool {
	return l.FirstLine != 0
}

// Single returns a location spanning a single point, with no explicit end.
func Single(filename string, line, col int) Location {
	return Location{Filename: filename, FirstLine: line, FirstColumn: col, LastLine: line, LastColumn: col}
}

// Span returns a location spanning from (firstLine, firstCol) to
// (lastLine, lastCol).
func Span(filename string, firstLine, firstCol, lastLine, lastCol int) Location {
	return Location{
		Filename:    filename,
		FirstLine:   firstLine,
		FirstColumn: firstCol,
		LastLine:    lastLine,
		LastColumn:  lastCol,
	}
}

// Union returns the smallest location covering both a and b. If either is
// unknown, the other is returned unchanged.
func Union(a, b Location) Location {
	if !a.Known() {
		return b
	}
	if !b.Known() {
		return a
	}
	out := a
	if b.FirstLine < out.FirstLine || (b.FirstLine == out.FirstLine && b.FirstColumn < out.FirstColumn) {
		out.FirstLine, out.FirstColumn = b.FirstLine, b.FirstColumn
	}
	if b.LastLine > out.LastLine || (b.LastLine == out.LastLine && b.LastColumn > out.LastColumn) {
		out.LastLine, out.LastColumn = b.LastLine, b.LastColumn
	}
	return out
}

// String renders the location per §6.3:
// filename:line[:col][..line[:col]].
func (l Location) String() string {
	if !l.Known() {
		return "<unknown>"
	}
	start := fmt.Sprintf("%d", l.FirstLine)
	if l.FirstColumn != 0 {
		start += fmt.Sprintf(":%d", l.FirstColumn)
	}
	if l.LastLine == l.FirstLine && l.LastColumn == l.FirstColumn {
		return fmt.Sprintf("%s:%s", l.Filename, start)
	}
	end := fmt.Sprintf("%d", l.LastLine)
	if l.LastColumn != 0 {
		end += fmt.Sprintf(":%d", l.LastColumn)
	}
	return fmt.Sprintf("%s:%s..%s", l.Filename, start, end)
}

package tree

import "github.com/jvanstraten/libcqasm/diagnostics"

// Location returns the node's source-location annotation, if any, per
// §3.5 ("Source-location annotations are attached at parse time and
// copied by the analyzer to semantic nodes derived from them").
func (b *Base) Location() diagnostics.Location {
	loc, _ := Get[diagnostics.Location](&b.anns)
	return loc
}

// SetLocation attaches loc as the node's source-location annotation.
func (b *Base) SetLocation(loc diagnostics.Location) {
	Set(&b.anns, loc)
}

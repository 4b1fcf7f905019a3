package extract

import "strings"

// NotFound is the column index of a field that could not be resolved.
const NotFound = -1

// Field describes one semantic column: the header synonyms that identify it
// and where it sits in the standard layout.
type Field struct {
	Name     string
	Synonyms []string
	// Position is the zero-based column in the standard layout. When FromEnd
	// is set it counts back from the last column instead (1 = last).
	Position int
	FromEnd  bool
	Optional bool
}

// Resolve returns the column of the first synonym found in headers. An exact
// label match beats a substring match for the same synonym; earlier synonyms
// beat later ones.
func Resolve(headers []string, f Field) int {
	for _, syn := range f.Synonyms {
		syn = strings.ToLower(syn)
		if i := indexOf(headers, func(h string) bool { return h == syn }); i != NotFound {
			return i
		}
		if i := indexOf(headers, func(h string) bool { return strings.Contains(h, syn) }); i != NotFound {
			return i
		}
	}
	return NotFound
}

func indexOf(headers []string, match func(string) bool) int {
	for i, h := range headers {
		if match(h) {
			return i
		}
	}
	return NotFound
}

// position returns the field's standard-layout column for a table width
// columns wide.
func (f Field) position(width int) int {
	idx := f.Position
	if f.FromEnd {
		idx = width - f.Position
	}
	if idx < 0 || idx >= width {
		return NotFound
	}
	return idx
}

// Columns maps field names to resolved column indexes.
type Columns map[string]int

// Index returns the column of name, or NotFound.
func (c Columns) Index(name string) int {
	if i, ok := c[name]; ok {
		return i
	}
	return NotFound
}

// ResolveColumns resolves every field against t using t's strategy.
func ResolveColumns(kind Kind, t Table, fields []Field) (Columns, error) {
	width := t.Width()
	cols := make(Columns, len(fields))
	var missing []string
	// Positional columns are claimed in field order; a layout too narrow to
	// give a field its own column leaves that field unresolved.
	claimed := make(map[int]bool, len(fields))
	for _, f := range fields {
		idx := NotFound
		switch t.Strategy {
		case HeaderBased:
			idx = Resolve(t.Headers, f)
		case PositionalFallback:
			idx = f.position(width)
			if claimed[idx] {
				idx = NotFound
			}
			if idx != NotFound {
				claimed[idx] = true
			}
		}
		if idx == NotFound && !f.Optional {
			missing = append(missing, f.Name)
		}
		cols[f.Name] = idx
	}
	if len(missing) > 0 {
		return nil, &ColumnResolutionError{Table: kind, Missing: missing}
	}
	return cols, nil
}

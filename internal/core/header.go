package core

// HeaderIndex maps column names to their position in a row. Names are kept
// exactly as they appear in the header; lookups are case-sensitive.
type HeaderIndex map[string]int

// MakeHeaderIndex creates a HeaderIndex from a header row.
// This should be called once per stream, then reused for all rows.
// When a name repeats, the first occurrence wins.
func MakeHeaderIndex(header []string) HeaderIndex {
	idx := make(HeaderIndex, len(header))
	for i, h := range header {
		if _, dup := idx[h]; dup {
			continue
		}
		idx[h] = i
	}
	return idx
}

// Resolve returns the position of each name, in order. The first name that
// is not present yields a *MissingColumnError.
func (h HeaderIndex) Resolve(names ...string) ([]int, error) {
	positions := make([]int, len(names))
	for i, name := range names {
		pos, ok := h[name]
		if !ok {
			return nil, &MissingColumnError{Name: name}
		}
		positions[i] = pos
	}
	return positions, nil
}

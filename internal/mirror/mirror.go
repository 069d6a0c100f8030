package mirror

import "fmt"

// IndexError reports a mirror operation given an index outside the current
// mirror bounds. Indices come from a consistent mutation log, so hitting one
// is a caller bug and must propagate.
type IndexError struct {
	Op    string
	Index int
	Len   int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("mirror: %s index %d out of range (len %d)", e.Op, e.Index, e.Len)
}

// Mirror maintains a flat list of popup entries index-aligned with a logical
// item list. The logical list is read-only to this component; the mirror
// owns only the entries it creates by wrapping.
type Mirror struct {
	entries []Entry
}

func New() *Mirror {
	return &Mirror{}
}

// Len returns the current number of mirrored entries.
func (m *Mirror) Len() int {
	return len(m.entries)
}

// Entries returns a copy of the mirrored entry list in order.
func (m *Mirror) Entries() []Entry {
	out := make([]Entry, len(m.entries))
	copy(out, m.entries)
	return out
}

// EntryAt returns the entry at index i.
func (m *Mirror) EntryAt(i int) (Entry, error) {
	if i < 0 || i >= len(m.entries) {
		return nil, &IndexError{Op: "get", Index: i, Len: len(m.entries)}
	}
	return m.entries[i], nil
}

// Reset discards the mirror and rebuilds it from the logical list in a
// single pass. Safe to call at any time; template reapplication relies on
// that.
func (m *Mirror) Reset(logical []interface{}) {
	m.entries = make([]Entry, 0, len(logical))
	for _, item := range logical {
		m.entries = append(m.entries, wrap(item))
	}
}

// ApplyInsert mirrors an insertion of item at index i.
func (m *Mirror) ApplyInsert(i int, item interface{}) error {
	if i < 0 || i > len(m.entries) {
		return &IndexError{Op: "insert", Index: i, Len: len(m.entries)}
	}

	m.entries = append(m.entries, nil)
	copy(m.entries[i+1:], m.entries[i:])
	m.entries[i] = wrap(item)
	return nil
}

// ApplyRemove mirrors a removal at index i.
func (m *Mirror) ApplyRemove(i int) error {
	if i < 0 || i >= len(m.entries) {
		return &IndexError{Op: "remove", Index: i, Len: len(m.entries)}
	}

	copy(m.entries[i:], m.entries[i+1:])
	m.entries[len(m.entries)-1] = nil
	m.entries = m.entries[:len(m.entries)-1]
	return nil
}

// ApplyReplace mirrors a replacement at index i. A previously-wrapped entry
// is discarded and rebuilt, never mutated in place, so wrapper identity
// always matches current content.
func (m *Mirror) ApplyReplace(i int, item interface{}) error {
	if err := m.ApplyRemove(i); err != nil {
		return &IndexError{Op: "replace", Index: i, Len: len(m.entries)}
	}
	return m.ApplyInsert(i, item)
}

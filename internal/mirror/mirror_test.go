package mirror

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubEntry satisfies the popup-entry contract directly.
type stubEntry struct {
	caption string
	invoked int
}

func (s *stubEntry) Caption() string { return s.caption }
func (s *stubEntry) Invoke()         { s.invoked++ }

func TestResetWrapsOnlyWhereNeeded(t *testing.T) {
	m := New()
	ready := &stubEntry{caption: "Open"}
	m.Reset([]interface{}{ready, "raw caption", 42})

	require.Equal(t, 3, m.Len())

	first, err := m.EntryAt(0)
	require.NoError(t, err)
	assert.Same(t, ready, first, "pre-built entries are mirrored by reference")

	second, err := m.EntryAt(1)
	require.NoError(t, err)
	wrapped, ok := second.(*DataEntry)
	require.True(t, ok, "opaque data gets a wrapper entry")
	assert.Equal(t, "raw caption", wrapped.Data)
	assert.Equal(t, "raw caption", wrapped.Caption())

	third, err := m.EntryAt(2)
	require.NoError(t, err)
	assert.Equal(t, "42", third.Caption())
}

func TestResetIsIdempotent(t *testing.T) {
	logical := []interface{}{"a", "b", &stubEntry{caption: "c"}}

	m := New()
	m.Reset(logical)
	once := m.Entries()

	m.Reset(logical)
	twice := m.Entries()

	require.Equal(t, len(once), len(twice))
	for i := range once {
		assert.Equal(t, once[i].Caption(), twice[i].Caption())
	}
}

func TestMirrorTracksLogicalMutations(t *testing.T) {
	logical := []interface{}{"new", "open"}
	m := New()
	m.Reset(logical)

	// Insert at the end.
	logical = append(logical, "quit")
	require.NoError(t, m.ApplyInsert(2, logical[2]))
	assertAligned(t, m, logical)

	// Insert in the middle.
	logical = []interface{}{"new", "save", "open", "quit"}
	require.NoError(t, m.ApplyInsert(1, logical[1]))
	assertAligned(t, m, logical)

	// Remove.
	logical = []interface{}{"new", "open", "quit"}
	require.NoError(t, m.ApplyRemove(1))
	assertAligned(t, m, logical)

	// Replace.
	logical[2] = "exit"
	require.NoError(t, m.ApplyReplace(2, logical[2]))
	assertAligned(t, m, logical)
}

func assertAligned(t *testing.T, m *Mirror, logical []interface{}) {
	t.Helper()
	require.Equal(t, len(logical), m.Len(), "mirror length must match logical length")
	for i, item := range logical {
		entry, err := m.EntryAt(i)
		require.NoError(t, err)
		if ready, ok := item.(Entry); ok {
			assert.Same(t, ready, entry, "index %d", i)
		} else {
			wrapped, ok := entry.(*DataEntry)
			require.True(t, ok, "index %d", i)
			assert.Equal(t, item, wrapped.Data, "index %d", i)
		}
	}
}

func TestReplaceRebuildsWrapper(t *testing.T) {
	m := New()
	m.Reset([]interface{}{"stale"})

	before, err := m.EntryAt(0)
	require.NoError(t, err)

	require.NoError(t, m.ApplyReplace(0, "fresh"))

	after, err := m.EntryAt(0)
	require.NoError(t, err)
	assert.NotSame(t, before, after, "replace must discard the old wrapper")
	assert.Equal(t, "fresh", after.Caption())
	assert.Equal(t, 1, m.Len())
}

func TestIndexErrors(t *testing.T) {
	m := New()
	m.Reset([]interface{}{"only"})

	tests := []struct {
		name string
		call func() error
		op   string
	}{
		{"insert past end", func() error { return m.ApplyInsert(2, "x") }, "insert"},
		{"insert negative", func() error { return m.ApplyInsert(-1, "x") }, "insert"},
		{"remove past end", func() error { return m.ApplyRemove(1) }, "remove"},
		{"remove negative", func() error { return m.ApplyRemove(-1) }, "remove"},
		{"replace past end", func() error { return m.ApplyReplace(1, "x") }, "replace"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.call()
			require.Error(t, err)

			var idxErr *IndexError
			require.ErrorAs(t, err, &idxErr)
			assert.Equal(t, tt.op, idxErr.Op)
			assert.Equal(t, 1, m.Len(), "a failed operation must not change the mirror")
		})
	}
}

func TestInsertAtLenAppends(t *testing.T) {
	m := New()
	require.NoError(t, m.ApplyInsert(0, "first"))
	require.NoError(t, m.ApplyInsert(1, "second"))
	require.Equal(t, 2, m.Len())

	entry, err := m.EntryAt(1)
	require.NoError(t, err)
	assert.Equal(t, "second", entry.Caption())
}

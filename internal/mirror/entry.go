package mirror

import "fmt"

// Entry is the capability set a popup presenter needs from one menu entry.
// Logical items that already satisfy it are mirrored by reference; anything
// else gets wrapped.
type Entry interface {
	Caption() string
	Invoke()
}

// DataEntry carries an opaque logical item that does not satisfy the Entry
// contract. The item is held as-is for downstream rendering; invoking a
// data-only entry does nothing.
type DataEntry struct {
	Data interface{}
}

func (e *DataEntry) Caption() string {
	return fmt.Sprint(e.Data)
}

func (e *DataEntry) Invoke() {}

// wrap returns item itself when it satisfies the popup-entry contract, or a
// fresh wrapper around it otherwise.
func wrap(item interface{}) Entry {
	if entry, ok := item.(Entry); ok {
		return entry
	}
	return &DataEntry{Data: item}
}

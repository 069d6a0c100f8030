package mnemonic

// Field tracks one caption property and re-parses it whenever the value
// changes from outside. Writes that originate from the parser's own output
// (removing the accelerator, re-applying display text) set an internal flag
// so the change does not trigger another parse cycle.
type Field struct {
	parsed   Parsed
	internal bool
	onParsed func(Parsed)
}

// NewField creates a caption field. onParsed, if non-nil, is invoked after
// every externally-triggered parse.
func NewField(onParsed func(Parsed)) *Field {
	return &Field{
		parsed:   Parsed{AccentIndex: -1},
		onParsed: onParsed,
	}
}

// Set records a caption change. Externally-originated changes are parsed;
// changes flagged as internal pass through untouched.
func (f *Field) Set(caption string) {
	if f.internal {
		f.internal = false
		return
	}

	f.parsed = Parse(caption)
	if f.onParsed != nil {
		f.onParsed(f.parsed)
	}
}

// StripAccelerator removes the accelerator designation and returns the plain
// caption. The next Set call carrying this value is treated as internal.
func (f *Field) StripAccelerator() string {
	restored := Restore(f.parsed)
	f.parsed = Parsed{DisplayText: restored, AccentIndex: -1}
	f.internal = true
	return restored
}

// Parsed returns the current parse result.
func (f *Field) Parsed() Parsed {
	return f.parsed
}

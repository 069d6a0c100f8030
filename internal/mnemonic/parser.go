package mnemonic

import "strings"

// Marker designates the caption character whose successor becomes the
// keyboard accelerator.
const Marker = '^'

// Parsed holds the derived caption state for one parse of a raw caption.
type Parsed struct {
	// DisplayText is the caption with the first marker removed.
	DisplayText string

	// AccentIndex is the rune index of the accent character within
	// DisplayText, or -1 when the caption carries no accelerator.
	AccentIndex int

	// Original is the raw caption including its marker, kept for later
	// restoration and re-parsing. Empty when the caption had no marker.
	Original string
}

// Run is one span of a rendered caption.
type Run struct {
	Text      string
	Underline bool
}

// Parse extracts the accelerator designation from a raw caption.
//
// Only the first marker is honored. A trailing marker has no character to
// accent and is dropped silently. Any marker after the first stays in the
// display text verbatim.
func Parse(caption string) Parsed {
	if !strings.ContainsRune(caption, Marker) {
		return Parsed{DisplayText: caption, AccentIndex: -1}
	}

	runes := []rune(caption)
	first := -1
	for i, r := range runes {
		if r == Marker {
			first = i
			break
		}
	}

	display := string(runes[:first]) + string(runes[first+1:])
	if first == len(runes)-1 {
		return Parsed{DisplayText: display, AccentIndex: -1, Original: caption}
	}

	return Parsed{DisplayText: display, AccentIndex: first, Original: caption}
}

// HasAccent reports whether an accent character was designated.
func (p Parsed) HasAccent() bool {
	return p.AccentIndex >= 0
}

// AccentRune returns the designated accelerator character, or 0 when none
// was designated.
func (p Parsed) AccentRune() rune {
	if !p.HasAccent() {
		return 0
	}
	return []rune(p.DisplayText)[p.AccentIndex]
}

// Render produces the display runs for a parsed caption: a single run when
// no accent exists, otherwise prefix, underlined accent character and
// suffix. Empty runs are omitted.
func Render(p Parsed) []Run {
	if !p.HasAccent() {
		if p.DisplayText == "" {
			return nil
		}
		return []Run{{Text: p.DisplayText}}
	}

	runes := []rune(p.DisplayText)
	runs := make([]Run, 0, 3)

	if prefix := string(runes[:p.AccentIndex]); prefix != "" {
		runs = append(runs, Run{Text: prefix})
	}
	runs = append(runs, Run{Text: string(runes[p.AccentIndex]), Underline: true})
	if suffix := string(runes[p.AccentIndex+1:]); suffix != "" {
		runs = append(runs, Run{Text: suffix})
	}

	return runs
}

// Restore returns the marker-stripped caption for the remove-accelerator
// operation. Captions that never carried a marker come back unchanged.
func Restore(p Parsed) string {
	if p.Original == "" {
		return p.DisplayText
	}
	return Parse(p.Original).DisplayText
}

package mnemonic

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name        string
		caption     string
		displayText string
		accentIndex int
		original    string
	}{
		{
			name:        "no marker is a no-op",
			caption:     "Open",
			displayText: "Open",
			accentIndex: -1,
		},
		{
			name:        "empty caption",
			caption:     "",
			displayText: "",
			accentIndex: -1,
		},
		{
			name:        "leading marker accents the first character",
			caption:     "^New",
			displayText: "New",
			accentIndex: 0,
			original:    "^New",
		},
		{
			name:        "interior marker",
			caption:     "Save ^As",
			displayText: "Save As",
			accentIndex: 5,
			original:    "Save ^As",
		},
		{
			name:        "trailing marker is dropped silently",
			caption:     "Save^",
			displayText: "Save",
			accentIndex: -1,
			original:    "Save^",
		},
		{
			name:        "first marker wins, later markers stay literal",
			caption:     "^Cut ^Copy",
			displayText: "Cut ^Copy",
			accentIndex: 0,
			original:    "^Cut ^Copy",
		},
		{
			name:        "multibyte runes before the marker",
			caption:     "Über^alles",
			displayText: "Überalles",
			accentIndex: 4,
			original:    "Über^alles",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			parsed := Parse(tt.caption)
			assert.Equal(t, tt.displayText, parsed.DisplayText)
			assert.Equal(t, tt.accentIndex, parsed.AccentIndex)
			assert.Equal(t, tt.original, parsed.Original)
		})
	}
}

func TestParseAccentRune(t *testing.T) {
	parsed := Parse("^New")
	require.True(t, parsed.HasAccent())
	assert.Equal(t, 'N', parsed.AccentRune())

	plain := Parse("New")
	assert.False(t, plain.HasAccent())
	assert.Equal(t, rune(0), plain.AccentRune())
}

func TestRender(t *testing.T) {
	t.Run("no accent yields a single run", func(t *testing.T) {
		runs := Render(Parse("Open"))
		require.Len(t, runs, 1)
		assert.Equal(t, Run{Text: "Open"}, runs[0])
	})

	t.Run("empty caption yields no runs", func(t *testing.T) {
		assert.Empty(t, Render(Parse("")))
	})

	t.Run("leading accent omits the empty prefix", func(t *testing.T) {
		runs := Render(Parse("^New"))
		require.Len(t, runs, 2)
		assert.Equal(t, Run{Text: "N", Underline: true}, runs[0])
		assert.Equal(t, Run{Text: "ew"}, runs[1])
	})

	t.Run("interior accent yields three runs", func(t *testing.T) {
		runs := Render(Parse("Save ^As"))
		require.Len(t, runs, 3)
		assert.Equal(t, Run{Text: "Save "}, runs[0])
		assert.Equal(t, Run{Text: "A", Underline: true}, runs[1])
		assert.Equal(t, Run{Text: "s"}, runs[2])
	})

	t.Run("trailing accent omits the empty suffix", func(t *testing.T) {
		runs := Render(Parse("Quit ^Q"))
		require.Len(t, runs, 2)
		assert.Equal(t, Run{Text: "Quit "}, runs[0])
		assert.Equal(t, Run{Text: "Q", Underline: true}, runs[1])
	})
}

func TestRestoreRoundTrip(t *testing.T) {
	tests := []struct {
		caption  string
		restored string
	}{
		{"^New", "New"},
		{"Save ^As", "Save As"},
		{"Save^", "Save"},
		{"Open", "Open"},
		{"", ""},
		{"^Cut ^Copy", "Cut ^Copy"},
	}

	for _, tt := range tests {
		t.Run(tt.caption, func(t *testing.T) {
			assert.Equal(t, tt.restored, Restore(Parse(tt.caption)))
		})
	}
}

func TestFieldReparsesExternalChangesOnly(t *testing.T) {
	var parses []Parsed
	field := NewField(func(p Parsed) {
		parses = append(parses, p)
	})

	field.Set("^File")
	require.Len(t, parses, 1)
	assert.Equal(t, "File", parses[0].DisplayText)
	assert.Equal(t, 0, parses[0].AccentIndex)

	// Removing the accelerator writes the caption back; that write must not
	// trigger another parse.
	restored := field.StripAccelerator()
	assert.Equal(t, "File", restored)
	field.Set(restored)
	assert.Len(t, parses, 1)
	assert.Equal(t, -1, field.Parsed().AccentIndex)

	// The guard is one-shot: the next external change parses again.
	field.Set("^Edit")
	require.Len(t, parses, 2)
	assert.Equal(t, "Edit", parses[1].DisplayText)
}

package gui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/widget"

	"flyoutkit/internal/mnemonic"
)

// captionSegments converts a parsed caption into rich-text segments, with
// the accent character underlined.
func captionSegments(p mnemonic.Parsed) []widget.RichTextSegment {
	runs := mnemonic.Render(p)
	segments := make([]widget.RichTextSegment, 0, len(runs))
	for _, run := range runs {
		segments = append(segments, &widget.TextSegment{
			Text: run.Text,
			Style: widget.RichTextStyle{
				Inline:    true,
				TextStyle: fyne.TextStyle{Underline: run.Underline},
			},
		})
	}
	return segments
}

// newCaptionText builds the rich-text widget for a parsed caption.
func newCaptionText(p mnemonic.Parsed) *widget.RichText {
	text := widget.NewRichText(captionSegments(p)...)
	return text
}

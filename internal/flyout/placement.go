package flyout

import "fyne.io/fyne/v2"

// PlacementMode is the preferred side of the anchor item where a popup
// should appear.
type PlacementMode int

const (
	// PlacementAuto lets the popup presenter choose its own position.
	PlacementAuto PlacementMode = iota
	PlacementTop
	PlacementBottom
	PlacementLeft
	PlacementRight
)

func (m PlacementMode) String() string {
	switch m {
	case PlacementTop:
		return "top"
	case PlacementBottom:
		return "bottom"
	case PlacementLeft:
		return "left"
	case PlacementRight:
		return "right"
	default:
		return "auto"
	}
}

// ParsePlacementMode maps a configuration string to a placement mode,
// defaulting to auto for anything unrecognized.
func ParsePlacementMode(name string) PlacementMode {
	switch name {
	case "top":
		return PlacementTop
	case "bottom":
		return PlacementBottom
	case "left":
		return PlacementLeft
	case "right":
		return PlacementRight
	default:
		return PlacementAuto
	}
}

// Rect is a screen-space rectangle used for anchor geometry and
// pointer-containment queries.
type Rect struct {
	Pos  fyne.Position
	Size fyne.Size
}

// Contains reports whether the screen point p falls inside the rectangle.
func (r Rect) Contains(p fyne.Position) bool {
	return p.X >= r.Pos.X && p.X < r.Pos.X+r.Size.Width &&
		p.Y >= r.Pos.Y && p.Y < r.Pos.Y+r.Size.Height
}

// Resolver decides where a popup is shown relative to its anchor item and
// whether the primary position must be flipped to stay on-screen.
type Resolver struct {
	Mode   PlacementMode
	Offset float32
}

// Primary returns the popup's initial position for the anchor rectangle.
// The second result is false when the popup should choose its own position.
func (r Resolver) Primary(item Rect) (fyne.Position, bool) {
	switch r.Mode {
	case PlacementBottom:
		// Fixed offset below the item's bottom-left corner.
		return fyne.NewPos(item.Pos.X, item.Pos.Y+item.Size.Height+r.Offset), true
	case PlacementRight:
		// Fixed offset past the item's top-right corner.
		return fyne.NewPos(item.Pos.X+item.Size.Width+r.Offset, item.Pos.Y), true
	default:
		return fyne.Position{}, false
	}
}

// Overflows reports whether a popup of the given realized size, placed at
// the primary position, would leave the visible screen region on the axis
// implied by the placement mode.
func (r Resolver) Overflows(popup fyne.Size, screen fyne.Size, origin fyne.Position) bool {
	switch r.Mode {
	case PlacementTop, PlacementBottom:
		return popup.Width > screen.Width-origin.X
	case PlacementLeft, PlacementRight:
		return popup.Height > screen.Height-origin.Y
	default:
		return false
	}
}

// Flip re-anchors the popup to the opposite corner of the item: for
// top/bottom placement the popup's right edge aligns with the item's right
// edge, for left/right placement its bottom edge aligns with the item's
// bottom edge.
func (r Resolver) Flip(item Rect, popup fyne.Size) fyne.Position {
	switch r.Mode {
	case PlacementBottom:
		return fyne.NewPos(item.Pos.X+item.Size.Width-popup.Width, item.Pos.Y+item.Size.Height+r.Offset)
	case PlacementTop:
		return fyne.NewPos(item.Pos.X+item.Size.Width-popup.Width, item.Pos.Y-popup.Height-r.Offset)
	case PlacementRight:
		return fyne.NewPos(item.Pos.X+item.Size.Width+r.Offset, item.Pos.Y+item.Size.Height-popup.Height)
	case PlacementLeft:
		return fyne.NewPos(item.Pos.X-popup.Width-r.Offset, item.Pos.Y+item.Size.Height-popup.Height)
	default:
		return item.Pos
	}
}

package flyout

import (
	"fyne.io/fyne/v2"

	"flyoutkit/internal/logger"
	"flyoutkit/internal/mirror"
	"flyoutkit/internal/mnemonic"
)

// State is the popup lifecycle state of one menu item.
type State int

const (
	StateClosed State = iota
	// StateOpening covers the window between the show request and the
	// popup's first layout pass.
	StateOpening
	StateOpen
)

func (s State) String() string {
	switch s {
	case StateOpening:
		return "opening"
	case StateOpen:
		return "open"
	default:
		return "closed"
	}
}

// PopupHost presents the flyout popup for one item. Show may synchronously
// trigger the controller's OnOpened once the popup has laid out.
type PopupHost interface {
	// ShowAt shows the popup at an explicit screen position.
	ShowAt(pos fyne.Position)
	// Show shows the popup at the presenter's own default position.
	Show()
	// MoveTo repositions an already-shown popup.
	MoveTo(pos fyne.Position)
	// Hide dismisses the popup.
	Hide()
	// Size returns the popup's realized size after its layout pass; the
	// second result is false while no layout has happened yet.
	Size() (fyne.Size, bool)
}

// ViewAnchor exposes the bound view's geometry in screen space. Injected so
// placement stays testable without a display.
type ViewAnchor interface {
	ScreenOrigin() fyne.Position
	Size() fyne.Size
	// ScreenSize is the visible screen or window region the popup must
	// stay inside.
	ScreenSize() fyne.Size
}

// ItemController owns one menu item's open/closed lifecycle: it attaches to
// the item mirror, resolves popup placement, and answers pointer-containment
// queries for sibling coordination. All operations run on the UI thread.
type ItemController struct {
	menu *Menu
	log  logger.Logger

	host   PopupHost
	anchor ViewAnchor

	caption       *mnemonic.Field
	captionChange func(mnemonic.Parsed)
	items         *mirror.Mirror

	state        State
	repositioned bool
	bounds       Rect
}

func newItemController(menu *Menu, caption string, log logger.Logger) *ItemController {
	c := &ItemController{
		menu:  menu,
		log:   log,
		items: mirror.New(),
	}
	c.caption = mnemonic.NewField(func(p mnemonic.Parsed) {
		if c.captionChange != nil {
			c.captionChange(p)
		}
	})
	c.caption.Set(caption)
	return c
}

// Attach binds the controller to its popup presenter and anchor view.
// Called when the visual template is (re)applied; repeated attach is
// tolerated and rebinds to the latest collaborators.
func (c *ItemController) Attach(host PopupHost, anchor ViewAnchor) {
	c.host = host
	c.anchor = anchor
	c.RecomputeBounds()

	c.log.Debug("ItemController", "attached", map[string]interface{}{
		"caption": c.caption.Parsed().DisplayText,
	})
}

// Detach unbinds the collaborators. An open popup is treated as closed; any
// in-flight placement decision becomes moot.
func (c *ItemController) Detach() {
	if c.state != StateClosed {
		c.OnClosed()
	}
	c.host = nil
	c.anchor = nil
	c.bounds = Rect{}
}

// Open requests the popup to show at the primary position for the menu's
// placement mode. Before template attachment this is a logged no-op.
func (c *ItemController) Open() {
	if c.host == nil || c.anchor == nil {
		c.log.Debug("ItemController", "open before attach ignored", nil)
		return
	}
	if c.state != StateClosed {
		return
	}

	c.RecomputeBounds()
	c.state = StateOpening

	resolver := c.menu.resolver()
	if pos, ok := resolver.Primary(c.bounds); ok {
		c.host.ShowAt(pos)
	} else {
		c.host.Show()
	}
}

// OnOpened is invoked by the popup host once the popup's layout pass has
// completed. It evaluates overflow at the primary position and flips the
// popup to the opposite anchor corner at most once per open gesture.
func (c *ItemController) OnOpened() {
	if c.host == nil || c.anchor == nil {
		return
	}
	if c.state == StateClosed {
		// The popup was closed while the decision was pending.
		return
	}

	resolver := c.menu.resolver()
	size, realized := c.host.Size()
	switch {
	case !realized:
		// Overflow cannot be evaluated without a size; the popup stays at
		// its primary position.
		c.log.Debug("ItemController", "popup size unavailable, skipping reposition", nil)
	case !c.repositioned && resolver.Overflows(size, c.anchor.ScreenSize(), c.anchor.ScreenOrigin()):
		// The flag must be set before moving the popup: MoveTo can fire a
		// nested open notification, and the flip must not run twice.
		c.repositioned = true
		flipped := resolver.Flip(c.bounds, size)
		c.host.MoveTo(flipped)

		c.log.Debug("ItemController", "popup repositioned", map[string]interface{}{
			"mode": resolver.Mode.String(),
			"x":    flipped.X,
			"y":    flipped.Y,
		})
	}

	c.state = StateOpen
	c.menu.itemOpened(c)
}

// Close dismisses the popup. The host's dismissal path reports back through
// OnClosed; calling both is harmless.
func (c *ItemController) Close() {
	if c.state == StateClosed {
		return
	}
	if c.host != nil {
		c.host.Hide()
	}
	c.OnClosed()
}

// OnClosed is invoked by the popup host when the popup goes away. It clears
// the one-shot reposition flag and notifies the parent menu.
func (c *ItemController) OnClosed() {
	if c.state == StateClosed {
		return
	}

	c.repositioned = false
	c.state = StateClosed
	c.menu.itemClosed(c)
}

// ContainsPoint reports whether the screen point lies over this item's
// cached bounds. The parent menu uses it for hover-driven open transfer
// between siblings.
func (c *ItemController) ContainsPoint(p fyne.Position) bool {
	return c.bounds.Contains(p)
}

// RecomputeBounds re-derives the cached bounds from the anchor's current
// transform. Callers must invoke it after layout-affecting changes before
// trusting ContainsPoint.
func (c *ItemController) RecomputeBounds() {
	if c.anchor == nil {
		return
	}
	c.bounds = Rect{Pos: c.anchor.ScreenOrigin(), Size: c.anchor.Size()}
}

// Bounds returns the cached screen-space rectangle.
func (c *ItemController) Bounds() Rect {
	return c.bounds
}

// State returns the current lifecycle state.
func (c *ItemController) State() State {
	return c.state
}

// Items returns the mirror that tracks this item's logical entry list.
func (c *ItemController) Items() *mirror.Mirror {
	return c.items
}

// SetCaption records an external caption change and re-parses it.
func (c *ItemController) SetCaption(caption string) {
	c.caption.Set(caption)
}

// Caption returns the current parse of the item's caption.
func (c *ItemController) Caption() mnemonic.Parsed {
	return c.caption.Parsed()
}

// RemoveAccelerator strips the accelerator designation and returns the plain
// caption. The view is notified of the display change, but the resulting
// caption write-back does not re-parse.
func (c *ItemController) RemoveAccelerator() string {
	restored := c.caption.StripAccelerator()
	if c.captionChange != nil {
		c.captionChange(c.caption.Parsed())
	}
	return restored
}

// SetCaptionListener registers the view callback invoked after every
// externally-triggered caption parse.
func (c *ItemController) SetCaptionListener(fn func(mnemonic.Parsed)) {
	c.captionChange = fn
}

package gui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/widget"

	"flyoutkit/internal/flyout"
	"flyoutkit/internal/mirror"
	"flyoutkit/internal/mnemonic"
)

// popupHost adapts widget.PopUpMenu to the flyout.PopupHost contract. The
// popup content is rebuilt from the item mirror on every show, so mirror
// edits applied while the popup was closed are always reflected.
type popupHost struct {
	anchor   fyne.CanvasObject
	entries  func() []mirror.Entry
	onOpened func()
	onClosed func()

	popup *widget.PopUpMenu
}

func newPopupHost(anchor fyne.CanvasObject, entries func() []mirror.Entry) *popupHost {
	return &popupHost{anchor: anchor, entries: entries}
}

func (h *popupHost) ShowAt(pos fyne.Position) {
	h.show(pos)
}

// Show places the popup below the anchor, the presenter's default.
func (h *popupHost) Show() {
	origin := fyne.CurrentApp().Driver().AbsolutePositionForObject(h.anchor)
	h.show(fyne.NewPos(origin.X, origin.Y+h.anchor.Size().Height))
}

func (h *popupHost) show(pos fyne.Position) {
	canvas := fyne.CurrentApp().Driver().CanvasForObject(h.anchor)
	if canvas == nil {
		return
	}

	h.popup = widget.NewPopUpMenu(h.buildMenu(), canvas)

	// Chain the popup's own dismissal (which hides the overlay) with the
	// controller's close notification.
	dismiss := h.popup.OnDismiss
	h.popup.OnDismiss = func() {
		if dismiss != nil {
			dismiss()
		}
		if h.onClosed != nil {
			h.onClosed()
		}
	}

	h.popup.ShowAtPosition(pos)

	// The overlay is laid out during show; report back so the controller
	// can evaluate overflow.
	if h.onOpened != nil {
		h.onOpened()
	}
}

func (h *popupHost) MoveTo(pos fyne.Position) {
	if h.popup != nil {
		h.popup.Move(pos)
	}
}

func (h *popupHost) Hide() {
	if h.popup != nil {
		h.popup.Hide()
	}
}

func (h *popupHost) Size() (fyne.Size, bool) {
	if h.popup == nil {
		return fyne.Size{}, false
	}
	size := h.popup.Size()
	if size.Width <= 0 || size.Height <= 0 {
		return fyne.Size{}, false
	}
	return size, true
}

func (h *popupHost) buildMenu() *fyne.Menu {
	entries := h.entries()
	items := make([]*fyne.MenuItem, 0, len(entries))
	for _, entry := range entries {
		entry := entry
		label := mnemonic.Parse(entry.Caption()).DisplayText
		items = append(items, fyne.NewMenuItem(label, entry.Invoke))
	}
	return fyne.NewMenu("", items...)
}

var _ flyout.PopupHost = (*popupHost)(nil)

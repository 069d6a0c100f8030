package gui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"

	"flyoutkit/internal/flyout"
	"flyoutkit/internal/mnemonic"
)

// ItemView is the thin view binding for one menu item: it renders the
// parsed caption with the accelerator underlined and delegates every
// interaction to the item controller.
type ItemView struct {
	widget.BaseWidget

	bar        *MenuBar
	controller *flyout.ItemController
	text       *widget.RichText
}

var _ fyne.Tappable = (*ItemView)(nil)
var _ desktop.Hoverable = (*ItemView)(nil)

func newItemView(bar *MenuBar, controller *flyout.ItemController) *ItemView {
	v := &ItemView{
		bar:        bar,
		controller: controller,
		text:       newCaptionText(controller.Caption()),
	}
	v.ExtendBaseWidget(v)

	controller.SetCaptionListener(func(p mnemonic.Parsed) {
		v.text.Segments = captionSegments(p)
		v.text.Refresh()
	})
	controller.Attach(newPopupHostFor(v), v)

	return v
}

func (v *ItemView) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(container.NewPadded(v.text))
}

// Tapped toggles the item's popup.
func (v *ItemView) Tapped(*fyne.PointEvent) {
	if v.controller.State() != flyout.StateClosed {
		v.controller.Close()
		return
	}
	v.controller.Open()
}

// MouseIn lets the parent menu transfer an already-open popup to this item.
func (v *ItemView) MouseIn(ev *desktop.MouseEvent) {
	v.controller.RecomputeBounds()
	v.bar.menu.HandleHover(ev.AbsolutePosition)
}

func (v *ItemView) MouseMoved(ev *desktop.MouseEvent) {
	v.bar.menu.HandleHover(ev.AbsolutePosition)
}

func (v *ItemView) MouseOut() {}

// ScreenOrigin implements flyout.ViewAnchor via the driver's
// transform-to-screen query.
func (v *ItemView) ScreenOrigin() fyne.Position {
	return fyne.CurrentApp().Driver().AbsolutePositionForObject(v)
}

// ScreenSize implements flyout.ViewAnchor; the window canvas is the visible
// region popups must stay inside.
func (v *ItemView) ScreenSize() fyne.Size {
	canvas := fyne.CurrentApp().Driver().CanvasForObject(v)
	if canvas == nil {
		return fyne.Size{}
	}
	return canvas.Size()
}

func newPopupHostFor(v *ItemView) *popupHost {
	host := newPopupHost(v, v.controller.Items().Entries)
	host.onOpened = v.controller.OnOpened
	host.onClosed = v.controller.OnClosed
	return host
}

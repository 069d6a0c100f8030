package gui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"flyoutkit/internal/flyout"
	"flyoutkit/internal/logger"
)

// MenuBar hosts a row of item views bound to one flyout.Menu coordinator.
type MenuBar struct {
	widget.BaseWidget

	menu  *flyout.Menu
	log   logger.Logger
	views []*ItemView
	box   *fyne.Container
}

func NewMenuBar(menu *flyout.Menu, log logger.Logger) *MenuBar {
	if log == nil {
		log = logger.NoOp{}
	}
	bar := &MenuBar{
		menu: menu,
		log:  log,
		box:  container.NewHBox(),
	}
	bar.ExtendBaseWidget(bar)
	return bar
}

// AddItem creates a menu item from a caption (marker included) and its
// logical entry list, binds a view for it and returns the controller so the
// caller can keep mutating the logical list.
func (b *MenuBar) AddItem(caption string, logical []interface{}) *flyout.ItemController {
	item := b.menu.NewItem(caption)
	item.Items().Reset(logical)

	view := newItemView(b, item)
	b.views = append(b.views, view)
	b.box.Add(view)

	b.log.Debug("MenuBar", "item added", map[string]interface{}{
		"caption": item.Caption().DisplayText,
		"entries": item.Items().Len(),
	})

	return item
}

// Menu returns the underlying coordinator.
func (b *MenuBar) Menu() *flyout.Menu {
	return b.menu
}

func (b *MenuBar) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(b.box)
}

// Resize refreshes the cached item bounds whenever the bar is laid out, so
// pointer-containment queries stay valid.
func (b *MenuBar) Resize(size fyne.Size) {
	b.BaseWidget.Resize(size)
	b.menu.RecomputeBounds()
}

package flyout

import (
	"fyne.io/fyne/v2"

	"flyoutkit/internal/logger"
)

// Menu coordinates a row of menu items: it owns the shared placement policy
// and enforces that at most one item's popup is open at a time.
type Menu struct {
	mode   PlacementMode
	offset float32
	log    logger.Logger

	items    []*ItemController
	selected *ItemController
}

func NewMenu(mode PlacementMode, offset float32, log logger.Logger) *Menu {
	if log == nil {
		log = logger.NoOp{}
	}
	return &Menu{
		mode:   mode,
		offset: offset,
		log:    log,
	}
}

// NewItem creates a controller for one menu item and registers it with the
// menu.
func (m *Menu) NewItem(caption string) *ItemController {
	item := newItemController(m, caption, m.log)
	m.items = append(m.items, item)
	return item
}

// Items returns the registered item controllers in order.
func (m *Menu) Items() []*ItemController {
	return m.items
}

// PlacementMode returns the side of the anchor items where popups appear.
func (m *Menu) PlacementMode() PlacementMode {
	return m.mode
}

// SetPlacementMode changes the shared placement policy for subsequent opens.
func (m *Menu) SetPlacementMode(mode PlacementMode) {
	m.mode = mode
}

// Selected returns the item whose popup is currently open, or nil.
func (m *Menu) Selected() *ItemController {
	return m.selected
}

// CloseAll dismisses any open popup.
func (m *Menu) CloseAll() {
	if m.selected != nil {
		m.selected.Close()
	}
}

// HandleHover transfers the open popup to the sibling under the pointer.
// It does nothing while no popup is open, matching the usual menu-bar
// behavior where hover alone does not open anything.
func (m *Menu) HandleHover(p fyne.Position) {
	if m.selected == nil || m.selected.ContainsPoint(p) {
		return
	}

	for _, item := range m.items {
		if item == m.selected || !item.ContainsPoint(p) {
			continue
		}
		item.Open()
		return
	}
}

// RecomputeBounds refreshes every item's cached bounds after a layout pass.
func (m *Menu) RecomputeBounds() {
	for _, item := range m.items {
		item.RecomputeBounds()
	}
}

func (m *Menu) resolver() Resolver {
	return Resolver{Mode: m.mode, Offset: m.offset}
}

func (m *Menu) itemOpened(opened *ItemController) {
	previous := m.selected
	m.selected = opened
	if previous != nil && previous != opened {
		previous.Close()
	}

	m.log.Debug("Menu", "item opened", map[string]interface{}{
		"caption": opened.Caption().DisplayText,
	})
}

func (m *Menu) itemClosed(closed *ItemController) {
	if m.selected == closed {
		m.selected = nil
	}

	m.log.Debug("Menu", "item closed", map[string]interface{}{
		"caption": closed.Caption().DisplayText,
	})
}

package main

import "fmt"

// The handlers below mutate the File menu's logical entry list and replay
// each mutation onto the popup mirror, the same way a host control would
// drive incremental collection changes.

func (a *FlyoutApp) handleAddRecent() {
	name := fmt.Sprintf("document-%d.txt", len(a.recentFiles)-3)
	entry := &menuAction{caption: name, run: func() { a.setStatus("Opened " + name) }}

	// New entries go in front of the fixed actions.
	a.recentFiles = append([]interface{}{entry}, a.recentFiles...)
	if err := a.fileItem.Items().ApplyInsert(0, entry); err != nil {
		a.log.Error("App", err, map[string]interface{}{"op": "insert"})
		return
	}

	a.setStatus("Added " + name)
}

func (a *FlyoutApp) handleRenameRecent() {
	if len(a.recentFiles) <= 4 {
		a.setStatus("Nothing to rename")
		return
	}

	old := a.recentFiles[0].(*menuAction)
	renamed := &menuAction{caption: old.caption + " (renamed)", run: old.run}

	a.recentFiles[0] = renamed
	if err := a.fileItem.Items().ApplyReplace(0, renamed); err != nil {
		a.log.Error("App", err, map[string]interface{}{"op": "replace"})
		return
	}

	a.setStatus("Renamed " + old.caption)
}

func (a *FlyoutApp) handleRemoveRecent() {
	if len(a.recentFiles) <= 4 {
		a.setStatus("Nothing to remove")
		return
	}

	last := len(a.recentFiles) - 5
	removed := a.recentFiles[last].(*menuAction)

	a.recentFiles = append(a.recentFiles[:last], a.recentFiles[last+1:]...)
	if err := a.fileItem.Items().ApplyRemove(last); err != nil {
		a.log.Error("App", err, map[string]interface{}{"op": "remove"})
		return
	}

	a.setStatus("Removed " + removed.caption)
}

func (a *FlyoutApp) handleClearRecent() {
	// Keep only the fixed actions and rebuild the mirror from scratch.
	a.recentFiles = a.recentFiles[len(a.recentFiles)-4:]
	a.fileItem.Items().Reset(a.recentFiles)
	a.setStatus("Recent files cleared")
}

func (a *FlyoutApp) handleStripAccelerators() {
	for _, item := range a.menuBar.Menu().Items() {
		plain := item.RemoveAccelerator()
		item.SetCaption(plain)
	}
	a.setStatus("Accelerators removed")
}

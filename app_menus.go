package main

// menuAction is a pre-built popup entry: it satisfies the mirror's Entry
// contract, so it is mirrored by reference instead of being wrapped.
type menuAction struct {
	caption string
	run     func()
}

func (m *menuAction) Caption() string { return m.caption }

func (m *menuAction) Invoke() {
	if m.run != nil {
		m.run()
	}
}

func (a *FlyoutApp) setupMenuBar() {
	a.recentFiles = []interface{}{
		&menuAction{caption: "Add recent file", run: a.handleAddRecent},
		&menuAction{caption: "Rename newest", run: a.handleRenameRecent},
		&menuAction{caption: "Remove oldest", run: a.handleRemoveRecent},
		&menuAction{caption: "Clear recent", run: a.handleClearRecent},
	}
	a.fileItem = a.menuBar.AddItem("^File", a.recentFiles)

	a.menuBar.AddItem("^Edit", []interface{}{
		&menuAction{caption: "Cu^t", run: func() { a.setStatus("Cut") }},
		&menuAction{caption: "^Copy", run: func() { a.setStatus("Copy") }},
		&menuAction{caption: "^Paste", run: func() { a.setStatus("Paste") }},
	})

	a.menuBar.AddItem("^View", []interface{}{
		&menuAction{caption: "Zoom ^In", run: func() { a.setStatus("Zoom in") }},
		&menuAction{caption: "Zoom ^Out", run: func() { a.setStatus("Zoom out") }},
		// Opaque data: the mirror wraps it in a DataEntry.
		"Rendered at 100%",
	})

	a.menuBar.AddItem("^Help", []interface{}{
		&menuAction{caption: "^About", run: func() { a.setStatus(AppName) }},
		&menuAction{caption: "Remove menu accelerators", run: a.handleStripAccelerators},
	})
}

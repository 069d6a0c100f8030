package main

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"flyoutkit/internal/config"
	"flyoutkit/internal/flyout"
	"flyoutkit/internal/gui"
	"flyoutkit/internal/logger"
)

const (
	AppName = "Flyoutkit Demo"
	AppID   = "io.flyoutkit.demo"
)

// FlyoutApp is the demo application: a menu bar whose items, popups and
// placement are driven entirely by the flyout subsystem.
type FlyoutApp struct {
	fyneApp fyne.App
	window  fyne.Window
	cfg     config.Config
	log     logger.Logger

	menuBar *gui.MenuBar
	status  *widget.Label

	// Logical entry list for the File menu; mutations to it are replayed
	// onto the popup mirror by the handlers.
	recentFiles []interface{}
	fileItem    *flyout.ItemController
}

func NewFlyoutApp(cfg config.Config, log logger.Logger) *FlyoutApp {
	fyneApp := app.NewWithID(AppID)

	window := fyneApp.NewWindow(AppName)
	window.Resize(fyne.NewSize(cfg.Window.Width, cfg.Window.Height))

	menu := flyout.NewMenu(flyout.ParsePlacementMode(cfg.Menu.Placement), cfg.Menu.OpenOffset, log)

	flyoutApp := &FlyoutApp{
		fyneApp: fyneApp,
		window:  window,
		cfg:     cfg,
		log:     log,
		menuBar: gui.NewMenuBar(menu, log),
		status:  widget.NewLabel("Ready"),
	}

	flyoutApp.setupMenuBar()

	log.Info("App", "application initialized", map[string]interface{}{
		"placement": cfg.Menu.Placement,
		"offset":    cfg.Menu.OpenOffset,
	})

	return flyoutApp
}

func (a *FlyoutApp) Run() {
	content := container.NewBorder(
		a.menuBar,
		a.status,
		nil, nil,
		widget.NewLabel("Open a menu to exercise mirroring, placement and mnemonics."),
	)
	a.window.SetContent(content)

	a.window.SetCloseIntercept(func() {
		a.cleanup()
		a.window.Close()
	})

	a.window.ShowAndRun()
}

func (a *FlyoutApp) cleanup() {
	a.menuBar.Menu().CloseAll()
	a.log.Info("App", "shutdown completed", nil)
}

func (a *FlyoutApp) setStatus(status string) {
	a.status.SetText(status)
}

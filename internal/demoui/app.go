package demoui

import (
	"fmt"
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/slingshot"
)

// Window sizing
const (
	WindowWidth  float32 = 420
	WindowHeight float32 = 640
)

// DemoUI represents the main demo window structure
type DemoUI struct {
	window   fyne.Window
	app      fyne.App
	settings *Settings

	localization *slingshot.Localization

	feed       *fyne.Container
	overscroll *slingshot.OverscrollContainer
	session    *slingshot.Slingshot

	enableCheck *widget.Check
	hintLabel   *widget.Label
}

// NewDemoUI creates and initializes the demo window
func NewDemoUI(window fyne.Window, app fyne.App) *DemoUI {
	settings := NewSettings(app)

	localization := slingshot.NewLocalization()
	localization.SetLanguage(settings.GetLanguage())

	ui := &DemoUI{
		window:       window,
		app:          app,
		settings:     settings,
		localization: localization,
	}

	// setupUI checks the toggle, which attaches the behavior.
	ui.setupUI()

	log.Printf("Demo UI initialized with %d feed rows", settings.GetRowCount())
	return ui
}

// setupUI creates and arranges all UI components
func (ui *DemoUI) setupUI() {
	// Feed content inside the overscrollable viewport
	ui.feed = container.NewVBox()
	ui.populateFeed()
	ui.overscroll = slingshot.NewOverscrollContainer(ui.feed)

	// Top controls
	ui.enableCheck = widget.NewCheck("Slingshot", ui.onToggleSlingshot)
	ui.enableCheck.SetChecked(true)

	settingsBtn := widget.NewButtonWithIcon("", theme.SettingsIcon(), ui.onShowSettings)
	settingsBtn.Importance = widget.LowImportance

	ui.hintLabel = widget.NewLabel("Drag past the last row, then release")
	ui.hintLabel.TextStyle = fyne.TextStyle{Italic: true}

	topPanel := container.NewBorder(nil, nil, ui.enableCheck, settingsBtn, ui.hintLabel)

	content := container.NewBorder(
		topPanel,      // top
		nil,           // bottom
		nil,           // left
		nil,           // right
		ui.overscroll, // center
	)

	ui.window.SetContent(content)
}

// populateFeed fills the feed container with generated rows
func (ui *DemoUI) populateFeed() {
	ui.feed.RemoveAll()

	for _, item := range GenerateFeed(ui.settings.GetRowCount()) {
		title := widget.NewLabel(item.DisplayTitle())
		title.TextStyle = fyne.TextStyle{Bold: true}

		byline := widget.NewLabel(item.Byline())

		ui.feed.Add(container.NewVBox(title, byline, widget.NewSeparator()))
	}
}

// enableSlingshot attaches the behavior and applies the stored settings
func (ui *DemoUI) enableSlingshot() {
	ui.session = slingshot.Enable(ui.overscroll)
	ui.applySettings()
	log.Printf("Slingshot enabled: session=%s threshold=%.0f ratio=%.1f",
		ui.session.ID(), ui.session.Threshold(), ui.session.HeightRatio())
}

// applySettings pushes the stored configuration into the active session
func (ui *DemoUI) applySettings() {
	if ui.session == nil {
		return
	}
	// Zero stored values fall back to the library defaults.
	ui.session.SetThreshold(ui.settings.GetThreshold())
	ui.session.SetHeightRatio(ui.settings.GetHeightRatio())
	ui.session.SetTintColor(theme.Color(theme.ColorNamePrimary))
	ui.session.SetLocalization(ui.localization)
}

// onToggleSlingshot handles the enable/disable checkbox
func (ui *DemoUI) onToggleSlingshot(enabled bool) {
	if enabled {
		ui.enableSlingshot()
		return
	}

	slingshot.Disable(ui.overscroll)
	ui.session = nil
	log.Printf("Slingshot disabled")
}

// onShowSettings shows the settings dialog
func (ui *DemoUI) onShowSettings() {
	ShowSettingsDialog(ui.window, ui.settings, func() {
		ui.localization.SetLanguage(ui.settings.GetLanguage())
		ui.populateFeed()
		ui.applySettings()
		log.Printf("Settings saved: threshold=%.0f ratio=%.1f rows=%d lang=%s",
			ui.settings.GetThreshold(), ui.settings.GetHeightRatio(),
			ui.settings.GetRowCount(), ui.settings.GetLanguage())
	})
}

// StatusLine returns a short description of the current behavior state,
// used for the window title
func (ui *DemoUI) StatusLine() string {
	if ui.session == nil {
		return "slingshot off"
	}
	return fmt.Sprintf("slingshot on · threshold %.0f", ui.session.Threshold())
}

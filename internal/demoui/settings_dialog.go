package demoui

import (
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/slingshot"
)

// SettingsDialog represents the settings configuration dialog
type SettingsDialog struct {
	settings *Settings
	window   fyne.Window
	dialog   *dialog.ConfirmDialog
	onSaved  func()

	// UI components
	thresholdEntry *widget.Entry
	ratioEntry     *widget.Entry
	rowCountEntry  *widget.Entry
	languageSelect *widget.Select
}

// ShowSettingsDialog creates and shows the settings dialog. onSaved runs
// after a confirmed save
func ShowSettingsDialog(window fyne.Window, settings *Settings, onSaved func()) {
	sd := &SettingsDialog{
		settings: settings,
		window:   window,
		onSaved:  onSaved,
	}

	sd.createUI()
	sd.loadCurrentSettings()
	sd.dialog.Show()
}

// createUI creates the settings dialog UI
func (sd *SettingsDialog) createUI() {
	sd.thresholdEntry = widget.NewEntry()
	sd.thresholdEntry.SetPlaceHolder("50-400")

	sd.ratioEntry = widget.NewEntry()
	sd.ratioEntry.SetPlaceHolder("1-10")

	sd.rowCountEntry = widget.NewEntry()
	sd.rowCountEntry.SetPlaceHolder("20-500")

	languageOptions := []string{DefaultLanguage}
	for code := range slingshot.NewLocalization().GetAvailableLanguages() {
		languageOptions = append(languageOptions, code)
	}
	sd.languageSelect = widget.NewSelect(languageOptions, nil)
	sd.languageSelect.PlaceHolder = "Select language"

	form := container.NewVBox(
		widget.NewLabel("Slingshot Settings"),
		widget.NewSeparator(),

		widget.NewLabel("Release Threshold (points):"),
		sd.thresholdEntry,

		widget.NewLabel("Min Content/Viewport Ratio:"),
		sd.ratioEntry,

		widget.NewSeparator(),
		widget.NewLabel("Demo Settings"),
		widget.NewSeparator(),

		widget.NewLabel("Feed Rows:"),
		sd.rowCountEntry,

		widget.NewLabel("Language:"),
		sd.languageSelect,
	)

	sd.dialog = dialog.NewCustomConfirm(
		"Settings",
		"Save",
		"Cancel",
		form,
		sd.onSave,
		sd.window,
	)

	sd.dialog.Resize(fyne.NewSize(360, 420))
}

// loadCurrentSettings loads current settings into the UI
func (sd *SettingsDialog) loadCurrentSettings() {
	threshold := sd.settings.GetThreshold()
	if threshold == 0 {
		threshold = slingshot.DefaultThreshold
	}
	ratio := sd.settings.GetHeightRatio()
	if ratio == 0 {
		ratio = slingshot.DefaultHeightRatio
	}

	sd.thresholdEntry.SetText(strconv.FormatFloat(float64(threshold), 'f', 0, 32))
	sd.ratioEntry.SetText(strconv.FormatFloat(float64(ratio), 'f', 1, 32))
	sd.rowCountEntry.SetText(strconv.Itoa(sd.settings.GetRowCount()))
	sd.languageSelect.SetSelected(sd.settings.GetLanguage())
}

// onSave handles saving the settings
func (sd *SettingsDialog) onSave(confirmed bool) {
	if !confirmed {
		return
	}

	if threshold, err := strconv.ParseFloat(sd.thresholdEntry.Text, 32); err == nil {
		sd.settings.SetThreshold(float32(threshold))
	}

	if ratio, err := strconv.ParseFloat(sd.ratioEntry.Text, 32); err == nil {
		sd.settings.SetHeightRatio(float32(ratio))
	}

	if rows, err := strconv.Atoi(sd.rowCountEntry.Text); err == nil {
		sd.settings.SetRowCount(rows)
	}

	if sd.languageSelect.Selected != "" {
		sd.settings.SetLanguage(sd.languageSelect.Selected)
	}

	if sd.onSaved != nil {
		sd.onSaved()
	}
}

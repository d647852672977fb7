package demoui

import (
	"fyne.io/fyne/v2"
)

// Settings keys for Fyne preferences
const (
	KeyThreshold   = "slingshot_threshold"
	KeyHeightRatio = "slingshot_height_ratio"
	KeyRowCount    = "feed_row_count"
	KeyLanguage    = "app_language"
)

// Default values
const (
	DefaultRowCount = 60
	DefaultLanguage = "system"
)

// Clamping bounds for numeric settings
const (
	MinThreshold float32 = 50
	MaxThreshold float32 = 400

	MinHeightRatio float32 = 1
	MaxHeightRatio float32 = 10

	MinRowCount = 20
	MaxRowCount = 500
)

// Settings manages the demo configuration
type Settings struct {
	app fyne.App
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

// GetThreshold returns the configured release threshold
func (s *Settings) GetThreshold() float32 {
	value := float32(s.app.Preferences().Float(KeyThreshold))
	if value <= 0 {
		return 0 // zero means "library default"
	}
	return clampFloat(value, MinThreshold, MaxThreshold)
}

// SetThreshold sets the release threshold
func (s *Settings) SetThreshold(threshold float32) {
	threshold = clampFloat(threshold, MinThreshold, MaxThreshold)
	s.app.Preferences().SetFloat(KeyThreshold, float64(threshold))
}

// GetHeightRatio returns the configured availability ratio
func (s *Settings) GetHeightRatio() float32 {
	value := float32(s.app.Preferences().Float(KeyHeightRatio))
	if value <= 0 {
		return 0 // zero means "library default"
	}
	return clampFloat(value, MinHeightRatio, MaxHeightRatio)
}

// SetHeightRatio sets the availability ratio
func (s *Settings) SetHeightRatio(ratio float32) {
	ratio = clampFloat(ratio, MinHeightRatio, MaxHeightRatio)
	s.app.Preferences().SetFloat(KeyHeightRatio, float64(ratio))
}

// GetRowCount returns the number of generated feed rows
func (s *Settings) GetRowCount() int {
	value := s.app.Preferences().Int(KeyRowCount)
	if value <= 0 {
		s.SetRowCount(DefaultRowCount)
		return DefaultRowCount
	}
	return value
}

// SetRowCount sets the number of generated feed rows
func (s *Settings) SetRowCount(count int) {
	if count < MinRowCount {
		count = MinRowCount
	}
	if count > MaxRowCount {
		count = MaxRowCount
	}
	s.app.Preferences().SetInt(KeyRowCount, count)
}

// GetLanguage returns the configured language
func (s *Settings) GetLanguage() string {
	lang := s.app.Preferences().String(KeyLanguage)
	if lang == "" {
		s.SetLanguage(DefaultLanguage)
		return DefaultLanguage
	}
	return lang
}

// SetLanguage sets the application language
func (s *Settings) SetLanguage(lang string) {
	s.app.Preferences().SetString(KeyLanguage, lang)
}

// clampFloat bounds v to [lo, hi]
func clampFloat(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

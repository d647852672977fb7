package demoui

import (
	"testing"

	"fyne.io/fyne/v2/test"
)

func TestNewSettings(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if settings.app != app {
		t.Error("Settings app reference should match provided app")
	}
}

func TestThreshold(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	// Unset threshold means "use the library default"
	if got := settings.GetThreshold(); got != 0 {
		t.Errorf("Expected unset threshold 0, got %v", got)
	}

	settings.SetThreshold(120)
	if got := settings.GetThreshold(); got != 120 {
		t.Errorf("Expected threshold 120, got %v", got)
	}

	// Boundary values are clamped
	settings.SetThreshold(10)
	if got := settings.GetThreshold(); got != MinThreshold {
		t.Errorf("Threshold should be clamped to %v, got %v", MinThreshold, got)
	}

	settings.SetThreshold(9999)
	if got := settings.GetThreshold(); got != MaxThreshold {
		t.Errorf("Threshold should be clamped to %v, got %v", MaxThreshold, got)
	}
}

func TestHeightRatio(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if got := settings.GetHeightRatio(); got != 0 {
		t.Errorf("Expected unset ratio 0, got %v", got)
	}

	settings.SetHeightRatio(2.5)
	if got := settings.GetHeightRatio(); got != 2.5 {
		t.Errorf("Expected ratio 2.5, got %v", got)
	}

	settings.SetHeightRatio(0.1)
	if got := settings.GetHeightRatio(); got != MinHeightRatio {
		t.Errorf("Ratio should be clamped to %v, got %v", MinHeightRatio, got)
	}

	settings.SetHeightRatio(50)
	if got := settings.GetHeightRatio(); got != MaxHeightRatio {
		t.Errorf("Ratio should be clamped to %v, got %v", MaxHeightRatio, got)
	}
}

func TestRowCount(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	// Test default value
	if got := settings.GetRowCount(); got != DefaultRowCount {
		t.Errorf("Expected default row count %d, got %d", DefaultRowCount, got)
	}

	settings.SetRowCount(100)
	if got := settings.GetRowCount(); got != 100 {
		t.Errorf("Expected row count 100, got %d", got)
	}

	settings.SetRowCount(1)
	if got := settings.GetRowCount(); got != MinRowCount {
		t.Errorf("Row count should be clamped to %d, got %d", MinRowCount, got)
	}

	settings.SetRowCount(100000)
	if got := settings.GetRowCount(); got != MaxRowCount {
		t.Errorf("Row count should be clamped to %d, got %d", MaxRowCount, got)
	}
}

func TestLanguage(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	// Test default value
	if got := settings.GetLanguage(); got != DefaultLanguage {
		t.Errorf("Expected default language %s, got %s", DefaultLanguage, got)
	}

	settings.SetLanguage("pt")
	if got := settings.GetLanguage(); got != "pt" {
		t.Errorf("Expected language 'pt', got %s", got)
	}
}

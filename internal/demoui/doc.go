package demoui

// Package demoui contains the Fyne-based demonstration window for the
// slingshot behavior. It renders a generated feed inside an overscrollable
// container, exposes the behavior's configuration through a settings dialog,
// and lets the behavior be toggled at runtime.

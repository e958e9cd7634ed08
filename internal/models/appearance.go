package models

import "dna-sequence-pro/internal/config"

// AppearanceMode selects the light/dark variant of the window.
type AppearanceMode string

const (
	AppearanceSystem AppearanceMode = "system"
	AppearanceLight  AppearanceMode = "light"
	AppearanceDark   AppearanceMode = "dark"
)

// ColorTheme names the accent palette.
type ColorTheme string

const (
	ColorThemeBlue     ColorTheme = "blue"
	ColorThemeGreen    ColorTheme = "green"
	ColorThemeDarkBlue ColorTheme = "dark-blue"
)

// Appearance is the toolkit-wide look of the application. It is built
// once at startup and handed to the window constructor.
type Appearance struct {
	Mode       AppearanceMode
	ColorTheme ColorTheme
}

// BatchInsert holds the toolbar's initial character and count.
type BatchInsert struct {
	Char  string
	Count string
}

// WindowSettings is everything the main window needs at construction.
type WindowSettings struct {
	Title        string
	Width        float32
	Height       float32
	Appearance   Appearance
	Batch        BatchInsert
	DefaultInput string
}

// DefaultWindowSettings mirrors the built-in configuration defaults.
func DefaultWindowSettings() WindowSettings {
	return WindowSettings{
		Title:  "DNA Sequence Pro",
		Width:  800,
		Height: 650,
		Appearance: Appearance{
			Mode:       AppearanceSystem,
			ColorTheme: ColorThemeBlue,
		},
		Batch:        BatchInsert{Char: "T", Count: "10"},
		DefaultInput: "GTCA",
	}
}

// WindowSettingsFromConfig converts loaded configuration into window
// settings.
func WindowSettingsFromConfig(c config.Config) WindowSettings {
	s := DefaultWindowSettings()
	s.Width = c.Window.Width
	s.Height = c.Window.Height
	s.Appearance = Appearance{
		Mode:       AppearanceMode(c.Appearance.Mode),
		ColorTheme: ColorTheme(c.Appearance.ColorTheme),
	}
	s.Batch = BatchInsert{Char: c.Batch.Char, Count: c.Batch.Count}
	s.DefaultInput = c.Input.Default
	return s
}

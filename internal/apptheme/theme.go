// Package apptheme turns an Appearance into a Fyne theme.
package apptheme

import (
	"image/color"

	"dna-sequence-pro/internal/models"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// Palette is the accent set for a color theme. Hover is drawn as an
// overlay, so it stays translucent. Action colors the primary "run" button.
type Palette struct {
	Primary color.NRGBA
	Hover   color.NRGBA
	Action  color.NRGBA
}

var palettes = map[models.ColorTheme]Palette{
	models.ColorThemeBlue: {
		Primary: color.NRGBA{R: 0x3B, G: 0x8E, B: 0xD0, A: 0xFF},
		Hover:   color.NRGBA{R: 0x36, G: 0x71, B: 0x9F, A: 0x40},
		Action:  color.NRGBA{R: 0x2C, G: 0xC9, B: 0x85, A: 0xFF},
	},
	models.ColorThemeGreen: {
		Primary: color.NRGBA{R: 0x2C, G: 0xC9, B: 0x85, A: 0xFF},
		Hover:   color.NRGBA{R: 0x26, G: 0xA4, B: 0x6E, A: 0x40},
		Action:  color.NRGBA{R: 0x2C, G: 0xC9, B: 0x85, A: 0xFF},
	},
	models.ColorThemeDarkBlue: {
		Primary: color.NRGBA{R: 0x1F, G: 0x6A, B: 0xA5, A: 0xFF},
		Hover:   color.NRGBA{R: 0x14, G: 0x48, B: 0x70, A: 0x40},
		Action:  color.NRGBA{R: 0x2C, G: 0xC9, B: 0x85, A: 0xFF},
	},
}

// PaletteFor returns the palette of ct, falling back to blue.
func PaletteFor(ct models.ColorTheme) Palette {
	if p, ok := palettes[ct]; ok {
		return p
	}
	return palettes[models.ColorThemeBlue]
}

// Theme wraps the default Fyne theme with a fixed variant and accent.
type Theme struct {
	base    fyne.Theme
	mode    models.AppearanceMode
	palette Palette
}

var _ fyne.Theme = (*Theme)(nil)

// New builds the theme for a.
func New(a models.Appearance) *Theme {
	return &Theme{
		base:    theme.DefaultTheme(),
		mode:    a.Mode,
		palette: PaletteFor(a.ColorTheme),
	}
}

// Variant resolves the variant to render given the one the system asks for.
func (t *Theme) Variant(requested fyne.ThemeVariant) fyne.ThemeVariant {
	switch t.mode {
	case models.AppearanceDark:
		return theme.VariantDark
	case models.AppearanceLight:
		return theme.VariantLight
	default:
		return requested
	}
}

func (t *Theme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	switch name {
	case theme.ColorNamePrimary, theme.ColorNameFocus:
		return t.palette.Primary
	case theme.ColorNameHover:
		return t.palette.Hover
	case theme.ColorNameSuccess:
		return t.palette.Action
	}
	return t.base.Color(name, t.Variant(variant))
}

func (t *Theme) Font(style fyne.TextStyle) fyne.Resource {
	return t.base.Font(style)
}

func (t *Theme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return t.base.Icon(name)
}

func (t *Theme) Size(name fyne.ThemeSizeName) float32 {
	return t.base.Size(name)
}

// Palette exposes the accent colors for widgets drawn outside the theme.
func (t *Theme) Palette() Palette {
	return t.palette
}

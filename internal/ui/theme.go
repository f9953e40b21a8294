package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"

	"github.com/filerelay/filerelay-dock/internal/config"
)

// OverlayBorderColor outlines the preview overlay
var OverlayBorderColor = color.NRGBA{R: 0xDD, G: 0xDD, B: 0xDD, A: 0xFF}

// OverlayTextColor is used for preview lines
var OverlayTextColor = color.NRGBA{R: 0x22, G: 0x22, B: 0x22, A: 0xFF}

// DockTheme is a compact theme with no padding, coloured from the configured style
type DockTheme struct {
	style config.Style
}

// NewDockTheme creates a theme for style
func NewDockTheme(style config.Style) fyne.Theme {
	return &DockTheme{style: style}
}

// Color returns theme colors
func (t *DockTheme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	switch name {
	case theme.ColorNameBackground, theme.ColorNameOverlayBackground, theme.ColorNameMenuBackground:
		return t.style.Background
	case theme.ColorNameForeground:
		return t.style.Foreground
	case theme.ColorNameShadow:
		return color.Transparent
	}

	// Use default colors for everything else
	return theme.DefaultTheme().Color(name, theme.VariantLight)
}

// Font returns theme fonts
func (t *DockTheme) Font(style fyne.TextStyle) fyne.Resource {
	// System fonts cannot be loaded by name; the bundled font is used
	return theme.DefaultTheme().Font(style)
}

// Icon returns theme icons
func (t *DockTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return theme.DefaultTheme().Icon(name)
}

// Size returns theme sizes with compact adjustments
func (t *DockTheme) Size(name fyne.ThemeSizeName) float32 {
	switch name {
	case theme.SizeNamePadding, theme.SizeNameInnerPadding:
		return 0
	case theme.SizeNameLineSpacing:
		return 2 // Reduced from default 4
	case theme.SizeNameText:
		return float32(t.style.FontSize) * PointsToUnits
	case theme.SizeNameInputRadius, theme.SizeNameSelectionRadius:
		return 0
	}

	// Use default theme for everything else
	return theme.DefaultTheme().Size(name)
}

package config

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/atomkit/atomkit/internal/ui/components"
)

// BuildTheme converts a validated theme file into a usable theme. All
// derived tokens (typography, borders, field frames, variants) follow from
// the palette; spacing overrides apply afterwards.
func BuildTheme(file *ThemeFile) components.Theme {
	theme := components.NewTheme(file.Name, buildPalette(file.Palette))

	if file.Spacing != nil {
		theme.Spacing = theme.Spacing.Override(file.Spacing.Padding, file.Spacing.Margin)
	}
	return theme.Normalize()
}

func buildPalette(p PaletteFile) components.Palette {
	return components.Palette{
		Primary:   buildSlot(p.Primary),
		Secondary: buildSlot(p.Secondary),
		Surface:   buildSlot(p.Surface),
		Success:   buildSlot(p.Success),
		Warning:   buildSlot(p.Warning),
		Danger:    buildSlot(p.Danger),
		Info:      buildSlot(p.Info),
		Neutral:   buildSlot(p.Neutral),
	}
}

func buildSlot(s SlotFile) components.ColourSet {
	return components.ColourSet{
		Base:   buildColour(s.Base),
		OnBase: buildColour(s.OnBase),
		Muted:  buildColour(s.Muted),
		Accent: buildColour(s.Accent),
	}
}

func buildColour(c ColourFile) lipgloss.AdaptiveColor {
	return lipgloss.AdaptiveColor{Light: c.Light, Dark: c.Dark}
}

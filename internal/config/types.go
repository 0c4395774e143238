// Package config loads custom themes from YAML files and resolves theme
// names against the built-in set.
package config

// ThemeFile is the on-disk representation of a custom theme. Only colours
// and optionally spacing are configurable; typography, borders, and variant
// styling are derived from the palette.
type ThemeFile struct {
	Name    string       `yaml:"name" validate:"required,theme_name"`
	Palette PaletteFile  `yaml:"palette" validate:"required"`
	Spacing *SpacingFile `yaml:"spacing,omitempty" validate:"omitempty"`
}

// PaletteFile declares every semantic colour slot of a theme.
type PaletteFile struct {
	Primary   SlotFile `yaml:"primary" validate:"required"`
	Secondary SlotFile `yaml:"secondary" validate:"required"`
	Surface   SlotFile `yaml:"surface" validate:"required"`
	Success   SlotFile `yaml:"success" validate:"required"`
	Warning   SlotFile `yaml:"warning" validate:"required"`
	Danger    SlotFile `yaml:"danger" validate:"required"`
	Info      SlotFile `yaml:"info" validate:"required"`
	Neutral   SlotFile `yaml:"neutral" validate:"required"`
}

// SlotFile declares the four colours of a semantic slot.
type SlotFile struct {
	Base   ColourFile `yaml:"base" validate:"required"`
	OnBase ColourFile `yaml:"on_base" validate:"required"`
	Muted  ColourFile `yaml:"muted" validate:"required"`
	Accent ColourFile `yaml:"accent" validate:"required"`
}

// ColourFile is an adaptive colour: a hex value per terminal background.
type ColourFile struct {
	Light string `yaml:"light" validate:"required,hexcolor"`
	Dark  string `yaml:"dark" validate:"required,hexcolor"`
}

// SpacingFile optionally overrides the spacing scales. Each list carries
// exactly six values, from the none token up to xl.
type SpacingFile struct {
	Padding []int `yaml:"padding,omitempty" validate:"omitempty,len=6,dive,gte=0,lte=16"`
	Margin  []int `yaml:"margin,omitempty" validate:"omitempty,len=6,dive,gte=0,lte=16"`
}

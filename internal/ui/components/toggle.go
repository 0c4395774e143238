package components

// Toggle is an on/off switch visual. Like every component here it renders
// caller-owned state; flipping happens in the caller's event handling.
type Toggle struct {
	BaseComponent
	on    bool
	label string
}

// NewToggle creates a toggle in the given state.
func NewToggle(on bool) *Toggle {
	return &Toggle{
		BaseComponent: NewBaseComponent(),
		on:            on,
	}
}

// View renders the toggle with the default theme.
func (t *Toggle) View() string {
	return t.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the toggle track with the given theme context.
func (t *Toggle) ViewWithContext(ctx RenderContext) string {
	theme := ctx.Theme

	var track string
	style := t.ComputeStyle(theme)
	if t.on {
		track = " ●"
		style = style.Background(theme.Palette.Success.Base).Foreground(theme.Palette.Success.OnBase)
	} else {
		track = "● "
		style = style.Background(theme.Palette.Neutral.Muted).Foreground(theme.Palette.Neutral.OnBase)
	}

	view := style.Padding(0, 1).Render(track)
	if t.label != "" {
		view += " " + TypographyStyle(theme, TypographyVariantBody).Render(t.label)
	}
	return view
}

// WithLabel sets a label rendered after the track.
func (t *Toggle) WithLabel(label string) *Toggle {
	t.label = label
	return t
}

// IsOn reports the toggle state.
func (t *Toggle) IsOn() bool {
	return t.on
}

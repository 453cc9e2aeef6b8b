package components

import "github.com/charmbracelet/lipgloss"

// Text renders styled text content.
type Text struct {
	BaseComponent
	content string
}

// NewText creates a text component.
func NewText(content string) *Text {
	return &Text{
		BaseComponent: NewBaseComponent(),
		content:       content,
	}
}

// View renders the text with the default theme.
func (t *Text) View() string {
	return t.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the text under ctx.
func (t *Text) ViewWithContext(ctx RenderContext) string {
	return t.ComputeStyle(ctx.Theme).Render(t.content)
}

// Content returns the raw text.
func (t *Text) Content() string {
	return t.content
}

// WithStyle sets the lipgloss style directly.
func (t *Text) WithStyle(style lipgloss.Style) *Text {
	t.SetStyle(style)
	return t
}

// WithAppliers replaces the theme-based style modifiers.
func (t *Text) WithAppliers(appliers ...StyleFunc) *Text {
	t.SetAppliers(appliers...)
	return t
}

// TitleText creates title text.
func TitleText(content string) *Text {
	return NewText(content).WithAppliers(Typography(TypographyVariantTitle))
}

// CaptionText creates faint caption text.
func CaptionText(content string) *Text {
	return NewText(content).WithAppliers(Typography(TypographyVariantCaption))
}

// CodeText creates code-styled text.
func CodeText(content string) *Text {
	return NewText(content).WithAppliers(Typography(TypographyVariantCode))
}

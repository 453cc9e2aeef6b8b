package components

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/google/safehtml"
	"github.com/google/safehtml/template"
)

// BadgeVariant specifies the visual style of a badge.
type BadgeVariant int

const (
	BadgeVariantDefault BadgeVariant = iota
	BadgeVariantPrimary
	BadgeVariantSuccess
	BadgeVariantWarning
	BadgeVariantError
	BadgeVariantInfo
)

var badgeVariantNames = map[string]BadgeVariant{
	"default": BadgeVariantDefault,
	"primary": BadgeVariantPrimary,
	"success": BadgeVariantSuccess,
	"warning": BadgeVariantWarning,
	"error":   BadgeVariantError,
	"info":    BadgeVariantInfo,
}

// ParseBadgeVariant resolves a variant by name.
func ParseBadgeVariant(name string) (BadgeVariant, error) {
	variant, ok := badgeVariantNames[name]
	if !ok {
		return BadgeVariantDefault, fmt.Errorf("unknown badge variant %q", name)
	}
	return variant, nil
}

// BadgeVariantNames lists the accepted variant names.
func BadgeVariantNames() []string {
	return []string{"default", "primary", "success", "warning", "error", "info"}
}

func registerBadgeVariants(registry *VariantRegistry) {
	slots := map[BadgeVariant]PaletteSlot{
		BadgeVariantDefault: PaletteNeutral,
		BadgeVariantPrimary: PalettePrimary,
		BadgeVariantSuccess: PaletteSuccess,
		BadgeVariantWarning: PaletteWarning,
		BadgeVariantError:   PaletteDanger,
		BadgeVariantInfo:    PaletteInfo,
	}
	for variant, slot := range slots {
		registry.Register(variant, NewCompositeStrategy(
			Background(slot),
			PaddingX(SpacingSizeExtraSmall),
		))
	}
}

var badgeHTMLClasses = map[BadgeVariant]string{
	BadgeVariantDefault: "bg-slate-100 text-slate-700",
	BadgeVariantPrimary: "bg-blue-100 text-blue-700",
	BadgeVariantSuccess: "bg-green-100 text-green-700",
	BadgeVariantWarning: "bg-yellow-100 text-yellow-800",
	BadgeVariantError:   "bg-red-100 text-red-700",
	BadgeVariantInfo:    "bg-cyan-100 text-cyan-700",
}

var badgeTemplate = template.Must(template.New("badge").Parse(`<span class="{{.Class}}">{{.Text}}</span>`))

// Badge is a small status indicator.
type Badge struct {
	BaseComponent
	text    string
	variant BadgeVariant
}

// NewBadge creates a default badge.
func NewBadge(text string) *Badge {
	return &Badge{
		BaseComponent: NewBaseComponent(),
		text:          text,
	}
}

// View renders the badge with the default theme.
func (b *Badge) View() string {
	return b.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the badge under ctx.
func (b *Badge) ViewWithContext(ctx RenderContext) string {
	return b.computeStyle(ctx.Theme).Render(b.text)
}

func (b *Badge) computeStyle(theme Theme) lipgloss.Style {
	base := b.ComputeStyle(theme)
	if strategy := theme.Variants.Get(b.variant); strategy != nil {
		return strategy.Apply(base, theme)
	}
	return base
}

// HTML renders the badge as a Tailwind-classed span.
func (b *Badge) HTML() (safehtml.HTML, error) {
	return badgeTemplate.ExecuteToHTML(struct {
		Class string
		Text  string
	}{
		Class: ClassList("inline-flex items-center rounded-full px-2 py-0.5 text-xs font-medium", badgeHTMLClasses[b.variant]),
		Text:  b.text,
	})
}

// WithVariant sets the badge variant.
func (b *Badge) WithVariant(variant BadgeVariant) *Badge {
	b.variant = variant
	return b
}

// WithAppliers appends theme-based style modifiers.
func (b *Badge) WithAppliers(appliers ...StyleFunc) *Badge {
	b.AddAppliers(appliers...)
	return b
}

// Text returns the badge text.
func (b *Badge) Text() string {
	return b.text
}

// Variant returns the badge variant.
func (b *Badge) Variant() BadgeVariant {
	return b.variant
}

// SuccessBadge creates a success badge.
func SuccessBadge(text string) *Badge {
	return NewBadge(text).WithVariant(BadgeVariantSuccess)
}

// WarningBadge creates a warning badge.
func WarningBadge(text string) *Badge {
	return NewBadge(text).WithVariant(BadgeVariantWarning)
}

// ErrorBadge creates an error badge.
func ErrorBadge(text string) *Badge {
	return NewBadge(text).WithVariant(BadgeVariantError)
}

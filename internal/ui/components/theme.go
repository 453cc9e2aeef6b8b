package components

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
)

const paletteShadeCount = 10

// PaletteShades is a Tailwind-style colour scale, 50 (lightest) to 900 (darkest).
type PaletteShades [paletteShadeCount]lipgloss.Color

// NewPaletteShades builds a scale from colours ordered lightest to darkest.
func NewPaletteShades(colors ...lipgloss.Color) PaletteShades {
	var shades PaletteShades
	copy(shades[:], colors)
	return shades
}

// Color returns the colour at shade, or "" when shade is out of range.
func (ps PaletteShades) Color(shade PaletteShade) lipgloss.Color {
	index := int(shade)
	if index < 0 || index >= paletteShadeCount {
		return ""
	}
	return ps[index]
}

// PaletteFamily names a colour scale.
type PaletteFamily int

const (
	PaletteSlate PaletteFamily = iota
	PaletteBlue
	PaletteGreen
	PaletteRed
	PaletteYellow
)

var paletteFamilyNames = [...]string{"slate", "blue", "green", "red", "yellow"}

func (f PaletteFamily) String() string {
	if int(f) < 0 || int(f) >= len(paletteFamilyNames) {
		return "unknown"
	}
	return paletteFamilyNames[f]
}

// PaletteShade indexes a PaletteShades scale.
type PaletteShade int

const (
	PaletteShade50 PaletteShade = iota
	PaletteShade100
	PaletteShade200
	PaletteShade300
	PaletteShade400
	PaletteShade500
	PaletteShade600
	PaletteShade700
	PaletteShade800
	PaletteShade900
)

// Number returns the Tailwind shade number (50, 100, ... 900).
func (s PaletteShade) Number() int {
	if s == PaletteShade50 {
		return 50
	}
	return int(s) * 100
}

// ColorScales holds every colour family of the theme.
type ColorScales struct {
	Slate  PaletteShades
	Blue   PaletteShades
	Green  PaletteShades
	Red    PaletteShades
	Yellow PaletteShades
}

// Shades returns the scale for family, defaulting to slate.
func (c ColorScales) Shades(family PaletteFamily) PaletteShades {
	switch family {
	case PaletteBlue:
		return c.Blue
	case PaletteGreen:
		return c.Green
	case PaletteRed:
		return c.Red
	case PaletteYellow:
		return c.Yellow
	default:
		return c.Slate
	}
}

// ColourSet is a semantic colour combination.
//
//   - Base: background or brand colour
//   - OnBase: content colour legible on Base
//   - Muted: subdued variant of Base
type ColourSet struct {
	Base   lipgloss.AdaptiveColor
	OnBase lipgloss.AdaptiveColor
	Muted  lipgloss.AdaptiveColor
}

// Palette describes the semantic colour slots used by components.
type Palette struct {
	Primary ColourSet
	Surface ColourSet
	Success ColourSet
	Warning ColourSet
	Danger  ColourSet
	Info    ColourSet
	Neutral ColourSet
}

// PaletteSlot selects a ColourSet from a Palette.
type PaletteSlot func(Palette) ColourSet

var (
	PalettePrimary PaletteSlot = func(p Palette) ColourSet { return p.Primary }
	PaletteSurface PaletteSlot = func(p Palette) ColourSet { return p.Surface }
	PaletteSuccess PaletteSlot = func(p Palette) ColourSet { return p.Success }
	PaletteWarning PaletteSlot = func(p Palette) ColourSet { return p.Warning }
	PaletteDanger  PaletteSlot = func(p Palette) ColourSet { return p.Danger }
	PaletteInfo    PaletteSlot = func(p Palette) ColourSet { return p.Info }
	PaletteNeutral PaletteSlot = func(p Palette) ColourSet { return p.Neutral }
)

// SpacingSize enumerates spacing tokens.
type SpacingSize int

const (
	SpacingSizeNone SpacingSize = iota
	SpacingSizeExtraSmall
	SpacingSizeSmall
	SpacingSizeMedium
	SpacingSizeLarge
	SpacingSizeExtraLarge
)

const spacingSizeCount = int(SpacingSizeExtraLarge) + 1

// SpacingScale maps spacing tokens to terminal cells.
type SpacingScale [spacingSizeCount]int

// Value returns the cells for size, defaulting to the medium step.
func (s SpacingScale) Value(size SpacingSize) int {
	index := int(size)
	if index < 0 || index >= len(s) {
		index = int(SpacingSizeMedium)
	}
	return s[index]
}

func defaultSpacingScale() SpacingScale {
	return SpacingScale{0, 1, 1, 2, 3, 4}
}

var spacingNames = [...]string{"none", "xs", "sm", "md", "lg", "xl"}

// TypographyVariant selects a typography preset.
type TypographyVariant int

const (
	TypographyVariantBase TypographyVariant = iota
	TypographyVariantTitle
	TypographyVariantSubtitle
	TypographyVariantCode
	TypographyVariantEmphasis
	TypographyVariantCaption
)

// TypographyScale contains the typography presets.
type TypographyScale struct {
	Base     lipgloss.Style
	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Code     lipgloss.Style
	Emphasis lipgloss.Style
	Caption  lipgloss.Style
}

// BorderVariant selects a border from the theme.
type BorderVariant int

const (
	BorderVariantNone BorderVariant = iota
	BorderVariantNormal
	BorderVariantRounded
	BorderVariantThick
	BorderVariantDouble
)

// BorderSet groups the border definitions.
type BorderSet struct {
	Normal  lipgloss.Border
	Rounded lipgloss.Border
	Thick   lipgloss.Border
	Double  lipgloss.Border
}

// ShadowSize enumerates elevation tokens. Terminals have no shadows, so the
// scale only feeds HTML output.
type ShadowSize int

const (
	ShadowNone ShadowSize = iota
	ShadowSmall
	ShadowMedium
	ShadowLarge
	ShadowExtraLarge
)

// ShadowScale maps elevation tokens to CSS box-shadow values.
type ShadowScale [int(ShadowExtraLarge) + 1]string

func defaultShadowScale() ShadowScale {
	return ShadowScale{
		ShadowNone:       "none",
		ShadowSmall:      "0 1px 2px 0 rgb(0 0 0 / 0.05)",
		ShadowMedium:     "0 4px 6px -1px rgb(0 0 0 / 0.1), 0 2px 4px -2px rgb(0 0 0 / 0.1)",
		ShadowLarge:      "0 10px 15px -3px rgb(0 0 0 / 0.1), 0 4px 6px -4px rgb(0 0 0 / 0.1)",
		ShadowExtraLarge: "0 20px 25px -5px rgb(0 0 0 / 0.1), 0 8px 10px -6px rgb(0 0 0 / 0.1)",
	}
}

var shadowNames = [...]string{"none", "sm", "md", "lg", "xl"}

// TableTokens styles the parts of a data table.
type TableTokens struct {
	Header      lipgloss.Style
	Cell        lipgloss.Style
	StripedRow  lipgloss.Style
	HoverRow    lipgloss.Style
	Placeholder lipgloss.Style
	Empty       lipgloss.Style
	BorderColor lipgloss.AdaptiveColor
	// PlaceholderGlyphs animate loading cells, one glyph per frame.
	PlaceholderGlyphs []string
}

// VariantRegistry maps component variants to styling strategies.
type VariantRegistry struct {
	strategies map[any]StyleStrategy
}

// NewVariantRegistry creates an empty registry.
func NewVariantRegistry() *VariantRegistry {
	return &VariantRegistry{strategies: make(map[any]StyleStrategy)}
}

// Register maps variant to strategy.
func (vr *VariantRegistry) Register(variant any, strategy StyleStrategy) {
	vr.strategies[variant] = strategy
}

// Get returns the strategy for variant, or nil.
func (vr *VariantRegistry) Get(variant any) StyleStrategy {
	if vr == nil {
		return nil
	}
	return vr.strategies[variant]
}

// Theme is an immutable bundle of design tokens. Build it once and pass it
// through RenderContext.
type Theme struct {
	Name       string
	Palette    Palette
	Colors     ColorScales
	Spacing    SpacingScale
	Typography TypographyScale
	Borders    BorderSet
	Shadows    ShadowScale
	Table      TableTokens
	Variants   *VariantRegistry
}

func ac(light, dark string) lipgloss.AdaptiveColor {
	return lipgloss.AdaptiveColor{Light: light, Dark: dark}
}

// DefaultTheme returns the light brand theme.
func DefaultTheme() Theme {
	palette := Palette{
		Primary: ColourSet{Base: ac("#3b82f6", "#60a5fa"), OnBase: ac("#f8fafc", "#0b1120"), Muted: ac("#2563eb", "#1d4ed8")},
		Surface: ColourSet{Base: ac("#f9fafb", "#111827"), OnBase: ac("#111827", "#f9fafb"), Muted: ac("#f1f5f9", "#1f2937")},
		Success: ColourSet{Base: ac("#22c55e", "#4ade80"), OnBase: ac("#052e16", "#022c22"), Muted: ac("#16a34a", "#15803d")},
		Warning: ColourSet{Base: ac("#eab308", "#facc15"), OnBase: ac("#422006", "#422006"), Muted: ac("#ca8a04", "#a16207")},
		Danger:  ColourSet{Base: ac("#ef4444", "#f87171"), OnBase: ac("#fef2f2", "#450a0a"), Muted: ac("#dc2626", "#b91c1c")},
		Info:    ColourSet{Base: ac("#06b6d4", "#22d3ee"), OnBase: ac("#083344", "#04121a"), Muted: ac("#0891b2", "#0e7490")},
		Neutral: ColourSet{Base: ac("#64748b", "#94a3b8"), OnBase: ac("#f1f5f9", "#0f172a"), Muted: ac("#475569", "#334155")},
	}
	return buildTheme("light", palette)
}

// DarkTheme returns the dark variant of the brand theme.
func DarkTheme() Theme {
	theme := DefaultTheme()
	palette := theme.Palette
	palette.Surface = ColourSet{Base: ac("#111827", "#0b1120"), OnBase: ac("#f9fafb", "#e5e7eb"), Muted: ac("#1f2937", "#111827")}
	palette.Neutral = ColourSet{Base: ac("#475569", "#334155"), OnBase: ac("#e5e7eb", "#cbd5f5"), Muted: ac("#374151", "#1f2937")}
	return buildTheme("dark", palette)
}

// ThemeByName resolves "light"/"default" and "dark".
func ThemeByName(name string) (Theme, error) {
	switch name {
	case "", "light", "default":
		return DefaultTheme(), nil
	case "dark":
		return DarkTheme(), nil
	default:
		return Theme{}, fmt.Errorf("unknown theme %q", name)
	}
}

func buildTheme(name string, palette Palette) Theme {
	theme := Theme{
		Name:    name,
		Palette: palette,
		Colors:  defaultColorScales(),
		Spacing: defaultSpacingScale(),
		Borders: BorderSet{
			Normal:  lipgloss.NormalBorder(),
			Rounded: lipgloss.RoundedBorder(),
			Thick:   lipgloss.ThickBorder(),
			Double:  lipgloss.DoubleBorder(),
		},
		Shadows:    defaultShadowScale(),
		Typography: defaultTypography(palette),
		Variants:   NewVariantRegistry(),
	}
	theme.Table = defaultTableTokens(theme)
	registerBadgeVariants(theme.Variants)
	return theme
}

func defaultColorScales() ColorScales {
	return ColorScales{
		Slate:  NewPaletteShades("#f8fafc", "#f1f5f9", "#e2e8f0", "#cbd5e1", "#94a3b8", "#64748b", "#475569", "#334155", "#1e293b", "#0f172a"),
		Blue:   NewPaletteShades("#eff6ff", "#dbeafe", "#bfdbfe", "#93c5fd", "#60a5fa", "#3b82f6", "#2563eb", "#1d4ed8", "#1e40af", "#1e3a8a"),
		Green:  NewPaletteShades("#f0fdf4", "#dcfce7", "#bbf7d0", "#86efac", "#4ade80", "#22c55e", "#16a34a", "#15803d", "#166534", "#14532d"),
		Red:    NewPaletteShades("#fef2f2", "#fee2e2", "#fecaca", "#fca5a5", "#f87171", "#ef4444", "#dc2626", "#b91c1c", "#991b1b", "#7f1d1d"),
		Yellow: NewPaletteShades("#fefce8", "#fef3c7", "#fde68a", "#fcd34d", "#fbbf24", "#eab308", "#ca8a04", "#a16207", "#854d0e", "#713f12"),
	}
}

func defaultTypography(p Palette) TypographyScale {
	base := lipgloss.NewStyle().Foreground(p.Surface.OnBase)
	return TypographyScale{
		Base:     base,
		Title:    base.Bold(true).Foreground(p.Primary.Base),
		Subtitle: base.Foreground(p.Neutral.Base),
		Code:     base.Foreground(p.Primary.Muted).Background(p.Surface.Muted).Padding(0, 1),
		Emphasis: base.Bold(true),
		Caption:  base.Faint(true),
	}
}

func defaultTableTokens(theme Theme) TableTokens {
	p := theme.Palette
	cellPadding := theme.Spacing.Value(SpacingSizeSmall)
	cell := lipgloss.NewStyle().Padding(0, cellPadding)
	return TableTokens{
		Header: cell.
			Bold(true).
			Foreground(p.Neutral.Base),
		Cell:              cell,
		StripedRow:        lipgloss.NewStyle().Background(p.Surface.Muted),
		HoverRow:          lipgloss.NewStyle().Background(p.Primary.Base).Foreground(p.Primary.OnBase),
		Placeholder:       cell.Foreground(p.Neutral.Muted),
		Empty:             cell.Foreground(p.Neutral.Base).Italic(true),
		BorderColor:       p.Neutral.Muted,
		PlaceholderGlyphs: []string{"░", "▒", "▓", "▒"},
	}
}

// BorderForVariant returns the border for variant.
func BorderForVariant(theme Theme, variant BorderVariant) lipgloss.Border {
	switch variant {
	case BorderVariantNormal:
		return theme.Borders.Normal
	case BorderVariantRounded:
		return theme.Borders.Rounded
	case BorderVariantThick:
		return theme.Borders.Thick
	case BorderVariantDouble:
		return theme.Borders.Double
	default:
		return lipgloss.HiddenBorder()
	}
}

// TypographyStyle returns the preset for variant.
func TypographyStyle(theme Theme, variant TypographyVariant) lipgloss.Style {
	typo := theme.Typography
	switch variant {
	case TypographyVariantTitle:
		return typo.Title
	case TypographyVariantSubtitle:
		return typo.Subtitle
	case TypographyVariantCode:
		return typo.Code
	case TypographyVariantEmphasis:
		return typo.Emphasis
	case TypographyVariantCaption:
		return typo.Caption
	default:
		return typo.Base
	}
}

// Background applies a slot's background with its matching foreground.
func Background(slot PaletteSlot) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		cs := slot(theme.Palette)
		return base.Background(cs.Base).Foreground(cs.OnBase)
	}
}

// Foreground applies a slot's base colour to text.
func Foreground(slot PaletteSlot) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		return base.Foreground(slot(theme.Palette).Base)
	}
}

// Border applies a themed border.
func Border(variant BorderVariant) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		return base.Border(BorderForVariant(theme, variant))
	}
}

// PaddingX applies horizontal padding from the spacing scale.
func PaddingX(size SpacingSize) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		value := theme.Spacing.Value(size)
		return base.PaddingLeft(value).PaddingRight(value)
	}
}

// PaddingY applies vertical padding from the spacing scale.
func PaddingY(size SpacingSize) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		value := theme.Spacing.Value(size)
		return base.PaddingTop(value).PaddingBottom(value)
	}
}

// MarginY applies vertical margin from the spacing scale.
func MarginY(size SpacingSize) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		value := theme.Spacing.Value(size)
		return base.MarginTop(value).MarginBottom(value)
	}
}

// Typography inherits a typography preset.
func Typography(variant TypographyVariant) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		return base.Inherit(TypographyStyle(theme, variant))
	}
}

// Token is one named design-token value, used for documentation output.
type Token struct {
	Group string
	Name  string
	Value string
}

// Tokens lists the theme's colour scales, spacing and shadow tokens in a stable order.
func (t Theme) Tokens() []Token {
	tokens := make([]Token, 0, len(paletteFamilyNames)*paletteShadeCount+spacingSizeCount+len(shadowNames))
	for family := PaletteSlate; family <= PaletteYellow; family++ {
		shades := t.Colors.Shades(family)
		for shade := PaletteShade50; shade <= PaletteShade900; shade++ {
			tokens = append(tokens, Token{
				Group: "color",
				Name:  family.String() + "-" + strconv.Itoa(shade.Number()),
				Value: string(shades.Color(shade)),
			})
		}
	}
	for i, name := range spacingNames {
		tokens = append(tokens, Token{Group: "spacing", Name: name, Value: strconv.Itoa(t.Spacing[i])})
	}
	for i, name := range shadowNames {
		tokens = append(tokens, Token{Group: "shadow", Name: name, Value: t.Shadows[i]})
	}
	return tokens
}

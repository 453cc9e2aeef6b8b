package components

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestThemeByName(t *testing.T) {
	t.Parallel()

	light, err := ThemeByName("")
	require.NoError(t, err)
	assert.Equal(t, "light", light.Name)

	dark, err := ThemeByName("dark")
	require.NoError(t, err)
	assert.Equal(t, "dark", dark.Name)
	assert.NotEqual(t, light.Palette.Surface, dark.Palette.Surface)

	_, err = ThemeByName("neon")
	require.Error(t, err)
}

func TestPaletteShades(t *testing.T) {
	t.Parallel()

	shades := NewPaletteShades("#000", "#111")
	assert.Equal(t, lipgloss.Color("#111"), shades.Color(PaletteShade100))
	assert.Equal(t, lipgloss.Color(""), shades.Color(PaletteShade900))
	assert.Equal(t, lipgloss.Color(""), shades.Color(PaletteShade(42)))
	assert.Equal(t, 50, PaletteShade50.Number())
	assert.Equal(t, 900, PaletteShade900.Number())
}

func TestSpacingScaleFallsBackToMedium(t *testing.T) {
	t.Parallel()

	scale := defaultSpacingScale()
	assert.Equal(t, scale[SpacingSizeMedium], scale.Value(SpacingSize(-1)))
	assert.Equal(t, scale[SpacingSizeMedium], scale.Value(SpacingSize(99)))
	assert.Equal(t, 0, scale.Value(SpacingSizeNone))
}

func TestThemeTokens(t *testing.T) {
	t.Parallel()

	tokens := DefaultTheme().Tokens()
	require.Len(t, tokens, 5*10+6+5)

	first := tokens[0]
	assert.Equal(t, Token{Group: "color", Name: "slate-50", Value: "#f8fafc"}, first)

	groups := map[string]int{}
	for _, token := range tokens {
		groups[token.Group]++
	}
	assert.Equal(t, map[string]int{"color": 50, "spacing": 6, "shadow": 5}, groups)
}

func TestMergeSkipsNilAndKeepsOrder(t *testing.T) {
	t.Parallel()

	theme := DefaultTheme()
	style := Merge(
		PaddingX(SpacingSizeSmall),
		When(false, PaddingX(SpacingSizeExtraLarge)),
		nil,
		When(true, PaddingX(SpacingSizeMedium)),
	)(lipgloss.NewStyle(), theme)

	assert.Equal(t, theme.Spacing.Value(SpacingSizeMedium), style.GetPaddingLeft())
	assert.Equal(t, theme.Spacing.Value(SpacingSizeMedium), style.GetPaddingRight())
}

func TestRenderHandlesPlainAndNil(t *testing.T) {
	t.Parallel()

	ctx := DefaultContext()
	assert.Equal(t, "", Render(ctx, nil))
	assert.Equal(t, "plain", Render(ctx, NewText("plain")))
}

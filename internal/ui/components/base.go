package components

import (
	"github.com/alexisbeaulieu97/designsystem/internal/ui"
	"github.com/charmbracelet/lipgloss"
)

// BaseComponent provides the raw style and theme-driven strategy shared by components.
// Embed it to get WithAppliers-style behaviour.
type BaseComponent struct {
	style    lipgloss.Style
	strategy StyleStrategy
}

// StyleStrategy turns a base style into a themed style.
type StyleStrategy interface {
	Apply(base lipgloss.Style, theme Theme) lipgloss.Style
}

// StyleFunc applies one theme-aware transformation to a lipgloss.Style.
// It plays the role a utility class plays in a CSS design system.
type StyleFunc func(lipgloss.Style, Theme) lipgloss.Style

// CompositeStrategy applies StyleFuncs in order.
type CompositeStrategy struct {
	funcs []StyleFunc
}

// Apply applies all style functions in order.
func (c CompositeStrategy) Apply(base lipgloss.Style, theme Theme) lipgloss.Style {
	for _, fn := range c.funcs {
		if fn == nil {
			continue
		}
		base = fn(base, theme)
	}
	return base
}

// NewCompositeStrategy creates a strategy from multiple style functions.
func NewCompositeStrategy(funcs ...StyleFunc) StyleStrategy {
	return CompositeStrategy{funcs: funcs}
}

// Merge folds style functions into one, later functions overriding earlier ones.
// Nil entries are skipped so callers can pass conditional modifiers:
//
//	Merge(Padding(SpacingSizeSmall), When(striped, Background(PaletteSurface)))
func Merge(funcs ...StyleFunc) StyleFunc {
	merged := make([]StyleFunc, 0, len(funcs))
	for _, fn := range funcs {
		if fn != nil {
			merged = append(merged, fn)
		}
	}
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		for _, fn := range merged {
			base = fn(base, theme)
		}
		return base
	}
}

// When returns fn if cond holds and nil otherwise, for use with Merge.
func When(cond bool, fn StyleFunc) StyleFunc {
	if !cond {
		return nil
	}
	return fn
}

// NewBaseComponent creates a base component with an empty style.
func NewBaseComponent() BaseComponent {
	return BaseComponent{
		style:    lipgloss.NewStyle(),
		strategy: CompositeStrategy{},
	}
}

// ComputeStyle returns the style for this component under theme.
func (b *BaseComponent) ComputeStyle(theme Theme) lipgloss.Style {
	if b.strategy == nil {
		return b.style
	}
	return b.strategy.Apply(b.style, theme)
}

// SetStyle replaces the raw lipgloss style.
func (b *BaseComponent) SetStyle(style lipgloss.Style) {
	b.style = style
}

// SetAppliers replaces the strategy with the given style functions.
func (b *BaseComponent) SetAppliers(appliers ...StyleFunc) {
	b.strategy = NewCompositeStrategy(appliers...)
}

// AddAppliers appends style functions after the existing strategy.
func (b *BaseComponent) AddAppliers(appliers ...StyleFunc) {
	if existing, ok := b.strategy.(CompositeStrategy); ok {
		funcs := make([]StyleFunc, len(existing.funcs), len(existing.funcs)+len(appliers))
		copy(funcs, existing.funcs)
		b.strategy = CompositeStrategy{funcs: append(funcs, appliers...)}
		return
	}

	current := b.strategy
	b.strategy = NewCompositeStrategy(func(base lipgloss.Style, theme Theme) lipgloss.Style {
		if current != nil {
			base = current.Apply(base, theme)
		}
		for _, applier := range appliers {
			base = applier(base, theme)
		}
		return base
	})
}

// RenderContext carries the theme and layout information for one render pass.
// Rendering is a pure function of the component and its context.
type RenderContext struct {
	Theme Theme
	// MaxWidth limits the rendered width; zero or negative means unlimited.
	MaxWidth int
	// Frame drives animated content such as loading placeholders.
	Frame int
}

// DefaultContext returns a render context with the default theme and no width limit.
func DefaultContext() RenderContext {
	return RenderContext{Theme: DefaultTheme()}
}

// WithTheme returns a copy of the context using theme.
func (r RenderContext) WithTheme(theme Theme) RenderContext {
	r.Theme = theme
	return r
}

// WithMaxWidth returns a copy of the context limited to width columns.
func (r RenderContext) WithMaxWidth(width int) RenderContext {
	r.MaxWidth = width
	return r
}

// WithFrame returns a copy of the context at the given animation frame.
func (r RenderContext) WithFrame(frame int) RenderContext {
	r.Frame = frame
	return r
}

// ContextualRenderable is a component that renders differently per context.
type ContextualRenderable interface {
	ui.Renderable
	ViewWithContext(ctx RenderContext) string
}

// Render renders r under ctx, falling back to View for plain renderables.
// A nil renderable yields the empty string.
func Render(ctx RenderContext, r ui.Renderable) string {
	if r == nil {
		return ""
	}
	if contextual, ok := r.(ContextualRenderable); ok {
		return contextual.ViewWithContext(ctx)
	}
	return r.View()
}

// Package components provides the design tokens and styled primitives of the
// design system, rendered to terminals with lipgloss and to HTML with safehtml.
//
// # Tokens
//
// A Theme bundles colour scales, semantic palette slots, spacing, typography,
// borders, shadows and table styles. Themes are immutable values passed through
// a RenderContext:
//
//	ctx := components.DefaultContext().WithTheme(components.DarkTheme())
//	out := components.Render(ctx, components.SuccessBadge("active"))
//
// # Modifiers
//
// StyleFunc is the terminal counterpart of a utility class. Merge combines
// modifiers the way a class-list helper combines classes, later entries
// winning, and When makes one conditional:
//
//	style := components.Merge(
//		components.PaddingX(components.SpacingSizeSmall),
//		components.When(active, components.Background(components.PalettePrimary)),
//	)(lipgloss.NewStyle(), theme)
//
// For HTML output ClassList merges Tailwind utility strings and resolves
// conflicts inside a utility group ("px-2 px-4" becomes "px-4").
//
// # Components
//
//   - Text: styled text content
//   - Badge: status indicator, also renderable as HTML
//
// Tabular data lives in the datatable subpackage.
package components

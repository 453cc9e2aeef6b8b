package datatable

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/alexisbeaulieu97/designsystem/internal/ui/components"
)

const minPlaceholderWidth = 3

// RenderTerminal draws view with the table tokens of ctx.Theme.
func RenderTerminal(view View, ctx components.RenderContext) string {
	tokens := ctx.Theme.Table
	pad := tokens.Cell.GetHorizontalPadding()

	headers := make([]string, len(view.Headers))
	for i, h := range view.Headers {
		headers[i] = inline(components.Render(ctx, h.Content))
	}

	texts := make([][]string, len(view.Rows))
	for r, row := range view.Rows {
		if row.Kind != RowData {
			continue
		}
		texts[r] = make([]string, len(row.Cells))
		for c, cell := range row.Cells {
			texts[r][c] = inline(components.Render(ctx, cell.Content))
		}
	}

	emptyText := ""
	for _, row := range view.Rows {
		if row.Kind == RowEmpty && len(row.Cells) > 0 {
			emptyText = inline(components.Render(ctx, row.Cells[0].Content))
		}
	}

	widths := columnWidths(view, headers, texts)
	fitWidth(widths, pad, ansi.StringWidth(emptyText)+pad)
	sep, ruleJoint := " ", "─"
	if view.Bordered {
		sep, ruleJoint = "│", "┼"
	}
	sepStyle := lipgloss.NewStyle().Foreground(tokens.BorderColor)

	var lines []string
	if len(view.Headers) > 0 {
		cells := make([]string, len(headers))
		rule := make([]string, len(headers))
		for i, h := range view.Headers {
			cells[i] = renderCell(tokens.Header, headers[i], widths[i], pad, h.Align)
			rule[i] = strings.Repeat("─", widths[i]+pad)
		}
		lines = append(lines,
			strings.Join(cells, sepStyle.Render(sep)),
			sepStyle.Render(strings.Join(rule, ruleJoint)),
		)
	}

	total := tableWidth(widths, pad)

	glyphs := tokens.PlaceholderGlyphs
	if len(glyphs) == 0 {
		glyphs = []string{"░"}
	}

	for r, row := range view.Rows {
		switch row.Kind {
		case RowEmpty:
			width := total
			if width == 0 {
				width = ansi.StringWidth(emptyText) + pad
			}
			lines = append(lines, tokens.Empty.Width(width).Align(lipgloss.Center).Render(emptyText))
		case RowPlaceholder:
			glyph := glyphs[(ctx.Frame+row.Index)%len(glyphs)]
			cells := make([]string, len(row.Cells))
			for c, cell := range row.Cells {
				cells[c] = renderCell(tokens.Placeholder, strings.Repeat(glyph, widths[c]), widths[c], pad, cell.Align)
			}
			lines = append(lines, strings.Join(cells, sepStyle.Render(sep)))
		default:
			base := tokens.Cell
			switch {
			case row.Highlighted:
				base = base.Inherit(tokens.HoverRow)
			case row.Striped:
				base = base.Inherit(tokens.StripedRow)
			}
			cells := make([]string, len(row.Cells))
			for c, cell := range row.Cells {
				cells[c] = renderCell(base, texts[r][c], widths[c], pad, cell.Align)
			}
			lines = append(lines, strings.Join(cells, sepStyle.Render(sep)))
		}
	}

	out := strings.Join(lines, "\n")
	if view.Bordered {
		out = lipgloss.NewStyle().
			Border(ctx.Theme.Borders.Rounded).
			BorderForeground(tokens.BorderColor).
			Render(out)
	}
	if ctx.MaxWidth > 0 {
		out = lipgloss.NewStyle().MaxWidth(ctx.MaxWidth).Render(out)
	}
	return out
}

func columnWidths(view View, headers []string, texts [][]string) []int {
	widths := make([]int, len(view.Headers))
	for i, h := range view.Headers {
		if h.Width > 0 {
			widths[i] = h.Width
			continue
		}
		w := ansi.StringWidth(headers[i])
		for r, row := range view.Rows {
			if row.Kind == RowPlaceholder && w < minPlaceholderWidth {
				w = minPlaceholderWidth
			}
			if row.Kind == RowData && i < len(texts[r]) {
				w = max(w, ansi.StringWidth(texts[r][i]))
			}
		}
		widths[i] = max(w, 1)
	}
	return widths
}

// tableWidth is the width of one rendered row: every padded column plus
// the separators between them.
func tableWidth(widths []int, pad int) int {
	total := 0
	for _, w := range widths {
		total += w + pad
	}
	if len(widths) > 1 {
		total += len(widths) - 1
	}
	return total
}

// fitWidth grows the last column until a row spans at least need cells, so
// full-width content such as the empty-state message never wraps.
func fitWidth(widths []int, pad, need int) {
	if len(widths) == 0 {
		return
	}
	if short := need - tableWidth(widths, pad); short > 0 {
		widths[len(widths)-1] += short
	}
}

func renderCell(style lipgloss.Style, text string, width, pad int, align Align) string {
	if ansi.StringWidth(text) > width {
		text = ansi.Truncate(text, width, "…")
	}
	return style.Width(width + pad).Align(lipglossPosition(align)).Render(text)
}

func lipglossPosition(align Align) lipgloss.Position {
	switch align {
	case AlignCenter:
		return lipgloss.Center
	case AlignRight:
		return lipgloss.Right
	default:
		return lipgloss.Left
	}
}

// inline flattens multi-line content onto one line.
func inline(s string) string {
	return strings.ReplaceAll(s, "\n", " ")
}

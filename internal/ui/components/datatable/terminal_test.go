package datatable

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/designsystem/internal/ui/components"
)

func renderLines(t *testing.T, props Props[record], ctx components.RenderContext) []string {
	t.Helper()
	out := ansi.Strip(RenderTerminal(Build(props), ctx))
	return strings.Split(out, "\n")
}

func TestRenderTerminalPopulated(t *testing.T) {
	t.Parallel()

	props := DefaultProps(statusColumns(), []record{{"name": "Alice", "status": "active"}})
	lines := renderLines(t, props, components.DefaultContext())

	require.Len(t, lines, 3)
	assert.Contains(t, lines[0], "Name")
	assert.Contains(t, lines[0], "Status")
	assert.Contains(t, lines[1], "─")
	assert.Contains(t, lines[2], "Alice")
	assert.Contains(t, lines[2], "[active]")
	assert.Less(t, strings.Index(lines[2], "Alice"), strings.Index(lines[2], "[active]"))
}

func TestRenderTerminalEmpty(t *testing.T) {
	t.Parallel()

	lines := renderLines(t, DefaultProps(statusColumns(), nil), components.DefaultContext())

	require.Len(t, lines, 3)
	assert.Contains(t, lines[2], DefaultEmptyMessage)
	assert.Equal(t, ansi.StringWidth(lines[0]), ansi.StringWidth(lines[2]), "empty row spans the header width")
}

func TestRenderTerminalEmptyNarrowColumns(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		columns []Column[record]
		message string
	}{
		{
			name:    "one short column",
			columns: []Column[record]{{ID: "id", Header: "ID", Accessor: Field[record]("id")}},
			message: DefaultEmptyMessage,
		},
		{
			name: "fixed widths",
			columns: []Column[record]{
				{ID: "a", Header: "A", Accessor: Field[record]("a"), Width: 1},
				{ID: "b", Header: "B", Accessor: Field[record]("b"), Width: 1},
			},
			message: "Nobody is here yet",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			props := DefaultProps(tt.columns, nil)
			if tt.message != DefaultEmptyMessage {
				props.EmptyState = components.NewText(tt.message)
			}
			lines := renderLines(t, props, components.DefaultContext())

			require.Len(t, lines, 3)
			assert.Contains(t, lines[2], tt.message)
			assert.Equal(t, ansi.StringWidth(lines[0]), ansi.StringWidth(lines[2]))
		})
	}
}

func TestRenderTerminalLoading(t *testing.T) {
	t.Parallel()

	props := DefaultProps(statusColumns(), []record{{"name": "Alice", "status": "active"}})
	props.Loading = true
	ctx := components.DefaultContext()
	lines := renderLines(t, props, ctx)

	require.Len(t, lines, 2+PlaceholderRows)
	glyphs := ctx.Theme.Table.PlaceholderGlyphs
	for i, line := range lines[2:] {
		assert.NotContains(t, line, "Alice")
		assert.Contains(t, line, glyphs[i%len(glyphs)])
	}

	first := renderLines(t, props, ctx.WithFrame(0))
	next := renderLines(t, props, ctx.WithFrame(1))
	assert.NotEqual(t, first[2], next[2], "placeholders animate with the frame")
}

func TestRenderTerminalBordered(t *testing.T) {
	t.Parallel()

	props := DefaultProps(statusColumns(), []record{{"name": "Alice", "status": "active"}})
	props.Bordered = true
	lines := renderLines(t, props, components.DefaultContext())

	require.Len(t, lines, 5)
	assert.True(t, strings.HasPrefix(lines[0], "╭"))
	assert.Contains(t, lines[2], "┼")
	assert.Contains(t, lines[3], "│")
}

func TestRenderTerminalFixedWidthTruncates(t *testing.T) {
	t.Parallel()

	columns := []Column[record]{{ID: "name", Header: "Name", Accessor: Field[record]("name"), Width: 4}}
	lines := renderLines(t, DefaultProps(columns, []record{{"name": "Bartholomew"}}), components.DefaultContext())

	require.Len(t, lines, 3)
	assert.Contains(t, lines[2], "Bar…")
	assert.NotContains(t, lines[2], "Bartholomew")
}

func TestRenderTerminalAlignment(t *testing.T) {
	t.Parallel()

	columns := []Column[record]{{ID: "n", Header: "Amount", Accessor: Field[record]("n"), Align: AlignRight}}
	lines := renderLines(t, DefaultProps(columns, []record{{"n": 7}}), components.DefaultContext())

	row := strings.TrimRight(lines[2], " ")
	assert.True(t, strings.HasSuffix(row, "7"))
	assert.Equal(t, len(strings.TrimRight(lines[0], " ")), len(row))
}

func TestRenderTerminalMaxWidth(t *testing.T) {
	t.Parallel()

	props := DefaultProps(statusColumns(), []record{{"name": "Alice", "status": "active"}})
	lines := renderLines(t, props, components.DefaultContext().WithMaxWidth(6))
	for _, line := range lines {
		assert.LessOrEqual(t, ansi.StringWidth(line), 6)
	}
}

func TestRenderTerminalIsDeterministic(t *testing.T) {
	t.Parallel()

	props := DefaultProps(statusColumns(), []record{{"name": "Alice", "status": "active"}})
	ctx := components.DefaultContext()
	assert.Equal(t, RenderTerminal(Build(props), ctx), RenderTerminal(Build(props), ctx))
}

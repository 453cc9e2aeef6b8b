package datatable

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/designsystem/internal/ui"
	"github.com/alexisbeaulieu97/designsystem/internal/ui/components"
)

func renderHTML(t *testing.T, props Props[record]) string {
	t.Helper()
	renderer, err := NewHTMLRenderer(components.DefaultTableClasses())
	require.NoError(t, err)
	html, err := renderer.RenderHTML(Build(props))
	require.NoError(t, err)
	return html.String()
}

func TestRenderHTMLPopulated(t *testing.T) {
	t.Parallel()

	out := renderHTML(t, DefaultProps(statusColumns(), []record{{"name": "Alice", "status": "active"}}))

	assert.Equal(t, 2, strings.Count(out, "<th "))
	assert.Equal(t, 2, strings.Count(out, "<td "))
	assert.Contains(t, out, `scope="col"`)
	assert.Contains(t, out, "Alice")
	assert.Contains(t, out, "[active]")
	assert.Contains(t, out, "hover:bg-slate-100")
}

func TestRenderHTMLEscapesText(t *testing.T) {
	t.Parallel()

	columns := []Column[record]{{ID: "name", Header: "<Name>", Accessor: Field[record]("name")}}
	out := renderHTML(t, DefaultProps(columns, []record{{"name": "<script>alert(1)</script>"}}))

	assert.NotContains(t, out, "<script>")
	assert.Contains(t, out, "&lt;script&gt;")
	assert.Contains(t, out, "&lt;Name&gt;")
}

func TestRenderHTMLEmptySpansColumns(t *testing.T) {
	t.Parallel()

	out := renderHTML(t, DefaultProps(statusColumns(), nil))

	assert.Equal(t, 1, strings.Count(out, "<td "))
	assert.Contains(t, out, `colspan="2"`)
	assert.Contains(t, out, DefaultEmptyMessage)
	assert.NotContains(t, out, "hover:bg-slate-100", "state rows are not hoverable")
}

func TestRenderHTMLLoading(t *testing.T) {
	t.Parallel()

	props := DefaultProps(statusColumns(), []record{{"name": "Alice"}})
	props.Loading = true
	out := renderHTML(t, props)

	assert.Equal(t, PlaceholderRows*2, strings.Count(out, "animate-pulse"))
	assert.NotContains(t, out, "Alice")
}

func TestRenderHTMLStripedAndBordered(t *testing.T) {
	t.Parallel()

	props := DefaultProps(statusColumns(), []record{{"name": "a"}, {"name": "b"}, {"name": "c"}})
	props.Striped = true
	props.Bordered = true
	props.Hoverable = false
	out := renderHTML(t, props)

	assert.Equal(t, 1, strings.Count(out, `<tr class="bg-slate-50">`), "only the second row is striped")
	assert.Contains(t, out, "border border-slate-200")
	assert.NotContains(t, out, "hover:")
}

func TestRenderHTMLUsesComponentHTML(t *testing.T) {
	t.Parallel()

	columns := []Column[record]{{
		ID:       "status",
		Header:   "Status",
		Accessor: Field[record]("status"),
		Cell: func(ctx CellContext[record]) ui.Renderable {
			return components.SuccessBadge(ctx.Value.(string))
		},
	}}
	out := renderHTML(t, DefaultProps(columns, []record{{"status": "active"}}))

	assert.Contains(t, out, "<span class=")
	assert.Contains(t, out, "bg-green-100")
	assert.Contains(t, out, ">active</span>")
}

func TestRenderHTMLAlignment(t *testing.T) {
	t.Parallel()

	columns := []Column[record]{{ID: "n", Header: "N", Accessor: Field[record]("n"), Align: AlignRight}}
	out := renderHTML(t, DefaultProps(columns, []record{{"n": 1}}))

	assert.Contains(t, out, "text-right")
	assert.NotContains(t, out, "text-left", "alignment replaces the default")
}

func TestDataTableWriteHTMLMatchesHTML(t *testing.T) {
	t.Parallel()

	table := New(statusColumns(), []record{{"name": "Alice", "status": "active"}})
	html, err := table.HTML()
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, table.WriteHTML(&buf))
	assert.Equal(t, html.String(), buf.String())
}

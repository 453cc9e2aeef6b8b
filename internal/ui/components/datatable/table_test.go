package datatable

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/designsystem/internal/ui"
	"github.com/alexisbeaulieu97/designsystem/internal/ui/components"
)

func splitLines(s string) []string {
	return strings.Split(s, "\n")
}

func TestDataTableFluentProps(t *testing.T) {
	t.Parallel()

	key := func(row record, _ int) string { return row["name"].(string) }
	table := New(statusColumns(), people()).
		WithStriped(true).
		WithBordered(true).
		WithHoverable(false).
		WithHighlight(1).
		WithEmptyState(ui.StringView("nobody")).
		WithRowKey(key)

	props := table.Props()
	assert.True(t, props.Striped)
	assert.True(t, props.Bordered)
	assert.False(t, props.Hoverable)
	assert.Equal(t, 1, props.Highlight)
	assert.Equal(t, ui.StringView("nobody"), props.EmptyState)

	view := table.Build()
	require.Len(t, view.Rows, 3)
	assert.Equal(t, "Bob", view.Rows[1].Key)
	assert.False(t, view.Rows[1].Highlighted, "highlight needs hoverable")
	assert.True(t, view.Rows[1].Striped)
}

func TestDataTableView(t *testing.T) {
	t.Parallel()

	table := New(statusColumns(), people())
	out := ansi.Strip(table.View())

	assert.Len(t, splitLines(out), 2+len(people()))
	assert.Equal(t, out, ansi.Strip(table.ViewWithContext(components.DefaultContext())))
	assert.Equal(t, table.View(), table.View())
}

func TestDataTableWithAppliers(t *testing.T) {
	t.Parallel()

	table := New(statusColumns(), people()).WithAppliers(components.MarginY(components.SpacingSizeSmall))
	lines := splitLines(ansi.Strip(table.View()))
	require.Len(t, lines, 2+len(people())+2)
	assert.Empty(t, strings.TrimSpace(lines[0]))
}

func TestDataTableLen(t *testing.T) {
	t.Parallel()

	table := New(statusColumns(), people())
	assert.Equal(t, 3, table.Len())
	table.WithLoading(true)
	assert.Zero(t, table.Len())
	table.WithLoading(false).WithData(nil)
	assert.Zero(t, table.Len())
}

func TestDataTableRowText(t *testing.T) {
	t.Parallel()

	table := New(statusColumns(), people())
	assert.Equal(t, []string{"Bob", "[away]"}, table.RowText(1))
	assert.Nil(t, table.RowText(-1))
	assert.Nil(t, table.RowText(3))
	assert.Nil(t, table.WithLoading(true).RowText(0))
}

func TestDataTableActivate(t *testing.T) {
	t.Parallel()

	got := -1
	table := New(statusColumns(), people()).OnRowClick(func(_ record, index int) { got = index })
	assert.True(t, table.Activate(2))
	assert.Equal(t, 2, got)
	assert.False(t, table.Activate(5))
}

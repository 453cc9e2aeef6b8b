package datatable

import (
	"io"
	"strings"
	"sync"

	"github.com/charmbracelet/x/ansi"
	"github.com/google/safehtml"

	"github.com/alexisbeaulieu97/designsystem/internal/ui"
	"github.com/alexisbeaulieu97/designsystem/internal/ui/components"
)

// DataTable is the component form of a table: props set fluently, rendered
// with View, ViewWithContext or HTML.
type DataTable[T any] struct {
	components.BaseComponent
	props Props[T]
}

// New creates a table over columns and data with the default props.
func New[T any](columns []Column[T], data []T) *DataTable[T] {
	return &DataTable[T]{
		BaseComponent: components.NewBaseComponent(),
		props:         DefaultProps(columns, data),
	}
}

// Props returns a copy of the current props.
func (t *DataTable[T]) Props() Props[T] {
	return t.props
}

// WithData replaces the rows.
func (t *DataTable[T]) WithData(data []T) *DataTable[T] {
	t.props.Data = data
	return t
}

// WithLoading toggles the loading state.
func (t *DataTable[T]) WithLoading(loading bool) *DataTable[T] {
	t.props.Loading = loading
	return t
}

// WithEmptyState overrides the empty-table message.
func (t *DataTable[T]) WithEmptyState(content ui.Renderable) *DataTable[T] {
	t.props.EmptyState = content
	return t
}

// WithBordered toggles cell borders.
func (t *DataTable[T]) WithBordered(bordered bool) *DataTable[T] {
	t.props.Bordered = bordered
	return t
}

// WithStriped toggles alternating row backgrounds.
func (t *DataTable[T]) WithStriped(striped bool) *DataTable[T] {
	t.props.Striped = striped
	return t
}

// WithHoverable toggles hover highlighting.
func (t *DataTable[T]) WithHoverable(hoverable bool) *DataTable[T] {
	t.props.Hoverable = hoverable
	return t
}

// WithHighlight marks the hovered data row; -1 clears it.
func (t *DataTable[T]) WithHighlight(index int) *DataTable[T] {
	t.props.Highlight = index
	return t
}

// WithRowKey sets the row key function.
func (t *DataTable[T]) WithRowKey(fn KeyFunc[T]) *DataTable[T] {
	t.props.RowKey = fn
	return t
}

// OnRowClick sets the row activation handler.
func (t *DataTable[T]) OnRowClick(fn func(row T, index int)) *DataTable[T] {
	t.props.OnRowClick = fn
	return t
}

// WithAppliers adds style modifiers to the outer table block.
func (t *DataTable[T]) WithAppliers(appliers ...components.StyleFunc) *DataTable[T] {
	t.AddAppliers(appliers...)
	return t
}

// Build resolves the current props into a View.
func (t *DataTable[T]) Build() View {
	return Build(t.props)
}

// View renders the table with the default theme.
func (t *DataTable[T]) View() string {
	return t.ViewWithContext(components.DefaultContext())
}

// ViewWithContext renders the table under ctx.
func (t *DataTable[T]) ViewWithContext(ctx components.RenderContext) string {
	return t.ComputeStyle(ctx.Theme).Render(RenderTerminal(t.Build(), ctx))
}

var (
	defaultHTMLOnce     sync.Once
	defaultHTMLRenderer *HTMLRenderer
	defaultHTMLErr      error
)

func defaultHTML() (*HTMLRenderer, error) {
	defaultHTMLOnce.Do(func() {
		defaultHTMLRenderer, defaultHTMLErr = NewHTMLRenderer(components.DefaultTableClasses())
	})
	return defaultHTMLRenderer, defaultHTMLErr
}

// HTML renders the table as a safe HTML fragment with the default classes.
func (t *DataTable[T]) HTML() (safehtml.HTML, error) {
	renderer, err := defaultHTML()
	if err != nil {
		return safehtml.HTML{}, err
	}
	return renderer.RenderHTML(t.Build())
}

// WriteHTML writes the table's HTML to w.
func (t *DataTable[T]) WriteHTML(w io.Writer) error {
	renderer, err := defaultHTML()
	if err != nil {
		return err
	}
	return renderer.Render(w, t.Build())
}

// Activate invokes the row click handler for the data row at index.
func (t *DataTable[T]) Activate(index int) bool {
	return Activate(t.props, index)
}

// Len returns the number of data rows, or zero while loading.
func (t *DataTable[T]) Len() int {
	if t.props.Loading {
		return 0
	}
	return len(t.props.Data)
}

// RowText returns the unstyled, trimmed text of each cell of the data row at index.
func (t *DataTable[T]) RowText(index int) []string {
	if t.props.Loading || index < 0 || index >= len(t.props.Data) {
		return nil
	}
	row := t.props.Data[index]
	out := make([]string, len(t.props.Columns))
	for i, col := range t.props.Columns {
		cell := ResolveCell(col, row, index)
		if cell.Content != nil {
			out[i] = strings.TrimSpace(ansi.Strip(cell.Content.View()))
		}
	}
	return out
}

package datatable

import (
	"strconv"

	"github.com/alexisbeaulieu97/designsystem/internal/ui"
)

const (
	// PlaceholderRows is the number of rows drawn while loading.
	PlaceholderRows = 5
	// DefaultEmptyMessage is shown for an empty table without an EmptyState.
	DefaultEmptyMessage = "No data available"
)

// RowKind tells data rows apart from state rows.
type RowKind int

const (
	RowData RowKind = iota
	RowPlaceholder
	RowEmpty
)

// HeaderView is one resolved column heading.
type HeaderView struct {
	ColumnID string
	Content  ui.Renderable
	Width    int
	Align    Align
	Sortable bool
}

// CellView is one positioned cell.
type CellView struct {
	ColumnID string
	Value    any
	Content  ui.Renderable
	ColSpan  int
	Width    int
	Align    Align

	// Placeholder marks a loading cell that has no content.
	Placeholder bool
}

// RowView is one rendered row.
type RowView struct {
	Key  string
	Kind RowKind
	// Index is the position in data for data rows, otherwise the row position.
	Index       int
	Striped     bool
	Highlighted bool
	Cells       []CellView
}

// View is the renderer-independent table tree for one render.
type View struct {
	State     State
	Headers   []HeaderView
	Rows      []RowView
	Bordered  bool
	Striped   bool
	Hoverable bool
}

// ColumnCount returns the number of columns.
func (v View) ColumnCount() int {
	return len(v.Headers)
}

// Build resolves props into a View. It reads Data only in the populated state.
func Build[T any](props Props[T]) View {
	view := View{
		Headers:   buildHeaders(props.Columns),
		Bordered:  props.Bordered,
		Striped:   props.Striped,
		Hoverable: props.Hoverable,
	}

	view.State = DeriveState(props.Loading, len(props.Data))
	switch view.State {
	case StateLoading:
		view.Rows = placeholderRows(props.Columns)
	case StateEmpty:
		view.Rows = []RowView{emptyRow(props.Columns, props.EmptyState)}
	case StatePopulated:
		view.Rows = dataRows(props)
	}
	return view
}

func buildHeaders[T any](columns []Column[T]) []HeaderView {
	headers := make([]HeaderView, len(columns))
	for i, col := range columns {
		content := col.HeaderContent
		if content == nil && col.Header != "" {
			content = ui.StringView(col.Header)
		}
		headers[i] = HeaderView{
			ColumnID: col.ID,
			Content:  content,
			Width:    col.Width,
			Align:    col.Align,
			Sortable: col.Sortable,
		}
	}
	return headers
}

func placeholderRows[T any](columns []Column[T]) []RowView {
	rows := make([]RowView, PlaceholderRows)
	for i := range rows {
		cells := make([]CellView, len(columns))
		for j, col := range columns {
			cells[j] = CellView{ColumnID: col.ID, ColSpan: 1, Width: col.Width, Align: col.Align, Placeholder: true}
		}
		rows[i] = RowView{
			Key:   "placeholder-" + strconv.Itoa(i),
			Kind:  RowPlaceholder,
			Index: i,
			Cells: cells,
		}
	}
	return rows
}

func emptyRow[T any](columns []Column[T], emptyState ui.Renderable) RowView {
	content := emptyState
	if content == nil {
		content = ui.StringView(DefaultEmptyMessage)
	}
	span := len(columns)
	if span < 1 {
		span = 1
	}
	return RowView{
		Key:   "empty",
		Kind:  RowEmpty,
		Cells: []CellView{{ColSpan: span, Content: content, Align: AlignCenter}},
	}
}

func dataRows[T any](props Props[T]) []RowView {
	rows := make([]RowView, len(props.Data))
	for i, item := range props.Data {
		cells := make([]CellView, len(props.Columns))
		for j, col := range props.Columns {
			cell := ResolveCell(col, item, i)
			cells[j] = CellView{
				ColumnID: col.ID,
				Value:    cell.Value,
				Content:  cell.Content,
				ColSpan:  1,
				Width:    col.Width,
				Align:    col.Align,
			}
		}
		rows[i] = RowView{
			Key:         rowKey(props.RowKey, item, i),
			Kind:        RowData,
			Index:       i,
			Striped:     props.Striped && i%2 == 1,
			Highlighted: props.Hoverable && props.Highlight == i,
			Cells:       cells,
		}
	}
	return rows
}

// rowKey falls back to the position when no key function is given. Callers
// that reorder data without a key function lose row identity across renders.
func rowKey[T any](fn KeyFunc[T], row T, index int) string {
	if fn == nil {
		return strconv.Itoa(index)
	}
	return fn(row, index)
}

// Activate reports a row activation to OnRowClick. It returns false when the
// table is not populated, the index is out of range or no handler is set.
func Activate[T any](props Props[T], index int) bool {
	if props.Loading || props.OnRowClick == nil {
		return false
	}
	if index < 0 || index >= len(props.Data) {
		return false
	}
	props.OnRowClick(props.Data[index], index)
	return true
}

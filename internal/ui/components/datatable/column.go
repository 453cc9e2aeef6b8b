package datatable

import "github.com/alexisbeaulieu97/designsystem/internal/ui"

// Align is the horizontal alignment of a column's cells.
type Align int

const (
	AlignLeft Align = iota
	AlignCenter
	AlignRight
)

func (a Align) String() string {
	switch a {
	case AlignCenter:
		return "center"
	case AlignRight:
		return "right"
	default:
		return "left"
	}
}

// ParseAlign resolves "left", "center" or "right"; anything else is left.
func ParseAlign(s string) Align {
	switch s {
	case "center":
		return AlignCenter
	case "right":
		return AlignRight
	default:
		return AlignLeft
	}
}

// Accessor extracts a raw value from a row. It is a closed set of variants:
// FieldKey and AccessorFunc. A nil Accessor means the column has none.
type Accessor[T any] interface {
	accessor(T)
}

// FieldKey reads a named field of the row. For maps the name is the key; for
// structs it matches the field name or its `table` or `json` tag.
type FieldKey[T any] string

func (FieldKey[T]) accessor(T) {}

// AccessorFunc derives a value from the row. It must be pure.
type AccessorFunc[T any] func(row T) any

func (AccessorFunc[T]) accessor(T) {}

// Field returns a field-key accessor.
func Field[T any](name string) Accessor[T] {
	return FieldKey[T](name)
}

// Func returns a function accessor.
func Func[T any](fn func(row T) any) Accessor[T] {
	return AccessorFunc[T](fn)
}

// CellContext is passed to custom cell renderers.
type CellContext[T any] struct {
	// Value is the accessor's result, or nil when the column has no accessor.
	Value any
	Row   T
	Index int
}

// CellFunc renders a cell's final content.
type CellFunc[T any] func(ctx CellContext[T]) ui.Renderable

// Column describes how one field of a row is derived and shown.
type Column[T any] struct {
	// ID is unique within a table and stable across renders.
	ID     string
	Header string
	// HeaderContent replaces Header with rich content when set.
	HeaderContent ui.Renderable
	Accessor      Accessor[T]
	Cell          CellFunc[T]
	// Width fixes the column width in terminal cells; zero sizes to content.
	Width int
	Align Align
	// Sortable is declarative only; the table never reorders rows.
	Sortable bool
}

// KeyFunc derives a stable row key.
type KeyFunc[T any] func(row T, index int) string

// Props are the inputs of one render.
type Props[T any] struct {
	Columns []Column[T]
	Data    []T
	Loading bool
	// EmptyState replaces DefaultEmptyMessage when set.
	EmptyState ui.Renderable
	Bordered   bool
	Striped    bool
	Hoverable  bool
	// Highlight is the hovered data row, or -1. It only shows when Hoverable.
	Highlight  int
	RowKey     KeyFunc[T]
	OnRowClick func(row T, index int)
}

// DefaultProps returns props with the documented defaults: hoverable, not
// striped, not bordered, nothing highlighted.
func DefaultProps[T any](columns []Column[T], data []T) Props[T] {
	return Props[T]{
		Columns:   columns,
		Data:      data,
		Hoverable: true,
		Highlight: -1,
	}
}

package config

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/alexisbeaulieu97/designsystem/internal/ui"
	"github.com/alexisbeaulieu97/designsystem/internal/ui/components"
	"github.com/alexisbeaulieu97/designsystem/internal/ui/components/datatable"
	dserrors "github.com/alexisbeaulieu97/designsystem/pkg/errors"
)

// TableColumns converts the document's column specs into table columns.
func (d *Document) TableColumns() ([]datatable.Column[Record], error) {
	columns := make([]datatable.Column[Record], len(d.Columns))
	for i, spec := range d.Columns {
		col, err := spec.column()
		if err != nil {
			return nil, dserrors.NewValidationError(fieldForColumn(i, "cell"), err.Error(), err)
		}
		columns[i] = col
	}
	return columns, nil
}

// Props builds table props from the document's columns, rows and options.
func (d *Document) Props() (datatable.Props[Record], error) {
	columns, err := d.TableColumns()
	if err != nil {
		return datatable.Props[Record]{}, err
	}

	props := datatable.DefaultProps(columns, d.Rows)
	props.Striped = d.Options.Striped
	props.Bordered = d.Options.Bordered
	props.Hoverable = d.Options.HoverEnabled()
	props.Loading = d.Options.Loading
	if d.Options.EmptyState != "" {
		props.EmptyState = ui.StringView(d.Options.EmptyState)
	}
	if d.Options.RowKey != "" {
		props.RowKey = fieldKey(d.Options.RowKey)
	}
	return props, nil
}

// Table builds a DataTable for the document.
func (d *Document) Table() (*datatable.DataTable[Record], error) {
	props, err := d.Props()
	if err != nil {
		return nil, err
	}
	table := datatable.New(props.Columns, props.Data).
		WithStriped(props.Striped).
		WithBordered(props.Bordered).
		WithHoverable(props.Hoverable).
		WithLoading(props.Loading).
		WithEmptyState(props.EmptyState).
		WithRowKey(props.RowKey)
	return table, nil
}

func (s ColumnSpec) column() (datatable.Column[Record], error) {
	col := datatable.Column[Record]{
		ID:       s.ID,
		Header:   s.header(),
		Accessor: accessorFor(s.Accessor),
		Width:    s.Width,
		Align:    datatable.ParseAlign(s.Align),
		Sortable: s.Sortable,
	}
	if s.Cell != nil {
		cell, err := s.Cell.renderer()
		if err != nil {
			return col, err
		}
		col.Cell = cell
	}
	return col, nil
}

var headerReplacer = strings.NewReplacer("_", " ", "-", " ", ".", " ")

// header defaults to the title-cased id, so "first_name" reads "First Name".
func (s ColumnSpec) header() string {
	if s.Header != "" {
		return s.Header
	}
	return cases.Title(language.English).String(headerReplacer.Replace(s.ID))
}

func accessorFor(path string) datatable.Accessor[Record] {
	if path == "" {
		return nil
	}
	if !strings.Contains(path, ".") {
		return datatable.Field[Record](path)
	}
	keys := strings.Split(path, ".")
	return datatable.Func(func(row Record) any {
		return lookupPath(row, keys)
	})
}

// lookupPath walks nested mappings; a missing key or non-mapping yields nil.
func lookupPath(row Record, keys []string) any {
	var current any = row
	for _, key := range keys {
		m, ok := current.(map[string]any)
		if !ok {
			return nil
		}
		current = m[key]
	}
	return current
}

func fieldKey(name string) datatable.KeyFunc[Record] {
	return func(row Record, index int) string {
		value, ok := row[name]
		if !ok || value == nil {
			return strconv.Itoa(index)
		}
		return fmt.Sprint(value)
	}
}

func (c *CellSpec) renderer() (datatable.CellFunc[Record], error) {
	switch c.Format {
	case "", "text":
		return nil, nil
	case "code":
		return textCell(components.CodeText), nil
	case "caption":
		return textCell(components.CaptionText), nil
	case "badge":
		return c.badgeCell()
	default:
		return nil, fmt.Errorf("unknown cell format %q", c.Format)
	}
}

func textCell(build func(string) *components.Text) datatable.CellFunc[Record] {
	return func(ctx datatable.CellContext[Record]) ui.Renderable {
		if ctx.Value == nil {
			return nil
		}
		return build(fmt.Sprint(ctx.Value))
	}
}

func (c *CellSpec) badgeCell() (datatable.CellFunc[Record], error) {
	fallback := components.BadgeVariantDefault
	if c.DefaultBadge != "" {
		v, err := components.ParseBadgeVariant(c.DefaultBadge)
		if err != nil {
			return nil, err
		}
		fallback = v
	}

	variants := make(map[string]components.BadgeVariant, len(c.Badges))
	for value, name := range c.Badges {
		v, err := components.ParseBadgeVariant(name)
		if err != nil {
			return nil, err
		}
		variants[value] = v
	}

	return func(ctx datatable.CellContext[Record]) ui.Renderable {
		if ctx.Value == nil {
			return nil
		}
		text := fmt.Sprint(ctx.Value)
		variant, ok := variants[text]
		if !ok {
			variant = fallback
		}
		return components.NewBadge(text).WithVariant(variant)
	}, nil
}

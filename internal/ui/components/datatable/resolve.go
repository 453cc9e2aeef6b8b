package datatable

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/alexisbeaulieu97/designsystem/internal/ui"
)

// Cell is a resolved table cell.
type Cell struct {
	// Value is the accessor's raw result.
	Value any
	// Content is what gets drawn; nil draws nothing.
	Content ui.Renderable
}

// ResolveValue applies the column's accessor to row. Missing fields and
// columns without an accessor yield nil.
func ResolveValue[T any](col Column[T], row T) any {
	switch acc := col.Accessor.(type) {
	case nil:
		return nil
	case FieldKey[T]:
		return lookupField(row, string(acc))
	case AccessorFunc[T]:
		if acc == nil {
			return nil
		}
		return acc(row)
	default:
		return nil
	}
}

// ResolveCell computes a cell. A custom Cell renderer takes precedence and is
// given the accessor's value together with the row; otherwise the raw value is
// shown as-is.
func ResolveCell[T any](col Column[T], row T, index int) Cell {
	value := ResolveValue(col, row)
	if col.Cell != nil {
		return Cell{
			Value:   value,
			Content: col.Cell(CellContext[T]{Value: value, Row: row, Index: index}),
		}
	}
	return Cell{Value: value, Content: contentOf(value)}
}

func contentOf(value any) ui.Renderable {
	switch v := value.(type) {
	case nil:
		return nil
	case ui.Renderable:
		return v
	case string:
		if v == "" {
			return nil
		}
		return ui.StringView(v)
	default:
		return ui.StringView(fmt.Sprint(v))
	}
}

// lookupField reads name from a map with string keys or from a struct field.
func lookupField(row any, name string) any {
	if name == "" {
		return nil
	}
	v := reflect.ValueOf(row)
	for v.Kind() == reflect.Pointer || v.Kind() == reflect.Interface {
		if v.IsNil() {
			return nil
		}
		v = v.Elem()
	}

	switch v.Kind() {
	case reflect.Map:
		if v.Type().Key().Kind() != reflect.String {
			return nil
		}
		item := v.MapIndex(reflect.ValueOf(name).Convert(v.Type().Key()))
		if !item.IsValid() {
			return nil
		}
		return item.Interface()
	case reflect.Struct:
		field, ok := structField(v.Type(), name)
		if !ok {
			return nil
		}
		item, err := v.FieldByIndexErr(field.Index)
		if err != nil {
			return nil
		}
		return item.Interface()
	default:
		return nil
	}
}

func structField(typ reflect.Type, name string) (reflect.StructField, bool) {
	if field, ok := typ.FieldByName(name); ok && field.IsExported() {
		return field, true
	}
	for _, field := range reflect.VisibleFields(typ) {
		if !field.IsExported() {
			continue
		}
		for _, tag := range []string{"table", "json", "yaml"} {
			tagName, _, _ := strings.Cut(field.Tag.Get(tag), ",")
			if tagName == name {
				return field, true
			}
		}
	}
	return reflect.StructField{}, false
}

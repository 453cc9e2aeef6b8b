package datatable

import "fmt"

// Issue is a column configuration problem found by Lint.
type Issue struct {
	Column  int
	ID      string
	Message string
}

func (i Issue) String() string {
	return fmt.Sprintf("column %d (%q): %s", i.Column, i.ID, i.Message)
}

// Lint reports columns that will render blank or collide. Rendering never
// depends on its result.
func Lint[T any](columns []Column[T]) []Issue {
	var issues []Issue
	seen := make(map[string]int, len(columns))
	for i, col := range columns {
		if col.ID == "" {
			issues = append(issues, Issue{Column: i, Message: "missing id"})
		} else if first, dup := seen[col.ID]; dup {
			issues = append(issues, Issue{Column: i, ID: col.ID, Message: fmt.Sprintf("duplicate id, first used by column %d", first)})
		} else {
			seen[col.ID] = i
		}

		if col.Accessor == nil && col.Cell == nil {
			issues = append(issues, Issue{Column: i, ID: col.ID, Message: "no accessor or cell renderer; cells render empty"})
		}
		if key, ok := col.Accessor.(FieldKey[T]); ok && key == "" {
			issues = append(issues, Issue{Column: i, ID: col.ID, Message: "empty field key"})
		}
		if fn, ok := col.Accessor.(AccessorFunc[T]); ok && fn == nil {
			issues = append(issues, Issue{Column: i, ID: col.ID, Message: "nil accessor function"})
		}
		if col.Width < 0 {
			issues = append(issues, Issue{Column: i, ID: col.ID, Message: "negative width is ignored"})
		}
	}
	return issues
}

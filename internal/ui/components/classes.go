package components

import (
	"strings"

	twmerge "github.com/Oudwins/tailwind-merge-go"
)

// ClassList merges Tailwind utility class strings. Empty entries are dropped
// and a later class replaces any earlier class it conflicts with, so
// "px-4 py-3" followed by "p-0" yields "p-0".
func ClassList(classes ...string) string {
	fields := make([]string, 0, len(classes))
	for _, entry := range classes {
		fields = append(fields, strings.Fields(entry)...)
	}
	if len(fields) == 0 {
		return ""
	}
	return twmerge.Merge(strings.Join(fields, " "))
}

// TableClasses holds the Tailwind utility classes for HTML tables.
type TableClasses struct {
	Wrapper     string
	Table       string
	Bordered    string
	Head        string
	HeaderCell  string
	Body        string
	Row         string
	StripedRow  string
	HoverRow    string
	Cell        string
	Placeholder string
	Empty       string
}

// DefaultTableClasses returns the brand's table utilities.
func DefaultTableClasses() TableClasses {
	return TableClasses{
		Wrapper:     "overflow-x-auto rounded-lg shadow-sm",
		Table:       "min-w-full divide-y divide-slate-200 text-sm",
		Bordered:    "border border-slate-200",
		Head:        "bg-slate-50",
		HeaderCell:  "px-4 py-3 text-left font-medium text-slate-500",
		Body:        "divide-y divide-slate-200 bg-white",
		Row:         "",
		StripedRow:  "bg-slate-50",
		HoverRow:    "hover:bg-slate-100 cursor-pointer",
		Cell:        "px-4 py-3 text-slate-900",
		Placeholder: "h-4 animate-pulse rounded bg-slate-200",
		Empty:       "px-4 py-8 text-center text-slate-500",
	}
}

// AlignClass maps an alignment name to its text utility.
func AlignClass(align string) string {
	switch align {
	case "center":
		return "text-center"
	case "right":
		return "text-right"
	default:
		return "text-left"
	}
}

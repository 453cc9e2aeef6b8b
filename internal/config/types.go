package config

// Record is one table row as decoded from YAML.
type Record = map[string]any

// Document is a table description: display options, columns and rows.
type Document struct {
	Title   string       `yaml:"title,omitempty" validate:"max=200"`
	Options Options      `yaml:"options,omitempty"`
	Columns []ColumnSpec `yaml:"columns" validate:"required,min=1,dive"`
	Rows    []Record     `yaml:"rows,omitempty"`
}

// Options holds the table's visual flags.
type Options struct {
	Striped  bool `yaml:"striped,omitempty"`
	Bordered bool `yaml:"bordered,omitempty"`
	// Hoverable defaults to true when unset.
	Hoverable  *bool  `yaml:"hoverable,omitempty"`
	Loading    bool   `yaml:"loading,omitempty"`
	EmptyState string `yaml:"empty_state,omitempty" validate:"max=200"`
	// RowKey names the row field used as the row key.
	RowKey string `yaml:"row_key,omitempty"`
}

// ColumnSpec describes one column.
type ColumnSpec struct {
	ID string `yaml:"id" validate:"required,column_id"`
	// Header defaults to the title-cased id.
	Header string `yaml:"header,omitempty"`
	// Accessor is a row field name, or a dotted path into nested mappings.
	// Empty means the column has no accessor.
	Accessor string    `yaml:"accessor,omitempty"`
	Width    int       `yaml:"width,omitempty" validate:"min=0,max=200"`
	Align    string    `yaml:"align,omitempty" validate:"omitempty,oneof=left center right"`
	Sortable bool      `yaml:"sortable,omitempty"`
	Cell     *CellSpec `yaml:"cell,omitempty"`
}

// CellSpec selects a cell renderer for a column.
type CellSpec struct {
	Format string `yaml:"format,omitempty" validate:"omitempty,oneof=text badge code caption"`
	// Badges maps a cell value to a badge variant for the badge format.
	Badges       map[string]string `yaml:"badges,omitempty" validate:"omitempty,dive,badge_variant"`
	DefaultBadge string            `yaml:"default_badge,omitempty" validate:"omitempty,badge_variant"`
}

// HoverEnabled reports the effective hover flag.
func (o Options) HoverEnabled() bool {
	return o.Hoverable == nil || *o.Hoverable
}

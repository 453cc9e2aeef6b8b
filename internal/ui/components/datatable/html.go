package datatable

import (
	"embed"
	"io"

	"github.com/charmbracelet/x/ansi"
	"github.com/google/safehtml"
	"github.com/google/safehtml/template"

	"github.com/alexisbeaulieu97/designsystem/internal/ui"
	"github.com/alexisbeaulieu97/designsystem/internal/ui/components"
)

//go:embed templates/*
var templateFS embed.FS

// HTMLRenderable is content that knows its own safe HTML form. Other content
// is rendered as escaped plain text.
type HTMLRenderable interface {
	HTML() (safehtml.HTML, error)
}

// HTMLRenderer draws views as Tailwind-classed HTML tables.
type HTMLRenderer struct {
	tmpl    *template.Template
	classes components.TableClasses
}

// NewHTMLRenderer parses the embedded table template.
func NewHTMLRenderer(classes components.TableClasses) (*HTMLRenderer, error) {
	trustedFS := template.TrustedFSFromEmbed(templateFS)
	tmpl, err := template.New("table.html").ParseFS(trustedFS, "templates/table.html")
	if err != nil {
		return nil, err
	}
	return &HTMLRenderer{tmpl: tmpl, classes: classes}, nil
}

type htmlCell struct {
	Class            string
	ColSpan          int
	Content          safehtml.HTML
	Placeholder      bool
	PlaceholderClass string
}

type htmlRow struct {
	Class string
	Cells []htmlCell
}

type htmlTable struct {
	WrapperClass string
	TableClass   string
	HeadClass    string
	BodyClass    string
	Headers      []htmlCell
	Rows         []htmlRow
}

// Render writes view to w.
func (r *HTMLRenderer) Render(w io.Writer, view View) error {
	model, err := r.model(view)
	if err != nil {
		return err
	}
	return r.tmpl.Execute(w, model)
}

// RenderHTML returns view as a safe HTML fragment.
func (r *HTMLRenderer) RenderHTML(view View) (safehtml.HTML, error) {
	model, err := r.model(view)
	if err != nil {
		return safehtml.HTML{}, err
	}
	return r.tmpl.ExecuteToHTML(model)
}

func (r *HTMLRenderer) model(view View) (htmlTable, error) {
	c := r.classes
	model := htmlTable{
		WrapperClass: c.Wrapper,
		TableClass:   components.ClassList(c.Table, conditional(view.Bordered, c.Bordered)),
		HeadClass:    c.Head,
		BodyClass:    c.Body,
		Headers:      make([]htmlCell, len(view.Headers)),
		Rows:         make([]htmlRow, len(view.Rows)),
	}

	for i, h := range view.Headers {
		content, err := contentHTML(h.Content)
		if err != nil {
			return htmlTable{}, err
		}
		model.Headers[i] = htmlCell{
			Class:   components.ClassList(c.HeaderCell, components.AlignClass(h.Align.String())),
			ColSpan: 1,
			Content: content,
		}
	}

	for i, row := range view.Rows {
		out := htmlRow{
			Class: components.ClassList(
				c.Row,
				conditional(row.Striped, c.StripedRow),
				conditional(view.Hoverable && row.Kind == RowData, c.HoverRow),
			),
			Cells: make([]htmlCell, len(row.Cells)),
		}
		for j, cell := range row.Cells {
			content, err := contentHTML(cell.Content)
			if err != nil {
				return htmlTable{}, err
			}
			class := components.ClassList(c.Cell, components.AlignClass(cell.Align.String()))
			if row.Kind == RowEmpty {
				class = c.Empty
			}
			out.Cells[j] = htmlCell{
				Class:            class,
				ColSpan:          max(cell.ColSpan, 1),
				Content:          content,
				Placeholder:      cell.Placeholder,
				PlaceholderClass: c.Placeholder,
			}
		}
		model.Rows[i] = out
	}
	return model, nil
}

func contentHTML(r ui.Renderable) (safehtml.HTML, error) {
	if r == nil {
		return safehtml.HTML{}, nil
	}
	if h, ok := r.(HTMLRenderable); ok {
		return h.HTML()
	}
	return safehtml.HTMLEscaped(ansi.Strip(r.View())), nil
}

func conditional(cond bool, class string) string {
	if cond {
		return class
	}
	return ""
}

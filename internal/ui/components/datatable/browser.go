package datatable

import (
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/designsystem/internal/ui/components"
)

// LoadedMsg delivers rows fetched by the caller and ends the loading state.
type LoadedMsg[T any] struct {
	Data []T
}

// Browser is an interactive terminal view over a DataTable. The cursor is the
// only state it adds; the table itself stays a function of its props.
type Browser[T any] struct {
	table   *DataTable[T]
	ctx     components.RenderContext
	keys    KeyMap
	spinner spinner.Model
	cursor  int
	frame   int
	status  string
	copyFn  func(string) error
	done    bool
}

// NewBrowser wraps table for interactive use.
func NewBrowser[T any](table *DataTable[T], ctx components.RenderContext) Browser[T] {
	s := spinner.New()
	s.Spinner = spinner.Dot
	return Browser[T]{
		table:   table,
		ctx:     ctx,
		keys:    DefaultKeyMap(),
		spinner: s,
		copyFn:  clipboard.WriteAll,
	}
}

// WithClipboard replaces the clipboard writer.
func (b Browser[T]) WithClipboard(fn func(string) error) Browser[T] {
	b.copyFn = fn
	return b
}

// Cursor returns the hovered data row.
func (b Browser[T]) Cursor() int {
	return b.cursor
}

// Status returns the last status message.
func (b Browser[T]) Status() string {
	return b.status
}

// Init starts the spinner while loading.
func (b Browser[T]) Init() tea.Cmd {
	if b.table.Props().Loading {
		return b.spinner.Tick
	}
	return nil
}

// Update handles keys, window size, spinner ticks and LoadedMsg.
func (b Browser[T]) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		b.ctx = b.ctx.WithMaxWidth(msg.Width)
		return b, nil

	case spinner.TickMsg:
		if !b.table.Props().Loading {
			return b, nil
		}
		var cmd tea.Cmd
		b.spinner, cmd = b.spinner.Update(msg)
		b.frame++
		return b, cmd

	case LoadedMsg[T]:
		b.table.WithData(msg.Data).WithLoading(false)
		b.cursor = 0
		b.status = ""
		return b, nil

	case tea.KeyMsg:
		return b.handleKey(msg)
	}
	return b, nil
}

func (b Browser[T]) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	rows := b.table.Len()
	switch {
	case key.Matches(msg, b.keys.Quit):
		b.done = true
		return b, tea.Quit

	case key.Matches(msg, b.keys.Up):
		if b.cursor > 0 {
			b.cursor--
		}

	case key.Matches(msg, b.keys.Down):
		if b.cursor < rows-1 {
			b.cursor++
		}

	case key.Matches(msg, b.keys.Activate):
		if !b.table.Activate(b.cursor) {
			b.status = "nothing to open"
		}

	case key.Matches(msg, b.keys.Copy):
		cells := b.table.RowText(b.cursor)
		if cells == nil {
			b.status = "nothing to copy"
			return b, nil
		}
		if err := b.copyFn(strings.Join(cells, "\t")); err != nil {
			b.status = "copy failed: " + err.Error()
		} else {
			b.status = "row copied"
		}
	}
	return b, nil
}

// View draws the table, a status line and the key help.
func (b Browser[T]) View() string {
	if b.done {
		return ""
	}
	props := b.table.Props()
	props.Highlight = b.cursor

	var sb strings.Builder
	sb.WriteString(RenderTerminal(Build(props), b.ctx.WithFrame(b.frame)))
	sb.WriteString("\n")
	if props.Loading {
		sb.WriteString(b.spinner.View() + " loading")
	} else {
		sb.WriteString(components.CaptionText(b.status).ViewWithContext(b.ctx))
	}
	sb.WriteString("\n")
	sb.WriteString(components.CaptionText(b.keys.helpLine()).ViewWithContext(b.ctx))
	return sb.String()
}

package main

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/alexisbeaulieu97/designsystem/internal/config"
	"github.com/alexisbeaulieu97/designsystem/internal/logger"
	"github.com/alexisbeaulieu97/designsystem/internal/settings"
	"github.com/alexisbeaulieu97/designsystem/internal/ui/components"
	"github.com/alexisbeaulieu97/designsystem/internal/ui/components/datatable"
)

// appContext bundles what a command needs after settings are resolved.
type appContext struct {
	Settings settings.Settings
	Log      *logger.Logger
	Theme    components.Theme
}

func loadApp(cmd *cobra.Command, flags *rootFlags) (*appContext, error) {
	s, err := settings.Load(cmd, flags.configPath)
	if err != nil {
		return nil, newCommandError(cmd.Name(), "loading settings", err, "Check the settings file and DESIGNSYSTEM_* environment variables.")
	}

	level := s.LogLevel
	if flags.verbose {
		level = "debug"
	}
	log, err := logger.New(logger.Options{
		Level:         level,
		HumanReadable: s.LogFormat == "console",
		Writer:        cmd.ErrOrStderr(),
	})
	if err != nil {
		return nil, newCommandError(cmd.Name(), "creating logger", err, "")
	}

	theme, err := components.ThemeByName(s.Theme)
	if err != nil {
		return nil, newCommandError(cmd.Name(), "selecting theme", err, "Use --theme light or --theme dark.")
	}

	if s.NoColor || !isTerminal(cmd.OutOrStdout()) {
		lipgloss.SetColorProfile(termenv.Ascii)
	}

	log.WithFields(map[string]any{"theme": theme.Name, "format": s.Format}).Debug("settings loaded")
	return &appContext{Settings: s, Log: log, Theme: theme}, nil
}

// renderContext sizes output to the settings width, or the terminal width
// when writing to a terminal.
func (a *appContext) renderContext(cmd *cobra.Command) components.RenderContext {
	ctx := components.DefaultContext().WithTheme(a.Theme)
	width := a.Settings.Width
	if width == 0 {
		if file, ok := cmd.OutOrStdout().(*os.File); ok && term.IsTerminal(int(file.Fd())) {
			if w, _, err := term.GetSize(int(file.Fd())); err == nil {
				width = w
			}
		}
	}
	return ctx.WithMaxWidth(width)
}

func (a *appContext) loadDocument(cmd *cobra.Command, path string) (*config.Document, error) {
	doc, err := config.ParseFile(path)
	if err != nil {
		return nil, newCommandError(cmd.Name(), "loading "+path, err, "Fix the table document and try again.")
	}
	a.Log.ForDocument(path).WithFields(map[string]any{"columns": len(doc.Columns), "rows": len(doc.Rows)}).Debug("document loaded")
	return doc, nil
}

// warnIssues logs column problems and returns how many there were.
func (a *appContext) warnIssues(path string, columns []datatable.Column[config.Record]) int {
	issues := datatable.Lint(columns)
	log := a.Log.ForDocument(path)
	for _, issue := range issues {
		log.ForColumn(issue.Column, issue.ID).Warn(issue.Message)
	}
	return len(issues)
}

func isTerminal(writer any) bool {
	if file, ok := writer.(*os.File); ok {
		return term.IsTerminal(int(file.Fd()))
	}
	return false
}

// Package ui holds the contracts shared by every renderable component.
package ui

// Renderable is anything that can produce its terminal representation.
type Renderable interface {
	View() string
}

// StringView adapts a plain string to Renderable.
type StringView string

// View returns the string unchanged.
func (s StringView) View() string {
	return string(s)
}

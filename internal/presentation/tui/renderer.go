package tui

import (
	"github.com/charmbracelet/glamour"
)

// NewRenderer returns a function that renders help markdown using glamour.
// With color disabled it falls back to the plain "notty" style.
func NewRenderer(color bool) (func(string) (string, error), error) {
	style := glamour.WithAutoStyle()
	if !color {
		style = glamour.WithStandardStyle("notty")
	}
	r, err := glamour.NewTermRenderer(style, glamour.WithWordWrap(80))
	if err != nil {
		return nil, err
	}

	return func(markdown string) (string, error) {
		return r.Render(markdown)
	}, nil
}

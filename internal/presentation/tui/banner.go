package tui

import (
	"fmt"
	"io"

	"github.com/muesli/termenv"
)

// PrintBanner outputs the ASCII art title with the version underneath.
func PrintBanner(w io.Writer, p termenv.Profile, version string) {
	lines := []struct {
		text  string
		color string
	}{
		{`  ____        _ _ _        _          `, "#f87171"},
		{` / ___|  ___ | (_) |_ __ _(_)_ __ ___ `, "#fb923c"},
		{` \___ \ / _ \| | | __/ _' | | '__/ _ \`, "#facc15"},
		{`  ___) | (_) | | | || (_| | | | |  __/`, "#4ade80"},
		{` |____/ \___/|_|_|\__\__,_|_|_|  \___|`, "#60a5fa"},
	}

	fmt.Fprintln(w)
	for _, l := range lines {
		fmt.Fprintln(w, p.String(l.text).Foreground(p.Color(l.color)))
	}
	fmt.Fprintln(w, p.String("  Klondike  v"+version).Faint())
	fmt.Fprintln(w)
}

package tui

import (
	"fmt"
	"io"
	"strings"

	"github.com/muesli/termenv"
)

// PrintBanner writes the tempera banner, coloured from hot to cold.
func PrintBanner(w io.Writer, version string) {
	p := termenv.ColorProfile()
	lines := []struct {
		text  string
		color string
	}{
		{" _                                    ", "#f97316"},
		{"| |_ ___ _ __ ___  _ __   ___ _ __ __ _ ", "#fb7185"},
		{"| __/ _ \\ '_ ` _ \\| '_ \\ / _ \\ '__/ _` |", "#e879f9"},
		{"| ||  __/ | | | | | |_) |  __/ | | (_| |", "#a78bfa"},
		{" \\__\\___|_| |_| |_| .__/ \\___|_|  \\__,_|", "#818cf8"},
		{"                  |_|                  ", "#38bdf8"},
	}

	fmt.Fprintln(w)
	for _, l := range lines {
		fmt.Fprintln(w, p.String(l.text).Foreground(p.Color(l.color)))
	}
	if v := strings.TrimSpace(version); v != "" {
		fmt.Fprintln(w, p.String("  v"+v).Faint())
	}
	fmt.Fprintln(w)
}

package tui

import (
	"fmt"
	"io"

	"github.com/muesli/termenv"
)

// PrintBanner outputs the lineviz ASCII art banner.
func PrintBanner(w io.Writer, p termenv.Profile) {
	// Stack green, queue blue, converter orange: the colors of the three views.
	lines := []struct {
		text  string
		color string
	}{
		{" _ _              _       ", ColorStack},
		{"| (_)_ __   ___  | |_   _(_)____", ColorStack},
		{"| | | '_ \\ / _ \\ | \\ \\ / / |_  /", ColorQueue},
		{"| | | | | |  __/ |  \\ V /| |/ / ", ColorQueue},
		{"|_|_|_| |_|\\___| |   \\_/ |_/___|", ColorPostfix},
	}

	fmt.Fprintln(w)
	for _, l := range lines {
		fmt.Fprintln(w, p.String(l.text).Foreground(p.Color(l.color)))
	}
	fmt.Fprintln(w)
}

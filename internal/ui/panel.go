package ui

import (
	"fmt"
	"regexp"
	"strings"
)

var ansiRegexp = regexp.MustCompile(`\x1b\[[0-9;]*m`)

func stripANSI(s string) string { return ansiRegexp.ReplaceAllString(s, "") }

// Panel draws a framed box using the current theme.
func Panel(lines []string) {
	t := Current()
	// compute visible width
	maxw := 0
	for _, ln := range lines {
		w := len([]rune(stripANSI(ln)))
		if w > maxw {
			maxw = w
		}
	}
	pad := func(s string) string {
		vis := len([]rune(stripANSI(s)))
		if vis < maxw {
			s = s + strings.Repeat(" ", maxw-vis)
		}
		return s
	}
	leftPad := " "
	fmt.Println(t.CornerTL + strings.Repeat(t.H, maxw+2) + t.CornerTR)
	for _, ln := range lines {
		fmt.Println(t.V + leftPad + pad(ln) + " " + t.V)
	}
	fmt.Println(t.CornerBL + strings.Repeat(t.H, maxw+2) + t.CornerBR)
}

// QuoteLines formats one quote for panel display: the text wrapped to
// width, then an attribution line.
func QuoteLines(text, author, category string, width int) []string {
	t := Current()
	if width < 20 {
		width = 20
	}
	var lines []string
	for _, ln := range wrap(text, width) {
		lines = append(lines, C(t.Title, t.Bullet+" "+ln))
	}
	attribution := author
	if attribution == "" {
		attribution = "Unknown"
	}
	attr := C(t.Muted, t.Dash+" "+attribution)
	if category != "" {
		attr += "  " + C(t.Category, "["+category+"]")
	}
	lines = append(lines, attr)
	return lines
}

// wrap breaks s on spaces so no line exceeds width runes. Words longer
// than width stay on their own line.
func wrap(s string, width int) []string {
	words := strings.Fields(s)
	if len(words) == 0 {
		return []string{""}
	}
	var out []string
	line := words[0]
	for _, w := range words[1:] {
		if len([]rune(line))+1+len([]rune(w)) > width {
			out = append(out, line)
			line = w
			continue
		}
		line += " " + w
	}
	return append(out, line)
}

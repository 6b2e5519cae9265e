package report

import (
	"fmt"
	"strings"
)

// DefaultWidth is the separator width used when none is configured
const DefaultWidth = 80

func (p *Printer) separator(char string) {
	fmt.Fprintln(p.w, strings.Repeat(char, p.width))
}

// header prints a title framed by separators with a blank line before it
func (p *Printer) header(title string) {
	fmt.Fprintln(p.w)
	p.separator("=")
	fmt.Fprintln(p.w, title)
	p.separator("=")
}

// footer prints a closing message framed by separators
func (p *Printer) footer(message string) {
	fmt.Fprintln(p.w)
	p.separator("=")
	fmt.Fprintln(p.w, message)
	p.separator("=")
}

// boxSeparator prints a box-drawing separator line (for sub-sections)
func (p *Printer) boxSeparator() {
	fmt.Fprintln(p.w, "├"+strings.Repeat("─", p.width-2))
}

// BoxPrefix returns the appropriate box-drawing prefix for list items
func BoxPrefix(isLast bool) string {
	if isLast {
		return "└  "
	}
	return "│  "
}

// BoxDetailPrefix returns the prefix for detail lines under list items
func BoxDetailPrefix(isLast bool) string {
	if isLast {
		return "   "
	}
	return "│  "
}

// Package color names the ANSI colors used in terminal output.
package color

import "github.com/charmbracelet/lipgloss"

// New returns the lipgloss color for value, an ANSI index or a hex string.
func New(value string) lipgloss.Color {
	return lipgloss.Color(value)
}

var (
	Red    = New("1")
	Green  = New("2")
	Yellow = New("3")
	Blue   = New("4")
	Purple = New("5")
	Cyan   = New("6")
)

var (
	HiRed    = New("9")
	HiPurple = New("13")
)

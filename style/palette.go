package style

import "github.com/charmbracelet/lipgloss"

// Colors used by boxed notices such as the missing ffmpeg message.
var (
	Text        = lipgloss.Color("#cdd6f4")
	AccentColor = lipgloss.Color("#cba6f7")
	HiRed       = lipgloss.Color("#f38ba8")
)

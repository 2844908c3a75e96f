package icon

// Icon identifies a symbol in the registry.
type Icon int

const (
	Fail Icon = iota + 1
	Success
	Warn
	Progress
	Download
	Video
	Calendar
)

// icons lists each symbol in variant order: emoji, nerd, plain, kaomoji, squares.
var icons = map[Icon]glyphs{
	Fail:     {"💀", "", "✖", "(×_×)", "🟥"},
	Success:  {"🎉", "", "✔", "(ᵔ◡ᵔ)", "🟩"},
	Warn:     {"⚠️", "", "!", "(>_<)", "🟨"},
	Progress: {"⏳", "", "…", "(o_o)", "🟦"},
	Download: {"📥", "", "↓", "(^_^)b", "🟪"},
	Video:    {"🎬", "", "▶", "(•_•)", "⬛"},
	Calendar: {"📅", "", "#", "(._.)", "⬜"},
}

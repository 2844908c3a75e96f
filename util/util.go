// Package util holds small helpers shared by the commands.
package util

import (
	"fmt"
	"io"
	"os"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/gplay-cli/gplay/filesystem"
	"golang.org/x/term"
)

var (
	unsafeFilenameRunes = regexp.MustCompile(`[\\/<>:;"'|?!*{}#%&^+,~\s]+`)
	filenameTrim        = "_-."
)

// SanitizeFilename replaces runs of characters unsafe in file names with a
// single underscore and trims separators from both ends.
func SanitizeFilename(filename string) string {
	filename = unsafeFilenameRunes.ReplaceAllString(filename, "_")
	for strings.Contains(filename, "__") {
		filename = strings.ReplaceAll(filename, "__", "_")
	}
	return strings.Trim(filename, filenameTrim)
}

// Quantify formats count followed by the singular or plural noun.
func Quantify(count int, singular, plural string) string {
	noun := plural
	if count == 1 {
		noun = singular
	}
	return fmt.Sprintf("%d %s", count, noun)
}

// Capitalize upper-cases the first rune of s.
func Capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}

// TerminalWidth returns the width of the terminal on stdout, or fallback.
func TerminalWidth(fallback int) int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return fallback
	}
	return width
}

// ReGroups maps the named groups of pattern to what they matched in s, one map
// per non-overlapping match in order. It is empty when nothing matched.
func ReGroups(pattern *regexp.Regexp, s string) []map[string]string {
	names := pattern.SubexpNames()
	matches := pattern.FindAllStringSubmatch(s, -1)
	all := make([]map[string]string, 0, len(matches))
	for _, match := range matches {
		groups := make(map[string]string, len(match))
		for i, name := range names {
			if name != "" && i < len(match) {
				groups[name] = match[i]
			}
		}
		all = append(all, groups)
	}
	return all
}

// PrintErasable writes msg to w without a newline. The returned func blanks it out again.
func PrintErasable(w io.Writer, msg string) (erase func()) {
	_, _ = fmt.Fprintf(w, "\r%s", msg)
	return func() {
		_, _ = fmt.Fprintf(w, "\r%s\r", strings.Repeat(" ", utf8.RuneCountInString(msg)))
	}
}

// Ignore calls f and drops its error.
func Ignore(f func() error) {
	_ = f()
}

// Delete removes path, recursively when it is a directory.
func Delete(path string) error {
	fs := filesystem.API()
	if _, err := fs.Stat(path); err != nil {
		return err
	}
	return fs.RemoveAll(path)
}

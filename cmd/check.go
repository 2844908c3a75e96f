package cmd

import (
	"fmt"
	"runtime"

	"github.com/charmbracelet/lipgloss"
	"github.com/gplay-cli/gplay/constant"
	"github.com/gplay-cli/gplay/download"
	"github.com/gplay-cli/gplay/icon"
	"github.com/gplay-cli/gplay/key"
	"github.com/gplay-cli/gplay/style"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	rootCmd.AddCommand(checkCmd)
}

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Verify that the configured remuxer is installed",
	Run: func(cmd *cobra.Command, args []string) {
		binary := viper.GetString(key.DownloadsFFmpeg)
		path, err := download.CheckInstalled(binary)
		if err != nil {
			printMissingDependencyError(binary)
			handleErr(err)
		}

		cmd.Printf("%s %s found at %s\n", icon.Get(icon.Success), binary, style.Bold(path))
	},
}

func installHint() string {
	switch runtime.GOOS {
	case constant.Darwin:
		return "brew install ffmpeg"
	case constant.Linux:
		return "sudo apt install ffmpeg"
	case constant.Windows:
		return "scoop install ffmpeg"
	default:
		return ""
	}
}

func printMissingDependencyError(dep string) {
	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(style.HiRed).
		Padding(1, 2).
		Margin(1, 0)

	title := style.New().Bold(true).Foreground(style.HiRed).Render(fmt.Sprintf("%s Error: Missing Dependency", icon.Get(icon.Fail)))
	body := style.New().Foreground(style.Text).Render(fmt.Sprintf("The remuxer '%s' was not found in your PATH.\nSet %s to its location if it is installed elsewhere.", dep, key.DownloadsFFmpeg))

	suggestion := ""
	if hint := installHint(); hint != "" {
		suggestion = fmt.Sprintf("\n\nTo install it, try running:\n  %s", style.New().Foreground(style.AccentColor).Bold(true).Render(hint))
	}

	fmt.Println(box.Render(
		lipgloss.JoinVertical(lipgloss.Left,
			title,
			"\n",
			body,
			suggestion,
		),
	))
}

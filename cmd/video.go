package cmd

import (
	"fmt"
	"os"

	"github.com/gplay-cli/gplay/app"
	"github.com/gplay-cli/gplay/color"
	"github.com/gplay-cli/gplay/download"
	"github.com/gplay-cli/gplay/icon"
	"github.com/gplay-cli/gplay/key"
	"github.com/gplay-cli/gplay/open"
	"github.com/gplay-cli/gplay/style"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	for _, c := range []*cobra.Command{videoCmd, videoInfoCmd} {
		rootCmd.AddCommand(c)

		c.Flags().Bool("download", false, "Download the selected stream")
		c.Flags().String("filename", "", "Custom filename for the downloaded video")
		c.Flags().Bool("open", false, "Open the downloaded file with the system handler")
	}
}

var videoCmd = &cobra.Command{
	Use:   "video VIDEO_ID",
	Short: "Get basic info about a video",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		runVideo(cmd, args[0], false)
	},
}

var videoInfoCmd = &cobra.Command{
	Use:   "video-info VIDEO_ID",
	Short: "Get detailed info with sources",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		runVideo(cmd, args[0], true)
	},
}

func runVideo(cmd *cobra.Command, videoID string, full bool) {
	format, err := outputFormat()
	handleErr(err)

	doDownload := lo.Must(cmd.Flags().GetBool("download"))
	if doDownload {
		checkRemuxer()
	}

	deps, err := newDeps(cmd)
	handleErr(err)

	result, err := app.RunVideo(cmd.Context(), deps, app.VideoOptions{
		VideoID:   videoID,
		Download:  doDownload,
		Filename:  lo.Must(cmd.Flags().GetString("filename")),
		Quality:   viper.GetString(key.DownloadsQuality),
		OutputDir: viper.GetString(key.DownloadsPath),
		Full:      full,
		Format:    format,
	})
	handleErr(err)

	if result.Path == "" {
		return
	}

	fmt.Fprintf(
		os.Stderr,
		"%s saved %s\n",
		style.Fg(color.Green)(icon.Get(icon.Success)),
		style.Fg(color.Yellow)(result.Path),
	)

	if lo.Must(cmd.Flags().GetBool("open")) {
		handleErr(open.Start(result.Path))
	}
}

// checkRemuxer exits with install instructions when the configured remuxer is missing.
func checkRemuxer() {
	binary := viper.GetString(key.DownloadsFFmpeg)
	if _, err := download.CheckInstalled(binary); err != nil {
		printMissingDependencyError(binary)
		os.Exit(1)
	}
}

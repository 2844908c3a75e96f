// Package cmd implements the gplay command-line interface.
package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"

	"github.com/gplay-cli/gplay/color"
	"github.com/gplay-cli/gplay/constant"
	"github.com/gplay-cli/gplay/icon"
	"github.com/gplay-cli/gplay/key"
	"github.com/gplay-cli/gplay/log"
	"github.com/gplay-cli/gplay/style"
	"github.com/gplay-cli/gplay/util"
	"github.com/gplay-cli/gplay/version"
	"github.com/gplay-cli/gplay/where"
	cc "github.com/ivanpirog/coloredcobra"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	rootCmd.Flags().BoolP("version", "v", false, "Print the application version")

	rootCmd.PersistentFlags().StringP("cookie", "c", "", "Path to a Netscape cookie file used to authenticate requests")
	lo.Must0(viper.BindPFlag(key.NetworkCookieFile, rootCmd.PersistentFlags().Lookup("cookie")))

	rootCmd.PersistentFlags().String("quality", "", "Stream quality: a label such as 720p, or max, high, min, low")
	lo.Must0(rootCmd.RegisterFlagCompletionFunc("quality", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return []string{"max", "high", "min", "low", "1080p", "720p", "480p", "360p"}, cobra.ShellCompDirectiveNoFileComp
	}))
	lo.Must0(viper.BindPFlag(key.DownloadsQuality, rootCmd.PersistentFlags().Lookup("quality")))

	rootCmd.PersistentFlags().String("output", "", "Output format (json, compact, pretty)")
	lo.Must0(rootCmd.RegisterFlagCompletionFunc("output", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return []string{"json", "compact", "pretty"}, cobra.ShellCompDirectiveNoFileComp
	}))
	lo.Must0(viper.BindPFlag(key.OutputFormat, rootCmd.PersistentFlags().Lookup("output")))

	rootCmd.PersistentFlags().String("output-dir", "", "Directory for downloaded videos")
	lo.Must0(viper.BindPFlag(key.DownloadsPath, rootCmd.PersistentFlags().Lookup("output-dir")))

	rootCmd.PersistentFlags().BoolP("debug", "d", false, "Write debug logs to stderr and the log file")

	rootCmd.PersistentFlags().StringP("icons", "I", "", "Set the visual icon variant (e.g., nerd, emoji, squares)")
	lo.Must0(rootCmd.RegisterFlagCompletionFunc("icons", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return icon.AvailableVariants(), cobra.ShellCompDirectiveDefault
	}))
	lo.Must0(viper.BindPFlag(key.IconsVariant, rootCmd.PersistentFlags().Lookup("icons")))

	helpFunc := rootCmd.HelpFunc()
	rootCmd.SetHelpFunc(func(cmd *cobra.Command, args []string) {
		helpFunc(cmd, args)
		version.Notify(os.Stdout, nil)
	})

	go func() {
		_ = util.Delete(where.Temp())
	}()
}

const examples = `  # Get information about a specific video:
  gplay video VIDEO_ID

  # Download a specific video with highest quality:
  gplay video VIDEO_ID --download

  # Get videos by date range for a specific title/program:
  gplay videos-by-date TITLE_ID 2024-01-01 2024-01-31

For more options, use --help:
  gplay --help
  gplay video --help`

var rootCmd = &cobra.Command{
	Use:   constant.App,
	Short: "A command-line client for the Globoplay video API",
	Long: constant.AsciiArtLogo + "\n" +
		style.New().Italic(true).Foreground(color.HiRed).Render("    - A command-line client for the Globoplay video API"),
	Example: examples,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if lo.Must(cmd.Flags().GetBool("debug")) {
			viper.Set(key.LogsWrite, true)
			viper.Set(key.LogsStderr, true)
			viper.Set(key.LogsLevel, "debug")
		}
		return log.Setup()
	},
	Run: func(cmd *cobra.Command, args []string) {
		if cmd.Flags().Changed("version") {
			versionCmd.Run(versionCmd, args)
			return
		}

		cmd.Println("No command provided. Here are some examples to get you started:")
		cmd.Println()
		cmd.Println(examples)
	},
}

// Execute runs the root command.
func Execute() {
	if viper.GetBool(key.CliColored) {
		cc.Init(&cc.Config{
			RootCmd:       rootCmd,
			Headings:      cc.HiCyan + cc.Bold + cc.Underline,
			Commands:      cc.HiYellow + cc.Bold,
			Example:       cc.Italic,
			ExecName:      cc.Bold,
			Flags:         cc.Bold,
			FlagsDataType: cc.Italic + cc.HiBlue,
		})
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		handleErr(err)
	}
}

func handleErr(err error) {
	if err != nil {
		log.Error(err)
		_, _ = fmt.Fprintf(os.Stderr, "%s %s\n", icon.Get(icon.Fail), strings.Trim(err.Error(), " \n"))
		os.Exit(1)
	}
}

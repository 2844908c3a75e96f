package cmd

import (
	"fmt"
	"os"

	"github.com/gplay-cli/gplay/app"
	"github.com/gplay-cli/gplay/color"
	"github.com/gplay-cli/gplay/icon"
	"github.com/gplay-cli/gplay/key"
	"github.com/gplay-cli/gplay/log"
	"github.com/gplay-cli/gplay/query"
	"github.com/gplay-cli/gplay/style"
	"github.com/gplay-cli/gplay/util"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	rootCmd.AddCommand(datedCmd)

	datedCmd.Flags().Bool("download-all", false, "Download all fetched videos")
	datedCmd.Flags().Uint("per-page", 0, "Number of videos to request (defaults to listing.per_page)")
	lo.Must0(viper.BindPFlag(key.ListingPerPage, datedCmd.Flags().Lookup("per-page")))
}

var datedCmd = &cobra.Command{
	Use:     "videos-by-date TITLE_ID [FROM] [TO]",
	Short:   "Get videos by date range",
	Long:    "List the videos of a title between two dates (YYYY-MM-DD, inclusive).\nFROM defaults to today and TO defaults to FROM.",
	Aliases: []string{"dated"},
	Args:    cobra.RangeArgs(1, 3),
	ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		if len(args) > 0 {
			return nil, cobra.ShellCompDirectiveNoFileComp
		}
		return query.Completions(toComplete), cobra.ShellCompDirectiveNoFileComp
	},
	Run: func(cmd *cobra.Command, args []string) {
		format, err := outputFormat()
		handleErr(err)

		opts := app.DatedOptions{
			TitleID:     args[0],
			PerPage:     viper.GetUint(key.ListingPerPage),
			DownloadAll: lo.Must(cmd.Flags().GetBool("download-all")),
			Format:      format,
			Quality:     viper.GetString(key.DownloadsQuality),
			OutputDir:   viper.GetString(key.DownloadsPath),
		}
		if len(args) > 1 {
			opts.From = args[1]
		}
		if len(args) > 2 {
			opts.To = args[2]
		}

		if opts.DownloadAll {
			checkRemuxer()
		}

		deps, err := newDeps(cmd)
		handleErr(err)

		_, report, err := app.RunDated(cmd.Context(), deps, opts)
		handleErr(err)

		if err := query.Remember(opts.TitleID, "", 1); err != nil {
			log.Warnf("failed to remember title %s: %s", opts.TitleID, err)
		}

		if !opts.DownloadAll || len(report.Succeeded)+len(report.Failed) == 0 {
			return
		}

		fmt.Fprintf(
			os.Stderr,
			"%s %s downloaded",
			style.Fg(color.Green)(icon.Get(icon.Success)),
			util.Quantify(len(report.Succeeded), "video", "videos"),
		)
		if len(report.Failed) > 0 {
			fmt.Fprintf(os.Stderr, ", %s", style.Fg(color.Red)(util.Quantify(len(report.Failed), "failure", "failures")))
		}
		fmt.Fprintln(os.Stderr)
	},
}

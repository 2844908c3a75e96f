package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/gplay-cli/gplay/color"
	"github.com/gplay-cli/gplay/history"
	"github.com/gplay-cli/gplay/icon"
	"github.com/gplay-cli/gplay/style"
	"github.com/gplay-cli/gplay/util"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(historyCmd)

	historyCmd.Flags().BoolP("json", "j", false, "Print the history as JSON")
	historyCmd.Flags().IntP("limit", "n", 0, "Only show the most recent N downloads")
	historyCmd.Flags().String("remove", "", "Forget every download of the given video id")
	historyCmd.Flags().Bool("clear", false, "Forget all downloads")
	historyCmd.MarkFlagsMutuallyExclusive("remove", "clear")
}

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show previously downloaded videos",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		if lo.Must(cmd.Flags().GetBool("clear")) {
			handleErr(history.Clear())
			fmt.Fprintf(cmd.OutOrStdout(), "%s history cleared\n", style.Fg(color.Green)(icon.Get(icon.Success)))
			return
		}

		records, err := history.List()
		handleErr(err)

		if videoID := lo.Must(cmd.Flags().GetString("remove")); videoID != "" {
			matching := lo.Filter(records, func(r *history.Record, _ int) bool {
				return r.VideoID == videoID
			})
			for _, record := range matching {
				handleErr(history.Remove(record))
			}
			fmt.Fprintf(
				cmd.OutOrStdout(),
				"%s removed %s\n",
				style.Fg(color.Green)(icon.Get(icon.Success)),
				util.Quantify(len(matching), "record", "records"),
			)
			return
		}

		if limit := lo.Must(cmd.Flags().GetInt("limit")); limit > 0 && limit < len(records) {
			records = records[:limit]
		}

		if lo.Must(cmd.Flags().GetBool("json")) {
			if records == nil {
				records = []*history.Record{}
			}
			handleErr(json.NewEncoder(cmd.OutOrStdout()).Encode(records))
			return
		}

		if len(records) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "No downloads recorded yet")
			return
		}

		for _, record := range records {
			fmt.Fprintf(
				cmd.OutOrStdout(),
				"%s %s %s\n",
				style.Faint(record.SavedAt.Format("2006-01-02 15:04")),
				style.Fg(color.Purple)(record.VideoID),
				record,
			)
		}
	},
}

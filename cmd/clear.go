package cmd

import (
	"fmt"
	"os"

	"github.com/gplay-cli/gplay/filesystem"
	"github.com/gplay-cli/gplay/icon"
	"github.com/gplay-cli/gplay/util"
	"github.com/gplay-cli/gplay/where"
	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/spf13/cobra"
)

type clearTarget struct {
	name     string
	argLong  string
	argShort mo.Option[string]
	location func() string
}

var clearTargets = []clearTarget{
	{"cache directory", "cache", mo.Some("c"), where.Cache},
	{"download history", "history", mo.Some("s"), where.History},
	{"title suggestions", "queries", mo.Some("q"), where.Queries},
	{"cached listings", "listings", mo.Some("l"), where.Listings},
	{"temporary files", "temp", mo.None[string](), where.Temp},
}

func init() {
	rootCmd.AddCommand(clearCmd)

	for _, target := range clearTargets {
		help := fmt.Sprintf("clear %s", target.name)
		if target.argShort.IsPresent() {
			clearCmd.Flags().BoolP(target.argLong, target.argShort.MustGet(), false, help)
		} else {
			clearCmd.Flags().Bool(target.argLong, false, help)
		}
	}
	clearCmd.Flags().BoolP("all", "a", false, "clear everything listed above")
}

var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Clear cached listings, history and other local artifacts",
	Run: func(cmd *cobra.Command, args []string) {
		var (
			all        = lo.Must(cmd.Flags().GetBool("all"))
			anyCleared bool
		)

		for _, target := range clearTargets {
			if !all && !lo.Must(cmd.Flags().GetBool(target.argLong)) {
				continue
			}

			anyCleared = true
			erase := util.PrintErasable(os.Stdout, fmt.Sprintf("%s Clearing %s...", icon.Get(icon.Progress), target.name))
			err := filesystem.API().RemoveAll(target.location())
			erase()
			handleErr(err)
			fmt.Printf("%s %s cleared\n", icon.Get(icon.Success), util.Capitalize(target.name))
		}

		if !anyCleared {
			handleErr(cmd.Help())
		}
	},
}

package cmd

import (
	"fmt"
	"os"

	"github.com/gplay-cli/gplay/color"
	"github.com/gplay-cli/gplay/style"
	"github.com/gplay-cli/gplay/util"
	"github.com/gplay-cli/gplay/where"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

type whereTarget struct {
	name   string
	path   func() string
	listed bool
}

var whereTargets = []whereTarget{
	{"config", where.Config, true},
	{"logs", where.Logs, true},
	{"cache", where.Cache, true},
	{"history", where.History, false},
	{"queries", where.Queries, false},
	{"listings", where.Listings, false},
	{"temp", where.Temp, false},
}

func init() {
	rootCmd.AddCommand(whereCmd)
	whereCmd.SetOut(os.Stdout)
}

var whereCmd = &cobra.Command{
	Use:   "where [TARGET]",
	Short: "Show where gplay keeps its files",
	Long:  "Without a target, print the main directories. With one, print only its path.",
	Args:  cobra.MatchAll(cobra.MaximumNArgs(1), cobra.OnlyValidArgs),
	ValidArgs: lo.Map(whereTargets, func(t whereTarget, _ int) string {
		return t.name
	}),
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) == 1 {
			target, _ := lo.Find(whereTargets, func(t whereTarget) bool {
				return t.name == args[0]
			})
			cmd.Println(target.path())
			return
		}

		header := style.New().Bold(true).Foreground(color.HiPurple).Render
		listed := lo.Filter(whereTargets, func(t whereTarget, _ int) bool {
			return t.listed
		})

		for i, t := range listed {
			cmd.Printf("%s %s\n", header(fmt.Sprintf("%s?", util.Capitalize(t.name))), style.Fg(color.Yellow)("where "+t.name))
			cmd.Println(t.path())

			if i < len(listed)-1 {
				cmd.Println()
			}
		}
	},
}

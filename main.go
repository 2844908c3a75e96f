// Package main is the entry point for gplay.
package main

import (
	"github.com/gplay-cli/gplay/cmd"
	"github.com/gplay-cli/gplay/config"
	"github.com/samber/lo"
)

func main() {
	lo.Must0(config.Setup())
	cmd.Execute()
}

package version

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/gplay-cli/gplay/color"
	"github.com/gplay-cli/gplay/constant"
	"github.com/gplay-cli/gplay/icon"
	"github.com/gplay-cli/gplay/key"
	"github.com/gplay-cli/gplay/style"
	"github.com/spf13/viper"
)

// Notify prints a notice to w when a newer release than the running one exists.
// It does nothing unless cli.version_check is enabled.
func Notify(w io.Writer, client *http.Client) {
	if !viper.GetBool(key.CliVersionCheck) {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	fmt.Fprintf(w, "%s Checking if new version is available...\r", icon.Get(icon.Progress))
	latest, err := Latest(ctx, client)
	if err != nil {
		return
	}

	if comp, err := Compare(latest, constant.Version); err != nil || comp <= 0 {
		return
	}

	fmt.Fprintf(w, `
%s New version is available %s %s
%s

`,
		style.Fg(color.Green)("▇▇▇"),
		style.Bold(latest),
		style.Faint(fmt.Sprintf("(You're on %s)", constant.Version)),
		style.Faint("https://github.com/gplay-cli/gplay/releases/tag/v"+latest),
	)
}

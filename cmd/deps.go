package cmd

import (
	"os"
	"time"

	"github.com/gplay-cli/gplay/api"
	"github.com/gplay-cli/gplay/app"
	"github.com/gplay-cli/gplay/constant"
	"github.com/gplay-cli/gplay/download"
	"github.com/gplay-cli/gplay/filesystem"
	"github.com/gplay-cli/gplay/history"
	"github.com/gplay-cli/gplay/key"
	"github.com/gplay-cli/gplay/network"
	"github.com/gplay-cli/gplay/where"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// newClient builds the api client from the current configuration.
func newClient() (*api.Client, error) {
	cookies, err := network.LoadCookies(filesystem.API(), viper.GetString(key.NetworkCookieFile))
	if err != nil {
		return nil, err
	}

	httpClient, err := network.NewClient(network.Options{
		Timeout:     time.Duration(viper.GetInt(key.NetworkTimeout)) * time.Second,
		UserAgent:   viper.GetString(key.NetworkUserAgent),
		Cookies:     cookies,
		Fingerprint: viper.GetBool(key.NetworkTLSFingerprint),
	})
	if err != nil {
		return nil, err
	}

	client := api.New(httpClient)
	client.Listings = api.NewListingCache(where.Listings(), time.Duration(viper.GetInt(key.CacheListingTTL))*time.Minute)
	return client, nil
}

// newDeps wires the flows to the network and the configured remuxer.
func newDeps(cmd *cobra.Command) (app.Deps, error) {
	client, err := newClient()
	if err != nil {
		return app.Deps{}, err
	}

	userAgent := viper.GetString(key.NetworkUserAgent)
	if userAgent == "" {
		userAgent = constant.UserAgent
	}

	deps := app.Deps{
		Fetcher: client,
		Remuxer: download.FFmpeg{
			Binary: viper.GetString(key.DownloadsFFmpeg),
			Headers: map[string]string{
				"User-Agent": userAgent,
				"Origin":     constant.SiteOrigin,
				"Referer":    constant.SiteOrigin + "/",
			},
			Jar: client.HTTP.Jar,
		},
		Out: cmd.OutOrStdout(),
		// Progress goes to stderr so stdout stays parseable.
		Status: os.Stderr,
	}

	if viper.GetBool(key.HistorySave) {
		deps.Record = history.Save
	}

	return deps, nil
}

func outputFormat() (app.Format, error) {
	return app.ParseFormat(viper.GetString(key.OutputFormat))
}

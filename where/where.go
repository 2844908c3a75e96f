// Package where resolves the directories and files gplay keeps on disk.
// Directories are created on first use.
package where

import (
	"os"
	"path/filepath"

	"github.com/gplay-cli/gplay/constant"
	"github.com/gplay-cli/gplay/filesystem"
	"github.com/samber/lo"
)

// EnvConfigPath overrides the config directory.
const EnvConfigPath = "GPLAY_CONFIG_PATH"

func mkdir(path string) string {
	lo.Must0(filesystem.API().MkdirAll(path, os.ModePerm))
	return path
}

// userDir joins the app name onto a per-user base directory, falling back to fallback on platforms without one.
func userDir(base func() (string, error), fallback string) string {
	dir, err := base()
	if err != nil {
		dir = fallback
	}
	return mkdir(filepath.Join(dir, constant.App))
}

func Config() string {
	if custom, ok := os.LookupEnv(EnvConfigPath); ok && custom != "" {
		return mkdir(custom)
	}
	return userDir(os.UserConfigDir, ".")
}

func Cache() string {
	return userDir(os.UserCacheDir, os.TempDir())
}

func Logs() string {
	return mkdir(filepath.Join(Config(), "logs"))
}

func Temp() string {
	return mkdir(filepath.Join(os.TempDir(), constant.App))
}

// History is the file holding completed downloads. It lives next to the
// config so clearing the cache keeps it.
func History() string {
	return filepath.Join(Config(), "history.json")
}

// Queries is the file of remembered title IDs.
func Queries() string {
	return filepath.Join(Cache(), "titles.json")
}

// Listings is the file of cached videos-by-date pages.
func Listings() string {
	return filepath.Join(Cache(), "listings.json")
}

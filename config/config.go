// Package config registers gplay's settings and loads them through viper.
//
// Values resolve in viper's order: flags bound with BindPFlag, GPLAY_* environment
// variables, the gplay.toml file under where.Config(), then the defaults below.
package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/gplay-cli/gplay/constant"
	"github.com/gplay-cli/gplay/filesystem"
	"github.com/gplay-cli/gplay/where"
	"github.com/spf13/viper"
)

// EnvKeyReplacer turns a dotted key into its environment variable suffix.
var EnvKeyReplacer = strings.NewReplacer(".", "_")

const fileType = "toml"

// Setup loads defaults, environment bindings and the config file, if one exists.
func Setup() error {
	viper.SetConfigName(constant.App)
	viper.SetConfigType(fileType)
	viper.SetFs(filesystem.API())
	viper.AddConfigPath(where.Config())

	viper.SetEnvPrefix(constant.App)
	viper.SetEnvKeyReplacer(EnvKeyReplacer)
	for _, env := range EnvExposed {
		if err := viper.BindEnv(env); err != nil {
			return fmt.Errorf("config: bind %s: %w", env, err)
		}
	}

	viper.SetTypeByDefaultValue(true)
	for name, field := range Default {
		viper.SetDefault(name, field.Value)
	}

	err := viper.ReadInConfig()
	var notFound viper.ConfigFileNotFoundError
	if err == nil || errors.As(err, &notFound) {
		return nil
	}
	return fmt.Errorf("config: read %s: %w", Path(), err)
}

// Path is where the config file lives, whether or not it has been written yet.
func Path() string {
	if used := viper.ConfigFileUsed(); used != "" {
		return used
	}
	return filepath.Join(where.Config(), constant.App+"."+fileType)
}

// Save writes the current settings, creating the file when it is missing.
func Save() error {
	err := viper.WriteConfig()
	var notFound viper.ConfigFileNotFoundError
	if errors.As(err, &notFound) {
		return viper.SafeWriteConfig()
	}
	return err
}

// Set parses values for key and stores the result in memory. Call Save to persist it.
func Set(key string, values ...string) (any, error) {
	field, err := Lookup(key)
	if err != nil {
		return nil, err
	}

	value, err := field.Parse(values)
	if err != nil {
		return nil, err
	}

	viper.Set(key, value)
	return value, nil
}

// Restore puts key back to its default in memory.
func Restore(key string) error {
	field, err := Lookup(key)
	if err != nil {
		return err
	}
	viper.Set(key, field.Value)
	return nil
}

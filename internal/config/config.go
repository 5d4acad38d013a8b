// Package config loads the deployment configuration. Every value has a
// default, so the binary runs without a config file; RCB_* environment
// variables override both defaults and file values.
package config

import (
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// Config holds the deployment constants for one plant installation.
type Config struct {
	App struct {
		Env             string `mapstructure:"env"`
		DefaultOperator string `mapstructure:"default_operator"`
	} `mapstructure:"app"`

	SQLite struct {
		Path string `mapstructure:"path"`
	} `mapstructure:"sqlite"`

	Pool struct {
		// Size is the fixed number of warehouse slots. A deployment
		// constant: changing it after init only adds slots, never removes.
		Size int `mapstructure:"size"`
	} `mapstructure:"pool"`

	Bags struct {
		RefPrefix string   `mapstructure:"ref_prefix"`
		Products  []string `mapstructure:"products"`
	} `mapstructure:"bags"`

	HTTP struct {
		Addr string `mapstructure:"addr"`
	} `mapstructure:"http"`

	Metrics struct {
		Enabled bool `mapstructure:"enabled"`
	} `mapstructure:"metrics"`
}

// DefaultPath returns the default config location, ~/.rcb/config.yaml.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "config.yaml"
	}
	return filepath.Join(home, ".rcb", "config.yaml")
}

// Load reads the config file at path, falling back to defaults when the file
// does not exist.
func Load(path string) (Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetEnvPrefix("RCB")
	v.AutomaticEnv()

	v.SetDefault("app.env", "prod")
	v.SetDefault("app.default_operator", "")
	v.SetDefault("sqlite.path", "")
	v.SetDefault("pool.size", 40)
	v.SetDefault("bags.ref_prefix", "RCB")
	v.SetDefault("bags.products", []string{"Product Alpha", "Product Beta"})
	v.SetDefault("http.addr", ":8090")
	v.SetDefault("metrics.enabled", true)

	var c Config
	if err := v.ReadInConfig(); err != nil {
		if !os.IsNotExist(err) {
			return c, err
		}
	}
	if err := v.Unmarshal(&c); err != nil {
		return c, err
	}
	return c, nil
}

package cli

import (
	"github.com/spf13/cobra"

	"github.com/mcoot/hearts/internal/config"
)

// Options holds command-line overrides for the loaded configuration
type Options struct {
	ConfigFile  string
	Output      string
	StorageType string
	SQLitePath  string
	RedisURL    string
	Namespace   string
}

// DefaultOptions returns Options with default values
func DefaultOptions() *Options {
	return &Options{
		Output: "text",
	}
}

// apply copies every flag the user actually set onto cfg
func (o *Options) apply(cmd *cobra.Command, cfg *config.Config) {
	flags := cmd.Flags()
	if flags.Changed("output") {
		cfg.Output = o.Output
	}
	if flags.Changed("storage") {
		cfg.Storage.Type = o.StorageType
	}
	if flags.Changed("sqlite-path") {
		cfg.Storage.SQLite.Path = o.SQLitePath
	}
	if flags.Changed("redis-url") {
		cfg.Storage.Redis.URL = o.RedisURL
	}
	if flags.Changed("namespace") {
		cfg.Storage.Redis.Namespace = o.Namespace
	}
}

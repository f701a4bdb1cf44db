package main

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Config holds the runtime settings. Values come from flags, then
// IRCMSG_* environment variables, then an optional env-style config file.
type Config struct {
	LogLevel  string `mapstructure:"log_level"`  // debug|info|warn|error
	LogFormat string `mapstructure:"log_format"` // console|json
	Strict    bool   `mapstructure:"strict"`     // stop at the first bad line

	// Positional arguments: files to read. Empty means stdin.
	Inputs []string `mapstructure:"-"`
}

// ParseConfig parses args (without the program name) and returns the
// resolved configuration.
func ParseConfig(args []string) (*Config, error) {
	fs := pflag.NewFlagSet("ircmsg", pflag.ContinueOnError)
	fs.String("log", "info", "log level (debug|info|warn|error)")
	fs.String("format", "console", "log format (console|json)")
	fs.Bool("strict", false, "stop at the first line that fails to parse")
	fs.String("config", "", "env-style config file (LOG_LEVEL=..., STRICT=...)")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	v := viper.New()
	v.SetEnvPrefix("IRCMSG")
	v.AutomaticEnv()
	for key, flag := range map[string]string{
		"log_level":  "log",
		"log_format": "format",
		"strict":     "strict",
	} {
		if err := v.BindPFlag(key, fs.Lookup(flag)); err != nil {
			return nil, err
		}
	}

	if path, _ := fs.GetString("config"); path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("env")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if rest := fs.Args(); len(rest) > 0 {
		cfg.Inputs = rest
	}

	switch strings.ToLower(cfg.LogFormat) {
	case "console", "json":
	default:
		return nil, fmt.Errorf("log format must be console or json, got %q", cfg.LogFormat)
	}
	return &cfg, nil
}

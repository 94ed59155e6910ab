// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/BurntSushi/toml"
	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"
)

// config holds the settings shared by the subcommands. A TOML file named by
// --config sets them first; flags given on the command line win.
type config struct {
	FaceSize     int    `toml:"face_size"`
	Flat         bool   `toml:"flat"`
	Trail        bool   `toml:"trail"`
	DumpTopology bool   `toml:"dump_topology"`
	LogLevel     string `toml:"log_level"`
}

func defaultConfig() config {
	return config{LogLevel: "warn"}
}

// bindFlags registers the persistent flags on fs, backed by cfg.
func bindFlags(fs *pflag.FlagSet, cfg *config, path *string) {
	fs.StringVar(path, "config", "", "TOML file with default settings")
	fs.IntVar(&cfg.FaceSize, "face-size", cfg.FaceSize, "face edge length in tiles (0 infers it)")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level: trace, debug, info, warn or error")
}

// bindRunFlags registers the flags of the run command.
func bindRunFlags(fs *pflag.FlagSet, cfg *config) {
	fs.BoolVar(&cfg.Flat, "flat", cfg.Flat, "wrap around the flat net instead of folding it")
	fs.BoolVar(&cfg.Trail, "trail", cfg.Trail, "print the net with the walked trail")
	fs.BoolVar(&cfg.DumpTopology, "dump-topology", cfg.DumpTopology, "print the resolved cube topology as YAML")
}

// load reads the TOML file at path and applies each setting whose flag
// was not given explicitly on fs.
func load(path string, fs *pflag.FlagSet, cfg *config) error {
	if path == "" {
		return nil
	}
	var file config
	if _, err := toml.DecodeFile(path, &file); err != nil {
		return fmt.Errorf("config %s: %w", path, err)
	}
	unset := func(name string) bool {
		f := fs.Lookup(name)
		return f == nil || !f.Changed
	}
	if unset("face-size") {
		cfg.FaceSize = file.FaceSize
	}
	if unset("flat") {
		cfg.Flat = file.Flat
	}
	if unset("trail") {
		cfg.Trail = file.Trail
	}
	if unset("dump-topology") {
		cfg.DumpTopology = file.DumpTopology
	}
	if unset("log-level") && file.LogLevel != "" {
		cfg.LogLevel = file.LogLevel
	}

	return nil
}

// newLogger builds a text logger at the configured level.
func newLogger(cfg config) (*logrus.Logger, error) {
	lvl, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, err
	}
	l := logrus.New()
	l.SetLevel(lvl)
	l.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})

	return l, nil
}

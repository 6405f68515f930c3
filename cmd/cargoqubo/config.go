package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Output formats.
const (
	formatDense  = "dense"
	formatSparse = "sparse"
)

const envPrefix = "CARGOQUBO"

var errUsage = errors.New("usage")

// config is the resolved driver configuration.
type config struct {
	Instance   string
	Containers int
	Routes     int
	Capacity   int
	Seed       int64
	Workers    int
	Format     string
	Output     string
	Sample     string
	Verbosity  int
}

func newFlagSet() *pflag.FlagSet {
	fs := pflag.NewFlagSet("cargoqubo", pflag.ContinueOnError)
	fs.String("config", "", "configuration file (yaml, toml or json)")
	fs.StringP("instance", "i", "", "YAML instance file; random instance when empty")
	fs.IntP("containers", "n", 10, "random instance: number of containers")
	fs.IntP("routes", "m", 5, "random instance: number of routes")
	fs.IntP("capacity", "c", 3, "random instance: capacity of every route")
	fs.Int64("seed", 0, "random instance: generator seed (0 = default)")
	fs.IntP("workers", "w", 1, "goroutines used to accumulate route penalties")
	fs.StringP("format", "f", formatDense, "matrix format: dense (full TSV) or sparse (i, j, value TSV, upper triangle)")
	fs.StringP("output", "o", "", "matrix output file (default stdout)")
	fs.String("sample", "", "TSV file whose first row is a solver sample to decode")
	fs.IntP("verbosity", "v", 0, "log verbosity")

	return fs
}

// loadConfig parses args and layers environment and config file values under them.
func loadConfig(args []string) (config, error) {
	fs := newFlagSet()
	if err := fs.Parse(args); err != nil {
		return config{}, fmt.Errorf("%w: %w", errUsage, err)
	}
	if fs.NArg() > 0 {
		return config{}, fmt.Errorf("%w: unexpected arguments %v", errUsage, fs.Args())
	}

	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	if err := v.BindPFlags(fs); err != nil {
		return config{}, err
	}
	if path := v.GetString("config"); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return config{}, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	cfg := config{
		Instance:   v.GetString("instance"),
		Containers: v.GetInt("containers"),
		Routes:     v.GetInt("routes"),
		Capacity:   v.GetInt("capacity"),
		Seed:       v.GetInt64("seed"),
		Workers:    v.GetInt("workers"),
		Format:     strings.ToLower(v.GetString("format")),
		Output:     v.GetString("output"),
		Sample:     v.GetString("sample"),
		Verbosity:  v.GetInt("verbosity"),
	}

	return cfg, cfg.validate()
}

func (c config) validate() error {
	switch c.Format {
	case formatDense, formatSparse:
	default:
		return fmt.Errorf("%w: unknown format %q", errUsage, c.Format)
	}
	if c.Workers < 1 {
		return fmt.Errorf("%w: workers must be >= 1, got %d", errUsage, c.Workers)
	}
	if c.Verbosity < 0 {
		return fmt.Errorf("%w: verbosity must be >= 0, got %d", errUsage, c.Verbosity)
	}

	return nil
}

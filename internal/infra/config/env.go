package config

import (
	"github.com/caarlos0/env/v11"

	"github.com/aalvaropc/seek/internal/domain"
)

// EnvPrefix namespaces every environment override.
const EnvPrefix = "SEEK_"

type envOverrides struct {
	Min             int    `env:"GENERATOR_MIN"`
	Max             int    `env:"GENERATOR_MAX"`
	DefaultLength   int    `env:"DEFAULT_LENGTH"`
	MaxLength       int    `env:"MAX_LENGTH"`
	RunsDir         string `env:"RUNS_DIR"`
	Index           bool   `env:"INDEX"`
	MaxStoredValues int    `env:"MAX_STORED_VALUES"`
	Format          string `env:"FORMAT"`
	Addr            string `env:"SERVER_ADDR"`
}

// ApplyEnv overlays SEEK_* variables on cfg. Unset variables leave fields as they are.
func ApplyEnv(cfg domain.Config, environ map[string]string) (domain.Config, error) {
	o := envOverrides{
		Min:             cfg.Generator.Min,
		Max:             cfg.Generator.Max,
		DefaultLength:   cfg.Generator.DefaultLength,
		MaxLength:       cfg.Generator.MaxLength,
		RunsDir:         cfg.Store.RunsDir,
		Index:           cfg.Store.Index,
		MaxStoredValues: cfg.Store.MaxStoredValues,
		Format:          cfg.Output.Format,
		Addr:            cfg.Server.Addr,
	}

	opts := env.Options{Prefix: EnvPrefix}
	if environ != nil {
		opts.Environment = environ
	}
	if err := env.ParseWithOptions(&o, opts); err != nil {
		return cfg, &domain.OpError{
			Op:   "config.env",
			Kind: domain.KindInvalidConfig,
			Err:  err,
		}
	}

	cfg.Generator.Min = o.Min
	cfg.Generator.Max = o.Max
	cfg.Generator.DefaultLength = o.DefaultLength
	cfg.Generator.MaxLength = o.MaxLength
	cfg.Store.RunsDir = o.RunsDir
	cfg.Store.Index = o.Index
	cfg.Store.MaxStoredValues = o.MaxStoredValues
	cfg.Output.Format = o.Format
	cfg.Server.Addr = o.Addr

	if err := Validate("env", cfg); err != nil {
		return domain.Config{}, err
	}
	return cfg, nil
}

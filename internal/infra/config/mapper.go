package config

import (
	"fmt"
	"strings"

	"github.com/aalvaropc/seek/internal/domain"
)

// MapConfig applies parsed values on top of defaults and validates the result.
func MapConfig(path string, y YAMLConfig) (domain.Config, error) {
	cfg := domain.DefaultConfig()

	g := y.Seek.Generator
	if g.Min != nil {
		cfg.Generator.Min = *g.Min
	}
	if g.Max != nil {
		cfg.Generator.Max = *g.Max
	}
	if g.DefaultLength != nil {
		cfg.Generator.DefaultLength = *g.DefaultLength
	}
	if g.MaxLength != nil {
		cfg.Generator.MaxLength = *g.MaxLength
	}

	s := y.Seek.Store
	if strings.TrimSpace(s.RunsDir) != "" {
		cfg.Store.RunsDir = strings.TrimSpace(s.RunsDir)
	}
	if s.Index != nil {
		cfg.Store.Index = *s.Index
	}
	if s.MaxStoredValues != nil {
		cfg.Store.MaxStoredValues = *s.MaxStoredValues
	}

	if f := strings.TrimSpace(y.Seek.Output.Format); f != "" {
		cfg.Output.Format = strings.ToLower(f)
	}
	if a := strings.TrimSpace(y.Seek.Server.Addr); a != "" {
		cfg.Server.Addr = a
	}

	if err := Validate(path, cfg); err != nil {
		return domain.Config{}, err
	}
	return cfg, nil
}

// Validate checks cross-field constraints. path is only used for error context.
func Validate(path string, cfg domain.Config) error {
	g := cfg.Generator
	if g.Min > g.Max {
		return invalidField(path, "generator.min", fmt.Sprintf("min %d is greater than max %d", g.Min, g.Max))
	}
	if g.MaxLength < 0 {
		return invalidField(path, "generator.max_length", "must not be negative")
	}
	if g.DefaultLength < 0 {
		return invalidField(path, "generator.default_length", "must not be negative")
	}
	if g.DefaultLength > g.MaxLength {
		return invalidField(path, "generator.default_length", fmt.Sprintf("%d exceeds max_length %d", g.DefaultLength, g.MaxLength))
	}
	if cfg.Store.MaxStoredValues < 0 {
		return invalidField(path, "store.max_stored_values", "must not be negative")
	}
	if strings.ContainsAny(cfg.Store.RunsDir, `\`) || strings.Contains(cfg.Store.RunsDir, "..") {
		return invalidField(path, "store.runs_dir", fmt.Sprintf("unsafe path %q", cfg.Store.RunsDir))
	}
	switch cfg.Output.Format {
	case "pretty", "json":
	default:
		return invalidField(path, "output.format", fmt.Sprintf("unsupported format %q (expected pretty|json)", cfg.Output.Format))
	}
	return nil
}

func invalidField(path, field, msg string) error {
	return &domain.OpError{
		Op:   "config.map",
		Kind: domain.KindInvalidConfig,
		Path: path,
		Err:  fmt.Errorf("field %s: %s: %w", field, msg, domain.ErrInvalidConfig),
	}
}

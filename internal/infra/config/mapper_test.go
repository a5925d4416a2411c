package config

import (
	"strings"
	"testing"

	"github.com/aalvaropc/seek/internal/domain"
)

func intp(v int) *int { return &v }

func TestMapConfigEmptyIsDefaults(t *testing.T) {
	cfg, err := MapConfig("seek.yaml", YAMLConfig{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg != domain.DefaultConfig() {
		t.Fatalf("expected defaults, got %+v", cfg)
	}
}

func TestMapConfigZeroValuesAreExplicit(t *testing.T) {
	cfg, err := MapConfig("seek.yaml", YAMLConfig{Seek: YAMLSeek{
		Generator: YAMLGenerator{Min: intp(0), Max: intp(0), DefaultLength: intp(0)},
		Store:     YAMLStore{MaxStoredValues: intp(0)},
	}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Generator.Max != 0 || cfg.Generator.DefaultLength != 0 || cfg.Store.MaxStoredValues != 0 {
		t.Fatalf("expected explicit zeros to apply, got %+v", cfg)
	}
}

func TestMapConfigValidation(t *testing.T) {
	cases := []struct {
		name  string
		in    YAMLSeek
		field string
	}{
		{"inverted range", YAMLSeek{Generator: YAMLGenerator{Min: intp(5), Max: intp(1)}}, "generator.min"},
		{"negative max length", YAMLSeek{Generator: YAMLGenerator{DefaultLength: intp(0), MaxLength: intp(-1)}}, "generator.max_length"},
		{"negative default length", YAMLSeek{Generator: YAMLGenerator{DefaultLength: intp(-2)}}, "generator.default_length"},
		{"default over max", YAMLSeek{Generator: YAMLGenerator{DefaultLength: intp(20), MaxLength: intp(10)}}, "generator.default_length"},
		{"negative cap", YAMLSeek{Store: YAMLStore{MaxStoredValues: intp(-1)}}, "store.max_stored_values"},
		{"escaping runs dir", YAMLSeek{Store: YAMLStore{RunsDir: "../elsewhere"}}, "store.runs_dir"},
		{"unknown format", YAMLSeek{Output: YAMLOutput{Format: "xml"}}, "output.format"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := MapConfig("seek.yaml", YAMLConfig{Seek: c.in})
			if err == nil {
				t.Fatalf("expected error")
			}
			if !domain.IsKind(err, domain.KindInvalidConfig) {
				t.Fatalf("expected invalid_config, got %v", err)
			}
			if !strings.Contains(err.Error(), c.field) {
				t.Fatalf("expected %s in error, got %v", c.field, err)
			}
		})
	}
}

func TestApplyEnv(t *testing.T) {
	cfg, err := ApplyEnv(domain.DefaultConfig(), map[string]string{
		"SEEK_GENERATOR_MIN": "-1",
		"SEEK_INDEX":         "false",
		"SEEK_RUNS_DIR":      "out",
		"UNRELATED":          "x",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Generator.Min != -1 || cfg.Store.Index || cfg.Store.RunsDir != "out" {
		t.Fatalf("expected overrides to apply, got %+v", cfg)
	}
	if cfg.Generator.Max != 100 {
		t.Fatalf("expected untouched fields to keep defaults, got %+v", cfg.Generator)
	}
}

func TestApplyEnvRejectsGarbage(t *testing.T) {
	_, err := ApplyEnv(domain.DefaultConfig(), map[string]string{"SEEK_GENERATOR_MAX": "lots"})
	if !domain.IsKind(err, domain.KindInvalidConfig) {
		t.Fatalf("expected invalid_config, got %v", err)
	}

	_, err = ApplyEnv(domain.DefaultConfig(), map[string]string{"SEEK_GENERATOR_MIN": "500"})
	if !domain.IsKind(err, domain.KindInvalidConfig) {
		t.Fatalf("expected validation to run after overrides, got %v", err)
	}
}

package logging

import (
	"testing"

	"github.com/rs/zerolog"
)

func TestParseLevel(t *testing.T) {
	cases := []struct {
		raw  string
		want zerolog.Level
		ok   bool
	}{
		{"", zerolog.InfoLevel, false},
		{"trace", zerolog.TraceLevel, true},
		{"debug", zerolog.DebugLevel, true},
		{"INFO", zerolog.InfoLevel, true},
		{" warn ", zerolog.WarnLevel, true},
		{"warning", zerolog.WarnLevel, true},
		{"error", zerolog.ErrorLevel, true},
		{"off", zerolog.Disabled, true},
		{"disabled", zerolog.Disabled, true},
		{"bogus", zerolog.InfoLevel, false},
	}
	for _, tc := range cases {
		got, ok := parseLevel(tc.raw)
		if ok != tc.ok || got != tc.want {
			t.Errorf("parseLevel(%q) = %v, %v; want %v, %v", tc.raw, got, ok, tc.want, tc.ok)
		}
	}
}

func TestParseBool(t *testing.T) {
	if v, ok := parseBool("true"); !ok || !v {
		t.Fatalf("parseBool(true) = %v, %v", v, ok)
	}
	if v, ok := parseBool("0"); !ok || v {
		t.Fatalf("parseBool(0) = %v, %v", v, ok)
	}
	if _, ok := parseBool(""); ok {
		t.Fatal("expected empty string to report not-set")
	}
	if _, ok := parseBool("maybe"); ok {
		t.Fatal("expected invalid literal to report not-set")
	}
}

func TestDefaultConfigProfiles(t *testing.T) {
	runtime := defaultConfig(ProfileRuntime)
	if runtime.Level != zerolog.InfoLevel || !runtime.Timestamp {
		t.Fatalf("unexpected runtime defaults: %+v", runtime)
	}
	tests := defaultConfig(ProfileTest)
	if tests.Level != zerolog.DebugLevel || tests.Timestamp || !tests.NoColor {
		t.Fatalf("unexpected test defaults: %+v", tests)
	}
}

func TestApplyEnvOverrides(t *testing.T) {
	t.Setenv(EnvLogLevel, "error")
	t.Setenv(EnvLogTimestamp, "false")
	t.Setenv(EnvLogNoColor, "1")

	cfg := defaultConfig(ProfileRuntime)
	applyEnvOverrides(&cfg)

	if cfg.Level != zerolog.ErrorLevel {
		t.Fatalf("level override not applied: %v", cfg.Level)
	}
	if cfg.Timestamp {
		t.Fatal("timestamp override not applied")
	}
	if !cfg.NoColor {
		t.Fatal("nocolor override not applied")
	}
}

func TestApplyEnvOverridesIgnoresInvalid(t *testing.T) {
	t.Setenv(EnvLogLevel, "loudest")
	t.Setenv(EnvLogTimestamp, "sometimes")

	cfg := defaultConfig(ProfileRuntime)
	applyEnvOverrides(&cfg)

	if cfg.Level != zerolog.InfoLevel || !cfg.Timestamp {
		t.Fatalf("invalid overrides should leave defaults intact: %+v", cfg)
	}
}

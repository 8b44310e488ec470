package main

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
)

// forgectl config.toml key mapping to call defaults.
type fileConfig struct {
	Profile     string `toml:"profile"`
	Credentials string `toml:"credentials"`
	Path        string `toml:"path"`
	Method      string `toml:"method"`
	Category    int    `toml:"category"`
	Parse       string `toml:"parse"`
	TimeoutMS   int64  `toml:"timeout_ms"`
}

// callSettings are the resolved defaults one call starts from. Flags
// override individual fields afterwards.
type callSettings struct {
	ProfilePath     string
	CredentialsPath string
	Path            string
	Method          string
	Category        int
	Parse           string
	TimeoutMS       int64
}

func defaultCallSettings() callSettings {
	return callSettings{}
}

// forgectl loader for TOML config with default overlay.
func loadCallSettings(path string) (callSettings, error) {
	cfg := defaultCallSettings()

	var raw fileConfig
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return callSettings{}, fmt.Errorf("load forgectl config: %w", err)
	}

	if meta.IsDefined("profile") {
		cfg.ProfilePath = strings.TrimSpace(raw.Profile)
	}
	if meta.IsDefined("credentials") {
		cfg.CredentialsPath = strings.TrimSpace(raw.Credentials)
	}
	if meta.IsDefined("path") {
		cfg.Path = strings.TrimSpace(raw.Path)
	}
	if meta.IsDefined("method") {
		cfg.Method = strings.TrimSpace(raw.Method)
	}
	if meta.IsDefined("category") {
		cfg.Category = raw.Category
	}
	if meta.IsDefined("parse") {
		cfg.Parse = strings.TrimSpace(raw.Parse)
	}
	if meta.IsDefined("timeout_ms") {
		if raw.TimeoutMS < 0 {
			return callSettings{}, fmt.Errorf("load forgectl config: timeout_ms must not be negative")
		}
		cfg.TimeoutMS = raw.TimeoutMS
	}
	return cfg, nil
}

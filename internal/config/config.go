package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"github.com/neko3da4/CHRFORGE/internal/identity"
)

// ClientProfile selects the platform identity and call defaults for one
// client. A profile naming only a platform rides the defaults table; any
// OS field makes it fully custom.
type ClientProfile struct {
	Platform        string `toml:"platform"`
	AppVersion      string `toml:"app_version"`
	OSName          string `toml:"os_name"`
	OSVersion       string `toml:"os_version"`
	OSModel         string `toml:"os_model"`
	Language        string `toml:"language"`
	TimeoutMS       int64  `toml:"timeout_ms"`
	CredentialsFile string `toml:"credentials_file"`
}

// GatewayConfig shapes one stub gateway process.
type GatewayConfig struct {
	Name        string          `toml:"name"`
	Addr        string          `toml:"addr"`
	CorsOrigins []string        `toml:"cors_origins"`
	AuthToken   string          `toml:"auth_token"`
	NextAccess  string          `toml:"next_access"`
	Fixtures    []FixtureConfig `toml:"fixtures"`
}

// FixtureConfig is one canned response. The body comes from inline hex or
// a payload file, never both.
type FixtureConfig struct {
	Path       string `toml:"path"`
	Status     int    `toml:"status"`
	Hex        string `toml:"hex"`
	File       string `toml:"file"`
	Gzip       bool   `toml:"gzip"`
	NextAccess string `toml:"next_access"`
}

func LoadClientProfile(path string) (ClientProfile, error) {
	var cfg ClientProfile
	if err := loadToml(path, &cfg); err != nil {
		return ClientProfile{}, err
	}
	if cfg.Platform == "" {
		cfg.Platform = string(identity.PlatformDesktopWin)
	}
	if err := ValidateClientProfile(cfg); err != nil {
		return ClientProfile{}, err
	}
	return cfg, nil
}

func LoadGatewayConfig(path string) (GatewayConfig, error) {
	var cfg GatewayConfig
	if err := loadToml(path, &cfg); err != nil {
		return GatewayConfig{}, err
	}
	if cfg.Name == "" {
		cfg.Name = "stubgw"
	}
	if cfg.Addr == "" {
		cfg.Addr = ":8111"
	}
	for i := range cfg.Fixtures {
		if cfg.Fixtures[i].Status == 0 {
			cfg.Fixtures[i].Status = 200
		}
	}
	if err := ValidateGatewayConfig(cfg); err != nil {
		return GatewayConfig{}, err
	}
	return cfg, nil
}

func loadToml(path string, out any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("config load failed (%s): %w", path, err)
	}
	if err := toml.Unmarshal(data, out); err != nil {
		return fmt.Errorf("config parse failed (%s): %w", path, err)
	}
	return nil
}

func ValidateClientProfile(cfg ClientProfile) error {
	platform := identity.Platform(strings.ToUpper(strings.TrimSpace(cfg.Platform)))
	if !platform.Known() {
		return fmt.Errorf("client profile names unknown platform: %s", cfg.Platform)
	}
	custom := cfg.OSName != "" || cfg.OSVersion != "" || cfg.OSModel != ""
	if custom {
		if strings.TrimSpace(cfg.AppVersion) == "" {
			return fmt.Errorf("custom client profile missing app_version")
		}
		if strings.TrimSpace(cfg.OSName) == "" {
			return fmt.Errorf("custom client profile missing os_name")
		}
		if strings.TrimSpace(cfg.OSVersion) == "" {
			return fmt.Errorf("custom client profile missing os_version")
		}
	}
	if cfg.TimeoutMS < 0 {
		return fmt.Errorf("client profile timeout_ms must not be negative")
	}
	return nil
}

func ValidateGatewayConfig(cfg GatewayConfig) error {
	if strings.TrimSpace(cfg.Name) == "" {
		return fmt.Errorf("gateway config missing name")
	}
	if strings.TrimSpace(cfg.Addr) == "" {
		return fmt.Errorf("gateway config missing addr")
	}
	for i, fixture := range cfg.Fixtures {
		if err := ValidateFixture(fixture); err != nil {
			return fmt.Errorf("fixture[%d] invalid: %w", i, err)
		}
	}
	return nil
}

func ValidateFixture(cfg FixtureConfig) error {
	if strings.TrimSpace(cfg.Path) == "" {
		return fmt.Errorf("path is required")
	}
	if !strings.HasPrefix(cfg.Path, "/") {
		return fmt.Errorf("path must start with /")
	}
	if cfg.Hex != "" && cfg.File != "" {
		return fmt.Errorf("hex and file are mutually exclusive")
	}
	if cfg.Hex != "" {
		if _, err := decodeHex(cfg.Hex); err != nil {
			return err
		}
	}
	if cfg.Status < 0 {
		return fmt.Errorf("status must not be negative")
	}
	return nil
}

package config

import (
	"encoding/hex"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/neko3da4/CHRFORGE/internal/identity"
)

// IdentityDetails resolves a client profile into the platform identity it
// describes.
func IdentityDetails(p ClientProfile) (identity.Details, error) {
	platform := identity.Platform(strings.ToUpper(strings.TrimSpace(p.Platform)))
	if p.OSName == "" && p.OSVersion == "" && p.OSModel == "" {
		return identity.ForPlatform(platform, p.AppVersion)
	}
	return identity.Custom(platform, p.AppVersion, p.OSName, p.OSVersion, p.OSModel)
}

// Timeout converts the profile timeout to a duration. Zero means the
// pipeline default applies.
func Timeout(p ClientProfile) time.Duration {
	if p.TimeoutMS <= 0 {
		return 0
	}
	return time.Duration(p.TimeoutMS) * time.Millisecond
}

// FixturePayload materializes one fixture body from its inline hex or its
// payload file. Fixtures with neither serve an empty body.
func FixturePayload(f FixtureConfig) ([]byte, error) {
	switch {
	case f.Hex != "":
		return decodeHex(f.Hex)
	case f.File != "":
		data, err := os.ReadFile(f.File)
		if err != nil {
			return nil, fmt.Errorf("fixture payload read failed (%s): %w", f.File, err)
		}
		return data, nil
	default:
		return nil, nil
	}
}

func decodeHex(raw string) ([]byte, error) {
	cleaned := strings.NewReplacer(" ", "", "\n", "", "\t", "").Replace(raw)
	data, err := hex.DecodeString(cleaned)
	if err != nil {
		return nil, fmt.Errorf("fixture hex invalid: %w", err)
	}
	return data, nil
}

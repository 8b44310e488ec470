package identity

import (
	"errors"
	"fmt"
)

var (
	ErrUnknownPlatform   = errors.New("identity: unknown platform")
	ErrNoDefaultDetails  = errors.New("identity: no default details for platform")
	ErrIncompleteDetails = errors.New("identity: incomplete details")
)

const chromeOSUserAgent = "Mozilla/5.0 (Windows NT 11.0; Win64; x64) AppleWebKit/537.36 " +
	"(KHTML, like Gecko) Chrome/115.0.0.0 Safari/537.36"

// Details is the immutable platform identity presented on every request.
type Details struct {
	Platform   Platform
	AppVersion string
	OSName     string
	OSVersion  string
	OSModel    string
	UserDomain string
	Secondary  bool
}

// ForPlatform returns the defaults-table details for p. A non-empty version
// overrides the table's app version. Platforms without a table entry require
// Custom.
func ForPlatform(p Platform, version string) (Details, error) {
	if !p.Known() {
		return Details{}, fmt.Errorf("%w: %q", ErrUnknownPlatform, string(p))
	}
	d, ok := defaultDetails[p]
	if !ok {
		return Details{}, fmt.Errorf("%w: %q", ErrNoDefaultDetails, string(p))
	}
	if version != "" {
		d.AppVersion = version
	}
	return d, nil
}

// Custom builds details for platforms outside the defaults table, or to
// override every field. appVersion, osName and osVersion are required; an
// empty osModel falls back to the shared default.
func Custom(p Platform, appVersion, osName, osVersion, osModel string) (Details, error) {
	if !p.Known() {
		return Details{}, fmt.Errorf("%w: %q", ErrUnknownPlatform, string(p))
	}
	if appVersion == "" {
		return Details{}, fmt.Errorf("%w: missing app_version", ErrIncompleteDetails)
	}
	if osName == "" {
		return Details{}, fmt.Errorf("%w: missing os_name", ErrIncompleteDetails)
	}
	if osVersion == "" {
		return Details{}, fmt.Errorf("%w: missing os_version", ErrIncompleteDetails)
	}
	if osModel == "" {
		osModel = DefaultOSModel
	}
	return Details{
		Platform:   p,
		AppVersion: appVersion,
		OSName:     osName,
		OSVersion:  osVersion,
		OSModel:    osModel,
		UserDomain: DefaultUserDomain,
	}, nil
}

// AppIdentity renders the tab-joined identity string sent upstream.
// Secondary-role identities carry the ";SECONDARY" suffix.
func (d Details) AppIdentity() string {
	s := fmt.Sprintf("%s\t%s\t%s\t%s", d.Platform, d.AppVersion, d.OSName, d.OSVersion)
	if d.Secondary {
		s += ";SECONDARY"
	}
	return s
}

// UserAgent renders the user-agent string for d's platform family.
func (d Details) UserAgent() string {
	switch d.Platform {
	case PlatformChromeOS:
		return chromeOSUserAgent
	case PlatformDesktopWin:
		return fmt.Sprintf("DESKTOP:WINDOWS:%s(%s)", d.OSVersion, d.AppVersion)
	case PlatformDesktopMac:
		return fmt.Sprintf("DESKTOP:MAC:%s(%s)", d.OSVersion, d.AppVersion)
	default:
		return fmt.Sprintf("Line/%s %s %s", d.AppVersion, d.OSModel, d.OSVersion)
	}
}

// SupportsV3Token reports v3 token scheme support for d's platform.
func (d Details) SupportsV3Token() bool {
	return SupportsV3Token(d.Platform)
}

// SupportsSync reports sync support for d's platform.
func (d Details) SupportsSync() bool {
	return SupportsSync(d.Platform)
}

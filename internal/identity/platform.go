package identity

// Platform identifies the client application family presented upstream.
type Platform string

const (
	PlatformDesktopWin       Platform = "DESKTOPWIN"
	PlatformDesktopMac       Platform = "DESKTOPMAC"
	PlatformChromeOS         Platform = "CHROMEOS"
	PlatformAndroid          Platform = "ANDROID"
	PlatformAndroidSecondary Platform = "ANDROIDSECONDARY"
	PlatformIOS              Platform = "IOS"
	PlatformIOSIpad          Platform = "IOSIPAD"
	PlatformWatchOS          Platform = "WATCHOS"
	PlatformWearOS           Platform = "WEAROS"
	PlatformVisionOS         Platform = "VISIONOS"

	// Historical and service-side platforms. No default details exist for
	// these; callers must provide full details through Custom.
	PlatformOpenChatPlus Platform = "OPENCHAT_PLUS"
	PlatformChannelGW    Platform = "CHANNELGW"
	PlatformChannelCP    Platform = "CHANNELCP"
	PlatformClovaFriends Platform = "CLOVAFRIENDS"
	PlatformBot          Platform = "BOT"
	PlatformWAP          Platform = "WAP"
	PlatformWeb          Platform = "WEB"
	PlatformBizWeb       Platform = "BIZWEB"
	PlatformDummyPrimary Platform = "DUMMYPRIMARY"
	PlatformSquare       Platform = "SQUARE"
	PlatformFirefoxOS    Platform = "FIREFOXOS"
	PlatformTizen        Platform = "TIZEN"
	PlatformVirtual      Platform = "VIRTUAL"
	PlatformChrono       Platform = "CHRONO"
	PlatformWinMetro     Platform = "WINMETRO"
	PlatformS40          Platform = "S40"
	PlatformWinPhone     Platform = "WINPHONE"
	PlatformBlackBerry   Platform = "BLACKBERRY"
	PlatformInternal     Platform = "INTERNAL"
)

// Shared default field values for platforms that do not override them.
const (
	DefaultOSVersion  = "12.1.4"
	DefaultOSModel    = "System Product Name"
	DefaultUserDomain = "KORONE-MY-WAIFU"
)

var knownPlatforms = map[Platform]struct{}{
	PlatformDesktopWin: {}, PlatformDesktopMac: {}, PlatformChromeOS: {},
	PlatformAndroid: {}, PlatformAndroidSecondary: {}, PlatformIOS: {},
	PlatformIOSIpad: {}, PlatformWatchOS: {}, PlatformWearOS: {},
	PlatformVisionOS: {}, PlatformOpenChatPlus: {}, PlatformChannelGW: {},
	PlatformChannelCP: {}, PlatformClovaFriends: {}, PlatformBot: {},
	PlatformWAP: {}, PlatformWeb: {}, PlatformBizWeb: {},
	PlatformDummyPrimary: {}, PlatformSquare: {}, PlatformFirefoxOS: {},
	PlatformTizen: {}, PlatformVirtual: {}, PlatformChrono: {},
	PlatformWinMetro: {}, PlatformS40: {}, PlatformWinPhone: {},
	PlatformBlackBerry: {}, PlatformInternal: {},
}

// Known reports whether p names a recognized platform.
func (p Platform) Known() bool {
	_, ok := knownPlatforms[p]
	return ok
}

// defaultDetails is the closed per-platform defaults table. Platforms absent
// here are constructible only through Custom.
var defaultDetails = map[Platform]Details{
	PlatformDesktopWin: {
		Platform:   PlatformDesktopWin,
		AppVersion: "9.2.0.3403",
		OSName:     "WINDOWS",
		OSVersion:  "10.0.0-NT-x64",
		OSModel:    "KORONE-MY-WAIFU",
		UserDomain: DefaultUserDomain,
	},
	PlatformDesktopMac: {
		Platform:   PlatformDesktopMac,
		AppVersion: "9.2.0.3402",
		OSName:     "MAC",
		OSVersion:  DefaultOSVersion,
		OSModel:    "KORONE-MY-WAIFU",
		UserDomain: DefaultUserDomain,
	},
	PlatformChromeOS: {
		Platform:   PlatformChromeOS,
		AppVersion: "3.0.3",
		OSName:     "Chrome_OS",
		OSVersion:  "1",
		OSModel:    "Chrome",
		UserDomain: "CHROMEOS",
	},
	PlatformAndroid: {
		Platform:   PlatformAndroid,
		AppVersion: "13.4.1",
		OSName:     "Android OS",
		OSVersion:  DefaultOSVersion,
		OSModel:    DefaultOSModel,
		UserDomain: DefaultUserDomain,
	},
	PlatformAndroidSecondary: {
		Platform:   PlatformAndroidSecondary,
		AppVersion: "13.4.1",
		OSName:     "Android OS",
		OSVersion:  DefaultOSVersion,
		OSModel:    DefaultOSModel,
		UserDomain: DefaultUserDomain,
		Secondary:  true,
	},
	PlatformIOS: {
		Platform:   PlatformIOS,
		AppVersion: "13.3.0",
		OSName:     "iOS",
		OSVersion:  DefaultOSVersion,
		OSModel:    DefaultOSModel,
		UserDomain: DefaultUserDomain,
	},
	PlatformIOSIpad: {
		Platform:   PlatformIOSIpad,
		AppVersion: "13.3.0",
		OSName:     "iOS",
		OSVersion:  DefaultOSVersion,
		OSModel:    "iPad5,1",
		UserDomain: DefaultUserDomain,
	},
	PlatformWatchOS: {
		Platform:   PlatformWatchOS,
		AppVersion: "13.3.0",
		OSName:     "Watch OS",
		OSVersion:  DefaultOSVersion,
		OSModel:    DefaultOSModel,
		UserDomain: DefaultUserDomain,
	},
	PlatformWearOS: {
		Platform:   PlatformWearOS,
		AppVersion: "13.4.1",
		OSName:     "Wear OS",
		OSVersion:  DefaultOSVersion,
		OSModel:    DefaultOSModel,
		UserDomain: DefaultUserDomain,
	},
	PlatformVisionOS: {
		Platform:   PlatformVisionOS,
		AppVersion: "1.0.0",
		OSName:     "visionOS",
		OSVersion:  DefaultOSVersion,
		OSModel:    "RealityDevice14,1",
		UserDomain: DefaultUserDomain,
	},
}

var v3TokenPlatforms = map[Platform]struct{}{
	PlatformDesktopWin: {},
	PlatformDesktopMac: {},
	PlatformChromeOS:   {},
}

var syncPlatforms = map[Platform]struct{}{
	PlatformIOS: {}, PlatformIOSIpad: {}, PlatformAndroid: {},
	PlatformChromeOS: {}, PlatformDesktopWin: {}, PlatformDesktopMac: {},
}

// SupportsV3Token reports whether p participates in the v3 token scheme.
func SupportsV3Token(p Platform) bool {
	_, ok := v3TokenPlatforms[p]
	return ok
}

// SupportsSync reports whether p supports server-driven sync.
func SupportsSync(p Platform) bool {
	_, ok := syncPlatforms[p]
	return ok
}

// DefaultPlatforms returns the platforms that have a defaults table entry.
func DefaultPlatforms() []Platform {
	out := make([]Platform, 0, len(defaultDetails))
	for p := range defaultDetails {
		out = append(out, p)
	}
	return out
}

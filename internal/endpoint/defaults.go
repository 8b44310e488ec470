package endpoint

// PathNormal is the default request path when a call does not pick one.
const PathNormal = "/S3"

var defaultCatalog = []Descriptor{
	{Path: "/enc", Category: CategoryEncryption, Description: "Encryption endpoint"},

	{Path: "/ACS4", Category: CategoryAuthentication, Description: "Age check endpoint"},
	{Path: "/RS3", Category: CategoryAuthentication, Description: "Auth endpoint"},
	{Path: "/RS4", Category: CategoryAuthentication, Description: "Auth endpoint V4"},
	{Path: "/ACCT/authfactor/eap/v1", Category: CategoryAuthentication, Description: "EAP auth endpoint"},
	{Path: "/acct/lgn/sq/v1", Category: CategoryAuthentication, Description: "Secondary QR login"},
	{Path: "/acct/lgn/secpwless/v1", Category: CategoryAuthentication, Description: "Secondary passwordless login"},
	{Path: "/acct/lp/lgn/secpwless/v1", Category: CategoryAuthentication, Description: "Secondary passwordless login permit"},
	{Path: "/acct/authfactor/second/pincode/v1", Category: CategoryAuthentication, Description: "Secondary auth factor PIN"},
	{Path: "/acct/authfactor/pwless/manage/v1", Category: CategoryAuthentication, Description: "Passwordless credential management"},
	{Path: "/ACCT/authfactor/pwless/v1", Category: CategoryAuthentication, Description: "Passwordless primary registration"},
	{Path: "/LF1", Category: CategoryAuthentication, Description: "Secondary device login verify PIN with E2EE"},
	{Path: "/Q", Category: CategoryAuthentication, Description: "Secondary device login verify PIN"},

	{Path: "/S3", Category: CategoryMessaging, Description: "Normal messaging endpoint"},
	{Path: "/C5", Category: CategoryMessaging, Description: "Compact message endpoint"},
	{Path: "/CA5", Category: CategoryMessaging, Description: "Compact plain message endpoint"},
	{Path: "/ECA5", Category: CategoryE2EE, Description: "Compact E2EE message endpoint"},
	{Path: "/CP4", Category: CategoryMessaging, Description: "Cancel long polling endpoint"},
	{Path: "/R2", Category: CategoryUtility, Description: "Connection info endpoint"},

	{Path: "/CH3", Category: CategoryChannel, Description: "Channel endpoint"},
	{Path: "/CH4", Category: CategoryChannel, Description: "Channel endpoint V4"},
	{Path: "/PS4", Category: CategoryChannel, Description: "Personal endpoint V4"},
	{Path: "/CAPP1", Category: CategoryChannel, Description: "Chat app endpoint"},

	{Path: "/COIN4", Category: CategoryCommerce, Description: "Coin endpoint"},
	{Path: "/SHOP3", Category: CategoryCommerce, Description: "Shop endpoint"},
	{Path: "/SHOPA", Category: CategoryCommerce, Description: "Shop auth endpoint"},
	{Path: "/TSHOP4", Category: CategoryCommerce, Description: "Unified shop endpoint"},
	{Path: "/WALLET4", Category: CategoryCommerce, Description: "Wallet endpoint"},

	{Path: "/SQ1", Category: CategorySquare, Description: "Square endpoint"},
	{Path: "/BP1", Category: CategorySquare, Description: "Square bot endpoint"},
	{Path: "/BUDDY3", Category: CategorySocial, Description: "Buddy endpoint"},
	{Path: "/SNS4", Category: CategorySocial, Description: "SNS adapter endpoint", Deprecated: true},
	{Path: "/SA4", Category: CategorySocial, Description: "SNS adapter endpoint"},
	{Path: "/api/v4p/sa", Category: CategorySocial, Description: "SNS adapter registration"},

	{Path: "/V3", Category: CategoryCall, Description: "Call endpoint"},
	{Path: "/EXT/groupcall/youtube-api", Category: CategoryExternal, Description: "VoIP group call YouTube"},

	{Path: "/BEACON4", Category: CategoryUtility, Description: "Beacon endpoint"},
	{Path: "/IOT1", Category: CategoryUtility, Description: "IoT endpoint"},
	{Path: "/LIFF1", Category: CategoryUtility, Description: "LIFF endpoint"},
	{Path: "/F4", Category: CategoryNotification, Description: "Notify sleep endpoint"},

	{Path: "/EIS4", Category: CategoryExternal, Description: "External interlock endpoint"},

	{Path: "/EKBS4", Category: CategoryE2EE, Description: "E2EE key backup endpoint"},
}

// NewDefault returns a registry pre-populated with the full catalog.
func NewDefault(domains *Domains) *Registry {
	r := NewRegistry(domains)
	for _, d := range defaultCatalog {
		r.Register(d)
	}
	return r
}

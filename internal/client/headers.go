package client

import "github.com/neko3da4/CHRFORGE/internal/identity"

// DefaultLanguage is the x-lal value used when no language is configured.
const DefaultLanguage = "zh-Hant_TW"

const contentTypeThrift = "application/x-thrift"

// Header names the pipeline treats specially.
const (
	HeaderAuthToken  = "x-line-access"
	HeaderNextAccess = "x-line-next-access"
)

// ComposeHeaders builds the fixed header set for one request. The credential
// header is present only when token is non-empty. The map is fresh on every
// call and safe for the caller to extend.
func ComposeHeaders(host, method string, d identity.Details, language, token string) map[string]string {
	if language == "" {
		language = DefaultLanguage
	}
	headers := map[string]string{
		"Host":               host,
		"accept":             contentTypeThrift,
		"user-agent":         d.UserAgent(),
		"x-line-application": d.AppIdentity(),
		"content-type":       contentTypeThrift,
		"x-lal":              language,
		"x-lpv":              "1",
		"x-lhm":              method,
		"accept-encoding":    "gzip",
	}
	if token != "" {
		headers[HeaderAuthToken] = token
	}
	return headers
}

package extensions

import "fmt"

// Kind identifies one of the supported edge extensions.
type Kind string

const (
	KindModifyResponseHeader         Kind = "modify-response-header"
	KindAntiHotlinking               Kind = "anti-hotlinking"
	KindSecurityHeaders              Kind = "security-headers"
	KindMultipleOriginIPRetry        Kind = "multiple-origin-ip-retry"
	KindNormalizeQueryString         Kind = "normalize-query-string"
	KindDefaultDirIndex              Kind = "default-dir-index"
	KindCustomErrorPage              Kind = "custom-error-page"
	KindAccessOriginByGeolocation    Kind = "access-origin-by-geolocation"
	KindRedirectByGeolocation        Kind = "redirect-by-geolocation"
	KindSimpleEdge                   Kind = "simple-edge"
	KindOAuth2AuthorizationCodeGrant Kind = "oauth2-authorization-code-grant"
	KindGlobalDataIngestion          Kind = "global-data-ingestion"
	KindCustom                       Kind = "custom"
)

// allKinds is the closed set; ParseKind and the metadata table key off it.
var allKinds = []Kind{
	KindModifyResponseHeader,
	KindAntiHotlinking,
	KindSecurityHeaders,
	KindMultipleOriginIPRetry,
	KindNormalizeQueryString,
	KindDefaultDirIndex,
	KindCustomErrorPage,
	KindAccessOriginByGeolocation,
	KindRedirectByGeolocation,
	KindSimpleEdge,
	KindOAuth2AuthorizationCodeGrant,
	KindGlobalDataIngestion,
	KindCustom,
}

// Kinds returns a copy of the supported kind set.
func Kinds() []Kind {
	out := make([]Kind, len(allKinds))
	copy(out, allKinds)
	return out
}

// ParseKind reads an extension kind from manifests and CDK context.
func ParseKind(s string) (Kind, error) {
	for _, k := range allKinds {
		if Kind(s) == k {
			return k, nil
		}
	}
	return "", fmt.Errorf("unknown extension kind %q", s)
}

func (k Kind) String() string {
	return string(k)
}

package extensionsfile

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/edgekit/cloudfront-extensions/infra/lib/extensions"
)

// Load reads and validates an extension manifest.
func Load(path string) (Manifest, error) {
	var m Manifest
	if _, err := toml.DecodeFile(path, &m); err != nil {
		return Manifest{}, fmt.Errorf("decoding extension manifest %q: %w", path, err)
	}
	if m.OriginDomainName == "" {
		return Manifest{}, fmt.Errorf("extension manifest %q: origin_domain_name is required", path)
	}
	if len(m.Extensions) == 0 {
		return Manifest{}, fmt.Errorf("extension manifest %q: at least one [[extension]] entry is required", path)
	}
	for i, e := range m.Extensions {
		if _, err := extensions.ParseKind(e.Kind); err != nil {
			return Manifest{}, fmt.Errorf("extension manifest %q entry %d: %w", path, i, err)
		}
	}
	return m, nil
}

// splitList splits a comma-separated parameter value, trimming whitespace and
// dropping empty items.
func splitList(s string) []string {
	var out []string
	for _, item := range strings.Split(s, ",") {
		if trimmed := strings.TrimSpace(item); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

// splitTable parses "US=a.com,CN=b.cn" into a map.
func splitTable(s string) (map[string]string, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	table := make(map[string]string)
	for _, pair := range splitList(s) {
		key, value, found := strings.Cut(pair, "=")
		if !found || key == "" || value == "" {
			return nil, fmt.Errorf("malformed table entry %q, want KEY=value", pair)
		}
		table[strings.TrimSpace(key)] = strings.TrimSpace(value)
	}
	return table, nil
}

// ToProperties maps a manifest entry onto resolver properties. OAuth client
// credentials are intentionally absent here; the stack injects them from the
// environment before resolving.
func (e Entry) ToProperties() (extensions.Kind, extensions.Properties, error) {
	kind, err := extensions.ParseKind(e.Kind)
	if err != nil {
		return "", extensions.Properties{}, err
	}

	props := extensions.Properties{}
	switch kind {
	case extensions.KindAntiHotlinking:
		props.RefererAllowList = splitList(e.Parameters["referers"])
	case extensions.KindModifyResponseHeader:
		props.HeaderName = e.Parameters["header_name"]
		props.HeaderValue = e.Parameters["header_value"]
	case extensions.KindMultipleOriginIPRetry:
		props.OriginIPList = splitList(e.Parameters["origin_ips"])
		props.OriginProtocol = e.Parameters["origin_protocol"]
	case extensions.KindDefaultDirIndex:
		props.IndexDocument = e.Parameters["index_document"]
	case extensions.KindCustomErrorPage:
		props.ErrorPageURI = e.Parameters["error_page_uri"]
	case extensions.KindAccessOriginByGeolocation, extensions.KindRedirectByGeolocation:
		table, err := splitTable(e.Parameters["country_table"])
		if err != nil {
			return "", extensions.Properties{}, fmt.Errorf("%s: %w", kind, err)
		}
		props.CountryTable = table
	case extensions.KindOAuth2AuthorizationCodeGrant:
		props.OAuth = &extensions.OAuthProperties{
			AuthorizeURL: e.Parameters["authorize_url"],
			TokenURL:     e.Parameters["token_url"],
			CallbackPath: e.Parameters["callback_path"],
		}
	case extensions.KindGlobalDataIngestion:
		props.FirehoseStreamName = e.Parameters["firehose_stream_name"]
	}

	return kind, props, nil
}

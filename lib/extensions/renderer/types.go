package renderer

// TemplateName represents a known template filename.
type TemplateName string

// Constants for known template filenames. The extension metadata table refers
// to these by value; keep them in sync.
const (
	TplSimpleEdge        TemplateName = "simple_edge.js.tmpl"
	TplGeoOriginSelector TemplateName = "geo_origin_selector.js.tmpl"
	TplGeoRedirector     TemplateName = "geo_redirector.js.tmpl"
	TplOAuthCodeGrant    TemplateName = "oauth2_code_grant.js.tmpl"
	TplIngestForwarder   TemplateName = "ingest_forwarder.js.tmpl"
)

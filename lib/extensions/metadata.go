package extensions

// Parameter keys substituted into serverless application parameter sets or
// rendered function code.
const (
	ParamRefererAllowList   = "RefererAllowList"
	ParamCountryTable       = "CountryTable"
	ParamOriginIPList       = "OriginIPList"
	ParamOriginProtocol     = "OriginProtocol"
	ParamIndexDocument      = "IndexDocument"
	ParamErrorPageURI       = "ErrorPageUri"
	ParamHeaderName         = "HeaderName"
	ParamHeaderValue        = "HeaderValue"
	ParamOAuthClientID      = "OAuthClientId"
	ParamOAuthClientSecret  = "OAuthClientSecret"
	ParamOAuthAuthorizeURL  = "OAuthAuthorizeUrl"
	ParamOAuthTokenURL      = "OAuthTokenUrl"
	ParamOAuthCallbackPath  = "OAuthCallbackPath"
	ParamFirehoseStreamName = "FirehoseStreamName"
)

// EnvFirehoseStreamName is consumed by the regional ingest worker, not by the
// edge function itself (Lambda@Edge does not support environment variables).
const EnvFirehoseStreamName = "FIREHOSE_STREAM_NAME"

// ManagedPolicyFirehoseAccess is attached to the execution role of the data
// ingestion extension.
const ManagedPolicyFirehoseAccess = "AmazonKinesisFirehoseFullAccess"

// Pre-published serverless applications live under one SAR publisher.
const sarApplicationPrefix = "arn:aws:serverlessrepo:us-east-1:272389752592:applications"

// Embedded code templates for function-from-template kinds. The renderer
// subpackage owns the template files; these names must match.
const (
	tplSimpleEdge        = "simple_edge.js.tmpl"
	tplGeoOriginSelector = "geo_origin_selector.js.tmpl"
	tplGeoRedirector     = "geo_redirector.js.tmpl"
	tplOAuthCodeGrant    = "oauth2_code_grant.js.tmpl"
	tplIngestForwarder   = "ingest_forwarder.js.tmpl"
)

const defaultEdgeRuntime = "nodejs18.x"

type kindMetadata struct {
	strategy        Strategy
	eventType       EventType
	runtime         string
	handler         string
	codeTemplate    string
	applicationID   string
	semanticVersion string
	includeBody     bool
	managedPolicies []string
}

// kindTable fixes the lifecycle-event binding and payload identity per kind.
// The binding is a design rule, not a runtime decision: request-rewriting
// extensions run before the cache lookup, response decorators run on
// origin-response, and authentication/hotlink checks run on viewer-request.
// Only KindCustom leaves these fields open to the caller.
var kindTable = map[Kind]kindMetadata{
	KindModifyResponseHeader: {
		strategy:        StrategyServerlessApp,
		eventType:       EventOriginResponse,
		applicationID:   sarApplicationPrefix + "/modify-response-header",
		semanticVersion: "1.0.3",
	},
	KindAntiHotlinking: {
		strategy:        StrategyServerlessApp,
		eventType:       EventViewerRequest,
		applicationID:   sarApplicationPrefix + "/anti-hotlinking",
		semanticVersion: "1.2.0",
	},
	KindSecurityHeaders: {
		strategy:        StrategyServerlessApp,
		eventType:       EventOriginResponse,
		applicationID:   sarApplicationPrefix + "/add-security-headers",
		semanticVersion: "1.0.1",
	},
	KindMultipleOriginIPRetry: {
		strategy:        StrategyServerlessApp,
		eventType:       EventOriginRequest,
		applicationID:   sarApplicationPrefix + "/multiple-origin-ip-retry",
		semanticVersion: "1.0.2",
	},
	KindNormalizeQueryString: {
		strategy:        StrategyServerlessApp,
		eventType:       EventViewerRequest,
		applicationID:   sarApplicationPrefix + "/normalize-query-string",
		semanticVersion: "1.0.0",
	},
	KindDefaultDirIndex: {
		strategy:        StrategyServerlessApp,
		eventType:       EventOriginRequest,
		applicationID:   sarApplicationPrefix + "/default-dir-index",
		semanticVersion: "1.0.4",
	},
	KindCustomErrorPage: {
		strategy:        StrategyServerlessApp,
		eventType:       EventOriginResponse,
		applicationID:   sarApplicationPrefix + "/custom-error-page",
		semanticVersion: "1.0.0",
	},
	KindAccessOriginByGeolocation: {
		strategy:     StrategyFunctionFromTemplate,
		eventType:    EventOriginRequest,
		runtime:      defaultEdgeRuntime,
		handler:      "index.handler",
		codeTemplate: tplGeoOriginSelector,
	},
	KindRedirectByGeolocation: {
		strategy:     StrategyFunctionFromTemplate,
		eventType:    EventViewerRequest,
		runtime:      defaultEdgeRuntime,
		handler:      "index.handler",
		codeTemplate: tplGeoRedirector,
	},
	KindSimpleEdge: {
		strategy:     StrategyFunctionFromTemplate,
		eventType:    EventViewerRequest,
		runtime:      defaultEdgeRuntime,
		handler:      "index.handler",
		codeTemplate: tplSimpleEdge,
	},
	KindOAuth2AuthorizationCodeGrant: {
		strategy:     StrategyFunctionFromTemplate,
		eventType:    EventViewerRequest,
		runtime:      defaultEdgeRuntime,
		handler:      "index.handler",
		codeTemplate: tplOAuthCodeGrant,
	},
	KindGlobalDataIngestion: {
		strategy:        StrategyFunctionFromTemplate,
		eventType:       EventViewerRequest,
		runtime:         defaultEdgeRuntime,
		handler:         "index.handler",
		codeTemplate:    tplIngestForwarder,
		includeBody:     true,
		managedPolicies: []string{ManagedPolicyFirehoseAccess},
	},
	// KindCustom has no fixed metadata; everything comes from the caller.
	KindCustom: {
		strategy: StrategyFunctionFromTemplate,
	},
}

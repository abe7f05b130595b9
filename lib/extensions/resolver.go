package extensions

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/samber/lo"
	"go.uber.org/zap"
)

// OAuthProperties carry the client settings for the authorization-code-grant
// extension. Secrets should come from the environment, not from source; see
// config.OAuthEnvironmentVariables.
type OAuthProperties struct {
	ClientID     string `validate:"required"`
	ClientSecret string `validate:"required"`
	AuthorizeURL string `validate:"required,url"`
	TokenURL     string `validate:"required,url"`
	CallbackPath string `validate:"required,startswith=/"`
}

// CustomProperties configure KindCustom, the only kind whose event binding and
// payload identity are chosen by the caller. Choosing a compatible event type
// is the caller's responsibility; Resolve still rejects body access on
// response-stage events.
type CustomProperties struct {
	EventType            EventType
	Runtime              string
	Handler              string
	CodeTemplate         string
	IncludeBody          bool
	Parameters           map[string]string
	EnvironmentVariables map[string]string
}

// Properties is the caller-supplied bag consumed by Resolve. Which fields are
// required depends on the kind; unused fields are ignored.
type Properties struct {
	RefererAllowList   []string
	CountryTable       map[string]string
	OriginIPList       []string `validate:"omitempty,dive,ip"`
	OriginProtocol     string   `validate:"omitempty,oneof=http https match-viewer"`
	IndexDocument      string
	ErrorPageURI       string
	HeaderName         string
	HeaderValue        string
	OAuth              *OAuthProperties
	FirehoseStreamName string
	Custom             *CustomProperties

	// Logger receives resolution diagnostics; nop when nil.
	Logger *zap.Logger `validate:"-"`
}

var structValidator = validator.New()

// Resolve maps a (kind, properties) pair to a fully-populated Descriptor,
// validating the combination before returning it. It is a pure function over
// its inputs: identical inputs yield field-wise equal descriptors, and no
// cloud resource is touched here.
func Resolve(kind Kind, props Properties) (Descriptor, error) {
	logger := props.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	logger = logger.Named("extensions").With(zap.String("kind", kind.String()))

	meta, ok := kindTable[kind]
	if !ok {
		return Descriptor{}, fmt.Errorf("%w: unknown kind %q", ErrInvalidConfiguration, kind)
	}
	if err := structValidator.Struct(props); err != nil {
		return Descriptor{}, fmt.Errorf("%w: %v", ErrInvalidConfiguration, err)
	}

	d := Descriptor{
		Kind:            kind,
		Strategy:        meta.strategy,
		EventType:       meta.eventType,
		Runtime:         meta.runtime,
		Handler:         meta.handler,
		CodeTemplate:    meta.codeTemplate,
		ApplicationID:   meta.applicationID,
		SemanticVersion: meta.semanticVersion,
		IncludeBody:     meta.includeBody,
		Parameters:      map[string]string{},
	}
	if len(meta.managedPolicies) > 0 {
		d.RequiredManagedPolicies = append([]string(nil), meta.managedPolicies...)
	}

	switch kind {
	case KindModifyResponseHeader:
		if props.HeaderName == "" || props.HeaderValue == "" {
			return Descriptor{}, fmt.Errorf("%w: %s requires HeaderName and HeaderValue", ErrInvalidConfiguration, kind)
		}
		d.Parameters[ParamHeaderName] = props.HeaderName
		d.Parameters[ParamHeaderValue] = props.HeaderValue

	case KindAntiHotlinking:
		patterns := lo.Compact(props.RefererAllowList)
		if len(patterns) == 0 {
			return Descriptor{}, fmt.Errorf("%w: %s requires at least one referer pattern", ErrInvalidConfiguration, kind)
		}
		d.Parameters[ParamRefererAllowList] = strings.Join(patterns, ",")

	case KindSecurityHeaders, KindNormalizeQueryString, KindSimpleEdge:
		// no required properties

	case KindMultipleOriginIPRetry:
		if len(props.OriginIPList) == 0 {
			return Descriptor{}, fmt.Errorf("%w: %s requires a non-empty origin IP list", ErrInvalidConfiguration, kind)
		}
		d.Parameters[ParamOriginIPList] = strings.Join(props.OriginIPList, ",")
		d.Parameters[ParamOriginProtocol] = lo.Ternary(props.OriginProtocol != "", props.OriginProtocol, "https")

	case KindDefaultDirIndex:
		d.Parameters[ParamIndexDocument] = lo.Ternary(props.IndexDocument != "", props.IndexDocument, "index.html")

	case KindCustomErrorPage:
		if props.ErrorPageURI == "" {
			return Descriptor{}, fmt.Errorf("%w: %s requires ErrorPageURI", ErrInvalidConfiguration, kind)
		}
		d.Parameters[ParamErrorPageURI] = props.ErrorPageURI

	case KindAccessOriginByGeolocation, KindRedirectByGeolocation:
		serialized, err := SerializeCountryTable(props.CountryTable)
		if err != nil {
			return Descriptor{}, fmt.Errorf("%s: %w", kind, err)
		}
		d.Parameters[ParamCountryTable] = serialized

	case KindOAuth2AuthorizationCodeGrant:
		if props.OAuth == nil {
			return Descriptor{}, fmt.Errorf("%w: %s requires OAuth client settings", ErrInvalidConfiguration, kind)
		}
		d.Parameters[ParamOAuthClientID] = props.OAuth.ClientID
		d.Parameters[ParamOAuthClientSecret] = props.OAuth.ClientSecret
		d.Parameters[ParamOAuthAuthorizeURL] = props.OAuth.AuthorizeURL
		d.Parameters[ParamOAuthTokenURL] = props.OAuth.TokenURL
		d.Parameters[ParamOAuthCallbackPath] = props.OAuth.CallbackPath

	case KindGlobalDataIngestion:
		if props.FirehoseStreamName == "" {
			return Descriptor{}, fmt.Errorf("%w: %s requires FirehoseStreamName", ErrInvalidConfiguration, kind)
		}
		d.Parameters[ParamFirehoseStreamName] = props.FirehoseStreamName
		d.EnvironmentVariables = map[string]string{EnvFirehoseStreamName: props.FirehoseStreamName}

	case KindCustom:
		c := props.Custom
		if c == nil {
			return Descriptor{}, fmt.Errorf("%w: %s requires Custom properties", ErrInvalidConfiguration, kind)
		}
		eventType, err := ParseEventType(string(c.EventType))
		if err != nil {
			return Descriptor{}, fmt.Errorf("%w: %v", ErrInvalidConfiguration, err)
		}
		if c.Runtime == "" || c.Handler == "" || c.CodeTemplate == "" {
			return Descriptor{}, fmt.Errorf("%w: %s requires Runtime, Handler, and CodeTemplate", ErrInvalidConfiguration, kind)
		}
		d.EventType = eventType
		d.Runtime = c.Runtime
		d.Handler = c.Handler
		d.CodeTemplate = c.CodeTemplate
		d.IncludeBody = c.IncludeBody
		for k, v := range c.Parameters {
			d.Parameters[k] = v
		}
		if len(c.EnvironmentVariables) > 0 {
			d.EnvironmentVariables = make(map[string]string, len(c.EnvironmentVariables))
			for k, v := range c.EnvironmentVariables {
				d.EnvironmentVariables[k] = v
			}
		}
	}

	// Single compatibility gate for every kind, built-in or custom. Kinds must
	// not duplicate this check.
	if d.IncludeBody && !d.EventType.SupportsBody() {
		return Descriptor{}, fmt.Errorf("%w: include-body requires a request-stage event, got %s", ErrUnsupportedEventTypeCombination, d.EventType)
	}

	logger.Debug("resolved extension",
		zap.String("eventType", d.EventType.String()),
		zap.String("strategy", string(d.Strategy)))
	return d, nil
}

// MustResolve is Resolve for synth-time call sites inside constructs, where a
// configuration mistake should abort the synthesis.
func MustResolve(kind Kind, props Properties) Descriptor {
	d, err := Resolve(kind, props)
	if err != nil {
		panic(err)
	}
	return d
}

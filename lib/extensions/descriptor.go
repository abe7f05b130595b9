package extensions

// Strategy selects how a resolved extension is provisioned.
type Strategy string

const (
	// StrategyServerlessApp deploys a pre-published serverless application
	// (SAR CfnApplication) parameterized with the descriptor's Parameters.
	StrategyServerlessApp Strategy = "serverless-app"
	// StrategyFunctionFromTemplate provisions a Lambda@Edge function whose
	// code is rendered from an embedded template at synth time.
	StrategyFunctionFromTemplate Strategy = "function-from-template"
)

// Descriptor is the resolved, ready-to-provision representation of one edge
// extension. It is built exactly once by Resolve and never mutated afterwards;
// the provisioning constructs only read from it.
type Descriptor struct {
	Kind      Kind
	Strategy  Strategy
	EventType EventType

	// Function payload, StrategyFunctionFromTemplate only.
	Runtime      string
	Handler      string
	CodeTemplate string

	// Serverless application identity, StrategyServerlessApp only.
	ApplicationID   string
	SemanticVersion string

	// Parameters are kind-specific key/value pairs, substituted either into
	// the serverless application's parameter set or into the rendered code.
	Parameters map[string]string

	// EnvironmentVariables are applied to supporting regional functions
	// (Lambda@Edge itself does not support environment variables).
	EnvironmentVariables map[string]string

	// IncludeBody exposes the request body to the function. Only valid on
	// request-stage event types.
	IncludeBody bool

	// RequiredManagedPolicies are AWS managed policy names attached to the
	// function's execution role.
	RequiredManagedPolicies []string
}

package edgefunction

import (
	"fmt"

	"github.com/aws/aws-cdk-go/awscdk/v2/awsiam"
	"github.com/aws/aws-cdk-go/awscdk/v2/awslambda"
	"github.com/aws/constructs-go/constructs/v10"
	"github.com/aws/jsii-runtime-go"

	"github.com/edgekit/cloudfront-extensions/infra/lib/cdklogger"
	"github.com/edgekit/cloudfront-extensions/infra/lib/extensions"
	"github.com/edgekit/cloudfront-extensions/infra/lib/extensions/renderer"
)

// EdgeFunctionProps holds inputs for creating an EdgeFunction.
type EdgeFunctionProps struct {
	// Descriptor must use StrategyFunctionFromTemplate.
	Descriptor extensions.Descriptor
	// Description overrides the generated function description. Optional.
	Description *string
}

// EdgeFunction provisions one Lambda@Edge function from a resolved descriptor:
// execution role, function with code rendered from the descriptor's template,
// and a published version. CloudFront associates versions, never $LATEST.
type EdgeFunction struct {
	constructs.Construct

	Function awslambda.Function
	Version  awslambda.IVersion
	Role     awsiam.Role
}

// NewEdgeFunction renders the descriptor's code template and provisions the
// function. Rendering failures and strategy mismatches are programmer errors
// and abort the synthesis.
func NewEdgeFunction(scope constructs.Construct, id string, props *EdgeFunctionProps) *EdgeFunction {
	d := props.Descriptor
	if d.Strategy != extensions.StrategyFunctionFromTemplate {
		panic(fmt.Sprintf("edgefunction: descriptor %s uses strategy %s, want %s", d.Kind, d.Strategy, extensions.StrategyFunctionFromTemplate))
	}

	construct := constructs.NewConstruct(scope, jsii.String(id))

	// Lambda@Edge cannot read environment variables, so the kind-specific
	// parameters are rendered straight into the source.
	code, err := renderer.Render(renderer.TemplateName(d.CodeTemplate), d.Parameters)
	if err != nil {
		panic(fmt.Errorf("rendering code for %s: %w", d.Kind, err))
	}

	managed := []awsiam.IManagedPolicy{
		awsiam.ManagedPolicy_FromAwsManagedPolicyName(jsii.String("service-role/AWSLambdaBasicExecutionRole")),
	}
	for _, name := range d.RequiredManagedPolicies {
		managed = append(managed, awsiam.ManagedPolicy_FromAwsManagedPolicyName(jsii.String(name)))
	}

	// Edge replicas assume the role through edgelambda.amazonaws.com as well.
	role := awsiam.NewRole(construct, jsii.String("ExecutionRole"), &awsiam.RoleProps{
		AssumedBy: awsiam.NewCompositePrincipal(
			awsiam.NewServicePrincipal(jsii.String("lambda.amazonaws.com"), nil),
			awsiam.NewServicePrincipal(jsii.String("edgelambda.amazonaws.com"), nil),
		),
		ManagedPolicies: &managed,
	})

	description := props.Description
	if description == nil {
		description = jsii.Sprintf("%s edge extension (%s)", d.Kind, d.EventType)
	}

	fn := awslambda.NewFunction(construct, jsii.String("Fn"), &awslambda.FunctionProps{
		Runtime:     awslambda.NewRuntime(jsii.String(d.Runtime), awslambda.RuntimeFamily_NODEJS, nil),
		Handler:     jsii.String(d.Handler),
		Code:        awslambda.Code_FromInline(jsii.String(code)),
		Role:        role,
		Description: description,
	})

	cdklogger.LogInfo(construct, id, "Provisioned %s edge function for %s.", d.Kind, d.EventType)

	return &EdgeFunction{
		Construct: construct,
		Function:  fn,
		Version:   fn.CurrentVersion(),
		Role:      role,
	}
}

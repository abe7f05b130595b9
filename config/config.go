package config

import (
	"fmt"

	"github.com/aws/constructs-go/constructs/v10"
	"github.com/aws/jsii-runtime-go"
)

// StackName reads the base stack name from CDK context; change it via
// 'cdk.json/context/stackName'.
func StackName(scope constructs.Construct) string {
	stackName := "EdgeExtensions"

	ctxValue := scope.Node().TryGetContext(jsii.String("stackName"))
	if v, ok := ctxValue.(string); ok {
		stackName = v
	}

	return stackName
}

// WithStackSuffix appends the context 'stackSuffix' (if any) to a base name so
// parallel deployments of the same stack do not collide.
func WithStackSuffix(scope constructs.Construct, base string) string {
	ctxValue := scope.Node().TryGetContext(jsii.String("stackSuffix"))
	if v, ok := ctxValue.(string); ok && v != "" {
		return fmt.Sprintf("%s-%s", base, v)
	}
	return base
}

// Deployment stage config
type DeploymentStageType string

const (
	DeploymentStage_DEV     DeploymentStageType = "DEV"
	DeploymentStage_STAGING DeploymentStageType = "STAGING"
	DeploymentStage_PROD    DeploymentStageType = "PROD"
)

// DeploymentStage reads the stage from CDK context; change it via
// '--context deploymentStage='.
func DeploymentStage(scope constructs.Construct) DeploymentStageType {
	deploymentStage := DeploymentStage_PROD

	ctxValue := scope.Node().TryGetContext(jsii.String("deploymentStage"))
	if v, ok := ctxValue.(string); ok {
		deploymentStage = DeploymentStageType(v)
	}

	return deploymentStage
}

// DomainName reads the optional custom domain for the distribution from CDK
// context; nil means the distribution serves only its CloudFront hostname.
func DomainName(scope constructs.Construct) *string {
	ctxValue := scope.Node().TryGetContext(jsii.String("domainName"))
	if v, ok := ctxValue.(string); ok && v != "" {
		return jsii.String(v)
	}
	return nil
}

// ManifestPath reads the extension manifest location from CDK context,
// defaulting to extensions.toml next to the app.
func ManifestPath(scope constructs.Construct) string {
	path := "extensions.toml"

	ctxValue := scope.Node().TryGetContext(jsii.String("manifestPath"))
	if v, ok := ctxValue.(string); ok && v != "" {
		path = v
	}

	return path
}

package serverlessapp

import (
	"fmt"

	"github.com/aws/aws-cdk-go/awscdk/v2"
	"github.com/aws/aws-cdk-go/awscdk/v2/awssam"
	"github.com/aws/constructs-go/constructs/v10"
	"github.com/aws/jsii-runtime-go"

	"github.com/edgekit/cloudfront-extensions/infra/lib/cdklogger"
	"github.com/edgekit/cloudfront-extensions/infra/lib/extensions"
)

// DefaultVersionOutputName is the template output under which the
// pre-published applications expose their function version ARN.
const DefaultVersionOutputName = "EdgeFunctionVersionArn"

// ServerlessAppProps holds inputs for creating a ServerlessApp.
type ServerlessAppProps struct {
	// Descriptor must use StrategyServerlessApp.
	Descriptor extensions.Descriptor
	// VersionOutputName names the application output holding the published
	// function version ARN. Defaults to DefaultVersionOutputName.
	VersionOutputName string
}

// ServerlessApp deploys a pre-published serverless application from the
// repository, parameterized with the descriptor's parameter set. The
// application itself provisions the edge function and publishes a version;
// this construct only surfaces the version ARN for distribution attachment.
type ServerlessApp struct {
	constructs.Construct

	Application awssam.CfnApplication
	// FunctionVersionArn is a deploy-time reference to the published version.
	FunctionVersionArn *string
}

func NewServerlessApp(scope constructs.Construct, id string, props *ServerlessAppProps) *ServerlessApp {
	d := props.Descriptor
	if d.Strategy != extensions.StrategyServerlessApp {
		panic(fmt.Sprintf("serverlessapp: descriptor %s uses strategy %s, want %s", d.Kind, d.Strategy, extensions.StrategyServerlessApp))
	}

	construct := constructs.NewConstruct(scope, jsii.String(id))

	params := make(map[string]*string, len(d.Parameters))
	for k, v := range d.Parameters {
		params[k] = jsii.String(v)
	}

	app := awssam.NewCfnApplication(construct, jsii.String("Application"), &awssam.CfnApplicationProps{
		Location: &awssam.CfnApplication_ApplicationLocationProperty{
			ApplicationId:   jsii.String(d.ApplicationID),
			SemanticVersion: jsii.String(d.SemanticVersion),
		},
		Parameters: &params,
	})

	outputName := props.VersionOutputName
	if outputName == "" {
		outputName = DefaultVersionOutputName
	}
	versionArn := app.GetAtt(jsii.String("Outputs."+outputName), awscdk.ResolutionTypeHint_STRING).ToString()

	cdklogger.LogInfo(construct, id, "Deployed serverless application %s@%s for %s.", d.ApplicationID, d.SemanticVersion, d.EventType)

	return &ServerlessApp{
		Construct:          construct,
		Application:        app,
		FunctionVersionArn: versionArn,
	}
}

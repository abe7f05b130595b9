package main

import (
	"os"

	"github.com/aws/aws-cdk-go/awscdk/v2"
	"github.com/aws/jsii-runtime-go"

	"github.com/edgekit/cloudfront-extensions/infra/config"
	"github.com/edgekit/cloudfront-extensions/infra/stacks"
)

func main() {
	app := awscdk.NewApp(nil)

	env := env()
	// Lambda@Edge functions and their replicas live in us-east-1 regardless of
	// where the origin runs.
	env.Region = jsii.String("us-east-1")

	stacks.EdgeExtensionsStack(
		app,
		config.WithStackSuffix(app, config.StackName(app)),
		&stacks.EdgeExtensionsStackProps{
			StackProps: awscdk.StackProps{
				Env:         env,
				Description: jsii.String("CloudFront distribution with edge extensions resolved from extensions.toml"),
			},
		},
	)

	app.Synth(nil)
}

// env determines the AWS environment (account+region) in which our stack is to
// be deployed. For more information see: https://docs.aws.amazon.com/cdk/latest/guide/environments.html
func env() *awscdk.Environment {
	account := os.Getenv("CDK_DEPLOY_ACCOUNT")
	region := os.Getenv("CDK_DEPLOY_REGION")

	if len(account) == 0 || len(region) == 0 {
		account = os.Getenv("CDK_DEFAULT_ACCOUNT")
		region = os.Getenv("CDK_DEFAULT_REGION")
	}

	return &awscdk.Environment{
		Account: jsii.String(account),
		Region:  jsii.String(region),
	}
}

package distribution_test

import (
	"testing"

	"github.com/aws/aws-cdk-go/awscdk/v2"
	"github.com/aws/aws-cdk-go/awscdk/v2/assertions"
	"github.com/aws/aws-cdk-go/awscdk/v2/awslambda"
	"github.com/aws/jsii-runtime-go"
	"github.com/stretchr/testify/assert"

	"github.com/edgekit/cloudfront-extensions/infra/lib/constructs/distribution"
	"github.com/edgekit/cloudfront-extensions/infra/lib/extensions"
)

func newTestStack() awscdk.Stack {
	app := awscdk.NewApp(nil)
	return awscdk.NewStack(app, jsii.String("TestStack"), &awscdk.StackProps{
		Env: &awscdk.Environment{
			Account: jsii.String("123456789012"),
			Region:  jsii.String("us-east-1"),
		},
	})
}

func dummyVersion(stack awscdk.Stack, id string) awslambda.IVersion {
	fn := awslambda.NewFunction(stack, jsii.String(id), &awslambda.FunctionProps{
		Runtime: awslambda.Runtime_NODEJS_18_X(),
		Handler: jsii.String("index.handler"),
		Code:    awslambda.Code_FromInline(jsii.String("exports.handler = async () => {};")),
	})
	return fn.CurrentVersion()
}

func TestExtensionDistributionSynth(t *testing.T) {
	stack := newTestStack()

	dist := distribution.NewExtensionDistribution(stack, "Edge", &distribution.ExtensionDistributionProps{
		OriginDomainName: jsii.String("origin.example.com"),
		Associations: []distribution.EdgeAssociation{
			{
				EventType:       extensions.EventViewerRequest,
				FunctionVersion: dummyVersion(stack, "ViewerFn"),
				IncludeBody:     true,
			},
			{
				EventType:          extensions.EventOriginResponse,
				FunctionVersionArn: jsii.String("arn:aws:lambda:us-east-1:123456789012:function:resp-headers:3"),
			},
		},
	})
	assert.NotNil(t, dist.Distribution)

	template := assertions.Template_FromStack(stack, nil)
	template.ResourceCountIs(jsii.String("AWS::CloudFront::Distribution"), jsii.Number(1))
	template.HasResourceProperties(jsii.String("AWS::CloudFront::Distribution"), map[string]interface{}{
		"DistributionConfig": assertions.Match_ObjectLike(&map[string]interface{}{
			"DefaultCacheBehavior": assertions.Match_ObjectLike(&map[string]interface{}{
				"LambdaFunctionAssociations": assertions.Match_ArrayWith(&[]interface{}{
					assertions.Match_ObjectLike(&map[string]interface{}{
						"EventType":   "viewer-request",
						"IncludeBody": true,
					}),
					assertions.Match_ObjectLike(&map[string]interface{}{
						"EventType":         "origin-response",
						"LambdaFunctionARN": "arn:aws:lambda:us-east-1:123456789012:function:resp-headers:3",
					}),
				}),
			}),
		}),
	})
}

func TestExtensionDistributionRejectsDuplicateEvent(t *testing.T) {
	stack := newTestStack()

	assert.Panics(t, func() {
		distribution.NewExtensionDistribution(stack, "Edge", &distribution.ExtensionDistributionProps{
			OriginDomainName: jsii.String("origin.example.com"),
			Associations: []distribution.EdgeAssociation{
				{
					EventType:          extensions.EventViewerRequest,
					FunctionVersionArn: jsii.String("arn:aws:lambda:us-east-1:123456789012:function:a:1"),
				},
				{
					EventType:          extensions.EventViewerRequest,
					FunctionVersionArn: jsii.String("arn:aws:lambda:us-east-1:123456789012:function:b:1"),
				},
			},
		})
	})
}

func TestExtensionDistributionRequiresOrigin(t *testing.T) {
	stack := newTestStack()

	assert.Panics(t, func() {
		distribution.NewExtensionDistribution(stack, "Edge", &distribution.ExtensionDistributionProps{})
	})
}

func TestExtensionDistributionRequiresFunctionReference(t *testing.T) {
	stack := newTestStack()

	assert.Panics(t, func() {
		distribution.NewExtensionDistribution(stack, "Edge", &distribution.ExtensionDistributionProps{
			OriginDomainName: jsii.String("origin.example.com"),
			Associations: []distribution.EdgeAssociation{
				{EventType: extensions.EventViewerRequest},
			},
		})
	})
}

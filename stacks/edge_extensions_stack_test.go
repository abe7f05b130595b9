package stacks_test

import (
	"testing"

	"github.com/aws/aws-cdk-go/awscdk/v2"
	"github.com/aws/aws-cdk-go/awscdk/v2/assertions"
	"github.com/aws/jsii-runtime-go"
	"github.com/stretchr/testify/assert"

	"github.com/edgekit/cloudfront-extensions/infra/stacks"
	"github.com/edgekit/cloudfront-extensions/infra/tests/testutil"
)

const testManifest = `
origin_domain_name = "origin.example.com"

[[extension]]
kind = "security-headers"

[[extension]]
kind = "access-origin-by-geolocation"
[extension.parameters]
country_table = "US=us.example.com, CN=cn.example.cn"

[[extension]]
kind = "global-data-ingestion"
[extension.parameters]
firehose_stream_name = "stream-1"
`

func TestEdgeExtensionsStackSynth(t *testing.T) {
	app := testutil.BundlingSkippedApp()

	stack := stacks.EdgeExtensionsStack(app, "TestStack", &stacks.EdgeExtensionsStackProps{
		StackProps: awscdk.StackProps{
			Env: &awscdk.Environment{
				Account: jsii.String("123456789012"),
				Region:  jsii.String("us-east-1"),
			},
		},
		ManifestPath:      testutil.TmpFile(t, []byte(testManifest)),
		IngestWorkerEntry: jsii.String(testutil.DummyGoEntry(t)),
	})

	template := assertions.Template_FromStack(stack, nil)

	// One SAR-provisioned extension, two template-rendered edge functions,
	// one Go transformer behind the delivery stream.
	template.ResourceCountIs(jsii.String("AWS::Serverless::Application"), jsii.Number(1))
	template.ResourceCountIs(jsii.String("AWS::Lambda::Function"), jsii.Number(3))
	template.ResourceCountIs(jsii.String("AWS::Lambda::Version"), jsii.Number(2))
	template.ResourceCountIs(jsii.String("AWS::KinesisFirehose::DeliveryStream"), jsii.Number(1))
	template.ResourceCountIs(jsii.String("AWS::CloudFront::Distribution"), jsii.Number(1))

	// All three lifecycle events are wired on the default behavior.
	template.HasResourceProperties(jsii.String("AWS::CloudFront::Distribution"), map[string]interface{}{
		"DistributionConfig": assertions.Match_ObjectLike(&map[string]interface{}{
			"DefaultCacheBehavior": assertions.Match_ObjectLike(&map[string]interface{}{
				"LambdaFunctionAssociations": assertions.Match_ArrayWith(&[]interface{}{
					assertions.Match_ObjectLike(&map[string]interface{}{
						"EventType":   "viewer-request",
						"IncludeBody": true,
					}),
					assertions.Match_ObjectLike(&map[string]interface{}{
						"EventType": "origin-request",
					}),
					assertions.Match_ObjectLike(&map[string]interface{}{
						"EventType": "origin-response",
					}),
				}),
			}),
		}),
	})
}

func TestEdgeExtensionsStackRejectsMissingManifest(t *testing.T) {
	app := testutil.BundlingSkippedApp()

	assert.Panics(t, func() {
		stacks.EdgeExtensionsStack(app, "TestStack", &stacks.EdgeExtensionsStackProps{
			ManifestPath: "does/not/exist.toml",
		})
	})
}

package ingestworker_test

import (
	"testing"

	"github.com/aws/aws-cdk-go/awscdk/v2"
	"github.com/aws/aws-cdk-go/awscdk/v2/assertions"
	"github.com/aws/jsii-runtime-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edgekit/cloudfront-extensions/infra/lib/constructs/ingestworker"
	"github.com/edgekit/cloudfront-extensions/infra/lib/extensions"
	"github.com/edgekit/cloudfront-extensions/infra/tests/testutil"
)

func TestIngestWorkerSynth(t *testing.T) {
	app := testutil.BundlingSkippedApp()
	stack := awscdk.NewStack(app, jsii.String("TestStack"), &awscdk.StackProps{
		Env: &awscdk.Environment{
			Account: jsii.String("123456789012"),
			Region:  jsii.String("us-east-1"),
		},
	})

	d := extensions.MustResolve(extensions.KindGlobalDataIngestion, extensions.Properties{
		FirehoseStreamName: "stream-1",
	})
	worker := ingestworker.NewIngestWorker(stack, "IngestWorker", &ingestworker.IngestWorkerProps{
		Descriptor: d,
		Entry:      jsii.String(testutil.DummyGoEntry(t)),
	})
	require.NotNil(t, worker.DeliveryStream)

	template := assertions.Template_FromStack(stack, nil)
	template.ResourceCountIs(jsii.String("AWS::KinesisFirehose::DeliveryStream"), jsii.Number(1))
	template.ResourceCountIs(jsii.String("AWS::S3::Bucket"), jsii.Number(2))
	template.ResourceCountIs(jsii.String("AWS::Lambda::Function"), jsii.Number(1))

	template.HasResourceProperties(jsii.String("AWS::KinesisFirehose::DeliveryStream"), map[string]interface{}{
		"DeliveryStreamName": "stream-1",
		"DeliveryStreamType": "DirectPut",
		"ExtendedS3DestinationConfiguration": assertions.Match_ObjectLike(&map[string]interface{}{
			"ProcessingConfiguration": assertions.Match_ObjectLike(&map[string]interface{}{
				"Enabled": true,
			}),
		}),
	})

	// The transformer sees both the stream name and the dead-letter bucket.
	template.HasResourceProperties(jsii.String("AWS::Lambda::Function"), map[string]interface{}{
		"Environment": assertions.Match_ObjectLike(&map[string]interface{}{
			"Variables": assertions.Match_ObjectLike(&map[string]interface{}{
				extensions.EnvFirehoseStreamName: "stream-1",
			}),
		}),
	})
}

func TestIngestWorkerRejectsOtherKinds(t *testing.T) {
	app := testutil.BundlingSkippedApp()
	stack := awscdk.NewStack(app, jsii.String("TestStack"), nil)

	d := extensions.MustResolve(extensions.KindSimpleEdge, extensions.Properties{})
	assert.Panics(t, func() {
		ingestworker.NewIngestWorker(stack, "IngestWorker", &ingestworker.IngestWorkerProps{Descriptor: d})
	})
}

package ingestworker

import (
	"fmt"

	"github.com/aws/aws-cdk-go/awscdk/v2"
	"github.com/aws/aws-cdk-go/awscdk/v2/awsiam"
	"github.com/aws/aws-cdk-go/awscdk/v2/awskinesisfirehose"
	"github.com/aws/aws-cdk-go/awscdk/v2/awss3"
	"github.com/aws/aws-cdk-go/awscdklambdagoalpha/v2"
	"github.com/aws/constructs-go/constructs/v10"
	"github.com/aws/jsii-runtime-go"

	"github.com/edgekit/cloudfront-extensions/infra/lib/cdklogger"
	"github.com/edgekit/cloudfront-extensions/infra/lib/extensions"
)

// EnvDeadLetterBucket is read by the worker handler; records that fail to
// decode are parked there instead of being silently lost.
const EnvDeadLetterBucket = "DEAD_LETTER_BUCKET"

// IngestWorkerProps holds inputs for creating an IngestWorker.
type IngestWorkerProps struct {
	// Descriptor must resolve KindGlobalDataIngestion.
	Descriptor extensions.Descriptor
	// Entry is the path to the worker's main package.
	// Defaults to "lambdas/ingestworker".
	Entry *string
}

// IngestWorker provisions the regional half of the data ingestion extension:
// the Firehose delivery stream the edge function writes to, an S3 landing
// bucket, and a Go transformation lambda that normalizes records before
// delivery and parks malformed ones in a dead-letter bucket.
type IngestWorker struct {
	constructs.Construct

	Transformer      awscdklambdagoalpha.GoFunction
	DeliveryStream   awskinesisfirehose.CfnDeliveryStream
	DataBucket       awss3.Bucket
	DeadLetterBucket awss3.Bucket
}

func NewIngestWorker(scope constructs.Construct, id string, props *IngestWorkerProps) *IngestWorker {
	d := props.Descriptor
	if d.Kind != extensions.KindGlobalDataIngestion {
		panic(fmt.Sprintf("ingestworker: descriptor kind is %s, want %s", d.Kind, extensions.KindGlobalDataIngestion))
	}
	streamName := d.Parameters[extensions.ParamFirehoseStreamName]

	construct := constructs.NewConstruct(scope, jsii.String(id))

	dataBucket := awss3.NewBucket(construct, jsii.String("DataBucket"), &awss3.BucketProps{
		BlockPublicAccess: awss3.BlockPublicAccess_BLOCK_ALL(),
		Encryption:        awss3.BucketEncryption_S3_MANAGED,
	})
	deadLetterBucket := awss3.NewBucket(construct, jsii.String("DeadLetterBucket"), &awss3.BucketProps{
		BlockPublicAccess: awss3.BlockPublicAccess_BLOCK_ALL(),
		Encryption:        awss3.BucketEncryption_S3_MANAGED,
	})

	env := make(map[string]*string, len(d.EnvironmentVariables)+1)
	for k, v := range d.EnvironmentVariables {
		env[k] = jsii.String(v)
	}
	env[EnvDeadLetterBucket] = deadLetterBucket.BucketName()

	entry := props.Entry
	if entry == nil {
		entry = jsii.String("lambdas/ingestworker")
	}

	transformer := awscdklambdagoalpha.NewGoFunction(construct, jsii.String("Transformer"), &awscdklambdagoalpha.GoFunctionProps{
		Entry:      entry,
		Timeout:    awscdk.Duration_Minutes(jsii.Number(5)),
		MemorySize: jsii.Number(256),
		Bundling: &awscdklambdagoalpha.BundlingOptions{
			GoBuildFlags: &[]*string{
				jsii.String("-ldflags \"-s -w\""),
			},
		},
		Environment: &env,
	})
	deadLetterBucket.GrantReadWrite(transformer, nil)

	// Firehose assumes its own delivery role to write the bucket and invoke
	// the transformer.
	deliveryRole := awsiam.NewRole(construct, jsii.String("DeliveryRole"), &awsiam.RoleProps{
		AssumedBy: awsiam.NewServicePrincipal(jsii.String("firehose.amazonaws.com"), nil),
	})
	dataBucket.GrantReadWrite(deliveryRole, nil)
	transformer.GrantInvoke(deliveryRole)

	stream := awskinesisfirehose.NewCfnDeliveryStream(construct, jsii.String("DeliveryStream"), &awskinesisfirehose.CfnDeliveryStreamProps{
		DeliveryStreamName: jsii.String(streamName),
		DeliveryStreamType: jsii.String("DirectPut"),
		ExtendedS3DestinationConfiguration: &awskinesisfirehose.CfnDeliveryStream_ExtendedS3DestinationConfigurationProperty{
			BucketArn: dataBucket.BucketArn(),
			RoleArn:   deliveryRole.RoleArn(),
			Prefix:    jsii.String("ingest/"),
			BufferingHints: &awskinesisfirehose.CfnDeliveryStream_BufferingHintsProperty{
				IntervalInSeconds: jsii.Number(60),
				SizeInMBs:         jsii.Number(5),
			},
			ProcessingConfiguration: &awskinesisfirehose.CfnDeliveryStream_ProcessingConfigurationProperty{
				Enabled: jsii.Bool(true),
				Processors: &[]*awskinesisfirehose.CfnDeliveryStream_ProcessorProperty{
					{
						Type: jsii.String("Lambda"),
						Parameters: &[]*awskinesisfirehose.CfnDeliveryStream_ProcessorParameterProperty{
							{
								ParameterName:  jsii.String("LambdaArn"),
								ParameterValue: transformer.FunctionArn(),
							},
						},
					},
				},
			},
		},
	})

	cdklogger.LogInfo(construct, id, "Provisioned ingestion stream %s with Go transformer.", streamName)

	return &IngestWorker{
		Construct:        construct,
		Transformer:      transformer,
		DeliveryStream:   stream,
		DataBucket:       dataBucket,
		DeadLetterBucket: deadLetterBucket,
	}
}

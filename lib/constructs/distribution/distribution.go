package distribution

import (
	"fmt"

	"github.com/aws/aws-cdk-go/awscdk/v2/awscertificatemanager"
	"github.com/aws/aws-cdk-go/awscdk/v2/awscloudfront"
	"github.com/aws/aws-cdk-go/awscdk/v2/awscloudfrontorigins"
	"github.com/aws/aws-cdk-go/awscdk/v2/awslambda"
	"github.com/aws/aws-cdk-go/awscdk/v2/awsroute53"
	"github.com/aws/aws-cdk-go/awscdk/v2/awsroute53targets"
	"github.com/aws/constructs-go/constructs/v10"
	"github.com/aws/jsii-runtime-go"

	"github.com/edgekit/cloudfront-extensions/infra/lib/cdklogger"
	"github.com/edgekit/cloudfront-extensions/infra/lib/extensions"
)

// EdgeAssociation names one function version to attach to the distribution's
// default behavior. Exactly one of FunctionVersion (in-stack functions) and
// FunctionVersionArn (serverless application outputs) must be set.
type EdgeAssociation struct {
	EventType          extensions.EventType
	FunctionVersion    awslambda.IVersion
	FunctionVersionArn *string
	IncludeBody        bool
}

// ExtensionDistributionProps holds inputs for creating an ExtensionDistribution.
type ExtensionDistributionProps struct {
	// OriginDomainName is the default origin host. Required.
	OriginDomainName *string
	// DomainNames and Certificate configure the distribution aliases. Optional.
	DomainNames *[]*string
	Certificate awscertificatemanager.ICertificate
	// HostedZone, when set, gets an alias A record per domain name pointing at
	// the distribution. Optional.
	HostedZone   awsroute53.IHostedZone
	Comment      *string
	Associations []EdgeAssociation
}

// ExtensionDistribution wraps a CloudFront distribution whose default behavior
// carries the resolved edge function associations. Caching is disabled and all
// viewer headers are forwarded so the functions see the original request,
// including cloudfront-viewer-country.
type ExtensionDistribution struct {
	constructs.Construct

	Distribution awscloudfront.Distribution
}

// toLambdaEdgeEventType maps the resolver's event types onto CloudFront's.
func toLambdaEdgeEventType(e extensions.EventType) awscloudfront.LambdaEdgeEventType {
	switch e {
	case extensions.EventViewerRequest:
		return awscloudfront.LambdaEdgeEventType_VIEWER_REQUEST
	case extensions.EventOriginRequest:
		return awscloudfront.LambdaEdgeEventType_ORIGIN_REQUEST
	case extensions.EventOriginResponse:
		return awscloudfront.LambdaEdgeEventType_ORIGIN_RESPONSE
	case extensions.EventViewerResponse:
		return awscloudfront.LambdaEdgeEventType_VIEWER_RESPONSE
	}
	panic(fmt.Sprintf("distribution: unknown event type %q", e))
}

func (a EdgeAssociation) version(scope constructs.Construct, id string) awslambda.IVersion {
	if a.FunctionVersion != nil {
		return a.FunctionVersion
	}
	if a.FunctionVersionArn != nil {
		return awslambda.Version_FromVersionArn(scope, jsii.String(id), a.FunctionVersionArn)
	}
	panic(fmt.Sprintf("distribution: association for %s carries no function version", a.EventType))
}

func NewExtensionDistribution(scope constructs.Construct, id string, props *ExtensionDistributionProps) *ExtensionDistribution {
	if props.OriginDomainName == nil {
		panic("distribution: OriginDomainName is required")
	}

	construct := constructs.NewConstruct(scope, jsii.String(id))

	// A behavior accepts at most one function per lifecycle event.
	seen := map[extensions.EventType]bool{}
	edgeLambdas := make([]*awscloudfront.EdgeLambda, 0, len(props.Associations))
	for i, assoc := range props.Associations {
		if seen[assoc.EventType] {
			panic(fmt.Sprintf("distribution: duplicate association for event %s", assoc.EventType))
		}
		seen[assoc.EventType] = true

		edgeLambdas = append(edgeLambdas, &awscloudfront.EdgeLambda{
			EventType:       toLambdaEdgeEventType(assoc.EventType),
			FunctionVersion: assoc.version(construct, fmt.Sprintf("ImportedVersion-%d", i)),
			IncludeBody:     jsii.Bool(assoc.IncludeBody),
		})
	}

	dist := awscloudfront.NewDistribution(construct, jsii.String("Distribution"), &awscloudfront.DistributionProps{
		DefaultBehavior: &awscloudfront.BehaviorOptions{
			Origin: awscloudfrontorigins.NewHttpOrigin(props.OriginDomainName, &awscloudfrontorigins.HttpOriginProps{
				ProtocolPolicy: awscloudfront.OriginProtocolPolicy_HTTPS_ONLY,
			}),
			AllowedMethods:       awscloudfront.AllowedMethods_ALLOW_ALL(),
			CachePolicy:          awscloudfront.CachePolicy_CACHING_DISABLED(),
			OriginRequestPolicy:  awscloudfront.OriginRequestPolicy_ALL_VIEWER(),
			ViewerProtocolPolicy: awscloudfront.ViewerProtocolPolicy_REDIRECT_TO_HTTPS,
			EdgeLambdas:          &edgeLambdas,
		},
		DomainNames: props.DomainNames,
		Certificate: props.Certificate,
		Comment:     props.Comment,
	})

	if props.HostedZone != nil && props.DomainNames != nil {
		for i, name := range *props.DomainNames {
			awsroute53.NewARecord(construct, jsii.Sprintf("AliasRecord-%d", i), &awsroute53.ARecordProps{
				Zone:       props.HostedZone,
				RecordName: name,
				Target:     awsroute53.RecordTarget_FromAlias(awsroute53targets.NewCloudFrontTarget(dist)),
			})
		}
	}

	cdklogger.LogInfo(construct, id, "Created distribution with %d edge association(s).", len(edgeLambdas))

	return &ExtensionDistribution{
		Construct:    construct,
		Distribution: dist,
	}
}

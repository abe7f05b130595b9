package stacks

import (
	"fmt"

	"github.com/aws/aws-cdk-go/awscdk/v2"
	"github.com/aws/constructs-go/constructs/v10"
	"github.com/aws/jsii-runtime-go"
	"github.com/samber/lo"

	"github.com/edgekit/cloudfront-extensions/infra/config"
	"github.com/edgekit/cloudfront-extensions/infra/config/extensionsfile"
	"github.com/edgekit/cloudfront-extensions/infra/lib/cdklogger"
	"github.com/edgekit/cloudfront-extensions/infra/lib/constructs/distribution"
	"github.com/edgekit/cloudfront-extensions/infra/lib/constructs/edgefunction"
	"github.com/edgekit/cloudfront-extensions/infra/lib/constructs/ingestworker"
	"github.com/edgekit/cloudfront-extensions/infra/lib/constructs/serverlessapp"
	"github.com/edgekit/cloudfront-extensions/infra/lib/domainutils"
	"github.com/edgekit/cloudfront-extensions/infra/lib/extensions"
)

type EdgeExtensionsStackProps struct {
	awscdk.StackProps
	// ManifestPath overrides the context-provided manifest location. Optional.
	ManifestPath string
	// IngestWorkerEntry overrides the ingest worker source path. Optional.
	IngestWorkerEntry *string
}

// EdgeExtensionsStack resolves every extension in the manifest, provisions it
// with the strategy its descriptor selects, and attaches all resulting
// function versions to one distribution. Lambda@Edge requires the stack to be
// deployed in us-east-1.
func EdgeExtensionsStack(scope constructs.Construct, id string, props *EdgeExtensionsStackProps) awscdk.Stack {
	stack := awscdk.NewStack(scope, jsii.String(id), &props.StackProps)

	manifestPath := props.ManifestPath
	if manifestPath == "" {
		manifestPath = config.ManifestPath(stack)
	}
	manifest, err := extensionsfile.Load(manifestPath)
	if err != nil {
		panic(err)
	}

	// Client credentials are only demanded when the manifest asks for the
	// OAuth extension.
	needsOAuth := lo.ContainsBy(manifest.Extensions, func(e extensionsfile.Entry) bool {
		return e.Kind == extensions.KindOAuth2AuthorizationCodeGrant.String()
	})
	var oauthEnv config.OAuthEnvironmentVariables
	if needsOAuth {
		oauthEnv = config.GetEnvironmentVariables[config.OAuthEnvironmentVariables](stack)
	}

	associations := make([]distribution.EdgeAssociation, 0, len(manifest.Extensions))
	var ingestDescriptor *extensions.Descriptor

	for i, entry := range manifest.Extensions {
		kind, extProps, err := entry.ToProperties()
		if err != nil {
			panic(err)
		}
		if kind == extensions.KindOAuth2AuthorizationCodeGrant && extProps.OAuth != nil {
			extProps.OAuth.ClientID = oauthEnv.ClientID
			extProps.OAuth.ClientSecret = oauthEnv.ClientSecret
		}

		descriptor := extensions.MustResolve(kind, extProps)
		constructID := fmt.Sprintf("Extension-%d-%s", i, kind)

		switch descriptor.Strategy {
		case extensions.StrategyServerlessApp:
			app := serverlessapp.NewServerlessApp(stack, constructID, &serverlessapp.ServerlessAppProps{
				Descriptor: descriptor,
			})
			associations = append(associations, distribution.EdgeAssociation{
				EventType:          descriptor.EventType,
				FunctionVersionArn: app.FunctionVersionArn,
				IncludeBody:        descriptor.IncludeBody,
			})
		case extensions.StrategyFunctionFromTemplate:
			fn := edgefunction.NewEdgeFunction(stack, constructID, &edgefunction.EdgeFunctionProps{
				Descriptor: descriptor,
			})
			associations = append(associations, distribution.EdgeAssociation{
				EventType:       descriptor.EventType,
				FunctionVersion: fn.Version,
				IncludeBody:     descriptor.IncludeBody,
			})
		}

		if descriptor.Kind == extensions.KindGlobalDataIngestion {
			d := descriptor
			ingestDescriptor = &d
		}
	}

	if ingestDescriptor != nil {
		ingestworker.NewIngestWorker(stack, "IngestWorker", &ingestworker.IngestWorkerProps{
			Descriptor: *ingestDescriptor,
			Entry:      props.IngestWorkerEntry,
		})
	}

	// The manifest value seeds a deploy-time parameter so the origin can be
	// swapped per environment without re-synthesizing.
	params := config.NewCDKParams(stack, jsii.String(manifest.OriginDomainName))

	distProps := &distribution.ExtensionDistributionProps{
		OriginDomainName: params.OriginDomainName.ValueAsString(),
		Comment:          jsii.Sprintf("Edge extensions (%s)", config.DeploymentStage(stack)),
		Associations:     associations,
	}
	// The stack is pinned to us-east-1, so the edge certificate can live here
	// instead of in a separate certificate stack.
	if domain := config.DomainName(stack); domain != nil {
		zone := domainutils.GetHostedZone(stack, domain)
		distProps.DomainNames = &[]*string{domain}
		distProps.Certificate = domainutils.GetACMCertificate(stack, domain, &zone)
		distProps.HostedZone = zone
	}
	distribution.NewExtensionDistribution(stack, "Edge", distProps)

	cdklogger.LogInfo(stack, "", "Attached %d extension(s) from %s.", len(associations), manifestPath)

	return stack
}

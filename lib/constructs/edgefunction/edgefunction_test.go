package edgefunction_test

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/aws/aws-cdk-go/awscdk/v2"
	"github.com/aws/aws-cdk-go/awscdk/v2/assertions"
	"github.com/aws/jsii-runtime-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edgekit/cloudfront-extensions/infra/lib/constructs/edgefunction"
	"github.com/edgekit/cloudfront-extensions/infra/lib/extensions"
)

func newTestStack(t *testing.T) awscdk.Stack {
	t.Helper()
	app := awscdk.NewApp(nil)
	return awscdk.NewStack(app, jsii.String("TestStack"), &awscdk.StackProps{
		Env: &awscdk.Environment{
			Account: jsii.String("123456789012"),
			Region:  jsii.String("us-east-1"),
		},
	})
}

func TestEdgeFunctionSynth(t *testing.T) {
	stack := newTestStack(t)

	d := extensions.MustResolve(extensions.KindSimpleEdge, extensions.Properties{})
	ef := edgefunction.NewEdgeFunction(stack, "Simple", &edgefunction.EdgeFunctionProps{Descriptor: d})
	require.NotNil(t, ef.Version)

	template := assertions.Template_FromStack(stack, nil)
	template.ResourceCountIs(jsii.String("AWS::Lambda::Function"), jsii.Number(1))
	// Lambda@Edge associates published versions, never $LATEST.
	template.ResourceCountIs(jsii.String("AWS::Lambda::Version"), jsii.Number(1))
	template.ResourceCountIs(jsii.String("AWS::IAM::Role"), jsii.Number(1))

	template.HasResourceProperties(jsii.String("AWS::Lambda::Function"), map[string]interface{}{
		"Handler": "index.handler",
		"Runtime": "nodejs18.x",
		"Code": assertions.Match_ObjectLike(&map[string]interface{}{
			"ZipFile": assertions.Match_StringLikeRegexp(jsii.String("x-edge-processed")),
		}),
	})
}

func TestEdgeFunctionEmbedsParameters(t *testing.T) {
	stack := newTestStack(t)

	d := extensions.MustResolve(extensions.KindAccessOriginByGeolocation, extensions.Properties{
		CountryTable: map[string]string{"US": "us-origin.example.com"},
	})
	edgefunction.NewEdgeFunction(stack, "Geo", &edgefunction.EdgeFunctionProps{Descriptor: d})

	template := assertions.Template_FromStack(stack, nil)
	template.HasResourceProperties(jsii.String("AWS::Lambda::Function"), map[string]interface{}{
		"Code": assertions.Match_ObjectLike(&map[string]interface{}{
			"ZipFile": assertions.Match_StringLikeRegexp(jsii.String("us-origin.example.com")),
		}),
	})
}

func TestEdgeFunctionAttachesManagedPolicies(t *testing.T) {
	stack := newTestStack(t)

	d := extensions.MustResolve(extensions.KindGlobalDataIngestion, extensions.Properties{
		FirehoseStreamName: "stream-1",
	})
	edgefunction.NewEdgeFunction(stack, "Ingest", &edgefunction.EdgeFunctionProps{Descriptor: d})

	template := assertions.Template_FromStack(stack, nil)
	raw, err := json.Marshal(template.ToJSON())
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(raw), extensions.ManagedPolicyFirehoseAccess))
	assert.True(t, strings.Contains(string(raw), "edgelambda.amazonaws.com"))
}

func TestEdgeFunctionRejectsServerlessAppDescriptor(t *testing.T) {
	stack := newTestStack(t)

	d := extensions.MustResolve(extensions.KindSecurityHeaders, extensions.Properties{})
	assert.Panics(t, func() {
		edgefunction.NewEdgeFunction(stack, "Wrong", &edgefunction.EdgeFunctionProps{Descriptor: d})
	})
}

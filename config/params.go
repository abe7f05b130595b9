package config

import (
	"github.com/aws/aws-cdk-go/awscdk/v2"
	"github.com/aws/constructs-go/constructs/v10"
	"github.com/aws/jsii-runtime-go"
)

// Constants for CDK parameter names
const (
	OriginDomainParamName = "originDomainName"
)

type CDKParams struct {
	OriginDomainName awscdk.CfnParameter
}

// NewCDKParams declares deploy-time parameters; the origin domain can be
// overridden per environment without re-synthesizing.
func NewCDKParams(scope constructs.Construct, defaultOriginDomain *string) CDKParams {
	originDomainName := awscdk.NewCfnParameter(scope, jsii.String(OriginDomainParamName), &awscdk.CfnParameterProps{
		Type:        jsii.String("String"),
		Description: jsii.String("Default origin domain name for the distribution"),
		Default:     defaultOriginDomain,
	})

	return CDKParams{
		OriginDomainName: originDomainName,
	}
}

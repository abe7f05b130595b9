package domainutils

import (
	"strings"

	"github.com/aws/aws-cdk-go/awscdk/v2"
	"github.com/aws/aws-cdk-go/awscdk/v2/awscertificatemanager"
	"github.com/aws/aws-cdk-go/awscdk/v2/awsroute53"
	"github.com/aws/constructs-go/constructs/v10"
	"github.com/aws/jsii-runtime-go"
)

// GetACMCertificate creates a DNS-validated certificate for the domain.
// CloudFront only accepts certificates issued in us-east-1, so the owning
// stack must be pinned there.
func GetACMCertificate(stack constructs.Construct, domain *string, hostedZone *awsroute53.IHostedZone) awscertificatemanager.Certificate {
	id := strings.Join([]string{*domain, "ACM-Certificate"}, "-")
	return awscertificatemanager.NewCertificate(stack, &id, &awscertificatemanager.CertificateProps{
		DomainName: domain,
		Validation: awscertificatemanager.CertificateValidation_FromDns(*hostedZone),
	})
}

// GetHostedZone looks up the existing public zone for the domain.
func GetHostedZone(stack awscdk.Stack, domain *string) awsroute53.IHostedZone {
	return awsroute53.HostedZone_FromLookup(stack, jsii.String("HostedZone"), &awsroute53.HostedZoneProviderProps{
		DomainName: domain,
	})
}

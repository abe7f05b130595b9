package config

import (
	"github.com/aws/constructs-go/constructs/v10"
	"github.com/caarlos0/env/v11"
)

// OAuthEnvironmentVariables carry the client credentials for the
// authorization-code-grant extension. They come from the environment so the
// secret never lands in the manifest or in source control.
type OAuthEnvironmentVariables struct {
	ClientID     string `env:"OAUTH_CLIENT_ID,required"`
	ClientSecret string `env:"OAUTH_CLIENT_SECRET,required"`
}

// GetEnvironmentVariables parses T from the process environment. It only runs
// during synthesis, so `cdk list` and tests do not demand deployment secrets.
func GetEnvironmentVariables[T any](scope constructs.Construct) T {
	var envObj T

	if !IsStackInSynthesis(scope) {
		return envObj
	}

	err := env.Parse(&envObj)
	if err != nil {
		panic(err)
	}

	return envObj
}

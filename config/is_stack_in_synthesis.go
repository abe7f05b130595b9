package config

import (
	"github.com/aws/aws-cdk-go/awscdk/v2"
	"github.com/aws/constructs-go/constructs/v10"
)

// IsStackInSynthesis reports whether the scope's stack is being synthesized
// for deployment (as opposed to listed or inspected).
func IsStackInSynthesis(scope constructs.Construct) bool {
	stack := awscdk.Stack_Of(scope)
	if stack == nil {
		return false
	}
	return *stack.BundlingRequired()
}

// Package cdklogger reports synth-time messages through CDK construct
// metadata; they surface during `cdk synth` and `cdk deploy`.
package cdklogger

import (
	"fmt"
	"strings"

	"github.com/aws/aws-cdk-go/awscdk/v2"
	"github.com/aws/constructs-go/constructs/v10"
	"github.com/aws/jsii-runtime-go"
)

// prefixed formats the message, prefixing it with the construct ID unless the
// scope's node path already ends with it.
func prefixed(scope constructs.Construct, constructID, format string, args ...interface{}) *string {
	msg := fmt.Sprintf(format, args...)
	if constructID != "" {
		path := *scope.Node().Path()
		if path != "/"+constructID && !strings.HasSuffix(path, "/"+constructID) {
			msg = fmt.Sprintf("[%s] %s", constructID, msg)
		}
	}
	return jsii.String(msg)
}

// LogInfo adds an INFO level message to the construct's metadata.
func LogInfo(scope constructs.Construct, constructID string, format string, args ...interface{}) {
	awscdk.Annotations_Of(scope).AddInfo(prefixed(scope, constructID, format, args...))
}

// LogWarning adds a WARNING level message to the construct's metadata.
func LogWarning(scope constructs.Construct, constructID string, format string, args ...interface{}) {
	awscdk.Annotations_Of(scope).AddWarning(prefixed(scope, constructID, format, args...))
}

// LogError adds an ERROR level message to the construct's metadata.
func LogError(scope constructs.Construct, constructID string, format string, args ...interface{}) {
	awscdk.Annotations_Of(scope).AddError(prefixed(scope, constructID, format, args...))
}

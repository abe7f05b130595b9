package extensions

import "fmt"

// EventType is the CloudFront lifecycle event an edge function is associated with.
type EventType string

const (
	EventViewerRequest  EventType = "viewer-request"
	EventOriginRequest  EventType = "origin-request"
	EventOriginResponse EventType = "origin-response"
	EventViewerResponse EventType = "viewer-response"
)

// ParseEventType reads "viewer-request" etc. from manifests and CDK context.
func ParseEventType(s string) (EventType, error) {
	switch EventType(s) {
	case EventViewerRequest, EventOriginRequest, EventOriginResponse, EventViewerResponse:
		return EventType(s), nil
	}
	return "", fmt.Errorf("invalid event type %q - allowed: viewer-request | origin-request | origin-response | viewer-response", s)
}

// SupportsBody reports whether CloudFront exposes the request body at this event.
// Only the two request-stage events carry a body.
func (e EventType) SupportsBody() bool {
	return e == EventViewerRequest || e == EventOriginRequest
}

func (e EventType) String() string {
	return string(e)
}

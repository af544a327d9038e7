package observability

import (
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// Standard attribute keys
const (
	AttrRequestID        = "request.id"
	AttrPlatform         = "searchlink.platform"
	AttrPage             = "searchlink.page"
	AttrQueryFingerprint = "searchlink.query_fingerprint"
)

// SearchLinkAttrs returns the attributes attached to every search link span.
// The raw query never becomes an attribute, only its fingerprint.
func SearchLinkAttrs(platformID string, page int, queryFingerprint string) []attribute.KeyValue {
	attrs := []attribute.KeyValue{
		attribute.String(AttrPlatform, platformID),
		attribute.Int(AttrPage, page),
	}
	if queryFingerprint != "" {
		attrs = append(attrs, attribute.String(AttrQueryFingerprint, queryFingerprint))
	}
	return attrs
}

// AddRequestIDToSpan tags span with the request id when both are present
func AddRequestIDToSpan(span trace.Span, requestID string) {
	if span == nil || requestID == "" {
		return
	}
	span.SetAttributes(attribute.String(AttrRequestID, requestID))
}

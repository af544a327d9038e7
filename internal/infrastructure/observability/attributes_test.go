package observability

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.opentelemetry.io/otel/attribute"
)

func TestSearchLinkAttrs(t *testing.T) {
	attrs := SearchLinkAttrs("amazon", 2, "abc123")

	assert.Equal(t, []attribute.KeyValue{
		attribute.String(AttrPlatform, "amazon"),
		attribute.Int(AttrPage, 2),
		attribute.String(AttrQueryFingerprint, "abc123"),
	}, attrs)
}

func TestSearchLinkAttrsOmitsEmptyFingerprint(t *testing.T) {
	attrs := SearchLinkAttrs("flipkart", 1, "")

	assert.Len(t, attrs, 2)
	for _, attr := range attrs {
		assert.NotEqual(t, attribute.Key(AttrQueryFingerprint), attr.Key)
	}
}

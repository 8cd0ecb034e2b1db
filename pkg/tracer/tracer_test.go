package tracer

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSampler(t *testing.T) {
	tests := []struct {
		rate float64
		want string
	}{
		{rate: 1, want: "root:AlwaysOnSampler"},
		{rate: 2, want: "root:AlwaysOnSampler"},
		{rate: 0, want: "root:AlwaysOffSampler"},
		{rate: -1, want: "root:AlwaysOffSampler"},
		{rate: 0.5, want: "root:TraceIDRatioBased{0.5}"},
	}
	for _, tt := range tests {
		desc := NewSampler(tt.rate).Description()
		assert.Contains(t, desc, "ParentBased")
		assert.Contains(t, desc, tt.want)
	}
}

func TestInit_Disabled(t *testing.T) {
	shutdown, err := Init(context.Background(), Config{Enabled: false})
	require.NoError(t, err)
	require.NotNil(t, shutdown)
	assert.NoError(t, shutdown(context.Background()))

	ctx, span := Start(context.Background(), "noop")
	defer span.End()
	assert.NotNil(t, ctx)
	assert.Empty(t, TraceID(context.Background()))
	assert.Empty(t, SpanID(context.Background()))
}

func TestResourceAttributes(t *testing.T) {
	attrs := resourceAttributes(Config{ServiceName: "postcraft"})
	assert.Len(t, attrs, 1)

	attrs = resourceAttributes(Config{ServiceName: "postcraft", ServiceVersion: "v1.0.0", Environment: "production"})
	assert.Len(t, attrs, 3)
}

package telemetry_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.trai.ch/thumbs/internal/adapters/telemetry"
	"go.trai.ch/thumbs/internal/core/domain"
	"go.trai.ch/thumbs/internal/core/ports"
)

func TestOTelTracer_Attributes(t *testing.T) {
	t.Parallel()

	recorder := tracetest.NewSpanRecorder()
	tp := telemetry.NewProvider(recorder)
	t.Cleanup(func() { _ = tp.Shutdown(context.Background()) })

	tracer := telemetry.NewOTelTracer("test", tp)
	_, span := tracer.Start(context.Background(), "thumbnail",
		ports.WithAttribute("path", "/a.png"),
		ports.WithAttribute("index", 2),
	)
	span.SetAttribute("generation", uint64(7))
	span.SetAttribute("tier", domain.TierLarge)
	span.SetAttribute("ratio", 0.5)
	span.SetAttribute("ok", true)
	span.SetAttribute("tags", []string{"x", "y"})
	span.SetAttribute("other", struct{ A int }{A: 1})
	span.RecordError(nil)
	span.End()

	ended := recorder.Ended()
	require.Len(t, ended, 1)
	assert.Equal(t, "thumbnail", ended[0].Name())
	assert.Equal(t, codes.Unset, ended[0].Status().Code)

	attrs := make(map[attribute.Key]attribute.Value)
	for _, kv := range ended[0].Attributes() {
		attrs[kv.Key] = kv.Value
	}
	assert.Equal(t, "/a.png", attrs["path"].AsString())
	assert.Equal(t, int64(2), attrs["index"].AsInt64())
	assert.Equal(t, int64(7), attrs["generation"].AsInt64())
	assert.Equal(t, "large", attrs["tier"].AsString())
	assert.InDelta(t, 0.5, attrs["ratio"].AsFloat64(), 0)
	assert.True(t, attrs["ok"].AsBool())
	assert.Equal(t, []string{"x", "y"}, attrs["tags"].AsStringSlice())
	assert.Equal(t, "{1}", attrs["other"].AsString())
}

func TestOTelSpan_RecordError(t *testing.T) {
	t.Parallel()

	recorder := tracetest.NewSpanRecorder()
	tp := telemetry.NewProvider(recorder)
	t.Cleanup(func() { _ = tp.Shutdown(context.Background()) })

	_, span := telemetry.NewOTelTracer("test", tp).Start(context.Background(), "thumbnail")
	span.RecordError(errors.New("decode failed"))
	span.End()

	ended := recorder.Ended()
	require.Len(t, ended, 1)
	assert.Equal(t, codes.Error, ended[0].Status().Code)
	assert.Equal(t, "decode failed", ended[0].Status().Description)
	assert.Len(t, ended[0].Events(), 1)
}

func TestNewOTelTracer_GlobalProvider(t *testing.T) {
	t.Parallel()

	tracer := telemetry.NewOTelTracer("test", nil)
	_, span := tracer.Start(context.Background(), "thumbnail")
	span.End()
}

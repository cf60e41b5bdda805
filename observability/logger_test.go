package observability_test

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lexfrei/go-pihole/observability"
)

func TestNoopLogger(t *testing.T) {
	t.Parallel()

	logger := observability.NoopLogger()

	// All methods should execute without panicking
	logger.Debug("test debug")
	logger.Info("test info")
	logger.Warn("test warn")
	logger.Error("test error")

	// With should return a logger
	newLogger := logger.With(observability.Field{Key: "key", Value: "value"})
	require.NotNil(t, newLogger)

	// With'd logger should also work
	newLogger.Info("test with logger")
}

func TestField(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		field observability.Field
		key   string
		value any
	}{
		{
			name:  "string value",
			field: observability.Field{Key: "name", Value: "test"},
			key:   "name",
			value: "test",
		},
		{
			name:  "int value",
			field: observability.Field{Key: "count", Value: 42},
			key:   "count",
			value: 42,
		},
		{
			name:  "nil value",
			field: observability.Field{Key: "empty", Value: nil},
			key:   "empty",
			value: nil,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.key, tt.field.Key)
			assert.Equal(t, tt.value, tt.field.Value)
		})
	}
}

func TestZerologAdapter(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := observability.NewZerolog(zerolog.New(&buf))

	logger.Info("request started", observability.Field{Key: "method", Value: "GET"})

	output := buf.String()
	assert.Contains(t, output, `"message":"request started"`)
	assert.Contains(t, output, `"method":"GET"`)
	assert.Contains(t, output, `"level":"info"`)
}

func TestZerologAdapterWith(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := observability.NewZerolog(zerolog.New(&buf))

	scoped := logger.With(observability.Field{Key: "component", Value: "session"})
	scoped.Warn("authentication failed")

	output := buf.String()
	assert.Contains(t, output, `"component":"session"`)
	assert.Contains(t, output, `"message":"authentication failed"`)
}

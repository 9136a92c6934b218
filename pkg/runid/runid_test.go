package runid_test

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/strvalid/pkg/logger"
	"github.com/dmitrymomot/strvalid/pkg/runid"
)

func TestNew(t *testing.T) {
	t.Parallel()

	a, b := runid.New(), runid.New()
	assert.NotEqual(t, a, b)

	_, err := uuid.Parse(a)
	require.NoError(t, err)
}

func TestContext(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		ctx  context.Context
		want string
	}{
		{name: "stored", ctx: runid.WithContext(context.Background(), "abc"), want: "abc"},
		{name: "missing", ctx: context.Background(), want: ""},
		{name: "nil context", ctx: nil, want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, runid.FromContext(tt.ctx))
		})
	}
}

func TestLoggerExtractor(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := logger.New(
		logger.WithOutput(&buf),
		logger.WithContextExtractors(runid.LoggerExtractor()),
	)

	log.InfoContext(runid.WithContext(context.Background(), "run-1"), "with id")
	log.InfoContext(context.Background(), "without id")

	dec := json.NewDecoder(&buf)

	var first map[string]any
	require.NoError(t, dec.Decode(&first))
	assert.Equal(t, "run-1", first["run_id"])

	var second map[string]any
	require.NoError(t, dec.Decode(&second))
	assert.NotContains(t, second, "run_id")
}

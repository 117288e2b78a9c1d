package logging_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/hsiuhsiu/ffibench-go/pkg/ffibench/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLevels(t *testing.T) {
	var buf bytes.Buffer
	logger, err := logging.NewWithOptions(&buf, logging.Options{Prefix: "harness", Level: "warn"})
	require.NoError(t, err)

	ctx := context.Background()
	logger.Info(ctx, "hidden")
	logger.Warn(ctx, "sample failed", "adapter", "dynamic")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "sample failed")
	assert.Contains(t, out, "adapter=dynamic")
	assert.Contains(t, out, "harness")
}

func TestWithAddsFields(t *testing.T) {
	var buf bytes.Buffer
	logger, err := logging.NewWithOptions(&buf, logging.Options{Level: "debug"})
	require.NoError(t, err)

	logger.With("benchmark", "noop").Debug(context.Background(), "start")
	assert.Contains(t, buf.String(), "benchmark=noop")
}

func TestParseLevel(t *testing.T) {
	for _, s := range []string{"", "debug", "INFO", " warn ", "error"} {
		_, err := logging.ParseLevel(s)
		assert.NoError(t, err, s)
	}
	_, err := logging.ParseLevel("loud")
	require.Error(t, err)

	_, err = logging.NewWithOptions(&bytes.Buffer{}, logging.Options{Level: "loud"})
	require.Error(t, err)
}

func TestDiscard(t *testing.T) {
	logger := logging.Discard()
	logger.Error(context.Background(), "dropped", "k", 1)
	assert.NotNil(t, logger.With("k", 2))
}

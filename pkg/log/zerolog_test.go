package log

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestZerologAdapter_Fields(t *testing.T) {
	var buf bytes.Buffer
	z := NewZerologAdapterWithLogger(zerolog.New(&buf))

	z.Info("encoded",
		String("output", "out.bmp"),
		Int("bytes", 42),
		Uint8("depth", 2),
		Bool("lenient", true),
		Duration("took", time.Second),
		Err(errors.New("boom")),
		Any("size", []int{4, 4}),
	)

	var got map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got), buf.String())

	want := map[string]interface{}{
		"level":   "info",
		"message": "encoded",
		"output":  "out.bmp",
		"bytes":   float64(42),
		"depth":   float64(2),
		"lenient": true,
		"error":   "boom",
	}
	for k, v := range want {
		assert.Equal(t, v, got[k], k)
	}
	assert.Contains(t, got, "took")
	assert.Contains(t, got, "size")
}

func TestZerologAdapter_LevelFilter(t *testing.T) {
	var buf bytes.Buffer
	z := NewZerologAdapterWithLogger(zerolog.New(&buf).Level(zerolog.WarnLevel))

	z.Debug("hidden")
	z.Info("hidden")
	require.Zero(t, buf.Len(), "expected no output below warn, got %q", buf.String())

	z.Warn("shown")
	z.Error("shown")
	assert.Equal(t, 2, bytes.Count(buf.Bytes(), []byte("\n")))
}

func TestNoopLogger(t *testing.T) {
	var l Logger = NewNoopLogger()
	assert.NotPanics(t, func() {
		l.Debug("x")
		l.Info("x", String("k", "v"))
		l.Warn("x")
		l.Error("x", Err(errors.New("e")))
	})
}

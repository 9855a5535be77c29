package logs

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := map[string]LogLevel{
		"debug":   LevelDebug,
		"DEBUG":   LevelDebug,
		" warn ":  LevelWarn,
		"warning": LevelWarn,
		"error":   LevelError,
		"info":    LevelInfo,
		"":        LevelInfo,
		"verbose": LevelInfo,
	}

	for in, want := range tests {
		assert.Equal(t, want, ParseLevel(in), "input %q", in)
	}
}

func TestLogger_JSONWithAttributes(t *testing.T) {
	var buf bytes.Buffer
	l := New(WithOutput(&buf), WithLevel(LevelInfo)).With("request_id", "abc")

	l.Debug("hidden")
	l.Info("Ticket purchased", "event_id", "e1")

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "Ticket purchased", line["msg"])
	assert.Equal(t, "abc", line["request_id"])
	assert.Equal(t, "e1", line["event_id"])
}

func TestSetDefault(t *testing.T) {
	prev := Default()
	t.Cleanup(func() { SetDefault(prev) })

	var buf bytes.Buffer
	SetDefault(New(WithOutput(&buf), WithJSONFormat(false)))
	Warn("cache cleared")

	assert.Contains(t, buf.String(), "cache cleared")
	assert.Contains(t, buf.String(), "level=WARN")
}

func TestMaskEmail(t *testing.T) {
	tests := map[string]string{
		"ana@example.com":     "a**@example.com",
		"joaquim@example.com": "j******@example.com",
		"not-an-email":        "***",
		"@example.com":        "***",
	}

	for in, want := range tests {
		assert.Equal(t, want, MaskEmail(in), "input %q", in)
	}
}

func TestLogger_MasksEmailAttributes(t *testing.T) {
	var buf bytes.Buffer
	l := New(WithOutput(&buf), WithMaskedEmails("to", "email"))

	l.Info("Notification relayed", "to", "ana@example.com", "event_id", "e1")

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "a**@example.com", line["to"])
	assert.Equal(t, "e1", line["event_id"])
	assert.NotContains(t, buf.String(), "ana@example.com")
}

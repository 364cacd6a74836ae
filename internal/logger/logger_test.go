package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestNew_Builds(t *testing.T) {
	for _, tc := range []struct {
		name  string
		json  bool
		debug bool
	}{
		{name: "console info"},
		{name: "json info", json: true},
		{name: "console debug", debug: true},
		{name: "json debug", json: true, debug: true},
	} {
		t.Run(tc.name, func(t *testing.T) {
			log, err := New(tc.json, tc.debug)
			require.NoError(t, err)
			require.NotNil(t, log)
		})
	}
}

func TestNew_DebugLevel(t *testing.T) {
	log, err := New(false, true)
	require.NoError(t, err)
	assert.True(t, log.Core().Enabled(zapcore.DebugLevel))

	log, err = New(false, false)
	require.NoError(t, err)
	assert.False(t, log.Core().Enabled(zapcore.DebugLevel))
}

func TestTruncateForLog(t *testing.T) {
	assert.Equal(t, "hello", TruncateForLog("  hello  ", 10))
	assert.Equal(t, "hel...", TruncateForLog("hello world", 3))
	assert.Equal(t, "", TruncateForLog("hello", 0))
	assert.Equal(t, "", TruncateForLog("hello", -1))
	assert.Equal(t, "héllo", TruncateForLog("héllo", 5))
	assert.Equal(t, "hél...", TruncateForLog("héllo!", 3))
}

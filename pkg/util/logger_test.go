package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestSetupLogger(t *testing.T) {
	defer zap.ReplaceGlobals(zap.NewNop())

	assert.NoError(t, SetupLogger("warn"))
	assert.False(t, zap.L().Core().Enabled(zapcore.InfoLevel))
	assert.True(t, zap.L().Core().Enabled(zapcore.WarnLevel))

	assert.Error(t, SetupLogger("loud"))
}

func TestGetVersion(t *testing.T) {
	v := GetVersion()

	assert.Equal(t, version, v.Version)
	assert.NotEmpty(t, v.GoVersion)
	assert.Contains(t, v.String(), v.Version)
}

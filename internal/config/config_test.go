package config

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
)

func TestFromEnvDefaultsWhenUnset(t *testing.T) {
	t.Setenv("BOXPACKER3D_GRID_STEP", "")
	log, _ := test.NewNullLogger()

	cfg := FromEnv(log)

	assert.Equal(t, defaultHost, cfg.API.Host)
	assert.Equal(t, defaultPort, cfg.API.Port)
	assert.InDelta(t, 5.0, cfg.Optimizer.GridStep, 1e-9)
	assert.InDelta(t, 0.60, cfg.Optimizer.SupportRatio, 1e-9)
	assert.False(t, cfg.Optimizer.AllowItemRotation)
}

func TestFromEnvHonorsValidOverride(t *testing.T) {
	t.Setenv("BOXPACKER3D_SUPPORT_RATIO", "0.75")
	t.Setenv("BOXPACKER3D_ALLOW_ROTATIONS", "true")
	log, _ := test.NewNullLogger()

	cfg := FromEnv(log)

	assert.InDelta(t, 0.75, cfg.Optimizer.SupportRatio, 1e-9)
	assert.True(t, cfg.Optimizer.AllowItemRotation)
}

func TestFromEnvFallsBackAndWarnsOnInvalidOverride(t *testing.T) {
	t.Setenv("BOXPACKER3D_SUPPORT_RATIO", "3.5")
	log, hook := test.NewNullLogger()

	cfg := FromEnv(log)

	assert.InDelta(t, 0.60, cfg.Optimizer.SupportRatio, 1e-9)
	var sawWarning bool
	for _, entry := range hook.AllEntries() {
		if entry.Level == logrus.WarnLevel {
			sawWarning = true
		}
	}
	assert.True(t, sawWarning)
}

func TestFromEnvFallsBackOnUnparsableOverride(t *testing.T) {
	t.Setenv("BOXPACKER3D_GRID_STEP", "not-a-number")
	log, _ := test.NewNullLogger()

	cfg := FromEnv(log)
	assert.InDelta(t, 5.0, cfg.Optimizer.GridStep, 1e-9)
}

func TestFromEnvFallsBackOnInvalidPort(t *testing.T) {
	t.Setenv("BOXPACKER3D_PORT", "0")
	log, _ := test.NewNullLogger()

	cfg := FromEnv(log)
	assert.Equal(t, defaultPort, cfg.API.Port)
}

package main

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/scenekit/scenekit/internal/component"
	"github.com/scenekit/scenekit/internal/config"
	"github.com/scenekit/scenekit/internal/scene"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestNewLogger(t *testing.T) {
	cfg := config.Default()
	cfg.Logging = config.LoggingConfig{Level: "warn", Format: "json"}
	log, err := newLogger(cfg)
	require.NoError(t, err)
	assert.False(t, log.Core().Enabled(zapcore.InfoLevel))
	assert.True(t, log.Core().Enabled(zapcore.WarnLevel))

	cfg.Logging = config.LoggingConfig{Level: "nonsense"}
	log, err = newLogger(cfg)
	require.NoError(t, err)
	assert.True(t, log.Core().Enabled(zapcore.InfoLevel))
	assert.False(t, log.Core().Enabled(zapcore.DebugLevel))
}

func TestLogRendererSummarizesFrame(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	r := newLogRenderer(zap.New(core))

	frame := &scene.RenderFrame{
		Camera: scene.CameraMatrices{Position: mgl32.Vec3{0, 4, 5}},
		Items: []scene.RenderItem{
			{Lines: make([]component.Line, 12)},
			{Quads: make([]component.Quad, 1)},
		},
	}
	require.NoError(t, r.Render(frame))

	entries := logs.FilterMessage("frame submitted").All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	assert.Equal(t, int64(2), fields["items"])
	assert.Equal(t, int64(12), fields["lines"])
	assert.Equal(t, int64(1), fields["quads"])
}

func TestStartProfileDisabled(t *testing.T) {
	p := startProfile(config.ProfileConfig{})
	assert.IsType(t, noopStopper{}, p)
	p.Stop()
}

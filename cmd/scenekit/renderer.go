package main

import (
	"github.com/scenekit/scenekit/internal/scene"
	"go.uber.org/zap"
)

// logRenderer stands in for a GPU backend: it logs a summary of each
// submitted frame at debug level.
type logRenderer struct {
	log    *zap.Logger
	frames uint64
}

func newLogRenderer(log *zap.Logger) *logRenderer {
	return &logRenderer{log: log}
}

func (r *logRenderer) Resize(width, height uint32) {
	r.log.Info("viewport resized", zap.Uint32("width", width), zap.Uint32("height", height))
}

func (r *logRenderer) Render(frame *scene.RenderFrame) error {
	r.frames++
	if ce := r.log.Check(zap.DebugLevel, "frame submitted"); ce != nil {
		lines, quads := 0, 0
		for _, item := range frame.Items {
			lines += len(item.Lines)
			quads += len(item.Quads)
		}
		ce.Write(
			zap.Uint64("frame", r.frames),
			zap.Int("items", len(frame.Items)),
			zap.Int("lines", lines),
			zap.Int("quads", quads),
			zap.Float32("camera_x", frame.Camera.Position.X()),
			zap.Float32("camera_y", frame.Camera.Position.Y()),
			zap.Float32("camera_z", frame.Camera.Position.Z()),
		)
	}
	return nil
}

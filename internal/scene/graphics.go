package scene

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/scenekit/scenekit/internal/component"
	"github.com/scenekit/scenekit/internal/core/ecs"
)

// Renderer is implemented by the GPU backend. The core only hands it plain
// data; it never sees ECS storage.
type Renderer interface {
	Resize(width, height uint32)
	Render(frame *RenderFrame) error
}

// Graphics is the renderer slot. Renderer stays nil until the backend has
// finished initialising, and every system that needs it early-returns until then.
type Graphics struct {
	Renderer                      Renderer
	ViewportWidth, ViewportHeight uint32
}

// RenderFrame is the per-frame submission built from the scene.
type RenderFrame struct {
	Camera CameraMatrices
	Items  []RenderItem
}

// RenderItem is one entity's paint buffers in world space.
type RenderItem struct {
	Entity ecs.EntityID
	Model  mgl32.Mat4
	Lines  []component.Line
	Quads  []component.Quad
}

// ViewportAspectRatio reports width/height of the viewport. It is absent
// while no renderer is attached or the viewport is degenerate.
func ViewportAspectRatio(c *Context) (float32, bool) {
	g := &c.Resources.Graphics
	if g.Renderer == nil || g.ViewportWidth == 0 || g.ViewportHeight == 0 {
		return 0, false
	}
	return float32(g.ViewportWidth) / float32(g.ViewportHeight), true
}

// AttachRenderer installs the backend and sizes it to the current window.
func AttachRenderer(c *Context, r Renderer) {
	c.Resources.Graphics.Renderer = r
	ResizeViewport(c, c.Resources.Window.Width, c.Resources.Window.Height)
}

// ResizeViewport records a new viewport size and forwards it to the renderer.
func ResizeViewport(c *Context, width, height uint32) {
	g := &c.Resources.Graphics
	g.ViewportWidth, g.ViewportHeight = width, height
	if g.Renderer == nil || width == 0 || height == 0 {
		return
	}
	g.Renderer.Resize(width, height)
}

// BuildRenderFrame collects the active camera and every painted entity with a
// global transform. It reports false when there is nothing to render from.
func BuildRenderFrame(c *Context) (*RenderFrame, bool) {
	matrices, ok := ActiveCameraMatrices(c)
	if !ok {
		return nil, false
	}
	frame := &RenderFrame{Camera: matrices}
	c.World.Each(component.MaskGlobalTransform, func(id ecs.EntityID) {
		lines, hasLines := LinesOf(c, id)
		quads, hasQuads := QuadsOf(c, id)
		if !hasLines && !hasQuads {
			return
		}
		gt, _ := GlobalTransformComponent(c, id)
		item := RenderItem{Entity: id, Model: gt.Matrix}
		if hasLines {
			item.Lines = lines.Items
		}
		if hasQuads {
			item.Quads = quads.Items
		}
		frame.Items = append(frame.Items, item)
	})
	return frame, true
}

// Package component holds the closed set of component value types and the
// kind bit each one occupies in an entity's mask.
package component

import "github.com/scenekit/scenekit/internal/core/ecs"

const (
	KindCamera ecs.Kind = iota
	KindGlobalTransform
	KindLines
	KindLocalTransform
	KindName
	KindParent
	KindQuads

	kindCount
)

// Single-kind masks, combined with Union or ecs.MaskOf for queries.
var (
	MaskCamera          = ecs.MaskOf(KindCamera)
	MaskGlobalTransform = ecs.MaskOf(KindGlobalTransform)
	MaskLines           = ecs.MaskOf(KindLines)
	MaskLocalTransform  = ecs.MaskOf(KindLocalTransform)
	MaskName            = ecs.MaskOf(KindName)
	MaskParent          = ecs.MaskOf(KindParent)
	MaskQuads           = ecs.MaskOf(KindQuads)

	// MaskTransform is the pair propagation reads and writes.
	MaskTransform = ecs.MaskOf(KindLocalTransform, KindGlobalTransform)
)

var kindNames = [kindCount]string{
	"camera", "global_transform", "lines", "local_transform", "name", "parent", "quads",
}

// KindName returns the configuration name of k, as used in scene files.
func KindName(k ecs.Kind) string {
	if k >= kindCount {
		return ""
	}
	return kindNames[k]
}

// KindByName resolves a scene-file component name.
func KindByName(name string) (ecs.Kind, bool) {
	for i, n := range kindNames {
		if n == name {
			return ecs.Kind(i), true
		}
	}
	return 0, false
}

// RegisterAll binds every kind to its typed store on w.
func RegisterAll(w *ecs.World) {
	ecs.Register(w, KindCamera, DefaultCamera)
	ecs.Register(w, KindGlobalTransform, IdentityGlobalTransform)
	ecs.Register[Lines](w, KindLines, nil)
	ecs.Register(w, KindLocalTransform, DefaultLocalTransform)
	ecs.Register[Name](w, KindName, nil)
	ecs.Register[Parent](w, KindParent, nil)
	ecs.Register[Quads](w, KindQuads, nil)
}

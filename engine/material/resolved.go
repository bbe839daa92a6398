package material

import (
	"github.com/spaghettifunk/prisma/engine/descriptor"
)

// MaterialBindGroup is the bind-group set index material resources live at.
// Set 0 carries the camera view-projection matrix and set 1 the per-object
// model transform.
const MaterialBindGroup uint32 = 2

// BindingType is the GPU descriptor type of one bind-group entry.
type BindingType int

const (
	// BindingUniformBuffer backs a Color slot.
	BindingUniformBuffer BindingType = iota
	// BindingTexture is the sampled image half of a Texture slot.
	BindingTexture
	// BindingSampler is the sampler half of a Texture slot.
	BindingSampler
)

func (t BindingType) String() string {
	switch t {
	case BindingUniformBuffer:
		return "uniform_buffer"
	case BindingTexture:
		return "texture"
	case BindingSampler:
		return "sampler"
	}
	return "unknown"
}

// BindGroupEntry describes one binding of the material bind group.
type BindGroupEntry struct {
	Binding uint32
	Slot    string
	Type    BindingType
}

// ResolvedMaterial is the validated combination of a material type's
// pipeline with an object's concrete resources, in declaration order.
// It is immutable; hot reloads produce a fresh value.
type ResolvedMaterial struct {
	TypeName  string
	TypePath  string
	Pipeline  descriptor.Pipeline
	Resources []descriptor.ResourceEntry
}

// Resource returns the resolved value for the named slot.
func (m *ResolvedMaterial) Resource(slot string) (descriptor.ResourceValue, bool) {
	for _, e := range m.Resources {
		if e.Slot == slot {
			return e.Value, true
		}
	}
	return descriptor.ResourceValue{}, false
}

// BindGroupLayout returns the bind-group entries of group 2 in slot order:
// a Color slot takes one uniform-buffer binding, a Texture slot takes a
// texture binding followed by its sampler binding.
func (m *ResolvedMaterial) BindGroupLayout() []BindGroupEntry {
	var entries []BindGroupEntry
	binding := uint32(0)
	for _, e := range m.Resources {
		switch e.Value.Kind {
		case descriptor.ResourceKindColor:
			entries = append(entries, BindGroupEntry{Binding: binding, Slot: e.Slot, Type: BindingUniformBuffer})
			binding++
		case descriptor.ResourceKindTexture:
			entries = append(entries, BindGroupEntry{Binding: binding, Slot: e.Slot, Type: BindingTexture})
			binding++
			entries = append(entries, BindGroupEntry{Binding: binding, Slot: e.Slot, Type: BindingSampler})
			binding++
		}
	}
	return entries
}

// Textures returns the texture paths referenced by the resolved resources.
func (m *ResolvedMaterial) Textures() []string {
	var paths []string
	for _, e := range m.Resources {
		if e.Value.Kind == descriptor.ResourceKindTexture {
			paths = append(paths, e.Value.Texture)
		}
	}
	return paths
}

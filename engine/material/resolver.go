package material

import (
	"github.com/spaghettifunk/prisma/engine/descriptor"
)

// Resolver validates material bindings against their material type's schema
// and produces resolved materials. Resolution is all-or-nothing: no partial
// resolved material is ever returned.
type Resolver struct {
	registry *Registry
}

func NewResolver(registry *Registry) *Resolver {
	return &Resolver{registry: registry}
}

// Resolve looks up the binding's material type and validates every resource
// slot:
//   - a declared slot with no bound value fails with MissingResourceError;
//   - a bound value whose kind disagrees with the declaration fails with
//     TypeMismatchError;
//   - a bound slot the type does not declare fails with UnknownResourceError.
//
// On success the resolved material carries the pipeline and the validated
// resources in declaration order, ready for the rendering backend.
func (rv *Resolver) Resolve(binding *descriptor.MaterialBinding) (*ResolvedMaterial, error) {
	mt, err := rv.registry.LoadOrGet(binding.MaterialType)
	if err != nil {
		return nil, err
	}

	// Every declared slot must be satisfied.
	for _, slot := range mt.ResourceTypes {
		if _, ok := binding.Resource(slot.Name); !ok {
			return nil, &MissingResourceError{Slot: slot.Name}
		}
	}

	// Every bound value must match its declared kind.
	for _, entry := range binding.Resources {
		kind, ok := mt.SlotKind(entry.Slot)
		if !ok {
			continue
		}
		if entry.Value.Kind != kind {
			return nil, &TypeMismatchError{Slot: entry.Slot, Expected: kind, Got: entry.Value.Kind}
		}
	}

	// Bound slots the schema does not declare are rejected outright.
	for _, entry := range binding.Resources {
		if _, ok := mt.SlotKind(entry.Slot); !ok {
			return nil, &UnknownResourceError{Slot: entry.Slot}
		}
	}

	// Emit resources in declaration order: it is the bind-group slot order.
	resources := make([]descriptor.ResourceEntry, 0, len(mt.ResourceTypes))
	for _, slot := range mt.ResourceTypes {
		value, _ := binding.Resource(slot.Name)
		resources = append(resources, descriptor.ResourceEntry{Slot: slot.Name, Value: value})
	}

	return &ResolvedMaterial{
		TypeName:  mt.Name,
		TypePath:  binding.MaterialType,
		Pipeline:  mt.Pipeline,
		Resources: resources,
	}, nil
}

package material

import (
	"fmt"

	"github.com/spaghettifunk/prisma/engine/descriptor"
)

// MissingResourceError reports a slot declared by the material type but
// absent from the binding.
type MissingResourceError struct {
	Slot string
}

func (e *MissingResourceError) Error() string {
	return fmt.Sprintf("missing resource for slot %q", e.Slot)
}

// UnknownResourceError reports a bound slot the material type does not
// declare. Resource slots are a closed schema: they map directly to the GPU
// bind-group layout, so an extra entry is an error, not noise.
type UnknownResourceError struct {
	Slot string
}

func (e *UnknownResourceError) Error() string {
	return fmt.Sprintf("unknown resource slot %q not declared by material type", e.Slot)
}

// TypeMismatchError reports a bound value whose kind disagrees with the
// declared slot kind. Texture and Color are never coerced into each other.
type TypeMismatchError struct {
	Slot     string
	Expected descriptor.ResourceKind
	Got      descriptor.ResourceKind
}

func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("resource slot %q: expected %s, got %s", e.Slot, e.Expected, e.Got)
}

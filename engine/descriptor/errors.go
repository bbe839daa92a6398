package descriptor

import "errors"

var (
	// ErrSchema indicates a structurally valid document missing required
	// fields or carrying mistyped ones.
	ErrSchema = errors.New("schema error")

	// ErrValidation indicates a well-formed material type failing its
	// semantic invariants (missing vertex stage, unknown resource kind,
	// duplicate slot).
	ErrValidation = errors.New("validation error")
)

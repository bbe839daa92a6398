package core

import "github.com/google/uuid"

// EntityID identifies a spawned scene entity for its whole lifetime.
// Reloading an object in place keeps its id; removing and re-creating the
// file produces a fresh one.
type EntityID = uuid.UUID

var NilEntityID = uuid.Nil

func NewEntityID() EntityID {
	return uuid.New()
}

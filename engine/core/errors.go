package core

import (
	"errors"
)

var (
	ErrAlreadyClosed = errors.New("already closed")
	ErrUnknown       = errors.New("unknown")
)

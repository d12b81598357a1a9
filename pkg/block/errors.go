package block

import "errors"

var (
	ErrKindAlreadyExists = errors.New("kind already registered")
	ErrUnknownKind       = errors.New("unknown kind")
)

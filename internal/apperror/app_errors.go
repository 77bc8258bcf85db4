package apperror

import "errors"

var (
	ErrGameCenterNotFound = errors.New("game center not found")
	ErrInvalidGameCenter  = errors.New("invalid game center")
	ErrGameAlreadyExists  = errors.New("game already exists")
	ErrGameNotFound       = errors.New("game not found")
	ErrInvalidBounds      = errors.New("invalid bounds")
	ErrConcurrentUpdate   = errors.New("game center is being updated concurrently")
)

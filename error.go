package enums

import "errors"

var (
	ErrBadAssignment = errors.New("bad assignment")
	ErrBadDefinition = errors.New("bad definition")
	ErrInvalidKey    = errors.New("invalid key")
	ErrMissingData   = errors.New("missing data")
	ErrNotFound      = errors.New("not found")
	ErrNotValid      = errors.New("invalid")
	ErrUnexpected    = errors.New("unexpected")
)

package geom

import "errors"

var (
	// ErrBadPoint indicates malformed point text.
	ErrBadPoint = errors.New("geom: malformed point")
	// ErrBadDirection indicates an unrecognised direction or turn symbol.
	ErrBadDirection = errors.New("geom: unknown direction")
)

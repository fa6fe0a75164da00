package core

import (
	"errors"
)

var (
	// ErrUnsupportedArrayRank is returned when a numeric array has more
	// than two dimensions.
	ErrUnsupportedArrayRank = errors.New("unsupported array rank")
	// ErrUnsupportedElementKind is returned for numeric element types
	// the viewer has no typed-array mapping for.
	ErrUnsupportedElementKind = errors.New("unsupported element kind")
	// ErrMissingFile is returned by asset loaders when the backing file
	// does not exist.
	ErrMissingFile = errors.New("missing file")
)

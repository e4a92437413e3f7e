package descent

import "errors"

// ErrDimension signals incompatible matrix and vector shapes.
// It is fatal and surfaces immediately to the caller.
var ErrDimension = errors.New("dimension mismatch")

// ErrConfig signals an invalid strategy configuration,
// e.g. a non-positive learning rate or an out of range batch size.
var ErrConfig = errors.New("invalid configuration")

package gridgraph

import "errors"

// ErrInvalidDimension indicates a lattice side (width or height) is below 1.
var ErrInvalidDimension = errors.New("gridgraph: width and height must be at least 1")

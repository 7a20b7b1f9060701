package quadtree

import "errors"

// ErrOutOfBounds is returned when a point lies outside the box a Naive or
// Compressed quadtree was constructed over.
var ErrOutOfBounds = errors.New("quadtree: point is out of bounds")

// ErrNotFound describes a lookup for a point that is not in the index.
// No Find method returns it: they report a missing point with a false
// result.
var ErrNotFound = errors.New("quadtree: point not found")

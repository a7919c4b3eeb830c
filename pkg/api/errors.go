package api

import "errors"

// ErrNotFound is returned by Storage implementations when a lookup matches no
// row. Handlers translate it to a 404 response; every other storage error maps
// to a 500 with a stable message.
var ErrNotFound = errors.New("not found")

// errInternal is the only wording unexpected failures expose to callers; the
// underlying error is logged, never serialized.
var errInternal = errors.New("internal server error")

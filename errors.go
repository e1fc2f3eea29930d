package dataview

import "errors"

// ErrOutOfBounds reports an access whose byte range does not lie entirely
// within the buffer. It is the only error this package returns: every bit
// pattern is a valid value for every supported type, so nothing else can
// fail. Bounds failures are deterministic, never transient.
var ErrOutOfBounds = errors.New("dataview: out of bounds")

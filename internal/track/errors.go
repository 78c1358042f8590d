package track

import "errors"

// ErrNotTracked is returned by Edit when the requested address isn't
// in the set.
var ErrNotTracked = errors.New("track: address is not tracked")

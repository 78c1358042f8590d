package cli

import "errors"

// ErrRequiredFlag is returned when a command's required flag was left
// at its zero value.
var ErrRequiredFlag = errors.New("missing required flag")

// ErrShortRead is returned when a command needs a complete read (e.g.
// track add's initial snapshot) but got fewer bytes than requested.
var ErrShortRead = errors.New("short read")

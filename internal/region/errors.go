package region

import "errors"

var (
	ErrUnknownScope  = errors.New("unknown scope")
	ErrNoSuchProcess = errors.New("no regions for process")
)

package async

import "errors"

// ErrTimeout is returned when a wait gives up before the future completes.
var ErrTimeout = errors.New("async: operation timed out waiting for future completion")

package scheduler

import "errors"

// ErrInvalidTriggerTime indicates a trigger time that is not HH:MM
var ErrInvalidTriggerTime = errors.New("invalid trigger time, expected HH:MM")

package simulation

import "errors"

var (
	ErrAlreadyRunning    = errors.New("simulation already running")
	ErrNotRunning        = errors.New("simulation not running")
	ErrConfigLocked      = errors.New("config can only change while stopped")
	ErrInvalidConfig     = errors.New("invalid config")
	ErrExportUnavailable = errors.New("export requires a non-running session with at least one trade")
	ErrClosed            = errors.New("session closed")
)

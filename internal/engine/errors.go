package engine

import "errors"

// ErrInvalidOperation is returned for calls the engine rejects without
// changing any state: attaching a component twice, resuming while already
// playing, removing an entity twice, anything after Quit.
// Callers match it with errors.Is; the message carries the detail.
var ErrInvalidOperation = errors.New("invalid operation")

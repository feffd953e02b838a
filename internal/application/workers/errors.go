package workers

import "errors"

// ErrTerminal marks job failures that will never succeed on redelivery
// (malformed payload, referenced record gone). The consumer drops these
// instead of retrying; everything else is treated as transient.
var ErrTerminal = errors.New("terminal job failure")

package mtmq

import (
	"github.com/pkg/errors"
)

var (
	// ErrInvalidCapacity is returned by New when capacity is below one.
	ErrInvalidCapacity = errors.New("mtmq: capacity must be positive")

	// ErrNilQueue is returned by Destroy on a nil queue.
	ErrNilQueue = errors.New("mtmq: nil queue")

	// ErrDestroyed is returned by Destroy when the queue was already destroyed.
	ErrDestroyed = errors.New("mtmq: queue already destroyed")
)

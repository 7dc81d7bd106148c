// Package mtmq provides a fixed-capacity, thread-safe FIFO queue for handing
// a tagged payload between producer and consumer goroutines, with blocking,
// timeout, context-cancellation and cooperative shutdown semantics.
//
// The queue is a plain circular buffer guarded by one mutex. Goroutines that
// find the queue full (producers) or empty (consumers) sleep on a broadcast
// channel that stands in for a condition variable; sync.Cond has no timed
// wait, so each signal closes the current channel generation and installs a
// fresh one, letting waiters select on the wakeup, a deadline timer and a
// context at the same time.
package mtmq

import (
	"context"
	"sync"
	"time"
)

// Element is the unit passed through the queue: an integer code plus a
// caller-owned payload. The queue stores and returns the payload value as-is;
// it never inspects, copies or releases it, so the producer must keep any
// referenced data alive until the consumer is done with it.
type Element[T any] struct {
	Code    int
	Payload T
}

// Queue is a bounded FIFO queue safe for any number of concurrent producers
// and consumers.
//
// Destroy must only be called after all goroutines using the queue have been
// quiesced; the queue itself cannot verify this.
type Queue[T any] struct {
	mu sync.Mutex

	buf   []Element[T]
	head  int // index of the oldest element
	tail  int // index one past the newest element, modulo capacity
	count int

	// Waiter counts let signalers skip channel churn when nobody sleeps.
	waitingProducers int
	waitingConsumers int

	// Broadcast channels, one generation each; closed on signal.
	notFull  chan struct{}
	notEmpty chan struct{}

	finalized bool
	destroyed bool

	clk Clock
}

// New creates a queue holding at most capacity elements, using the runtime
// monotonic clock for deadline computation. Returns ErrInvalidCapacity for
// capacities below one.
func New[T any](capacity int) (*Queue[T], error) {
	return NewWithClock[T](capacity, MonotonicClock{})
}

// NewWithClock is New with an explicit deadline clock. A nil clock falls back
// to MonotonicClock.
func NewWithClock[T any](capacity int, clk Clock) (*Queue[T], error) {
	if capacity <= 0 {
		return nil, ErrInvalidCapacity
	}
	if clk == nil {
		clk = MonotonicClock{}
	}

	return &Queue[T]{
		buf:      make([]Element[T], capacity),
		notFull:  make(chan struct{}),
		notEmpty: make(chan struct{}),
		clk:      clk,
	}, nil
}

// noDeadline marks an unbounded wait.
const noDeadline = int64(-1)

// deadlineFor converts a relative millisecond timeout into an absolute
// nanosecond deadline. The timeout is widened to int64 before the multiply so
// large values do not overflow during the conversion.
func (q *Queue[T]) deadlineFor(timeoutMs int) int64 {
	if timeoutMs < 0 {
		return noDeadline
	}
	return q.clk.Nanotime() + int64(timeoutMs)*int64(time.Millisecond)
}

type waitResult int

const (
	waitWoken waitResult = iota
	waitTimedOut
	waitInterrupted
)

// waitOn sleeps until ch is closed, the deadline passes, or ctx is done.
// The caller must hold q.mu; the lock is released for the duration of the
// sleep and reacquired before returning. A wakeup is only a hint: the caller
// must re-check its predicate.
func (q *Queue[T]) waitOn(ctx context.Context, ch <-chan struct{}, deadline int64) waitResult {
	var done <-chan struct{}
	if ctx != nil {
		done = ctx.Done()
	}

	q.mu.Unlock()
	defer q.mu.Lock()

	if deadline == noDeadline {
		select {
		case <-ch:
			return waitWoken
		case <-done:
			return waitInterrupted
		}
	}

	remaining := deadline - q.clk.Nanotime()
	if remaining < 0 {
		remaining = 0
	}
	timer := time.NewTimer(time.Duration(remaining))
	defer timer.Stop()

	select {
	case <-ch:
		return waitWoken
	case <-timer.C:
		return waitTimedOut
	case <-done:
		return waitInterrupted
	}
}

// wake broadcasts to every goroutine waiting on the given channel by closing
// the current generation and installing a fresh one. Caller must hold q.mu.
func (q *Queue[T]) wake(ch *chan struct{}) {
	close(*ch)
	*ch = make(chan struct{})
}

// Push appends an element, blocking while the queue is full. A negative
// timeoutMs waits indefinitely; a non-negative one bounds the wait by that
// many milliseconds (zero degrades to a try-push). Returns Finalized once the
// queue is finalized, even if capacity is free.
func (q *Queue[T]) Push(code int, payload T, timeoutMs int) Outcome {
	return q.push(nil, code, payload, timeoutMs)
}

// PushContext is Push with a context; cancellation during the wait yields
// Interrupted.
func (q *Queue[T]) PushContext(ctx context.Context, code int, payload T, timeoutMs int) Outcome {
	return q.push(ctx, code, payload, timeoutMs)
}

func (q *Queue[T]) push(ctx context.Context, code int, payload T, timeoutMs int) Outcome {
	if q == nil {
		return Error
	}

	q.mu.Lock()
	defer q.mu.Unlock()

	if q.destroyed {
		return Error
	}

	deadline := q.deadlineFor(timeoutMs)

	rc := waitWoken
	for !q.finalized && q.count == len(q.buf) && rc == waitWoken {
		q.waitingProducers++
		ch := q.notFull
		rc = q.waitOn(ctx, ch, deadline)
		q.waitingProducers--
		if q.destroyed {
			return Error
		}
	}

	switch {
	case q.finalized:
		return Finalized
	case q.count < len(q.buf):
		q.buf[q.tail] = Element[T]{Code: code, Payload: payload}
		q.tail++
		if q.tail == len(q.buf) {
			q.tail = 0
		}
		q.count++
		if q.waitingConsumers > 0 {
			q.wake(&q.notEmpty)
		}
		return Ok
	case rc == waitTimedOut:
		return TimedOut
	case rc == waitInterrupted:
		return Interrupted
	default:
		return Error
	}
}

// Pop removes and returns the oldest element, blocking while the queue is
// empty. Timeout semantics match Push. A finalized queue keeps returning Ok
// until every element buffered before finalization has been drained; only
// then do consumers observe Finalized.
func (q *Queue[T]) Pop(timeoutMs int) (Element[T], Outcome) {
	return q.pop(nil, timeoutMs)
}

// PopContext is Pop with a context; cancellation during the wait yields
// Interrupted.
func (q *Queue[T]) PopContext(ctx context.Context, timeoutMs int) (Element[T], Outcome) {
	return q.pop(ctx, timeoutMs)
}

func (q *Queue[T]) pop(ctx context.Context, timeoutMs int) (Element[T], Outcome) {
	var zero Element[T]

	if q == nil {
		return zero, Error
	}

	q.mu.Lock()
	defer q.mu.Unlock()

	if q.destroyed {
		return zero, Error
	}

	deadline := q.deadlineFor(timeoutMs)

	rc := waitWoken
	for q.count == 0 && !q.finalized && rc == waitWoken {
		q.waitingConsumers++
		ch := q.notEmpty
		rc = q.waitOn(ctx, ch, deadline)
		q.waitingConsumers--
		if q.destroyed {
			return zero, Error
		}
	}

	switch {
	// An available element wins over the finalized flag so buffered data is
	// drained before consumers see Finalized.
	case q.count > 0:
		elt := q.buf[q.head]
		q.buf[q.head] = zero // release the queue's copy of the payload reference
		q.head++
		if q.head == len(q.buf) {
			q.head = 0
		}
		q.count--
		if q.waitingProducers > 0 {
			q.wake(&q.notFull)
		}
		return elt, Ok
	case q.finalized:
		return zero, Finalized
	case rc == waitTimedOut:
		return zero, TimedOut
	case rc == waitInterrupted:
		return zero, Interrupted
	default:
		return zero, Error
	}
}

// Finalize marks the queue as shut down and wakes every blocked producer and
// consumer. It is idempotent, never blocks on queue fullness or emptiness,
// and the flag never reverts. Elements already buffered remain poppable.
func (q *Queue[T]) Finalize() {
	if q == nil {
		return
	}

	q.mu.Lock()
	defer q.mu.Unlock()

	if q.destroyed || q.finalized {
		return
	}
	q.finalized = true

	if q.waitingConsumers > 0 {
		q.wake(&q.notEmpty)
	}
	if q.waitingProducers > 0 {
		q.wake(&q.notFull)
	}
}

// IsFinalized reports whether the queue has been finalized. The snapshot may
// be stale by the time it is observed. A nil queue reports true.
func (q *Queue[T]) IsFinalized() bool {
	if q == nil {
		return true
	}

	q.mu.Lock()
	defer q.mu.Unlock()
	return q.finalized
}

// Len returns the number of buffered elements.
func (q *Queue[T]) Len() int {
	if q == nil {
		return 0
	}

	q.mu.Lock()
	defer q.mu.Unlock()
	return q.count
}

// Cap returns the queue capacity, or zero after Destroy.
func (q *Queue[T]) Cap() int {
	if q == nil {
		return 0
	}

	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.buf)
}

// Destroy releases the buffer so stored payload references become
// collectable. Callers must ensure no goroutine will touch the queue again;
// as a backstop, any straggler blocked in Push or Pop is woken and gets
// Error, and every later operation returns Error rather than crashing.
func (q *Queue[T]) Destroy() error {
	if q == nil {
		return ErrNilQueue
	}

	q.mu.Lock()
	defer q.mu.Unlock()

	if q.destroyed {
		return ErrDestroyed
	}
	q.destroyed = true

	q.buf = nil
	q.head, q.tail, q.count = 0, 0, 0

	if q.waitingProducers > 0 {
		q.wake(&q.notFull)
	}
	if q.waitingConsumers > 0 {
		q.wake(&q.notEmpty)
	}
	return nil
}

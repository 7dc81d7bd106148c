package mtmq

import (
	"testing"
	"time"
)

// =============================================================================
// Timeout Tests
// =============================================================================

func TestPush_TimeoutElapsesFully(t *testing.T) {
	q, err := New[int](1)
	if err != nil {
		t.Fatal(err)
	}
	if rc := q.Push(1, 1, -1); rc != Ok {
		t.Fatal(rc)
	}

	const timeoutMs = 100

	start := time.Now()
	rc := q.Push(2, 2, timeoutMs)
	elapsed := time.Since(start)

	if rc != TimedOut {
		t.Fatalf("Push = %v, want TimedOut", rc)
	}
	// The wait may overshoot under scheduler load but must never undershoot.
	if elapsed < timeoutMs*time.Millisecond {
		t.Errorf("Push returned after %v, want at least %dms", elapsed, timeoutMs)
	}
}

func TestPop_TimeoutElapsesFully(t *testing.T) {
	q, err := New[int](1)
	if err != nil {
		t.Fatal(err)
	}

	const timeoutMs = 50

	start := time.Now()
	_, rc := q.Pop(timeoutMs)
	elapsed := time.Since(start)

	if rc != TimedOut {
		t.Fatalf("Pop = %v, want TimedOut", rc)
	}
	if elapsed < timeoutMs*time.Millisecond {
		t.Errorf("Pop returned after %v, want at least %dms", elapsed, timeoutMs)
	}
}

func TestPop_SucceedsBeforeDeadline(t *testing.T) {
	q, err := New[int](1)
	if err != nil {
		t.Fatal(err)
	}

	go func() {
		time.Sleep(30 * time.Millisecond)
		q.Push(9, 9, -1)
	}()

	elt, rc := q.Pop(5000)
	if rc != Ok || elt.Code != 9 {
		t.Errorf("Pop = (%+v, %v), want (code 9, Ok)", elt, rc)
	}
}

func TestPop_FinalizedEmptyReturnsWithoutWaiting(t *testing.T) {
	q, err := New[int](1)
	if err != nil {
		t.Fatal(err)
	}
	q.Finalize()

	start := time.Now()
	_, rc := q.Pop(5000)
	elapsed := time.Since(start)

	if rc != Finalized {
		t.Fatalf("Pop = %v, want Finalized", rc)
	}
	if elapsed > time.Second {
		t.Errorf("Pop on finalized empty queue took %v, should not wait for the timeout", elapsed)
	}
}

func TestPush_TimedOutVsSlotFreedRace(t *testing.T) {
	// A slot freed right around the deadline must win over TimedOut: the
	// predicate is re-checked under the lock before the outcome is resolved.
	q, err := New[int](1)
	if err != nil {
		t.Fatal(err)
	}
	if rc := q.Push(1, 1, -1); rc != Ok {
		t.Fatal(rc)
	}

	go func() {
		time.Sleep(20 * time.Millisecond)
		q.Pop(-1)
	}()

	if rc := q.Push(2, 2, 5000); rc != Ok {
		t.Errorf("Push = %v, want Ok after slot freed", rc)
	}
}

package mtmq

// Outcome reports how a Push or Pop resolved.
type Outcome int

const (
	// Ok means the operation was performed.
	Ok Outcome = iota

	// Finalized means the operation was not performed because the queue is
	// finalized. This is a terminal shutdown signal, not an error.
	Finalized

	// TimedOut means the operation did not complete within the given timeout.
	TimedOut

	// Interrupted means the wait was aborted by context cancellation before
	// the operation could complete.
	Interrupted

	// Error means the operation hit an unexpected condition, typically a nil
	// or destroyed queue. It signals a defect in the caller, not a state that
	// should be retried.
	Error
)

// String returns the outcome name.
func (o Outcome) String() string {
	switch o {
	case Ok:
		return "Ok"
	case Finalized:
		return "Finalized"
	case TimedOut:
		return "TimedOut"
	case Interrupted:
		return "Interrupted"
	case Error:
		return "Error"
	default:
		return "Unknown"
	}
}

// Package flow holds the selection state of the document design browser:
// document type, then design, then design versions. Every list is a lane
// with one explicit state value and a request sequence number, so a
// response that arrives after a newer request (or a reset) is discarded.
//
// Flow is not safe for concurrent use; callers drive it from a single
// event loop and run the returned Requests wherever they like.
package flow

// Status is the state of one lane
type Status int

const (
	Idle Status = iota
	Loading
	Loaded
	Failed
)

func (s Status) String() string {
	switch s {
	case Idle:
		return "idle"
	case Loading:
		return "loading"
	case Loaded:
		return "loaded"
	case Failed:
		return "failed"
	default:
		return "unknown"
	}
}

// State is a lane snapshot. A Failed state may still carry Data (the
// proxy answers fallback lists together with an error message).
type State[T any] struct {
	Status Status
	Data   T
	Err    error
}

// Lane tracks one fetch lane
type Lane[T any] struct {
	state State[T]
	seq   uint64
}

// State returns the current snapshot
func (l *Lane[T]) State() State[T] {
	return l.state
}

// Seq returns the latest issued sequence number
func (l *Lane[T]) Seq() uint64 {
	return l.seq
}

// Begin issues a new sequence number and moves the lane to Loading.
// Any response for an earlier number will be discarded.
func (l *Lane[T]) Begin() uint64 {
	l.seq++
	var zero T
	l.state = State[T]{Status: Loading, Data: zero}
	return l.seq
}

// Resolve applies a response if seq is the latest issued number.
// It reports whether the response was applied.
func (l *Lane[T]) Resolve(seq uint64, data T, err error) bool {
	if seq != l.seq || l.state.Status != Loading {
		return false
	}
	status := Loaded
	if err != nil {
		status = Failed
	}
	l.state = State[T]{Status: status, Data: data, Err: err}
	return true
}

// Reset returns the lane to Idle and invalidates in-flight requests
func (l *Lane[T]) Reset() {
	l.seq++
	l.state = State[T]{}
}

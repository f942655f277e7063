package driver

import (
	"time"

	"stdsynth/internal/symbols"
)

// PhaseStatus reports whether a phase started or finished.
type PhaseStatus int

const (
	// PhaseStart indicates that a verification phase has begun.
	PhaseStart PhaseStatus = iota
	PhaseEnd
)

// PhaseEvent describes a timing phase boundary.
type PhaseEvent struct {
	Name    string
	Status  PhaseStatus
	Elapsed time.Duration
}

// PhaseObserver receives phase events emitted during Verify.
type PhaseObserver func(PhaseEvent)

// ProgressEvent is sent once per builtin when its checks finish.
type ProgressEvent struct {
	Symbol symbols.Symbol
	Done   int
	Total  int
	Failed bool
}

// ProgressObserver receives per-builtin progress. It is called from worker
// goroutines and must be safe for concurrent use.
type ProgressObserver func(ProgressEvent)

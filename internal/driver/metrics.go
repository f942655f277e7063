package driver

import (
	"fmt"
	"sync/atomic"
)

// verifyMetrics tracks worker pool activity for one Verify run.
type verifyMetrics struct {
	workersActive    atomic.Int32
	workersPeak      atomic.Int32
	workersCompleted atomic.Int64
	failures         atomic.Int64
	minted           atomic.Int64
}

func (m *verifyMetrics) enter() {
	n := m.workersActive.Add(1)
	for {
		peak := m.workersPeak.Load()
		if n <= peak || m.workersPeak.CompareAndSwap(peak, n) {
			return
		}
	}
}

func (m *verifyMetrics) leave(failed bool, minted int) {
	m.workersActive.Add(-1)
	m.workersCompleted.Add(1)
	if failed {
		m.failures.Add(1)
	}
	m.minted.Add(int64(minted))
}

func (m *verifyMetrics) summary() string {
	return fmt.Sprintf("workers: %d completed, peak %d | failures: %d | minted: %d vars",
		m.workersCompleted.Load(), m.workersPeak.Load(), m.failures.Load(), m.minted.Load())
}

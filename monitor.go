package polestock

import (
	"context"
	"log"
	"sync"
	"time"
)

// DefaultSweepInterval is the period of the aging sweep.
const DefaultSweepInterval = 5 * time.Second

// Sweeper runs one aging sweep. *Tracker implements it.
type Sweeper interface {
	Age() ([]ImbalanceEntry, error)
}

// Monitor runs aging sweeps periodically in the background.
type Monitor struct {
	sweeper  Sweeper
	interval time.Duration

	// OnSweep, if set, is called after every sweep. It must be set before Start.
	// It may call Running but not Stop, which waits for the sweep to return.
	OnSweep func(migrated []ImbalanceEntry, err error)

	mu     sync.Mutex
	cancel context.CancelFunc
	done   chan struct{}
}

// NewMonitor returns a stopped monitor. A non positive interval means
// DefaultSweepInterval.
func NewMonitor(sweeper Sweeper, interval time.Duration) *Monitor {
	if interval <= 0 {
		interval = DefaultSweepInterval
	}
	return &Monitor{sweeper: sweeper, interval: interval}
}

// Interval returns the sweep period.
func (m *Monitor) Interval() time.Duration { return m.interval }

// Start starts the periodic sweep. It does nothing if the monitor is already
// running. The monitor stops when ctx is done or Stop is called.
func (m *Monitor) Start(ctx context.Context) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.running() {
		return
	}
	if m.cancel != nil {
		m.cancel() // ctx ended on its own, release it.
	}
	ctx, m.cancel = context.WithCancel(ctx)
	m.done = make(chan struct{})
	go m.run(ctx, m.done)
}

// Stop stops the periodic sweep and waits for a running sweep to complete.
// It does nothing if the monitor is not running.
func (m *Monitor) Stop() {
	m.mu.Lock()
	cancel, done := m.cancel, m.done
	m.cancel, m.done = nil, nil
	m.mu.Unlock()
	if cancel == nil {
		return
	}
	cancel()
	<-done
}

// Running reports whether the periodic sweep is active.
func (m *Monitor) Running() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.running()
}

func (m *Monitor) running() bool {
	if m.done == nil {
		return false
	}
	select {
	case <-m.done:
		return false
	default:
		return true
	}
}

func (m *Monitor) run(ctx context.Context, done chan struct{}) {
	defer close(done)
	ticker := time.NewTicker(m.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			migrated, err := m.sweeper.Age()
			if err != nil {
				log.Printf("aging sweep failed: %v", err)
			}
			if m.OnSweep != nil {
				m.OnSweep(migrated, err)
			}
		}
	}
}

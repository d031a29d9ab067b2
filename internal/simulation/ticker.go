package simulation

import (
	"sync"
	"time"
)

// Ticker is the periodic timer handle a running session owns.
type Ticker interface {
	C() <-chan time.Time
	Stop()
}

// TickerFactory creates a ticker firing every d.
type TickerFactory func(d time.Duration) Ticker

type realTicker struct{ t *time.Ticker }

func (r realTicker) C() <-chan time.Time { return r.t.C }
func (r realTicker) Stop()               { r.t.Stop() }

// RealTicker is the default factory backed by time.NewTicker.
func RealTicker(d time.Duration) Ticker {
	return realTicker{t: time.NewTicker(d)}
}

// ManualTicker only fires when Fire is called. Headless runs use it with
// Session.Step, and tests use it to observe scheduling.
type ManualTicker struct {
	Interval time.Duration

	c       chan time.Time
	mu      sync.Mutex
	stopped bool
}

func NewManualTicker(d time.Duration) *ManualTicker {
	return &ManualTicker{Interval: d, c: make(chan time.Time, 1)}
}

func (m *ManualTicker) C() <-chan time.Time { return m.c }

func (m *ManualTicker) Stop() {
	m.mu.Lock()
	m.stopped = true
	m.mu.Unlock()
}

func (m *ManualTicker) Stopped() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.stopped
}

// Fire delivers one tick unless the ticker was stopped or a tick is
// already pending. Like time.Ticker, it never blocks.
func (m *ManualTicker) Fire() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.stopped {
		return false
	}
	select {
	case m.c <- time.Now():
		return true
	default:
		return false
	}
}

// ManualTickers records every ticker it creates.
type ManualTickers struct {
	mu      sync.Mutex
	created []*ManualTicker
}

func (f *ManualTickers) New(d time.Duration) Ticker {
	t := NewManualTicker(d)
	f.mu.Lock()
	f.created = append(f.created, t)
	f.mu.Unlock()
	return t
}

// Created returns all tickers handed out so far, oldest first.
func (f *ManualTickers) Created() []*ManualTicker {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]*ManualTicker, len(f.created))
	copy(out, f.created)
	return out
}

// Active counts tickers that have not been stopped.
func (f *ManualTickers) Active() int {
	n := 0
	for _, t := range f.Created() {
		if !t.Stopped() {
			n++
		}
	}
	return n
}

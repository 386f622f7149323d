// Package netmon tracks server reachability for the sync engine.
// Fallback search and pull orchestration consult it to short-circuit
// network attempts while offline.
package netmon

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

//go:generate moq -out monitor_mock.go . Monitor

// Monitor reports whether the server is currently reachable.
type Monitor interface {
	// IsOnline returns the last observed reachability state
	IsOnline() bool

	// Subscribe returns a channel receiving online/offline transitions
	// and a cancel function releasing the subscription
	Subscribe() (<-chan bool, func())
}

// Pinger is the probe used to test reachability. Satisfied by the API
// client's Ping method.
type Pinger interface {
	Ping(ctx context.Context) error
}

// PingMonitor polls the server health endpoint on an interval and
// broadcasts transitions to subscribers.
type PingMonitor struct {
	pinger   Pinger
	logger   *slog.Logger
	interval time.Duration

	mu     sync.Mutex
	online bool
	subs   map[int]chan bool
	nextID int
	stop   chan struct{}
	once   sync.Once
}

// NewPingMonitor creates a monitor polling every interval. The monitor
// starts offline until the first successful probe.
func NewPingMonitor(pinger Pinger, interval time.Duration, logger *slog.Logger) *PingMonitor {
	return &PingMonitor{
		pinger:   pinger,
		logger:   logger,
		interval: interval,
		subs:     make(map[int]chan bool),
		stop:     make(chan struct{}),
	}
}

// Start begins polling until ctx is cancelled or Stop is called.
func (m *PingMonitor) Start(ctx context.Context) {
	go m.loop(ctx)
}

// Stop terminates the polling loop. Safe to call twice.
func (m *PingMonitor) Stop() {
	m.once.Do(func() {
		close(m.stop)
	})
}

func (m *PingMonitor) loop(ctx context.Context) {
	ticker := time.NewTicker(m.interval)
	defer ticker.Stop()

	m.probe(ctx)
	for {
		select {
		case <-ctx.Done():
			return
		case <-m.stop:
			return
		case <-ticker.C:
			m.probe(ctx)
		}
	}
}

func (m *PingMonitor) probe(ctx context.Context) {
	err := m.pinger.Ping(ctx)
	m.setOnline(err == nil)
}

// Probe runs one reachability check immediately, outside the polling
// interval, and returns the observed state.
func (m *PingMonitor) Probe(ctx context.Context) bool {
	m.probe(ctx)
	return m.IsOnline()
}

// IsOnline returns the last observed reachability state
func (m *PingMonitor) IsOnline() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.online
}

// Subscribe returns a channel receiving reachability transitions.
// The channel is buffered; a slow consumer drops updates rather than
// blocking the poll loop.
func (m *PingMonitor) Subscribe() (<-chan bool, func()) {
	m.mu.Lock()
	defer m.mu.Unlock()

	id := m.nextID
	m.nextID++
	ch := make(chan bool, 1)
	m.subs[id] = ch

	cancel := func() {
		m.mu.Lock()
		defer m.mu.Unlock()
		if sub, ok := m.subs[id]; ok {
			delete(m.subs, id)
			close(sub)
		}
	}
	return ch, cancel
}

// setOnline records the new state and notifies subscribers on change.
func (m *PingMonitor) setOnline(online bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.online == online {
		return
	}
	m.online = online
	if m.logger != nil {
		m.logger.Info("connectivity changed", "online", online)
	}
	for _, ch := range m.subs {
		select {
		case ch <- online:
		default:
		}
	}
}

// Package netmon observes device connectivity and notifies subscribers on
// status transitions. The monitor polls a pluggable [Probe]: probe failures
// are never surfaced to subscribers, they simply degrade the status to
// [StatusUnknown].
//
// The monitor is also the trigger point for reconciliation: hooks registered
// via [Monitor.OnOnline] fire exactly once per offline-to-online transition,
// best-effort.
package netmon

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/dinespot/dinesync/internal/logger"
)

// Status is the cached connectivity state.
type Status string

const (
	StatusOnline  Status = "online"
	StatusOffline Status = "offline"
	StatusUnknown Status = "unknown"
)

// Probe answers the question "can the remote store be reached right now".
// Implementations must be safe for concurrent use.
type Probe interface {
	Check(ctx context.Context) (bool, error)
}

// Monitor caches the last observed connectivity status and fans transitions
// out to subscribers. All callbacks run synchronously in subscription order;
// a panicking subscriber is isolated so the remaining subscribers still run.
type Monitor struct {
	logger *logger.Logger
	probe  Probe

	mu       sync.Mutex
	status   Status
	nextID   int
	subs     map[int]func(Status)
	onOnline []func(context.Context)

	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewMonitor constructs a Monitor with status [StatusUnknown] until the first
// probe cycle completes.
func NewMonitor(probe Probe, log *logger.Logger) *Monitor {
	return &Monitor{
		logger: log,
		probe:  probe,
		status: StatusUnknown,
		subs:   make(map[int]func(Status)),
	}
}

// Status returns the current cached status without blocking.
func (m *Monitor) Status() Status {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.status
}

// Subscribe registers cb to be invoked on every status transition (never on
// no-op updates). The returned function unregisters the subscription and is
// safe to call more than once.
func (m *Monitor) Subscribe(cb func(Status)) func() {
	m.mu.Lock()
	id := m.nextID
	m.nextID++
	m.subs[id] = cb
	m.mu.Unlock()

	return func() {
		m.mu.Lock()
		delete(m.subs, id)
		m.mu.Unlock()
	}
}

// OnOnline registers a hook invoked once per offline-to-online transition.
// Hooks run after regular subscribers, on the goroutine that observed the
// transition; errors are the hook's own business (the monitor only logs).
func (m *Monitor) OnOnline(hook func(ctx context.Context)) {
	m.mu.Lock()
	m.onOnline = append(m.onOnline, hook)
	m.mu.Unlock()
}

// WaitForOnline returns true immediately when the monitor is already online,
// otherwise it blocks until a transition to online happens or timeout
// elapses, whichever comes first. The transition subscription is always
// released, on every return path.
func (m *Monitor) WaitForOnline(ctx context.Context, timeout time.Duration) bool {
	if m.Status() == StatusOnline {
		return true
	}

	online := make(chan struct{}, 1)
	unsubscribe := m.Subscribe(func(s Status) {
		if s == StatusOnline {
			select {
			case online <- struct{}{}:
			default:
			}
		}
	})
	defer unsubscribe()

	// The status may have flipped between the fast check and the subscribe.
	if m.Status() == StatusOnline {
		return true
	}

	timer := time.NewTimer(timeout)
	defer timer.Stop()

	select {
	case <-online:
		return true
	case <-timer.C:
		return false
	case <-ctx.Done():
		return false
	}
}

// Start launches the polling loop. It stops when ctx is cancelled or Stop is
// called. An immediate probe cycle runs before the first tick so the status
// leaves [StatusUnknown] quickly.
func (m *Monitor) Start(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = 10 * time.Second
	}

	m.Stop()

	m.mu.Lock()
	loopCtx, cancel := context.WithCancel(ctx)
	m.cancel = cancel
	m.wg.Add(1)
	m.mu.Unlock()

	go func() {
		defer m.wg.Done()
		m.CheckNow(loopCtx)

		t := time.NewTicker(interval)
		defer t.Stop()

		for {
			select {
			case <-loopCtx.Done():
				return
			case <-t.C:
				m.CheckNow(loopCtx)
			}
		}
	}()
}

// Stop cancels the polling loop and waits for it to exit. Safe to call when
// the monitor is not running.
func (m *Monitor) Stop() {
	m.mu.Lock()
	cancel := m.cancel
	m.cancel = nil
	m.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	m.wg.Wait()
}

// CheckNow runs one probe cycle and applies the resulting status. A probe
// error is swallowed and reported as [StatusUnknown].
func (m *Monitor) CheckNow(ctx context.Context) {
	connected, err := m.probe.Check(ctx)
	switch {
	case err != nil:
		m.logger.Debug().Err(err).Msg("connectivity probe failed")
		m.applyStatus(ctx, StatusUnknown)
	case connected:
		m.applyStatus(ctx, StatusOnline)
	default:
		m.applyStatus(ctx, StatusOffline)
	}
}

// SetStatus forces the cached status, firing transitions as if the probe had
// observed next. Exposed for wiring that receives platform connectivity
// events directly, and for tests.
func (m *Monitor) SetStatus(ctx context.Context, next Status) {
	m.applyStatus(ctx, next)
}

func (m *Monitor) applyStatus(ctx context.Context, next Status) {
	m.mu.Lock()
	prev := m.status
	if prev == next {
		m.mu.Unlock()
		return
	}
	m.status = next

	// Notify in subscription order.
	ids := make([]int, 0, len(m.subs))
	for id := range m.subs {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	subs := make([]func(Status), 0, len(ids))
	for _, id := range ids {
		subs = append(subs, m.subs[id])
	}
	hooks := make([]func(context.Context), 0, len(m.onOnline))
	if prev == StatusOffline && next == StatusOnline {
		hooks = append(hooks, m.onOnline...)
	}
	m.mu.Unlock()

	m.logger.Info().Str("from", string(prev)).Str("to", string(next)).Msg("network status changed")

	for _, cb := range subs {
		m.notify(cb, next)
	}
	for _, hook := range hooks {
		hook(ctx)
	}
}

// notify isolates a single subscriber so one panicking callback cannot
// prevent the rest from running.
func (m *Monitor) notify(cb func(Status), s Status) {
	defer func() {
		if r := recover(); r != nil {
			m.logger.Error().Interface("panic", r).Msg("network status subscriber panicked")
		}
	}()
	cb(s)
}

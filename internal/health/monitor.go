// Package health tracks whether the content store is reachable.
package health

import (
	"context"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"content-api/internal/logger"
	"content-api/internal/metrics"
)

// Pinger is satisfied by *pgxpool.Pool.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Monitor holds the store connectivity flag. It is flipped by connection
// lifecycle events (pool hooks) and by a periodic ping loop, and read by the
// request gate.
type Monitor struct {
	available atomic.Bool
	interval  time.Duration
	timeout   time.Duration
	log       *slog.Logger

	lastErr   atomic.Value // string
	checkedAt atomic.Int64 // unix nanos

	stopChan chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
}

// NewMonitor creates a Monitor that starts in the unavailable state.
func NewMonitor(interval time.Duration) *Monitor {
	timeout := interval / 2
	if timeout <= 0 || timeout > 5*time.Second {
		timeout = 5 * time.Second
	}
	m := &Monitor{
		interval: interval,
		timeout:  timeout,
		log:      logger.WithComponent("store"),
		stopChan: make(chan struct{}),
	}
	metrics.SetStoreAvailable(false, false)
	return m
}

// IsAvailable reports whether the store was reachable at the last event.
func (m *Monitor) IsAvailable() bool {
	return m.available.Load()
}

// LastError returns the error message recorded by the last failed check.
func (m *Monitor) LastError() string {
	if v, ok := m.lastErr.Load().(string); ok {
		return v
	}
	return ""
}

// CheckedAt returns the time of the last connectivity event.
func (m *Monitor) CheckedAt() time.Time {
	n := m.checkedAt.Load()
	if n == 0 {
		return time.Time{}
	}
	return time.Unix(0, n)
}

// MarkConnected records a successful connection or ping.
func (m *Monitor) MarkConnected() {
	m.checkedAt.Store(time.Now().UnixNano())
	m.lastErr.Store("")
	changed := m.available.CompareAndSwap(false, true)
	metrics.SetStoreAvailable(true, changed)
	if changed {
		m.log.Info("Store connected")
	}
}

// MarkDisconnected records a failed connection or ping.
func (m *Monitor) MarkDisconnected(err error) {
	m.checkedAt.Store(time.Now().UnixNano())
	msg := ""
	if err != nil {
		msg = err.Error()
	}
	m.lastErr.Store(msg)
	changed := m.available.CompareAndSwap(true, false)
	metrics.SetStoreAvailable(false, changed)
	if changed {
		m.log.Warn("Store disconnected", slog.String("error", msg))
	}
}

// Check pings the store once and updates the flag.
func (m *Monitor) Check(ctx context.Context, p Pinger) bool {
	ctx, cancel := context.WithTimeout(ctx, m.timeout)
	defer cancel()

	if err := p.Ping(ctx); err != nil {
		m.MarkDisconnected(err)
		return false
	}
	m.MarkConnected()
	return true
}

// Start pings the store immediately and then every interval until Stop.
func (m *Monitor) Start(p Pinger) {
	m.wg.Add(1)
	go func() {
		defer m.wg.Done()
		ticker := time.NewTicker(m.interval)
		defer ticker.Stop()

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()
		go func() {
			select {
			case <-m.stopChan:
				cancel()
			case <-ctx.Done():
			}
		}()

		if !m.Check(ctx, p) {
			m.log.Warn("Store unreachable at startup, retrying in background",
				slog.Duration("interval", m.interval),
				slog.String("error", m.LastError()),
			)
		}

		for {
			select {
			case <-ticker.C:
				m.Check(ctx, p)
			case <-m.stopChan:
				return
			}
		}
	}()
}

// Stop ends the ping loop and waits for it to exit.
func (m *Monitor) Stop() {
	m.stopOnce.Do(func() { close(m.stopChan) })
	m.wg.Wait()
}

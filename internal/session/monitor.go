// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package session

import (
	"sync"
	"time"

	"github.com/MKhiriev/go-xray-viewer/internal/logger"
)

// DefaultIdleTimeout is used when the monitor is built with a non-positive
// timeout.
const DefaultIdleTimeout = 5 * time.Minute

// timer is the subset of *time.Timer the monitor needs.
type timer interface {
	Stop() bool
}

// Monitor fires a callback once no activity has been reported for the
// configured timeout. It is safe for concurrent use.
type Monitor struct {
	timeout time.Duration
	logger  *logger.Logger

	afterFunc func(d time.Duration, f func()) timer

	mu         sync.Mutex
	timer      timer
	generation uint64
	onExpire   func()
	active     bool
}

// NewMonitor returns an idle monitor. It does nothing until Start is called.
func NewMonitor(timeout time.Duration, logger *logger.Logger) *Monitor {
	if timeout <= 0 {
		timeout = DefaultIdleTimeout
	}
	return &Monitor{
		timeout: timeout,
		logger:  logger,
		afterFunc: func(d time.Duration, f func()) timer {
			return time.AfterFunc(d, f)
		},
	}
}

// Timeout returns the idle period.
func (m *Monitor) Timeout() time.Duration {
	return m.timeout
}

// Start arms the monitor for a new session. onExpire runs on its own
// goroutine, at most once per Start. Calling Start again replaces the
// previous session's callback.
func (m *Monitor) Start(onExpire func()) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.onExpire = onExpire
	m.active = true
	m.rearmLocked()

	m.logger.Debug().Dur("timeout", m.timeout).Msg("idle monitor started")
}

// Touch reports user activity and restarts the countdown. It is a no-op
// when the monitor is not active.
func (m *Monitor) Touch() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.active {
		return
	}
	m.rearmLocked()
}

// Stop disarms the monitor. No callback fires after Stop returns.
func (m *Monitor) Stop() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.active {
		return
	}
	m.active = false
	m.onExpire = nil
	m.generation++
	if m.timer != nil {
		m.timer.Stop()
		m.timer = nil
	}

	m.logger.Debug().Msg("idle monitor stopped")
}

// Active reports whether the monitor is armed.
func (m *Monitor) Active() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.active
}

func (m *Monitor) rearmLocked() {
	if m.timer != nil {
		m.timer.Stop()
	}
	m.generation++
	gen := m.generation
	m.timer = m.afterFunc(m.timeout, func() { m.expire(gen) })
}

// expire runs when the timer armed for gen fires. A timer superseded by a
// later Touch, Start or Stop finds a newer generation and does nothing.
func (m *Monitor) expire(gen uint64) {
	m.mu.Lock()
	if !m.active || gen != m.generation {
		m.mu.Unlock()
		return
	}
	onExpire := m.onExpire
	m.active = false
	m.onExpire = nil
	m.timer = nil
	m.mu.Unlock()

	m.logger.Info().Dur("timeout", m.timeout).Msg("session expired due to inactivity")
	if onExpire != nil {
		onExpire()
	}
}

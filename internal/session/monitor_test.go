// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package session

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-xray-viewer/internal/logger"
)

// fakeTimer records the callback instead of scheduling it, so tests decide
// when a timer fires.
type fakeTimer struct {
	d       time.Duration
	f       func()
	stopped bool
}

func (t *fakeTimer) Stop() bool {
	wasActive := !t.stopped
	t.stopped = true
	return wasActive
}

type fakeClock struct {
	mu     sync.Mutex
	timers []*fakeTimer
}

func (c *fakeClock) afterFunc(d time.Duration, f func()) timer {
	c.mu.Lock()
	defer c.mu.Unlock()
	t := &fakeTimer{d: d, f: f}
	c.timers = append(c.timers, t)
	return t
}

func (c *fakeClock) last() *fakeTimer {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.timers[len(c.timers)-1]
}

func newTestMonitor(timeout time.Duration) (*Monitor, *fakeClock) {
	clock := &fakeClock{}
	m := NewMonitor(timeout, logger.Nop())
	m.afterFunc = clock.afterFunc
	return m, clock
}

func TestNewMonitor_DefaultTimeout(t *testing.T) {
	assert.Equal(t, DefaultIdleTimeout, NewMonitor(0, logger.Nop()).Timeout())
	assert.Equal(t, time.Second, NewMonitor(time.Second, logger.Nop()).Timeout())
}

func TestMonitor_Expires(t *testing.T) {
	m, clock := newTestMonitor(time.Minute)

	fired := 0
	m.Start(func() { fired++ })
	require.True(t, m.Active())
	assert.Equal(t, time.Minute, clock.last().d)

	clock.last().f()
	assert.Equal(t, 1, fired)
	assert.False(t, m.Active())

	// the same timer firing twice must not call back again
	clock.last().f()
	assert.Equal(t, 1, fired)
}

func TestMonitor_TouchSupersedesPreviousTimer(t *testing.T) {
	m, clock := newTestMonitor(time.Minute)

	fired := 0
	m.Start(func() { fired++ })
	first := clock.last()

	m.Touch()
	second := clock.last()
	require.NotSame(t, first, second)
	assert.True(t, first.stopped)

	// a stale callback that raced the reset is ignored
	first.f()
	assert.Equal(t, 0, fired)
	assert.True(t, m.Active())

	second.f()
	assert.Equal(t, 1, fired)
}

func TestMonitor_StopPreventsCallback(t *testing.T) {
	m, clock := newTestMonitor(time.Minute)

	fired := false
	m.Start(func() { fired = true })
	armed := clock.last()

	m.Stop()
	assert.False(t, m.Active())
	assert.True(t, armed.stopped)

	armed.f()
	assert.False(t, fired)

	// Touch after Stop does not re-arm
	m.Touch()
	assert.Len(t, clock.timers, 1)
	assert.False(t, m.Active())

	// a second Stop is harmless
	m.Stop()
}

func TestMonitor_RestartReplacesCallback(t *testing.T) {
	m, clock := newTestMonitor(time.Minute)

	var got []string
	m.Start(func() { got = append(got, "first") })
	stale := clock.last()

	m.Start(func() { got = append(got, "second") })

	stale.f()
	assert.Empty(t, got)

	clock.last().f()
	assert.Equal(t, []string{"second"}, got)
}

func TestMonitor_RealTimer(t *testing.T) {
	m := NewMonitor(20*time.Millisecond, logger.Nop())

	expired := make(chan struct{})
	m.Start(func() { close(expired) })

	select {
	case <-expired:
	case <-time.After(2 * time.Second):
		t.Fatal("monitor did not expire")
	}
	assert.False(t, m.Active())
}

// Package monitor drives the bounded-retry liveness check against the
// backend and owns the shared ConnectionStatus value. The monitor is the
// sole writer of the status; consumers read immutable snapshots.
package monitor

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"marketpulse-client/internal/backend"
	"marketpulse-client/internal/common/config"
	"marketpulse-client/internal/common/logger"
	"marketpulse-client/internal/common/metrics"
	"marketpulse-client/internal/domain"
)

// Probe triggers, used in logs and metric labels.
const (
	triggerStartup = "startup"
	triggerAuto    = "auto"
	triggerManual  = "manual"
)

// HealthChecker is the single probe the monitor needs from the backend
// client.
type HealthChecker interface {
	CheckHealth(ctx context.Context) (backend.HealthInfo, error)
}

type Monitor struct {
	checker HealthChecker
	cfg     config.MonitorConfig
	logger  logger.Logger

	status atomic.Value // domain.ConnectionStatus

	mu          sync.Mutex
	ctx         context.Context
	failedCount int
	retryTimer  *time.Timer
	subscribers []chan domain.ConnectionStatus
	started     bool
}

func New(checker HealthChecker, cfg config.MonitorConfig, log logger.Logger) *Monitor {
	m := &Monitor{
		checker: checker,
		cfg:     cfg,
		logger:  log.WithFields(map[string]interface{}{"component": "monitor"}),
	}
	m.status.Store(domain.ConnectionStatus{
		State:   domain.StateChecking,
		Message: "Checking backend connection",
	})
	return m
}

// Start issues the startup probe. The context bounds the monitor's
// lifetime; a cancelled context stops pending automatic re-probes.
func (m *Monitor) Start(ctx context.Context) {
	m.mu.Lock()
	if m.started {
		m.mu.Unlock()
		return
	}
	m.started = true
	m.ctx = ctx
	m.mu.Unlock()

	m.publish(domain.ConnectionStatus{
		State:   domain.StateChecking,
		Message: "Checking backend connection",
	})
	go m.probe(triggerStartup)
}

// Retry issues a fresh manual probe. It supersedes any pending automatic
// re-probe and resets the automatic retry counter.
func (m *Monitor) Retry() {
	m.mu.Lock()
	if !m.started {
		m.mu.Unlock()
		return
	}
	if m.retryTimer != nil {
		m.retryTimer.Stop()
		m.retryTimer = nil
	}
	m.failedCount = 0
	m.mu.Unlock()

	m.publish(domain.ConnectionStatus{
		State:   domain.StateChecking,
		Message: "Checking backend connection",
	})
	go m.probe(triggerManual)
}

// Status returns the latest immutable status snapshot.
func (m *Monitor) Status() domain.ConnectionStatus {
	return m.status.Load().(domain.ConnectionStatus)
}

// Subscribe returns a channel receiving every status change. Slow
// subscribers miss updates rather than blocking the monitor.
func (m *Monitor) Subscribe() <-chan domain.ConnectionStatus {
	ch := make(chan domain.ConnectionStatus, 8)
	m.mu.Lock()
	m.subscribers = append(m.subscribers, ch)
	m.mu.Unlock()
	return ch
}

func (m *Monitor) probe(trigger string) {
	ctx, cancel := context.WithTimeout(m.ctx, m.cfg.ProbeTimeout)
	defer cancel()

	info, err := m.checker.CheckHealth(ctx)
	if err != nil {
		metrics.HealthProbesTotal.WithLabelValues("failure", trigger).Inc()
		m.logger.Warn("health probe failed", map[string]interface{}{
			"trigger": trigger,
			"error":   err.Error(),
		})
		m.handleFailure(err)
		return
	}

	metrics.HealthProbesTotal.WithLabelValues("success", trigger).Inc()
	m.logger.Info("backend connected", map[string]interface{}{
		"trigger": trigger,
		"port":    info.Port,
	})

	m.mu.Lock()
	m.failedCount = 0
	if m.retryTimer != nil {
		m.retryTimer.Stop()
		m.retryTimer = nil
	}
	m.mu.Unlock()

	m.publish(domain.ConnectionStatus{
		State:     domain.StateConnected,
		Connected: true,
		Message:   fmt.Sprintf("Connected to backend on port %d", info.Port),
		Details:   info.Details,
	})
}

func (m *Monitor) handleFailure(err error) {
	m.mu.Lock()
	m.failedCount++
	scheduleRetry := m.failedCount < m.cfg.MaxAutoRetries
	attempt := m.failedCount
	if scheduleRetry {
		m.retryTimer = time.AfterFunc(m.cfg.RetryDelay, func() {
			if m.ctx.Err() != nil {
				return
			}
			m.probe(triggerAuto)
		})
	} else {
		m.retryTimer = nil
	}
	m.mu.Unlock()

	message := "Backend disconnected, retrying"
	if !scheduleRetry {
		message = "Backend disconnected"
	}
	m.publish(domain.ConnectionStatus{
		State:   domain.StateDisconnected,
		Message: message,
		Details: map[string]interface{}{
			"error":   err.Error(),
			"attempt": attempt,
		},
	})
}

// publish replaces the status snapshot as a whole value and notifies
// subscribers.
func (m *Monitor) publish(status domain.ConnectionStatus) {
	m.status.Store(status)

	m.mu.Lock()
	subscribers := make([]chan domain.ConnectionStatus, len(m.subscribers))
	copy(subscribers, m.subscribers)
	m.mu.Unlock()

	for _, ch := range subscribers {
		select {
		case ch <- status:
		default:
		}
	}
}

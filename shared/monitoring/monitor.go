package monitoring

import (
	"fmt"
	"time"

	"github.com/rs/zerolog"
)

// Monitor tracks the outcome of the most recent run for health reporting.
type Monitor struct {
	log            zerolog.Logger
	lastRunSuccess bool
	lastRunTime    time.Time
}

func NewMonitor(log zerolog.Logger) *Monitor {
	return &Monitor{log: log}
}

func (m *Monitor) RecordSuccess(summary string, duration time.Duration) {
	m.lastRunSuccess = true
	m.lastRunTime = time.Now()

	m.log.Info().Dur("duration", duration).Msgf("Run completed successfully - %s", summary)
}

func (m *Monitor) RecordPartialFailure(err error, duration time.Duration) {
	// Partial failures don't flip the health status
	m.log.Warn().Err(err).Dur("duration", duration).Msg("Partial failure")
}

func (m *Monitor) RecordCriticalFailure(err error, duration time.Duration) {
	m.lastRunSuccess = false
	m.lastRunTime = time.Now()

	m.log.Error().Err(err).Dur("duration", duration).Msg("Critical failure")
}

func (m *Monitor) IsHealthy() bool {
	if m.lastRunTime.IsZero() {
		return true // No runs yet, assume healthy
	}

	return m.lastRunSuccess
}

func (m *Monitor) GetStatusSummary() string {
	if m.lastRunTime.IsZero() {
		return "No runs yet"
	}

	if m.lastRunSuccess {
		return fmt.Sprintf("Last run succeeded: %s", m.lastRunTime.Format("Jan 2 15:04"))
	}
	return fmt.Sprintf("Last run failed: %s", m.lastRunTime.Format("Jan 2 15:04"))
}

package scheduler

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/fx/fxtest"

	"appcenter-datasource-backend/config"
	"appcenter-datasource-backend/internal/dto"
	"appcenter-datasource-backend/internal/metrics"
)

type stubHealth struct{ status string }

func (s stubHealth) CheckHealth(ctx context.Context) dto.HealthCheckResult {
	return dto.HealthCheckResult{Status: s.status}
}

type recordingGauge struct{ values []float64 }

func (g *recordingGauge) Set(v float64) { g.values = append(g.values, v) }

func TestProbeConnectivitySetsGauge(t *testing.T) {
	gauge := &recordingGauge{}
	counters := &metrics.Counters{ConnectivityUp: gauge}

	ProbeConnectivity(context.Background(), stubHealth{status: dto.HealthStatusSuccess}, counters)
	ProbeConnectivity(context.Background(), stubHealth{status: dto.HealthStatusError}, counters)

	assert.Equal(t, []float64{1, 0}, gauge.values)
}

func TestNewScheduler(t *testing.T) {
	t.Run("empty schedule disables", func(t *testing.T) {
		lc := fxtest.NewLifecycle(t)
		cfg := &config.Config{}

		assert.Nil(t, NewScheduler(lc, cfg, stubHealth{}, metrics.NewTestCounters()))
	})

	t.Run("registers the probe", func(t *testing.T) {
		lc := fxtest.NewLifecycle(t)
		cfg := &config.Config{}
		cfg.Scheduler.ConnectivitySchedule = "0 */5 * * * *"

		c := NewScheduler(lc, cfg, stubHealth{status: dto.HealthStatusSuccess}, metrics.NewTestCounters())

		if assert.NotNil(t, c) {
			assert.Len(t, c.Entries(), 1)
		}
		lc.RequireStart()
		lc.RequireStop()
	})
}

package scheduler

import (
	"context"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog/log"
	"go.uber.org/fx"

	"appcenter-datasource-backend/config"
	"appcenter-datasource-backend/internal/dto"
	"appcenter-datasource-backend/internal/metrics"
	"appcenter-datasource-backend/internal/service"
)

// NewScheduler runs the connectivity probe on the configured cron schedule.
// An empty schedule disables it and returns nil.
func NewScheduler(lc fx.Lifecycle, cfg *config.Config, healthSvc service.HealthService, counters *metrics.Counters) *cron.Cron {
	schedule := cfg.Scheduler.ConnectivitySchedule
	if schedule == "" {
		log.Info().Msg("Connectivity check schedule is empty, scheduler disabled")
		return nil
	}

	parser := cron.NewParser(cron.Second | cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.DowOptional | cron.Descriptor)
	c := cron.New(cron.WithParser(parser), cron.WithChain(cron.SkipIfStillRunning(cron.DefaultLogger)))

	_, err := c.AddFunc(schedule, func() {
		ProbeConnectivity(context.Background(), healthSvc, counters)
	})
	if err != nil {
		log.Fatal().Err(err).Str("schedule", schedule).Msg("Failed to add cron job")
		return nil
	}
	log.Info().Str("schedule", schedule).Msg("Scheduled connectivity check")

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info().Msg("Starting cron scheduler")
			c.Start()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info().Msg("Stopping cron scheduler...")
			stopCtx := c.Stop()
			select {
			case <-stopCtx.Done():
				log.Info().Msg("Cron scheduler stopped gracefully.")
				return nil
			case <-ctx.Done():
				log.Error().Msg("Context cancelled while waiting for cron scheduler to stop.")
				return ctx.Err()
			}
		},
	})

	return c
}

// ProbeConnectivity runs one health check and publishes it on the
// connectivity gauge.
func ProbeConnectivity(ctx context.Context, healthSvc service.HealthService, counters *metrics.Counters) dto.HealthCheckResult {
	result := healthSvc.CheckHealth(ctx)
	up := 0.0
	if result.Status == dto.HealthStatusSuccess {
		up = 1
	} else {
		log.Warn().Str("message", result.Message).Msg("Scheduled connectivity check failed")
	}
	if counters != nil && counters.ConnectivityUp != nil {
		counters.ConnectivityUp.Set(up)
	}
	return result
}

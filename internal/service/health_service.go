package service

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/rs/zerolog/log"

	"appcenter-datasource-backend/internal/appcenter"
	"appcenter-datasource-backend/internal/datasource"
	"appcenter-datasource-backend/internal/dto"
)

var baseURLPattern = regexp.MustCompile(`^(http|https)://[a-z0-9.-]+(:\d+)?(/\S*)?$`)

type HealthService interface {
	CheckHealth(ctx context.Context) dto.HealthCheckResult
}

type healthService struct {
	provider datasource.Provider
}

func NewHealthService(provider datasource.Provider) HealthService {
	return &healthService{provider: provider}
}

// CheckHealth validates the configuration without touching the network, then
// probes the org list once.
func (s *healthService) CheckHealth(ctx context.Context) dto.HealthCheckResult {
	ds := s.provider.Current()
	cfg := ds.Config

	if cfg.BaseURL == "" {
		return missingField("Base URL")
	}
	if !baseURLPattern.MatchString(strings.ToLower(cfg.BaseURL)) {
		return dto.HealthCheckResult{
			Status:  dto.HealthStatusError,
			Message: "Base URL must start with https:// or http://",
			Title:   "ERROR",
		}
	}
	if cfg.APIKey == "" {
		return missingField("Key")
	}

	target := ds.Invoker.URL(appcenter.PathOrgs, nil)
	resp := ds.Invoker.Requestor().Get(ctx, target, nil)
	if resp.Degraded() {
		log.Warn().Err(resp.Err).Str("url", target).Int("attempts", resp.Attempts).Msg("Connectivity check failed")
		return dto.HealthCheckResult{
			Status:  dto.HealthStatusError,
			Message: fmt.Sprintf("Could not connect to App Center using the informed parameter. URL: %s", target),
			Title:   "ERROR",
		}
	}

	log.Info().Str("url", target).Msg("Connectivity check succeeded")
	return dto.HealthCheckResult{Status: dto.HealthStatusSuccess, Message: "Success"}
}

func missingField(field string) dto.HealthCheckResult {
	return dto.HealthCheckResult{
		Status:  dto.HealthStatusError,
		Message: fmt.Sprintf("A valid %s must be informed.", field),
		Title:   "Error",
	}
}

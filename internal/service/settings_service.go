package service

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/rs/zerolog/log"

	"appcenter-datasource-backend/internal/datasource"
	"appcenter-datasource-backend/internal/dto"
	"appcenter-datasource-backend/internal/filestate"
	"appcenter-datasource-backend/internal/model"
)

type SettingsService interface {
	GetSettings(ctx context.Context) dto.SettingsResponse
	UpdateSettings(ctx context.Context, req dto.UpdateSettingsRequest) (dto.SettingsResponse, error)
}

type settingsService struct {
	mu       sync.Mutex
	store    filestate.Manager
	provider datasource.Provider
}

func NewSettingsService(store filestate.Manager, provider datasource.Provider) SettingsService {
	return &settingsService{
		store:    store,
		provider: provider,
	}
}

func (s *settingsService) GetSettings(ctx context.Context) dto.SettingsResponse {
	return toSettingsResponse(s.provider.Current().Config)
}

// UpdateSettings persists the new settings and swaps in a data source built
// from them. Queries already running keep the instance they started with.
func (s *settingsService) UpdateSettings(ctx context.Context, req dto.UpdateSettingsRequest) (dto.SettingsResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	current := s.provider.Current().Config

	apiKey := req.APIKey
	if apiKey == "" {
		apiKey = req.Key
	}
	if apiKey == "" {
		apiKey = current.APIKey
	}

	stored := model.StoredSettings{
		URL:       strings.TrimSpace(req.URL),
		OrgName:   model.SanitizeName(req.OrgName),
		AppName:   model.SanitizeName(req.AppName),
		APIKey:    apiKey,
		RateLimit: req.RateLimit,
	}
	if err := s.store.SaveSettings(stored); err != nil {
		return dto.SettingsResponse{}, fmt.Errorf("failed to save settings: %w", err)
	}

	ds := s.provider.Replace(stored.DataSourceConfig())
	log.Info().Str("org", stored.OrgName).Str("apps", stored.AppName).Msg("Settings updated")
	return toSettingsResponse(ds.Config), nil
}

func toSettingsResponse(cfg model.DataSourceConfig) dto.SettingsResponse {
	return dto.SettingsResponse{
		URL:              cfg.BaseURL,
		OrgName:          cfg.OrgName,
		AppName:          strings.Join(cfg.AppNames, ";"),
		Key:              maskKey(cfg.APIKey),
		APIKeyConfigured: cfg.APIKey != "",
		RateLimit:        cfg.RateLimit,
	}
}

// maskKey keeps at most the last four characters of a key visible.
func maskKey(key string) string {
	if key == "" {
		return ""
	}
	if len(key) <= 8 {
		return "****"
	}
	return "****" + key[len(key)-4:]
}

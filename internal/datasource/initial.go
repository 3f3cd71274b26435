package datasource

import (
	"errors"

	"github.com/rs/zerolog/log"

	"appcenter-datasource-backend/config"
	"appcenter-datasource-backend/internal/filestate"
	"appcenter-datasource-backend/internal/model"
)

// LoadInitialConfig prefers the saved settings file and falls back to the
// environment defaults when nothing was saved or the file is unreadable.
func LoadInitialConfig(cfg *config.Config, store filestate.Manager) model.DataSourceConfig {
	saved, err := store.LoadSettings()
	switch {
	case err == nil:
		log.Info().Str("file", store.GetStateFilePath()).Msg("Using saved data source settings")
		return saved.DataSourceConfig()
	case errors.Is(err, filestate.ErrNoSettings):
	default:
		log.Warn().Err(err).Str("file", store.GetStateFilePath()).Msg("Ignoring unreadable settings file")
	}

	return model.NewDataSourceConfig(
		cfg.AppCenter.BaseURL,
		model.SanitizeName(cfg.AppCenter.OrgName),
		model.SanitizeName(cfg.AppCenter.AppName),
		cfg.AppCenter.APIKey,
		cfg.AppCenter.RateLimit,
	)
}

package filestate

import (
	"encoding/json"
	"errors"
	"os"
	"sync"

	"github.com/rs/zerolog/log"

	"appcenter-datasource-backend/internal/model"
)

// ErrNoSettings is returned by LoadSettings when nothing was saved yet.
var ErrNoSettings = errors.New("no stored settings")

type Manager interface {
	LoadSettings() (*model.StoredSettings, error)
	SaveSettings(settings model.StoredSettings) error
	GetStateFilePath() string
}

type fileStateManager struct {
	filePath string
	mu       sync.RWMutex
}

func NewManager(filePath string) Manager {
	return &fileStateManager{
		filePath: filePath,
	}
}

func (m *fileStateManager) LoadSettings() (*model.StoredSettings, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	data, err := os.ReadFile(m.filePath)
	if err != nil {
		if os.IsNotExist(err) {
			log.Info().Str("file", m.filePath).Msg("Settings file not found, using configured defaults")
			return nil, ErrNoSettings
		}
		log.Error().Err(err).Str("file", m.filePath).Msg("Failed to read settings file")
		return nil, err
	}

	if len(data) == 0 {
		log.Warn().Str("file", m.filePath).Msg("Settings file is empty, using configured defaults")
		return nil, ErrNoSettings
	}
	var settings model.StoredSettings
	if err := json.Unmarshal(data, &settings); err != nil {
		log.Error().Err(err).Str("file", m.filePath).Msg("Failed to unmarshal settings file")
		return nil, err
	}

	log.Debug().Str("file", m.filePath).Str("org", settings.OrgName).Msg("Loaded settings")
	return &settings, nil
}

// SaveSettings writes through a temp file and a rename so readers never see
// a partial file.
func (m *fileStateManager) SaveSettings(settings model.StoredSettings) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	data, err := json.MarshalIndent(settings, "", "  ")
	if err != nil {
		log.Error().Err(err).Msg("Failed to marshal settings")
		return err
	}

	tempFilePath := m.filePath + ".tmp"
	// The file holds the API key.
	err = os.WriteFile(tempFilePath, data, 0600)
	if err != nil {
		log.Error().Err(err).Str("file", tempFilePath).Msg("Failed to write temporary settings file")
		return err
	}

	err = os.Rename(tempFilePath, m.filePath)
	if err != nil {
		log.Error().Err(err).Str("from", tempFilePath).Str("to", m.filePath).Msg("Failed to rename settings file")
		// Attempt cleanup
		_ = os.Remove(tempFilePath)
		return err
	}
	log.Debug().Str("file", m.filePath).Msg("Saved settings")
	return nil
}

func (m *fileStateManager) GetStateFilePath() string {
	return m.filePath
}

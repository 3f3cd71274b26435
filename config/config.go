package config

import (
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

type Config struct {
	Server    ServerConfig
	AppCenter AppCenterConfig
	Settings  SettingsConfig
	Scheduler SchedulerConfig
	Log       LogConfig
}

type ServerConfig struct {
	Port             string
	CORSAllowOrigins []string
}

// AppCenterConfig holds the data-source defaults used when no settings file exists,
// plus the transport knobs that are never exposed on the settings surface.
type AppCenterConfig struct {
	BaseURL               string
	OrgName               string
	AppName               string // semicolon-delimited
	APIKey                string
	RateLimit             float64 // requests per second, 0 disables
	MaxRetries            int
	RequestTimeout        time.Duration
	MaxConcurrentRequests int
}

type SettingsConfig struct {
	FilePath string
}

type SchedulerConfig struct {
	ConnectivitySchedule string
}

type LogConfig struct {
	Level  string
	Pretty bool
}

func NewConfig() (*Config, error) {
	// Configure Viper to read .env file
	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")

	// Enable automatic environment variable loading
	viper.AutomaticEnv()

	viper.SetDefault("SERVER_PORT", "8080")
	viper.SetDefault("CORS_ALLOW_ORIGINS", "*")
	viper.SetDefault("APPCENTER_URL", "https://api.appcenter.ms")
	viper.SetDefault("APPCENTER_RATE_LIMIT", 0)
	viper.SetDefault("APPCENTER_MAX_RETRIES", 3)
	viper.SetDefault("APPCENTER_REQUEST_TIMEOUT", "30s")
	viper.SetDefault("MAX_CONCURRENT_REQUESTS", 0)
	viper.SetDefault("SETTINGS_FILE_PATH", "./datasource_settings.json")
	viper.SetDefault("CONNECTIVITY_CHECK_SCHEDULE", "0 */5 * * * *") // Every 5 minutes
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("LOG_PRETTY", false)

	// Read config file
	if err := viper.ReadInConfig(); err != nil {
		log.Warn().Err(err).Msg("Error reading config file")
	}

	var config Config
	config.Server.Port = viper.GetString("SERVER_PORT")
	config.Server.CORSAllowOrigins = splitList(viper.GetString("CORS_ALLOW_ORIGINS"), ",")

	// --- App Center ---
	config.AppCenter.BaseURL = strings.TrimRight(viper.GetString("APPCENTER_URL"), "/")
	config.AppCenter.OrgName = viper.GetString("APPCENTER_ORG_NAME")
	config.AppCenter.AppName = viper.GetString("APPCENTER_APP_NAME")
	config.AppCenter.APIKey = viper.GetString("APPCENTER_API_KEY")
	config.AppCenter.RateLimit = viper.GetFloat64("APPCENTER_RATE_LIMIT")
	config.AppCenter.MaxRetries = viper.GetInt("APPCENTER_MAX_RETRIES")
	config.AppCenter.RequestTimeout = viper.GetDuration("APPCENTER_REQUEST_TIMEOUT")
	config.AppCenter.MaxConcurrentRequests = viper.GetInt("MAX_CONCURRENT_REQUESTS")

	// --- Settings file ---
	config.Settings.FilePath = viper.GetString("SETTINGS_FILE_PATH")

	// --- Scheduler ---
	config.Scheduler.ConnectivitySchedule = viper.GetString("CONNECTIVITY_CHECK_SCHEDULE")

	// --- Logging ---
	config.Log.Level = viper.GetString("LOG_LEVEL")
	config.Log.Pretty = viper.GetBool("LOG_PRETTY")

	configureLogger(config.Log)

	log.Info().
		Str("port", config.Server.Port).
		Str("appcenter_url", config.AppCenter.BaseURL).
		Str("org", config.AppCenter.OrgName).
		Str("apps", config.AppCenter.AppName).
		Bool("api_key_set", config.AppCenter.APIKey != "").
		Float64("rate_limit", config.AppCenter.RateLimit).
		Int("max_retries", config.AppCenter.MaxRetries).
		Dur("request_timeout", config.AppCenter.RequestTimeout).
		Str("settings_file", config.Settings.FilePath).
		Msg("Config loaded")
	return &config, nil
}

func configureLogger(cfg LogConfig) {
	level, err := zerolog.ParseLevel(strings.ToLower(cfg.Level))
	if err != nil || level == zerolog.NoLevel {
		log.Warn().Str("level", cfg.Level).Msg("Unknown log level, falling back to info")
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)
	if cfg.Pretty {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
	}
}

func splitList(raw, sep string) []string {
	var out []string
	for _, item := range strings.Split(raw, sep) {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}

// Package datasource holds the live, immutable data-source instance and swaps
// it whenever the settings change.
package datasource

import (
	"sync/atomic"

	"github.com/rs/zerolog/log"

	"appcenter-datasource-backend/config"
	"appcenter-datasource-backend/internal/appcenter"
	"appcenter-datasource-backend/internal/metrics"
	"appcenter-datasource-backend/internal/model"
)

// DataSource is one configured adapter instance. Queries take a snapshot and
// use it for their whole lifetime.
type DataSource struct {
	Config  model.DataSourceConfig
	Invoker *appcenter.Invoker
}

type Provider interface {
	Current() *DataSource
	Replace(cfg model.DataSourceConfig) *DataSource
}

// Factory builds the requestor for a configuration.
type Factory func(cfg model.DataSourceConfig) appcenter.Requestor

type provider struct {
	current        atomic.Pointer[DataSource]
	factory        Factory
	maxConcurrency int
}

func NewProvider(initial model.DataSourceConfig, factory Factory, maxConcurrency int) Provider {
	p := &provider{factory: factory, maxConcurrency: maxConcurrency}
	p.Replace(initial)
	return p
}

// NewHTTPFactory builds requestors that talk to App Center over HTTP.
func NewHTTPFactory(cfg *config.Config, counters *metrics.Counters) Factory {
	return func(ds model.DataSourceConfig) appcenter.Requestor {
		return appcenter.NewClient(appcenter.ClientOptions{
			APIKey:     ds.APIKey,
			MaxRetries: cfg.AppCenter.MaxRetries,
			Timeout:    cfg.AppCenter.RequestTimeout,
			RateLimit:  ds.RateLimit,
			Counters:   counters,
		})
	}
}

func (p *provider) Current() *DataSource {
	return p.current.Load()
}

func (p *provider) Replace(cfg model.DataSourceConfig) *DataSource {
	ds := &DataSource{
		Config:  cfg,
		Invoker: appcenter.NewInvoker(cfg, p.factory(cfg), p.maxConcurrency),
	}
	p.current.Store(ds)
	log.Info().
		Str("base_url", cfg.BaseURL).
		Str("org", cfg.OrgName).
		Strs("apps", cfg.AppNames).
		Float64("rate_limit", cfg.RateLimit).
		Msg("Data source configured")
	return ds
}

package appcenter

import (
	"context"
	"net/url"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"appcenter-datasource-backend/internal/model"
)

// Invoker runs one endpoint against every configured app.
type Invoker struct {
	cfg            model.DataSourceConfig
	requestor      Requestor
	maxConcurrency int
}

func NewInvoker(cfg model.DataSourceConfig, requestor Requestor, maxConcurrency int) *Invoker {
	return &Invoker{
		cfg:            cfg,
		requestor:      requestor,
		maxConcurrency: maxConcurrency,
	}
}

func (inv *Invoker) Config() model.DataSourceConfig { return inv.cfg }

func (inv *Invoker) Requestor() Requestor { return inv.requestor }

// URL expands template against the base URL with the configured org.
func (inv *Invoker) URL(template string, vars map[string]string) string {
	all := map[string]string{"org": inv.cfg.OrgName}
	for k, v := range vars {
		all[k] = v
	}
	return inv.cfg.BaseURL + Expand(template, all)
}

// NewGroup returns an errgroup bounded by the configured fan-out width.
func (inv *Invoker) NewGroup() *errgroup.Group {
	g := new(errgroup.Group)
	if inv.maxConcurrency > 0 {
		g.SetLimit(inv.maxConcurrency)
	}
	return g
}

// CheckOrg fails when no organization is configured.
func (inv *Invoker) CheckOrg() error {
	if inv.cfg.OrgName == "" {
		return ErrOrgNameMissing
	}
	return nil
}

// CheckApps fails when the org or the app list is missing.
func (inv *Invoker) CheckApps() error {
	if err := inv.CheckOrg(); err != nil {
		return err
	}
	if len(inv.cfg.AppNames) == 0 {
		return ErrAppNameMissing
	}
	return nil
}

type appRecord[T any] interface {
	*T
	SetAppName(name string)
}

// Merged is the concatenation of every app's records, in configured app order.
type Merged[T any] struct {
	Records []*T
	// DegradedApps lists apps whose request exhausted its retries or whose
	// payload could not be decoded; they contributed no records.
	DegradedApps []string
}

// InvokeForAllApps requests urlTemplate once per configured app, concurrently,
// decodes the array under rootKey and tags each record with its app. The merge
// keeps configured app order no matter which request finishes first.
func InvokeForAllApps[T any, PT appRecord[T]](ctx context.Context, inv *Invoker, urlTemplate string, params url.Values, rootKey string) (Merged[T], error) {
	if err := inv.CheckApps(); err != nil {
		return Merged[T]{}, err
	}

	apps := inv.cfg.AppNames
	perApp := make([][]T, len(apps))
	degraded := make([]bool, len(apps))

	g := inv.NewGroup()
	for i, app := range apps {
		g.Go(func() error {
			target := inv.URL(urlTemplate, map[string]string{"app": app})
			resp := inv.requestor.Get(ctx, target, params)
			if resp.Degraded() {
				degraded[i] = true
				return nil
			}
			items, err := DecodeRoot[T](resp.Body, rootKey)
			if err != nil {
				log.Warn().Err(err).Str("app", app).Str("url", target).Msg("Discarding undecodable App Center payload")
				degraded[i] = true
				return nil
			}
			perApp[i] = items
			return nil
		})
	}
	_ = g.Wait()

	var merged Merged[T]
	for i, app := range apps {
		if degraded[i] {
			merged.DegradedApps = append(merged.DegradedApps, app)
		}
		for j := range perApp[i] {
			record := PT(&perApp[i][j])
			record.SetAppName(app)
			merged.Records = append(merged.Records, &perApp[i][j])
		}
	}

	log.Debug().
		Str("endpoint", urlTemplate).
		Strs("apps", apps).
		Int("records", len(merged.Records)).
		Strs("degraded_apps", merged.DegradedApps).
		Msg("Merged multi-app results")
	return merged, nil
}

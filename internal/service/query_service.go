package service

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"appcenter-datasource-backend/internal/datasource"
	"appcenter-datasource-backend/internal/dto"
	"appcenter-datasource-backend/internal/frame"
	"appcenter-datasource-backend/internal/metrics"
	"appcenter-datasource-backend/internal/util"
)

// Query types, as offered by the query editor.
const (
	QueryTypeOrgs               dto.QueryType = "Orgs"
	QueryTypeApps               dto.QueryType = "Apps"
	QueryTypeErrorGroups        dto.QueryType = "Error groups"
	QueryTypeErrors             dto.QueryType = "Errors"
	QueryTypeErrorsCount        dto.QueryType = "Errors count"
	QueryTypeErrorsPerDay       dto.QueryType = "Errors per day"
	QueryTypeCrashesPerDay      dto.QueryType = "Crashes per day"
	QueryTypeEvents             dto.QueryType = "Events"
	QueryTypeEventProperties    dto.QueryType = "Event properties"
	QueryTypeEventPropertyCount dto.QueryType = "Event property count"
)

// undefinedVariable is what an unresolvable dashboard variable expands to.
const undefinedVariable = "undefined"

type QueryService interface {
	Query(ctx context.Context, req dto.QueryDataRequest) (*dto.QueryDataResponse, error)
}

type handlerFunc func(ctx context.Context, q queryContext) (*frame.Frame, error)

type queryService struct {
	provider datasource.Provider
	counters *metrics.Counters
	handlers map[dto.QueryType]handlerFunc
}

func NewQueryService(provider datasource.Provider, counters *metrics.Counters) QueryService {
	s := &queryService{
		provider: provider,
		counters: counters,
	}
	s.handlers = map[dto.QueryType]handlerFunc{
		QueryTypeOrgs:               s.listOrgs,
		QueryTypeApps:               s.listApps,
		QueryTypeErrorGroups:        s.listErrorGroups,
		QueryTypeErrors:             s.listErrors,
		QueryTypeErrorsCount:        s.errorCountPerDay(errorTypeAll),
		QueryTypeErrorsPerDay:       s.errorCountPerDay(errorTypeHandled),
		QueryTypeCrashesPerDay:      s.errorCountPerDay(errorTypeUnhandled),
		QueryTypeEvents:             s.listEvents,
		QueryTypeEventProperties:    s.listEventProperties,
		QueryTypeEventPropertyCount: s.listEventPropertyCounts,
	}
	return s
}

// queryContext carries everything one query needs. Nothing query-specific is
// stored on the service, so concurrent queries never share mutable state.
type queryContext struct {
	ds        *datasource.DataSource
	refID     string
	start     time.Time
	end       time.Time
	loc       *time.Location
	limit     int
	variables map[string]string
}

func (q queryContext) rangeParams() url.Values {
	params := url.Values{}
	params.Set("start", util.FormatAPITime(q.start))
	params.Set("end", util.FormatAPITime(q.end))
	return params
}

func (q queryContext) rangeParamsWithLimit() url.Values {
	params := q.rangeParams()
	params.Set("top", strconv.Itoa(q.limit))
	return params
}

// variable resolves a dashboard template variable.
func (q queryContext) variable(name string) string {
	if v, ok := q.variables[name]; ok && v != "" {
		return v
	}
	return undefinedVariable
}

// Query runs every query of the batch concurrently. A query that fails only
// sets the error of its own result.
func (s *queryService) Query(ctx context.Context, req dto.QueryDataRequest) (*dto.QueryDataResponse, error) {
	start, err := util.ParseTimeFlexible(req.Range.From)
	if err != nil {
		return nil, fmt.Errorf("%w: from: %v", ErrInvalidTimeRange, err)
	}
	end, err := util.ParseTimeFlexible(req.Range.To)
	if err != nil {
		return nil, fmt.Errorf("%w: to: %v", ErrInvalidTimeRange, err)
	}
	if end.Before(start) {
		return nil, fmt.Errorf("%w: to cannot be before from", ErrInvalidTimeRange)
	}

	requestID := util.RequestID(ctx)
	if requestID == "" {
		requestID = uuid.NewString()
	}

	ds := s.provider.Current()
	loc := util.ResolveLocation(req.Timezone)

	log.Info().
		Str("request_id", requestID).
		Time("start", start).
		Time("end", end).
		Str("timezone", loc.String()).
		Int("queries", len(req.Queries)).
		Msg("Running query batch")

	refIDs := make([]string, len(req.Queries))
	results := make([]dto.DataResponse, len(req.Queries))

	var g errgroup.Group
	for i, query := range req.Queries {
		refIDs[i] = query.RefID
		if refIDs[i] == "" {
			refIDs[i] = defaultRefID(i)
		}
		q := queryContext{
			ds:        ds,
			refID:     refIDs[i],
			start:     start,
			end:       end,
			loc:       loc,
			limit:     query.EffectiveLimit(),
			variables: req.Variables,
		}
		g.Go(func() error {
			results[i] = s.run(ctx, requestID, query.Type, q)
			return nil
		})
	}
	_ = g.Wait()

	resp := &dto.QueryDataResponse{
		RequestID: requestID,
		Results:   make(map[string]dto.DataResponse, len(results)),
	}
	for i, result := range results {
		resp.Results[refIDs[i]] = result
	}
	return resp, nil
}

func (s *queryService) run(ctx context.Context, requestID string, queryType dto.QueryType, q queryContext) dto.DataResponse {
	f, err := s.dispatch(ctx, queryType, q)
	if err != nil {
		s.record(queryType, "error")
		log.Error().Err(err).Str("request_id", requestID).Str("ref_id", q.refID).Str("type", string(queryType)).Msg("Query failed")
		return dto.DataResponse{Error: err.Error()}
	}
	s.record(queryType, "ok")
	log.Debug().Str("request_id", requestID).Str("ref_id", q.refID).Str("type", string(queryType)).Int("rows", f.Rows()).Msg("Query finished")
	return dto.DataResponse{Frames: []*frame.Frame{f}}
}

func (s *queryService) dispatch(ctx context.Context, queryType dto.QueryType, q queryContext) (*frame.Frame, error) {
	if strings.TrimSpace(string(queryType)) == "" {
		return nil, ErrQueryTypeMissing
	}
	handler, ok := s.handlers[queryType]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrQueryTypeUnknown, queryType)
	}
	return handler(ctx, q)
}

func (s *queryService) record(queryType dto.QueryType, status string) {
	if s.counters == nil {
		return
	}
	label := string(queryType)
	if _, ok := s.handlers[queryType]; !ok {
		label = "unknown"
	}
	s.counters.Queries.Inc(label, status)
}

// defaultRefID names unnamed queries A, B, ... Z, then by index.
func defaultRefID(i int) string {
	if i < 26 {
		return string(rune('A' + i))
	}
	return "query-" + strconv.Itoa(i)
}

// markDegraded flags a frame built from a partial fan-out.
func markDegraded(f *frame.Frame, apps []string) {
	if len(apps) == 0 {
		return
	}
	f.AddNotice("warning", "Partial result: no data from "+strings.Join(apps, ", ")+" after retries")
}

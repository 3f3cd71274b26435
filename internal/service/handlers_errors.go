package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"appcenter-datasource-backend/internal/appcenter"
	"appcenter-datasource-backend/internal/frame"
	"appcenter-datasource-backend/internal/model"
	"appcenter-datasource-backend/internal/util"
)

// App Center errorType filter values.
const (
	errorTypeAll       = ""
	errorTypeHandled   = "handledError"
	errorTypeUnhandled = "unhandledError"
)

const timeField = "time"

func (s *queryService) listErrorGroups(ctx context.Context, q queryContext) (*frame.Frame, error) {
	merged, err := appcenter.InvokeForAllApps[model.ErrorGroup](ctx, q.ds.Invoker, appcenter.PathErrorGroups, q.rangeParamsWithLimit(), appcenter.RootErrorGroups)
	if err != nil {
		return nil, err
	}

	util.SortBy(merged.Records, "count desc", "appVersion desc")

	f := frame.New(q.refID,
		frame.FieldSpec{Name: "Id", Type: frame.FieldTypeString},
		frame.FieldSpec{Name: "App", Type: frame.FieldTypeString},
		frame.FieldSpec{Name: "Version", Type: frame.FieldTypeString},
		frame.FieldSpec{Name: "Build", Type: frame.FieldTypeString},
		frame.FieldSpec{Name: "Message", Type: frame.FieldTypeString},
		frame.FieldSpec{Name: "Device Count", Type: frame.FieldTypeNumber},
		frame.FieldSpec{Name: "Count", Type: frame.FieldTypeNumber},
		frame.FieldSpec{Name: "State", Type: frame.FieldTypeString},
		frame.FieldSpec{Name: "First Occurrence", Type: frame.FieldTypeTime},
		frame.FieldSpec{Name: "Last Occurrence", Type: frame.FieldTypeTime},
	)
	for _, g := range merged.Records {
		err := f.AppendRow(
			g.ErrorGroupID,
			g.AppName,
			g.AppVersion,
			g.AppBuild,
			g.Message(),
			g.DeviceCount,
			g.Count,
			g.State,
			g.FirstOccurrence,
			g.LastOccurrence,
		)
		if err != nil {
			return nil, err
		}
	}
	markDegraded(f, merged.DegradedApps)
	return f, nil
}

func (s *queryService) listErrors(ctx context.Context, q queryContext) (*frame.Frame, error) {
	errorGroupID := q.variable("errorGroupId")
	template := appcenter.Expand(appcenter.PathErrorGroupErrors, map[string]string{"errorGroupId": errorGroupID})

	merged, err := appcenter.InvokeForAllApps[model.ErrorRecord](ctx, q.ds.Invoker, template, q.rangeParams(), appcenter.RootErrors)
	if err != nil {
		return nil, err
	}

	util.SortBy(merged.Records, "timestamp desc")

	f := frame.New(q.refID,
		frame.FieldSpec{Name: "Error Id", Type: frame.FieldTypeString},
		frame.FieldSpec{Name: "App", Type: frame.FieldTypeString},
		frame.FieldSpec{Name: "Device", Type: frame.FieldTypeString},
		frame.FieldSpec{Name: "OS", Type: frame.FieldTypeString},
		frame.FieldSpec{Name: "OS Version", Type: frame.FieldTypeString},
		frame.FieldSpec{Name: "User", Type: frame.FieldTypeString},
		frame.FieldSpec{Name: "Date", Type: frame.FieldTypeTime},
	)
	for _, e := range merged.Records {
		id := e.ErrorID
		if id == "" {
			id = errorGroupID
		}
		if err := f.AppendRow(id, e.AppName, e.DeviceName, e.OSType, e.OSVersion, e.UserID, e.Timestamp); err != nil {
			return nil, err
		}
	}
	markDegraded(f, merged.DegradedApps)
	return f, nil
}

// errorCountPerDay builds the daily error count handler for one error type.
//
// Stage one lists the error groups of every app; stage two fetches each
// group's errors in the range. Errors are counted per (app version, local
// day) into a wide frame: a time field with every day of the range, then one
// number field per version in first-seen order.
func (s *queryService) errorCountPerDay(errorType string) handlerFunc {
	return func(ctx context.Context, q queryContext) (*frame.Frame, error) {
		inv := q.ds.Invoker

		groupParams := q.rangeParams()
		if errorType != errorTypeAll {
			groupParams.Set("errorType", errorType)
		}
		groups, err := appcenter.InvokeForAllApps[model.ErrorGroup](ctx, inv, appcenter.PathErrorGroups, groupParams, appcenter.RootErrorGroups)
		if err != nil {
			return nil, err
		}

		perGroup := make([][]model.ErrorRecord, len(groups.Records))
		degradedGroup := make([]bool, len(groups.Records))
		errorParams := q.rangeParams()

		g := inv.NewGroup()
		for i, group := range groups.Records {
			g.Go(func() error {
				target := inv.URL(appcenter.PathErrorGroupErrors, map[string]string{
					"app":          group.AppName,
					"errorGroupId": group.ErrorGroupID,
				})
				resp := inv.Requestor().Get(ctx, target, errorParams)
				if resp.Degraded() {
					degradedGroup[i] = true
					return nil
				}
				records, err := appcenter.DecodeRoot[model.ErrorRecord](resp.Body, appcenter.RootErrors)
				if err != nil {
					log.Warn().Err(err).Str("error_group_id", group.ErrorGroupID).Msg("Discarding undecodable errors payload")
					degradedGroup[i] = true
					return nil
				}
				for j := range records {
					records[j].AppName = group.AppName
					records[j].AppVersion = group.AppVersion
				}
				perGroup[i] = records
				return nil
			})
		}
		_ = g.Wait()

		days := util.DaySequence(q.start, q.end, q.loc)
		dayIndex := make(map[int64]int, len(days))
		for i, day := range days {
			dayIndex[day.UnixMilli()] = i
		}

		var versions []string
		counts := make(map[string][]int64)
		for _, records := range perGroup {
			for _, e := range records {
				row, ok := dayIndex[util.LocalDay(e.Timestamp, q.loc).UnixMilli()]
				if !ok {
					continue
				}
				series, seen := counts[e.AppVersion]
				if !seen {
					series = make([]int64, len(days))
					counts[e.AppVersion] = series
					versions = append(versions, e.AppVersion)
				}
				series[row]++
			}
		}

		f := frame.New(q.refID)
		timeValues := make([]interface{}, len(days))
		for i, day := range days {
			timeValues[i] = day
		}
		if err := f.AddField(timeField, frame.FieldTypeTime, timeValues); err != nil {
			return nil, err
		}
		for _, version := range versions {
			values := make([]interface{}, len(days))
			for i, c := range counts[version] {
				values[i] = c
			}
			if err := f.AddField(version, frame.FieldTypeNumber, values); err != nil {
				return nil, fmt.Errorf("error count field %q: %w", version, err)
			}
		}
		f.SetVisualisation("graph")

		degraded := groups.DegradedApps
		for i, bad := range degradedGroup {
			if bad {
				degraded = append(degraded, groups.Records[i].AppName+"/"+groups.Records[i].ErrorGroupID)
			}
		}
		markDegraded(f, degraded)
		return f, nil
	}
}

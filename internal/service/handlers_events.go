package service

import (
	"context"

	"appcenter-datasource-backend/internal/appcenter"
	"appcenter-datasource-backend/internal/frame"
	"appcenter-datasource-backend/internal/model"
	"appcenter-datasource-backend/internal/util"
)

func (s *queryService) listEvents(ctx context.Context, q queryContext) (*frame.Frame, error) {
	merged, err := appcenter.InvokeForAllApps[model.Event](ctx, q.ds.Invoker, appcenter.PathEvents, q.rangeParamsWithLimit(), appcenter.RootEvents)
	if err != nil {
		return nil, err
	}

	util.SortBy(merged.Records, "count desc")

	f := frame.New(q.refID,
		frame.FieldSpec{Name: "Id", Type: frame.FieldTypeString},
		frame.FieldSpec{Name: "Name", Type: frame.FieldTypeString},
		frame.FieldSpec{Name: "Device Count", Type: frame.FieldTypeNumber},
		frame.FieldSpec{Name: "Previous Device Count", Type: frame.FieldTypeNumber},
		frame.FieldSpec{Name: "Count", Type: frame.FieldTypeNumber},
		frame.FieldSpec{Name: "Previous Count", Type: frame.FieldTypeNumber},
		frame.FieldSpec{Name: "Count Per Device", Type: frame.FieldTypeNumber},
	)
	for _, e := range merged.Records {
		err := f.AppendRow(e.ID, e.Name, e.DeviceCount, e.PreviousDeviceCount, e.Count, e.PreviousCount, e.CountPerDevice)
		if err != nil {
			return nil, err
		}
	}
	markDegraded(f, merged.DegradedApps)
	return f, nil
}

// listEventProperties lists the property names of the event selected by the
// eventName dashboard variable.
func (s *queryService) listEventProperties(ctx context.Context, q queryContext) (*frame.Frame, error) {
	eventName := q.variable("eventName")
	template := appcenter.Expand(appcenter.PathEventProperties, map[string]string{"eventName": eventName})

	merged, err := appcenter.InvokeForAllApps[model.EventProperty](ctx, q.ds.Invoker, template, nil, appcenter.RootEventProperties)
	if err != nil {
		return nil, err
	}

	f := frame.New(q.refID,
		frame.FieldSpec{Name: "App", Type: frame.FieldTypeString},
		frame.FieldSpec{Name: "Event", Type: frame.FieldTypeString},
		frame.FieldSpec{Name: "Property", Type: frame.FieldTypeString},
	)
	for _, p := range merged.Records {
		if err := f.AppendRow(p.AppName, eventName, p.Name); err != nil {
			return nil, err
		}
	}
	markDegraded(f, merged.DegradedApps)
	return f, nil
}

// listEventPropertyCounts counts the values of one event property, selected
// by the eventName and eventPropertyName dashboard variables.
func (s *queryService) listEventPropertyCounts(ctx context.Context, q queryContext) (*frame.Frame, error) {
	template := appcenter.Expand(appcenter.PathEventPropertyCounts, map[string]string{
		"eventName":         q.variable("eventName"),
		"eventPropertyName": q.variable("eventPropertyName"),
	})

	merged, err := appcenter.InvokeForAllApps[model.EventPropertyValue](ctx, q.ds.Invoker, template, q.rangeParamsWithLimit(), appcenter.RootValues)
	if err != nil {
		return nil, err
	}

	util.SortBy(merged.Records, "count desc")

	f := frame.New(q.refID,
		frame.FieldSpec{Name: "App", Type: frame.FieldTypeString},
		frame.FieldSpec{Name: "Value", Type: frame.FieldTypeString},
		frame.FieldSpec{Name: "Count", Type: frame.FieldTypeNumber},
		frame.FieldSpec{Name: "Previous Count", Type: frame.FieldTypeNumber},
	)
	for _, v := range merged.Records {
		if err := f.AppendRow(v.AppName, v.Name, v.Count, v.PreviousCount); err != nil {
			return nil, err
		}
	}
	markDegraded(f, merged.DegradedApps)
	return f, nil
}

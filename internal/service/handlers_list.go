package service

import (
	"context"
	"fmt"

	"appcenter-datasource-backend/internal/appcenter"
	"appcenter-datasource-backend/internal/frame"
	"appcenter-datasource-backend/internal/model"
)

var idNameFields = []frame.FieldSpec{
	{Name: "Id", Type: frame.FieldTypeString},
	{Name: "Name", Type: frame.FieldTypeString},
}

func (s *queryService) listOrgs(ctx context.Context, q queryContext) (*frame.Frame, error) {
	inv := q.ds.Invoker
	resp := inv.Requestor().Get(ctx, inv.URL(appcenter.PathOrgs, nil), nil)

	orgs, err := appcenter.DecodeList[model.Org](resp.Body)
	if err != nil {
		return nil, fmt.Errorf("list orgs: %w", err)
	}

	f := frame.New(q.refID, idNameFields...)
	for _, org := range orgs {
		if err := f.AppendRow(org.ID, org.Name); err != nil {
			return nil, err
		}
	}
	if resp.Degraded() {
		f.AddNotice("warning", "App Center did not answer; organization list may be incomplete")
	}
	return f, nil
}

func (s *queryService) listApps(ctx context.Context, q queryContext) (*frame.Frame, error) {
	inv := q.ds.Invoker
	if err := inv.CheckOrg(); err != nil {
		return nil, err
	}
	resp := inv.Requestor().Get(ctx, inv.URL(appcenter.PathApps, nil), nil)

	apps, err := appcenter.DecodeList[model.App](resp.Body)
	if err != nil {
		return nil, fmt.Errorf("list apps: %w", err)
	}

	f := frame.New(q.refID, idNameFields...)
	for _, app := range apps {
		if err := f.AppendRow(app.ID, app.Name); err != nil {
			return nil, err
		}
	}
	if resp.Degraded() {
		f.AddNotice("warning", "App Center did not answer; app list may be incomplete")
	}
	return f, nil
}

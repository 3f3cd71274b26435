package service

import (
	"context"
	"net/url"
	"strings"
	"sync"

	"appcenter-datasource-backend/internal/appcenter"
	"appcenter-datasource-backend/internal/datasource"
	"appcenter-datasource-backend/internal/model"
)

type fakeCall struct {
	url    string
	params url.Values
}

// fakeRequestor answers by URL path suffix. Unknown paths get an empty object,
// like a degraded request would.
type fakeRequestor struct {
	mu        sync.Mutex
	responses map[string]string
	degraded  map[string]bool
	calls     []fakeCall
}

func newFakeRequestor(responses map[string]string) *fakeRequestor {
	return &fakeRequestor{responses: responses, degraded: map[string]bool{}}
}

func (f *fakeRequestor) Get(ctx context.Context, rawURL string, params url.Values) appcenter.Response {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, fakeCall{url: rawURL, params: params})

	for suffix := range f.degraded {
		if strings.HasSuffix(rawURL, suffix) {
			return appcenter.Response{Body: appcenter.EmptyBody, Attempts: 4, Err: appcenter.ErrUnexpectedStatus}
		}
	}
	for suffix, body := range f.responses {
		if strings.HasSuffix(rawURL, suffix) {
			return appcenter.Response{Body: []byte(body), Attempts: 1}
		}
	}
	return appcenter.Response{Body: appcenter.EmptyBody, Attempts: 1}
}

func (f *fakeRequestor) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.calls)
}

func (f *fakeRequestor) callsWithSuffix(suffix string) []fakeCall {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []fakeCall
	for _, c := range f.calls {
		if strings.HasSuffix(c.url, suffix) {
			out = append(out, c)
		}
	}
	return out
}

func newTestProvider(req appcenter.Requestor, baseURL, org, apps, key string) datasource.Provider {
	cfg := model.NewDataSourceConfig(baseURL, org, apps, key, 0)
	return datasource.NewProvider(cfg, func(model.DataSourceConfig) appcenter.Requestor { return req }, 0)
}

package appcenter_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"appcenter-datasource-backend/internal/appcenter"
	"appcenter-datasource-backend/internal/metrics"
)

// flakyServer fails the first `failures` requests with a 503.
func flakyServer(t *testing.T, failures int32, payload string) (*httptest.Server, *int32) {
	t.Helper()
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		n := atomic.AddInt32(&calls, 1)
		if n <= failures {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(payload))
	}))
	t.Cleanup(srv.Close)
	return srv, &calls
}

func newClient(apiKey string) appcenter.Requestor {
	return appcenter.NewClient(appcenter.ClientOptions{
		APIKey:     apiKey,
		MaxRetries: appcenter.DefaultMaxRetries,
		Counters:   metrics.NewTestCounters(),
	})
}

func TestClientGet_Success(t *testing.T) {
	var gotToken, gotQuery string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotToken = r.Header.Get(appcenter.HeaderAPIToken)
		gotQuery = r.URL.RawQuery
		_, _ = w.Write([]byte(`{"errorGroups":[]}`))
	}))
	defer srv.Close()

	params := url.Values{}
	params.Set("top", "30")
	resp := newClient("secret").Get(context.Background(), srv.URL+"/v0.1/orgs", params)

	require.False(t, resp.Degraded())
	assert.Equal(t, 1, resp.Attempts)
	assert.JSONEq(t, `{"errorGroups":[]}`, string(resp.Body))
	assert.Equal(t, "secret", gotToken)
	assert.Equal(t, "top=30", gotQuery)
}

func TestClientGet_RetriesThenSucceeds(t *testing.T) {
	srv, calls := flakyServer(t, 2, `{"orgs":[{"id":"1"}]}`)

	resp := newClient("k").Get(context.Background(), srv.URL, nil)

	require.False(t, resp.Degraded())
	assert.Equal(t, 3, resp.Attempts)
	assert.Equal(t, int32(3), atomic.LoadInt32(calls))
	assert.JSONEq(t, `{"orgs":[{"id":"1"}]}`, string(resp.Body))
}

func TestClientGet_FailsOpenAfterFourAttempts(t *testing.T) {
	srv, calls := flakyServer(t, 100, `{}`)

	resp := newClient("k").Get(context.Background(), srv.URL, nil)

	assert.True(t, resp.Degraded())
	assert.ErrorIs(t, resp.Err, appcenter.ErrUnexpectedStatus)
	assert.Equal(t, 4, resp.Attempts)
	assert.Equal(t, int32(4), atomic.LoadInt32(calls))
	assert.Equal(t, "{}", string(resp.Body))
}

func TestClientGet_TransportFailureFailsOpen(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	target := srv.URL
	srv.Close()

	resp := newClient("k").Get(context.Background(), target, nil)

	assert.True(t, resp.Degraded())
	assert.Equal(t, 4, resp.Attempts)
	assert.Equal(t, appcenter.EmptyBody, resp.Body)
}

func TestClientGet_CancelledContextStopsRetrying(t *testing.T) {
	srv, calls := flakyServer(t, 100, `{}`)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	resp := newClient("k").Get(ctx, srv.URL, nil)

	assert.True(t, resp.Degraded())
	assert.Less(t, atomic.LoadInt32(calls), int32(4))
}

func TestClientGet_ZeroRetries(t *testing.T) {
	srv, calls := flakyServer(t, 1, `{"ok":true}`)

	c := appcenter.NewClient(appcenter.ClientOptions{APIKey: "k", MaxRetries: 0})
	resp := c.Get(context.Background(), srv.URL, nil)

	assert.True(t, resp.Degraded())
	assert.Equal(t, int32(1), atomic.LoadInt32(calls))
}

func TestExpand(t *testing.T) {
	got := appcenter.Expand(appcenter.PathErrorGroupErrors, map[string]string{
		"org":          "my-org",
		"app":          "my app",
		"errorGroupId": "g-1",
	})
	assert.Equal(t, "/v0.1/apps/my-org/my%20app/errors/errorGroups/g-1/errors", got)

	partial := appcenter.Expand(appcenter.PathErrorGroups, map[string]string{"org": "o"})
	assert.Equal(t, "/v0.1/apps/o/{app}/errors/errorGroups", partial)
}

func TestDecodeRoot(t *testing.T) {
	type item struct {
		ID string `json:"id"`
	}

	items, err := appcenter.DecodeRoot[item]([]byte(`{"events":[{"id":"a"},{"id":"b"}]}`), "events")
	require.NoError(t, err)
	assert.Equal(t, []item{{ID: "a"}, {ID: "b"}}, items)

	items, err = appcenter.DecodeRoot[item](appcenter.EmptyBody, "events")
	require.NoError(t, err)
	assert.Empty(t, items)

	items, err = appcenter.DecodeRoot[item]([]byte(`{"events":null}`), "events")
	require.NoError(t, err)
	assert.Empty(t, items)

	_, err = appcenter.DecodeRoot[item]([]byte(`{"events":"nope"}`), "events")
	assert.Error(t, err)
}

func TestDecodeList(t *testing.T) {
	type org struct {
		Name string `json:"name"`
	}

	orgs, err := appcenter.DecodeList[org]([]byte(` [{"name":"a"}]`))
	require.NoError(t, err)
	assert.Equal(t, []org{{Name: "a"}}, orgs)

	orgs, err = appcenter.DecodeList[org](appcenter.EmptyBody)
	require.NoError(t, err)
	assert.Empty(t, orgs)
}

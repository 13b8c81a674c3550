package http

import (
	"encoding/json"
	nethttp "net/http"
	"testing"

	"football-stats-service/internal/app/stats"
	"football-stats-service/internal/http/handlers"
	"football-stats-service/internal/testutil"
)

func newRouterForTest() nethttp.Handler {
	provider := &testutil.StubProvider{
		PlayerBody:     json.RawMessage(`{}`),
		TopScorersBody: json.RawMessage(`{}`),
	}
	handler := handlers.NewHandler(stats.NewService(provider), nil, "1.0.0")
	return NewRouter(handler)
}

func TestRouterRoutes(t *testing.T) {
	router := newRouterForTest()

	cases := []struct {
		method string
		path   string
		want   int
	}{
		{nethttp.MethodGet, "/", nethttp.StatusOK},
		{nethttp.MethodGet, "/health", nethttp.StatusOK},
		{nethttp.MethodGet, "/player/276", nethttp.StatusOK},
		{nethttp.MethodGet, "/topscorers/39", nethttp.StatusOK},
		{nethttp.MethodGet, "/nope", nethttp.StatusNotFound},
		{nethttp.MethodPost, "/health", nethttp.StatusMethodNotAllowed},
		{nethttp.MethodDelete, "/player/276", nethttp.StatusMethodNotAllowed},
	}

	for _, tc := range cases {
		rr := testutil.Serve(router, tc.method, tc.path, nil)
		if rr.Code != tc.want {
			t.Fatalf("%s %s: expected %d, got %d", tc.method, tc.path, tc.want, rr.Code)
		}
	}
}

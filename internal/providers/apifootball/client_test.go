package apifootball

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"strings"
	"testing"

	"football-stats-service/internal/domain"
	"football-stats-service/internal/providers"
)

type roundTripperFunc func(req *http.Request) (*http.Response, error)

func (f roundTripperFunc) RoundTrip(req *http.Request) (*http.Response, error) {
	return f(req)
}

func newTestClient(rt roundTripperFunc) *Client {
	return NewClient(Config{
		BaseURL:    "http://example.com/v3",
		Host:       "example.com",
		APIKey:     "secret",
		HTTPClient: &http.Client{Transport: rt},
	})
}

func TestPlayerStatsSendsHeadersAndParams(t *testing.T) {
	var captured *http.Request
	upstream := `{"get":"players","response":[{"player":{"id":276}}]}`

	client := newTestClient(func(req *http.Request) (*http.Response, error) {
		captured = req
		return &http.Response{
			StatusCode: http.StatusOK,
			Body:       io.NopCloser(strings.NewReader(upstream)),
			Header:     make(http.Header),
		}, nil
	})

	body, err := client.PlayerStats(context.Background(), domain.PlayerQuery{PlayerID: 276, Season: 2022})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if captured.URL.Path != "/v3/players" {
		t.Fatalf("expected /v3/players path, got %s", captured.URL.Path)
	}
	if got := captured.Header.Get("x-rapidapi-key"); got != "secret" {
		t.Fatalf("expected api key header, got %q", got)
	}
	if got := captured.Header.Get("x-rapidapi-host"); got != "example.com" {
		t.Fatalf("expected host header, got %q", got)
	}

	q, err := url.ParseQuery(captured.URL.RawQuery)
	if err != nil {
		t.Fatalf("failed parsing query: %v", err)
	}
	if q.Get("id") != "276" {
		t.Fatalf("expected id=276, got %s", q.Get("id"))
	}
	if q.Get("season") != "2022" {
		t.Fatalf("expected season=2022, got %s", q.Get("season"))
	}

	if string(body) != upstream {
		t.Fatalf("expected body passed through unchanged, got %s", body)
	}
}

func TestPlayerStatsDefaultsSeason(t *testing.T) {
	var captured *http.Request

	client := newTestClient(func(req *http.Request) (*http.Response, error) {
		captured = req
		return &http.Response{
			StatusCode: http.StatusOK,
			Body:       io.NopCloser(strings.NewReader(`{}`)),
			Header:     make(http.Header),
		}, nil
	})

	if _, err := client.PlayerStats(context.Background(), domain.PlayerQuery{PlayerID: 10}); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if got := captured.URL.Query().Get("season"); got != "2023" {
		t.Fatalf("expected default season 2023, got %s", got)
	}
}

func TestTopScorersSendsLeagueAndSeason(t *testing.T) {
	var captured *http.Request

	client := newTestClient(func(req *http.Request) (*http.Response, error) {
		captured = req
		return &http.Response{
			StatusCode: http.StatusOK,
			Body:       io.NopCloser(strings.NewReader(`{}`)),
			Header:     make(http.Header),
		}, nil
	})

	if _, err := client.TopScorers(context.Background(), domain.TopScorersQuery{}); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if captured.URL.Path != "/v3/players/topscorers" {
		t.Fatalf("expected topscorers path, got %s", captured.URL.Path)
	}
	if got := captured.URL.Query().Get("league"); got != "39" {
		t.Fatalf("expected default league 39, got %s", got)
	}
	if got := captured.URL.Query().Get("season"); got != "2023" {
		t.Fatalf("expected default season 2023, got %s", got)
	}
}

func TestNon200BecomesUpstreamError(t *testing.T) {
	client := newTestClient(func(req *http.Request) (*http.Response, error) {
		return &http.Response{
			StatusCode: http.StatusForbidden,
			Body:       io.NopCloser(strings.NewReader(`{"message":"You are not subscribed to this API."}`)),
			Header:     make(http.Header),
		}, nil
	})

	_, err := client.PlayerStats(context.Background(), domain.PlayerQuery{PlayerID: 1})
	if err == nil {
		t.Fatal("expected error on 403")
	}

	upErr, ok := providers.AsUpstreamError(err)
	if !ok {
		t.Fatalf("expected UpstreamError, got %T", err)
	}
	if upErr.StatusCode != http.StatusForbidden {
		t.Fatalf("expected status 403, got %d", upErr.StatusCode)
	}
	if !strings.Contains(upErr.Message, "not subscribed") {
		t.Fatalf("expected upstream message preserved, got %q", upErr.Message)
	}
}

func TestErrorBodyIsCapped(t *testing.T) {
	huge := strings.Repeat("x", maxErrorBodyBytes*4)

	client := newTestClient(func(req *http.Request) (*http.Response, error) {
		return &http.Response{
			StatusCode: http.StatusInternalServerError,
			Body:       io.NopCloser(strings.NewReader(huge)),
			Header:     make(http.Header),
		}, nil
	})

	_, err := client.PlayerStats(context.Background(), domain.PlayerQuery{PlayerID: 1})
	upErr, ok := providers.AsUpstreamError(err)
	if !ok {
		t.Fatalf("expected UpstreamError, got %v", err)
	}
	if len(upErr.Message) > maxErrorBodyBytes {
		t.Fatalf("expected capped message, got %d bytes", len(upErr.Message))
	}
}

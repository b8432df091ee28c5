package routing

import (
	"context"
	"errors"
	"heavy-haul-service/internal/domain"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"
)

type memoryRouteCache struct {
	m    map[string][]domain.StateMileage
	sets int
}

func (c *memoryRouteCache) Get(ctx context.Context, origin, destination string) ([]domain.StateMileage, bool, error) {
	legs, ok := c.m[origin+"|"+destination]
	return legs, ok, nil
}

func (c *memoryRouteCache) Set(ctx context.Context, origin, destination string, legs []domain.StateMileage) error {
	if c.m == nil {
		c.m = map[string][]domain.StateMileage{}
	}
	c.m[origin+"|"+destination] = legs
	c.sets++
	return nil
}

func newTestProvider(t *testing.T, url string, cache *memoryRouteCache) *HTTPRouteProvider {
	t.Helper()
	p, err := NewHTTPRouteProvider(url, "test-key", nil)
	if err != nil {
		t.Fatalf("new provider: %v", err)
	}
	// Assigned only when set so the interface never holds a typed nil.
	if cache != nil {
		p.cache = cache
	}
	p.retry = retryPolicy{attempts: 4, backoff: time.Millisecond}
	return p
}

const houstonToTulsa = `{"legs":[{"state":"tx","miles":310.5},{"state":"OK","miles":170}]}`

func TestHTTPRouteProviderGetStateMileage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/v1/state-mileage" {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		if r.Header.Get("Authorization") != "test-key" {
			t.Errorf("authorization = %q", r.Header.Get("Authorization"))
		}
		w.Write([]byte(houstonToTulsa))
	}))
	defer srv.Close()

	cache := &memoryRouteCache{}
	p := newTestProvider(t, srv.URL, cache)

	legs, err := p.GetStateMileage(context.Background(), "Houston,  TX", "Tulsa, OK")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(legs) != 2 || legs[0].StateCode != "TX" || legs[0].Miles != 310.5 {
		t.Fatalf("legs = %+v", legs)
	}
	if cache.sets != 1 {
		t.Fatalf("cache sets = %d, want 1", cache.sets)
	}
	if _, ok := cache.m["Houston, TX|Tulsa, OK"]; !ok {
		t.Fatalf("expected normalized cache key, have %v", cache.m)
	}
}

func TestHTTPRouteProviderUsesCache(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.Write([]byte(houstonToTulsa))
	}))
	defer srv.Close()

	cache := &memoryRouteCache{m: map[string][]domain.StateMileage{
		"A|B": {{StateCode: "TX", Miles: 10}},
	}}
	p := newTestProvider(t, srv.URL, cache)

	legs, err := p.GetStateMileage(context.Background(), "A", "B")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(legs) != 1 || calls.Load() != 0 {
		t.Fatalf("legs = %+v calls = %d, want cache hit", legs, calls.Load())
	}
}

func TestHTTPRouteProviderRetriesTransientErrors(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) < 3 {
			http.Error(w, "busy", http.StatusServiceUnavailable)
			return
		}
		w.Write([]byte(houstonToTulsa))
	}))
	defer srv.Close()

	p := newTestProvider(t, srv.URL, nil)

	if _, err := p.GetStateMileage(context.Background(), "A", "B"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if calls.Load() != 3 {
		t.Fatalf("calls = %d, want 3", calls.Load())
	}
}

func TestHTTPRouteProviderDoesNotRetryClientErrors(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		http.Error(w, "bad address", http.StatusBadRequest)
	}))
	defer srv.Close()

	p := newTestProvider(t, srv.URL, nil)

	_, err := p.GetStateMileage(context.Background(), "A", "B")
	var se *StatusError
	if !errors.As(err, &se) || se.Status != http.StatusBadRequest {
		t.Fatalf("err = %v, want 400 status error", err)
	}
	if calls.Load() != 1 {
		t.Fatalf("calls = %d, want 1", calls.Load())
	}
}

func TestRetryPolicyRun(t *testing.T) {
	busy := &StatusError{Status: http.StatusServiceUnavailable, Body: "busy"}

	cases := []struct {
		name      string
		failures  int
		failWith  error
		wantCalls int
		wantErr   bool
	}{
		{"first try", 0, nil, 1, false},
		{"recovers", 2, busy, 3, false},
		{"gives up", 10, busy, 3, true},
		{"permanent", 10, &StatusError{Status: http.StatusNotFound}, 1, true},
		{"canceled", 10, context.Canceled, 1, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rp := retryPolicy{attempts: 3, backoff: time.Millisecond}
			calls := 0
			_, err := rp.run(context.Background(), func(ctx context.Context) (*http.Response, error) {
				calls++
				if calls <= tc.failures {
					return nil, tc.failWith
				}
				return &http.Response{StatusCode: http.StatusOK, Body: http.NoBody}, nil
			})
			if (err != nil) != tc.wantErr {
				t.Fatalf("err = %v, want error %v", err, tc.wantErr)
			}
			if calls != tc.wantCalls {
				t.Fatalf("calls = %d, want %d", calls, tc.wantCalls)
			}
		})
	}
}

func TestRetryPolicyStopsOnCanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	rp := retryPolicy{attempts: 5, backoff: time.Hour}

	calls := 0
	_, err := rp.run(ctx, func(ctx context.Context) (*http.Response, error) {
		calls++
		cancel()
		return nil, &StatusError{Status: http.StatusBadGateway}
	})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("err = %v, want context.Canceled", err)
	}
	if calls != 1 {
		t.Fatalf("calls = %d, want 1", calls)
	}
}

func TestHTTPRouteProviderEmptyRoute(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"legs":[]}`))
	}))
	defer srv.Close()

	p := newTestProvider(t, srv.URL, nil)

	if _, err := p.GetStateMileage(context.Background(), "A", "B"); !errors.Is(err, domain.ErrEmptyRoute) {
		t.Fatalf("err = %v, want ErrEmptyRoute", err)
	}
}

func TestMockRouteProvider(t *testing.T) {
	p := NewMockRouteProvider([]MockRoute{{From: "A", To: "B", Legs: []domain.StateMileage{{StateCode: "TX", Miles: 5}}}})

	if _, err := p.GetStateMileage(context.Background(), "A", "B"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := p.GetStateMileage(context.Background(), "B", "A"); err == nil {
		t.Fatalf("expected error for unknown route")
	}
}

package routing

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"heavy-haul-service/internal/domain"
	"heavy-haul-service/internal/platform/obs"
	"heavy-haul-service/internal/ports"
	"log"
	"net/http"
	"strings"
	"time"
)

// HTTPRouteProvider implements RouteProvider against a routing service that
// breaks a trip down by state (POST {baseURL}/v1/state-mileage).
//
// Resolved routes are written to an optional persistent cache, and transient
// upstream failures are retried with backoff. The provider is safe for
// concurrent use.
type HTTPRouteProvider struct {
	client  *http.Client
	apiKey  string
	baseURL string
	cache   ports.RouteMileageCache
	retry   retryPolicy
}

func NewHTTPRouteProvider(
	baseURL string,
	apiKey string,
	cache ports.RouteMileageCache,
) (*HTTPRouteProvider, error) {
	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if baseURL == "" {
		return nil, errors.New("route service base url is empty")
	}

	return &HTTPRouteProvider{
		client:  &http.Client{Timeout: 10 * time.Second},
		apiKey:  apiKey,
		baseURL: baseURL,
		cache:   cache,
		retry:   defaultRetryPolicy,
	}, nil
}

type stateMileageRequest struct {
	Origin      string `json:"origin"`
	Destination string `json:"destination"`
}

type stateMileageResponse struct {
	Legs []struct {
		State string  `json:"state"`
		Miles float64 `json:"miles"`
	} `json:"legs"`
}

// normalize ensures consistent cache keys by collapsing whitespace.
func normalize(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

func (p *HTTPRouteProvider) GetStateMileage(
	ctx context.Context,
	origin string,
	destination string,
) (_ []domain.StateMileage, err error) {
	defer obs.Time(ctx, "route.GetStateMileage")(&err)

	normOrigin := normalize(origin)
	if normOrigin == "" {
		return nil, errors.New("origin must be non-empty")
	}
	normDestination := normalize(destination)
	if normDestination == "" {
		return nil, errors.New("destination must be non-empty")
	}

	// Check persistent route cache before calling the routing service.
	if p.cache != nil {
		legs, ok, err := p.cache.Get(ctx, normOrigin, normDestination)
		if err != nil {
			return nil, fmt.Errorf("get route cache: %w", err)
		}
		if ok {
			return legs, nil
		}
	}

	body, err := json.Marshal(stateMileageRequest{Origin: normOrigin, Destination: normDestination})
	if err != nil {
		return nil, fmt.Errorf("marshal state mileage request: %w", err)
	}

	resp, err := p.retry.run(ctx, func(ctx context.Context) (*http.Response, error) {
		return p.post(ctx, "/v1/state-mileage", body)
	})
	if err != nil {
		return nil, fmt.Errorf("state mileage %q -> %q: %w", normOrigin, normDestination, err)
	}
	defer resp.Body.Close()

	var parsed stateMileageResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("decode state mileage response: %w", err)
	}

	legs := make([]domain.StateMileage, 0, len(parsed.Legs))
	for i, l := range parsed.Legs {
		code := strings.ToUpper(strings.TrimSpace(l.State))
		if code == "" || l.Miles < 0 {
			return nil, fmt.Errorf("state mileage response: invalid leg #%d (%q, %v)", i+1, l.State, l.Miles)
		}
		legs = append(legs, domain.StateMileage{StateCode: code, Miles: l.Miles})
	}
	if len(legs) == 0 {
		return nil, fmt.Errorf("state mileage %q -> %q: %w", normOrigin, normDestination, domain.ErrEmptyRoute)
	}

	if p.cache != nil {
		if err := p.cache.Set(ctx, normOrigin, normDestination, legs); err != nil {
			log.Printf("route cache write failed: %v", err)
		}
	}

	return legs, nil
}

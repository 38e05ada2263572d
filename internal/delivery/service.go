package delivery

import (
	"context"
	"fmt"
	"math"
	"strings"
	"sync"
	"time"

	"github.com/freemanindumentaria/storefront-backend/pkg/maps"

	pkgerrors "github.com/freemanindumentaria/storefront-backend/pkg/errors"
	"github.com/freemanindumentaria/storefront-backend/pkg/metrics"
)

// Fee tiers by rounded distance, inclusive upper bounds, in pesos.
const (
	tier1MaxKM = 3
	tier2MaxKM = 6
	tier3MaxKM = 10

	tier1Fee = 1000
	tier2Fee = 2000
	tier3Fee = 3000
)

// Geocoder resolves a free-text address into candidate coordinates.
type Geocoder interface {
	Geocode(ctx context.Context, address string) ([]maps.Candidate, error)
}

// Quote is a successful delivery estimate. DistanceKM is rounded to one
// decimal; the fee tier is applied to the rounded value so the two always
// agree.
type Quote struct {
	Destination string  `json:"destination"`
	DistanceKM  float64 `json:"distance_km"`
	Fee         int     `json:"fee"`
}

// Service computes delivery quotes from the shop's fixed origin.
type Service interface {
	Quote(ctx context.Context, sessionID, destination string) (Quote, error)
}

type service struct {
	geocoder Geocoder
	origin   string
	metrics  *metrics.StorefrontMetrics
	inflight sync.Map // sessionID -> struct{}
}

// NewService builds the estimator. A nil geocoder is tolerated (the API key
// may be unset); quotes then fail as missing input, not at startup.
func NewService(geocoder Geocoder, originAddress string, m *metrics.StorefrontMetrics) (Service, error) {
	if strings.TrimSpace(originAddress) == "" {
		return nil, fmt.Errorf("origin address required")
	}
	return &service{geocoder: geocoder, origin: originAddress, metrics: m}, nil
}

// Quote geocodes the origin and then the destination, strictly in that order,
// and maps the great-circle distance to a fee tier. It never retries and
// never caches; every call issues both geocoding requests.
func (s *service) Quote(ctx context.Context, sessionID, destination string) (Quote, error) {
	start := time.Now()
	quote, err := s.quote(ctx, sessionID, destination)
	s.observe(err, time.Since(start))
	return quote, err
}

func (s *service) quote(ctx context.Context, sessionID, destination string) (Quote, error) {
	destination = strings.TrimSpace(destination)
	if destination == "" {
		return Quote{}, pkgerrors.New(pkgerrors.CodeValidation, "destination address is required")
	}
	if s.geocoder == nil {
		return Quote{}, pkgerrors.New(pkgerrors.CodeValidation, "geocoding credential is not configured")
	}

	// One estimate per session at a time; a second press while one is in
	// flight is rejected, not queued.
	if _, busy := s.inflight.LoadOrStore(sessionID, struct{}{}); busy {
		return Quote{}, pkgerrors.New(pkgerrors.CodeValidation, "an estimate is already in progress")
	}
	defer s.inflight.Delete(sessionID)

	originCandidates, err := s.geocoder.Geocode(ctx, s.origin)
	if err != nil {
		return Quote{}, err
	}
	if len(originCandidates) == 0 {
		// The origin is fixed configuration; failing to resolve it is an
		// operator problem, not a user one.
		return Quote{}, pkgerrors.New(pkgerrors.CodeInternal, "origin address could not be resolved")
	}

	destCandidates, err := s.geocoder.Geocode(ctx, destination)
	if err != nil {
		return Quote{}, err
	}
	if len(destCandidates) == 0 {
		return Quote{}, pkgerrors.New(pkgerrors.CodeNotFound, "destination address not found, check it and try again")
	}

	origin := originCandidates[0]
	dest := destCandidates[0]

	km := math.Round(distanceKM(origin.Location, dest.Location)*10) / 10

	fee, ok := feeFor(km)
	if !ok {
		return Quote{}, pkgerrors.New(pkgerrors.CodeOutOfRange, fmt.Sprintf("out of service range: %.1f km", km)).
			WithDetails(map[string]any{"distance_km": km, "max_km": tier3MaxKM})
	}

	resolved := dest.FormattedAddress
	if resolved == "" {
		resolved = destination
	}

	return Quote{Destination: resolved, DistanceKM: km, Fee: fee}, nil
}

func feeFor(km float64) (int, bool) {
	switch {
	case km <= tier1MaxKM:
		return tier1Fee, true
	case km <= tier2MaxKM:
		return tier2Fee, true
	case km <= tier3MaxKM:
		return tier3Fee, true
	default:
		return 0, false
	}
}

func (s *service) observe(err error, duration time.Duration) {
	outcome := "ok"
	if typed := pkgerrors.As(err); typed != nil {
		switch typed.Code() {
		case pkgerrors.CodeValidation:
			outcome = "validation"
		case pkgerrors.CodeNotFound:
			outcome = "not_found"
		case pkgerrors.CodeOutOfRange:
			outcome = "out_of_range"
		case pkgerrors.CodeDependency:
			outcome = "dependency"
		default:
			outcome = "internal"
		}
	} else if err != nil {
		outcome = "internal"
	}
	s.metrics.ObserveQuote(outcome, duration)
}

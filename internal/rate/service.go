package rate

import (
	"context"
	"fxconverter/internal/adapters"
	"fxconverter/internal/domain"
	"fxconverter/internal/platform/metrics"
	"maps"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/singleflight"
)

const defaultGeoTimeout = 3 * time.Second

type Service struct {
	store      *Store
	geo        adapters.GeoLocator
	geoCache   adapters.GeoCache
	names      map[string]string // read only
	metrics    *metrics.Metrics
	geoTimeout time.Duration
	// -----
	lookups singleflight.Group
}

// Snapshot returns the active snapshot or domain.ErrStoreUninitialized.
func (s *Service) Snapshot() (*domain.Snapshot, error) {
	snapshot, ok := s.store.Snapshot()
	if !ok {
		return nil, domain.ErrStoreUninitialized
	}
	return snapshot, nil
}

// Convert normalizes both codes and converts amount against the active snapshot.
func (s *Service) Convert(amount float64, from, to string) (Conversion, error) {
	from = NormalizeCode(from)
	to = NormalizeCode(to)

	snapshot, err := s.Snapshot()
	if err != nil {
		return Conversion{}, err
	}

	result, err := Convert(amount, from, to, snapshot.Base(), pairRates(snapshot, from, to))
	if err != nil {
		return Conversion{}, err
	}
	s.metrics.IncConversion(from, to)

	return Conversion{
		From:   from,
		Amount: amount,
		To:     to,
		Result: result,
		Date:   snapshot.Date(),
	}, nil
}

// DetectCurrency guesses the caller's currency from its IP address. It never fails:
// geolocation problems fall back to the default country.
func (s *Service) DetectCurrency(ctx context.Context, ip string) Detection {
	currency := DetectCurrency(s.resolveCountry(ctx, ip))

	snapshot, ok := s.store.Snapshot()
	if !ok {
		return Detection{Currency: currency, Available: false}
	}
	return Detection{
		Currency:        currency,
		Available:       snapshot.Has(currency),
		SuggestedTarget: SuggestedTarget,
		AllCurrencies:   snapshot.Codes(),
		Loaded:          true,
	}
}

// Currencies lists the snapshot's codes with their display names.
func (s *Service) Currencies() (CurrencyList, error) {
	snapshot, err := s.Snapshot()
	if err != nil {
		return CurrencyList{}, err
	}

	codes := snapshot.Codes()
	currencies := make([]domain.Currency, 0, len(codes))
	for _, code := range codes {
		name, ok := s.names[code]
		if !ok || name == "" {
			name = code
		}
		currencies = append(currencies, domain.Currency{Code: code, Name: name})
	}
	return CurrencyList{Base: snapshot.Base(), Date: snapshot.Date(), Currencies: currencies}, nil
}

func (s *Service) resolveCountry(ctx context.Context, ip string) string {
	if ip == "" {
		s.metrics.IncGeoLookup(metrics.GeoResultFallback)
		return DefaultCountryCode
	}
	if code, ok := s.geoCache.Get(ip); ok {
		s.metrics.IncGeoLookup(metrics.GeoResultCached)
		return code
	}

	// Concurrent requests from the same address share one upstream call.
	v, err, _ := s.lookups.Do(ip, func() (any, error) {
		// Followers share this call, so one caller going away must not cancel it.
		lookupCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.geoTimeout)
		defer cancel()
		code, lookupErr := s.geo.CountryCode(lookupCtx, ip)
		if lookupErr != nil {
			return "", lookupErr
		}
		s.geoCache.Set(ip, code)
		return code, nil
	})
	if err != nil {
		logrus.WithError(err).WithField("ip", ip).Debug("Geolocation failed, using default country")
		s.metrics.IncGeoLookup(metrics.GeoResultFallback)
		return DefaultCountryCode
	}

	s.metrics.IncGeoLookup(metrics.GeoResultOK)
	return v.(string)
}

// pairRates returns the snapshot rates of codes and of the base, skipping unknown codes.
func pairRates(snapshot *domain.Snapshot, codes ...string) map[string]float64 {
	rates := make(map[string]float64, len(codes)+1)
	for _, code := range append(codes, snapshot.Base()) {
		if r, ok := snapshot.Rate(code); ok {
			rates[code] = r
		}
	}
	return rates
}

func NormalizeCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

func NewService(
	store *Store,
	geo adapters.GeoLocator,
	geoCache adapters.GeoCache,
	names map[string]string,
	m *metrics.Metrics,
	geoTimeout time.Duration,
) *Service {
	if geoTimeout <= 0 {
		geoTimeout = defaultGeoTimeout
	}
	return &Service{
		store:      store,
		geo:        geo,
		geoCache:   geoCache,
		names:      maps.Clone(names),
		metrics:    m,
		geoTimeout: geoTimeout,
	}
}

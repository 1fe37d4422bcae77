package adapters

import (
	"context"
	"fxconverter/internal/domain"
)

type RateClient interface {
	GetLatestRates(ctx context.Context, base string) (*domain.Snapshot, error)
}

type GeoLocator interface {
	CountryCode(ctx context.Context, ip string) (string, error)
}

type GeoCache interface {
	Get(ip string) (string, bool)
	Set(ip string, countryCode string)
}

type CurrencyRepository interface {
	List(ctx context.Context) ([]domain.Currency, error)
}

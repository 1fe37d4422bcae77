package rate

import (
	"context"
	"fmt"
	"fxconverter/internal/adapters"
	"fxconverter/internal/domain"
	"fxconverter/internal/platform/metrics"
	"strings"

	"github.com/sirupsen/logrus"
)

// Loader fetches a fresh snapshot from the provider and publishes it to the store.
type Loader struct {
	client  adapters.RateClient
	store   *Store
	base    string
	metrics *metrics.Metrics
}

func (l *Loader) Load(ctx context.Context) (*domain.Snapshot, error) {
	snapshot, err := l.client.GetLatestRates(ctx, l.base)
	if err != nil {
		l.metrics.IncRefresh(metrics.RefreshError)
		return nil, fmt.Errorf("failed to load rates for base %q: %w", l.base, err)
	}

	l.store.Replace(snapshot)
	l.metrics.IncRefresh(metrics.RefreshSuccess)
	l.metrics.SetCurrencies(snapshot.Len())
	logrus.WithFields(logrus.Fields{
		"base":       snapshot.Base(),
		"date":       snapshot.Date(),
		"currencies": snapshot.Len(),
	}).Info("Rates snapshot loaded")
	return snapshot, nil
}

func NewLoader(client adapters.RateClient, store *Store, base string, m *metrics.Metrics) *Loader {
	return &Loader{
		client:  client,
		store:   store,
		base:    strings.ToUpper(strings.TrimSpace(base)),
		metrics: m,
	}
}

package memory

import (
	"context"
	"fxconverter/internal/domain"
	"slices"
	"strings"
)

var defaultCurrencies = []domain.Currency{
	{Code: "AED", Name: "UAE Dirham"},
	{Code: "AUD", Name: "Australian Dollar"},
	{Code: "BRL", Name: "Brazilian Real"},
	{Code: "CAD", Name: "Canadian Dollar"},
	{Code: "CHF", Name: "Swiss Franc"},
	{Code: "CNY", Name: "Chinese Yuan"},
	{Code: "DKK", Name: "Danish Krone"},
	{Code: "EUR", Name: "Euro"},
	{Code: "GBP", Name: "British Pound"},
	{Code: "HKD", Name: "Hong Kong Dollar"},
	{Code: "IDR", Name: "Indonesian Rupiah"},
	{Code: "INR", Name: "Indian Rupee"},
	{Code: "JPY", Name: "Japanese Yen"},
	{Code: "KRW", Name: "South Korean Won"},
	{Code: "MXN", Name: "Mexican Peso"},
	{Code: "MYR", Name: "Malaysian Ringgit"},
	{Code: "NOK", Name: "Norwegian Krone"},
	{Code: "NZD", Name: "New Zealand Dollar"},
	{Code: "PHP", Name: "Philippine Peso"},
	{Code: "RUB", Name: "Russian Ruble"},
	{Code: "SAR", Name: "Saudi Riyal"},
	{Code: "SEK", Name: "Swedish Krona"},
	{Code: "SGD", Name: "Singapore Dollar"},
	{Code: "THB", Name: "Thai Baht"},
	{Code: "TRY", Name: "Turkish Lira"},
	{Code: "USD", Name: "US Dollar"},
	{Code: "VND", Name: "Vietnamese Dong"},
	{Code: "ZAR", Name: "South African Rand"},
}

// CurrencyRepository serves the built-in catalog when no database is configured.
type CurrencyRepository struct {
	currencies []domain.Currency
}

func (r *CurrencyRepository) List(_ context.Context) ([]domain.Currency, error) {
	return slices.Clone(r.currencies), nil
}

func NewCurrencyRepository() *CurrencyRepository {
	currencies := slices.Clone(defaultCurrencies)
	slices.SortFunc(currencies, func(a, b domain.Currency) int { return strings.Compare(a.Code, b.Code) })
	return &CurrencyRepository{currencies: currencies}
}

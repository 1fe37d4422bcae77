package rate

import "fxconverter/internal/domain"

type Conversion struct {
	From   string
	Amount float64
	To     string
	Result float64
	Date   string
}

type Detection struct {
	Currency        string
	Available       bool
	SuggestedTarget string
	AllCurrencies   []string
	// Loaded is false when the store was empty; AllCurrencies is nil then.
	Loaded bool
}

type CurrencyList struct {
	Base       string
	Date       string
	Currencies []domain.Currency
}

package rate

const (
	DefaultCountryCode = "US"
	DefaultCurrency    = "USD"
	SuggestedTarget    = "USD"
)

var currencyByCountry = map[string]string{
	"MY": "MYR",
	"US": "USD",
	"GB": "GBP",
	"EU": "EUR",
	"DE": "EUR",
	"FR": "EUR",
	"IT": "EUR",
	"ES": "EUR",
	"JP": "JPY",
	"CN": "CNY",
	"SG": "SGD",
	"AU": "AUD",
	"CA": "CAD",
	"IN": "INR",
}

// DetectCurrency maps an ISO 3166 alpha-2 country code to its currency.
// Lookup is case-sensitive; anything unknown maps to USD.
func DetectCurrency(countryCode string) string {
	if currency, ok := currencyByCountry[countryCode]; ok {
		return currency
	}
	return DefaultCurrency
}

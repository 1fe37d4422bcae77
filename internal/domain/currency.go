package domain

// Currency is a catalog entry used for display purposes.
type Currency struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

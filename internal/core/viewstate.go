package core

// Sort keys for the grid view.
const (
	SortPriceLow  = "priceLow"
	SortPriceHigh = "priceHigh"
	SortName      = "name"
)

// Display currencies.
const (
	CurrencyUSD = "USD"
	CurrencyLBP = "LBP"
)

// FacetAll is the wildcard option for every filterable facet.
const FacetAll = "All"

// ViewState is the full user-chosen filter/sort/selection state. It is a
// plain serializable value so every view derivation stays a pure function
// of (snapshot, state) with no ambient globals.
type ViewState struct {
	Search   string `json:"search"`
	SortBy   string `json:"sortBy"`
	Duration string `json:"duration"`
	Category string `json:"category"`
	Currency string `json:"currency"`
	// Service pre-selects a detail view; it may be a record id or a
	// case-insensitive exact service name (shareable link convention).
	Service  string `json:"service"`
	PlanType string `json:"planType"`
}

// Normalize fills wildcard defaults for blank facets.
func (s ViewState) Normalize() ViewState {
	if s.SortBy == "" {
		s.SortBy = SortPriceLow
	}
	if s.Duration == "" {
		s.Duration = FacetAll
	}
	if s.Category == "" {
		s.Category = FacetAll
	}
	if s.Currency == "" {
		s.Currency = CurrencyUSD
	}
	if s.PlanType == "" {
		s.PlanType = FacetAll
	}
	return s
}

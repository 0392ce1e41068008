package handler

import (
	"net/url"

	domain "github.com/AdamAbdallah1/cedarstech-pricelist/internal/core"
)

// viewStateFromQuery decodes the serializable view state from query
// parameters. Absent facets normalize to their wildcard defaults.
func viewStateFromQuery(q url.Values) domain.ViewState {
	return domain.ViewState{
		Search:   q.Get("search"),
		SortBy:   q.Get("sort"),
		Duration: q.Get("duration"),
		Category: q.Get("category"),
		Currency: q.Get("currency"),
		Service:  q.Get("service"),
		PlanType: q.Get("type"),
	}.Normalize()
}

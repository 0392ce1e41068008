// Package catalog holds the live service snapshot and the pure view
// derivations over it: the filtered/sorted grid, the selected-service
// detail projection, profit aggregation and the CSV export. Every
// derivation is a pure function of (snapshot, view state); inputs are
// never mutated.
package catalog

import (
	"sort"
	"strconv"
	"strings"

	domain "github.com/AdamAbdallah1/cedarstech-pricelist/internal/core"

	"github.com/dustin/go-humanize"
)

// GridOptions tweaks the grid filter for the two catalog surfaces.
type GridOptions struct {
	// KeepUnnamed keeps services whose name is still empty, so a freshly
	// created row stays visible in the admin grid while it is edited.
	KeepUnnamed bool
}

// Grid computes the storefront list view: per-plan search filtering,
// duration facet, in-service plan sort and category facet, preserving
// the snapshot's service order.
func Grid(snapshot []domain.Service, state domain.ViewState) []domain.Service {
	return GridWith(snapshot, state, GridOptions{})
}

// AdminGrid is the back-office variant of Grid.
func AdminGrid(snapshot []domain.Service, state domain.ViewState) []domain.Service {
	return GridWith(snapshot, state, GridOptions{KeepUnnamed: true})
}

// GridWith derives the grid view. The search term is matched per plan:
// a plan survives when the service name OR its own label contains the
// term case-insensitively. A service stays in the result when any plan
// survived, or when its name alone matches the term (so a plan-less
// service is still listed under an empty or name-matching search), and
// its category passes the facet filter.
func GridWith(snapshot []domain.Service, state domain.ViewState, opts GridOptions) []domain.Service {
	state = state.Normalize()
	search := strings.ToLower(state.Search)

	out := make([]domain.Service, 0, len(snapshot))
	for _, svc := range snapshot {
		nameMatch := strings.Contains(strings.ToLower(svc.Name), search)

		plans := make([]domain.Plan, 0, len(svc.Plans))
		for _, p := range svc.Plans {
			if !nameMatch && !strings.Contains(strings.ToLower(p.Label), search) {
				continue
			}
			if state.Duration != domain.FacetAll && p.Duration != state.Duration {
				continue
			}
			plans = append(plans, p)
		}

		sortPlans(plans, state.SortBy)

		// A service with no surviving plans stays listed only on the
		// strength of its name (or, in the admin grid, while unnamed),
		// and only when the duration facet is not narrowing the view.
		keep := len(plans) > 0
		if !keep && state.Duration == domain.FacetAll {
			keep = nameMatch || (opts.KeepUnnamed && svc.Name == "")
		}
		if !keep {
			continue
		}
		if state.Category != domain.FacetAll && svc.Category != state.Category {
			continue
		}

		svc.Plans = plans
		out = append(out, svc)
	}
	return out
}

func sortPlans(plans []domain.Plan, sortBy string) {
	switch sortBy {
	case domain.SortPriceHigh:
		sort.SliceStable(plans, func(i, j int) bool {
			return plans[i].Sell() > plans[j].Sell()
		})
	case domain.SortName:
		sort.SliceStable(plans, func(i, j int) bool {
			return strings.ToLower(plans[i].Label) < strings.ToLower(plans[j].Label)
		})
	default: // priceLow
		sort.SliceStable(plans, func(i, j int) bool {
			return plans[i].Sell() < plans[j].Sell()
		})
	}
}

// Resolve finds a service by record id, or failing that by
// case-insensitive exact name — the shareable link convention.
func Resolve(snapshot []domain.Service, ref string) (domain.Service, bool) {
	if ref == "" {
		return domain.Service{}, false
	}
	for _, svc := range snapshot {
		if svc.ID == ref {
			return svc, true
		}
	}
	for _, svc := range snapshot {
		if strings.EqualFold(svc.Name, ref) {
			return svc, true
		}
	}
	return domain.Service{}, false
}

// Access-type blurbs shown on the detail view. Unrecognized types fall
// back to the Standard description.
var typeDescriptions = map[string]string{
	"Standard": "Subscription activated on your own account.",
	"Private":  "Dedicated account with full private access.",
	"Shared":   "Profile on a shared family account.",
	"Family":   "Family pack covering multiple members.",
}

// TypeDescription returns the human-readable blurb for a plan type.
func TypeDescription(planType string) string {
	if d, ok := typeDescriptions[planType]; ok {
		return d
	}
	return typeDescriptions[domain.DefaultPlanType]
}

// DetailPlan is one plan row of the selected-service projection.
type DetailPlan struct {
	Label       string  `json:"label"`
	Price       string  `json:"price"`
	SellPrice   float64 `json:"sellPrice"`
	Duration    string  `json:"duration,omitempty"`
	Type        string  `json:"type"`
	Description string  `json:"description"`
	InStock     bool    `json:"inStock"`
}

// DetailView is the selected-service projection.
type DetailView struct {
	ID        string       `json:"id"`
	Name      string       `json:"name"`
	Icon      string       `json:"icon"`
	Category  string       `json:"category"`
	Types     []string     `json:"types"`
	Plans     []DetailPlan `json:"plans"`
	UpdatedAt string       `json:"updatedAt"`
}

// Detail projects one service for its detail screen: the subtype facet
// options ("All" + distinct non-blank plan types in first-appearance
// order), the plans matching the chosen subtype, and per-plan display
// price, stock status and type description. rate is the USD→LBP
// multiplier applied when the secondary currency is active.
func Detail(svc domain.Service, state domain.ViewState, rate float64) DetailView {
	state = state.Normalize()

	types := []string{domain.FacetAll}
	seen := map[string]bool{}
	for _, p := range svc.Plans {
		t := strings.TrimSpace(p.Type)
		if t == "" || seen[t] {
			continue
		}
		seen[t] = true
		types = append(types, t)
	}

	plans := make([]DetailPlan, 0, len(svc.Plans))
	for _, p := range svc.Plans {
		if state.PlanType != domain.FacetAll && p.TypeName() != state.PlanType {
			continue
		}
		plans = append(plans, DetailPlan{
			Label:       p.Label,
			Price:       FormatPrice(p.Sell(), state.Currency, rate),
			SellPrice:   p.Sell(),
			Duration:    p.Duration,
			Type:        p.TypeName(),
			Description: TypeDescription(p.TypeName()),
			InStock:     p.Available(),
		})
	}

	return DetailView{
		ID:        svc.ID,
		Name:      svc.Name,
		Icon:      svc.Icon,
		Category:  svc.Category,
		Types:     types,
		Plans:     plans,
		UpdatedAt: svc.UpdatedAt,
	}
}

// FormatPrice renders a sell price for display: converted and
// thousands-separated in the secondary currency, raw with a dollar
// prefix otherwise.
func FormatPrice(sell float64, currency string, rate float64) string {
	if currency == domain.CurrencyLBP {
		return humanize.Commaf(sell*rate) + " LBP"
	}
	return "$" + formatNumber(sell)
}

// PlanReport is the per-plan profit line of the admin aggregation.
type PlanReport struct {
	Label       string  `json:"label"`
	Cost        float64 `json:"cost"`
	Sell        float64 `json:"sell"`
	Profit      float64 `json:"profit"`
	Percent     float64 `json:"profitPercent"`
	PercentText string  `json:"profitPercentText"`
}

// ServiceReport aggregates profit over one service.
type ServiceReport struct {
	ID          string       `json:"id"`
	Name        string       `json:"name"`
	TotalProfit float64      `json:"totalProfit"`
	Plans       []PlanReport `json:"plans"`
}

// Report computes the admin profit aggregation for one service.
func Report(svc domain.Service) ServiceReport {
	r := ServiceReport{
		ID:    svc.ID,
		Name:  svc.Name,
		Plans: make([]PlanReport, 0, len(svc.Plans)),
	}
	for _, p := range svc.Plans {
		r.TotalProfit += p.Profit()
		r.Plans = append(r.Plans, PlanReport{
			Label:       p.Label,
			Cost:        p.Cost(),
			Sell:        p.Sell(),
			Profit:      p.Profit(),
			Percent:     p.ProfitPercent(),
			PercentText: percentText(p) + "%",
		})
	}
	return r
}

// percentText renders profit percent to one decimal place, or "0" when
// the cost price is zero.
func percentText(p domain.Plan) string {
	if p.Cost() == 0 {
		return "0"
	}
	return strconv.FormatFloat(p.ProfitPercent(), 'f', 1, 64)
}

// formatNumber prints a price the way it was entered: no trailing
// zeros, no exponent.
func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

package core

import (
	"strings"

	"github.com/spf13/cast"
)

// DefaultCategory is assigned to services stored without a category.
const DefaultCategory = "Other"

// DefaultPlanType is assumed for plans stored without an access type.
const DefaultPlanType = "Standard"

// Service is one sellable offering with its ordered pricing plans.
type Service struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Icon      string `json:"icon"`
	Category  string `json:"category"`
	Plans     []Plan `json:"plans"`
	UpdatedAt string `json:"updatedAt"`
}

// Plan is one priced tier of a Service. Prices arrive from the document
// store loosely typed (string or number, often blank while an admin is
// still typing), so they are kept as-is and coerced only for arithmetic.
type Plan struct {
	Label     string `json:"label"`
	CostPrice any    `json:"costPrice"`
	SellPrice any    `json:"sellPrice"`
	Duration  string `json:"duration,omitempty"`
	Type      string `json:"type,omitempty"`
	InStock   *bool  `json:"inStock,omitempty"`
}

// Cost returns the numeric cost price. Non-numeric input coerces to 0.
func (p Plan) Cost() float64 {
	v, _ := cast.ToFloat64E(p.CostPrice)
	return v
}

// Sell returns the numeric sell price. Non-numeric input coerces to 0.
func (p Plan) Sell() float64 {
	v, _ := cast.ToFloat64E(p.SellPrice)
	return v
}

// Profit is sell minus cost, negative results included.
func (p Plan) Profit() float64 {
	return p.Sell() - p.Cost()
}

// ProfitPercent is profit relative to cost, or 0 when the cost is zero.
func (p Plan) ProfitPercent() float64 {
	cost := p.Cost()
	if cost == 0 {
		return 0
	}
	return p.Profit() / cost * 100
}

// Available reports stock status. Only an explicit false means out of stock.
func (p Plan) Available() bool {
	return p.InStock == nil || *p.InStock
}

// TypeName returns the plan's access type, defaulting blanks to "Standard".
func (p Plan) TypeName() string {
	if strings.TrimSpace(p.Type) == "" {
		return DefaultPlanType
	}
	return p.Type
}

// TotalProfit sums profit over all plans of the service.
func (s Service) TotalProfit() float64 {
	var total float64
	for _, p := range s.Plans {
		total += p.Profit()
	}
	return total
}

package service

import (
	"errors"
	"fmt"

	domain "github.com/AdamAbdallah1/cedarstech-pricelist/internal/core"

	"github.com/spf13/cast"
)

// ErrPlanIndex is returned when a plan mutation addresses a position
// outside the current sequence. The gateway guards this here because
// the document store itself has no notion of the index.
var ErrPlanIndex = errors.New("plan index out of range")

// ErrUnknownPlanField is returned for plan fields outside the schema.
var ErrUnknownPlanField = errors.New("unknown plan field")

// AppendBlankPlan returns a copy of the sequence with a new blank plan
// appended, mirroring how a fresh row appears in the admin editor.
func AppendBlankPlan(plans []domain.Plan) []domain.Plan {
	out := make([]domain.Plan, len(plans), len(plans)+1)
	copy(out, plans)
	return append(out, domain.Plan{Label: "", CostPrice: "", SellPrice: ""})
}

// SetPlanField returns a copy of the sequence with one field of the
// indexed plan replaced. Prices stay loosely typed; everything else is
// coerced to its schema type.
func SetPlanField(plans []domain.Plan, index int, field string, value any) ([]domain.Plan, error) {
	if index < 0 || index >= len(plans) {
		return nil, fmt.Errorf("set %q at %d of %d: %w", field, index, len(plans), ErrPlanIndex)
	}

	out := make([]domain.Plan, len(plans))
	copy(out, plans)

	p := out[index]
	switch field {
	case "label":
		p.Label = cast.ToString(value)
	case "costPrice":
		p.CostPrice = value
	case "sellPrice":
		p.SellPrice = value
	case "duration":
		p.Duration = cast.ToString(value)
	case "type":
		p.Type = cast.ToString(value)
	case "inStock":
		v := cast.ToBool(value)
		p.InStock = &v
	default:
		return nil, fmt.Errorf("%q: %w", field, ErrUnknownPlanField)
	}
	out[index] = p

	return out, nil
}

// RemovePlanAt returns a copy of the sequence without the indexed plan.
func RemovePlanAt(plans []domain.Plan, index int) ([]domain.Plan, error) {
	if index < 0 || index >= len(plans) {
		return nil, fmt.Errorf("remove at %d of %d: %w", index, len(plans), ErrPlanIndex)
	}

	out := make([]domain.Plan, 0, len(plans)-1)
	out = append(out, plans[:index]...)
	out = append(out, plans[index+1:]...)
	return out, nil
}

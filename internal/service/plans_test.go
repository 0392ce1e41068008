package service

import (
	"errors"
	"reflect"
	"testing"

	domain "github.com/AdamAbdallah1/cedarstech-pricelist/internal/core"
)

func twoPlans() []domain.Plan {
	return []domain.Plan{
		{Label: "1 Screen", CostPrice: "3", SellPrice: "5"},
		{Label: "4 Screens", CostPrice: "3", SellPrice: "10"},
	}
}

func TestAppendBlankPlan(t *testing.T) {
	plans := twoPlans()
	out := AppendBlankPlan(plans)

	if len(out) != 3 {
		t.Fatalf("expected 3 plans, got %d", len(out))
	}
	blank := out[2]
	if blank.Label != "" || blank.CostPrice != "" || blank.SellPrice != "" {
		t.Errorf("appended plan not blank: %+v", blank)
	}
	if len(plans) != 2 {
		t.Error("input sequence was mutated")
	}

	// Duplicate labels are allowed; plans are addressed by position.
	out = AppendBlankPlan(out)
	if len(out) != 4 {
		t.Fatalf("expected 4 plans, got %d", len(out))
	}
}

func TestSetPlanField(t *testing.T) {
	plans := twoPlans()

	out, err := SetPlanField(plans, 1, "sellPrice", "12")
	if err != nil {
		t.Fatal(err)
	}
	if out[1].Sell() != 12 {
		t.Errorf("sell = %v, want 12", out[1].Sell())
	}
	if plans[1].Sell() != 10 {
		t.Error("input sequence was mutated")
	}

	out, err = SetPlanField(plans, 0, "inStock", false)
	if err != nil {
		t.Fatal(err)
	}
	if out[0].Available() {
		t.Error("expected the plan out of stock")
	}

	if _, err := SetPlanField(plans, 0, "color", "red"); !errors.Is(err, ErrUnknownPlanField) {
		t.Errorf("expected ErrUnknownPlanField, got %v", err)
	}
	if _, err := SetPlanField(plans, 2, "label", "x"); !errors.Is(err, ErrPlanIndex) {
		t.Errorf("expected ErrPlanIndex, got %v", err)
	}
	if _, err := SetPlanField(plans, -1, "label", "x"); !errors.Is(err, ErrPlanIndex) {
		t.Errorf("expected ErrPlanIndex for negative index, got %v", err)
	}
}

func TestRemovePlanAt(t *testing.T) {
	plans := twoPlans()

	out, err := RemovePlanAt(plans, 0)
	if err != nil {
		t.Fatal(err)
	}
	if len(out) != 1 || out[0].Label != "4 Screens" {
		t.Errorf("unexpected remainder %+v", out)
	}
	if !reflect.DeepEqual(plans, twoPlans()) {
		t.Error("input sequence was mutated")
	}

	if _, err := RemovePlanAt(plans, 5); !errors.Is(err, ErrPlanIndex) {
		t.Errorf("expected ErrPlanIndex, got %v", err)
	}

	only, _ := RemovePlanAt(plans, 1)
	only, err = RemovePlanAt(only, 0)
	if err != nil {
		t.Fatal(err)
	}
	if len(only) != 0 {
		t.Errorf("expected empty sequence, got %+v", only)
	}
}

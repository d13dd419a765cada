package entities

import "testing"

func TestLookupPlan(t *testing.T) {
	p, ok := LookupPlan("premium")
	if !ok {
		t.Fatalf("expected premium to be known")
	}
	if p.Name != "Plan Premium" || p.Price != 5999 {
		t.Fatalf("unexpected plan %+v", p)
	}

	if _, ok := LookupPlan("gold"); ok {
		t.Fatalf("expected gold to be unknown")
	}
}

func TestResolvePlan_UnknownFallsBackToSentinel(t *testing.T) {
	p := ResolvePlan("gold")
	if p.ID != "gold" || p.Name != UnknownPlanName || p.Price != 0 {
		t.Fatalf("unexpected sentinel plan %+v", p)
	}
}

func TestListPlans_ReturnsCopy(t *testing.T) {
	plans := ListPlans()
	if len(plans) != 3 {
		t.Fatalf("expected 3 plans, got %d", len(plans))
	}
	plans[0].Price = 1
	if p, _ := LookupPlan("basic"); p.Price != 2999 {
		t.Fatalf("catalog mutated through ListPlans result")
	}
}

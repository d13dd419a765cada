package entities

// Plan is a purchasable subscription tier.
//
// The catalog is static: plan codes are agreed with the frontend at
// preference-creation time and prices are list prices in ARS. Unknown plan
// codes resolve to a sentinel entry instead of failing, so payment recording
// is never blocked by an unrecognized code.

const (
	DefaultCurrency = "ARS"
	UnknownPlanName = "unknown plan"
)

type Plan struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

var planCatalog = []Plan{
	{ID: "basic", Name: "Plan Básico", Price: 2999},
	{ID: "premium", Name: "Plan Premium", Price: 5999},
	{ID: "pro", Name: "Plan Pro", Price: 9999},
}

// LookupPlan returns the plan for a code and whether the code is known.
func LookupPlan(planID string) (Plan, bool) {
	for _, p := range planCatalog {
		if p.ID == planID {
			return p, true
		}
	}
	return Plan{}, false
}

// ResolvePlan resolves a plan code to its catalog entry, falling back to the
// "unknown plan" sentinel (price 0) for unrecognized codes.
func ResolvePlan(planID string) Plan {
	if p, ok := LookupPlan(planID); ok {
		return p
	}
	return Plan{ID: planID, Name: UnknownPlanName, Price: 0}
}

// ListPlans returns the purchasable catalog in display order.
func ListPlans() []Plan {
	out := make([]Plan, len(planCatalog))
	copy(out, planCatalog)
	return out
}

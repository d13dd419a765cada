package response

import "subscription_billing/internal/domain/entities"

// CheckoutResponse mirrors the processor's preference answer: the id plus the
// init_point URL the frontend redirects the browser to.
type CheckoutResponse struct {
	ID        string `json:"id"`
	InitPoint string `json:"init_point"`
}

func FromCheckoutSession(s entities.CheckoutSession) CheckoutResponse {
	return CheckoutResponse{ID: s.ID, InitPoint: s.InitPoint}
}

type PlanResponse struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

func FromPlans(plans []entities.Plan) []PlanResponse {
	out := make([]PlanResponse, 0, len(plans))
	for _, p := range plans {
		out = append(out, PlanResponse{ID: p.ID, Name: p.Name, Price: p.Price})
	}
	return out
}

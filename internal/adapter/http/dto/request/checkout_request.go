package request

// CheckoutRequest is the payload for opening a checkout preference.
//
// user_id and plan_id become the round-trip identifiers both receivers rely
// on, so they are required at the door.

type CheckoutRequest struct {
	UserID    string `json:"user_id" binding:"required"`
	PlanID    string `json:"plan_id" binding:"required"`
	UserEmail string `json:"user_email" binding:"required,email"`
}

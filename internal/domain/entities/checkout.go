package entities

// CheckoutBackURLs are the browser return URLs registered on a preference.
type CheckoutBackURLs struct {
	Success string
	Pending string
	Failure string
}

// CheckoutPreference is the provider-agnostic command to open a checkout for
// one plan. Metadata and the back URLs carry the round-trip identifiers the
// receivers need to reconcile the eventual payment.
type CheckoutPreference struct {
	Title             string
	Price             float64
	Currency          string
	Quantity          int
	BackURLs          CheckoutBackURLs
	NotificationURL   string
	ExternalReference string
	Metadata          map[string]any
}

// CheckoutSession is the processor's answer to a created preference: the
// preference id plus the URL the browser must be sent to.
type CheckoutSession struct {
	ID        string `json:"id"`
	InitPoint string `json:"init_point"`
}

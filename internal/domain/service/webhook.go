package service

// CheckoutSessionCompleted is the gateway's notice that a shopper finished
// paying a checkout session.
type CheckoutSessionCompleted struct {
	EventID       string
	SessionID     string
	PaymentIntent string
}

// ChargeSettled is the gateway's notice that a charge's funds settled and its
// balance transaction (with the final processor fee) is available.
type ChargeSettled struct {
	EventID              string
	PaymentIntent        string
	BalanceTransactionID string
}

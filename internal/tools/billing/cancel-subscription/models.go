// internal/tools/billing/cancel-subscription/models.go
package cancelsubscription

// Input is the argument binding for the tool.
type Input struct {
	SubscriptionID string `json:"subscription_id"`
}

// Output is the SubscriptionCanceled record returned to the caller.
type Output struct {
	SubscriptionID         string `json:"subscription_id"`
	Status                 string `json:"status"`
	CanceledAt             string `json:"canceled_at"`
	RemainingBillingCycles int    `json:"remaining_billing_cycles"`
}

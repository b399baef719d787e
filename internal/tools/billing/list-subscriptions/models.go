// internal/tools/billing/list-subscriptions/models.go
package listsubscriptions

// Input is the argument binding for the tool. Limit is an upper bound hint;
// the placeholder listing never exceeds one entry.
type Input struct {
	CustomerID string `json:"customer_id"`
	Limit      int    `json:"limit"`
}

// SubscriptionSummary is one entry of the listing.
type SubscriptionSummary struct {
	SubscriptionID      string `json:"subscription_id"`
	PlanCode            string `json:"plan_code"`
	State               string `json:"state"`
	CurrentPeriodEndsAt string `json:"current_period_ends_at"`
}

// Output is the SubscriptionList record returned to the caller.
type Output struct {
	CustomerID    string                `json:"customer_id"`
	Subscriptions []SubscriptionSummary `json:"subscriptions"`
	TotalCount    int                   `json:"total_count"`
	HasMore       bool                  `json:"has_more"`
}

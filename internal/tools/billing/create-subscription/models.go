// internal/tools/billing/create-subscription/models.go
package createsubscription

// Input is the argument binding for the tool. Currency defaults to USD at
// the binding layer; plan_code is never checked against a catalog.
type Input struct {
	CustomerID string `json:"customer_id"`
	PlanCode   string `json:"plan_code"`
	Currency   string `json:"currency"`
}

// Output is the SubscriptionCreated record returned to the caller.
type Output struct {
	SubscriptionID string `json:"subscription_id"`
	CustomerID     string `json:"customer_id"`
	PlanCode       string `json:"plan_code"`
	Currency       string `json:"currency"`
	State          string `json:"state"`
	CreatedAt      string `json:"created_at"`
}

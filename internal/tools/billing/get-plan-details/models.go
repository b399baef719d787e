// internal/tools/billing/get-plan-details/models.go
package getplandetails

// Input is the argument binding for the tool.
type Input struct {
	PlanCode string `json:"plan_code"`
}

// Output is the PlanDetails record returned to the caller.
type Output struct {
	PlanCode         string  `json:"plan_code"`
	PlanName         string  `json:"plan_name"`
	Description      string  `json:"description"`
	Price            float64 `json:"price"`
	Currency         string  `json:"currency"`
	BillingCycleType string  `json:"billing_cycle_type"`
	TrialDuration    int     `json:"trial_duration"`
}

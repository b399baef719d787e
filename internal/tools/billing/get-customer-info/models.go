// internal/tools/billing/get-customer-info/models.go
package getcustomerinfo

// Input is the argument binding for the tool.
type Input struct {
	CustomerID string `json:"customer_id"`
}

// Output is the CustomerInfo record returned to the caller.
type Output struct {
	CustomerID string `json:"customer_id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	Status     string `json:"status"`
}

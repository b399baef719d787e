// internal/tools/billing/get-customer-info/handler_test.go
package getcustomerinfo

import (
	"context"
	"testing"
	"time"

	"billing-tools/internal/common/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestHandler(t *testing.T) *Handler {
	return NewHandler(&Config{Timeout: 10 * time.Second}, logger.NewTestLogger(t))
}

func TestHandler_Execute_EchoesCustomerID(t *testing.T) {
	tests := []struct {
		name       string
		customerID string
	}{
		{name: "simple id", customerID: "cust_001"},
		{name: "uuid-style id", customerID: "9b2f41c8-1f07-4c2e-8f33-a25ad1c9f4a1"},
		{name: "id with unicode", customerID: "kunde-äöü"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := createTestHandler(t)

			output, err := h.Execute(context.Background(), &Input{CustomerID: tt.customerID})
			require.NoError(t, err)

			assert.Equal(t, tt.customerID, output.CustomerID)
			assert.Equal(t, "Example Customer", output.Name)
			assert.Equal(t, "customer@example.com", output.Email)
			assert.Equal(t, "active", output.Status)
		})
	}
}

func TestHandler_Handle_ConcreteScenario(t *testing.T) {
	h := createTestHandler(t)
	def := h.Definition()

	result, err := def.Handler(context.Background(), map[string]interface{}{
		"customer_id": "cust_001",
	})
	require.NoError(t, err)

	assert.Equal(t, map[string]interface{}{
		"customer_id": "cust_001",
		"name":        "Example Customer",
		"email":       "customer@example.com",
		"status":      "active",
	}, result)
}

func TestHandler_Definition(t *testing.T) {
	h := createTestHandler(t)
	def := h.Definition()

	assert.Equal(t, "get_customer_info", def.Name)
	assert.NotNil(t, def.Handler)
	require.Contains(t, def.InputSchema, "required")
	assert.Contains(t, def.InputSchema["required"], "customer_id")
}

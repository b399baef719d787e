// internal/tools/billing/get-plan-details/handler_test.go
package getplandetails

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

func TestHandler_Execute_EchoesPlanCode(t *testing.T) {
	tests := []struct {
		name     string
		planCode string
	}{
		{name: "premium", planCode: "premium"},
		{name: "basic", planCode: "basic"},
		{name: "code unknown to any catalog", planCode: "plan-that-does-not-exist"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := createTestHandler(t)

			output, err := h.Execute(context.Background(), &Input{PlanCode: tt.planCode})
			require.NoError(t, err)

			assert.Equal(t, tt.planCode, output.PlanCode)
			assert.Equal(t, "Premium Plan", output.PlanName)
			assert.Equal(t, "Premium subscription plan with unlimited features", output.Description)
			assert.Equal(t, 99.99, output.Price)
			assert.Equal(t, "USD", output.Currency)
			assert.Equal(t, "monthly", output.BillingCycleType)
			assert.Equal(t, 0, output.TrialDuration)
		})
	}
}

func TestHandler_Handle(t *testing.T) {
	h := createTestHandler(t)
	def := h.Definition()

	result, err := def.Handler(context.Background(), map[string]interface{}{
		"plan_code": "premium",
	})
	require.NoError(t, err)

	assert.Equal(t, "premium", result["plan_code"])
	assert.Equal(t, 99.99, result["price"])
	assert.Equal(t, "monthly", result["billing_cycle_type"])
	assert.Equal(t, float64(0), result["trial_duration"])
}

func TestHandler_Definition(t *testing.T) {
	h := createTestHandler(t)
	def := h.Definition()

	assert.Equal(t, "get_plan_details", def.Name)
	assert.Contains(t, def.InputSchema["required"], "plan_code")
}

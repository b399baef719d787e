// internal/tools/billing/get-plan-details/handler.go
package getplandetails

import (
	"context"

	"billing-tools/internal/common/logger"
	"billing-tools/internal/registry"
)

const ToolName = "get_plan_details"

// Placeholder plan. Every field except plan_code is constant.
const (
	placeholderPlanName      = "Premium Plan"
	placeholderDescription   = "Premium subscription plan with unlimited features"
	placeholderPrice         = 99.99
	placeholderCurrency      = "USD"
	placeholderBillingCycle  = "monthly"
	placeholderTrialDuration = 0
)

type Handler struct {
	config *Config
	logger logger.Logger
}

func NewHandler(config *Config, log logger.Logger) *Handler {
	return &Handler{
		config: config,
		logger: log.WithFields(map[string]interface{}{"tool": ToolName}),
	}
}

// Definition returns the registry entry for this tool.
func (h *Handler) Definition() registry.Tool {
	return registry.Tool{
		Name:        ToolName,
		Description: "Get details about a specific plan.",
		InputSchema: map[string]interface{}{
			"type": "object",
			"properties": map[string]interface{}{
				"plan_code": map[string]interface{}{
					"type":        "string",
					"minLength":   1,
					"description": "The code of the plan to retrieve",
				},
			},
			"required":             []interface{}{"plan_code"},
			"additionalProperties": false,
		},
		Handler: h.handle,
	}
}

func (h *Handler) handle(ctx context.Context, args map[string]interface{}) (map[string]interface{}, error) {
	var input Input
	if err := registry.Bind(args, &input); err != nil {
		return nil, err
	}

	if h.config.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, h.config.Timeout)
		defer cancel()
	}

	output, err := h.Execute(ctx, &input)
	if err != nil {
		return nil, err
	}
	return registry.Result(output)
}

// Execute echoes the plan code into the fixed placeholder plan.
func (h *Handler) Execute(_ context.Context, input *Input) (*Output, error) {
	h.logger.Debug("building plan details", map[string]interface{}{
		"planCode": input.PlanCode,
	})

	return &Output{
		PlanCode:         input.PlanCode,
		PlanName:         placeholderPlanName,
		Description:      placeholderDescription,
		Price:            placeholderPrice,
		Currency:         placeholderCurrency,
		BillingCycleType: placeholderBillingCycle,
		TrialDuration:    placeholderTrialDuration,
	}, nil
}

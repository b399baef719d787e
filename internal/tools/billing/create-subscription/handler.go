// internal/tools/billing/create-subscription/handler.go
package createsubscription

import (
	"context"

	"billing-tools/internal/common/logger"
	"billing-tools/internal/registry"
)

const ToolName = "create_subscription"

const DefaultCurrency = "USD"

// Placeholder values standing in for a real provider create call. The id and
// timestamp are fixed, not derived from the input.
const (
	placeholderSubscriptionID = "sub_new_12345"
	placeholderState          = "active"
	placeholderCreatedAt      = "2025-01-01T00:00:00Z"
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
		Description: "Create a new subscription for a customer.",
		InputSchema: map[string]interface{}{
			"type": "object",
			"properties": map[string]interface{}{
				"customer_id": map[string]interface{}{
					"type":        "string",
					"minLength":   1,
					"description": "The unique identifier for the customer",
				},
				"plan_code": map[string]interface{}{
					"type":        "string",
					"minLength":   1,
					"description": "The code of the plan to subscribe to",
				},
				"currency": map[string]interface{}{
					"type":        "string",
					"default":     DefaultCurrency,
					"description": "Currency code (default: USD)",
				},
			},
			"required":             []interface{}{"customer_id", "plan_code"},
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

// Execute echoes the three inputs into a fixed new-subscription record.
func (h *Handler) Execute(_ context.Context, input *Input) (*Output, error) {
	h.logger.Debug("creating subscription", map[string]interface{}{
		"customerId": input.CustomerID,
		"planCode":   input.PlanCode,
		"currency":   input.Currency,
	})

	return &Output{
		SubscriptionID: placeholderSubscriptionID,
		CustomerID:     input.CustomerID,
		PlanCode:       input.PlanCode,
		Currency:       input.Currency,
		State:          placeholderState,
		CreatedAt:      placeholderCreatedAt,
	}, nil
}

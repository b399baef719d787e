// internal/tools/billing/list-subscriptions/handler.go
package listsubscriptions

import (
	"context"

	"billing-tools/internal/common/logger"
	"billing-tools/internal/registry"
)

const ToolName = "list_subscriptions"

const DefaultLimit = 10

// Placeholder subscription entry standing in for a real provider listing.
const (
	placeholderSubscriptionID = "sub_12345"
	placeholderPlanCode       = "premium"
	placeholderState          = "active"
	placeholderPeriodEnd      = "2025-02-01"
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
		Description: "List all subscriptions for a customer.",
		InputSchema: map[string]interface{}{
			"type": "object",
			"properties": map[string]interface{}{
				"customer_id": map[string]interface{}{
					"type":        "string",
					"minLength":   1,
					"description": "The unique identifier for the customer",
				},
				"limit": map[string]interface{}{
					"type":        "integer",
					"default":     DefaultLimit,
					"description": "Maximum number of subscriptions to return",
				},
			},
			"required":             []interface{}{"customer_id"},
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

// Execute returns the fixed single-entry listing for the customer. The limit
// hint is accepted but never changes the placeholder result, so total_count
// always equals the entry count and has_more stays false.
func (h *Handler) Execute(_ context.Context, input *Input) (*Output, error) {
	h.logger.Debug("listing subscriptions", map[string]interface{}{
		"customerId": input.CustomerID,
		"limit":      input.Limit,
	})

	subscriptions := []SubscriptionSummary{
		{
			SubscriptionID:      placeholderSubscriptionID,
			PlanCode:            placeholderPlanCode,
			State:               placeholderState,
			CurrentPeriodEndsAt: placeholderPeriodEnd,
		},
	}

	return &Output{
		CustomerID:    input.CustomerID,
		Subscriptions: subscriptions,
		TotalCount:    len(subscriptions),
		HasMore:       false,
	}, nil
}

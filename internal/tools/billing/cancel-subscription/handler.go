// internal/tools/billing/cancel-subscription/handler.go
package cancelsubscription

import (
	"context"

	"billing-tools/internal/common/logger"
	"billing-tools/internal/registry"
)

const ToolName = "cancel_subscription"

const (
	placeholderStatus     = "canceled"
	placeholderCanceledAt = "2025-01-01T00:00:00Z"
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
		Description: "Cancel an existing subscription.",
		InputSchema: map[string]interface{}{
			"type": "object",
			"properties": map[string]interface{}{
				"subscription_id": map[string]interface{}{
					"type":        "string",
					"minLength":   1,
					"description": "The unique identifier for the subscription",
				},
			},
			"required":             []interface{}{"subscription_id"},
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

// Execute confirms the cancellation for any subscription id, real or not.
func (h *Handler) Execute(_ context.Context, input *Input) (*Output, error) {
	h.logger.Debug("canceling subscription", map[string]interface{}{
		"subscriptionId": input.SubscriptionID,
	})

	return &Output{
		SubscriptionID:         input.SubscriptionID,
		Status:                 placeholderStatus,
		CanceledAt:             placeholderCanceledAt,
		RemainingBillingCycles: 0,
	}, nil
}

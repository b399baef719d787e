// internal/tools/billing/get-customer-info/handler.go
package getcustomerinfo

import (
	"context"

	"billing-tools/internal/common/logger"
	"billing-tools/internal/registry"
)

const ToolName = "get_customer_info"

// Placeholder values standing in for a real billing-provider lookup.
const (
	placeholderName   = "Example Customer"
	placeholderEmail  = "customer@example.com"
	placeholderStatus = "active"
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
		Description: "Fetch customer information for a customer id.",
		InputSchema: map[string]interface{}{
			"type": "object",
			"properties": map[string]interface{}{
				"customer_id": map[string]interface{}{
					"type":        "string",
					"minLength":   1,
					"description": "The unique identifier for the customer",
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

// Execute builds the fixed placeholder record, echoing the customer id. It is
// total: every schema-valid input succeeds.
func (h *Handler) Execute(_ context.Context, input *Input) (*Output, error) {
	h.logger.Debug("building customer info", map[string]interface{}{
		"customerId": input.CustomerID,
	})

	return &Output{
		CustomerID: input.CustomerID,
		Name:       placeholderName,
		Email:      placeholderEmail,
		Status:     placeholderStatus,
	}, nil
}

// internal/registry/registry.go
package registry

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"time"

	"billing-tools/internal/common/errors"
	"billing-tools/internal/common/logger"
	"billing-tools/internal/common/metrics"

	"github.com/xeipuuv/gojsonschema"
)

// HandlerFunc executes a tool against already-validated arguments and returns
// a JSON-representable result map.
type HandlerFunc func(ctx context.Context, args map[string]interface{}) (map[string]interface{}, error)

// Tool is one entry of the lookup table: a name, a human-readable
// description, a JSON schema for the arguments, and the bound handler.
type Tool struct {
	Name        string
	Description string
	InputSchema map[string]interface{}
	Handler     HandlerFunc
}

// Registry maps tool names to their definitions. It is populated once at
// startup; Register is not safe for concurrent use, Invoke and the read
// accessors are.
type Registry struct {
	tools  map[string]Tool
	logger logger.Logger
}

func New(log logger.Logger) *Registry {
	return &Registry{
		tools:  make(map[string]Tool),
		logger: log.WithFields(map[string]interface{}{"component": "registry"}),
	}
}

// Register adds a tool to the table. Registering the same name twice is an
// error rather than an overwrite.
func (r *Registry) Register(t Tool) error {
	if t.Name == "" {
		return fmt.Errorf("tool name must not be empty")
	}
	if t.Handler == nil {
		return fmt.Errorf("tool %q has no handler", t.Name)
	}
	if _, exists := r.tools[t.Name]; exists {
		return errors.NewDuplicateToolError(t.Name)
	}

	r.tools[t.Name] = t
	r.logger.Info("tool registered", map[string]interface{}{"tool": t.Name})
	return nil
}

// Get returns the definition for a tool name.
func (r *Registry) Get(name string) (Tool, bool) {
	t, ok := r.tools[name]
	return t, ok
}

// Names returns the registered tool names in sorted order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.tools))
	for name := range r.tools {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Invoke looks up a tool, fills schema defaults into the arguments,
// validates them, and runs the handler. Type-mismatched input never reaches
// a handler; it is rejected here with INVALID_ARGUMENTS.
func (r *Registry) Invoke(ctx context.Context, name string, args map[string]interface{}) (map[string]interface{}, error) {
	tool, ok := r.tools[name]
	if !ok {
		metrics.ToolInvocationsRejected.WithLabelValues(name, string(errors.ErrCodeToolNotFound)).Inc()
		return nil, errors.NewToolNotFoundError(name)
	}

	bound := applyDefaults(args, tool.InputSchema)

	if err := validateArgs(bound, tool.InputSchema); err != nil {
		metrics.ToolInvocationsRejected.WithLabelValues(name, string(errors.ErrCodeInvalidArguments)).Inc()
		return nil, errors.NewInvalidArgumentsError(name, err.Error())
	}

	start := time.Now()
	result, err := tool.Handler(ctx, bound)
	metrics.ToolInvocationDuration.WithLabelValues(name).Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.ToolInvocationsRejected.WithLabelValues(name, "EXECUTION_ERROR").Inc()
		return nil, err
	}

	metrics.ToolInvocationsCompleted.WithLabelValues(name).Inc()
	return result, nil
}

// applyDefaults returns a copy of args with schema property defaults filled
// in for absent keys, so the binding layer owns defaults rather than the
// handlers.
func applyDefaults(args, schema map[string]interface{}) map[string]interface{} {
	bound := make(map[string]interface{}, len(args))
	for k, v := range args {
		bound[k] = v
	}

	props, ok := schema["properties"].(map[string]interface{})
	if !ok {
		return bound
	}
	for name, raw := range props {
		prop, ok := raw.(map[string]interface{})
		if !ok {
			continue
		}
		def, hasDefault := prop["default"]
		if !hasDefault {
			continue
		}
		if _, present := bound[name]; !present {
			bound[name] = def
		}
	}
	return bound
}

func validateArgs(args, schema map[string]interface{}) error {
	if len(schema) == 0 {
		return nil
	}

	schemaLoader := gojsonschema.NewGoLoader(schema)
	documentLoader := gojsonschema.NewGoLoader(args)

	result, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	if !result.Valid() {
		errs := make([]string, len(result.Errors()))
		for i, desc := range result.Errors() {
			errs[i] = desc.String()
		}
		return fmt.Errorf("argument validation failed: %v", errs)
	}

	return nil
}

// Bind decodes a generic argument map into a tool's typed input via a JSON
// round trip.
func Bind(args map[string]interface{}, v interface{}) error {
	data, err := json.Marshal(args)
	if err != nil {
		return fmt.Errorf("encode arguments: %w", err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("decode arguments: %w", err)
	}
	return nil
}

// Result encodes a tool's typed output as a generic JSON-representable map.
func Result(v interface{}) (map[string]interface{}, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("encode result: %w", err)
	}
	var out map[string]interface{}
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, fmt.Errorf("decode result: %w", err)
	}
	return out, nil
}

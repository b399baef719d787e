// internal/server/server_test.go
package server

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"billing-tools/internal/common/logger"
	"billing-tools/internal/registry"
	cancelsubscription "billing-tools/internal/tools/billing/cancel-subscription"
	createsubscription "billing-tools/internal/tools/billing/create-subscription"
	getcustomerinfo "billing-tools/internal/tools/billing/get-customer-info"
	getplandetails "billing-tools/internal/tools/billing/get-plan-details"
	listsubscriptions "billing-tools/internal/tools/billing/list-subscriptions"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestRegistry(t *testing.T) *registry.Registry {
	log := logger.NewTestLogger(t)
	reg := registry.New(log)
	cfgTimeout := 5 * time.Second

	require.NoError(t, reg.Register(getcustomerinfo.NewHandler(&getcustomerinfo.Config{Timeout: cfgTimeout}, log).Definition()))
	require.NoError(t, reg.Register(listsubscriptions.NewHandler(&listsubscriptions.Config{Timeout: cfgTimeout}, log).Definition()))
	require.NoError(t, reg.Register(createsubscription.NewHandler(&createsubscription.Config{Timeout: cfgTimeout}, log).Definition()))
	require.NoError(t, reg.Register(cancelsubscription.NewHandler(&cancelsubscription.Config{Timeout: cfgTimeout}, log).Definition()))
	require.NoError(t, reg.Register(getplandetails.NewHandler(&getplandetails.Config{Timeout: cfgTimeout}, log).Definition()))

	return reg
}

func serveLines(t *testing.T, srv *Server, lines ...string) []Response {
	in := strings.NewReader(strings.Join(lines, "\n") + "\n")
	var out bytes.Buffer

	require.NoError(t, srv.Serve(context.Background(), in, &out))

	var responses []Response
	for _, line := range strings.Split(strings.TrimSpace(out.String()), "\n") {
		var resp Response
		require.NoError(t, json.Unmarshal([]byte(line), &resp))
		responses = append(responses, resp)
	}
	return responses
}

func TestServer_Serve_Dispatch(t *testing.T) {
	tests := []struct {
		name     string
		request  string
		validate func(t *testing.T, resp Response)
	}{
		{
			name:    "get_customer_info concrete scenario",
			request: `{"id":"req-1","tool":"get_customer_info","arguments":{"customer_id":"cust_001"}}`,
			validate: func(t *testing.T, resp Response) {
				assert.Equal(t, "req-1", resp.ID)
				require.Nil(t, resp.Error)
				assert.Equal(t, "cust_001", resp.Result["customer_id"])
				assert.Equal(t, "Example Customer", resp.Result["name"])
				assert.Equal(t, "customer@example.com", resp.Result["email"])
				assert.Equal(t, "active", resp.Result["status"])
			},
		},
		{
			name:    "create_subscription defaults currency",
			request: `{"id":"req-2","tool":"create_subscription","arguments":{"customer_id":"cust_001","plan_code":"premium"}}`,
			validate: func(t *testing.T, resp Response) {
				require.Nil(t, resp.Error)
				assert.Equal(t, "sub_new_12345", resp.Result["subscription_id"])
				assert.Equal(t, "cust_001", resp.Result["customer_id"])
				assert.Equal(t, "premium", resp.Result["plan_code"])
				assert.Equal(t, "USD", resp.Result["currency"])
				assert.Equal(t, "active", resp.Result["state"])
				assert.Equal(t, "2025-01-01T00:00:00Z", resp.Result["created_at"])
			},
		},
		{
			name:    "cancel_subscription",
			request: `{"id":"req-3","tool":"cancel_subscription","arguments":{"subscription_id":"sub_12345"}}`,
			validate: func(t *testing.T, resp Response) {
				require.Nil(t, resp.Error)
				assert.Equal(t, "canceled", resp.Result["status"])
				assert.Equal(t, float64(0), resp.Result["remaining_billing_cycles"])
			},
		},
		{
			name:    "unknown tool",
			request: `{"id":"req-4","tool":"refund_invoice","arguments":{}}`,
			validate: func(t *testing.T, resp Response) {
				require.NotNil(t, resp.Error)
				assert.Equal(t, "TOOL_NOT_FOUND", resp.Error.Code)
				assert.Nil(t, resp.Result)
			},
		},
		{
			name:    "type-mismatched argument rejected by binding layer",
			request: `{"id":"req-5","tool":"get_customer_info","arguments":{"customer_id":42}}`,
			validate: func(t *testing.T, resp Response) {
				require.NotNil(t, resp.Error)
				assert.Equal(t, "INVALID_ARGUMENTS", resp.Error.Code)
			},
		},
		{
			name:    "malformed line",
			request: `{"this is not json`,
			validate: func(t *testing.T, resp Response) {
				require.NotNil(t, resp.Error)
				assert.Equal(t, "PARSE_ERROR", resp.Error.Code)
				assert.NotEmpty(t, resp.ID)
			},
		},
		{
			name:    "missing tool name",
			request: `{"id":"req-6","arguments":{}}`,
			validate: func(t *testing.T, resp Response) {
				require.NotNil(t, resp.Error)
				assert.Equal(t, "PARSE_ERROR", resp.Error.Code)
				assert.Equal(t, "req-6", resp.ID)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := New(&Config{}, createTestRegistry(t), nil, logger.NewTestLogger(t))

			responses := serveLines(t, srv, tt.request)
			require.Len(t, responses, 1)
			tt.validate(t, responses[0])
		})
	}
}

func TestServer_Serve_MultipleRequestsShareNoState(t *testing.T) {
	srv := New(&Config{}, createTestRegistry(t), nil, logger.NewTestLogger(t))

	responses := serveLines(t, srv,
		`{"id":"a","tool":"list_subscriptions","arguments":{"customer_id":"cust_001"}}`,
		`{"id":"b","tool":"list_subscriptions","arguments":{"customer_id":"cust_002","limit":5}}`,
	)
	require.Len(t, responses, 2)

	assert.Equal(t, "a", responses[0].ID)
	assert.Equal(t, "cust_001", responses[0].Result["customer_id"])
	assert.Equal(t, "b", responses[1].ID)
	assert.Equal(t, "cust_002", responses[1].Result["customer_id"])
	assert.Equal(t, float64(1), responses[1].Result["total_count"])
	assert.Equal(t, false, responses[1].Result["has_more"])
}

func TestServer_Serve_GeneratesMissingRequestID(t *testing.T) {
	srv := New(&Config{}, createTestRegistry(t), nil, logger.NewTestLogger(t))

	responses := serveLines(t, srv,
		`{"tool":"get_plan_details","arguments":{"plan_code":"premium"}}`,
	)
	require.Len(t, responses, 1)
	assert.NotEmpty(t, responses[0].ID)
	assert.Equal(t, "premium", responses[0].Result["plan_code"])
}

func TestServer_ResponseCache(t *testing.T) {
	mr := miniredis.RunT(t)
	redisClient := redis.NewClient(&redis.Options{Addr: mr.Addr()})

	log := logger.NewTestLogger(t)
	reg := registry.New(log)

	calls := 0
	require.NoError(t, reg.Register(registry.Tool{
		Name:        "counted_tool",
		Description: "counts how often it runs",
		InputSchema: map[string]interface{}{
			"type": "object",
			"properties": map[string]interface{}{
				"key": map[string]interface{}{"type": "string"},
			},
			"required": []interface{}{"key"},
		},
		Handler: func(_ context.Context, args map[string]interface{}) (map[string]interface{}, error) {
			calls++
			return map[string]interface{}{"key": args["key"], "calls": calls}, nil
		},
	}))

	srv := New(&Config{CacheEnabled: true, CacheTTL: time.Minute}, reg, redisClient, log)

	first, err := srv.invoke(context.Background(), "counted_tool", map[string]interface{}{"key": "k1"})
	require.NoError(t, err)
	second, err := srv.invoke(context.Background(), "counted_tool", map[string]interface{}{"key": "k1"})
	require.NoError(t, err)

	assert.Equal(t, 1, calls, "second invocation must be served from the cache")
	assert.Equal(t, first["key"], second["key"])

	// different arguments miss the cache
	_, err = srv.invoke(context.Background(), "counted_tool", map[string]interface{}{"key": "k2"})
	require.NoError(t, err)
	assert.Equal(t, 2, calls)
}

func TestServer_ResponseCache_DisabledWithoutClient(t *testing.T) {
	srv := New(&Config{CacheEnabled: true, CacheTTL: time.Minute}, createTestRegistry(t), nil, logger.NewTestLogger(t))

	result, err := srv.invoke(context.Background(), "get_plan_details", map[string]interface{}{"plan_code": "premium"})
	require.NoError(t, err)
	assert.Equal(t, "premium", result["plan_code"])
}

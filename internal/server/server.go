// internal/server/server.go
package server

import (
	"bufio"
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"billing-tools/internal/common/errors"
	"billing-tools/internal/common/logger"
	"billing-tools/internal/common/metrics"
	"billing-tools/internal/registry"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// Request is one line-framed invocation: a correlation id, a tool name, and
// a JSON argument object.
type Request struct {
	ID        string                 `json:"id,omitempty"`
	Tool      string                 `json:"tool"`
	Arguments map[string]interface{} `json:"arguments,omitempty"`
}

// Response carries either a result or an error back to the caller, never
// both.
type Response struct {
	ID     string                 `json:"id"`
	Result map[string]interface{} `json:"result,omitempty"`
	Error  *errors.ToolError      `json:"error,omitempty"`
}

type Config struct {
	CacheEnabled bool
	CacheTTL     time.Duration
}

// Server reads newline-delimited JSON requests, dispatches them through the
// registry one at a time, and writes one response line per request.
type Server struct {
	config   *Config
	registry *registry.Registry
	redis    *redis.Client
	logger   logger.Logger
}

// New builds a Server. redisClient may be nil; the response cache is then
// disabled regardless of config.
func New(config *Config, reg *registry.Registry, redisClient *redis.Client, log logger.Logger) *Server {
	return &Server{
		config:   config,
		registry: reg,
		redis:    redisClient,
		logger:   log.WithFields(map[string]interface{}{"component": "server"}),
	}
}

// Serve processes requests from r until EOF or ctx cancellation. Requests
// are handled sequentially; the tools share no state, so there is nothing to
// coordinate.
func (s *Server) Serve(ctx context.Context, r io.Reader, w io.Writer) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	writer := bufio.NewWriter(w)

	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return err
		}

		line := bytes.TrimSpace(scanner.Bytes())
		if len(line) == 0 {
			continue
		}

		resp := s.handleLine(ctx, line)

		data, err := json.Marshal(resp)
		if err != nil {
			s.logger.Error("failed to encode response", map[string]interface{}{
				"requestId": resp.ID,
				"error":     err.Error(),
			})
			continue
		}
		data = append(data, '\n')
		if _, err := writer.Write(data); err != nil {
			return fmt.Errorf("write response: %w", err)
		}
		if err := writer.Flush(); err != nil {
			return fmt.Errorf("flush response: %w", err)
		}
	}

	return scanner.Err()
}

func (s *Server) handleLine(ctx context.Context, line []byte) Response {
	var req Request
	if err := json.Unmarshal(line, &req); err != nil {
		return Response{
			ID:    uuid.NewString(),
			Error: errors.FromStandard(errors.NewParseError(err)),
		}
	}

	if req.ID == "" {
		req.ID = uuid.NewString()
	}
	if req.Tool == "" {
		return Response{
			ID:    req.ID,
			Error: errors.FromStandard(errors.NewParseError(fmt.Errorf("request has no tool name"))),
		}
	}
	if req.Arguments == nil {
		req.Arguments = map[string]interface{}{}
	}

	s.logger.Info("processing request", map[string]interface{}{
		"requestId": req.ID,
		"tool":      req.Tool,
	})

	result, err := s.invoke(ctx, req.Tool, req.Arguments)
	if err != nil {
		return Response{ID: req.ID, Error: toToolError(err)}
	}
	return Response{ID: req.ID, Result: result}
}

// invoke dispatches through the registry, consulting the response cache
// first when enabled. Results are deterministic, so a hit and a miss are
// indistinguishable to the caller.
func (s *Server) invoke(ctx context.Context, tool string, args map[string]interface{}) (map[string]interface{}, error) {
	if !s.config.CacheEnabled || s.redis == nil {
		return s.registry.Invoke(ctx, tool, args)
	}

	key, keyErr := cacheKey(tool, args)
	if keyErr == nil {
		if val, err := s.redis.Get(ctx, key).Result(); err == nil {
			var cached map[string]interface{}
			if err := json.Unmarshal([]byte(val), &cached); err == nil {
				metrics.CacheHits.WithLabelValues(tool).Inc()
				return cached, nil
			}
		}
	}

	result, err := s.registry.Invoke(ctx, tool, args)
	if err != nil {
		return nil, err
	}

	if keyErr == nil {
		data, _ := json.Marshal(result)
		if err := s.redis.Set(ctx, key, data, s.config.CacheTTL).Err(); err != nil {
			s.logger.Warn("failed to store response in cache", map[string]interface{}{
				"tool":  tool,
				"error": err.Error(),
			})
		}
	}

	return result, nil
}

// cacheKey derives a stable key from the tool name and arguments.
// encoding/json sorts map keys, so equal argument maps yield equal keys.
func cacheKey(tool string, args map[string]interface{}) (string, error) {
	data, err := json.Marshal(args)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("tools:%s:%x", tool, sha256.Sum256(data)), nil
}

func toToolError(err error) *errors.ToolError {
	if stdErr, ok := err.(*errors.StandardError); ok {
		return errors.FromStandard(stdErr)
	}
	return &errors.ToolError{
		Code:    "EXECUTION_ERROR",
		Message: err.Error(),
	}
}

// cmd/tool-server/main.go
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	_ "net/http/pprof"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"billing-tools/internal/common/cache"
	"billing-tools/internal/common/config"
	"billing-tools/internal/common/logger"
	"billing-tools/internal/common/observability"
	"billing-tools/internal/registry"
	"billing-tools/internal/server"

	// Billing Tools (5)
	cs "billing-tools/internal/tools/billing/cancel-subscription"
	ns "billing-tools/internal/tools/billing/create-subscription"
	ci "billing-tools/internal/tools/billing/get-customer-info"
	pd "billing-tools/internal/tools/billing/get-plan-details"
	ls "billing-tools/internal/tools/billing/list-subscriptions"
)

// retryWithBackoff attempts to execute a function with exponential backoff
func retryWithBackoff(operation func() error, maxRetries int, initialDelay time.Duration, log *zap.Logger, operationName string) error {
	var err error
	delay := initialDelay

	for i := 0; i < maxRetries; i++ {
		err = operation()
		if err == nil {
			return nil
		}

		if i < maxRetries-1 {
			log.Warn(fmt.Sprintf("%s failed, retrying...", operationName),
				zap.Error(err),
				zap.Int("attempt", i+1),
				zap.Int("maxRetries", maxRetries),
				zap.Duration("nextRetryIn", delay),
			)
			time.Sleep(delay)
			delay *= 2 // Exponential backoff
		}
	}

	return fmt.Errorf("%s failed after %d attempts: %w", operationName, maxRetries, err)
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		fallback := logger.New("info", "console")
		fallback.Fatal("config load failed", zap.Error(err))
	}

	zapLog := logger.New(cfg.Logging.Level, cfg.Logging.Format)
	defer zapLog.Sync()

	log := logger.NewZapAdapter(zapLog)

	zapLog.Info("Starting billing tool server...")

	obs := observability.New(cfg.App.Name)
	defer obs.Shutdown()

	ctx := context.Background()

	// --- Init Redis response cache (optional) with retry ---
	var redisCache *cache.RedisClient
	if cfg.Cache.Enabled {
		err = retryWithBackoff(func() error {
			var err error
			redisCache, err = cache.NewRedis(cfg.Cache.Redis)
			if err != nil {
				return err
			}
			// Test the connection with context
			return redisCache.Ping(ctx)
		}, 10, 2*time.Second, zapLog, "Redis connection")

		if err != nil {
			zapLog.Fatal("redis failed after retries", zap.Error(err))
		}
		defer redisCache.Close()
		zapLog.Info("Redis connected successfully")
	}

	// --- Register ALL 5 Billing Tools ---
	reg := registry.New(log)

	if cfg.Tools[ci.ToolName].Enabled {
		handler := ci.NewHandler(
			&ci.Config{
				Timeout: time.Duration(cfg.Tools[ci.ToolName].Timeout) * time.Millisecond,
			},
			log,
		)
		registerTool(reg, handler.Definition(), zapLog)
	}

	if cfg.Tools[ls.ToolName].Enabled {
		handler := ls.NewHandler(
			&ls.Config{
				Timeout: time.Duration(cfg.Tools[ls.ToolName].Timeout) * time.Millisecond,
			},
			log,
		)
		registerTool(reg, handler.Definition(), zapLog)
	}

	if cfg.Tools[ns.ToolName].Enabled {
		handler := ns.NewHandler(
			&ns.Config{
				Timeout: time.Duration(cfg.Tools[ns.ToolName].Timeout) * time.Millisecond,
			},
			log,
		)
		registerTool(reg, handler.Definition(), zapLog)
	}

	if cfg.Tools[cs.ToolName].Enabled {
		handler := cs.NewHandler(
			&cs.Config{
				Timeout: time.Duration(cfg.Tools[cs.ToolName].Timeout) * time.Millisecond,
			},
			log,
		)
		registerTool(reg, handler.Definition(), zapLog)
	}

	if cfg.Tools[pd.ToolName].Enabled {
		handler := pd.NewHandler(
			&pd.Config{
				Timeout: time.Duration(cfg.Tools[pd.ToolName].Timeout) * time.Millisecond,
			},
			log,
		)
		registerTool(reg, handler.Definition(), zapLog)
	}

	zapLog.Info("All tools registered successfully", zap.Strings("tools", reg.Names()))

	// --- Health & Metrics Server ---
	go func() {
		http.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusOK)
			json.NewEncoder(w).Encode(map[string]string{
				"status": "healthy",
				"time":   time.Now().Format(time.RFC3339),
			})
		})
		http.HandleFunc("/ready", func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusOK)
			json.NewEncoder(w).Encode(map[string]string{
				"status": "ready",
				"time":   time.Now().Format(time.RFC3339),
			})
		})
		http.Handle("/metrics", promhttp.Handler())
		zapLog.Info("Health/Metrics server listening", zap.String("address", cfg.Server.HealthAddress))
		if err := http.ListenAndServe(cfg.Server.HealthAddress, nil); err != nil {
			zapLog.Error("Health/Metrics server failed", zap.Error(err))
		}
	}()

	// --- Dispatch Loop over stdio ---
	serveCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	srvCfg := &server.Config{
		CacheEnabled: cfg.Cache.Enabled,
		CacheTTL:     time.Duration(cfg.Cache.TTL) * time.Second,
	}
	srv := server.New(srvCfg, reg, cacheClient(redisCache), log)

	done := make(chan error, 1)
	go func() {
		done <- srv.Serve(serveCtx, os.Stdin, os.Stdout)
	}()

	// --- Graceful Shutdown ---
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

	select {
	case <-sigCh:
		zapLog.Info("Shutdown signal received, stopping dispatch loop...")
		cancel()
	case err := <-done:
		if err != nil {
			zapLog.Error("Dispatch loop ended with error", zap.Error(err))
		}
	}

	zapLog.Info("Billing tool server stopped gracefully")
}

// cacheClient unwraps the optional cache wrapper for the server.
func cacheClient(c *cache.RedisClient) *redis.Client {
	if c == nil {
		return nil
	}
	return c.Client
}

func registerTool(reg *registry.Registry, tool registry.Tool, log *zap.Logger) {
	if err := reg.Register(tool); err != nil {
		log.Fatal("tool registration failed", zap.String("tool", tool.Name), zap.Error(err))
	}

	log.Info("tool registered",
		zap.String("tool", tool.Name),
	)
}

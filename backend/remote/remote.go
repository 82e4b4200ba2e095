// Package remote implements an HTTP-dispatched backend.Backend: the reduced
// program is serialized and POSTed to an external solver service, wrapped
// by resilience.Executor (timeout, retry, circuit breaker) since the call
// is this module's one long-running suspension point (spec.md §5).
package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/veriflux/vericache/ast"
	"github.com/veriflux/vericache/backend"
	"github.com/veriflux/vericache/resilience"
	"github.com/veriflux/vericache/secret"
)

func init() {
	_ = backend.DefaultRegistry.Register("remote", newFromConfig)
}

// Config configures a remote backend instance. New uses APIKey as given.
// When the backend is built through the registry, newFromConfig first
// expands `${NAME}` environment references in the key with
// secret.ExpandEnvStrict; `secretref:` references are not resolved.
type Config struct {
	ID         string
	Endpoint   string
	APIKey     string
	Timeout    time.Duration
	MaxRetries int
}

// Backend dispatches verification requests to an external solver service
// over HTTP.
type Backend struct {
	id       string
	endpoint string
	apiKey   string
	client   *http.Client
	executor *resilience.Executor
}

// New constructs a remote Backend from already-resolved configuration.
func New(cfg Config) *Backend {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	maxAttempts := cfg.MaxRetries + 1
	if maxAttempts < 1 {
		maxAttempts = 1
	}

	return &Backend{
		id:       cfg.ID,
		endpoint: cfg.Endpoint,
		apiKey:   cfg.APIKey,
		client:   &http.Client{},
		executor: resilience.NewExecutor(
			resilience.WithTimeout(timeout),
			resilience.WithRetry(resilience.NewRetry(resilience.RetryConfig{MaxAttempts: maxAttempts})),
			resilience.WithCircuitBreaker(resilience.NewCircuitBreaker(resilience.CircuitBreakerConfig{})),
		),
	}
}

func (b *Backend) ID() string { return b.id }

// Verify POSTs program to the configured endpoint and decodes the response
// into a backend.Result. The HTTP round trip runs inside the executor, so a
// transient failure is retried and a persistently failing endpoint trips
// the circuit breaker rather than piling up blocked callers.
func (b *Backend) Verify(ctx context.Context, program *ast.Program) (backend.Result, error) {
	var result backend.Result

	err := b.executor.Execute(ctx, func(ctx context.Context) error {
		body, err := json.Marshal(program)
		if err != nil {
			return fmt.Errorf("remote backend %s: encode request: %w", b.id, err)
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodPost, b.endpoint, bytes.NewReader(body))
		if err != nil {
			return fmt.Errorf("remote backend %s: build request: %w", b.id, err)
		}
		req.Header.Set("Content-Type", "application/json")
		if b.apiKey != "" {
			req.Header.Set("Authorization", "Bearer "+b.apiKey)
		}

		resp, err := b.client.Do(req)
		if err != nil {
			return fmt.Errorf("remote backend %s: request: %w", b.id, err)
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			data, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
			return fmt.Errorf("remote backend %s: status %d: %s", b.id, resp.StatusCode, data)
		}

		var wire wireResult
		if err := json.NewDecoder(resp.Body).Decode(&wire); err != nil {
			return fmt.Errorf("remote backend %s: decode response: %w", b.id, err)
		}
		result = wire.toResult(program)
		return nil
	})

	return result, err
}

func (b *Backend) Stop(context.Context) error {
	b.client.CloseIdleConnections()
	return nil
}

// newFromConfig lets the backend registry construct a remote backend from
// plain configuration, expanding environment references in cfg["apiKey"] first.
func newFromConfig(cfg map[string]any) (backend.Backend, error) {
	endpoint, _ := cfg["endpoint"].(string)
	if endpoint == "" {
		return nil, fmt.Errorf(`backend: remote factory requires cfg["endpoint"]`)
	}
	id, _ := cfg["id"].(string)
	if id == "" {
		id = "remote"
	}

	apiKey, _ := cfg["apiKey"].(string)
	if apiKey != "" {
		resolved, err := secret.ExpandEnvStrict(apiKey)
		if err != nil {
			return nil, fmt.Errorf("backend: resolve remote apiKey: %w", err)
		}
		apiKey = resolved
	}

	var timeout time.Duration
	if ms, ok := cfg["timeoutMs"].(int); ok {
		timeout = time.Duration(ms) * time.Millisecond
	}
	maxRetries, _ := cfg["maxRetries"].(int)

	return New(Config{ID: id, Endpoint: endpoint, APIKey: apiKey, Timeout: timeout, MaxRetries: maxRetries}), nil
}

var _ backend.Backend = (*Backend)(nil)

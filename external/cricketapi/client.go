package cricketapi

import (
	"bytes"
	"context"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	sonic "github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/riskibarqy/cricket-tournament/internal/platform/logging"
	"github.com/riskibarqy/cricket-tournament/internal/platform/resilience"
)

const (
	defaultBaseURL  = "http://localhost:8080"
	maxResponseBody = 4 << 20
	maxLoggedBody   = 2048
)

var (
	errTransient = crerr.New("cricket api transient failure")

	// ErrUnavailable is returned while the circuit breaker rejects calls.
	ErrUnavailable = crerr.New("cricket api is temporarily unavailable")
)

// APIError is a non-2xx response decoded from the error envelope.
type APIError struct {
	HTTPStatus int
	Status     string
	Message    string
	Fields     []FieldError
}

type FieldError struct {
	Location string `json:"location"`
	Reason   string `json:"reason"`
	Message  string `json:"message"`
}

func (e *APIError) Error() string {
	if len(e.Fields) == 0 {
		return fmt.Sprintf("cricket api status=%d %s: %s", e.HTTPStatus, e.Status, e.Message)
	}
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		if f.Location == "" {
			parts = append(parts, f.Message)
			continue
		}
		parts = append(parts, f.Location+": "+f.Message)
	}
	return fmt.Sprintf("cricket api status=%d %s: %s (%s)", e.HTTPStatus, e.Status, e.Message, strings.Join(parts, "; "))
}

// IsStatus reports whether err is an APIError with the given HTTP status.
func IsStatus(err error, status int) bool {
	var apiErr *APIError
	return stderrors.As(err, &apiErr) && apiErr.HTTPStatus == status
}

type ClientConfig struct {
	HTTPClient     *http.Client
	BaseURL        string
	Timeout        time.Duration
	MaxRetries     int
	Logger         *logging.Logger
	CircuitBreaker resilience.CircuitBreakerConfig
	// DryRun logs the curl preview of every write and skips sending it.
	DryRun bool
}

// Client calls the tournament administration API.
type Client struct {
	httpClient     *http.Client
	baseURL        string
	maxRetries     int
	logger         *logging.Logger
	breaker        *resilience.CircuitBreaker
	circuitEnabled bool
	dryRun         bool
}

func NewClient(cfg ClientConfig) *Client {
	logger := cfg.Logger
	if logger == nil {
		logger = logging.Default()
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{
			Timeout:   cfg.Timeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		}
	}
	if httpClient.Timeout <= 0 {
		httpClient.Timeout = 10 * time.Second
	}

	baseURL := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}

	return &Client{
		httpClient:     httpClient,
		baseURL:        baseURL,
		maxRetries:     max(cfg.MaxRetries, 0),
		logger:         logger,
		breaker:        resilience.NewCircuitBreaker(cfg.CircuitBreaker),
		circuitEnabled: cfg.CircuitBreaker.Enabled,
		dryRun:         cfg.DryRun,
	}
}

func (c *Client) BaseURL() string {
	return c.baseURL
}

type envelope struct {
	APIVersion string          `json:"apiVersion"`
	Data       json.RawMessage `json:"data"`
	Error      *envelopeError  `json:"error"`
}

type envelopeError struct {
	Code    int          `json:"code"`
	Message string       `json:"message"`
	Status  string       `json:"status"`
	Errors  []FieldError `json:"errors"`
}

// do sends one request and decodes the data member of the envelope into out (when non-nil).
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	fullURL := c.baseURL + "/" + strings.TrimLeft(path, "/")

	var payload []byte
	if body != nil {
		raw, err := sonic.Marshal(body)
		if err != nil {
			return crerr.Wrapf(err, "marshal %s %s body", method, path)
		}
		payload = raw
	}

	if method != http.MethodGet {
		preview := buildCurlPreview(method, fullURL, truncateForLog(string(payload), maxLoggedBody))
		if span := trace.SpanFromContext(ctx); span.IsRecording() {
			span.SetAttributes(
				attribute.String("cricketapi.method", method),
				attribute.String("cricketapi.path", path),
				attribute.String("cricketapi.request_curl_preview", preview),
			)
		}
		if c.dryRun {
			c.logger.InfoContext(ctx, "cricket api dry run", "method", method, "path", path, "curl_preview", preview)
			return nil
		}
		c.logger.DebugContext(ctx, "cricket api request", "method", method, "path", path, "curl_preview", preview)
	}

	if c.circuitEnabled {
		if err := c.breaker.Allow(); err != nil {
			c.logger.WarnContext(ctx, "cricket api circuit breaker rejected request", "state", c.breaker.State(), "path", path)
			return ErrUnavailable
		}
	}
	raw, err := c.executeRequest(ctx, method, fullURL, payload)
	c.recordCircuitResult(err)
	if err != nil {
		return err
	}

	if out == nil {
		return nil
	}
	var env envelope
	if err := sonic.Unmarshal(raw, &env); err != nil {
		return crerr.Wrapf(err, "decode %s %s response", method, path)
	}
	if len(env.Data) == 0 {
		return crerr.Newf("%s %s response has no data", method, path)
	}
	if err := sonic.Unmarshal(env.Data, out); err != nil {
		return crerr.Wrapf(err, "decode %s %s data", method, path)
	}
	return nil
}

func (c *Client) executeRequest(ctx context.Context, method, fullURL string, payload []byte) ([]byte, error) {
	var lastErr error
	for attempt := 0; attempt <= c.maxRetries; attempt++ {
		var reader io.Reader
		if payload != nil {
			reader = bytes.NewReader(payload)
		}
		req, err := http.NewRequestWithContext(ctx, method, fullURL, reader)
		if err != nil {
			return nil, crerr.Wrap(err, "build request")
		}
		req.Header.Set("Accept", "application/json")
		if payload != nil {
			req.Header.Set("Content-Type", "application/json")
		}

		resp, err := c.httpClient.Do(req)
		if err != nil {
			lastErr = fmt.Errorf("%w: %s %s: %v", errTransient, method, fullURL, err)
		} else {
			raw, readErr := io.ReadAll(io.LimitReader(resp.Body, maxResponseBody))
			_ = resp.Body.Close()
			switch {
			case readErr != nil:
				lastErr = fmt.Errorf("%w: read response body: %v", errTransient, readErr)
			case resp.StatusCode >= 200 && resp.StatusCode < 300:
				return raw, nil
			case isRetryableStatus(resp.StatusCode):
				lastErr = fmt.Errorf("%w: %w", errTransient, decodeAPIError(resp.StatusCode, raw))
			default:
				return nil, decodeAPIError(resp.StatusCode, raw)
			}
		}

		if attempt == c.maxRetries || !canRetry(method) {
			break
		}
		timer := time.NewTimer(time.Duration(attempt+1) * 200 * time.Millisecond)
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil, ctx.Err()
		case <-timer.C:
		}
	}
	return nil, lastErr
}

// recordCircuitResult counts only transport failures and 5xx answers against the breaker.
func (c *Client) recordCircuitResult(err error) {
	if !c.circuitEnabled {
		return
	}
	if err != nil && stderrors.Is(err, errTransient) {
		c.breaker.RecordFailure()
		return
	}
	c.breaker.RecordSuccess()
}

func decodeAPIError(status int, raw []byte) error {
	apiErr := &APIError{HTTPStatus: status, Status: http.StatusText(status)}
	var env envelope
	if err := sonic.Unmarshal(raw, &env); err == nil && env.Error != nil {
		apiErr.Status = env.Error.Status
		apiErr.Message = env.Error.Message
		apiErr.Fields = env.Error.Errors
		return apiErr
	}
	apiErr.Message = truncateForLog(strings.TrimSpace(string(raw)), 256)
	return apiErr
}

// canRetry reports whether method may be resent; POST never is.
func canRetry(method string) bool {
	return method != http.MethodPost
}

func isRetryableStatus(statusCode int) bool {
	return statusCode == http.StatusRequestTimeout ||
		statusCode == http.StatusTooManyRequests ||
		statusCode >= http.StatusInternalServerError
}

func escape(segment string) string {
	return url.PathEscape(strings.TrimSpace(segment))
}

func truncateForLog(value string, limit int) string {
	if limit <= 0 || len(value) <= limit {
		return value
	}
	return value[:limit] + "...(truncated)"
}

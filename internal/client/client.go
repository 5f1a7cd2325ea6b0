package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math/rand/v2"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/osse101/MagicGarden_Go/internal/domain"
	"github.com/osse101/MagicGarden_Go/internal/logger"
	"github.com/osse101/MagicGarden_Go/internal/metrics"
	"github.com/osse101/MagicGarden_Go/internal/validation"
)

// Authority is the remote game backend that owns all persistent state
type Authority interface {
	GetPlayer(ctx context.Context, userID string) (*domain.Player, error)
	GetInventory(ctx context.Context, userID string) ([]domain.Plant, error)
	GetGarden(ctx context.Context, userID string) ([]domain.Bed, error)
	GetPlants(ctx context.Context) ([]domain.Plant, error)
	PerformAction(ctx context.Context, req domain.ActionRequest) (*domain.ActionResponse, error)
}

// APIClient talks to the authority over HTTP
type APIClient struct {
	BaseURL    string
	APIKey     string
	Client     *http.Client
	MaxRetries int
	RetryDelay time.Duration
	// ReadTimeout bounds each GET including its retries. Zero means none.
	ReadTimeout time.Duration

	schemas  validation.SchemaValidator
	validate *validator.Validate
}

// Option configures an APIClient
type Option func(*APIClient)

// WithHTTPClient replaces the underlying HTTP client
func WithHTTPClient(c *http.Client) Option {
	return func(a *APIClient) { a.Client = c }
}

// WithRetry sets the retry budget for reads
func WithRetry(maxRetries int, delay time.Duration) Option {
	return func(a *APIClient) {
		a.MaxRetries = maxRetries
		a.RetryDelay = delay
	}
}

// WithReadTimeout bounds the idempotent reads. PerformAction never gets a
// deadline from the client.
func WithReadTimeout(d time.Duration) Option {
	return func(a *APIClient) { a.ReadTimeout = d }
}

// NewAPIClient creates a new authority client. Actions carry no client-side
// timeout; callers bound them through the context.
func NewAPIClient(baseURL, apiKey string, opts ...Option) (*APIClient, error) {
	schemas, err := validation.NewSchemaValidator()
	if err != nil {
		return nil, fmt.Errorf("failed to load response schemas: %w", err)
	}

	c := &APIClient{
		BaseURL:    strings.TrimRight(baseURL, "/"),
		APIKey:     apiKey,
		Client:     &http.Client{},
		MaxRetries: DefaultMaxRetries,
		RetryDelay: DefaultRetryDelay,
		schemas:    schemas,
		validate:   validator.New(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// doRequest performs one HTTP exchange, retrying network failures and 5xx
// responses only when retry is set. The body is fully read before returning.
func (c *APIClient) doRequest(ctx context.Context, method, path, endpoint string, body interface{}, retry bool) (int, []byte, error) {
	log := logger.FromContext(ctx)

	var reqBody []byte
	if body != nil {
		var err error
		reqBody, err = json.Marshal(body)
		if err != nil {
			return 0, nil, fmt.Errorf("failed to marshal body: %w", err)
		}
	}

	target := c.BaseURL + path
	attempts := 1
	if retry {
		attempts += c.MaxRetries
	}

	var lastErr error
	for attempt := 0; attempt < attempts; attempt++ {
		if attempt > 0 {
			delay := c.RetryDelay*time.Duration(1<<uint(attempt-1)) + time.Duration(rand.Int64N(int64(maxJitter)))
			log.Info(LogMsgRetryingRequest, "attempt", attempt, "path", path, "delay", delay)
			metrics.AuthorityRetries.WithLabelValues(endpoint).Inc()

			timer := time.NewTimer(delay)
			select {
			case <-ctx.Done():
				timer.Stop()
				return 0, nil, fmt.Errorf("%w: %v", domain.ErrTransport, ctx.Err())
			case <-timer.C:
			}
		}

		req, err := http.NewRequestWithContext(ctx, method, target, bytes.NewReader(reqBody))
		if err != nil {
			return 0, nil, fmt.Errorf("failed to create request: %w", err)
		}
		req.Header.Set("Accept", "application/json")
		if body != nil {
			req.Header.Set("Content-Type", "application/json")
		}
		if c.APIKey != "" {
			req.Header.Set(HeaderAPIKey, c.APIKey)
		}
		if id := logger.GetRequestID(ctx); id != "" {
			req.Header.Set("X-Request-ID", id)
		}

		resp, err := c.Client.Do(req)
		if err != nil {
			lastErr = err
			metrics.AuthorityRequests.WithLabelValues(endpoint, "error").Inc()
			log.Warn(LogMsgRequestFailed, "error", err, "attempt", attempt, "path", path)
			if ctx.Err() != nil {
				break
			}
			continue
		}

		data, err := io.ReadAll(resp.Body)
		resp.Body.Close()
		metrics.AuthorityRequests.WithLabelValues(endpoint, strconv.Itoa(resp.StatusCode)).Inc()
		if err != nil {
			lastErr = err
			continue
		}

		if resp.StatusCode < 500 || !retry {
			return resp.StatusCode, data, nil
		}

		lastErr = newAPIError(resp.StatusCode, data)
		log.Warn(LogMsgServerErrorRetry, "status", resp.StatusCode, "attempt", attempt, "path", path)
	}

	if attempts > 1 {
		return 0, nil, fmt.Errorf("%w: max retries exceeded: %v", domain.ErrTransport, lastErr)
	}
	return 0, nil, fmt.Errorf("%w: %v", domain.ErrTransport, lastErr)
}

// getJSON fetches path, checks the body against schemaName if set, and decodes into out
func (c *APIClient) getJSON(ctx context.Context, path, endpoint, schemaName string, out interface{}) error {
	if c.ReadTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.ReadTimeout)
		defer cancel()
	}

	status, data, err := c.doRequest(ctx, http.MethodGet, path, endpoint, nil, true)
	if err != nil {
		return err
	}
	if status < 200 || status >= 300 {
		return newAPIError(status, data)
	}

	if schemaName != "" {
		if err := c.schemas.ValidateBytes(data, schemaName); err != nil {
			logger.FromContext(ctx).Warn(LogMsgResponseInvalid, "endpoint", endpoint, "error", err)
			return fmt.Errorf("%w: %v", domain.ErrInvalidResponse, err)
		}
	}

	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("%w: failed to decode %s: %v", domain.ErrInvalidResponse, endpoint, err)
	}
	return nil
}

// GetPlayer retrieves the player's profile and counters
func (c *APIClient) GetPlayer(ctx context.Context, userID string) (*domain.Player, error) {
	var player domain.Player
	if err := c.getJSON(ctx, fmt.Sprintf(PathPlayerFormat, url.PathEscape(userID)), EndpointPlayer, "", &player); err != nil {
		return nil, err
	}
	return &player, nil
}

// GetInventory retrieves the purchased but unplanted plants
func (c *APIClient) GetInventory(ctx context.Context, userID string) ([]domain.Plant, error) {
	var plants []domain.Plant
	if err := c.getJSON(ctx, fmt.Sprintf(PathInventoryFormat, url.PathEscape(userID)), EndpointInventory, validation.SchemaInventory, &plants); err != nil {
		return nil, err
	}
	return plants, nil
}

// GetGarden retrieves the bed list
func (c *APIClient) GetGarden(ctx context.Context, userID string) ([]domain.Bed, error) {
	var garden domain.GardenResponse
	if err := c.getJSON(ctx, fmt.Sprintf(PathGardenFormat, url.PathEscape(userID)), EndpointGarden, validation.SchemaGarden, &garden); err != nil {
		return nil, err
	}
	return garden.Beds, nil
}

// GetPlants retrieves the authority's plant catalog
func (c *APIClient) GetPlants(ctx context.Context) ([]domain.Plant, error) {
	var plants []domain.Plant
	if err := c.getJSON(ctx, PathPlants, EndpointPlants, validation.SchemaInventory, &plants); err != nil {
		return nil, err
	}
	return plants, nil
}

// PerformAction submits a game action. It is sent exactly once.
func (c *APIClient) PerformAction(ctx context.Context, req domain.ActionRequest) (*domain.ActionResponse, error) {
	log := logger.FromContext(ctx)

	if err := c.validateRequest(req); err != nil {
		log.Warn(LogMsgRequestValidation, "action", req.ActionType, "error", err)
		return nil, err
	}

	log.Debug(LogMsgActionSent, "action", req.ActionType)
	status, data, err := c.doRequest(ctx, http.MethodPost, PathGameAction, EndpointAction, req, false)
	if err != nil {
		return nil, err
	}

	if status < 200 || status >= 300 {
		apiErr := newAPIError(status, data)
		log.Info(LogMsgActionRejected, "action", req.ActionType, "status", status, "detail", apiErr.Detail)
		return nil, apiErr
	}

	if err := c.schemas.ValidateBytes(data, validation.SchemaActionResponse); err != nil {
		log.Warn(LogMsgResponseInvalid, "endpoint", EndpointAction, "error", err)
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidResponse, err)
	}

	var resp domain.ActionResponse
	if err := json.Unmarshal(data, &resp); err != nil {
		return nil, fmt.Errorf("%w: failed to decode action response: %v", domain.ErrInvalidResponse, err)
	}

	if !resp.Success {
		detail := resp.Detail
		if detail == "" {
			detail = resp.Message
		}
		if detail == "" {
			detail = DefaultRejectionDetail
		}
		log.Info(LogMsgActionRejected, "action", req.ActionType, "status", status, "detail", detail)
		return nil, &APIError{Status: status, Detail: detail}
	}

	log.Debug(LogMsgActionCompleted, "action", req.ActionType, "animation", resp.AnimationType)
	return &resp, nil
}

// validateRequest checks struct tags and the per-kind required fields
func (c *APIClient) validateRequest(req domain.ActionRequest) error {
	if err := c.validate.Struct(req); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}

	var missing []string
	need := func(name string, v *int) {
		if v == nil {
			missing = append(missing, name)
		}
	}

	switch req.ActionType {
	case domain.ActionBuyPlant:
		need("plantId", req.PlantID)
		need("price", req.Price)
	case domain.ActionPlantSeed:
		need("bedId", req.BedID)
		need("plantId", req.PlantID)
		need("growTime", req.GrowTime)
	case domain.ActionHarvest:
		need("bedId", req.BedID)
	case domain.ActionUnlockBed:
		need("bedId", req.BedID)
		need("cost", req.Cost)
	}

	if len(missing) > 0 {
		return fmt.Errorf("%w: %s requires %s", domain.ErrInvalidInput, req.ActionType, strings.Join(missing, ", "))
	}
	return nil
}

// Package profileapi fetches profile data from the remote portfolio API.
//
// Calls never return a Go error: every operation yields a Result that holds
// either the decoded value or a *FetchError. Deciding whether to fall back to
// static content is left to the caller.
package profileapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"golang.org/x/time/rate"

	"sagarneeli.dev/internal/models"
)

// API paths, relative to the base URL.
const (
	PathProfile    = "/api/v1/portfolio/profile"
	PathExperience = "/api/v1/portfolio/experience"
	PathProjects   = "/api/v1/portfolio/projects"
	PathSkills     = "/api/v1/portfolio/skills"
)

// maxBodyBytes caps how much of a response body is read.
const maxBodyBytes = 1 << 20

var (
	// ErrDisabled means no base URL is configured.
	ErrDisabled = errors.New("profile api disabled")
	// ErrThrottled means the outbound rate limit refused the call.
	ErrThrottled = errors.New("profile api call throttled")
	// ErrUnexpectedStatus indicates a non-200 response.
	ErrUnexpectedStatus = errors.New("unexpected status code")
	// ErrInvalidPayload indicates a body that failed to decode or validate.
	ErrInvalidPayload = errors.New("invalid payload")
)

// FetchError describes a failed call to one endpoint.
type FetchError struct {
	Endpoint   string
	StatusCode int // zero when no response was received
	Err        error
}

func (e *FetchError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("profileapi: %s: status %d: %v", e.Endpoint, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("profileapi: %s: %v", e.Endpoint, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// Result is the outcome of one fetch: Value is meaningful only when Err is nil.
type Result[T any] struct {
	Value T
	Err   *FetchError
}

// OK reports whether the fetch succeeded.
func (r Result[T]) OK() bool {
	return r.Err == nil
}

// Client talks to the portfolio API.
type Client struct {
	baseURL  string
	http     *http.Client
	limiter  *rate.Limiter
	validate *validator.Validate
	logger   *slog.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

// WithTimeout sets the per-request timeout of the default HTTP client.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.http.Timeout = d }
}

// WithRateLimit limits outbound calls to rps per second with the given burst.
// A non-positive rps disables limiting.
func WithRateLimit(rps float64, burst int) Option {
	return func(c *Client) {
		if rps <= 0 {
			c.limiter = nil
			return
		}
		c.limiter = rate.NewLimiter(rate.Limit(rps), max(burst, 1))
	}
}

// WithLogger sets the client logger.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) { c.logger = logger }
}

// New creates a Client for baseURL. An empty baseURL yields a client whose
// calls all fail with ErrDisabled.
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:  strings.TrimRight(baseURL, "/"),
		http:     &http.Client{Timeout: 5 * time.Second},
		validate: validator.New(),
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Enabled reports whether a base URL is configured.
func (c *Client) Enabled() bool {
	return c.baseURL != ""
}

// Profile fetches the profile.
func (c *Client) Profile(ctx context.Context) Result[models.Profile] {
	var p models.Profile
	if ferr := c.fetch(ctx, PathProfile, &p); ferr != nil {
		return Result[models.Profile]{Err: ferr}
	}
	return Result[models.Profile]{Value: p}
}

// Experience fetches the experience list.
func (c *Client) Experience(ctx context.Context) Result[[]models.RemoteExperience] {
	var list models.ExperienceList
	if ferr := c.fetch(ctx, PathExperience, &list); ferr != nil {
		return Result[[]models.RemoteExperience]{Err: ferr}
	}
	return Result[[]models.RemoteExperience]{Value: list.Experience}
}

// Projects fetches the project list.
func (c *Client) Projects(ctx context.Context) Result[[]models.RemoteProject] {
	var list models.RemoteProjectList
	if ferr := c.fetch(ctx, PathProjects, &list); ferr != nil {
		return Result[[]models.RemoteProject]{Err: ferr}
	}
	return Result[[]models.RemoteProject]{Value: list.Projects}
}

// Skills fetches skills grouped by category key.
func (c *Client) Skills(ctx context.Context) Result[models.Skills] {
	var skills models.Skills
	if ferr := c.fetch(ctx, PathSkills, &skills); ferr != nil {
		return Result[models.Skills]{Err: ferr}
	}
	return Result[models.Skills]{Value: skills}
}

// fetch performs one GET and decodes the JSON body into out.
func (c *Client) fetch(ctx context.Context, path string, out any) *FetchError {
	if !c.Enabled() {
		return &FetchError{Endpoint: path, Err: ErrDisabled}
	}
	if c.limiter != nil && !c.limiter.Allow() {
		return &FetchError{Endpoint: path, Err: ErrThrottled}
	}

	start := time.Now()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, http.NoBody)
	if err != nil {
		return &FetchError{Endpoint: path, Err: fmt.Errorf("failed to create request: %w", err)}
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Cache-Control", "no-store")

	resp, err := c.http.Do(req)
	if err != nil {
		return &FetchError{Endpoint: path, Err: fmt.Errorf("request failed: %w", err)}
	}
	defer func() {
		if closeErr := resp.Body.Close(); closeErr != nil {
			c.logger.Debug("failed to close response body", "endpoint", path, "error", closeErr)
		}
	}()

	if resp.StatusCode != http.StatusOK {
		return &FetchError{Endpoint: path, StatusCode: resp.StatusCode, Err: ErrUnexpectedStatus}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return &FetchError{Endpoint: path, StatusCode: resp.StatusCode, Err: fmt.Errorf("failed to read response body: %w", err)}
	}
	if err := json.Unmarshal(body, out); err != nil {
		return &FetchError{Endpoint: path, StatusCode: resp.StatusCode, Err: fmt.Errorf("%w: %v", ErrInvalidPayload, err)}
	}
	if err := c.check(out); err != nil {
		return &FetchError{Endpoint: path, StatusCode: resp.StatusCode, Err: fmt.Errorf("%w: %v", ErrInvalidPayload, err)}
	}

	c.logger.Debug("profile api call", "endpoint", path, "duration", time.Since(start))
	return nil
}

// check validates struct payloads; maps are accepted as decoded.
func (c *Client) check(out any) error {
	switch v := out.(type) {
	case *models.Profile:
		return c.validate.Struct(v)
	case *models.ExperienceList:
		return c.validate.Struct(v)
	case *models.RemoteProjectList:
		return c.validate.Struct(v)
	case *models.Skills:
		if *v == nil {
			return errors.New("empty skills payload")
		}
	}
	return nil
}

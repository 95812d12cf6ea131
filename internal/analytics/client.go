package analytics

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// Fetcher defines the analytics queries the dashboard issues.
// This interface is implemented by *Client and can be used for testing.
type Fetcher interface {
	FetchEvolution(ctx context.Context, startMonth, endMonth string) (EvolutionMetric, error)
	FetchEvolutionTrend(ctx context.Context, startMonth, endMonth string) ([]EvolutionMetric, error)
	FetchInteractionsTrend(ctx context.Context, year string) ([]MonthlyInteraction, error)
	FetchOvertimeRisk(ctx context.Context) ([]OvertimeRisk, error)
	FetchProjectDurations(ctx context.Context) ([]ProjectDuration, error)
	FetchAverageProjectDuration(ctx context.Context) (float64, error)
	FetchHandovers(ctx context.Context) ([]HandoverFlow, error)
	FetchUtilization(ctx context.Context) ([]UtilizationMetric, error)
	FetchRoleInteractions(ctx context.Context) ([]RoleInteraction, error)
	FetchTopRoleInteractions(ctx context.Context, limit int) ([]RoleInteraction, error)
	FetchRoles(ctx context.Context) ([]Entity, error)
	FetchUsers(ctx context.Context) ([]Entity, error)
	FetchUserCollaboration(ctx context.Context, month string) ([]UserCollaboration, error)
	FetchBPMN(ctx context.Context) (BPMNData, error)
}

// Ensure Client implements Fetcher at compile time.
var _ Fetcher = (*Client)(nil)

// Client talks to the analytics HTTP API.
type Client struct {
	baseURL   *url.URL
	http      *http.Client
	limiter   *rate.Limiter
	logger    *zap.Logger
	userAgent string
}

// Options configure a Client. Zero values select defaults.
type Options struct {
	BaseURL           string
	Timeout           time.Duration
	RequestsPerSecond float64
	Logger            *zap.Logger
	HTTPClient        *http.Client
}

const (
	defaultBaseURL    = "http://127.0.0.1:8000/api"
	defaultUserAgent  = "orgmine/0.1"
	defaultTimeout    = 30 * time.Second
	maxErrorBodyBytes = 64 << 10
)

// NewClient builds a Client for the API rooted at opts.BaseURL.
func NewClient(opts Options) (*Client, error) {
	base, err := parseBaseURL(opts.BaseURL)
	if err != nil {
		return nil, err
	}

	httpClient := opts.HTTPClient
	if httpClient == nil {
		timeout := opts.Timeout
		if timeout <= 0 {
			timeout = defaultTimeout
		}
		httpClient = &http.Client{Timeout: timeout}
	}

	limit := rate.Inf
	burst := 1
	if opts.RequestsPerSecond > 0 {
		limit = rate.Limit(opts.RequestsPerSecond)
		burst = max(1, int(opts.RequestsPerSecond))
	}

	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Client{
		baseURL:   base,
		http:      httpClient,
		limiter:   rate.NewLimiter(limit, burst),
		logger:    logger,
		userAgent: defaultUserAgent,
	}, nil
}

// BaseURL returns the API root the client resolves paths against.
func (c *Client) BaseURL() string {
	return c.baseURL.String()
}

// FetchEvolution retrieves the aggregate evolution metric for a month range.
func (c *Client) FetchEvolution(ctx context.Context, startMonth, endMonth string) (EvolutionMetric, error) {
	var payload EvolutionMetric
	err := c.get(ctx, "/organization/evolution", monthRange(startMonth, endMonth), &payload)
	return payload, err
}

// FetchEvolutionTrend retrieves one evolution metric per phase in a month range.
func (c *Client) FetchEvolutionTrend(ctx context.Context, startMonth, endMonth string) ([]EvolutionMetric, error) {
	var payload []EvolutionMetric
	err := c.get(ctx, "/organization/evolution-trend", monthRange(startMonth, endMonth), &payload)
	return payload, err
}

// FetchInteractionsTrend retrieves monthly interaction totals, optionally for one year.
func (c *Client) FetchInteractionsTrend(ctx context.Context, year string) ([]MonthlyInteraction, error) {
	values := url.Values{}
	if y := strings.TrimSpace(year); y != "" {
		values.Set("year", y)
	}
	var payload []MonthlyInteraction
	err := c.get(ctx, "/organization/interactions-trend", values, &payload)
	return payload, err
}

// FetchOvertimeRisk retrieves the people who most often work overtime.
func (c *Client) FetchOvertimeRisk(ctx context.Context) ([]OvertimeRisk, error) {
	var payload []OvertimeRisk
	err := c.get(ctx, "/organization/overtime", nil, &payload)
	return payload, err
}

// FetchProjectDurations retrieves the duration of every case.
func (c *Client) FetchProjectDurations(ctx context.Context) ([]ProjectDuration, error) {
	var payload []ProjectDuration
	err := c.get(ctx, "/organization/project-durations", nil, &payload)
	return payload, err
}

// FetchAverageProjectDuration retrieves the mean case duration in days.
func (c *Client) FetchAverageProjectDuration(ctx context.Context) (float64, error) {
	var payload float64
	err := c.get(ctx, "/organization/project-durations/average", nil, &payload)
	return payload, err
}

// FetchHandovers retrieves average handover durations between roles.
func (c *Client) FetchHandovers(ctx context.Context) ([]HandoverFlow, error) {
	var payload []HandoverFlow
	err := c.get(ctx, "/organization/handovers", nil, &payload)
	return payload, err
}

// FetchUtilization retrieves event counts per weekday and hour.
func (c *Client) FetchUtilization(ctx context.Context) ([]UtilizationMetric, error) {
	var payload []UtilizationMetric
	err := c.get(ctx, "/organization/utilization", nil, &payload)
	return payload, err
}

// FetchRoleInteractions retrieves every weighted role pair.
func (c *Client) FetchRoleInteractions(ctx context.Context) ([]RoleInteraction, error) {
	var payload []RoleInteraction
	err := c.get(ctx, "/roles/interactions", nil, &payload)
	return payload, err
}

// FetchTopRoleInteractions retrieves the heaviest role pairs.
func (c *Client) FetchTopRoleInteractions(ctx context.Context, limit int) ([]RoleInteraction, error) {
	values := url.Values{}
	if limit > 0 {
		values.Set("limit", strconv.Itoa(limit))
	}
	var payload []RoleInteraction
	err := c.get(ctx, "/roles/top-interactions", values, &payload)
	return payload, err
}

// FetchRoles retrieves all role names.
func (c *Client) FetchRoles(ctx context.Context) ([]Entity, error) {
	var payload []Entity
	err := c.get(ctx, "/roles/all", nil, &payload)
	return payload, err
}

// FetchUsers retrieves all user names.
func (c *Client) FetchUsers(ctx context.Context) ([]Entity, error) {
	var payload []Entity
	err := c.get(ctx, "/users/all", nil, &payload)
	return payload, err
}

// FetchUserCollaboration retrieves weighted user pairs for one month.
func (c *Client) FetchUserCollaboration(ctx context.Context, month string) ([]UserCollaboration, error) {
	values := url.Values{}
	if m := strings.TrimSpace(month); m != "" {
		values.Set("month", m)
	}
	var payload []UserCollaboration
	err := c.get(ctx, "/users/collaboration", values, &payload)
	return payload, err
}

// FetchBPMN retrieves the mined process graph.
func (c *Client) FetchBPMN(ctx context.Context) (BPMNData, error) {
	var payload BPMNData
	err := c.get(ctx, "/bpmn/data", nil, &payload)
	return payload, err
}

func monthRange(start, end string) url.Values {
	values := url.Values{}
	if s := strings.TrimSpace(start); s != "" {
		values.Set("start_month", s)
	}
	if e := strings.TrimSpace(end); e != "" {
		values.Set("end_month", e)
	}
	return values
}

func (c *Client) get(ctx context.Context, path string, query url.Values, dest any) error {
	if c == nil {
		return errors.New("client is nil")
	}
	reqURL := c.baseURL.JoinPath(path)
	if len(query) > 0 {
		reqURL.RawQuery = query.Encode()
	}

	if err := c.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("rate limit %s: %w", path, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL.String(), nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	requestID := uuid.NewString()
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("X-Request-ID", requestID)

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.Debug("request failed",
			zap.String("path", path),
			zap.String("request_id", requestID),
			zap.Error(err))
		return fmt.Errorf("execute request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	c.logger.Debug("request completed",
		zap.String("path", path),
		zap.String("query", reqURL.RawQuery),
		zap.String("request_id", requestID),
		zap.Int("status", resp.StatusCode),
		zap.Duration("elapsed", time.Since(start)))

	if resp.StatusCode >= 400 {
		return decodeError(resp, path)
	}
	if dest == nil {
		return nil
	}
	decoder := json.NewDecoder(resp.Body)
	if err := decoder.Decode(dest); err != nil {
		return fmt.Errorf("decode %s response: %w", path, err)
	}
	return nil
}

func decodeError(resp *http.Response, path string) error {
	apiErr := &APIError{StatusCode: resp.StatusCode, Path: path}
	body, err := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodyBytes))
	if err != nil || len(bytes.TrimSpace(body)) == 0 {
		apiErr.Message = http.StatusText(resp.StatusCode)
		return apiErr
	}
	if json.Unmarshal(body, apiErr) != nil || apiErr.Message == "" {
		apiErr.Message = http.StatusText(resp.StatusCode)
	}
	return apiErr
}

func parseBaseURL(raw string) (*url.URL, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		trimmed = defaultBaseURL
	}
	if !strings.Contains(trimmed, "://") {
		trimmed = "http://" + trimmed
	}
	u, err := url.Parse(trimmed)
	if err != nil {
		return nil, fmt.Errorf("parse api base url %q: %w", raw, err)
	}
	if u.Host == "" {
		return nil, fmt.Errorf("parse api base url %q: missing host", raw)
	}
	u.Path = strings.TrimRight(u.Path, "/")
	u.RawQuery = ""
	u.Fragment = ""
	return u, nil
}

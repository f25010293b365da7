// Package courierapi is the REST adapter for the upstream courier backend.
// It implements ports.PackageService and ports.AdminService and forwards the
// caller's bearer token found in the request context.
package courierapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"shipdesk/internal/core/domain/model/principal"
	"shipdesk/internal/core/domain/model/shipment"
	"shipdesk/internal/core/domain/model/stats"
	"shipdesk/internal/core/ports"
	"shipdesk/internal/pkg/errs"

	"go.uber.org/zap"
)

// DefaultTimeout bounds a single upstream call when no timeout is configured.
const DefaultTimeout = 10 * time.Second

const maxErrorBody = 64 << 10

type tokenKey struct{}

// WithBearerToken returns a context carrying the token to forward upstream.
func WithBearerToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, tokenKey{}, token)
}

func bearerToken(ctx context.Context) string {
	token, _ := ctx.Value(tokenKey{}).(string)
	return token
}

// Client talks to the courier backend.
type Client struct {
	baseURL *url.URL
	http    *http.Client
	logger  *zap.Logger
}

var (
	_ ports.PackageService = (*Client)(nil)
	_ ports.AdminService   = (*Client)(nil)
)

// NewClient creates a client for baseURL, e.g. "http://backend:8080".
// A non-positive timeout selects DefaultTimeout.
func NewClient(baseURL string, timeout time.Duration, logger *zap.Logger) (*Client, error) {
	if strings.TrimSpace(baseURL) == "" {
		return nil, errs.NewValueIsRequiredError("baseURL")
	}
	parsed, err := url.Parse(strings.TrimRight(baseURL, "/"))
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return nil, errs.NewValueIsInvalidErrorWithCause("baseURL", fmt.Errorf("%q is not an absolute URL", baseURL))
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	return &Client{
		baseURL: parsed,
		http:    &http.Client{Timeout: timeout},
		logger:  logger.With(zap.String("component", "courierapi")),
	}, nil
}

func (c *Client) GetAllPackages(ctx context.Context, size int) (ports.Page[shipment.Shipment], error) {
	var page pageDTO[packageDTO]
	query := url.Values{"size": {strconv.Itoa(size)}}
	if err := c.do(ctx, "get all packages", http.MethodGet, "/api/packages", query, &page); err != nil {
		return ports.Page[shipment.Shipment]{}, err
	}
	return ports.Page[shipment.Shipment]{
		Content:       packagesToDomain(page.Content),
		TotalElements: page.TotalElements,
	}, nil
}

func (c *Client) GetMyPackages(ctx context.Context) ([]shipment.Shipment, error) {
	var list []packageDTO
	if err := c.do(ctx, "get my packages", http.MethodGet, "/api/packages/my", nil, &list); err != nil {
		return nil, err
	}
	return packagesToDomain(list), nil
}

func (c *Client) CancelPackage(ctx context.Context, id string) error {
	path := "/api/packages/" + url.PathEscape(id) + "/cancel"
	return c.do(ctx, "cancel package", http.MethodPut, path, nil, nil)
}

func (c *Client) GetStats(ctx context.Context) (stats.DashboardStats, error) {
	var dto statsDTO
	if err := c.do(ctx, "get stats", http.MethodGet, "/api/admin/stats", nil, &dto); err != nil {
		return stats.DashboardStats{}, err
	}
	return dto.toDomain(), nil
}

func (c *Client) GetAllUsers(ctx context.Context, size int) (ports.Page[principal.User], error) {
	var page pageDTO[userDTO]
	query := url.Values{"size": {strconv.Itoa(size)}}
	if err := c.do(ctx, "get all users", http.MethodGet, "/api/admin/users", query, &page); err != nil {
		return ports.Page[principal.User]{}, err
	}
	return ports.Page[principal.User]{
		Content:       usersToDomain(page.Content),
		TotalElements: page.TotalElements,
	}, nil
}

func (c *Client) AssignCourier(ctx context.Context, shipmentID, courierID string) error {
	path := "/api/admin/packages/" + url.PathEscape(shipmentID) + "/assign/" + url.PathEscape(courierID)
	return c.do(ctx, "assign courier", http.MethodPut, path, nil, nil)
}

// do issues one request. A non-2xx answer becomes an *errs.RemoteError
// carrying the backend's "message" field; transport failures keep their cause.
func (c *Client) do(ctx context.Context, op, method, path string, query url.Values, out any) error {
	target := c.baseURL.JoinPath(path)
	if query != nil {
		target.RawQuery = query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, target.String(), nil)
	if err != nil {
		return errs.NewRemoteErrorWithCause(op, err)
	}
	req.Header.Set("Accept", "application/json")
	if token := bearerToken(ctx); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	started := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.Warn("upstream call failed", zap.String("op", op), zap.Error(err))
		return errs.NewRemoteErrorWithCause(op, err)
	}
	defer resp.Body.Close()

	c.logger.Debug("upstream call",
		zap.String("op", op),
		zap.Int("status", resp.StatusCode),
		zap.Duration("took", time.Since(started)))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return errs.NewRemoteError(op, resp.StatusCode, errorMessage(resp.Body))
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err = json.NewDecoder(resp.Body).Decode(out); err != nil {
		return errs.NewRemoteErrorWithCause(op, fmt.Errorf("decode response: %w", err))
	}
	return nil
}

func errorMessage(body io.Reader) string {
	raw, err := io.ReadAll(io.LimitReader(body, maxErrorBody))
	if err != nil || len(raw) == 0 {
		return ""
	}
	var dto errorDTO
	if json.Unmarshal(raw, &dto) != nil {
		return ""
	}
	return dto.Message
}

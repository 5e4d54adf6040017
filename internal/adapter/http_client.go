package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"sync"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/go-leave-tracker/internal/config"
	"github.com/MKhiriev/go-leave-tracker/internal/logger"
	"github.com/MKhiriev/go-leave-tracker/internal/utils"
	"github.com/MKhiriev/go-leave-tracker/models"
)

type httpServerAdapter struct {
	client *utils.HTTPClient
	reqIDs *utils.UUIDGenerator
	logger *logger.Logger

	mu    sync.RWMutex
	token models.Token
}

// NewHTTPServerAdapter constructs an HTTP/REST implementation of
// [ServerAdapter]. It normalises and validates the base URL from
// adapterCfg.ServerURL and configures the underlying HTTP client with the
// resolved base URL and request timeout.
//
// Returns an error if adapterCfg.ServerURL is empty or cannot be parsed as a
// valid URL.
func NewHTTPServerAdapter(adapterCfg config.ClientAdapter, logger *logger.Logger) (ServerAdapter, error) {
	client := utils.NewHTTPClient()
	baseURL, err := normalizeBaseURL(adapterCfg.ServerURL)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter server url: %w", err)
	}

	client.
		SetBaseURL(baseURL).
		SetTimeout(adapterCfg.RequestTimeout)

	return &httpServerAdapter{
		client: client,
		reqIDs: utils.NewUUIDGenerator(),
		logger: logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// SetToken implements [ServerAdapter]. It stores token (whitespace-trimmed)
// for use in the Authorization header of all subsequent authenticated
// requests.
func (h *httpServerAdapter) SetToken(token models.Token) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = models.Token(strings.TrimSpace(token.String()))
}

// Token implements [ServerAdapter]. It returns the bearer token currently
// held by the adapter, or the zero token if none has been set.
func (h *httpServerAdapter) Token() models.Token {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

// Login implements [ServerAdapter]. POST user/login with the supplied
// credentials; the issued token is returned but not stored.
func (h *httpServerAdapter) Login(ctx context.Context, creds models.LoginRequest) (models.Token, error) {
	resp, err := h.request(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(creds).
		Post("/user/login")
	if err != nil {
		return "", fmt.Errorf("login request: %w: %v", ErrTransport, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	var lr models.LoginResponse
	if err = json.Unmarshal(resp.Body(), &lr); err != nil {
		return "", fmt.Errorf("decode login response: %w", err)
	}
	if lr.Token.IsZero() {
		return "", fmt.Errorf("login response carries no token")
	}

	return lr.Token, nil
}

// FetchProfile implements [ServerAdapter]. GET user/me with an explicit
// bearer token; used mid-login before the token becomes the active session
// credential.
func (h *httpServerAdapter) FetchProfile(ctx context.Context, token models.Token) (models.User, error) {
	resp, err := h.request(ctx).
		SetHeader("Authorization", "Bearer "+token.String()).
		Get("/user/me")
	if err != nil {
		return models.User{}, fmt.Errorf("fetch profile request: %w: %v", ErrTransport, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, err
	}

	var user models.User
	if err = json.Unmarshal(resp.Body(), &user); err != nil {
		return models.User{}, fmt.Errorf("decode profile response: %w", err)
	}

	return user, nil
}

// ListLeaveRequests implements [ServerAdapter].
// GET user/leave/applications?limit=<limit>&page=<page> with the stored
// bearer. An empty leaveRequests array is a valid response meaning the
// collection is exhausted.
func (h *httpServerAdapter) ListLeaveRequests(ctx context.Context, page, limit int) ([]models.LeaveRequest, error) {
	resp, err := h.authedRequest(ctx).
		SetQueryParams(map[string]string{
			"limit": strconv.Itoa(limit),
			"page":  strconv.Itoa(page),
		}).
		Get("/user/leave/applications")
	if err != nil {
		return nil, fmt.Errorf("list leave requests: %w: %v", ErrTransport, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var lr models.LeaveListResponse
	if err = json.Unmarshal(resp.Body(), &lr); err != nil {
		return nil, fmt.Errorf("decode leave list response: %w", err)
	}

	return lr.LeaveRequests, nil
}

// CreateLeaveRequest implements [ServerAdapter]. POST user/request-leave with
// the stored bearer.
func (h *httpServerAdapter) CreateLeaveRequest(ctx context.Context, form models.LeaveRequestForm) (models.LeaveRequest, error) {
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(form).
		Post("/user/request-leave")
	if err != nil {
		return models.LeaveRequest{}, fmt.Errorf("create leave request: %w: %v", ErrTransport, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.LeaveRequest{}, err
	}

	var created models.LeaveRequest
	if err = json.Unmarshal(resp.Body(), &created); err != nil {
		return models.LeaveRequest{}, fmt.Errorf("decode created leave request: %w", err)
	}

	return created, nil
}

// UpdateProfile implements [ServerAdapter]. PUT user/me with the stored
// bearer; returns the server's updated identity record.
func (h *httpServerAdapter) UpdateProfile(ctx context.Context, user models.User) (models.User, error) {
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(user).
		Put("/user/me")
	if err != nil {
		return models.User{}, fmt.Errorf("update profile request: %w: %v", ErrTransport, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, err
	}

	var updated models.User
	if err = json.Unmarshal(resp.Body(), &updated); err != nil {
		return models.User{}, fmt.Errorf("decode updated profile: %w", err)
	}

	return updated, nil
}

func (h *httpServerAdapter) request(ctx context.Context) *resty.Request {
	return h.client.R().
		SetContext(ctx).
		SetHeader("X-Request-ID", h.reqIDs.Generate())
}

func (h *httpServerAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.request(ctx)
	if token := h.Token(); !token.IsZero() {
		req.SetHeader("Authorization", "Bearer "+token.String())
	}
	return req
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-leave-tracker/internal/config"
	"github.com/MKhiriev/go-leave-tracker/internal/logger"
	"github.com/MKhiriev/go-leave-tracker/models"
)

// newTestAdapter builds an httpServerAdapter pointed at a test server.
func newTestAdapter(t *testing.T, serverURL string) *httpServerAdapter {
	t.Helper()
	adapterCfg := config.ClientAdapter{ServerURL: serverURL, RequestTimeout: 5 * time.Second}

	a, err := NewHTTPServerAdapter(adapterCfg, logger.Nop())
	require.NoError(t, err)
	return a.(*httpServerAdapter)
}

// ── constructor ─────────────────────────────────────────────────────────────

func TestNewHTTPServerAdapter_EmptyURL(t *testing.T) {
	_, err := NewHTTPServerAdapter(config.ClientAdapter{}, logger.Nop())
	require.Error(t, err)
}

func TestNormalizeBaseURL(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    string
		wantErr bool
	}{
		{name: "full url", in: "http://api.test:8080/", want: "http://api.test:8080"},
		{name: "bare host gets scheme", in: "api.test:8080", want: "http://api.test:8080"},
		{name: "empty", in: "  ", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := normalizeBaseURL(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

// ── Login ───────────────────────────────────────────────────────────────────

func TestLogin_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/user/login", r.URL.Path)
		assert.NotEmpty(t, r.Header.Get("X-Request-ID"))

		var creds models.LoginRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&creds))
		assert.Equal(t, "alice@example.com", creds.Email)

		_ = json.NewEncoder(w).Encode(models.LoginResponse{Token: "issued-token"})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	token, err := a.Login(context.Background(), models.LoginRequest{Email: "alice@example.com", Password: "pw"})

	require.NoError(t, err)
	assert.Equal(t, models.Token("issued-token"), token)
	// login must not store the token; the session service decides that
	assert.True(t, a.Token().IsZero())
}

func TestLogin_BadCredentials(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_ = json.NewEncoder(w).Encode(models.ErrorResponse{Message: "invalid email or password"})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.Login(context.Background(), models.LoginRequest{Email: "x", Password: "y"})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnauthorized)
	assert.Equal(t, "invalid email or password", ServerMessage(err))
}

func TestLogin_TransportFailure(t *testing.T) {
	a := newTestAdapter(t, "http://127.0.0.1:1")

	_, err := a.Login(context.Background(), models.LoginRequest{})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrTransport)
}

// ── FetchProfile ────────────────────────────────────────────────────────────

func TestFetchProfile_UsesExplicitToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/user/me", r.URL.Path)
		assert.Equal(t, "Bearer explicit-token", r.Header.Get("Authorization"))

		_ = json.NewEncoder(w).Encode(models.User{Username: "alice", Email: "alice@example.com"})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	user, err := a.FetchProfile(context.Background(), "explicit-token")

	require.NoError(t, err)
	assert.Equal(t, "alice", user.Username)
}

// ── ListLeaveRequests ───────────────────────────────────────────────────────

func TestListLeaveRequests_PageAndBearer(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/user/leave/applications", r.URL.Path)
		assert.Equal(t, "10", r.URL.Query().Get("limit"))
		assert.Equal(t, "3", r.URL.Query().Get("page"))
		assert.Equal(t, "Bearer stored-token", r.Header.Get("Authorization"))

		_ = json.NewEncoder(w).Encode(models.LeaveListResponse{LeaveRequests: []models.LeaveRequest{
			{ID: "a", Subject: "Vacation", Status: "pending"},
			{ID: "b", Subject: "Sick leave", Status: "approved"},
		}})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	a.SetToken("stored-token")

	records, err := a.ListLeaveRequests(context.Background(), 3, 10)
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "Vacation", records[0].Subject)
}

func TestListLeaveRequests_EmptyPage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(models.LeaveListResponse{LeaveRequests: []models.LeaveRequest{}})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	a.SetToken("stored-token")

	records, err := a.ListLeaveRequests(context.Background(), 4, 10)
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestListLeaveRequests_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(models.ErrorResponse{Message: "database unavailable"})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	a.SetToken("stored-token")

	_, err := a.ListLeaveRequests(context.Background(), 1, 10)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInternalServerError)
	assert.Equal(t, "database unavailable", ServerMessage(err))
}

// ── CreateLeaveRequest ──────────────────────────────────────────────────────

func TestCreateLeaveRequest_Success(t *testing.T) {
	start := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 0, 5)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/user/request-leave", r.URL.Path)

		var form models.LeaveRequestForm
		require.NoError(t, json.NewDecoder(r.Body).Decode(&form))
		assert.Equal(t, "Vacation", form.Subject)

		_ = json.NewEncoder(w).Encode(models.LeaveRequest{
			ID:        "created-1",
			Subject:   form.Subject,
			Reason:    form.Reason,
			Status:    "pending",
			DateRange: form.DateRange,
		})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	a.SetToken("stored-token")

	created, err := a.CreateLeaveRequest(context.Background(), models.LeaveRequestForm{
		Subject:   "Vacation",
		Reason:    "family trip",
		DateRange: models.DateRange{Start: start, End: end},
	})

	require.NoError(t, err)
	assert.Equal(t, "created-1", created.ID)
	assert.True(t, created.Status.Is(models.LeavePending))
}

func TestCreateLeaveRequest_ValidationRejected(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(models.ErrorResponse{Message: "subject is required"})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	a.SetToken("stored-token")

	_, err := a.CreateLeaveRequest(context.Background(), models.LeaveRequestForm{})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrBadRequest)
	assert.Equal(t, "subject is required", ServerMessage(err))
}

// ── UpdateProfile ───────────────────────────────────────────────────────────

func TestUpdateProfile_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/user/me", r.URL.Path)

		var user models.User
		require.NoError(t, json.NewDecoder(r.Body).Decode(&user))
		_ = json.NewEncoder(w).Encode(user)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	a.SetToken("stored-token")

	updated, err := a.UpdateProfile(context.Background(), models.User{Username: "alice", Phone: "555-0101"})
	require.NoError(t, err)
	assert.Equal(t, "555-0101", updated.Phone)
}

// ── token management ────────────────────────────────────────────────────────

func TestSetToken_Trims(t *testing.T) {
	a := newTestAdapter(t, "http://localhost:8080")
	a.SetToken("  padded-token \n")
	assert.Equal(t, models.Token("padded-token"), a.Token())
}

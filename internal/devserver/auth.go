package devserver

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/MKhiriev/go-leave-tracker/internal/app"
	"github.com/MKhiriev/go-leave-tracker/internal/logger"
	"github.com/MKhiriev/go-leave-tracker/models"
)

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var creds models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		writeError(w, http.StatusBadRequest, app.MsgInvalidDataProvided)
		return
	}

	if err := h.validator.Validate(ctx, creds); err != nil {
		log.Err(err).Msg("invalid credentials payload")
		writeError(w, http.StatusBadRequest, app.MsgInvalidDataProvided)
		return
	}

	h.mu.Lock()
	email := h.user.Email
	hash := h.passwordHash
	h.mu.Unlock()

	if !strings.EqualFold(creds.Email, email) ||
		bcrypt.CompareHashAndPassword(hash, []byte(creds.Password)) != nil {
		log.Warn().Str("email", creds.Email).Msg("login rejected")
		writeError(w, http.StatusUnauthorized, app.MsgInvalidLoginPassword)
		return
	}

	token, err := h.issueToken(email)
	if err != nil {
		log.Err(err).Msg("creation of token failed")
		writeError(w, http.StatusInternalServerError, app.MsgLoginFailed)
		return
	}

	log.Info().Str("email", email).Msg("user successfully logged in")
	writeJSON(w, http.StatusOK, models.LoginResponse{Token: token})
}

// auth enforces bearer authentication on the routes behind it. The stub has
// exactly one account, so a valid token is all it checks.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		tokenString, err := bearerToken(r.Header.Get("Authorization"))
		if err != nil {
			log.Err(err).Send()
			writeError(w, http.StatusUnauthorized, app.MsgTokenIsExpiredOrInvalid)
			return
		}

		if err = h.verifyToken(tokenString); err != nil {
			if errors.Is(err, jwt.ErrTokenExpired) {
				log.Err(err).Msg("token expired")
				writeError(w, http.StatusUnauthorized, app.MsgTokenIsExpired)
				return
			}
			log.Err(err).Msg("error occurred during parsing token")
			writeError(w, http.StatusUnauthorized, app.MsgTokenIsExpiredOrInvalid)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func (h *Handler) issueToken(email string) (models.Token, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   email,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(h.cfg.TokenDuration)),
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).
		SignedString([]byte(h.cfg.TokenSignKey))
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return models.Token(signed), nil
}

func (h *Handler) verifyToken(tokenString string) error {
	_, err := jwt.Parse(tokenString, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(h.cfg.TokenSignKey), nil
	})
	return err
}

var (
	errEmptyAuthorizationHeader   = errors.New("empty Authorization header")
	errInvalidAuthorizationHeader = errors.New("invalid Authorization header")
)

func bearerToken(header string) (string, error) {
	if header == "" {
		return "", errEmptyAuthorizationHeader
	}

	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || strings.TrimSpace(parts[1]) == "" {
		return "", errInvalidAuthorizationHeader
	}
	return strings.TrimSpace(parts[1]), nil
}

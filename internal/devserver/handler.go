package devserver

import (
	"encoding/json"
	"net/http"
	"sync"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/MKhiriev/go-leave-tracker/internal/config"
	"github.com/MKhiriev/go-leave-tracker/internal/logger"
	"github.com/MKhiriev/go-leave-tracker/internal/validators"
	"github.com/MKhiriev/go-leave-tracker/models"
)

type Handler struct {
	cfg       *config.DevServerConfig
	logger    *logger.Logger
	validator validators.Validator

	mu           sync.Mutex
	user         models.User
	passwordHash []byte
	items        []models.LeaveRequest
}

func NewHandler(cfg *config.DevServerConfig, log *logger.Logger) (*Handler, error) {
	user, hash, items, err := seedData()
	if err != nil {
		return nil, err
	}

	return &Handler{
		cfg:          cfg,
		logger:       log,
		validator:    validators.NewLeaveTrackerValidator(),
		user:         user,
		passwordHash: hash,
		items:        items,
	}, nil
}

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withRequestID)
	router.Use(h.withLogging)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/user/login", h.login)
	})

	// routes behind bearer authentication
	router.Group(func(r chi.Router) {
		r.Use(h.auth)
		r.Get("/user/me", h.profile)
		r.Put("/user/me", h.updateProfile)
		r.Get("/user/leave/applications", h.listLeaveApplications)
		r.Post("/user/request-leave", h.requestLeave)
	})

	return router
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

// writeError emits the {"message": ...} body the client's transport layer
// extracts server messages from.
func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, models.ErrorResponse{Message: message})
}

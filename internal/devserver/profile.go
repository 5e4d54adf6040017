package devserver

import (
	"encoding/json"
	"net/http"

	"github.com/MKhiriev/go-leave-tracker/internal/app"
	"github.com/MKhiriev/go-leave-tracker/internal/logger"
	"github.com/MKhiriev/go-leave-tracker/models"
)

func (h *Handler) profile(w http.ResponseWriter, r *http.Request) {
	h.mu.Lock()
	user := h.user
	h.mu.Unlock()

	writeJSON(w, http.StatusOK, user)
}

// updateProfile replaces the mutable profile attributes of the demo account.
// The ID and email are server-owned and cannot be changed through this
// endpoint.
func (h *Handler) updateProfile(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var incoming models.User
	if err := json.NewDecoder(r.Body).Decode(&incoming); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		writeError(w, http.StatusBadRequest, app.MsgInvalidDataProvided)
		return
	}

	h.mu.Lock()
	updated := h.user
	updated.Username = incoming.Username
	updated.Phone = incoming.Phone
	updated.DOB = incoming.DOB
	updated.PreviewURL = incoming.PreviewURL
	h.mu.Unlock()

	if err := h.validator.Validate(ctx, updated); err != nil {
		log.Err(err).Msg("profile update rejected")
		writeError(w, http.StatusBadRequest, app.MsgInvalidDataProvided)
		return
	}

	h.mu.Lock()
	h.user = updated
	h.mu.Unlock()

	log.Info().Str("username", updated.Username).Msg("profile updated")
	writeJSON(w, http.StatusOK, updated)
}

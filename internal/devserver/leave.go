package devserver

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/MKhiriev/go-leave-tracker/internal/app"
	"github.com/MKhiriev/go-leave-tracker/internal/logger"
	"github.com/MKhiriev/go-leave-tracker/internal/validators"
	"github.com/MKhiriev/go-leave-tracker/models"
)

// listLeaveApplications serves one page of the demo account's leave records.
// A page past the end of the collection yields an empty list, which is the
// client's end-of-collection signal.
func (h *Handler) listLeaveApplications(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	limit := queryInt(r, "limit", h.cfg.PageSize)
	page := queryInt(r, "page", 1)
	if limit <= 0 || page <= 0 {
		log.Warn().Int("limit", limit).Int("page", page).Msg("bad pagination params")
		writeError(w, http.StatusBadRequest, app.MsgInvalidDataProvided)
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	from := (page - 1) * limit
	if from > len(h.items) {
		from = len(h.items)
	}
	to := from + limit
	if to > len(h.items) {
		to = len(h.items)
	}

	pageItems := make([]models.LeaveRequest, to-from)
	copy(pageItems, h.items[from:to])

	log.Debug().Int("page", page).Int("limit", limit).Int("returned", len(pageItems)).Msg("leave page served")
	writeJSON(w, http.StatusOK, models.LeaveListResponse{LeaveRequests: pageItems})
}

func (h *Handler) requestLeave(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var form models.LeaveRequestForm
	if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		writeError(w, http.StatusBadRequest, app.MsgInvalidDataProvided)
		return
	}

	if err := h.validator.Validate(ctx, form); err != nil {
		log.Err(err).Msg("leave form rejected")
		if errors.Is(err, validators.ErrEndBeforeStart) {
			writeError(w, http.StatusBadRequest, app.MsgEndBeforeStart)
			return
		}
		writeError(w, http.StatusBadRequest, app.MsgInvalidDataProvided)
		return
	}

	h.mu.Lock()
	created := models.LeaveRequest{
		ID:        fmt.Sprintf("leave-%04d", len(h.items)+1),
		Subject:   form.Subject,
		Reason:    form.Reason,
		Status:    models.LeavePending,
		DateRange: form.DateRange,
	}
	// newest first, the way the real backend orders the collection
	h.items = append([]models.LeaveRequest{created}, h.items...)
	h.mu.Unlock()

	log.Info().Str("id", created.ID).Msg("leave request created")
	writeJSON(w, http.StatusOK, created)
}

func queryInt(r *http.Request, name string, fallback int) int {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return fallback
	}

	value, err := strconv.Atoi(raw)
	if err != nil {
		return -1
	}
	return value
}

package devserver

import (
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/MKhiriev/go-leave-tracker/models"
)

// Demo credentials accepted by the stub. Printed by cmd/devserver on start.
const (
	SeedEmail    = "demo@example.com"
	SeedPassword = "demo1234"
)

// seedData builds the single demo account and enough leave records to give
// the client several pages to walk through, newest first.
func seedData() (models.User, []byte, []models.LeaveRequest, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(SeedPassword), bcrypt.DefaultCost)
	if err != nil {
		return models.User{}, nil, nil, fmt.Errorf("hash seed password: %w", err)
	}

	user := models.User{
		ID:       "user-0001",
		Username: "Demo Employee",
		Email:    SeedEmail,
		Phone:    "+7 900 123-45-67",
		DOB:      "1990-04-01",
	}

	statuses := []models.LeaveStatus{
		models.LeaveApproved,
		models.LeavePending,
		models.LeaveCancelled,
		"On Hold", // unknown to the client; must render as neutral
	}

	base := time.Now().Truncate(24 * time.Hour)
	items := make([]models.LeaveRequest, 0, 23)
	for i := 0; i < 23; i++ {
		start := base.AddDate(0, 0, -14*i)
		items = append(items, models.LeaveRequest{
			ID:      fmt.Sprintf("leave-%04d", 23-i),
			Subject: fmt.Sprintf("Отпуск #%d", 23-i),
			Reason:  "Плановый отпуск",
			Status:  statuses[i%len(statuses)],
			DateRange: models.DateRange{
				Start: start,
				End:   start.AddDate(0, 0, 4),
			},
		})
	}

	return user, hash, items, nil
}

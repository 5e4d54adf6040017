package validators

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/MKhiriev/go-leave-tracker/models"
)

func date(value string) time.Time {
	parsed, err := time.Parse("2006-01-02", value)
	if err != nil {
		panic(err)
	}
	return parsed
}

func TestLeaveTrackerValidator_LeaveForm(t *testing.T) {
	v := NewLeaveTrackerValidator()
	valid := models.LeaveRequestForm{
		Subject:   "vacation",
		Reason:    "family trip",
		DateRange: models.DateRange{Start: date("2026-09-07"), End: date("2026-09-11")},
	}

	tests := []struct {
		name    string
		mutate  func(*models.LeaveRequestForm)
		fields  []string
		wantErr error
	}{
		{name: "valid form"},
		{
			name:    "blank subject",
			mutate:  func(f *models.LeaveRequestForm) { f.Subject = "   " },
			wantErr: ErrEmptySubject,
		},
		{
			name:    "blank reason",
			mutate:  func(f *models.LeaveRequestForm) { f.Reason = "" },
			wantErr: ErrEmptyReason,
		},
		{
			name:    "missing dates",
			mutate:  func(f *models.LeaveRequestForm) { f.DateRange = models.DateRange{} },
			wantErr: ErrEmptyDateRange,
		},
		{
			name: "end before start",
			mutate: func(f *models.LeaveRequestForm) {
				f.DateRange = models.DateRange{Start: date("2026-09-11"), End: date("2026-09-07")}
			},
			wantErr: ErrEndBeforeStart,
		},
		{
			name: "single day is allowed",
			mutate: func(f *models.LeaveRequestForm) {
				f.DateRange = models.DateRange{Start: date("2026-09-07"), End: date("2026-09-07")}
			},
		},
		{
			name:   "scoped to subject ignores bad dates",
			fields: []string{FieldSubject},
			mutate: func(f *models.LeaveRequestForm) { f.DateRange = models.DateRange{} },
		},
		{
			name:    "unknown field",
			fields:  []string{"no-such-field"},
			wantErr: ErrUnknownField,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			form := valid
			if tt.mutate != nil {
				tt.mutate(&form)
			}

			err := v.Validate(context.Background(), form, tt.fields...)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestLeaveTrackerValidator_Login(t *testing.T) {
	v := NewLeaveTrackerValidator()

	tests := []struct {
		name    string
		creds   models.LoginRequest
		wantErr error
	}{
		{name: "valid", creds: models.LoginRequest{Email: "alice@example.com", Password: "secret"}},
		{name: "empty email", creds: models.LoginRequest{Password: "secret"}, wantErr: ErrEmptyEmail},
		{name: "no at sign", creds: models.LoginRequest{Email: "alice.example.com", Password: "secret"}, wantErr: ErrInvalidEmail},
		{name: "no domain dot", creds: models.LoginRequest{Email: "alice@localhost", Password: "secret"}, wantErr: ErrInvalidEmail},
		{name: "empty password", creds: models.LoginRequest{Email: "alice@example.com"}, wantErr: ErrEmptyPassword},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(context.Background(), tt.creds)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestLeaveTrackerValidator_Profile(t *testing.T) {
	v := NewLeaveTrackerValidator()
	valid := models.User{Username: "alice", Email: "alice@example.com"}

	tests := []struct {
		name    string
		mutate  func(*models.User)
		wantErr error
	}{
		{name: "minimal profile"},
		{
			name:   "optional attributes set",
			mutate: func(u *models.User) { u.DOB = "1990-04-01"; u.Phone = "+7 (900) 123-45-67" },
		},
		{
			name:    "blank username",
			mutate:  func(u *models.User) { u.Username = "" },
			wantErr: ErrEmptyUsername,
		},
		{
			name:    "garbage dob",
			mutate:  func(u *models.User) { u.DOB = "01.04.1990" },
			wantErr: ErrInvalidDOB,
		},
		{
			name:    "letters in phone",
			mutate:  func(u *models.User) { u.Phone = "call me" },
			wantErr: ErrInvalidPhone,
		},
		{
			name:    "too short phone",
			mutate:  func(u *models.User) { u.Phone = "123" },
			wantErr: ErrInvalidPhone,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			user := valid
			if tt.mutate != nil {
				tt.mutate(&user)
			}

			err := v.Validate(context.Background(), user)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestLeaveTrackerValidator_UnsupportedType(t *testing.T) {
	v := NewLeaveTrackerValidator()
	assert.ErrorIs(t, v.Validate(context.Background(), 42), ErrUnsupportedType)
}

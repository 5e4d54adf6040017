package validators

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-leave-tracker/models"
)

// Field name constants used to specify which fields should be validated.
// These constants are passed to Validate to restrict validation to a subset
// of fields (field-level scoping).
const (
	// FieldSubject targets the one-line title of a leave request form.
	FieldSubject = "subject"

	// FieldReason targets the free-form justification text.
	FieldReason = "reason"

	// FieldDateRange targets the requested absence window, including the
	// end-not-before-start rule.
	FieldDateRange = "date_range"

	// FieldEmail targets the login identifier of credentials or a profile.
	FieldEmail = "email"

	// FieldPassword targets the password of login credentials.
	FieldPassword = "password"

	// FieldUsername targets the display name of a profile.
	FieldUsername = "username"

	// FieldDOB targets the optional date-of-birth profile attribute.
	FieldDOB = "dob"

	// FieldPhone targets the optional contact phone profile attribute.
	FieldPhone = "phone"
)

// dobLayout is the wire format of the optional date-of-birth attribute.
const dobLayout = "2006-01-02"

type LeaveTrackerValidator struct {
}

func NewLeaveTrackerValidator() Validator {
	return &LeaveTrackerValidator{}
}

func (v *LeaveTrackerValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.LeaveRequestForm:
		return v.validateLeaveForm(ctx, value, fields...)
	case *models.LeaveRequestForm:
		return v.validateLeaveForm(ctx, *value, fields...)

	case models.LoginRequest:
		return v.validateLogin(ctx, value, fields...)
	case *models.LoginRequest:
		return v.validateLogin(ctx, *value, fields...)

	case models.User:
		return v.validateProfile(ctx, value, fields...)
	case *models.User:
		return v.validateProfile(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *LeaveTrackerValidator) validateLeaveForm(_ context.Context, form models.LeaveRequestForm, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldSubject, FieldReason, FieldDateRange}
	}

	for _, field := range fields {
		switch field {
		case FieldSubject:
			if strings.TrimSpace(form.Subject) == "" {
				return ErrEmptySubject
			}
		case FieldReason:
			if strings.TrimSpace(form.Reason) == "" {
				return ErrEmptyReason
			}
		case FieldDateRange:
			if form.DateRange.Start.IsZero() || form.DateRange.End.IsZero() {
				return ErrEmptyDateRange
			}
			if form.DateRange.End.Before(form.DateRange.Start) {
				return ErrEndBeforeStart
			}
		default:
			return fmt.Errorf("%w: %s", ErrUnknownField, field)
		}
	}

	return nil
}

func (v *LeaveTrackerValidator) validateLogin(_ context.Context, creds models.LoginRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldEmail, FieldPassword}
	}

	for _, field := range fields {
		switch field {
		case FieldEmail:
			if err := validEmail(creds.Email); err != nil {
				return err
			}
		case FieldPassword:
			if creds.Password == "" {
				return ErrEmptyPassword
			}
		default:
			return fmt.Errorf("%w: %s", ErrUnknownField, field)
		}
	}

	return nil
}

func (v *LeaveTrackerValidator) validateProfile(_ context.Context, user models.User, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUsername, FieldEmail, FieldDOB, FieldPhone}
	}

	for _, field := range fields {
		switch field {
		case FieldUsername:
			if strings.TrimSpace(user.Username) == "" {
				return ErrEmptyUsername
			}
		case FieldEmail:
			if err := validEmail(user.Email); err != nil {
				return err
			}
		case FieldDOB:
			if user.DOB == "" {
				continue
			}
			if _, err := time.Parse(dobLayout, user.DOB); err != nil {
				return ErrInvalidDOB
			}
		case FieldPhone:
			if user.Phone == "" {
				continue
			}
			if !validPhone(user.Phone) {
				return ErrInvalidPhone
			}
		default:
			return fmt.Errorf("%w: %s", ErrUnknownField, field)
		}
	}

	return nil
}

func validEmail(email string) error {
	email = strings.TrimSpace(email)
	if email == "" {
		return ErrEmptyEmail
	}

	at := strings.Index(email, "@")
	if at <= 0 || at == len(email)-1 || !strings.Contains(email[at+1:], ".") {
		return ErrInvalidEmail
	}
	return nil
}

// validPhone accepts digits with an optional leading plus and common
// separators. A stricter check belongs to the server.
func validPhone(phone string) bool {
	digits := 0
	for i, r := range phone {
		switch {
		case r >= '0' && r <= '9':
			digits++
		case r == '+' && i == 0:
		case r == ' ' || r == '-' || r == '(' || r == ')':
		default:
			return false
		}
	}
	return digits >= 5
}

package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptySubject   = errors.New("subject is required")
	ErrEmptyReason    = errors.New("reason is required")
	ErrEmptyDateRange = errors.New("date range is required")
	ErrEndBeforeStart = errors.New("end date is before start date")
	ErrEmptyEmail     = errors.New("email is required")
	ErrInvalidEmail   = errors.New("invalid email address")
	ErrEmptyPassword  = errors.New("password is required")
	ErrEmptyUsername  = errors.New("username is required")
	ErrInvalidDOB     = errors.New("date of birth must be YYYY-MM-DD")
	ErrInvalidPhone   = errors.New("invalid phone number")
)

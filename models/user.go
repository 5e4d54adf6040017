package models

// User represents the authenticated employee's profile as returned by the
// server. It contains only identity attributes; credential data lives in
// [Token] and the two are stored and cleared together by the session service.
type User struct {
	// ID is the server-side identifier of the user record.
	ID string `json:"_id,omitempty"`

	// Username is the display name of the user.
	Username string `json:"username"`

	// Email is the unique login identifier.
	Email string `json:"email"`

	// Phone is the contact phone number. Optional.
	Phone string `json:"phone,omitempty"`

	// DOB is the date of birth in "YYYY-MM-DD" form. Optional.
	DOB string `json:"dob,omitempty"`

	// PreviewURL points at the user's avatar image. Optional.
	PreviewURL string `json:"previewUrl,omitempty"`
}

// IsZero reports whether the user carries no identity at all. A zero user is
// what the session service holds while logged out.
func (u User) IsZero() bool {
	return u == User{}
}

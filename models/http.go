package models

// LoginRequest is the credentials payload for POST user/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse carries the bearer credential issued on successful login.
type LoginResponse struct {
	Token Token `json:"token"`
}

// LeaveListResponse is the body of GET user/leave/applications.
type LeaveListResponse struct {
	LeaveRequests []LeaveRequest `json:"leaveRequests"`
}

// LeaveRequestForm is the client-composed payload for POST user/request-leave.
// Validation (non-empty subject, end not before start) is a presentation-layer
// concern; the core forwards the form as-is.
type LeaveRequestForm struct {
	Subject   string    `json:"subject"`
	Reason    string    `json:"reason"`
	DateRange DateRange `json:"dateRange"`
}

// ErrorResponse is the optional body the server attaches to non-2xx
// responses.
type ErrorResponse struct {
	Message string `json:"message"`
}

package models

import (
	"strings"
	"time"
)

// LeaveStatus is the server-assigned state of a leave request. The set of
// values is open: the server may introduce new states at any time, so
// comparisons are case-insensitive and unrecognised values fall back to a
// neutral presentation.
type LeaveStatus string

const (
	LeaveApproved  LeaveStatus = "approved"
	LeavePending   LeaveStatus = "pending"
	LeaveCancelled LeaveStatus = "cancelled"
)

// StatusColor is the presentation bucket a leave status maps onto.
type StatusColor int

const (
	ColorNeutral StatusColor = iota
	ColorSuccess
	ColorWarning
	ColorDanger
)

// Color maps a status onto its display color bucket. The mapping is fixed:
// approved is success, pending is warning, cancelled is danger, and every
// other value (including the empty string) is neutral.
func (s LeaveStatus) Color() StatusColor {
	switch strings.ToLower(string(s)) {
	case "approved":
		return ColorSuccess
	case "pending":
		return ColorWarning
	case "cancelled":
		return ColorDanger
	default:
		return ColorNeutral
	}
}

// Is reports whether s equals other ignoring case.
func (s LeaveStatus) Is(other LeaveStatus) bool {
	return strings.EqualFold(string(s), string(other))
}

// DateRange is the inclusive span a leave request covers.
type DateRange struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// LeaveRequest is one leave application as stored on the server. Records are
// created server-side on submit and never mutated in place by the client; a
// list refresh replaces them wholesale.
type LeaveRequest struct {
	// ID is the server-side identifier of the record.
	ID string `json:"_id"`

	// Subject is the one-line title of the request.
	Subject string `json:"subject"`

	// Reason is the free-form justification text.
	Reason string `json:"reason"`

	// Status is the current approval state. Open enum, see [LeaveStatus].
	Status LeaveStatus `json:"status"`

	// DateRange is the requested absence window.
	DateRange DateRange `json:"dateRange"`
}

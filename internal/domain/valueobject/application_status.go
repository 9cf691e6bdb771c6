package valueobject

import (
	"encoding/json"
	"errors"
	"fmt"
)

// ErrInvalidStatusTransition is returned when an application status change
// violates the lifecycle rules.
var ErrInvalidStatusTransition = errors.New("invalid application status transition")

// ApplicationStatus is an immutable value object for the loan application
// lifecycle state. UNDER_REVIEW (rule-engine outcome) and MANUAL_REVIEW
// (pipeline/ops outcome) are deliberately distinct states.
type ApplicationStatus struct {
	value string
}

var (
	StatusSubmitted    = ApplicationStatus{value: "SUBMITTED"}
	StatusApproved     = ApplicationStatus{value: "APPROVED"}
	StatusRejected     = ApplicationStatus{value: "REJECTED"}
	StatusUnderReview  = ApplicationStatus{value: "UNDER_REVIEW"}
	StatusManualReview = ApplicationStatus{value: "MANUAL_REVIEW"}
)

// ApplicationStatusFromString reconstructs an ApplicationStatus from its
// string representation.
func ApplicationStatusFromString(s string) (ApplicationStatus, error) {
	switch s {
	case "SUBMITTED":
		return StatusSubmitted, nil
	case "APPROVED":
		return StatusApproved, nil
	case "REJECTED":
		return StatusRejected, nil
	case "UNDER_REVIEW":
		return StatusUnderReview, nil
	case "MANUAL_REVIEW":
		return StatusManualReview, nil
	default:
		return ApplicationStatus{}, fmt.Errorf("invalid application status: %s", s)
	}
}

// CanTransitionTo reports whether moving to target is a legal lifecycle step.
// APPROVED and REJECTED are terminal; review states may be re-decided.
func (s ApplicationStatus) CanTransitionTo(target ApplicationStatus) bool {
	if s.Equal(target) {
		return true
	}
	switch s.value {
	case "SUBMITTED", "UNDER_REVIEW", "MANUAL_REVIEW":
		return !target.IsZero()
	default:
		return false
	}
}

// IsTerminal reports whether the status admits no further transitions.
func (s ApplicationStatus) IsTerminal() bool {
	return s.value == "APPROVED" || s.value == "REJECTED"
}

// String returns the string representation.
func (s ApplicationStatus) String() string {
	return s.value
}

// IsZero returns true if the status has not been set.
func (s ApplicationStatus) IsZero() bool {
	return s.value == ""
}

// Equal checks equality with another ApplicationStatus.
func (s ApplicationStatus) Equal(other ApplicationStatus) bool {
	return s.value == other.value
}

// MarshalJSON encodes the status as its string value.
func (s ApplicationStatus) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.value)
}

// UnmarshalJSON decodes and validates a status string. An empty string
// round-trips to the zero value.
func (s *ApplicationStatus) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if raw == "" {
		*s = ApplicationStatus{}
		return nil
	}
	parsed, err := ApplicationStatusFromString(raw)
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

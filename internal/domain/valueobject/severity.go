package valueobject

import (
	"encoding/json"
	"fmt"
)

// Severity is an immutable value object classifying how serious a rejection
// reason is.
type Severity struct {
	value string
}

var (
	SeverityLow      = Severity{value: "Low"}
	SeverityMedium   = Severity{value: "Medium"}
	SeverityHigh     = Severity{value: "High"}
	SeverityCritical = Severity{value: "Critical"}
)

// SeverityFromString reconstructs a Severity from its string representation.
func SeverityFromString(s string) (Severity, error) {
	switch s {
	case "Low":
		return SeverityLow, nil
	case "Medium":
		return SeverityMedium, nil
	case "High":
		return SeverityHigh, nil
	case "Critical":
		return SeverityCritical, nil
	default:
		return Severity{}, fmt.Errorf("invalid severity: %s", s)
	}
}

// Rank orders severities from Low (1) to Critical (4). Zero for the zero value.
func (s Severity) Rank() int {
	switch s.value {
	case "Low":
		return 1
	case "Medium":
		return 2
	case "High":
		return 3
	case "Critical":
		return 4
	default:
		return 0
	}
}

// String returns the string representation.
func (s Severity) String() string {
	return s.value
}

// IsZero returns true if the Severity has not been set.
func (s Severity) IsZero() bool {
	return s.value == ""
}

// Equal checks equality with another Severity.
func (s Severity) Equal(other Severity) bool {
	return s.value == other.value
}

// MarshalJSON encodes the severity as its string value.
func (s Severity) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.value)
}

// UnmarshalJSON decodes and validates a severity string. An empty string
// round-trips to the zero value.
func (s *Severity) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if raw == "" {
		*s = Severity{}
		return nil
	}
	parsed, err := SeverityFromString(raw)
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

package valueobject

import (
	"encoding/json"
	"fmt"
)

// Priority is an immutable value object expressing how urgently a
// recommendation should be acted on.
type Priority struct {
	value string
}

var (
	PriorityLow    = Priority{value: "Low"}
	PriorityMedium = Priority{value: "Medium"}
	PriorityHigh   = Priority{value: "High"}
)

// PriorityFromString reconstructs a Priority from its string representation.
func PriorityFromString(s string) (Priority, error) {
	switch s {
	case "Low":
		return PriorityLow, nil
	case "Medium":
		return PriorityMedium, nil
	case "High":
		return PriorityHigh, nil
	default:
		return Priority{}, fmt.Errorf("invalid priority: %s", s)
	}
}

// String returns the string representation.
func (p Priority) String() string {
	return p.value
}

// IsZero returns true if the Priority has not been set.
func (p Priority) IsZero() bool {
	return p.value == ""
}

// Equal checks equality with another Priority.
func (p Priority) Equal(other Priority) bool {
	return p.value == other.value
}

// MarshalJSON encodes the priority as its string value.
func (p Priority) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.value)
}

// UnmarshalJSON decodes and validates a priority string. An empty string
// round-trips to the zero value.
func (p *Priority) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if raw == "" {
		*p = Priority{}
		return nil
	}
	parsed, err := PriorityFromString(raw)
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}

package enums

import "fmt"

// SubmitStatus tracks the upstream outcome for a journaled sale.
type SubmitStatus string

const (
	SubmitStatusSubmitted SubmitStatus = "submitted"
	SubmitStatusFailed    SubmitStatus = "failed"
	SubmitStatusRecovered SubmitStatus = "recovered"
)

var validSubmitStatuses = []SubmitStatus{
	SubmitStatusSubmitted,
	SubmitStatusFailed,
	SubmitStatusRecovered,
}

// String implements fmt.Stringer.
func (s SubmitStatus) String() string {
	return string(s)
}

// IsValid reports whether the value is a known SubmitStatus.
func (s SubmitStatus) IsValid() bool {
	for _, candidate := range validSubmitStatuses {
		if candidate == s {
			return true
		}
	}
	return false
}

// ParseSubmitStatus converts the raw string to SubmitStatus.
func ParseSubmitStatus(value string) (SubmitStatus, error) {
	for _, candidate := range validSubmitStatuses {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid submit status %q", value)
}

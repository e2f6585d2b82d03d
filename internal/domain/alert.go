package domain

import (
	"time"
)

// Severity is the alert severity code. Codes sort alphabetically in the same
// order as their importance for display: critical > high > medium.
type Severity string

const (
	SeverityCritical Severity = "critical"
	SeverityHigh     Severity = "high"
	SeverityMedium   Severity = "medium"
)

var severityLabels = map[Severity]string{
	SeverityCritical: "Grave",
	SeverityHigh:     "Alta",
	SeverityMedium:   "Media",
}

// DisplayName returns the localized label for the severity. Unknown codes are
// returned unchanged rather than rejected.
func (s Severity) DisplayName() string {
	if label, ok := severityLabels[s]; ok {
		return label
	}
	return string(s)
}

// Alert is an anomaly event raised for a device.
type Alert struct {
	ID             string     `json:"id"`
	OrganizationID string     `json:"organization_id"`
	DeviceID       string     `json:"device_id"`
	Severity       Severity   `json:"severity"`
	Message        string     `json:"message"`
	OccurredAt     time.Time  `json:"occurred_at"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
	DeletedAt      *time.Time `json:"deleted_at,omitempty"`

	// DeviceName is populated by eager-joined queries.
	DeviceName string `json:"device_name,omitempty"`
}

// SeverityCount is one bucket of the weekly alert breakdown.
type SeverityCount struct {
	Severity        Severity `json:"severity"`
	SeverityDisplay string   `json:"severity_display"`
	Total           int      `json:"total"`
}

package dto

// ListAlertsQuery represents query parameters for the weekly alert listing.
type ListAlertsQuery struct {
	PageQuery
}

// CreateAlertRequest represents a request to raise an alert.
type CreateAlertRequest struct {
	DeviceID   string `json:"device_id" binding:"required,uuid"`
	Severity   string `json:"severity" binding:"required"`
	Message    string `json:"message" binding:"required,max=255"`
	OccurredAt string `json:"occurred_at" binding:"omitempty"`
}

// AlertResponse represents alert data in responses.
type AlertResponse struct {
	ID              string `json:"id"`
	DeviceID        string `json:"device_id"`
	DeviceName      string `json:"device_name"`
	Severity        string `json:"severity"`
	SeverityDisplay string `json:"severity_display"`
	Message         string `json:"message"`
	OccurredAt      string `json:"occurred_at"`
}

// ListAlertsResponse represents one page of the trailing-week alert listing
// plus the severity breakdown over the same window. SeverityCounts is keyed by
// display label; severities with no alerts are omitted, not zero-filled.
type ListAlertsResponse struct {
	Org            *OrganizationResponse `json:"org"`
	Alerts         []AlertResponse       `json:"alerts"`
	SeverityCounts map[string]int        `json:"severity_counts"`
	WeekAgo        string                `json:"week_ago"`
}

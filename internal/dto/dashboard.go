package dto

// GroupCountResponse is one bucket of a device aggregation (by category or by
// zone). The id is the stable grouping key; the name is for display.
type GroupCountResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Total int    `json:"total"`
}

// SeverityCountResponse is one bucket of the weekly alert breakdown.
type SeverityCountResponse struct {
	Severity        string `json:"severity"`
	SeverityDisplay string `json:"severity_display"`
	Total           int    `json:"total"`
}

// DashboardSummaryResponse is the full dashboard context. When no organization
// is resolvable Org is nil and every collection is empty; that is the defined
// empty state, not an error.
type DashboardSummaryResponse struct {
	Org                *OrganizationResponse   `json:"org"`
	LatestMeasurements []MeasurementResponse   `json:"latest_measurements"`
	ByCategory         []GroupCountResponse    `json:"by_category"`
	ByZone             []GroupCountResponse    `json:"by_zone"`
	AlertsWeek         []SeverityCountResponse `json:"alerts_week"`
	RecentAlerts       []AlertResponse         `json:"recent_alerts"`
}

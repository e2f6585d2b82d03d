package dto

// ListDevicesQuery represents query parameters for the device listing.
// Category is an exact category id match; empty means no filter.
type ListDevicesQuery struct {
	Category string `form:"category"`
	PageQuery
}

// CreateDeviceRequest represents a request to register a device.
type CreateDeviceRequest struct {
	Name       string `json:"name" binding:"required,min=1,max=150"`
	CategoryID string `json:"category_id" binding:"required,uuid"`
	ZoneID     string `json:"zone_id" binding:"required,uuid"`
	IsActive   *bool  `json:"is_active" binding:"omitempty"`
}

// DeviceResponse represents device data in responses, with its category and
// zone names eager-resolved.
type DeviceResponse struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	CategoryID   string `json:"category_id"`
	CategoryName string `json:"category_name"`
	ZoneID       string `json:"zone_id"`
	ZoneName     string `json:"zone_name"`
	IsActive     bool   `json:"is_active"`
	CreatedAt    string `json:"created_at"`
}

// ListDevicesResponse represents one page of the device listing plus the
// category filter context.
type ListDevicesResponse struct {
	Devices          []DeviceResponse   `json:"devices"`
	Categories       []CategoryResponse `json:"categories"`
	SelectedCategory string             `json:"selected_category"`
}

// DeviceDetailResponse represents the full device sheet: the device itself,
// its measurement history and its alerts, newest first.
type DeviceDetailResponse struct {
	Device       DeviceResponse        `json:"device"`
	Measurements []MeasurementResponse `json:"measurements"`
	Alerts       []AlertResponse       `json:"alerts"`
}

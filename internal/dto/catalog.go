package dto

// CreateCategoryRequest represents a request to create a device category.
type CreateCategoryRequest struct {
	Name string `json:"name" binding:"required,min=1,max=120"`
}

// CreateZoneRequest represents a request to create a zone.
type CreateZoneRequest struct {
	Name string `json:"name" binding:"required,min=1,max=120"`
}

// CategoryResponse represents category data in responses.
type CategoryResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// ZoneResponse represents zone data in responses.
type ZoneResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

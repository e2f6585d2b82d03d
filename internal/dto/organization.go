package dto

// CreateOrganizationRequest represents a request to register an organization.
type CreateOrganizationRequest struct {
	Name string `json:"name" binding:"required,min=2,max=150"`
}

// OrganizationResponse represents organization data in responses.
type OrganizationResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

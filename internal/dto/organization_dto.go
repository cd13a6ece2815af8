package dto

type CreateOrganizationRequest struct {
	Title   string `json:"title" binding:"required"`
	Website string `json:"website" binding:"omitempty,url"`
}

type OrganizationResponse struct {
	ID      string `json:"id"`
	Title   string `json:"title"`
	Slug    string `json:"slug"`
	Website string `json:"website,omitempty"`
}

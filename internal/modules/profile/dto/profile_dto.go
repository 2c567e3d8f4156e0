package dto

type ProfileResponse struct {
	FullName         string `json:"fullName"`
	OrganizationName string `json:"organizationName"`
	Email            string `json:"email"`
}

type UpdateProfileRequest struct {
	FullName         string `json:"fullName" binding:"omitempty,max=255"`
	OrganizationName string `json:"organizationName" binding:"omitempty,max=255"`
}

// Package profile serves the tenant profile shown on the settings page.
// The profile is a configuration record, not a stored entity: reads return
// the configured values and updates are acknowledged without being
// persisted. The endpoints exist for dashboard compatibility only.
package profile

import (
	"context"
	"log"

	"anoa.com/certdash/internal/modules/profile/dto"
	"anoa.com/certdash/pkg/sanitize"
)

// TenantProfile is the per-tenant record injected from configuration.
type TenantProfile struct {
	FullName         string
	OrganizationName string
	Email            string
}

type ProfileService interface {
	Get(ctx context.Context) dto.ProfileResponse
	Update(ctx context.Context, req dto.UpdateProfileRequest)
}

type profileService struct {
	tenant TenantProfile
}

func NewProfileService(tenant TenantProfile) ProfileService {
	return &profileService{tenant: tenant}
}

func (s *profileService) Get(ctx context.Context) dto.ProfileResponse {
	return dto.ProfileResponse{
		FullName:         s.tenant.FullName,
		OrganizationName: s.tenant.OrganizationName,
		Email:            s.tenant.Email,
	}
}

// Update accepts the payload but does not durably apply it; the tenant
// record comes from configuration and changes there.
func (s *profileService) Update(ctx context.Context, req dto.UpdateProfileRequest) {
	log.Printf("profile update requested (not persisted): fullName=%q organizationName=%q",
		sanitize.Text(req.FullName), sanitize.Text(req.OrganizationName))
}

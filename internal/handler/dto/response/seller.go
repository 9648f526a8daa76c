package response

import (
	"ticket-marketplace/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type SellerContactResponse struct {
	ContactID string `json:"contact_id"`
}

type SellerAccountResponse struct {
	UserID        uuid.UUID                    `json:"user_id"`
	ContactID     *string                      `json:"contact_id,omitempty"`
	AccountID     *string                      `json:"account_id,omitempty"`
	Onboarded     bool                         `json:"onboarded"`
	OnboardingURL string                       `json:"onboarding_url"`
	DashboardURL  *string                      `json:"dashboard_url,omitempty"`
	Status        *SellerAccountStatusResponse `json:"status,omitempty"`
}

type SellerAccountStatusResponse struct {
	Active              bool     `json:"active"`
	RequiresInformation bool     `json:"requires_information"`
	KYCStatus           string   `json:"kyc_status"`
	ChargesEnabled      bool     `json:"charges_enabled"`
	PayoutsEnabled      bool     `json:"payouts_enabled"`
	CurrentlyDue        []string `json:"currently_due"`
	EventuallyDue       []string `json:"eventually_due"`
}

func FromSellerAccount(v *queries.SellerAccountView) (*SellerAccountResponse, error) {
	var res SellerAccountResponse
	if err := copier.Copy(&res, v); err != nil {
		return nil, err
	}
	return &res, nil
}

//go:build unit || e2e

package builder

import (
	"ticket-marketplace/internal/domain/user"

	"github.com/google/uuid"
)

type ProfileBuilder struct {
	ID        uuid.UUID
	Name      string
	Email     string
	Phone     string
	Role      user.Role
	ContactID *string
	AccountID *string
}

func NewProfileBuilder() *ProfileBuilder {
	return &ProfileBuilder{
		ID:    uuid.New(),
		Name:  "Asha Rao",
		Email: "asha@example.com",
		Phone: "+919876543210",
		Role:  user.RoleBuyer,
	}
}

func (b *ProfileBuilder) With(mutate func(*ProfileBuilder)) *ProfileBuilder {
	mutate(b)
	return b
}

// Build methods
func (b *ProfileBuilder) BuildDomain() *user.Profile {
	email, _ := user.NewEmail(b.Email)
	phone, _ := user.NewPhone(b.Phone)
	return user.ReconstructProfile(b.ID, b.Name, email, phone, b.Role, b.ContactID, b.AccountID)
}

// Fluent builder methods
func (b *ProfileBuilder) AsSeller() *ProfileBuilder {
	b.Role = user.RoleSeller
	return b
}

func (b *ProfileBuilder) AsAdmin() *ProfileBuilder {
	b.Role = user.RoleAdmin
	return b
}

func (b *ProfileBuilder) Onboarded(accountID string) *ProfileBuilder {
	b.AccountID = &accountID
	return b
}

func (b *ProfileBuilder) WithContact(contactID string) *ProfileBuilder {
	b.ContactID = &contactID
	return b
}

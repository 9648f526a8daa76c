package user

import (
	"strings"

	"github.com/google/uuid"
)

// Profile is the payment-facing view of a user: who they are to the provider and
// which sub-account receives their sales.
type Profile struct {
	id        uuid.UUID
	name      string
	email     Email
	phone     Phone
	role      Role
	contactID *string
	accountID *string
}

func NewProfile(id uuid.UUID, name string, email Email, phone Phone, role Role) (*Profile, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyName
	}
	if !role.IsValid() {
		return nil, ErrInvalidRole
	}
	return &Profile{id: id, name: name, email: email, phone: phone, role: role}, nil
}

func ReconstructProfile(id uuid.UUID, name string, email Email, phone Phone, role Role, contactID, accountID *string) *Profile {
	return &Profile{
		id:        id,
		name:      name,
		email:     email,
		phone:     phone,
		role:      role,
		contactID: contactID,
		accountID: accountID,
	}
}

func (p *Profile) AttachContact(contactID string) error {
	if p.contactID != nil {
		return ErrAlreadyHasContact
	}
	p.contactID = &contactID
	return nil
}

func (p *Profile) LinkAccount(accountID string) error {
	if err := ValidateAccountID(accountID); err != nil {
		return err
	}
	p.accountID = &accountID
	return nil
}

// IsOnboarded reports whether payouts can be routed to this user.
func (p *Profile) IsOnboarded() bool {
	return p.accountID != nil && *p.accountID != ""
}

func (p *Profile) ID() uuid.UUID      { return p.id }
func (p *Profile) Name() string       { return p.name }
func (p *Profile) Email() Email       { return p.email }
func (p *Profile) Phone() Phone       { return p.phone }
func (p *Profile) Role() Role         { return p.role }
func (p *Profile) ContactID() *string { return p.contactID }
func (p *Profile) AccountID() *string { return p.accountID }

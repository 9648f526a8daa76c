package user

type Role string

const (
	RoleBuyer  Role = "buyer"
	RoleSeller Role = "seller"
	RoleAdmin  Role = "admin"
)

func (r Role) String() string {
	return string(r)
}

func (r Role) IsValid() bool {
	switch r {
	case RoleBuyer, RoleSeller, RoleAdmin:
		return true
	default:
		return false
	}
}

func NewRole(s string) (Role, error) {
	role := Role(s)
	if !role.IsValid() {
		return "", ErrInvalidRole
	}
	return role, nil
}

// ContactType is the provider's classification of a contact.
type ContactType string

const (
	ContactTypeVendor   ContactType = "vendor"
	ContactTypeCustomer ContactType = "customer"
)

// ContactType maps sellers to vendor contacts and everyone else to customer contacts.
func (r Role) ContactType() ContactType {
	if r == RoleSeller {
		return ContactTypeVendor
	}
	return ContactTypeCustomer
}

package converter

import (
	"ticket-marketplace/internal/domain/user"
	"ticket-marketplace/internal/infra/sqlq"
	"ticket-marketplace/internal/pkg/errs"
	"ticket-marketplace/internal/pkg/pgconv"
)

func UserToDomain(row sqlq.Users) (*user.Profile, error) {
	email, err := user.NewEmail(row.Email)
	if err != nil {
		return nil, errs.Wrapf(err, "user %s", row.ID)
	}
	role, err := user.NewRole(row.Role)
	if err != nil {
		return nil, errs.Wrapf(err, "user %s", row.ID)
	}
	// Stored numbers predate validation; an unparsable one is treated as absent.
	phone, err := user.NewPhone(row.Phone.String)
	if err != nil {
		phone = user.Phone{}
	}
	return user.ReconstructProfile(
		row.ID,
		row.Name,
		email,
		phone,
		role,
		pgconv.StringPtrFromPgtype(row.RazorpayContactID),
		pgconv.StringPtrFromPgtype(row.RazorpayAccountID),
	), nil
}

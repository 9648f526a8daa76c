package sqlq

import (
	"context"

	"github.com/google/uuid"
)

const getUserByID = `
SELECT id, name, email, phone, role, razorpay_contact_id, razorpay_account_id
FROM users
WHERE id = $1`

func (q *Queries) GetUserByID(ctx context.Context, db DBTX, id uuid.UUID) (Users, error) {
	var u Users
	err := db.QueryRow(ctx, getUserByID, id).Scan(
		&u.ID,
		&u.Name,
		&u.Email,
		&u.Phone,
		&u.Role,
		&u.RazorpayContactID,
		&u.RazorpayAccountID,
	)
	return u, err
}

const setUserContact = `
UPDATE users SET razorpay_contact_id = $2, updated_at = now()
WHERE id = $1 AND razorpay_contact_id IS NULL`

func (q *Queries) SetUserContact(ctx context.Context, db DBTX, id uuid.UUID, contactID string) (int64, error) {
	tag, err := db.Exec(ctx, setUserContact, id, contactID)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

const setUserAccount = `UPDATE users SET razorpay_account_id = $2, updated_at = now() WHERE id = $1`

func (q *Queries) SetUserAccount(ctx context.Context, db DBTX, id uuid.UUID, accountID string) (int64, error) {
	tag, err := db.Exec(ctx, setUserAccount, id, accountID)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

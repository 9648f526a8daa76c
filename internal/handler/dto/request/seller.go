package request

import (
	"strings"

	"ticket-marketplace/internal/usecase/commands"
)

type SellerContactRequest struct {
	Name  string `json:"name" binding:"required,max=200"`
	Email string `json:"email" binding:"required,email,max=254"`
	Phone string `json:"phone" binding:"required,min=8,max=16"`
}

func (r *SellerContactRequest) ToInput() commands.ContactInput {
	return commands.ContactInput{
		Name:  strings.TrimSpace(r.Name),
		Email: strings.TrimSpace(r.Email),
		Phone: strings.TrimSpace(r.Phone),
	}
}

type LinkAccountRequest struct {
	AccountID string `json:"account_id" binding:"required,startswith=acc_,max=64"`
}

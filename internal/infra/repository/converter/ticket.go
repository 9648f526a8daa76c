package converter

import (
	"ticket-marketplace/internal/domain/money"
	"ticket-marketplace/internal/domain/ticket"
	"ticket-marketplace/internal/infra/sqlq"
	"ticket-marketplace/internal/pkg/errs"
	"ticket-marketplace/internal/pkg/pgconv"
)

func TicketToDomain(row sqlq.Tickets) (*ticket.Ticket, error) {
	status, err := ticket.NewStatus(row.Status)
	if err != nil {
		return nil, errs.Wrapf(err, "ticket %s", row.ID)
	}
	price, err := money.New(row.PriceMinor, row.Currency)
	if err != nil {
		return nil, errs.Wrapf(err, "ticket %s has an invalid price", row.ID)
	}
	return ticket.ReconstructTicket(
		row.ID,
		row.EventID,
		row.UserID,
		row.WaitingListID,
		row.PaymentID,
		status,
		price,
		row.PurchasedAt.UTC(),
		pgconv.TimePtrFromPgtype(row.RefundedAt),
	), nil
}

func TicketToRow(t *ticket.Ticket) sqlq.Tickets {
	return sqlq.Tickets{
		ID:            t.ID(),
		EventID:       t.EventID(),
		UserID:        t.UserID(),
		WaitingListID: t.WaitingListID(),
		PaymentID:     t.PaymentID(),
		Status:        t.Status().String(),
		PriceMinor:    t.Price().Minor(),
		Currency:      t.Price().Currency(),
		PurchasedAt:   t.PurchasedAt(),
		RefundedAt:    pgconv.TimePtrToPgtype(t.RefundedAt()),
	}
}

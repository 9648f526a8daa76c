package converter

import (
	"ticket-marketplace/internal/domain/event"
	"ticket-marketplace/internal/domain/money"
	"ticket-marketplace/internal/infra/sqlq"
	"ticket-marketplace/internal/pkg/errs"
	"ticket-marketplace/internal/pkg/pgconv"
)

func EventToDomain(row sqlq.Events) (*event.Event, error) {
	price, err := money.New(row.PriceMinor, row.Currency)
	if err != nil {
		return nil, errs.Wrapf(err, "event %s has an invalid price", row.ID)
	}
	return event.ReconstructEvent(
		row.ID,
		row.SellerID,
		row.Name,
		row.Description,
		price,
		int(row.TotalTickets),
		pgconv.TimePtrFromPgtype(row.CancelledAt),
	), nil
}

package converter

import (
	"ticket-marketplace/internal/domain/waitinglist"
	"ticket-marketplace/internal/infra/sqlq"
	"ticket-marketplace/internal/pkg/errs"
	"ticket-marketplace/internal/pkg/pgconv"
)

func WaitingListToDomain(row sqlq.WaitingList) (*waitinglist.Entry, error) {
	status, err := waitinglist.NewStatus(row.Status)
	if err != nil {
		return nil, errs.Wrapf(err, "waiting list entry %s", row.ID)
	}
	return waitinglist.ReconstructEntry(
		row.ID,
		row.EventID,
		row.UserID,
		status,
		pgconv.TimePtrFromPgtype(row.OfferedAt),
		pgconv.TimePtrFromPgtype(row.OfferExpiresAt),
		row.CreatedAt.UTC(),
		row.UpdatedAt.UTC(),
	), nil
}

func WaitingListToRow(e *waitinglist.Entry) sqlq.WaitingList {
	return sqlq.WaitingList{
		ID:             e.ID(),
		EventID:        e.EventID(),
		UserID:         e.UserID(),
		Status:         e.Status().String(),
		OfferedAt:      pgconv.TimePtrToPgtype(e.OfferedAt()),
		OfferExpiresAt: pgconv.TimePtrToPgtype(e.OfferExpiresAt()),
		CreatedAt:      e.CreatedAt(),
		UpdatedAt:      e.UpdatedAt(),
	}
}

func WaitingListToTransitionParams(e *waitinglist.Entry, from waitinglist.Status) sqlq.TransitionWaitingListEntryParams {
	return sqlq.TransitionWaitingListEntryParams{
		ID:             e.ID(),
		FromStatus:     from.String(),
		ToStatus:       e.Status().String(),
		OfferedAt:      pgconv.TimePtrToPgtype(e.OfferedAt()),
		OfferExpiresAt: pgconv.TimePtrToPgtype(e.OfferExpiresAt()),
		UpdatedAt:      e.UpdatedAt(),
	}
}

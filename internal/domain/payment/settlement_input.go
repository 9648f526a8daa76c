package payment

import (
	"fmt"
	"strings"
	"time"

	"ticket-marketplace/internal/domain/money"

	"github.com/google/uuid"
)

// SettlementInput is the only shape a captured payment takes on its way into a state change.
type SettlementInput struct {
	PaymentID     string
	OrderID       string
	EventID       uuid.UUID
	UserID        uuid.UUID
	WaitingListID uuid.UUID
	Amount        money.Money
	// PaidAt is the provider's payment timestamp, nil when the provider did not send one.
	PaidAt *time.Time
	Ref    string
}

func NewSettlementInput(p *PaymentEntity, defaultCurrency string) (SettlementInput, error) {
	if strings.TrimSpace(p.ID) == "" {
		return SettlementInput{}, fmt.Errorf("%w: missing payment id", ErrMalformedPayload)
	}

	eventID, err := parseNote("eventId", p.Notes.EventID)
	if err != nil {
		return SettlementInput{}, err
	}
	userID, err := parseNote("userId", p.Notes.UserID)
	if err != nil {
		return SettlementInput{}, err
	}
	waitingListID, err := parseNote("waitingListId", p.Notes.WaitingListID)
	if err != nil {
		return SettlementInput{}, err
	}

	if p.Amount <= 0 {
		return SettlementInput{}, fmt.Errorf("%w: non-positive amount %d", ErrMalformedPayload, p.Amount)
	}
	currency := p.Currency
	if currency == "" {
		currency = defaultCurrency
	}
	amount, err := money.New(p.Amount, currency)
	if err != nil {
		return SettlementInput{}, fmt.Errorf("%w: %v", ErrMalformedPayload, err)
	}

	var paidAt *time.Time
	if p.CreatedAt > 0 {
		t := time.Unix(p.CreatedAt, 0).UTC()
		paidAt = &t
	}

	return SettlementInput{
		PaymentID:     p.ID,
		OrderID:       p.OrderID,
		EventID:       eventID,
		UserID:        userID,
		WaitingListID: waitingListID,
		Amount:        amount,
		PaidAt:        paidAt,
		Ref:           p.Notes.Ref,
	}, nil
}

func parseNote(field, value string) (uuid.UUID, error) {
	if strings.TrimSpace(value) == "" {
		return uuid.Nil, fmt.Errorf("%w: notes.%s missing", ErrMalformedPayload, field)
	}
	id, err := uuid.Parse(value)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: notes.%s is not an id", ErrMalformedPayload, field)
	}
	return id, nil
}

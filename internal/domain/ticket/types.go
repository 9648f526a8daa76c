package ticket

import "errors"

var (
	ErrInvalidStatus      = errors.New("invalid ticket status")
	ErrAlreadyRefunded    = errors.New("ticket already refunded")
	ErrMissingPaymentID   = errors.New("ticket requires the captured payment id")
	ErrMissingCorrelation = errors.New("ticket requires event, owner and waiting list references")
)

type Status string

const (
	StatusValid    Status = "valid"
	StatusRefunded Status = "refunded"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusValid, StatusRefunded:
		return true
	default:
		return false
	}
}

func NewStatus(s string) (Status, error) {
	status := Status(s)
	if !status.IsValid() {
		return "", ErrInvalidStatus
	}
	return status, nil
}

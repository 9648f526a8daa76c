package waitinglist

type Status string

const (
	StatusWaiting   Status = "waiting"
	StatusOffered   Status = "offered"
	StatusPurchased Status = "purchased"
	StatusExpired   Status = "expired"
	StatusCancelled Status = "cancelled"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusWaiting, StatusOffered, StatusPurchased, StatusExpired, StatusCancelled:
		return true
	default:
		return false
	}
}

// IsLive reports whether the entry still holds a place in the queue.
// At most one live entry exists per (event, user).
func (s Status) IsLive() bool {
	return s == StatusWaiting || s == StatusOffered
}

func (s Status) IsTerminal() bool {
	return s.IsValid() && !s.IsLive()
}

func NewStatus(s string) (Status, error) {
	status := Status(s)
	if !status.IsValid() {
		return "", ErrInvalidStatus
	}
	return status, nil
}

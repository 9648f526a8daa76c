package errs

import "errors"

// Kind is the failure category a caller uses to pick a response: a user-facing message,
// an HTTP status for the payment provider, or a structured refund report.
type Kind string

const (
	KindNone           Kind = ""
	KindAuthentication Kind = "authentication"
	KindValidation     Kind = "validation"
	KindConflict       Kind = "conflict"
	KindUpstream       Kind = "upstream"
	KindPartial        Kind = "partial"
	KindInternal       Kind = "internal"
)

func (k Kind) String() string {
	if k == KindNone {
		return "none"
	}
	return string(k)
}

// Classifier maps sentinel errors to a Kind. The first matching entry wins.
type Classifier []Classification

type Classification struct {
	Err  error
	Kind Kind
}

func (c Classifier) KindOf(err error) Kind {
	if err == nil {
		return KindNone
	}
	for _, entry := range c {
		if Is(err, entry.Err) {
			return entry.Kind
		}
	}
	return KindInternal
}

var (
	ErrDatabaseOperationFailed = errors.New("database operation failed")
)

package errs

import (
	"github.com/pkg/errors"
)

var (
	ErrNotFound         = errors.New("reservation not found")
	ErrName             = errors.New("name is required")
	ErrDateRequired     = errors.New("start_date and end_date are required")
	ErrRoomID           = errors.New("room id should in range 1 to 10")
	ErrDateOrder        = errors.New("start date should be before end date")
	ErrUnavailable      = errors.New("room is unavailable")
	ErrStoreUnavailable = errors.New("reservation store is unavailable")
)

func IsValidation(err error) bool {
	return errors.Is(err, ErrName) ||
		errors.Is(err, ErrDateRequired) ||
		errors.Is(err, ErrRoomID) ||
		errors.Is(err, ErrDateOrder)
}

// IsDomain reports outcomes caused by the input rather than by the store.
func IsDomain(err error) bool {
	return IsValidation(err) ||
		errors.Is(err, ErrUnavailable) ||
		errors.Is(err, ErrNotFound)
}

package errs

import (
	"errors"
)

var (
	ErrNotFound          = errors.New("not found")
	ErrGameReserved      = errors.New("game already reserved")
	ErrGameWithdrawn     = errors.New("game already withdrawn")
	ErrReservationFailed = errors.New("failed to reserve game")
	ErrForbidden         = errors.New("insufficient role")
)

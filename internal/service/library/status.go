package library

import (
	"time"

	"github.com/meeplelab/ludoteca-service/internal/model"
)

// DefaultReservationGrace pads the nominal reservation expiry before a
// reserved game flips back to available. A zero grace makes the status flap
// right at the expiry boundary when client clocks are skewed.
const DefaultReservationGrace = time.Minute

// EffectiveStatus derives the status callers should act on from the stored
// status and the reservation expiry. A reserved game whose hold has lapsed
// (expiry plus grace is in the past, or no expiry recorded) behaves as
// available even though the row still says reserved. Any other stored
// status passes through unchanged. Pure; a nil game yields StatusUnknown.
func EffectiveStatus(g *model.LibraryGame, now time.Time, grace time.Duration) model.GameStatus {
	if g == nil {
		return model.StatusUnknown
	}
	if g.Status != model.StatusReserved {
		return g.Status
	}
	if g.ReservedUntil != nil && g.ReservedUntil.Add(grace).After(now) {
		return model.StatusReserved
	}
	return model.StatusAvailable
}

// StatusLabel maps an effective status to its display label and color.
// Unknown statuses map to empty strings.
func StatusLabel(s model.GameStatus) (label, color string) {
	switch s {
	case model.StatusAvailable:
		return "Available", "green"
	case model.StatusReserved:
		return "Reserved", "yellow"
	case model.StatusNotAvailable:
		return "Not available", "gray"
	case model.StatusWithdrawn:
		return "Withdrawn", "red"
	default:
		return "", ""
	}
}

package library_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/meeplelab/ludoteca-service/internal/model"
	"github.com/meeplelab/ludoteca-service/internal/service/library"
)

func TestEffectiveStatus(t *testing.T) {
	t.Parallel()
	now := time.Date(2025, 6, 14, 12, 0, 0, 0, time.UTC)
	grace := time.Minute
	at := func(d time.Duration) *time.Time {
		ts := now.Add(d)
		return &ts
	}

	tests := []struct {
		name string
		game *model.LibraryGame
		want model.GameStatus
	}{
		{"nil game", nil, model.StatusUnknown},
		{"available passes through", &model.LibraryGame{Status: model.StatusAvailable}, model.StatusAvailable},
		{"not-available passes through", &model.LibraryGame{Status: model.StatusNotAvailable}, model.StatusNotAvailable},
		{
			"withdrawn ignores reserved_until",
			&model.LibraryGame{Status: model.StatusWithdrawn, ReservedUntil: at(time.Hour)},
			model.StatusWithdrawn,
		},
		{
			"reserved with future expiry",
			&model.LibraryGame{Status: model.StatusReserved, ReservedUntil: at(time.Hour)},
			model.StatusReserved,
		},
		{
			"reserved within grace window",
			&model.LibraryGame{Status: model.StatusReserved, ReservedUntil: at(-30 * time.Second)},
			model.StatusReserved,
		},
		{
			"reserved past expiry and grace",
			&model.LibraryGame{Status: model.StatusReserved, ReservedUntil: at(-2 * time.Minute)},
			model.StatusAvailable,
		},
		{
			"reserved without expiry",
			&model.LibraryGame{Status: model.StatusReserved},
			model.StatusAvailable,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := library.EffectiveStatus(tt.game, now, grace)
			require.Equal(t, tt.want, got)
			// idempotent for a fixed now
			require.Equal(t, got, library.EffectiveStatus(tt.game, now, grace))
		})
	}
}

func TestStatusLabel(t *testing.T) {
	t.Parallel()
	label, color := library.StatusLabel(model.StatusReserved)
	require.Equal(t, "Reserved", label)
	require.Equal(t, "yellow", color)

	label, color = library.StatusLabel(model.GameStatus("bogus"))
	require.Empty(t, label)
	require.Empty(t, color)
}

package repository

import (
	"testing"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"

	"github.com/meeplelab/ludoteca-service/internal/errs"
)

func displayIDErr() error {
	return &pgconn.PgError{Code: pgerrcode.UniqueViolation, ConstraintName: displayIDConstraint}
}

func activeGameErr() error {
	return &pgconn.PgError{Code: pgerrcode.UniqueViolation, ConstraintName: "library_reservations_active_game_uniq"}
}

func TestIsDisplayIDConflict(t *testing.T) {
	t.Parallel()
	require.True(t, isDisplayIDConflict(displayIDErr()))
	require.True(t, isDisplayIDConflict(errors.Wrap(displayIDErr(), "insert")))
	require.False(t, isDisplayIDConflict(activeGameErr()))
	require.False(t, isDisplayIDConflict(errors.New("db internal")))
	require.False(t, isDisplayIDConflict(nil))
}

func TestRetryDisplayID(t *testing.T) {
	t.Parallel()

	t.Run("reruns after a lost counter race", func(t *testing.T) {
		t.Parallel()
		calls := 0
		err := retryDisplayID(displayIDAttempts, func() error {
			calls++
			if calls < 3 {
				return displayIDErr()
			}
			return nil
		})
		require.NoError(t, err)
		require.Equal(t, 3, calls)
	})

	t.Run("gives up after the attempt budget", func(t *testing.T) {
		t.Parallel()
		calls := 0
		err := retryDisplayID(displayIDAttempts, func() error {
			calls++
			return displayIDErr()
		})
		require.ErrorIs(t, err, errs.ErrReservationFailed)
		require.Equal(t, displayIDAttempts, calls)
	})

	t.Run("game conflict is not retried", func(t *testing.T) {
		t.Parallel()
		calls := 0
		err := retryDisplayID(displayIDAttempts, func() error {
			calls++
			return errs.ErrGameReserved
		})
		require.ErrorIs(t, err, errs.ErrGameReserved)
		require.Equal(t, 1, calls)
	})

	t.Run("success passes through", func(t *testing.T) {
		t.Parallel()
		calls := 0
		err := retryDisplayID(displayIDAttempts, func() error {
			calls++
			return nil
		})
		require.NoError(t, err)
		require.Equal(t, 1, calls)
	})
}

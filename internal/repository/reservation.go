package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/meeplelab/ludoteca-service/internal/errs"
	"github.com/meeplelab/ludoteca-service/internal/model"
)

const reservationColumns = "id, tenant_id, edition_id, library_game_id, display_id, user_id, expires_at, status, created_at"

const (
	displayIDConstraint = "library_reservations_display_uniq"
	displayIDAttempts   = 3
)

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation
}

// isDisplayIDConflict reports a lost race on the per-edition display
// counter: two inserts read the same max before either committed.
func isDisplayIDConflict(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) &&
		pgErr.Code == pgerrcode.UniqueViolation &&
		pgErr.ConstraintName == displayIDConstraint
}

// retryDisplayID reruns fn while it loses the display counter race. Any
// other outcome, success included, passes through untouched.
func retryDisplayID(attempts int, fn func() error) error {
	var err error
	for i := 0; i < attempts; i++ {
		if err = fn(); !isDisplayIDConflict(err) {
			return err
		}
	}
	return errors.Wrap(errs.ErrReservationFailed, "display id contention")
}

func (r *repository) ListActiveReservations(ctx context.Context, scope model.Scope, userID string, now time.Time) ([]model.Reservation, error) {
	query, args, err := qb.Select(reservationColumns).
		From(reservationsTableName).
		Where(sq.Eq{"tenant_id": scope.TenantID}).
		Where(sq.Eq{"edition_id": scope.EditionID}).
		Where(sq.Eq{"user_id": userID}).
		Where(sq.Eq{"status": model.ReservationActive}).
		Where(sq.Gt{"expires_at": now}).
		OrderBy("expires_at").
		ToSql()
	if err != nil {
		return nil, err
	}

	var items []model.Reservation
	if err := r.db.SelectContext(ctx, &items, query, args...); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *repository) GetReservationByDisplayID(ctx context.Context, scope model.Scope, displayID int, now time.Time) (model.Reservation, error) {
	query, args, err := qb.Select(reservationColumns).
		From(reservationsTableName).
		Where(sq.Eq{"tenant_id": scope.TenantID}).
		Where(sq.Eq{"edition_id": scope.EditionID}).
		Where(sq.Eq{"display_id": displayID}).
		Where(sq.Eq{"status": model.ReservationActive}).
		Where(sq.Gt{"expires_at": now}).
		Limit(1).
		ToSql()
	if err != nil {
		return model.Reservation{}, err
	}

	var rsv model.Reservation
	if err := r.db.GetContext(ctx, &rsv, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Reservation{}, errs.ErrNotFound
		}
		return model.Reservation{}, err
	}
	return rsv, nil
}

// CreateReservation holds a game for a user. Conflicts are arbitrated here,
// not by callers: a partial unique index allows a single active reservation
// per game, and a stale active hold past its expiry is cancelled first so
// the expired slot can be retaken. Display codes come from a max+1 over the
// edition, so a concurrent insert for another game can claim the same code;
// the unique index rejects the loser and the transaction is rerun.
func (r *repository) CreateReservation(ctx context.Context, scope model.Scope, userID string, libraryGameID int64, expiresAt time.Time) (model.Reservation, error) {
	var rsv model.Reservation
	err := retryDisplayID(displayIDAttempts, func() error {
		var err error
		rsv, err = r.createReservation(ctx, scope, userID, libraryGameID, expiresAt)
		return err
	})
	if err != nil {
		return model.Reservation{}, err
	}
	return rsv, nil
}

func (r *repository) createReservation(ctx context.Context, scope model.Scope, userID string, libraryGameID int64, expiresAt time.Time) (model.Reservation, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return model.Reservation{}, err
	}
	defer tx.Rollback() //nolint:errcheck

	var status model.GameStatus
	q := fmt.Sprintf(`select status from %s
	where id = $1 and tenant_id = $2 and edition_id = $3 for update`, libraryGamesTableName)
	if err := tx.QueryRowContext(ctx, q, libraryGameID, scope.TenantID, scope.EditionID).Scan(&status); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Reservation{}, errs.ErrNotFound
		}
		return model.Reservation{}, err
	}
	if status == model.StatusWithdrawn || status == model.StatusNotAvailable {
		return model.Reservation{}, errs.ErrGameWithdrawn
	}

	q = fmt.Sprintf(`update %s set status = 'cancelled'
	where library_game_id = $1 and status = 'active' and expires_at <= $2`, reservationsTableName)
	if _, err := tx.ExecContext(ctx, q, libraryGameID, time.Now().UTC()); err != nil {
		return model.Reservation{}, err
	}

	q = fmt.Sprintf(`insert into %s (tenant_id, edition_id, library_game_id, display_id, user_id, expires_at)
	select $1, $2, $3, coalesce(max(display_id), 0) + 1, $4, $5
	from %s where tenant_id = $1 and edition_id = $2
	returning %s`, reservationsTableName, reservationsTableName, reservationColumns)

	var rsv model.Reservation
	if err := tx.GetContext(ctx, &rsv, q, scope.TenantID, scope.EditionID, libraryGameID, userID, expiresAt); err != nil {
		if isDisplayIDConflict(err) {
			return model.Reservation{}, err
		}
		if isUniqueViolation(err) {
			return model.Reservation{}, errs.ErrGameReserved
		}
		r.log.Error("CreateReservation",
			zap.String("tenant_id", scope.TenantID),
			zap.Int64("library_game_id", libraryGameID),
			zap.Error(err))
		return model.Reservation{}, err
	}

	q = fmt.Sprintf(`update %s set status = $1, reserved_until = $2 where id = $3`, libraryGamesTableName)
	if _, err := tx.ExecContext(ctx, q, model.StatusReserved, expiresAt, libraryGameID); err != nil {
		return model.Reservation{}, err
	}

	if err := tx.Commit(); err != nil {
		return model.Reservation{}, err
	}
	return rsv, nil
}

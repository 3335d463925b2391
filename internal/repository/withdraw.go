package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/meeplelab/ludoteca-service/internal/errs"
	"github.com/meeplelab/ludoteca-service/internal/model"
)

const withdrawColumns = "id, library_game_id, tenant_id, edition_id, started_at, ended_at, user_id, created_by"

// CreateWithdraw opens a loan: it inserts the withdraw row, consumes any
// active reservation on the game and marks the game withdrawn, all in one
// transaction. The partial unique index rejects a second open loan.
func (r *repository) CreateWithdraw(ctx context.Context, scope model.Scope, req model.CreateWithdrawRequest, createdBy string) (model.Withdraw, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return model.Withdraw{}, err
	}
	defer tx.Rollback() //nolint:errcheck

	q := fmt.Sprintf(`insert into %s (library_game_id, tenant_id, edition_id, started_at, user_id, created_by)
	values ($1, $2, $3, $4, $5, $6)
	returning %s`, withdrawsTableName, withdrawColumns)

	var w model.Withdraw
	if err := tx.GetContext(ctx, &w, q, req.LibraryGameID, scope.TenantID, scope.EditionID, time.Now().UTC(), req.UserID, createdBy); err != nil {
		if isUniqueViolation(err) {
			return model.Withdraw{}, errs.ErrGameWithdrawn
		}
		r.log.Error("CreateWithdraw",
			zap.String("tenant_id", scope.TenantID),
			zap.Int64("library_game_id", req.LibraryGameID),
			zap.Error(err))
		return model.Withdraw{}, err
	}

	q = fmt.Sprintf(`update %s set status = 'consumed'
	where library_game_id = $1 and status = 'active'`, reservationsTableName)
	if _, err := tx.ExecContext(ctx, q, req.LibraryGameID); err != nil {
		return model.Withdraw{}, err
	}

	q = fmt.Sprintf(`update %s set status = $1, reserved_until = null
	where id = $2 and tenant_id = $3 and edition_id = $4`, libraryGamesTableName)
	res, err := tx.ExecContext(ctx, q, model.StatusWithdrawn, req.LibraryGameID, scope.TenantID, scope.EditionID)
	if err != nil {
		return model.Withdraw{}, err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return model.Withdraw{}, errs.ErrNotFound
	}

	if err := tx.Commit(); err != nil {
		return model.Withdraw{}, err
	}
	return w, nil
}

// ReturnWithdraw closes the open loan for the game and makes it available
// again. Not finding an open loan is reported as ErrNotFound.
func (r *repository) ReturnWithdraw(ctx context.Context, scope model.Scope, libraryGameID int64) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback() //nolint:errcheck

	q := fmt.Sprintf(`update %s set ended_at = $1
	where library_game_id = $2 and tenant_id = $3 and edition_id = $4 and ended_at is null
	returning id`, withdrawsTableName)

	var id int64
	if err := tx.QueryRowContext(ctx, q, time.Now().UTC(), libraryGameID, scope.TenantID, scope.EditionID).Scan(&id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return errs.ErrNotFound
		}
		return err
	}

	q = fmt.Sprintf(`update %s set status = $1, reserved_until = null where id = $2`, libraryGamesTableName)
	if _, err := tx.ExecContext(ctx, q, model.StatusAvailable, libraryGameID); err != nil {
		return err
	}

	return tx.Commit()
}

func (r *repository) ListActiveWithdraws(ctx context.Context, scope model.Scope) ([]model.Withdraw, error) {
	query, args, err := qb.Select(withdrawColumns).
		From(withdrawsTableName).
		Where(sq.Eq{"tenant_id": scope.TenantID}).
		Where(sq.Eq{"edition_id": scope.EditionID}).
		Where(sq.Eq{"ended_at": nil}).
		OrderBy("started_at desc").
		ToSql()
	if err != nil {
		return nil, err
	}

	var items []model.Withdraw
	if err := r.db.SelectContext(ctx, &items, query, args...); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *repository) ListWithdrawsByGame(ctx context.Context, scope model.Scope, libraryGameID int64) ([]model.Withdraw, error) {
	query, args, err := qb.Select(withdrawColumns).
		From(withdrawsTableName).
		Where(sq.Eq{"tenant_id": scope.TenantID}).
		Where(sq.Eq{"edition_id": scope.EditionID}).
		Where(sq.Eq{"library_game_id": libraryGameID}).
		OrderBy("started_at desc").
		ToSql()
	if err != nil {
		return nil, err
	}

	var items []model.Withdraw
	if err := r.db.SelectContext(ctx, &items, query, args...); err != nil {
		return nil, err
	}
	return items, nil
}

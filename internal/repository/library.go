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

type libraryGameRow struct {
	ID            int64            `db:"id"`
	TenantID      string           `db:"tenant_id"`
	EditionID     int64            `db:"edition_id"`
	Owner         string           `db:"owner"`
	Notes         string           `db:"notes"`
	LocationID    *int64           `db:"location_id"`
	Status        model.GameStatus `db:"status"`
	ReservedUntil *time.Time       `db:"reserved_until"`
	GameID        int64            `db:"game_id"`
	GameName      string           `db:"game_name"`
	GameImage     string           `db:"game_image"`
	GameYear      string           `db:"game_year"`
	MinPlayers    string           `db:"min_players"`
	MaxPlayers    string           `db:"max_players"`
	MinPlaytime   string           `db:"min_playtime"`
	MaxPlaytime   string           `db:"max_playtime"`
}

func (row libraryGameRow) toModel() model.LibraryGame {
	return model.LibraryGame{
		ID:            row.ID,
		TenantID:      row.TenantID,
		EditionID:     row.EditionID,
		Owner:         row.Owner,
		Notes:         row.Notes,
		LocationID:    row.LocationID,
		Status:        row.Status,
		ReservedUntil: row.ReservedUntil,
		Game: model.GameSummary{
			ID:          row.GameID,
			Name:        row.GameName,
			Image:       row.GameImage,
			Year:        row.GameYear,
			MinPlayers:  row.MinPlayers,
			MaxPlayers:  row.MaxPlayers,
			MinPlaytime: row.MinPlaytime,
			MaxPlaytime: row.MaxPlaytime,
		},
	}
}

func (r *repository) libraryGamesQuery(scope model.Scope) sq.SelectBuilder {
	return qb.Select(
		"lg.id", "lg.tenant_id", "lg.edition_id", "lg.owner", "lg.notes", "lg.location_id",
		"lg.status", "lg.reserved_until",
		"g.id as game_id", "g.name as game_name", "g.image as game_image", "g.year as game_year",
		"g.min_players", "g.max_players", "g.min_playtime", "g.max_playtime").
		From(libraryGamesTableName + " lg").
		Join(fmt.Sprintf("%s g on g.id = lg.game_id", gamesTableName)).
		Where(sq.Eq{"lg.tenant_id": scope.TenantID}).
		Where(sq.Eq{"lg.edition_id": scope.EditionID})
}

func (r *repository) ListLibraryGames(ctx context.Context, scope model.Scope) ([]model.LibraryGame, error) {
	query, args, err := r.libraryGamesQuery(scope).OrderBy("lg.id").ToSql()
	if err != nil {
		return nil, err
	}

	var rows []libraryGameRow
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, err
	}

	games := make([]model.LibraryGame, 0, len(rows))
	for _, row := range rows {
		games = append(games, row.toModel())
	}
	return games, nil
}

func (r *repository) GetLibraryGame(ctx context.Context, scope model.Scope, id int64) (model.LibraryGame, error) {
	query, args, err := r.libraryGamesQuery(scope).
		Where(sq.Eq{"lg.id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return model.LibraryGame{}, err
	}

	var row libraryGameRow
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.LibraryGame{}, errs.ErrNotFound
		}
		return model.LibraryGame{}, err
	}
	return row.toModel(), nil
}

func (r *repository) CreateLibraryGame(ctx context.Context, scope model.Scope, req model.CreateLibraryGameRequest) (model.LibraryGame, error) {
	query, args, err := qb.Insert(libraryGamesTableName).
		Columns("tenant_id", "edition_id", "game_id", "owner", "notes", "location_id", "status").
		Values(scope.TenantID, scope.EditionID, req.GameID, req.Owner, req.Notes, req.LocationID, model.StatusAvailable).
		Suffix("returning id").
		ToSql()
	if err != nil {
		return model.LibraryGame{}, err
	}

	var id int64
	if err := r.db.GetContext(ctx, &id, query, args...); err != nil {
		r.log.Error("CreateLibraryGame", zap.String("tenant_id", scope.TenantID), zap.Error(err))
		return model.LibraryGame{}, err
	}
	return r.GetLibraryGame(ctx, scope, id)
}

// SetLibraryGameStatus overwrites the stored status and drops any
// reservation expiry attached to it.
func (r *repository) SetLibraryGameStatus(ctx context.Context, scope model.Scope, id int64, status model.GameStatus) error {
	query, args, err := qb.Update(libraryGamesTableName).
		Set("status", status).
		Set("reserved_until", nil).
		Where(sq.Eq{"id": id}).
		Where(sq.Eq{"tenant_id": scope.TenantID}).
		Where(sq.Eq{"edition_id": scope.EditionID}).
		ToSql()
	if err != nil {
		return err
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return errs.ErrNotFound
	}
	return nil
}

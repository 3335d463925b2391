package repository

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/meeplelab/ludoteca-service/internal/model"
)

const gameColumns = "id, external_id, name, image, year, min_players, max_players, min_playtime, max_playtime, min_age, created_at"

// GetOrCreateGame upserts a catalog row keyed by the external id, so
// repeated imports of the same game converge on one local record.
func (r *repository) GetOrCreateGame(ctx context.Context, game model.CatalogGame) (model.CatalogGame, error) {
	q := fmt.Sprintf(`insert into %s (external_id, name, image, year, min_players, max_players, min_playtime, max_playtime, min_age)
	values ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	on conflict (external_id) do update set
		name = excluded.name,
		image = excluded.image,
		year = excluded.year,
		min_players = excluded.min_players,
		max_players = excluded.max_players,
		min_playtime = excluded.min_playtime,
		max_playtime = excluded.max_playtime,
		min_age = excluded.min_age
	returning %s`, gamesTableName, gameColumns)

	var out model.CatalogGame
	if err := r.db.GetContext(ctx, &out, q,
		game.ExternalID, game.Name, game.Image, game.Year,
		game.MinPlayers, game.MaxPlayers, game.MinPlaytime, game.MaxPlaytime, game.MinAge,
	); err != nil {
		r.log.Error("GetOrCreateGame", zap.String("external_id", game.ExternalID), zap.Error(err))
		return model.CatalogGame{}, err
	}
	return out, nil
}

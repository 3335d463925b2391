package repository

import (
	"context"
	"database/sql"

	sq "github.com/Masterminds/squirrel"
	"github.com/pkg/errors"

	"github.com/meeplelab/ludoteca-service/internal/errs"
	"github.com/meeplelab/ludoteca-service/internal/model"
)

func (r *repository) GetEdition(ctx context.Context, id int64) (model.Edition, error) {
	query, args, err := qb.Select("id", "tenant_id", "name", "start_date", "end_date", "description").
		From(editionsTableName).
		Where(sq.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return model.Edition{}, err
	}

	var e model.Edition
	if err := r.db.GetContext(ctx, &e, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Edition{}, errs.ErrNotFound
		}
		return model.Edition{}, err
	}
	return e, nil
}

package repository

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"go.uber.org/zap"

	"github.com/meeplelab/ludoteca-service/internal/errs"
	"github.com/meeplelab/ludoteca-service/internal/model"
)

const locationColumns = "id, tenant_id, edition_id, name"

func (r *repository) ListLocations(ctx context.Context, scope model.Scope) ([]model.Location, error) {
	query, args, err := qb.Select(locationColumns).
		From(locationsTableName).
		Where(sq.Eq{"tenant_id": scope.TenantID}).
		Where(sq.Eq{"edition_id": scope.EditionID}).
		OrderBy("name").
		ToSql()
	if err != nil {
		return nil, err
	}

	var items []model.Location
	if err := r.db.SelectContext(ctx, &items, query, args...); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *repository) SearchLocations(ctx context.Context, scope model.Scope, search string) ([]model.Location, error) {
	query, args, err := qb.Select(locationColumns).
		From(locationsTableName).
		Where(sq.Eq{"tenant_id": scope.TenantID}).
		Where(sq.Eq{"edition_id": scope.EditionID}).
		Where(sq.ILike{"name": "%" + search + "%"}).
		OrderBy("name").
		ToSql()
	if err != nil {
		return nil, err
	}

	var items []model.Location
	if err := r.db.SelectContext(ctx, &items, query, args...); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *repository) CreateLocation(ctx context.Context, scope model.Scope, name string) (model.Location, error) {
	query, args, err := qb.Insert(locationsTableName).
		Columns("tenant_id", "edition_id", "name").
		Values(scope.TenantID, scope.EditionID, name).
		Suffix("returning " + locationColumns).
		ToSql()
	if err != nil {
		return model.Location{}, err
	}

	var loc model.Location
	if err := r.db.GetContext(ctx, &loc, query, args...); err != nil {
		r.log.Error("CreateLocation", zap.String("tenant_id", scope.TenantID), zap.Error(err))
		return model.Location{}, err
	}
	return loc, nil
}

func (r *repository) DeleteLocation(ctx context.Context, scope model.Scope, id int64) error {
	query, args, err := qb.Delete(locationsTableName).
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

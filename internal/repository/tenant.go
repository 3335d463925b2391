package repository

import (
	"context"
	"database/sql"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/meeplelab/ludoteca-service/internal/errs"
	"github.com/meeplelab/ludoteca-service/internal/model"
)

const tenantColumns = "id, name, domain, other_domains, current_edition_id, email, logo"

// GetTenantByDomainExact is the indexed fast path: the hostname equals the
// main domain or is an exact member of other_domains. Wildcard patterns are
// not evaluated here.
func (r *repository) GetTenantByDomainExact(ctx context.Context, hostname string) (model.Tenant, error) {
	q := fmt.Sprintf(`select %s from %s
	where domain = $1 or $1 = any(other_domains)
	limit 1`, tenantColumns, tenantsTableName)

	var t model.Tenant
	if err := r.db.GetContext(ctx, &t, q, hostname); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Tenant{}, errs.ErrNotFound
		}
		return model.Tenant{}, err
	}
	return t, nil
}

func (r *repository) ListTenants(ctx context.Context) ([]model.Tenant, error) {
	q := fmt.Sprintf(`select %s from %s order by id`, tenantColumns, tenantsTableName)

	var tenants []model.Tenant
	if err := r.db.SelectContext(ctx, &tenants, q); err != nil {
		return nil, err
	}
	return tenants, nil
}

func (r *repository) GetTenantByID(ctx context.Context, id string) (model.Tenant, error) {
	query, args, err := qb.Select(tenantColumns).
		From(tenantsTableName).
		Where(sq.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return model.Tenant{}, err
	}

	var t model.Tenant
	if err := r.db.GetContext(ctx, &t, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Tenant{}, errs.ErrNotFound
		}
		return model.Tenant{}, err
	}
	return t, nil
}

func (r *repository) UpdateTenant(ctx context.Context, id string, req model.UpdateTenantRequest) (model.Tenant, error) {
	upd := qb.Update(tenantsTableName).Where(sq.Eq{"id": id})
	if req.Name != nil {
		upd = upd.Set("name", *req.Name)
	}
	if req.Email != nil {
		upd = upd.Set("email", *req.Email)
	}
	if req.Logo != nil {
		upd = upd.Set("logo", *req.Logo)
	}

	query, args, err := upd.Suffix("returning " + tenantColumns).ToSql()
	if err != nil {
		return model.Tenant{}, err
	}

	var t model.Tenant
	if err := r.db.GetContext(ctx, &t, query, args...); err != nil {
		r.log.Error("UpdateTenant", zap.String("tenant_id", id), zap.Error(err))
		if errors.Is(err, sql.ErrNoRows) {
			return model.Tenant{}, errs.ErrNotFound
		}
		return model.Tenant{}, err
	}
	return t, nil
}

package tenant

import (
	"context"
	"strings"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/meeplelab/ludoteca-service/internal/errs"
	"github.com/meeplelab/ludoteca-service/internal/model"
)

//go:generate go run github.com/golang/mock/mockgen -source=service.go -destination=mocks/mock.go

type Repository interface {
	GetTenantByDomainExact(ctx context.Context, hostname string) (model.Tenant, error)
	ListTenants(ctx context.Context) ([]model.Tenant, error)
	GetTenantByID(ctx context.Context, id string) (model.Tenant, error)
	UpdateTenant(ctx context.Context, id string, req model.UpdateTenantRequest) (model.Tenant, error)
	GetEdition(ctx context.Context, id int64) (model.Edition, error)
}

type Service struct {
	log      *zap.Logger
	repo     Repository
	cache    *redis.Client
	cacheTTL time.Duration
}

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// NewService wires the resolver. cache may be nil, hostname lookups then
// always hit the store.
func NewService(repo Repository, cache *redis.Client, cacheTTL time.Duration, log *zap.Logger) *Service {
	return &Service{
		log:      log.Named("tenant"),
		repo:     repo,
		cache:    cache,
		cacheTTL: cacheTTL,
	}
}

const cacheKeyPrefix = "tenant:host:"

// ResolveByHostname finds the tenant owning a request hostname. The fast
// path is a single indexed query on exact domain membership; only when that
// finds nothing are all tenants scanned against their wildcard patterns.
// When several patterns match, the longest pattern wins, ties broken by
// store order. Returns errs.ErrNotFound when no tenant matches.
func (s *Service) ResolveByHostname(ctx context.Context, hostname string) (model.Tenant, error) {
	hostname = strings.ToLower(hostname)

	if t, ok := s.cached(ctx, hostname); ok {
		return t, nil
	}

	t, err := s.repo.GetTenantByDomainExact(ctx, hostname)
	if err == nil {
		s.cachePut(ctx, hostname, t)
		return t, nil
	}
	if !errors.Is(err, errs.ErrNotFound) {
		return model.Tenant{}, err
	}

	tenants, err := s.repo.ListTenants(ctx)
	if err != nil {
		return model.Tenant{}, err
	}

	bestLen := -1
	var best model.Tenant
	for _, tenant := range tenants {
		patterns := append([]string{tenant.Domain}, tenant.OtherDomains...)
		for _, p := range patterns {
			if MatchDomain(p, hostname) && len(p) > bestLen {
				best = tenant
				bestLen = len(p)
			}
		}
	}
	if bestLen < 0 {
		return model.Tenant{}, errors.Wrapf(errs.ErrNotFound, "no tenant for hostname %q", hostname)
	}

	s.cachePut(ctx, hostname, best)
	return best, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (model.Tenant, error) {
	return s.repo.GetTenantByID(ctx, id)
}

func (s *Service) GetEdition(ctx context.Context, id int64) (model.Edition, error) {
	return s.repo.GetEdition(ctx, id)
}

func (s *Service) Update(ctx context.Context, id string, req model.UpdateTenantRequest) (model.Tenant, error) {
	t, err := s.repo.UpdateTenant(ctx, id, req)
	if err != nil {
		return model.Tenant{}, err
	}
	s.cacheInvalidate(ctx, t)
	return t, nil
}

// cache is best-effort: failures are logged, never surfaced.

func (s *Service) cached(ctx context.Context, hostname string) (model.Tenant, bool) {
	if s.cache == nil {
		return model.Tenant{}, false
	}
	data, err := s.cache.Get(ctx, cacheKeyPrefix+hostname).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			s.log.Warn("tenant cache get", zap.Error(err))
		}
		return model.Tenant{}, false
	}
	var t model.Tenant
	if err := json.Unmarshal(data, &t); err != nil {
		return model.Tenant{}, false
	}
	return t, true
}

func (s *Service) cachePut(ctx context.Context, hostname string, t model.Tenant) {
	if s.cache == nil {
		return
	}
	data, err := json.Marshal(t)
	if err != nil {
		return
	}
	if err := s.cache.Set(ctx, cacheKeyPrefix+hostname, data, s.cacheTTL).Err(); err != nil {
		s.log.Warn("tenant cache set", zap.Error(err))
	}
}

func (s *Service) cacheInvalidate(ctx context.Context, t model.Tenant) {
	if s.cache == nil {
		return
	}
	keys := make([]string, 0, 1+len(t.OtherDomains))
	keys = append(keys, cacheKeyPrefix+strings.ToLower(t.Domain))
	for _, d := range t.OtherDomains {
		keys = append(keys, cacheKeyPrefix+strings.ToLower(d))
	}
	if err := s.cache.Del(ctx, keys...).Err(); err != nil {
		s.log.Warn("tenant cache del", zap.Error(err))
	}
}

package tenant_test

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/lib/pq"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/meeplelab/ludoteca-service/internal/errs"
	"github.com/meeplelab/ludoteca-service/internal/model"
	"github.com/meeplelab/ludoteca-service/internal/service/tenant"
	mock_tenant "github.com/meeplelab/ludoteca-service/internal/service/tenant/mocks"
)

func newService(t *testing.T) (*tenant.Service, *mock_tenant.MockRepository) {
	t.Helper()
	c := gomock.NewController(t)
	t.Cleanup(c.Finish)
	repo := mock_tenant.NewMockRepository(c)
	return tenant.NewService(repo, nil, 0, zap.NewNop()), repo
}

func TestService_ResolveByHostname(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	acme := model.Tenant{ID: "t-1", Name: "Acme", Domain: "acme.example.com"}
	wildcard := model.Tenant{
		ID:           "t-2",
		Name:         "Acme App",
		Domain:       "*.acme.app",
		OtherDomains: pq.StringArray{"foo.com"},
	}

	t.Run("exact match skips the fallback scan", func(t *testing.T) {
		t.Parallel()
		svc, repo := newService(t)
		repo.EXPECT().
			GetTenantByDomainExact(ctx, "acme.example.com").
			Return(acme, nil)

		got, err := svc.ResolveByHostname(ctx, "acme.example.com")
		require.NoError(t, err)
		require.Equal(t, acme, got)
	})

	t.Run("wildcard resolves via the fallback scan", func(t *testing.T) {
		t.Parallel()
		svc, repo := newService(t)
		repo.EXPECT().
			GetTenantByDomainExact(ctx, "demo.acme.app").
			Return(model.Tenant{}, errs.ErrNotFound)
		repo.EXPECT().
			ListTenants(ctx).
			Return([]model.Tenant{acme, wildcard}, nil)

		got, err := svc.ResolveByHostname(ctx, "demo.acme.app")
		require.NoError(t, err)
		require.Equal(t, wildcard, got)
	})

	t.Run("longest pattern wins on multiple wildcard matches", func(t *testing.T) {
		t.Parallel()
		broad := model.Tenant{ID: "t-3", Domain: "*.app"}
		svc, repo := newService(t)
		repo.EXPECT().
			GetTenantByDomainExact(ctx, "demo.acme.app").
			Return(model.Tenant{}, errs.ErrNotFound)
		repo.EXPECT().
			ListTenants(ctx).
			Return([]model.Tenant{broad, wildcard}, nil)

		got, err := svc.ResolveByHostname(ctx, "demo.acme.app")
		require.NoError(t, err)
		require.Equal(t, wildcard.ID, got.ID)
	})

	t.Run("no match is not found", func(t *testing.T) {
		t.Parallel()
		svc, repo := newService(t)
		repo.EXPECT().
			GetTenantByDomainExact(ctx, "nomatch.io").
			Return(model.Tenant{}, errs.ErrNotFound)
		repo.EXPECT().
			ListTenants(ctx).
			Return([]model.Tenant{acme, wildcard}, nil)

		_, err := svc.ResolveByHostname(ctx, "nomatch.io")
		require.ErrorIs(t, err, errs.ErrNotFound)
	})

	t.Run("store errors abort before the fallback scan", func(t *testing.T) {
		t.Parallel()
		svc, repo := newService(t)
		storeErr := errors.New("connection refused")
		repo.EXPECT().
			GetTenantByDomainExact(ctx, "acme.example.com").
			Return(model.Tenant{}, storeErr)

		_, err := svc.ResolveByHostname(ctx, "acme.example.com")
		require.ErrorIs(t, err, storeErr)
	})

	t.Run("hostname is lowercased before lookup", func(t *testing.T) {
		t.Parallel()
		svc, repo := newService(t)
		repo.EXPECT().
			GetTenantByDomainExact(ctx, "acme.example.com").
			Return(acme, nil)

		got, err := svc.ResolveByHostname(ctx, "ACME.Example.COM")
		require.NoError(t, err)
		require.Equal(t, acme, got)
	})
}

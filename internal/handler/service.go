package handler

import (
	"context"

	"github.com/meeplelab/ludoteca-service/internal/model"
	"github.com/meeplelab/ludoteca-service/internal/service/catalog"
	"github.com/meeplelab/ludoteca-service/internal/service/library"
	"github.com/meeplelab/ludoteca-service/internal/service/reservation"
	"github.com/meeplelab/ludoteca-service/internal/service/tenant"
)

//go:generate go run github.com/golang/mock/mockgen -source=service.go -destination=mocks/mock.go

var (
	_ TenantService      = (*tenant.Service)(nil)
	_ LibraryService     = (*library.Service)(nil)
	_ ReservationService = (*reservation.Service)(nil)
	_ CatalogService     = (*catalog.Service)(nil)
)

type TenantService interface {
	ResolveByHostname(ctx context.Context, hostname string) (model.Tenant, error)
	GetByID(ctx context.Context, id string) (model.Tenant, error)
	GetEdition(ctx context.Context, id int64) (model.Edition, error)
	Update(ctx context.Context, id string, req model.UpdateTenantRequest) (model.Tenant, error)
}

type LibraryService interface {
	ListGames(ctx context.Context, scope model.Scope) ([]model.LibraryGame, error)
	GetGame(ctx context.Context, scope model.Scope, id int64) (model.LibraryGame, error)
	CreateGame(ctx context.Context, scope model.Scope, req model.CreateLibraryGameRequest) (model.LibraryGame, error)
	SetGameStatus(ctx context.Context, scope model.Scope, id int64, status model.GameStatus) error

	Withdraw(ctx context.Context, scope model.Scope, req model.CreateWithdrawRequest, createdBy string) (model.Withdraw, error)
	Return(ctx context.Context, scope model.Scope, libraryGameID int64) error
	ActiveWithdraws(ctx context.Context, scope model.Scope) ([]model.Withdraw, error)
	WithdrawsByGame(ctx context.Context, scope model.Scope, libraryGameID int64) ([]model.Withdraw, error)

	Locations(ctx context.Context, scope model.Scope, search string) ([]model.Location, error)
	CreateLocation(ctx context.Context, scope model.Scope, req model.CreateLocationRequest) (model.Location, error)
	DeleteLocation(ctx context.Context, scope model.Scope, id int64) error
}

type ReservationService interface {
	ListActive(ctx context.Context, scope model.Scope, userID string) ([]model.Reservation, error)
	GetByDisplayID(ctx context.Context, scope model.Scope, displayID int) (model.Reservation, error)
	Create(ctx context.Context, scope model.Scope, userID string, libraryGameID int64) (model.Reservation, error)
	Subscribe(ctx context.Context, scope model.Scope, userID string) (*reservation.Subscription, error)
}

type CatalogService interface {
	Search(ctx context.Context, query string) ([]model.CatalogGame, error)
	GetOrCreate(ctx context.Context, externalID string) (model.CatalogGame, error)
}

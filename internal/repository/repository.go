package repository

import (
	"context"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"github.com/meeplelab/ludoteca-service/internal/model"
)

type Repository interface {
	// tenants
	GetTenantByDomainExact(ctx context.Context, hostname string) (model.Tenant, error)
	ListTenants(ctx context.Context) ([]model.Tenant, error)
	GetTenantByID(ctx context.Context, id string) (model.Tenant, error)
	UpdateTenant(ctx context.Context, id string, req model.UpdateTenantRequest) (model.Tenant, error)

	// editions
	GetEdition(ctx context.Context, id int64) (model.Edition, error)

	// library games
	ListLibraryGames(ctx context.Context, scope model.Scope) ([]model.LibraryGame, error)
	GetLibraryGame(ctx context.Context, scope model.Scope, id int64) (model.LibraryGame, error)
	CreateLibraryGame(ctx context.Context, scope model.Scope, req model.CreateLibraryGameRequest) (model.LibraryGame, error)
	SetLibraryGameStatus(ctx context.Context, scope model.Scope, id int64, status model.GameStatus) error

	// reservations
	ListActiveReservations(ctx context.Context, scope model.Scope, userID string, now time.Time) ([]model.Reservation, error)
	GetReservationByDisplayID(ctx context.Context, scope model.Scope, displayID int, now time.Time) (model.Reservation, error)
	CreateReservation(ctx context.Context, scope model.Scope, userID string, libraryGameID int64, expiresAt time.Time) (model.Reservation, error)

	// withdraws
	CreateWithdraw(ctx context.Context, scope model.Scope, req model.CreateWithdrawRequest, createdBy string) (model.Withdraw, error)
	ReturnWithdraw(ctx context.Context, scope model.Scope, libraryGameID int64) error
	ListActiveWithdraws(ctx context.Context, scope model.Scope) ([]model.Withdraw, error)
	ListWithdrawsByGame(ctx context.Context, scope model.Scope, libraryGameID int64) ([]model.Withdraw, error)

	// locations
	ListLocations(ctx context.Context, scope model.Scope) ([]model.Location, error)
	SearchLocations(ctx context.Context, scope model.Scope, query string) ([]model.Location, error)
	CreateLocation(ctx context.Context, scope model.Scope, name string) (model.Location, error)
	DeleteLocation(ctx context.Context, scope model.Scope, id int64) error

	// catalog games
	GetOrCreateGame(ctx context.Context, game model.CatalogGame) (model.CatalogGame, error)
}

type repository struct {
	db  *sqlx.DB
	log *zap.Logger
}

func NewRepository(db *sqlx.DB, log *zap.Logger) (*repository, error) {
	return &repository{
		db:  db,
		log: log.Named("repo"),
	}, nil
}

const (
	tenantsTableName      = `tenants`
	editionsTableName     = `editions`
	gamesTableName        = `games`
	locationsTableName    = `locations`
	libraryGamesTableName = `library_games`
	reservationsTableName = `library_reservations`
	withdrawsTableName    = `library_withdraws`
)

var qb = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

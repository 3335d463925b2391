package model

import (
	"time"

	"github.com/lib/pq"
)

// Tenant is an organization owning its own library, editions and domains.
// domain and other_domains entries may carry a leading "*." wildcard.
type Tenant struct {
	ID               string         `json:"id" db:"id"`
	Name             string         `json:"name" db:"name"`
	Domain           string         `json:"domain" db:"domain"`
	OtherDomains     pq.StringArray `json:"otherDomains" db:"other_domains"`
	CurrentEditionID int64          `json:"currentEditionId" db:"current_edition_id"`
	Email            string         `json:"email" db:"email"`
	Logo             string         `json:"logo" db:"logo"`
}

// Scope is the tenant+edition context every library operation runs in.
type Scope struct {
	TenantID  string
	EditionID int64
}

type Edition struct {
	ID          int64      `json:"id" db:"id"`
	TenantID    string     `json:"tenantId" db:"tenant_id"`
	Name        string     `json:"name" db:"name"`
	StartDate   *time.Time `json:"startDate,omitempty" db:"start_date"`
	EndDate     *time.Time `json:"endDate,omitempty" db:"end_date"`
	Description string     `json:"description" db:"description"`
}

// GameStatus is the stored status of a library game. The effective status
// seen by callers additionally accounts for reservation expiry.
type GameStatus string

const (
	StatusUnknown      GameStatus = ""
	StatusAvailable    GameStatus = "available"
	StatusReserved     GameStatus = "reserved"
	StatusNotAvailable GameStatus = "not-available"
	StatusWithdrawn    GameStatus = "withdrawn"
)

// GameSummary is the catalog part of a library game row.
type GameSummary struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Image       string `json:"image"`
	Year        string `json:"year"`
	MinPlayers  string `json:"minPlayers"`
	MaxPlayers  string `json:"maxPlayers"`
	MinPlaytime string `json:"minPlaytime"`
	MaxPlaytime string `json:"maxPlaytime"`
}

// LibraryGame is a physical copy tracked for loan and reservation.
type LibraryGame struct {
	ID            int64       `json:"id"`
	TenantID      string      `json:"tenantId"`
	EditionID     int64       `json:"editionId"`
	Owner         string      `json:"owner"`
	Notes         string      `json:"notes"`
	LocationID    *int64      `json:"locationId,omitempty"`
	Status        GameStatus  `json:"status"`
	ReservedUntil *time.Time  `json:"reservedUntil,omitempty"`
	Game          GameSummary `json:"game"`
}

type ReservationStatus string

const (
	ReservationActive    ReservationStatus = "active"
	ReservationConsumed  ReservationStatus = "consumed"
	ReservationCancelled ReservationStatus = "cancelled"
)

// Reservation is a time-boxed hold on a library game. DisplayID is the
// short code shown to the user at the counter.
type Reservation struct {
	ID            int64             `json:"id" db:"id"`
	TenantID      string            `json:"tenantId" db:"tenant_id"`
	EditionID     int64             `json:"editionId" db:"edition_id"`
	LibraryGameID int64             `json:"libraryGameId" db:"library_game_id"`
	DisplayID     int               `json:"displayId" db:"display_id"`
	UserID        string            `json:"userId" db:"user_id"`
	ExpiresAt     time.Time         `json:"expiresAt" db:"expires_at"`
	Status        ReservationStatus `json:"status" db:"status"`
	CreatedAt     time.Time         `json:"createdAt" db:"created_at"`
}

// Withdraw is a loan of a library game, open until EndedAt is set.
type Withdraw struct {
	ID            int64      `json:"id" db:"id"`
	LibraryGameID int64      `json:"libraryGameId" db:"library_game_id"`
	TenantID      string     `json:"tenantId" db:"tenant_id"`
	EditionID     int64      `json:"editionId" db:"edition_id"`
	StartedAt     time.Time  `json:"startedAt" db:"started_at"`
	EndedAt       *time.Time `json:"endedAt,omitempty" db:"ended_at"`
	UserID        string     `json:"userId" db:"user_id"`
	CreatedBy     string     `json:"createdBy" db:"created_by"`
}

type Location struct {
	ID        int64  `json:"id" db:"id"`
	TenantID  string `json:"tenantId" db:"tenant_id"`
	EditionID int64  `json:"editionId" db:"edition_id"`
	Name      string `json:"name" db:"name"`
}

// CatalogGame is a row of the local games table, filled from the external
// board-game API.
type CatalogGame struct {
	ID          int64     `json:"id" db:"id"`
	ExternalID  string    `json:"externalId" db:"external_id"`
	Name        string    `json:"name" db:"name"`
	Image       string    `json:"image" db:"image"`
	Year        string    `json:"year" db:"year"`
	MinPlayers  string    `json:"minPlayers" db:"min_players"`
	MaxPlayers  string    `json:"maxPlayers" db:"max_players"`
	MinPlaytime string    `json:"minPlaytime" db:"min_playtime"`
	MaxPlaytime string    `json:"maxPlaytime" db:"max_playtime"`
	MinAge      string    `json:"minAge" db:"min_age"`
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`
}

type CreateReservationRequest struct {
	LibraryGameID int64 `json:"libraryGameId" validate:"required"`
}

type CreateWithdrawRequest struct {
	LibraryGameID int64  `json:"libraryGameId" validate:"required"`
	UserID        string `json:"userId" validate:"required"`
}

type CreateLibraryGameRequest struct {
	GameID     int64  `json:"gameId" validate:"required"`
	LocationID *int64 `json:"locationId,omitempty"`
	Owner      string `json:"owner"`
	Notes      string `json:"notes"`
}

type SetGameStatusRequest struct {
	Status GameStatus `json:"status" validate:"required,oneof=available not-available"`
}

type UpdateTenantRequest struct {
	Name  *string `json:"name,omitempty"`
	Email *string `json:"email,omitempty" validate:"omitempty,email"`
	Logo  *string `json:"logo,omitempty"`
}

type CreateLocationRequest struct {
	Name string `json:"name" validate:"required"`
}

package library

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/meeplelab/ludoteca-service/internal/events"
	"github.com/meeplelab/ludoteca-service/internal/model"
	"github.com/meeplelab/ludoteca-service/pkg/kafka"
)

type Repository interface {
	ListLibraryGames(ctx context.Context, scope model.Scope) ([]model.LibraryGame, error)
	GetLibraryGame(ctx context.Context, scope model.Scope, id int64) (model.LibraryGame, error)
	CreateLibraryGame(ctx context.Context, scope model.Scope, req model.CreateLibraryGameRequest) (model.LibraryGame, error)
	SetLibraryGameStatus(ctx context.Context, scope model.Scope, id int64, status model.GameStatus) error

	CreateWithdraw(ctx context.Context, scope model.Scope, req model.CreateWithdrawRequest, createdBy string) (model.Withdraw, error)
	ReturnWithdraw(ctx context.Context, scope model.Scope, libraryGameID int64) error
	ListActiveWithdraws(ctx context.Context, scope model.Scope) ([]model.Withdraw, error)
	ListWithdrawsByGame(ctx context.Context, scope model.Scope, libraryGameID int64) ([]model.Withdraw, error)

	ListLocations(ctx context.Context, scope model.Scope) ([]model.Location, error)
	SearchLocations(ctx context.Context, scope model.Scope, search string) ([]model.Location, error)
	CreateLocation(ctx context.Context, scope model.Scope, name string) (model.Location, error)
	DeleteLocation(ctx context.Context, scope model.Scope, id int64) error
}

type Service struct {
	log   *zap.Logger
	repo  Repository
	pub   events.Publisher
	grace time.Duration
	now   func() time.Time
}

func NewService(repo Repository, pub events.Publisher, grace time.Duration, log *zap.Logger) *Service {
	return &Service{
		log:   log.Named("library"),
		repo:  repo,
		pub:   pub,
		grace: grace,
		now:   time.Now,
	}
}

// ListGames returns the scope's games with their effective status, so a
// lapsed reservation reads as available without waiting for a write-back.
func (s *Service) ListGames(ctx context.Context, scope model.Scope) ([]model.LibraryGame, error) {
	games, err := s.repo.ListLibraryGames(ctx, scope)
	if err != nil {
		return nil, err
	}
	now := s.now()
	for i := range games {
		games[i].Status = EffectiveStatus(&games[i], now, s.grace)
	}
	return games, nil
}

func (s *Service) GetGame(ctx context.Context, scope model.Scope, id int64) (model.LibraryGame, error) {
	game, err := s.repo.GetLibraryGame(ctx, scope, id)
	if err != nil {
		return model.LibraryGame{}, err
	}
	game.Status = EffectiveStatus(&game, s.now(), s.grace)
	return game, nil
}

func (s *Service) CreateGame(ctx context.Context, scope model.Scope, req model.CreateLibraryGameRequest) (model.LibraryGame, error) {
	return s.repo.CreateLibraryGame(ctx, scope, req)
}

// SetGameStatus overrides the stored status (staff marking a copy available
// or not-available).
func (s *Service) SetGameStatus(ctx context.Context, scope model.Scope, id int64, status model.GameStatus) error {
	if err := s.repo.SetLibraryGameStatus(ctx, scope, id, status); err != nil {
		return err
	}
	s.publish(events.Event{
		Type:          events.GameStatusChanged,
		TenantID:      scope.TenantID,
		EditionID:     scope.EditionID,
		LibraryGameID: id,
	})
	return nil
}

func (s *Service) Withdraw(ctx context.Context, scope model.Scope, req model.CreateWithdrawRequest, createdBy string) (model.Withdraw, error) {
	w, err := s.repo.CreateWithdraw(ctx, scope, req, createdBy)
	if err != nil {
		return model.Withdraw{}, err
	}
	s.publish(events.Event{
		Type:          events.WithdrawCreated,
		TenantID:      scope.TenantID,
		EditionID:     scope.EditionID,
		LibraryGameID: req.LibraryGameID,
		UserID:        req.UserID,
	})
	return w, nil
}

func (s *Service) Return(ctx context.Context, scope model.Scope, libraryGameID int64) error {
	if err := s.repo.ReturnWithdraw(ctx, scope, libraryGameID); err != nil {
		return err
	}
	s.publish(events.Event{
		Type:          events.WithdrawReturned,
		TenantID:      scope.TenantID,
		EditionID:     scope.EditionID,
		LibraryGameID: libraryGameID,
	})
	return nil
}

func (s *Service) ActiveWithdraws(ctx context.Context, scope model.Scope) ([]model.Withdraw, error) {
	return s.repo.ListActiveWithdraws(ctx, scope)
}

func (s *Service) WithdrawsByGame(ctx context.Context, scope model.Scope, libraryGameID int64) ([]model.Withdraw, error) {
	return s.repo.ListWithdrawsByGame(ctx, scope, libraryGameID)
}

// Locations lists a scope's shelf locations, optionally filtered by a
// case-insensitive substring.
func (s *Service) Locations(ctx context.Context, scope model.Scope, search string) ([]model.Location, error) {
	if search != "" {
		return s.repo.SearchLocations(ctx, scope, search)
	}
	return s.repo.ListLocations(ctx, scope)
}

func (s *Service) CreateLocation(ctx context.Context, scope model.Scope, req model.CreateLocationRequest) (model.Location, error) {
	return s.repo.CreateLocation(ctx, scope, req.Name)
}

func (s *Service) DeleteLocation(ctx context.Context, scope model.Scope, id int64) error {
	return s.repo.DeleteLocation(ctx, scope, id)
}

// publish is fire-and-forget: the write already committed, a broker outage
// must not fail the request.
func (s *Service) publish(e events.Event) {
	e.At = s.now().UTC()
	if err := s.pub.Publish(kafka.LibraryEventsTopic, e); err != nil {
		s.log.Warn("publish event", zap.String("type", string(e.Type)), zap.Error(err))
	}
}

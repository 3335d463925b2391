package reservation

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/meeplelab/ludoteca-service/internal/errs"
	"github.com/meeplelab/ludoteca-service/internal/events"
	"github.com/meeplelab/ludoteca-service/internal/model"
	"github.com/meeplelab/ludoteca-service/pkg/kafka"
)

type Repository interface {
	ListActiveReservations(ctx context.Context, scope model.Scope, userID string, now time.Time) ([]model.Reservation, error)
	GetReservationByDisplayID(ctx context.Context, scope model.Scope, displayID int, now time.Time) (model.Reservation, error)
	CreateReservation(ctx context.Context, scope model.Scope, userID string, libraryGameID int64, expiresAt time.Time) (model.Reservation, error)
}

// Feed delivers a tick per change on the reservations table. Notifications
// is closed when the feed stops; Close is idempotent. A feed instance is
// owned by exactly one subscription.
type Feed interface {
	Notifications() <-chan struct{}
	Close(ctx context.Context) error
}

type FeedFactory func(ctx context.Context) (Feed, error)

type Service struct {
	log     *zap.Logger
	repo    Repository
	pub     events.Publisher
	newFeed FeedFactory
	ttl     time.Duration
	now     func() time.Time
}

// NewService wires the reservation lifecycle. ttl is how long a fresh hold
// lasts.
func NewService(repo Repository, pub events.Publisher, newFeed FeedFactory, ttl time.Duration, log *zap.Logger) *Service {
	return &Service{
		log:     log.Named("reservation"),
		repo:    repo,
		pub:     pub,
		newFeed: newFeed,
		ttl:     ttl,
		now:     time.Now,
	}
}

// ListActive returns the user's unexpired holds in the scope. An empty
// result is a normal outcome, not an error. The store already filters on
// expiry; the recheck keeps a hold that lapsed in flight out of the result.
func (s *Service) ListActive(ctx context.Context, scope model.Scope, userID string) ([]model.Reservation, error) {
	now := s.now()
	items, err := s.repo.ListActiveReservations(ctx, scope, userID, now)
	if err != nil {
		return nil, err
	}
	return unexpired(items, now), nil
}

func (s *Service) GetByDisplayID(ctx context.Context, scope model.Scope, displayID int) (model.Reservation, error) {
	now := s.now()
	rsv, err := s.repo.GetReservationByDisplayID(ctx, scope, displayID, now)
	if err != nil {
		return model.Reservation{}, err
	}
	if !rsv.ExpiresAt.After(now) {
		return model.Reservation{}, errs.ErrNotFound
	}
	return rsv, nil
}

// unexpired drops holds whose expiry is at or before now. A hold expiring
// exactly at now is already gone, one second later it is still listed.
func unexpired(items []model.Reservation, now time.Time) []model.Reservation {
	active := make([]model.Reservation, 0, len(items))
	for _, rsv := range items {
		if rsv.ExpiresAt.After(now) {
			active = append(active, rsv)
		}
	}
	return active
}

// Create places a hold on the game. Conflicting holds are rejected by the
// store (first writer wins); callers get the typed error, not a race.
func (s *Service) Create(ctx context.Context, scope model.Scope, userID string, libraryGameID int64) (model.Reservation, error) {
	rsv, err := s.repo.CreateReservation(ctx, scope, userID, libraryGameID, s.now().Add(s.ttl).UTC())
	if err != nil {
		return model.Reservation{}, err
	}
	e := events.Event{
		Type:          events.ReservationCreated,
		TenantID:      scope.TenantID,
		EditionID:     scope.EditionID,
		LibraryGameID: libraryGameID,
		UserID:        userID,
		At:            s.now().UTC(),
	}
	if err := s.pub.Publish(kafka.LibraryEventsTopic, e); err != nil {
		s.log.Warn("publish event", zap.String("type", string(e.Type)), zap.Error(err))
	}
	return rsv, nil
}

package reservation

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/meeplelab/ludoteca-service/internal/model"
)

// Subscription streams snapshots of one user's active reservations. Every
// delivery is the full latest list, never a diff: a receiver that misses
// intermediate snapshots loses nothing.
type Subscription struct {
	updates chan []model.Reservation
	feed    Feed
	cancel  context.CancelFunc
	once    sync.Once
}

// Subscribe opens a dedicated change feed for the caller and pushes the
// current snapshot before returning, so a consumer sees state even if no
// change ever happens. Each table change triggers a refetch of just this
// user's active holds.
func (s *Service) Subscribe(ctx context.Context, scope model.Scope, userID string) (*Subscription, error) {
	feed, err := s.newFeed(ctx)
	if err != nil {
		return nil, err
	}

	now := s.now()
	initial, err := s.repo.ListActiveReservations(ctx, scope, userID, now)
	if err != nil {
		_ = feed.Close(ctx)
		return nil, err
	}
	initial = unexpired(initial, now)

	loopCtx, cancel := context.WithCancel(context.Background())
	sub := &Subscription{
		updates: make(chan []model.Reservation, 1),
		feed:    feed,
		cancel:  cancel,
	}
	sub.updates <- initial

	go s.pump(loopCtx, sub, scope, userID)
	return sub, nil
}

func (s *Service) pump(ctx context.Context, sub *Subscription, scope model.Scope, userID string) {
	defer close(sub.updates)
	for {
		select {
		case <-ctx.Done():
			return
		case _, ok := <-sub.feed.Notifications():
			if !ok {
				return
			}
			now := s.now()
			snapshot, err := s.repo.ListActiveReservations(ctx, scope, userID, now)
			if err != nil {
				if ctx.Err() == nil {
					s.log.Warn("refetch reservations",
						zap.String("tenant_id", scope.TenantID),
						zap.String("user_id", userID),
						zap.Error(err))
				}
				continue
			}
			sub.push(unexpired(snapshot, now))
		}
	}
}

// push delivers the latest snapshot, displacing an undelivered older one.
func (sub *Subscription) push(snapshot []model.Reservation) {
	for {
		select {
		case sub.updates <- snapshot:
			return
		default:
		}
		select {
		case <-sub.updates:
		default:
		}
	}
}

// Updates is closed once the subscription ends, whether by Unsubscribe or
// by the feed dropping.
func (sub *Subscription) Updates() <-chan []model.Reservation {
	return sub.updates
}

// Unsubscribe releases the feed. Idempotent, and safe to call after the
// feed already closed on its own.
func (sub *Subscription) Unsubscribe() {
	sub.once.Do(func() {
		sub.cancel()
		closeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = sub.feed.Close(closeCtx)
	})
}

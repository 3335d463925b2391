package reservation_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/meeplelab/ludoteca-service/internal/errs"
	"github.com/meeplelab/ludoteca-service/internal/events"
	"github.com/meeplelab/ludoteca-service/internal/model"
	"github.com/meeplelab/ludoteca-service/internal/service/reservation"
)

var testScope = model.Scope{TenantID: "t-1", EditionID: 7}

type stubRepo struct {
	mu      sync.Mutex
	active  []model.Reservation
	listErr error

	createdExpiresAt time.Time
}

func (r *stubRepo) setActive(items []model.Reservation) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.active = items
}

func (r *stubRepo) ListActiveReservations(_ context.Context, _ model.Scope, _ string, _ time.Time) ([]model.Reservation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.listErr != nil {
		return nil, r.listErr
	}
	return r.active, nil
}

func (r *stubRepo) GetReservationByDisplayID(_ context.Context, _ model.Scope, displayID int, _ time.Time) (model.Reservation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, rsv := range r.active {
		if rsv.DisplayID == displayID {
			return rsv, nil
		}
	}
	return model.Reservation{}, errors.New("not found")
}

func (r *stubRepo) CreateReservation(_ context.Context, _ model.Scope, userID string, libraryGameID int64, expiresAt time.Time) (model.Reservation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.createdExpiresAt = expiresAt
	return model.Reservation{
		ID:            1,
		LibraryGameID: libraryGameID,
		UserID:        userID,
		ExpiresAt:     expiresAt,
		Status:        model.ReservationActive,
	}, nil
}

type stubFeed struct {
	ch        chan struct{}
	closeOnce sync.Once
	closes    int
}

func newStubFeed() *stubFeed {
	return &stubFeed{ch: make(chan struct{}, 1)}
}

func (f *stubFeed) Notifications() <-chan struct{} { return f.ch }

func (f *stubFeed) Close(context.Context) error {
	f.closes++
	f.closeOnce.Do(func() { close(f.ch) })
	return nil
}

func newService(repo *stubRepo, feed *stubFeed) *reservation.Service {
	factory := func(context.Context) (reservation.Feed, error) { return feed, nil }
	return reservation.NewService(repo, events.NopPublisher{}, factory, 30*time.Minute, zap.NewNop())
}

func receive(t *testing.T, sub *reservation.Subscription) []model.Reservation {
	t.Helper()
	select {
	case snapshot, ok := <-sub.Updates():
		require.True(t, ok, "updates channel closed")
		return snapshot
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for snapshot")
		return nil
	}
}

func TestService_Create_setsExpiry(t *testing.T) {
	t.Parallel()
	repo := &stubRepo{}
	svc := newService(repo, newStubFeed())

	before := time.Now()
	rsv, err := svc.Create(context.Background(), testScope, "u-1", 42)
	require.NoError(t, err)
	require.Equal(t, int64(42), rsv.LibraryGameID)
	require.WithinRange(t, repo.createdExpiresAt,
		before.Add(30*time.Minute).Add(-time.Second).UTC(),
		time.Now().Add(30*time.Minute).Add(time.Second).UTC())
}

func TestService_ListActive_expiryBoundary(t *testing.T) {
	t.Parallel()
	now := time.Now()
	repo := &stubRepo{active: []model.Reservation{
		{ID: 1, DisplayID: 11, ExpiresAt: now.Add(-time.Second)},
		{ID: 2, DisplayID: 12, ExpiresAt: now.Add(time.Second)},
	}}
	svc := newService(repo, newStubFeed())

	items, err := svc.ListActive(context.Background(), testScope, "u-1")
	require.NoError(t, err)
	require.Len(t, items, 1)
	require.Equal(t, 12, items[0].DisplayID)
}

func TestService_GetByDisplayID_expired(t *testing.T) {
	t.Parallel()
	repo := &stubRepo{active: []model.Reservation{
		{ID: 1, DisplayID: 11, ExpiresAt: time.Now().Add(-time.Second)},
	}}
	svc := newService(repo, newStubFeed())

	_, err := svc.GetByDisplayID(context.Background(), testScope, 11)
	require.ErrorIs(t, err, errs.ErrNotFound)
}

func TestService_Subscribe(t *testing.T) {
	t.Parallel()

	t.Run("pushes the current snapshot immediately", func(t *testing.T) {
		t.Parallel()
		repo := &stubRepo{active: []model.Reservation{
			{ID: 1, DisplayID: 12, ExpiresAt: time.Now().Add(time.Hour)},
		}}
		feed := newStubFeed()
		svc := newService(repo, feed)

		sub, err := svc.Subscribe(context.Background(), testScope, "u-1")
		require.NoError(t, err)
		defer sub.Unsubscribe()

		snapshot := receive(t, sub)
		require.Len(t, snapshot, 1)
		require.Equal(t, 12, snapshot[0].DisplayID)
	})

	t.Run("refetches on change notification", func(t *testing.T) {
		t.Parallel()
		repo := &stubRepo{}
		feed := newStubFeed()
		svc := newService(repo, feed)

		sub, err := svc.Subscribe(context.Background(), testScope, "u-1")
		require.NoError(t, err)
		defer sub.Unsubscribe()

		require.Empty(t, receive(t, sub))

		repo.setActive([]model.Reservation{
			{ID: 2, DisplayID: 34, ExpiresAt: time.Now().Add(time.Hour)},
		})
		feed.ch <- struct{}{}

		snapshot := receive(t, sub)
		require.Len(t, snapshot, 1)
		require.Equal(t, 34, snapshot[0].DisplayID)
	})

	t.Run("unsubscribe is idempotent and closes updates", func(t *testing.T) {
		t.Parallel()
		repo := &stubRepo{}
		feed := newStubFeed()
		svc := newService(repo, feed)

		sub, err := svc.Subscribe(context.Background(), testScope, "u-1")
		require.NoError(t, err)
		require.Empty(t, receive(t, sub))

		sub.Unsubscribe()
		sub.Unsubscribe()
		require.Equal(t, 1, feed.closes)

		select {
		case _, ok := <-sub.Updates():
			require.False(t, ok)
		case <-time.After(time.Second):
			t.Fatal("updates channel not closed after unsubscribe")
		}
	})

	t.Run("initial load failure releases the feed", func(t *testing.T) {
		t.Parallel()
		repo := &stubRepo{listErr: errors.New("store down")}
		feed := newStubFeed()
		svc := newService(repo, feed)

		_, err := svc.Subscribe(context.Background(), testScope, "u-1")
		require.Error(t, err)
		require.Equal(t, 1, feed.closes)
	})
}

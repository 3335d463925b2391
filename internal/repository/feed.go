package repository

import (
	"context"
	"sync"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

const reservationsChannel = "library_reservations_changed"

// ReservationFeed is a dedicated LISTEN connection delivering a tick for
// every change on the reservations table. The channel carries no payload:
// consumers are expected to refetch. One feed belongs to one subscriber.
type ReservationFeed struct {
	conn          *pgx.Conn
	log           *zap.Logger
	notifications chan struct{}
	cancel        context.CancelFunc
	closeOnce     sync.Once
	closeErr      error
}

func NewReservationFeed(ctx context.Context, dsn string, log *zap.Logger) (*ReservationFeed, error) {
	conn, err := pgx.Connect(ctx, dsn)
	if err != nil {
		return nil, err
	}
	if _, err := conn.Exec(ctx, "listen "+reservationsChannel); err != nil {
		_ = conn.Close(ctx)
		return nil, err
	}

	loopCtx, cancel := context.WithCancel(context.Background())
	f := &ReservationFeed{
		conn:          conn,
		log:           log.Named("feed"),
		notifications: make(chan struct{}, 1),
		cancel:        cancel,
	}
	go f.run(loopCtx)
	return f, nil
}

func (f *ReservationFeed) run(ctx context.Context) {
	defer close(f.notifications)
	for {
		if _, err := f.conn.WaitForNotification(ctx); err != nil {
			if ctx.Err() == nil {
				f.log.Warn("feed connection lost", zap.Error(err))
			}
			return
		}
		// coalesce bursts: a pending tick already forces a refetch
		select {
		case f.notifications <- struct{}{}:
		default:
		}
	}
}

// Notifications is closed when the feed stops, whether by Close or by a
// dropped connection.
func (f *ReservationFeed) Notifications() <-chan struct{} {
	return f.notifications
}

// Close is idempotent and safe to call after the feed already stopped.
func (f *ReservationFeed) Close(ctx context.Context) error {
	f.closeOnce.Do(func() {
		f.cancel()
		f.closeErr = f.conn.Close(ctx)
	})
	return f.closeErr
}

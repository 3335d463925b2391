package circuitbreaker_test

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/meeplelab/ludoteca-service/pkg/circuitbreaker"
)

func Test_circuitBreaker_Call(t *testing.T) {
	ok := func() error { return nil }
	fail := func() error { return errors.New("service error") }

	t.Run("stays closed on successes", func(t *testing.T) {
		cb := circuitbreaker.New(10, time.Second, 0.5, 2)
		for i := 0; i < 30; i++ {
			require.NoError(t, cb.Call(ok))
		}
	})

	t.Run("opens after failure percentile and fails fast", func(t *testing.T) {
		cb := circuitbreaker.New(10, time.Minute, 0.5, 2)
		for i := 0; i < 5; i++ {
			require.Error(t, cb.Call(fail))
		}
		err := cb.Call(ok)
		require.ErrorIs(t, err, circuitbreaker.ErrOpenCB)
	})

	t.Run("recovers through half-open", func(t *testing.T) {
		cb := circuitbreaker.New(4, 10*time.Millisecond, 0.5, 1)
		require.Error(t, cb.Call(fail))
		require.Error(t, cb.Call(fail))
		require.ErrorIs(t, cb.Call(ok), circuitbreaker.ErrOpenCB)

		time.Sleep(20 * time.Millisecond)

		// half-open: successes close the breaker again
		require.NoError(t, cb.Call(ok))
		require.NoError(t, cb.Call(ok))
		require.NoError(t, cb.Call(ok))
	})

	t.Run("half-open failure reopens", func(t *testing.T) {
		cb := circuitbreaker.New(4, 10*time.Millisecond, 0.5, 2)
		require.Error(t, cb.Call(fail))
		require.Error(t, cb.Call(fail))
		require.ErrorIs(t, cb.Call(ok), circuitbreaker.ErrOpenCB)

		time.Sleep(20 * time.Millisecond)

		require.Error(t, cb.Call(fail))
		require.ErrorIs(t, cb.Call(ok), circuitbreaker.ErrOpenCB)
	})
}

package circuitbreaker_test

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/bookden/rental-service/pkg/circuitbreaker"
)

func Test_circuitBreaker_Call(t *testing.T) {
	failing := func() error { return errors.New("dispatch error") }
	succeeding := func() error { return nil }

	t.Run("stays closed on successes", func(t *testing.T) {
		cb := circuitbreaker.New(10, time.Second, 0.5, 3)
		for i := 0; i < 50; i++ {
			require.NoError(t, cb.Call(succeeding))
		}
	})

	t.Run("opens after failure percentile", func(t *testing.T) {
		cb := circuitbreaker.New(10, time.Minute, 0.5, 3)
		for i := 0; i < 5; i++ {
			require.Error(t, cb.Call(failing))
		}
		// breaker is open now: fails fast without calling through
		err := cb.Call(succeeding)
		require.ErrorIs(t, err, circuitbreaker.ErrOpen)
	})

	t.Run("recovers through half-open", func(t *testing.T) {
		cb := circuitbreaker.New(4, 10*time.Millisecond, 0.5, 1)
		for i := 0; i < 2; i++ {
			require.Error(t, cb.Call(failing))
		}
		require.ErrorIs(t, cb.Call(succeeding), circuitbreaker.ErrOpen)

		time.Sleep(20 * time.Millisecond)
		require.NoError(t, cb.Call(succeeding))
		require.NoError(t, cb.Call(succeeding))
		require.NoError(t, cb.Call(succeeding))
	})

	t.Run("reset closes the breaker", func(t *testing.T) {
		cb := circuitbreaker.New(4, time.Minute, 0.5, 1)
		for i := 0; i < 2; i++ {
			require.Error(t, cb.Call(failing))
		}
		require.ErrorIs(t, cb.Call(succeeding), circuitbreaker.ErrOpen)
		cb.Reset()
		require.NoError(t, cb.Call(succeeding))
	})
}

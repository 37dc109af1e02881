package model_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/bookden/rental-service/internal/model"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestSubscription_Status(t *testing.T) {
	t.Parallel()
	sub := model.Subscription{
		StartDate: date(2024, 3, 1),
		EndDate:   date(2024, 3, 31),
	}

	tests := []struct {
		name string
		now  time.Time
		want model.SubscriptionStatus
	}{
		{"before start", date(2024, 2, 28), model.SubscriptionPending},
		{"on start day", date(2024, 3, 1), model.SubscriptionActive},
		{"mid period", date(2024, 3, 15), model.SubscriptionActive},
		{"on end day", date(2024, 3, 31), model.SubscriptionActive},
		{"after end", date(2024, 4, 1), model.SubscriptionInactive},
		{"time of day ignored", time.Date(2024, 3, 31, 23, 50, 0, 0, time.UTC), model.SubscriptionActive},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tt.want, sub.StatusAt(tt.now))
		})
	}
}

func TestCurrent(t *testing.T) {
	t.Parallel()
	_, ok := model.Current(nil)
	require.False(t, ok)

	subs := []model.Subscription{
		{ID: 1, EndDate: date(2023, 1, 1)},
		{ID: 3, EndDate: date(2024, 6, 1)},
		{ID: 2, EndDate: date(2024, 1, 1)},
	}
	cur, ok := model.Current(subs)
	require.True(t, ok)
	require.Equal(t, 3, cur.ID)
}

func TestRentalCopy_DelayInDays(t *testing.T) {
	t.Parallel()
	due := date(2024, 5, 10)

	t.Run("not yet due", func(t *testing.T) {
		t.Parallel()
		rc := model.RentalCopy{EndDate: due}
		require.Equal(t, 0, rc.DelayInDays(date(2024, 5, 9)))
	})
	t.Run("due today", func(t *testing.T) {
		t.Parallel()
		rc := model.RentalCopy{EndDate: due}
		require.Equal(t, 0, rc.DelayInDays(date(2024, 5, 10)))
	})
	t.Run("three days late", func(t *testing.T) {
		t.Parallel()
		rc := model.RentalCopy{EndDate: due}
		require.Equal(t, 3, rc.DelayInDays(date(2024, 5, 13)))
	})
	t.Run("returned late, frozen at return date", func(t *testing.T) {
		t.Parallel()
		ret := date(2024, 5, 12)
		rc := model.RentalCopy{EndDate: due, ReturnDate: &ret}
		require.Equal(t, 2, rc.DelayInDays(date(2024, 6, 1)))
	})
	t.Run("returned on time", func(t *testing.T) {
		t.Parallel()
		ret := date(2024, 5, 8)
		rc := model.RentalCopy{EndDate: due, ReturnDate: &ret}
		require.Equal(t, 0, rc.DelayInDays(date(2024, 6, 1)))
	})
}

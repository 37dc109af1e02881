package subscriber_test

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/bookden/rental-service/internal/errs"
	"github.com/bookden/rental-service/internal/model"
	repo_mocks "github.com/bookden/rental-service/internal/repository/mocks"
	"github.com/bookden/rental-service/internal/service/subscriber"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func newService(t *testing.T) (*subscriber.Service, *repo_mocks.MockSubscribers) {
	t.Helper()
	c := gomock.NewController(t)
	t.Cleanup(c.Finish)
	repo := repo_mocks.NewMockSubscribers(c)
	return subscriber.NewService(repo, zap.NewNop()), repo
}

func TestService_AddSubscription(t *testing.T) {
	t.Parallel()

	existing := model.Subscriber{
		ID: 7,
		Subscriptions: []model.Subscription{
			{ID: 1, SubscriberID: 7, StartDate: date(2024, 1, 1), EndDate: date(2024, 12, 31)},
		},
	}

	tests := []struct {
		name         string
		sub          model.Subscription
		mockBehavior func(repo *repo_mocks.MockSubscribers, sub model.Subscription)
		wantErr      error
	}{
		{
			name: "starts after current ends",
			sub:  model.Subscription{SubscriberID: 7, StartDate: date(2025, 1, 1), EndDate: date(2025, 12, 31)},
			mockBehavior: func(repo *repo_mocks.MockSubscribers, sub model.Subscription) {
				repo.EXPECT().GetSubscriber(gomock.Any(), 7).Return(existing, nil)
				created := sub
				created.ID = 2
				repo.EXPECT().AddSubscription(gomock.Any(), sub).Return(created, nil)
			},
		},
		{
			name: "first subscription ever",
			sub:  model.Subscription{SubscriberID: 7, StartDate: date(2024, 6, 1), EndDate: date(2025, 5, 31)},
			mockBehavior: func(repo *repo_mocks.MockSubscribers, sub model.Subscription) {
				repo.EXPECT().GetSubscriber(gomock.Any(), 7).Return(model.Subscriber{ID: 7}, nil)
				created := sub
				created.ID = 1
				repo.EXPECT().AddSubscription(gomock.Any(), sub).Return(created, nil)
			},
		},
		{
			name: "overlaps current period",
			sub:  model.Subscription{SubscriberID: 7, StartDate: date(2024, 11, 1), EndDate: date(2025, 10, 31)},
			mockBehavior: func(repo *repo_mocks.MockSubscribers, sub model.Subscription) {
				repo.EXPECT().GetSubscriber(gomock.Any(), 7).Return(existing, nil)
			},
			wantErr: errs.ErrSubscriptionOverlap,
		},
		{
			name: "starts on the current end date",
			sub:  model.Subscription{SubscriberID: 7, StartDate: date(2024, 12, 31), EndDate: date(2025, 12, 30)},
			mockBehavior: func(repo *repo_mocks.MockSubscribers, sub model.Subscription) {
				repo.EXPECT().GetSubscriber(gomock.Any(), 7).Return(existing, nil)
			},
			wantErr: errs.ErrSubscriptionOverlap,
		},
		{
			name: "subscriber missing",
			sub:  model.Subscription{SubscriberID: 9, StartDate: date(2025, 1, 1), EndDate: date(2025, 12, 31)},
			mockBehavior: func(repo *repo_mocks.MockSubscribers, sub model.Subscription) {
				repo.EXPECT().GetSubscriber(gomock.Any(), 9).
					Return(model.Subscriber{}, errs.ErrSubscriberNotFound)
			},
			wantErr: errs.ErrSubscriberNotFound,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			svc, repo := newService(t)
			tt.mockBehavior(repo, tt.sub)

			created, err := svc.AddSubscription(context.Background(), tt.sub)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			require.NotZero(t, created.ID)
		})
	}
}

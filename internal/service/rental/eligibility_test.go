package rental_test

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"

	"github.com/bookden/rental-service/internal/errs"
	"github.com/bookden/rental-service/internal/model"
	repo_mocks "github.com/bookden/rental-service/internal/repository/mocks"
)

func TestService_CheckEligibility(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		mockBehavior func(repo *repo_mocks.MockRentals)
		wantErr      error
	}{
		{
			name: "eligible",
			mockBehavior: func(repo *repo_mocks.MockRentals) {
				repo.EXPECT().SubscriberForRental(gomock.Any(), subscriberID).
					Return(activeSubscriber(2), nil)
			},
		},
		{
			name: "deleted subscriber reads as missing",
			mockBehavior: func(repo *repo_mocks.MockRentals) {
				sub := activeSubscriber(0)
				sub.IsDeleted = true
				repo.EXPECT().SubscriberForRental(gomock.Any(), subscriberID).Return(sub, nil)
			},
			wantErr: errs.ErrSubscriberNotFound,
		},
		{
			name: "blacklisted wins over copy cap",
			mockBehavior: func(repo *repo_mocks.MockRentals) {
				sub := activeSubscriber(3)
				sub.IsBlackListed = true
				repo.EXPECT().SubscriberForRental(gomock.Any(), subscriberID).Return(sub, nil)
			},
			wantErr: errs.ErrBlackListedSubscriber,
		},
		{
			name: "copy cap before lapsed subscription",
			mockBehavior: func(repo *repo_mocks.MockRentals) {
				sub := activeSubscriber(3)
				sub.Subscriptions[0].EndDate = testNow.AddDate(0, 0, 1)
				repo.EXPECT().SubscriberForRental(gomock.Any(), subscriberID).Return(sub, nil)
			},
			wantErr: errs.ErrMaxCopiesReached,
		},
		{
			name: "returned copies free the cap",
			mockBehavior: func(repo *repo_mocks.MockRentals) {
				sub := activeSubscriber(3)
				returned := testNow.AddDate(0, 0, -1)
				sub.Rentals[0].Copies[0].ReturnDate = &returned
				repo.EXPECT().SubscriberForRental(gomock.Any(), subscriberID).Return(sub, nil)
			},
		},
		{
			name: "cancelled rentals free the cap",
			mockBehavior: func(repo *repo_mocks.MockRentals) {
				sub := activeSubscriber(3)
				sub.Rentals[0].IsDeleted = true
				repo.EXPECT().SubscriberForRental(gomock.Any(), subscriberID).Return(sub, nil)
			},
		},
		{
			name: "pending subscription does not cover today",
			mockBehavior: func(repo *repo_mocks.MockRentals) {
				sub := model.Subscriber{
					ID: subscriberID,
					Subscriptions: []model.Subscription{
						{ID: 1, StartDate: testNow.AddDate(0, 0, 30), EndDate: testNow.AddDate(0, 0, 60)},
					},
				}
				repo.EXPECT().SubscriberForRental(gomock.Any(), subscriberID).Return(sub, nil)
			},
			wantErr: errs.ErrInactiveSubscriber,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			svc, repo := newService(t)
			tt.mockBehavior(repo)

			err := svc.CheckEligibility(context.Background(), subscriberID)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
		})
	}
}

package rental_test

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/bookden/rental-service/internal/errs"
	"github.com/bookden/rental-service/internal/model"
	"github.com/bookden/rental-service/internal/repository"
	repo_mocks "github.com/bookden/rental-service/internal/repository/mocks"
	"github.com/bookden/rental-service/internal/service/rental"
)

var testNow = time.Date(2025, time.June, 15, 10, 30, 0, 0, time.UTC)

const (
	subscriberID = 7
	copyID       = 42
	rentalID     = 100
)

func newService(t *testing.T) (*rental.Service, *repo_mocks.MockRentals) {
	t.Helper()
	c := gomock.NewController(t)
	t.Cleanup(c.Finish)
	repo := repo_mocks.NewMockRentals(c)
	svc := rental.NewService(repo, model.DefaultPolicy(), zap.NewNop(),
		rental.WithNow(func() time.Time { return testNow }))
	return svc, repo
}

// activeSubscriber covers the default rental duration with room to
// spare and carries the given number of outstanding copies.
func activeSubscriber(outstanding int) model.Subscriber {
	sub := model.Subscriber{
		ID: subscriberID,
		Subscriptions: []model.Subscription{
			{ID: 1, SubscriberID: subscriberID, EndDate: testNow.AddDate(0, 0, 10)},
		},
	}
	for i := 0; i < outstanding; i++ {
		sub.Rentals = append(sub.Rentals, model.Rental{
			ID:           200 + i,
			SubscriberID: subscriberID,
			Copies: []model.RentalCopy{
				{RentalID: 200 + i, BookCopyID: 1000 + i, EndDate: testNow.AddDate(0, 0, 3)},
			},
		})
	}
	return sub
}

func rentableCopy() model.BookCopy {
	return model.BookCopy{
		ID:                   copyID,
		BookID:               5,
		IsAvailableForRental: true,
		BookIsAvailable:      true,
	}
}

func inTxPassthrough(repo *repo_mocks.MockRentals) *gomock.Call {
	return repo.EXPECT().
		InTx(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, fn func(repository.Rentals) error) error {
			return fn(repo)
		})
}

func TestService_CreateRental(t *testing.T) {
	t.Parallel()
	dueDate := testNow.AddDate(0, 0, 7)

	tests := []struct {
		name         string
		mockBehavior func(repo *repo_mocks.MockRentals)
		wantErr      error
	}{
		{
			name: "ok",
			mockBehavior: func(repo *repo_mocks.MockRentals) {
				inTxPassthrough(repo)
				repo.EXPECT().SubscriberForRental(gomock.Any(), subscriberID).
					Return(activeSubscriber(0), nil)
				repo.EXPECT().Copy(gomock.Any(), copyID).Return(rentableCopy(), nil)
				repo.EXPECT().CreateRental(gomock.Any(), subscriberID, copyID, testNow, dueDate).
					Return(model.Rental{ID: rentalID, SubscriberID: subscriberID, StartDate: testNow}, nil)
			},
		},
		{
			name: "ok at two outstanding copies",
			mockBehavior: func(repo *repo_mocks.MockRentals) {
				inTxPassthrough(repo)
				repo.EXPECT().SubscriberForRental(gomock.Any(), subscriberID).
					Return(activeSubscriber(2), nil)
				repo.EXPECT().Copy(gomock.Any(), copyID).Return(rentableCopy(), nil)
				repo.EXPECT().CreateRental(gomock.Any(), subscriberID, copyID, testNow, dueDate).
					Return(model.Rental{ID: rentalID, SubscriberID: subscriberID, StartDate: testNow}, nil)
			},
		},
		{
			name: "copy cap reached",
			mockBehavior: func(repo *repo_mocks.MockRentals) {
				inTxPassthrough(repo)
				repo.EXPECT().SubscriberForRental(gomock.Any(), subscriberID).
					Return(activeSubscriber(3), nil)
			},
			wantErr: errs.ErrMaxCopiesReached,
		},
		{
			name: "blacklisted",
			mockBehavior: func(repo *repo_mocks.MockRentals) {
				inTxPassthrough(repo)
				sub := activeSubscriber(0)
				sub.IsBlackListed = true
				repo.EXPECT().SubscriberForRental(gomock.Any(), subscriberID).Return(sub, nil)
			},
			wantErr: errs.ErrBlackListedSubscriber,
		},
		{
			name: "subscription lapses before due date",
			mockBehavior: func(repo *repo_mocks.MockRentals) {
				inTxPassthrough(repo)
				sub := activeSubscriber(0)
				sub.Subscriptions[0].EndDate = testNow.AddDate(0, 0, 3)
				repo.EXPECT().SubscriberForRental(gomock.Any(), subscriberID).Return(sub, nil)
			},
			wantErr: errs.ErrInactiveSubscriber,
		},
		{
			name: "no subscription at all",
			mockBehavior: func(repo *repo_mocks.MockRentals) {
				inTxPassthrough(repo)
				sub := activeSubscriber(0)
				sub.Subscriptions = nil
				repo.EXPECT().SubscriberForRental(gomock.Any(), subscriberID).Return(sub, nil)
			},
			wantErr: errs.ErrInactiveSubscriber,
		},
		{
			name: "copy unavailable",
			mockBehavior: func(repo *repo_mocks.MockRentals) {
				inTxPassthrough(repo)
				repo.EXPECT().SubscriberForRental(gomock.Any(), subscriberID).
					Return(activeSubscriber(0), nil)
				copy := rentableCopy()
				copy.IsAvailableForRental = false
				repo.EXPECT().Copy(gomock.Any(), copyID).Return(copy, nil)
			},
			wantErr: errs.ErrBookCopyUnavailable,
		},
		{
			name: "book of copy soft-deleted",
			mockBehavior: func(repo *repo_mocks.MockRentals) {
				inTxPassthrough(repo)
				repo.EXPECT().SubscriberForRental(gomock.Any(), subscriberID).
					Return(activeSubscriber(0), nil)
				copy := rentableCopy()
				copy.BookIsDeleted = true
				repo.EXPECT().Copy(gomock.Any(), copyID).Return(copy, nil)
			},
			wantErr: errs.ErrBookCopyUnavailable,
		},
		{
			name: "same copy already out with this subscriber",
			mockBehavior: func(repo *repo_mocks.MockRentals) {
				inTxPassthrough(repo)
				sub := activeSubscriber(1)
				sub.Rentals[0].Copies[0].BookCopyID = copyID
				repo.EXPECT().SubscriberForRental(gomock.Any(), subscriberID).Return(sub, nil)
				repo.EXPECT().Copy(gomock.Any(), copyID).Return(rentableCopy(), nil)
			},
			wantErr: errs.ErrBookAlreadyRented,
		},
		{
			name: "subscriber not found",
			mockBehavior: func(repo *repo_mocks.MockRentals) {
				inTxPassthrough(repo)
				repo.EXPECT().SubscriberForRental(gomock.Any(), subscriberID).
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
			tt.mockBehavior(repo)

			rent, err := svc.CreateRental(context.Background(), subscriberID, copyID)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			require.Equal(t, rentalID, rent.ID)
			require.Equal(t, testNow, rent.StartDate)
		})
	}
}

func TestService_CreateRental_RetriesOnSerializationConflict(t *testing.T) {
	t.Parallel()
	svc, repo := newService(t)

	conflict := errs.Storage(&pgconn.PgError{Code: pgerrcode.SerializationFailure})
	repo.EXPECT().InTx(gomock.Any(), gomock.Any()).Return(conflict)
	inTxPassthrough(repo)
	repo.EXPECT().SubscriberForRental(gomock.Any(), subscriberID).
		Return(activeSubscriber(0), nil)
	repo.EXPECT().Copy(gomock.Any(), copyID).Return(rentableCopy(), nil)
	repo.EXPECT().CreateRental(gomock.Any(), subscriberID, copyID, testNow, testNow.AddDate(0, 0, 7)).
		Return(model.Rental{ID: rentalID}, nil)

	rent, err := svc.CreateRental(context.Background(), subscriberID, copyID)
	require.NoError(t, err)
	require.Equal(t, rentalID, rent.ID)
}

func TestService_CreateRental_NoSecondRetry(t *testing.T) {
	t.Parallel()
	svc, repo := newService(t)

	conflict := errs.Storage(&pgconn.PgError{Code: pgerrcode.DeadlockDetected})
	repo.EXPECT().InTx(gomock.Any(), gomock.Any()).Return(conflict).Times(2)

	_, err := svc.CreateRental(context.Background(), subscriberID, copyID)
	require.ErrorIs(t, err, errs.ErrStorage)
}

func TestService_ExtendRental(t *testing.T) {
	t.Parallel()
	outstanding := model.RentalCopy{
		RentalID:     rentalID,
		BookCopyID:   copyID,
		SubscriberID: subscriberID,
		RentalDate:   testNow.AddDate(0, 0, -3),
		EndDate:      testNow.AddDate(0, 0, 4),
	}

	tests := []struct {
		name         string
		mockBehavior func(repo *repo_mocks.MockRentals)
		wantErr      error
	}{
		{
			name: "ok",
			mockBehavior: func(repo *repo_mocks.MockRentals) {
				repo.EXPECT().RentalCopy(gomock.Any(), rentalID, copyID).Return(outstanding, nil)
				repo.EXPECT().SubscriberForRental(gomock.Any(), subscriberID).
					Return(activeSubscriber(1), nil)
				repo.EXPECT().HasUnpaidPenalty(gomock.Any(), subscriberID).Return(false, nil)
				repo.EXPECT().SetExtended(gomock.Any(), rentalID, copyID, testNow,
					outstanding.EndDate.AddDate(0, 0, 7)).Return(nil)
			},
		},
		{
			name: "already returned",
			mockBehavior: func(repo *repo_mocks.MockRentals) {
				rc := outstanding
				returned := testNow.AddDate(0, 0, -1)
				rc.ReturnDate = &returned
				repo.EXPECT().RentalCopy(gomock.Any(), rentalID, copyID).Return(rc, nil)
			},
			wantErr: errs.ErrAlreadyReturned,
		},
		{
			name: "already extended once",
			mockBehavior: func(repo *repo_mocks.MockRentals) {
				rc := outstanding
				extended := testNow.AddDate(0, 0, -2)
				rc.ExtendedOn = &extended
				repo.EXPECT().RentalCopy(gomock.Any(), rentalID, copyID).Return(rc, nil)
				repo.EXPECT().SubscriberForRental(gomock.Any(), subscriberID).
					Return(activeSubscriber(1), nil)
				repo.EXPECT().HasUnpaidPenalty(gomock.Any(), subscriberID).Return(false, nil)
			},
			wantErr: errs.ErrExtendNotAllowed,
		},
		{
			name: "already delayed",
			mockBehavior: func(repo *repo_mocks.MockRentals) {
				rc := outstanding
				rc.EndDate = testNow.AddDate(0, 0, -2)
				repo.EXPECT().RentalCopy(gomock.Any(), rentalID, copyID).Return(rc, nil)
				repo.EXPECT().SubscriberForRental(gomock.Any(), subscriberID).
					Return(activeSubscriber(1), nil)
				repo.EXPECT().HasUnpaidPenalty(gomock.Any(), subscriberID).Return(false, nil)
			},
			wantErr: errs.ErrExtendNotAllowed,
		},
		{
			name: "unpaid penalty",
			mockBehavior: func(repo *repo_mocks.MockRentals) {
				repo.EXPECT().RentalCopy(gomock.Any(), rentalID, copyID).Return(outstanding, nil)
				repo.EXPECT().SubscriberForRental(gomock.Any(), subscriberID).
					Return(activeSubscriber(1), nil)
				repo.EXPECT().HasUnpaidPenalty(gomock.Any(), subscriberID).Return(true, nil)
			},
			wantErr: errs.ErrPenaltyShouldBePaid,
		},
		{
			name: "blacklisted meanwhile",
			mockBehavior: func(repo *repo_mocks.MockRentals) {
				repo.EXPECT().RentalCopy(gomock.Any(), rentalID, copyID).Return(outstanding, nil)
				sub := activeSubscriber(1)
				sub.IsBlackListed = true
				repo.EXPECT().SubscriberForRental(gomock.Any(), subscriberID).Return(sub, nil)
			},
			wantErr: errs.ErrBlackListedSubscriber,
		},
		{
			name: "subscription lapses before extension ends",
			mockBehavior: func(repo *repo_mocks.MockRentals) {
				repo.EXPECT().RentalCopy(gomock.Any(), rentalID, copyID).Return(outstanding, nil)
				sub := activeSubscriber(1)
				sub.Subscriptions[0].EndDate = testNow.AddDate(0, 0, 2)
				repo.EXPECT().SubscriberForRental(gomock.Any(), subscriberID).Return(sub, nil)
			},
			wantErr: errs.ErrInactiveSubscriber,
		},
		{
			name: "rental not found",
			mockBehavior: func(repo *repo_mocks.MockRentals) {
				repo.EXPECT().RentalCopy(gomock.Any(), rentalID, copyID).
					Return(model.RentalCopy{}, errs.ErrRentalNotFound)
			},
			wantErr: errs.ErrRentalNotFound,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			svc, repo := newService(t)
			tt.mockBehavior(repo)

			rc, err := svc.ExtendRental(context.Background(), rentalID, copyID)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			require.Equal(t, outstanding.EndDate.AddDate(0, 0, 7), rc.EndDate)
			require.NotNil(t, rc.ExtendedOn)
			require.Equal(t, testNow, *rc.ExtendedOn)
		})
	}
}

func TestService_ReturnCopy(t *testing.T) {
	t.Parallel()
	svc, repo := newService(t)

	rc := model.RentalCopy{RentalID: rentalID, BookCopyID: copyID, EndDate: testNow.AddDate(0, 0, 2)}
	repo.EXPECT().RentalCopy(gomock.Any(), rentalID, copyID).Return(rc, nil)
	repo.EXPECT().SetReturned(gomock.Any(), rentalID, copyID, testNow).Return(nil)

	got, err := svc.ReturnCopy(context.Background(), rentalID, copyID)
	require.NoError(t, err)
	require.NotNil(t, got.ReturnDate)
	require.Equal(t, testNow, *got.ReturnDate)
	require.Zero(t, got.DelayInDays(testNow))
}

func TestService_ReturnCopy_Twice(t *testing.T) {
	t.Parallel()
	svc, repo := newService(t)

	returned := testNow.AddDate(0, 0, -1)
	rc := model.RentalCopy{RentalID: rentalID, BookCopyID: copyID, ReturnDate: &returned}
	repo.EXPECT().RentalCopy(gomock.Any(), rentalID, copyID).Return(rc, nil)
	repo.EXPECT().SetReturned(gomock.Any(), rentalID, copyID, testNow).
		Return(errs.ErrAlreadyReturned)

	_, err := svc.ReturnCopy(context.Background(), rentalID, copyID)
	require.ErrorIs(t, err, errs.ErrAlreadyReturned)
}

func TestService_DelayedRentals(t *testing.T) {
	t.Parallel()
	svc, repo := newService(t)

	want := []model.RentalCopy{
		{RentalID: rentalID, BookCopyID: copyID, EndDate: testNow.AddDate(0, 0, -3)},
	}
	repo.EXPECT().Delayed(gomock.Any(), testNow).Return(want, nil)

	got, err := svc.DelayedRentals(context.Background())
	require.NoError(t, err)
	require.Equal(t, want, got)
	require.Equal(t, 3, got[0].DelayInDays(testNow))
}

package report_test

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/bookden/rental-service/internal/errs"
	"github.com/bookden/rental-service/internal/model"
	"github.com/bookden/rental-service/internal/repository"
	repo_mocks "github.com/bookden/rental-service/internal/repository/mocks"
	"github.com/bookden/rental-service/internal/service/report"
)

func newService(t *testing.T) (*report.Service, *repo_mocks.MockReports) {
	t.Helper()
	c := gomock.NewController(t)
	t.Cleanup(c.Finish)
	repo := repo_mocks.NewMockReports(c)
	return report.NewService(repo, model.DefaultPolicy(), zap.NewNop()), repo
}

func TestParseRange(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		from, to string
		wantErr  bool
	}{
		{name: "ok", from: "2024-01-01", to: "2024-12-31"},
		{name: "single day", from: "2024-05-10", to: "2024-05-10"},
		{name: "reversed", from: "2024-12-31", to: "2024-01-01", wantErr: true},
		{name: "unparsable from", from: "01.01.2024", to: "2024-12-31", wantErr: true},
		{name: "unparsable to", from: "2024-01-01", to: "yesterday", wantErr: true},
		{name: "empty", from: "", to: "", wantErr: true},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			from, to, err := report.ParseRange(tt.from, tt.to)
			if tt.wantErr {
				require.ErrorIs(t, err, errs.ErrInvalidDateRange)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.from, from.Format(time.DateOnly))
			require.Equal(t, tt.to, to.Format(time.DateOnly))
		})
	}
}

func TestService_Books(t *testing.T) {
	t.Parallel()
	svc, repo := newService(t)

	filter := repository.BookFilter{AuthorIDs: []int{3}, CategoryIDs: []int{1, 2}}
	items := []model.Book{{ID: 11, Title: "Dune"}}
	paging := model.Paging{Page: 2, PageSize: 10, TotalElements: 11, TotalPages: 2}
	repo.EXPECT().BooksPage(gomock.Any(), filter, 2, 10).Return(items, paging, nil)

	got, err := svc.Books(context.Background(), filter, 2)
	require.NoError(t, err)
	require.Equal(t, paging, got.Paging)
	require.Equal(t, items, got.Items)
}

func TestService_Rentals(t *testing.T) {
	t.Parallel()
	svc, repo := newService(t)

	from := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC)
	items := []model.RentalCopy{{RentalID: 1, BookCopyID: 2, RentalDate: from}}
	paging := model.Paging{Page: 1, PageSize: 10, TotalElements: 1, TotalPages: 1}
	repo.EXPECT().RentalsPage(gomock.Any(), from, to, 1, 10).Return(items, paging, nil)

	got, err := svc.Rentals(context.Background(), "2024-03-01", "2024-03-31", 1)
	require.NoError(t, err)
	require.Equal(t, paging, got.Paging)
	require.Equal(t, items, got.Items)
}

func TestService_Rentals_InvalidRange(t *testing.T) {
	t.Parallel()
	svc, _ := newService(t)

	_, err := svc.Rentals(context.Background(), "2024-03-31", "2024-03-01", 1)
	require.ErrorIs(t, err, errs.ErrInvalidDateRange)
}

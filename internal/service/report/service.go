package report

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/bookden/rental-service/internal/errs"
	"github.com/bookden/rental-service/internal/model"
	"github.com/bookden/rental-service/internal/repository"
)

type Service struct {
	log    *zap.Logger
	repo   repository.Reports
	policy model.Policy
}

func NewService(repo repository.Reports, policy model.Policy, log *zap.Logger) *Service {
	return &Service{
		log:    log,
		repo:   repo,
		policy: policy,
	}
}

type BooksPage struct {
	model.Paging `json:",inline"`
	Items        []model.Book `json:"items"`
}

type RentalsPage struct {
	model.Paging `json:",inline"`
	Items        []model.RentalCopy `json:"items"`
}

// Books returns a page of non-deleted books matching every supplied
// filter; empty filters do not restrict.
func (s *Service) Books(ctx context.Context, filter repository.BookFilter, page int) (BooksPage, error) {
	items, paging, err := s.repo.BooksPage(ctx, filter, page, s.policy.PageSize)
	if err != nil {
		return BooksPage{}, err
	}
	return BooksPage{Paging: paging, Items: items}, nil
}

// Rentals returns a page of rental copies issued inside the inclusive
// [from, to] range. The bounds arrive as yyyy-mm-dd strings.
func (s *Service) Rentals(ctx context.Context, fromStr, toStr string, page int) (RentalsPage, error) {
	from, to, err := ParseRange(fromStr, toStr)
	if err != nil {
		return RentalsPage{}, err
	}
	items, paging, err := s.repo.RentalsPage(ctx, from, to, page, s.policy.PageSize)
	if err != nil {
		return RentalsPage{}, err
	}
	return RentalsPage{Paging: paging, Items: items}, nil
}

// ParseRange validates an inclusive date range; a start after the end
// or an unparsable bound is ErrInvalidDateRange.
func ParseRange(fromStr, toStr string) (from, to time.Time, err error) {
	from, err = time.Parse(time.DateOnly, fromStr)
	if err != nil {
		return time.Time{}, time.Time{}, errs.ErrInvalidDateRange
	}
	to, err = time.Parse(time.DateOnly, toStr)
	if err != nil {
		return time.Time{}, time.Time{}, errs.ErrInvalidDateRange
	}
	if from.After(to) {
		return time.Time{}, time.Time{}, errs.ErrInvalidDateRange
	}
	return from, to, nil
}

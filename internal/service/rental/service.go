package rental

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
	repo   repository.Rentals
	policy model.Policy
	now    func() time.Time
}

type Option func(*Service)

// WithNow overrides the clock, used by tests.
func WithNow(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

func NewService(repo repository.Rentals, policy model.Policy, log *zap.Logger, opts ...Option) *Service {
	s := &Service{
		log:    log,
		repo:   repo,
		policy: policy,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// CreateRental starts a new rental with one copy. Eligibility and
// availability are checked inside the transaction while the
// subscriber row is locked, so concurrent requests for one subscriber
// cannot jointly exceed the copy cap or double-book a copy. The
// atomic section is retried once on a serialization conflict.
func (s *Service) CreateRental(ctx context.Context, subscriberID, copyID int) (model.Rental, error) {
	var rental model.Rental
	op := func(tx repository.Rentals) error {
		sub, err := tx.SubscriberForRental(ctx, subscriberID)
		if err != nil {
			return err
		}
		if err := s.ValidateSubscriber(&sub); err != nil {
			return err
		}
		copy, err := tx.Copy(ctx, copyID)
		if err != nil {
			return err
		}
		if !copy.IsRentable() {
			return errs.ErrBookCopyUnavailable
		}
		if hasOutstandingCopy(sub, copyID) {
			return errs.ErrBookAlreadyRented
		}

		start := s.now()
		due := start.AddDate(0, 0, s.policy.RentalDurationDays)
		rental, err = tx.CreateRental(ctx, subscriberID, copyID, start, due)
		return err
	}

	err := s.repo.InTx(ctx, op)
	if err != nil && repository.Retryable(err) {
		s.log.Warn("createRental retry", zap.Int("subscriberId", subscriberID), zap.Error(err))
		err = s.repo.InTx(ctx, op)
	}
	if err != nil {
		return model.Rental{}, err
	}
	return rental, nil
}

// ExtendRental pushes the due date forward once per rental copy.
func (s *Service) ExtendRental(ctx context.Context, rentalID, copyID int) (model.RentalCopy, error) {
	rc, err := s.repo.RentalCopy(ctx, rentalID, copyID)
	if err != nil {
		return model.RentalCopy{}, err
	}
	if !rc.IsOutstanding() {
		return model.RentalCopy{}, errs.ErrAlreadyReturned
	}

	sub, err := s.repo.SubscriberForRental(ctx, rc.SubscriberID)
	if err != nil {
		return model.RentalCopy{}, err
	}
	now := s.now()
	if sub.IsBlackListed {
		return model.RentalCopy{}, errs.ErrBlackListedSubscriber
	}
	if !subscriptionCovers(sub, now, s.policy.ExtensionDurationDays) {
		return model.RentalCopy{}, errs.ErrInactiveSubscriber
	}
	unpaid, err := s.repo.HasUnpaidPenalty(ctx, rc.SubscriberID)
	if err != nil {
		return model.RentalCopy{}, err
	}
	if unpaid {
		return model.RentalCopy{}, errs.ErrPenaltyShouldBePaid
	}
	if rc.ExtendedOn != nil || rc.DelayInDays(now) > 0 {
		return model.RentalCopy{}, errs.ErrExtendNotAllowed
	}

	newDue := rc.EndDate.AddDate(0, 0, s.policy.ExtensionDurationDays)
	if err := s.repo.SetExtended(ctx, rentalID, copyID, now, newDue); err != nil {
		return model.RentalCopy{}, err
	}
	rc.ExtendedOn = &now
	rc.EndDate = newDue
	return rc, nil
}

// ReturnCopy closes one loan; allowed exactly once.
func (s *Service) ReturnCopy(ctx context.Context, rentalID, copyID int) (model.RentalCopy, error) {
	rc, err := s.repo.RentalCopy(ctx, rentalID, copyID)
	if err != nil {
		return model.RentalCopy{}, err
	}
	now := s.now()
	if err := s.repo.SetReturned(ctx, rentalID, copyID, now); err != nil {
		return model.RentalCopy{}, err
	}
	rc.ReturnDate = &now
	return rc, nil
}

func (s *Service) CancelRental(ctx context.Context, rentalID int) error {
	return s.repo.CancelRental(ctx, rentalID)
}

func (s *Service) DelayedRentals(ctx context.Context) ([]model.RentalCopy, error) {
	return s.repo.Delayed(ctx, s.now())
}

func (s *Service) RentalsForSubscriber(ctx context.Context, subscriberID int) ([]model.Rental, error) {
	if _, err := s.repo.SubscriberForRental(ctx, subscriberID); err != nil {
		return nil, err
	}
	return s.repo.BySubscriber(ctx, subscriberID)
}

// CheckEligibility re-reads the subscriber and runs the rental
// checks without side effects; the same checks run again inside
// CreateRental's transaction.
func (s *Service) CheckEligibility(ctx context.Context, subscriberID int) error {
	sub, err := s.repo.SubscriberForRental(ctx, subscriberID)
	if err != nil {
		return err
	}
	return s.ValidateSubscriber(&sub)
}

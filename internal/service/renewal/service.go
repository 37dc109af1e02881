package renewal

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/bookden/rental-service/internal/model"
	"github.com/bookden/rental-service/internal/notify"
	"github.com/bookden/rental-service/internal/repository"
)

// DelayedSource yields the overdue rental copies the worker reminds
// about alongside the expiring subscriptions.
type DelayedSource interface {
	Delayed(ctx context.Context, today time.Time) ([]model.RentalCopy, error)
}

type Service struct {
	log      *zap.Logger
	repo     repository.Renewals
	delayed  DelayedSource
	notifier notify.Notifier
	policy   model.Policy
	now      func() time.Time
}

type Option func(*Service)

func WithNow(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

func NewService(repo repository.Renewals, delayed DelayedSource, notifier notify.Notifier, policy model.Policy, log *zap.Logger, opts ...Option) *Service {
	s := &Service{
		log:      log,
		repo:     repo,
		delayed:  delayed,
		notifier: notifier,
		policy:   policy,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ExpiringWithin is the read-only query behind the daily job: current
// subscriptions ending inside [today, today+days].
func (s *Service) ExpiringWithin(ctx context.Context, days int) ([]repository.ExpiringSubscription, error) {
	return s.repo.ExpiringWithin(ctx, s.now(), days)
}

// Dispatch publishes one notice per expiring subscription and marks
// it notified so the next run skips it. Publish failures are logged
// and leave the subscription unmarked for the next run. Overdue copies
// get a reminder on every run until returned.
func (s *Service) Dispatch(ctx context.Context) (int, error) {
	today := s.now()
	items, err := s.repo.ExpiringWithin(ctx, today, s.policy.ExpiryAlertDays)
	if err != nil {
		return 0, err
	}
	sent := 0
	for _, item := range items {
		err := s.notifier.PublishExpiring(notify.ExpiringNotice{
			SubscriberName: item.SubscriberName,
			Email:          item.Email,
			MobileNumber:   item.MobileNumber,
			EndDate:        item.EndDate,
		})
		if err != nil {
			s.log.Error("expiring notice", zap.Int("subscriptionId", item.ID), zap.Error(err))
			continue
		}
		if err := s.repo.MarkNotified(ctx, item.ID, today); err != nil {
			s.log.Error("mark notified", zap.Int("subscriptionId", item.ID), zap.Error(err))
			continue
		}
		sent++
	}

	overdue, err := s.delayed.Delayed(ctx, today)
	if err != nil {
		s.log.Error("delayed query", zap.Error(err))
		return sent, nil
	}
	for _, rc := range overdue {
		err := s.notifier.PublishDelayed(notify.DelayedNotice{
			SubscriberID: rc.SubscriberID,
			BookTitle:    rc.BookTitle,
			SerialNumber: rc.SerialNumber,
			EndDate:      rc.EndDate,
			DelayInDays:  rc.DelayInDays(today),
		})
		if err != nil {
			s.log.Error("delayed notice", zap.Int("rentalId", rc.RentalID), zap.Error(err))
			continue
		}
		sent++
	}
	return sent, nil
}

// Run drives Dispatch on a timer until the context is cancelled. It
// lives on its own goroutine and never touches request threads.
func (s *Service) Run(ctx context.Context, every time.Duration) {
	ticker := time.NewTicker(every)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.log.Info("renewal worker stopped")
			return
		case <-ticker.C:
			sent, err := s.Dispatch(ctx)
			if err != nil {
				s.log.Error("renewal dispatch", zap.Error(err))
				continue
			}
			s.log.Info("renewal dispatch", zap.Int("sent", sent))
		}
	}
}

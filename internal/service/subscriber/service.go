package subscriber

import (
	"context"

	"go.uber.org/zap"

	"github.com/bookden/rental-service/internal/errs"
	"github.com/bookden/rental-service/internal/model"
	"github.com/bookden/rental-service/internal/repository"
)

type Service struct {
	log  *zap.Logger
	repo repository.Subscribers
}

func NewService(repo repository.Subscribers, log *zap.Logger) *Service {
	return &Service{
		log:  log,
		repo: repo,
	}
}

func (s *Service) Create(ctx context.Context, sub model.Subscriber) (model.Subscriber, error) {
	return s.repo.CreateSubscriber(ctx, sub)
}

func (s *Service) Update(ctx context.Context, sub model.Subscriber) error {
	return s.repo.UpdateSubscriber(ctx, sub)
}

func (s *Service) Get(ctx context.Context, id int) (model.Subscriber, error) {
	return s.repo.GetSubscriber(ctx, id)
}

func (s *Service) List(ctx context.Context, page, size int) ([]model.Subscriber, model.Paging, error) {
	return s.repo.ListSubscribers(ctx, page, size)
}

func (s *Service) ToggleBlacklist(ctx context.Context, id int) (bool, error) {
	return s.repo.ToggleBlacklist(ctx, id)
}

func (s *Service) ToggleDeleted(ctx context.Context, id int) error {
	return s.repo.ToggleSubscriberDeleted(ctx, id)
}

// AddSubscription appends a new period for the subscriber. A period
// that starts on or before the current subscription's end date is
// rejected; renewals start the day after at the earliest.
func (s *Service) AddSubscription(ctx context.Context, sub model.Subscription) (model.Subscription, error) {
	existing, err := s.repo.GetSubscriber(ctx, sub.SubscriberID)
	if err != nil {
		return model.Subscription{}, err
	}
	if cur, ok := model.Current(existing.Subscriptions); ok && !sub.StartDate.After(cur.EndDate) {
		return model.Subscription{}, errs.ErrSubscriptionOverlap
	}
	return s.repo.AddSubscription(ctx, sub)
}

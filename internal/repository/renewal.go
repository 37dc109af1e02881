package repository

import (
	"context"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/bookden/rental-service/internal/model"
)

// ExpiringSubscription pairs a subscription with the contact fields
// the notification dispatcher needs.
type ExpiringSubscription struct {
	model.Subscription
	SubscriberName string `json:"subscriberName" db:"subscriber_name"`
	Email          string `json:"email" db:"email"`
	MobileNumber   string `json:"mobileNumber" db:"mobile_number"`
}

type Renewals interface {
	ExpiringWithin(ctx context.Context, today time.Time, days int) ([]ExpiringSubscription, error)
	MarkNotified(ctx context.Context, subscriptionID int, on time.Time) error
}

// ExpiringWithin returns current subscriptions ending inside the
// inclusive [today, today+days] window, skipping blacklisted and
// deleted subscribers and any subscription already notified today.
func (r *repository) ExpiringWithin(ctx context.Context, today time.Time, days int) ([]ExpiringSubscription, error) {
	until := today.AddDate(0, 0, days)
	query, args, err := qb.Select("sub.id", "sub.subscriber_id", "sub.start_date", "sub.end_date",
		"s.first_name || ' ' || s.last_name as subscriber_name", "s.email", "s.mobile_number").
		From(subscriptionsTableName + " sub").
		Join(subscribersTableName + " s on s.id = sub.subscriber_id").
		Where(sq.Eq{"s.is_deleted": false, "s.is_blacklisted": false}).
		Where(sq.GtOrEq{"sub.end_date": today.Format(time.DateOnly)}).
		Where(sq.LtOrEq{"sub.end_date": until.Format(time.DateOnly)}).
		Where(sq.Or{
			sq.Eq{"sub.last_notified_on": nil},
			sq.Lt{"sub.last_notified_on": today.Format(time.DateOnly)},
		}).
		OrderBy("sub.end_date").
		ToSql()
	if err != nil {
		return nil, err
	}
	var items []ExpiringSubscription
	if err := r.q.SelectContext(ctx, &items, query, args...); err != nil {
		return nil, storage(err)
	}
	return items, nil
}

func (r *repository) MarkNotified(ctx context.Context, subscriptionID int, on time.Time) error {
	if _, err := r.q.ExecContext(ctx,
		"update subscriptions set last_notified_on = $2 where id = $1",
		subscriptionID, on.Format(time.DateOnly)); err != nil {
		return storage(err)
	}
	return nil
}

package repository

import (
	"context"
	"database/sql"

	sq "github.com/Masterminds/squirrel"
	"github.com/pkg/errors"

	"github.com/bookden/rental-service/internal/errs"
	"github.com/bookden/rental-service/internal/model"
)

type Subscribers interface {
	CreateSubscriber(ctx context.Context, sub model.Subscriber) (model.Subscriber, error)
	UpdateSubscriber(ctx context.Context, sub model.Subscriber) error
	GetSubscriber(ctx context.Context, id int) (model.Subscriber, error)
	ListSubscribers(ctx context.Context, page, size int) ([]model.Subscriber, model.Paging, error)
	ToggleBlacklist(ctx context.Context, id int) (bool, error)
	ToggleSubscriberDeleted(ctx context.Context, id int) error
	AddSubscription(ctx context.Context, sub model.Subscription) (model.Subscription, error)
}

func (r *repository) CreateSubscriber(ctx context.Context, sub model.Subscriber) (model.Subscriber, error) {
	query, args, err := qb.Insert(subscribersTableName).
		Columns("first_name", "last_name", "national_id", "mobile_number", "email", "area_id").
		Values(sub.FirstName, sub.LastName, sub.NationalID, sub.MobileNumber, sub.Email, sub.AreaID).
		Suffix("returning id").
		ToSql()
	if err != nil {
		return model.Subscriber{}, err
	}
	if err := r.q.GetContext(ctx, &sub.ID, query, args...); err != nil {
		return model.Subscriber{}, uniqueViolation(storage(err), errs.ErrDuplicateSubscriber)
	}
	return sub, nil
}

func (r *repository) UpdateSubscriber(ctx context.Context, sub model.Subscriber) error {
	query, args, err := qb.Update(subscribersTableName).
		Set("first_name", sub.FirstName).
		Set("last_name", sub.LastName).
		Set("national_id", sub.NationalID).
		Set("mobile_number", sub.MobileNumber).
		Set("email", sub.Email).
		Set("area_id", sub.AreaID).
		Where(sq.Eq{"id": sub.ID, "is_deleted": false}).
		ToSql()
	if err != nil {
		return err
	}
	res, err := r.q.ExecContext(ctx, query, args...)
	if err != nil {
		return uniqueViolation(storage(err), errs.ErrDuplicateSubscriber)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return errs.ErrSubscriberNotFound
	}
	return nil
}

func (r *repository) GetSubscriber(ctx context.Context, id int) (model.Subscriber, error) {
	return r.SubscriberForRental(ctx, id)
}

func (r *repository) ListSubscribers(ctx context.Context, page, size int) ([]model.Subscriber, model.Paging, error) {
	var total int
	if err := r.q.GetContext(ctx, &total,
		"select count(*) from subscribers where not is_deleted"); err != nil {
		return nil, model.Paging{}, storage(err)
	}

	q := qb.Select("id", "first_name", "last_name", "national_id", "mobile_number", "email",
		"area_id", "is_blacklisted", "is_deleted").
		From(subscribersTableName).
		Where(sq.Eq{"is_deleted": false}).
		OrderBy("last_name", "first_name")
	if page != 0 && size != 0 {
		q = q.Limit(uint64(size)).Offset(uint64((page - 1) * size))
	}
	query, args, err := q.ToSql()
	if err != nil {
		return nil, model.Paging{}, err
	}
	var subs []model.Subscriber
	if err := r.q.SelectContext(ctx, &subs, query, args...); err != nil {
		return nil, model.Paging{}, storage(err)
	}
	return subs, paging(page, size, total), nil
}

func (r *repository) ToggleBlacklist(ctx context.Context, id int) (bool, error) {
	q := `
	update subscribers set is_blacklisted = not is_blacklisted
	where id = $1 and not is_deleted
	returning is_blacklisted`
	var blacklisted bool
	if err := r.q.GetContext(ctx, &blacklisted, q, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return false, errs.ErrSubscriberNotFound
		}
		return false, storage(err)
	}
	return blacklisted, nil
}

func (r *repository) ToggleSubscriberDeleted(ctx context.Context, id int) error {
	res, err := r.q.ExecContext(ctx,
		"update subscribers set is_deleted = not is_deleted where id = $1", id)
	if err != nil {
		return storage(err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return errs.ErrSubscriberNotFound
	}
	return nil
}

func (r *repository) AddSubscription(ctx context.Context, sub model.Subscription) (model.Subscription, error) {
	query, args, err := qb.Insert(subscriptionsTableName).
		Columns("subscriber_id", "start_date", "end_date").
		Values(sub.SubscriberID, sub.StartDate, sub.EndDate).
		Suffix("returning id").
		ToSql()
	if err != nil {
		return model.Subscription{}, err
	}
	if err := r.q.GetContext(ctx, &sub.ID, query, args...); err != nil {
		return model.Subscription{}, storage(err)
	}
	return sub, nil
}

func paging(page, size, total int) model.Paging {
	p := model.Paging{Page: page, PageSize: size, TotalElements: total}
	if size > 0 {
		p.TotalPages = (total + size - 1) / size
	}
	return p
}

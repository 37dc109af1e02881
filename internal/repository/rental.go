package repository

import (
	"context"
	"database/sql"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/bookden/rental-service/internal/errs"
	"github.com/bookden/rental-service/internal/model"
)

// Rentals is everything the rental lifecycle needs from storage.
// Inside InTx the same methods run on the transaction, and
// SubscriberForRental additionally locks the subscriber row so two
// concurrent rentals for one subscriber serialize.
type Rentals interface {
	InTx(ctx context.Context, fn func(Rentals) error) error
	SubscriberForRental(ctx context.Context, subscriberID int) (model.Subscriber, error)
	Copy(ctx context.Context, copyID int) (model.BookCopy, error)
	CreateRental(ctx context.Context, subscriberID, copyID int, start, due time.Time) (model.Rental, error)
	RentalCopy(ctx context.Context, rentalID, copyID int) (model.RentalCopy, error)
	SetReturned(ctx context.Context, rentalID, copyID int, on time.Time) error
	SetExtended(ctx context.Context, rentalID, copyID int, on, newDue time.Time) error
	HasUnpaidPenalty(ctx context.Context, subscriberID int) (bool, error)
	Delayed(ctx context.Context, today time.Time) ([]model.RentalCopy, error)
	BySubscriber(ctx context.Context, subscriberID int) ([]model.Rental, error)
	CancelRental(ctx context.Context, rentalID int) error
}

func (r *repository) SubscriberForRental(ctx context.Context, subscriberID int) (model.Subscriber, error) {
	q := qb.Select("id", "first_name", "last_name", "national_id", "mobile_number", "email",
		"area_id", "is_blacklisted", "is_deleted").
		From(subscribersTableName).
		Where(sq.Eq{"id": subscriberID, "is_deleted": false})
	if r.inTx {
		q = q.Suffix("for update")
	}
	query, args, err := q.ToSql()
	if err != nil {
		return model.Subscriber{}, err
	}

	var sub model.Subscriber
	if err := r.q.GetContext(ctx, &sub, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Subscriber{}, errs.ErrSubscriberNotFound
		}
		return model.Subscriber{}, storage(err)
	}

	query, args, err = qb.Select("id", "subscriber_id", "start_date", "end_date").
		From(subscriptionsTableName).
		Where(sq.Eq{"subscriber_id": subscriberID}).
		OrderBy("end_date").
		ToSql()
	if err != nil {
		return model.Subscriber{}, err
	}
	if err := r.q.SelectContext(ctx, &sub.Subscriptions, query, args...); err != nil {
		return model.Subscriber{}, storage(err)
	}

	rentals, err := r.BySubscriber(ctx, subscriberID)
	if err != nil {
		return model.Subscriber{}, err
	}
	sub.Rentals = rentals
	return sub, nil
}

func (r *repository) Copy(ctx context.Context, copyID int) (model.BookCopy, error) {
	query, args, err := qb.Select("c.id", "c.book_id", "c.serial_number",
		"c.is_available_for_rental", "c.is_deleted",
		"b.title as book_title",
		"b.is_available_for_rental as book_is_available",
		"b.is_deleted as book_is_deleted").
		From(bookCopiesTableName + " c").
		Join(booksTableName + " b on b.id = c.book_id").
		Where(sq.Eq{"c.id": copyID}).
		ToSql()
	if err != nil {
		return model.BookCopy{}, err
	}
	var copy model.BookCopy
	if err := r.q.GetContext(ctx, &copy, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.BookCopy{}, errs.ErrCopyNotFound
		}
		return model.BookCopy{}, storage(err)
	}
	return copy, nil
}

// CreateRental inserts a new rental with a single copy. The partial
// unique index on outstanding rental_copies backs the no-double-rent
// rule even if two transactions race past the checks.
func (r *repository) CreateRental(ctx context.Context, subscriberID, copyID int, start, due time.Time) (model.Rental, error) {
	query, args, err := qb.Insert(rentalsTableName).
		Columns("subscriber_id", "start_date").
		Values(subscriberID, start.Format(time.DateOnly)).
		Suffix("returning id, subscriber_id, start_date, is_deleted").
		ToSql()
	if err != nil {
		return model.Rental{}, err
	}
	var rental model.Rental
	if err := r.q.GetContext(ctx, &rental, query, args...); err != nil {
		return model.Rental{}, storage(err)
	}

	query, args, err = qb.Insert(rentalCopiesTableName).
		Columns("rental_id", "book_copy_id", "rental_date", "end_date").
		Values(rental.ID, copyID, start.Format(time.DateOnly), due.Format(time.DateOnly)).
		Suffix("returning rental_id, book_copy_id, rental_date, end_date, return_date, extended_on").
		ToSql()
	if err != nil {
		return model.Rental{}, err
	}
	var rc model.RentalCopy
	if err := r.q.GetContext(ctx, &rc, query, args...); err != nil {
		r.log.Error("CreateRental", zap.String("q", query), zap.Any("args", args))
		return model.Rental{}, uniqueViolation(storage(err), errs.ErrBookAlreadyRented)
	}
	rental.Copies = []model.RentalCopy{rc}
	return rental, nil
}

func (r *repository) RentalCopy(ctx context.Context, rentalID, copyID int) (model.RentalCopy, error) {
	query, args, err := qb.Select("rc.rental_id", "rc.book_copy_id", "rc.rental_date",
		"rc.end_date", "rc.return_date", "rc.extended_on",
		"r.subscriber_id").
		From(rentalCopiesTableName + " rc").
		Join(rentalsTableName + " r on r.id = rc.rental_id").
		Where(sq.Eq{"rc.rental_id": rentalID, "rc.book_copy_id": copyID, "r.is_deleted": false}).
		ToSql()
	if err != nil {
		return model.RentalCopy{}, err
	}
	var rc model.RentalCopy
	if err := r.q.GetContext(ctx, &rc, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.RentalCopy{}, errs.ErrRentalNotFound
		}
		return model.RentalCopy{}, storage(err)
	}
	return rc, nil
}

func (r *repository) SetReturned(ctx context.Context, rentalID, copyID int, on time.Time) error {
	query, args, err := qb.Update(rentalCopiesTableName).
		Set("return_date", on.Format(time.DateOnly)).
		Where(sq.Eq{"rental_id": rentalID, "book_copy_id": copyID}).
		Where("return_date is null").
		ToSql()
	if err != nil {
		return err
	}
	res, err := r.q.ExecContext(ctx, query, args...)
	if err != nil {
		return storage(err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return errs.ErrAlreadyReturned
	}
	return nil
}

func (r *repository) SetExtended(ctx context.Context, rentalID, copyID int, on, newDue time.Time) error {
	query, args, err := qb.Update(rentalCopiesTableName).
		Set("extended_on", on.Format(time.DateOnly)).
		Set("end_date", newDue.Format(time.DateOnly)).
		Where(sq.Eq{"rental_id": rentalID, "book_copy_id": copyID}).
		Where("return_date is null").
		Where("extended_on is null").
		ToSql()
	if err != nil {
		return err
	}
	res, err := r.q.ExecContext(ctx, query, args...)
	if err != nil {
		return storage(err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return errs.ErrExtendNotAllowed
	}
	return nil
}

// HasUnpaidPenalty is true when the subscriber returned a copy late
// and the late fee is still unsettled.
func (r *repository) HasUnpaidPenalty(ctx context.Context, subscriberID int) (bool, error) {
	q := `
	select exists (
		select 1 from rental_copies rc
		join rentals r on r.id = rc.rental_id
		where r.subscriber_id = $1
		  and not r.is_deleted
		  and rc.return_date is not null
		  and rc.return_date > rc.end_date
		  and not rc.penalty_paid
	)`
	var has bool
	if err := r.q.GetContext(ctx, &has, q, subscriberID); err != nil {
		return false, storage(err)
	}
	return has, nil
}

func (r *repository) Delayed(ctx context.Context, today time.Time) ([]model.RentalCopy, error) {
	query, args, err := qb.Select("rc.rental_id", "rc.book_copy_id", "rc.rental_date",
		"rc.end_date", "rc.return_date", "rc.extended_on",
		"r.subscriber_id", "b.title as book_title", "c.serial_number").
		From(rentalCopiesTableName + " rc").
		Join(rentalsTableName + " r on r.id = rc.rental_id").
		Join(bookCopiesTableName + " c on c.id = rc.book_copy_id").
		Join(booksTableName + " b on b.id = c.book_id").
		Where("rc.return_date is null").
		Where(sq.Lt{"rc.end_date": today.Format(time.DateOnly)}).
		Where(sq.Eq{"r.is_deleted": false}).
		OrderBy("rc.end_date").
		ToSql()
	if err != nil {
		return nil, err
	}
	var items []model.RentalCopy
	if err := r.q.SelectContext(ctx, &items, query, args...); err != nil {
		return nil, storage(err)
	}
	return items, nil
}

func (r *repository) BySubscriber(ctx context.Context, subscriberID int) ([]model.Rental, error) {
	query, args, err := qb.Select("id", "subscriber_id", "start_date", "is_deleted").
		From(rentalsTableName).
		Where(sq.Eq{"subscriber_id": subscriberID, "is_deleted": false}).
		OrderBy("start_date desc", "id desc").
		ToSql()
	if err != nil {
		return nil, err
	}
	var rentals []model.Rental
	if err := r.q.SelectContext(ctx, &rentals, query, args...); err != nil {
		return nil, storage(err)
	}
	if len(rentals) == 0 {
		return rentals, nil
	}

	ids := make([]int, 0, len(rentals))
	for _, rental := range rentals {
		ids = append(ids, rental.ID)
	}
	query, args, err = qb.Select("rc.rental_id", "rc.book_copy_id", "rc.rental_date",
		"rc.end_date", "rc.return_date", "rc.extended_on",
		"b.title as book_title", "c.serial_number").
		From(rentalCopiesTableName + " rc").
		Join(bookCopiesTableName + " c on c.id = rc.book_copy_id").
		Join(booksTableName + " b on b.id = c.book_id").
		Where(sq.Eq{"rc.rental_id": ids}).
		ToSql()
	if err != nil {
		return nil, err
	}
	var copies []model.RentalCopy
	if err := r.q.SelectContext(ctx, &copies, query, args...); err != nil {
		return nil, storage(err)
	}
	byRental := make(map[int][]model.RentalCopy, len(rentals))
	for _, rc := range copies {
		byRental[rc.RentalID] = append(byRental[rc.RentalID], rc)
	}
	for i := range rentals {
		rentals[i].Copies = byRental[rentals[i].ID]
	}
	return rentals, nil
}

// CancelRental soft-deletes a rental while its copies are still out;
// cancelled rentals drop out of every default query.
func (r *repository) CancelRental(ctx context.Context, rentalID int) error {
	q := `
	update rentals set is_deleted = true
	where id = $1 and not is_deleted
	  and not exists (
		select 1 from rental_copies
		where rental_id = $1 and return_date is not null
	  )`
	res, err := r.q.ExecContext(ctx, q, rentalID)
	if err != nil {
		return storage(err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return errs.ErrRentalNotFound
	}
	return nil
}

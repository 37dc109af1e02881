package repository

import (
	"context"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/bookden/rental-service/internal/model"
)

// BookFilter narrows the books report; empty slices mean no
// restriction on that dimension. Filters combine with AND.
type BookFilter struct {
	AuthorIDs   []int
	CategoryIDs []int
}

type Reports interface {
	BooksPage(ctx context.Context, filter BookFilter, page, size int) ([]model.Book, model.Paging, error)
	RentalsPage(ctx context.Context, from, to time.Time, page, size int) ([]model.RentalCopy, model.Paging, error)
}

func (r *repository) BooksPage(ctx context.Context, filter BookFilter, page, size int) ([]model.Book, model.Paging, error) {
	base := qb.Select().
		From(booksTableName + " b").
		Join(authorsTableName + " a on a.id = b.author_id").
		Where(sq.Eq{"b.is_deleted": false})
	if len(filter.AuthorIDs) > 0 {
		base = base.Where(sq.Eq{"b.author_id": filter.AuthorIDs})
	}
	if len(filter.CategoryIDs) > 0 {
		// nested builder keeps question placeholders; the outer
		// dollar rewrite runs over the combined statement
		sub := sq.Select("book_id").From(bookCategoriesTableName).
			Where(sq.Eq{"category_id": filter.CategoryIDs})
		base = base.Where(sq.Expr("b.id in (?)", sub))
	}

	query, args, err := base.Columns("count(*)").ToSql()
	if err != nil {
		return nil, model.Paging{}, err
	}
	var total int
	if err := r.q.GetContext(ctx, &total, query, args...); err != nil {
		return nil, model.Paging{}, storage(err)
	}

	q := base.Columns("b.id", "b.title", "b.author_id", "a.name as author_name",
		"b.publisher", "b.publish_date", "b.is_available_for_rental", "b.is_deleted").
		OrderBy("b.title", "b.id")
	if page != 0 && size != 0 {
		q = q.Limit(uint64(size)).Offset(uint64((page - 1) * size))
	}
	query, args, err = q.ToSql()
	if err != nil {
		return nil, model.Paging{}, err
	}
	var books []model.Book
	if err := r.q.SelectContext(ctx, &books, query, args...); err != nil {
		return nil, model.Paging{}, storage(err)
	}
	return books, paging(page, size, total), nil
}

// RentalsPage lists rental copies whose rental date falls inside the
// inclusive [from, to] range.
func (r *repository) RentalsPage(ctx context.Context, from, to time.Time, page, size int) ([]model.RentalCopy, model.Paging, error) {
	base := qb.Select().
		From(rentalCopiesTableName + " rc").
		Join(rentalsTableName + " r on r.id = rc.rental_id").
		Join(bookCopiesTableName + " c on c.id = rc.book_copy_id").
		Join(booksTableName + " b on b.id = c.book_id").
		Where(sq.Eq{"r.is_deleted": false}).
		Where(sq.GtOrEq{"rc.rental_date": from.Format(time.DateOnly)}).
		Where(sq.LtOrEq{"rc.rental_date": to.Format(time.DateOnly)})

	query, args, err := base.Columns("count(*)").ToSql()
	if err != nil {
		return nil, model.Paging{}, err
	}
	var total int
	if err := r.q.GetContext(ctx, &total, query, args...); err != nil {
		return nil, model.Paging{}, storage(err)
	}

	q := base.Columns("rc.rental_id", "rc.book_copy_id", "rc.rental_date",
		"rc.end_date", "rc.return_date", "rc.extended_on",
		"r.subscriber_id", "b.title as book_title", "c.serial_number").
		OrderBy("rc.rental_date desc", "rc.rental_id desc")
	if page != 0 && size != 0 {
		q = q.Limit(uint64(size)).Offset(uint64((page - 1) * size))
	}
	query, args, err = q.ToSql()
	if err != nil {
		return nil, model.Paging{}, err
	}
	var items []model.RentalCopy
	if err := r.q.SelectContext(ctx, &items, query, args...); err != nil {
		return nil, model.Paging{}, storage(err)
	}
	return items, paging(page, size, total), nil
}

package repository

import (
	"context"
	"database/sql"

	sq "github.com/Masterminds/squirrel"
	"github.com/pkg/errors"

	"github.com/bookden/rental-service/internal/errs"
	"github.com/bookden/rental-service/internal/model"
)

// Catalog covers book/copy management and the lookup entities.
type Catalog interface {
	CreateBook(ctx context.Context, book model.Book) (model.Book, error)
	UpdateBook(ctx context.Context, book model.Book) error
	GetBook(ctx context.Context, id int) (model.Book, error)
	SearchBooks(ctx context.Context, term string) ([]model.Book, error)
	ToggleBookAvailability(ctx context.Context, id int) error
	ToggleBookDeleted(ctx context.Context, id int) error
	AddCopy(ctx context.Context, bookID int) (model.BookCopy, error)
	ToggleCopyAvailability(ctx context.Context, copyID int) error
	ToggleCopyDeleted(ctx context.Context, copyID int) error

	CreateAuthor(ctx context.Context, name string) (model.Author, error)
	ListAuthors(ctx context.Context) ([]model.Author, error)
	CreateCategory(ctx context.Context, name string) (model.Category, error)
	ListCategories(ctx context.Context) ([]model.Category, error)
	ListGovernorates(ctx context.Context) ([]model.Governorate, error)
	ListAreas(ctx context.Context, governorateID int) ([]model.Area, error)
}

func (r *repository) CreateBook(ctx context.Context, book model.Book) (model.Book, error) {
	query, args, err := qb.Insert(booksTableName).
		Columns("title", "author_id", "publisher", "publish_date", "is_available_for_rental").
		Values(book.Title, book.AuthorID, book.Publisher, book.PublishDate, book.IsAvailableForRental).
		Suffix("returning id").
		ToSql()
	if err != nil {
		return model.Book{}, err
	}
	if err := r.q.GetContext(ctx, &book.ID, query, args...); err != nil {
		return model.Book{}, uniqueViolation(storage(err), errs.ErrDuplicateBook)
	}
	if err := r.replaceCategories(ctx, book.ID, book.CategoryIDs); err != nil {
		return model.Book{}, err
	}
	return book, nil
}

func (r *repository) UpdateBook(ctx context.Context, book model.Book) error {
	query, args, err := qb.Update(booksTableName).
		Set("title", book.Title).
		Set("author_id", book.AuthorID).
		Set("publisher", book.Publisher).
		Set("publish_date", book.PublishDate).
		Set("is_available_for_rental", book.IsAvailableForRental).
		Where(sq.Eq{"id": book.ID, "is_deleted": false}).
		ToSql()
	if err != nil {
		return err
	}
	res, err := r.q.ExecContext(ctx, query, args...)
	if err != nil {
		return uniqueViolation(storage(err), errs.ErrDuplicateBook)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return errs.ErrBookNotFound
	}
	return r.replaceCategories(ctx, book.ID, book.CategoryIDs)
}

func (r *repository) replaceCategories(ctx context.Context, bookID int, categoryIDs []int) error {
	if _, err := r.q.ExecContext(ctx,
		"delete from book_categories where book_id = $1", bookID); err != nil {
		return storage(err)
	}
	if len(categoryIDs) == 0 {
		return nil
	}
	ins := qb.Insert(bookCategoriesTableName).Columns("book_id", "category_id")
	for _, cid := range categoryIDs {
		ins = ins.Values(bookID, cid)
	}
	query, args, err := ins.ToSql()
	if err != nil {
		return err
	}
	if _, err := r.q.ExecContext(ctx, query, args...); err != nil {
		return storage(err)
	}
	return nil
}

func (r *repository) GetBook(ctx context.Context, id int) (model.Book, error) {
	query, args, err := qb.Select("b.id", "b.title", "b.author_id", "a.name as author_name",
		"b.publisher", "b.publish_date", "b.is_available_for_rental", "b.is_deleted").
		From(booksTableName + " b").
		Join(authorsTableName + " a on a.id = b.author_id").
		Where(sq.Eq{"b.id": id, "b.is_deleted": false}).
		ToSql()
	if err != nil {
		return model.Book{}, err
	}
	var book model.Book
	if err := r.q.GetContext(ctx, &book, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Book{}, errs.ErrBookNotFound
		}
		return model.Book{}, storage(err)
	}
	if err := r.q.SelectContext(ctx, &book.CategoryIDs,
		"select category_id from book_categories where book_id = $1", id); err != nil {
		return model.Book{}, storage(err)
	}
	return book, nil
}

// SearchBooks matches the term against titles and author names,
// case-insensitively, non-deleted rows only.
func (r *repository) SearchBooks(ctx context.Context, term string) ([]model.Book, error) {
	query, args, err := qb.Select("b.id", "b.title", "b.author_id", "a.name as author_name",
		"b.publisher", "b.publish_date", "b.is_available_for_rental", "b.is_deleted").
		From(booksTableName + " b").
		Join(authorsTableName + " a on a.id = b.author_id").
		Where(sq.Eq{"b.is_deleted": false}).
		Where(sq.Or{
			sq.ILike{"b.title": "%" + term + "%"},
			sq.ILike{"a.name": "%" + term + "%"},
		}).
		OrderBy("b.title").
		Limit(50).
		ToSql()
	if err != nil {
		return nil, err
	}
	var items []model.Book
	if err := r.q.SelectContext(ctx, &items, query, args...); err != nil {
		return nil, storage(err)
	}
	return items, nil
}

func (r *repository) ToggleBookAvailability(ctx context.Context, id int) error {
	return r.toggle(ctx, booksTableName, "is_available_for_rental", id, errs.ErrBookNotFound)
}

func (r *repository) ToggleBookDeleted(ctx context.Context, id int) error {
	return r.toggle(ctx, booksTableName, "is_deleted", id, errs.ErrBookNotFound)
}

// AddCopy assigns the next serial from a monotone sequence shared by
// every copy in the library.
func (r *repository) AddCopy(ctx context.Context, bookID int) (model.BookCopy, error) {
	q := `
	insert into book_copies (book_id, serial_number)
	values ($1, nextval('copy_serial_seq'))
	returning id, book_id, serial_number, is_available_for_rental, is_deleted`
	var copy model.BookCopy
	if err := r.q.GetContext(ctx, &copy, q, bookID); err != nil {
		return model.BookCopy{}, storage(err)
	}
	return copy, nil
}

func (r *repository) ToggleCopyAvailability(ctx context.Context, copyID int) error {
	return r.toggle(ctx, bookCopiesTableName, "is_available_for_rental", copyID, errs.ErrCopyNotFound)
}

func (r *repository) ToggleCopyDeleted(ctx context.Context, copyID int) error {
	return r.toggle(ctx, bookCopiesTableName, "is_deleted", copyID, errs.ErrCopyNotFound)
}

func (r *repository) toggle(ctx context.Context, table, column string, id int, notFound error) error {
	query, args, err := qb.Update(table).
		Set(column, sq.Expr("not "+column)).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return err
	}
	res, err := r.q.ExecContext(ctx, query, args...)
	if err != nil {
		return storage(err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return notFound
	}
	return nil
}

func (r *repository) CreateAuthor(ctx context.Context, name string) (model.Author, error) {
	author := model.Author{Name: name}
	if err := r.q.GetContext(ctx, &author.ID,
		"insert into authors (name) values ($1) returning id", name); err != nil {
		return model.Author{}, uniqueViolation(storage(err), errs.ErrDuplicateName)
	}
	return author, nil
}

func (r *repository) ListAuthors(ctx context.Context) ([]model.Author, error) {
	var items []model.Author
	if err := r.q.SelectContext(ctx, &items,
		"select id, name, is_deleted from authors where not is_deleted order by name"); err != nil {
		return nil, storage(err)
	}
	return items, nil
}

func (r *repository) CreateCategory(ctx context.Context, name string) (model.Category, error) {
	category := model.Category{Name: name}
	if err := r.q.GetContext(ctx, &category.ID,
		"insert into categories (name) values ($1) returning id", name); err != nil {
		return model.Category{}, uniqueViolation(storage(err), errs.ErrDuplicateName)
	}
	return category, nil
}

func (r *repository) ListCategories(ctx context.Context) ([]model.Category, error) {
	var items []model.Category
	if err := r.q.SelectContext(ctx, &items,
		"select id, name, is_deleted from categories where not is_deleted order by name"); err != nil {
		return nil, storage(err)
	}
	return items, nil
}

func (r *repository) ListGovernorates(ctx context.Context) ([]model.Governorate, error) {
	var items []model.Governorate
	if err := r.q.SelectContext(ctx, &items,
		"select id, name from governorates order by name"); err != nil {
		return nil, storage(err)
	}
	return items, nil
}

func (r *repository) ListAreas(ctx context.Context, governorateID int) ([]model.Area, error) {
	var items []model.Area
	if err := r.q.SelectContext(ctx, &items,
		"select id, governorate_id, name from areas where governorate_id = $1 order by name",
		governorateID); err != nil {
		return nil, storage(err)
	}
	return items, nil
}

package repository

import (
	"context"
	"database/sql"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/bookden/rental-service/internal/errs"
)

const (
	subscribersTableName    = `subscribers`
	subscriptionsTableName  = `subscriptions`
	booksTableName          = `books`
	bookCopiesTableName     = `book_copies`
	bookCategoriesTableName = `book_categories`
	rentalsTableName        = `rentals`
	rentalCopiesTableName   = `rental_copies`
	authorsTableName        = `authors`
	categoriesTableName     = `categories`
	governoratesTableName   = `governorates`
	areasTableName          = `areas`
)

//go:generate mockgen -destination=mocks/mock.go -package=repo_mocks github.com/bookden/rental-service/internal/repository Rentals,Reports,Renewals,Subscribers

var qb = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// querier is what every query runs against: the pool outside a
// transaction, the tx inside one.
type querier interface {
	sqlx.QueryerContext
	sqlx.ExecerContext
	GetContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
	SelectContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
}

type repository struct {
	db   *sqlx.DB
	q    querier
	inTx bool
	log  *zap.Logger
}

func NewRepository(db *sqlx.DB, log *zap.Logger) (*repository, error) {
	return &repository{
		db:  db,
		q:   db,
		log: log.Named("repo"),
	}, nil
}

// InTx runs fn against a tx-bound copy of the repository. The rental
// check-then-act sequence relies on this plus a FOR UPDATE lock on the
// subscriber row to serialize concurrent requests per subscriber.
func (r *repository) InTx(ctx context.Context, fn func(Rentals) error) error {
	tx, err := r.db.BeginTxx(ctx, &sql.TxOptions{Isolation: sql.LevelReadCommitted})
	if err != nil {
		return errs.Storage(err)
	}
	txRepo := &repository{db: r.db, q: tx, inTx: true, log: r.log}
	if err := fn(txRepo); err != nil {
		_ = tx.Rollback()
		return err
	}
	if err := tx.Commit(); err != nil {
		return errs.Storage(err)
	}
	return nil
}

// Retryable reports whether the atomic section may be retried once.
func Retryable(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}
	return pgErr.Code == pgerrcode.SerializationFailure ||
		pgErr.Code == pgerrcode.DeadlockDetected
}

// uniqueViolation maps a constraint conflict to its typed business
// error, or passes the original through.
func uniqueViolation(err error, mapped error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
		return mapped
	}
	return err
}

func storage(err error) error {
	return errs.Storage(err)
}

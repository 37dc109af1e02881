package handler

import (
	"context"

	"github.com/bookden/rental-service/internal/model"
	"github.com/bookden/rental-service/internal/repository"
	"github.com/bookden/rental-service/internal/service/report"
)

//go:generate mockgen -source=service.go -destination=mocks/mock.go -package=service_mocks

type RentalService interface {
	CreateRental(ctx context.Context, subscriberID, copyID int) (model.Rental, error)
	ExtendRental(ctx context.Context, rentalID, copyID int) (model.RentalCopy, error)
	ReturnCopy(ctx context.Context, rentalID, copyID int) (model.RentalCopy, error)
	CancelRental(ctx context.Context, rentalID int) error
	DelayedRentals(ctx context.Context) ([]model.RentalCopy, error)
	RentalsForSubscriber(ctx context.Context, subscriberID int) ([]model.Rental, error)
	CheckEligibility(ctx context.Context, subscriberID int) error
}

type ReportService interface {
	Books(ctx context.Context, filter repository.BookFilter, page int) (report.BooksPage, error)
	Rentals(ctx context.Context, from, to string, page int) (report.RentalsPage, error)
}

type RenewalService interface {
	ExpiringWithin(ctx context.Context, days int) ([]repository.ExpiringSubscription, error)
}

type SubscriberService interface {
	Create(ctx context.Context, sub model.Subscriber) (model.Subscriber, error)
	Update(ctx context.Context, sub model.Subscriber) error
	Get(ctx context.Context, id int) (model.Subscriber, error)
	List(ctx context.Context, page, size int) ([]model.Subscriber, model.Paging, error)
	ToggleBlacklist(ctx context.Context, id int) (bool, error)
	ToggleDeleted(ctx context.Context, id int) error
	AddSubscription(ctx context.Context, sub model.Subscription) (model.Subscription, error)
}

type CatalogService interface {
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

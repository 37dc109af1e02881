package catalog

import (
	"context"

	"go.uber.org/zap"

	"github.com/bookden/rental-service/internal/model"
	"github.com/bookden/rental-service/internal/repository"
)

type Service struct {
	log  *zap.Logger
	repo repository.Catalog
}

func NewService(repo repository.Catalog, log *zap.Logger) *Service {
	return &Service{
		log:  log,
		repo: repo,
	}
}

func (s *Service) CreateBook(ctx context.Context, book model.Book) (model.Book, error) {
	return s.repo.CreateBook(ctx, book)
}

func (s *Service) UpdateBook(ctx context.Context, book model.Book) error {
	return s.repo.UpdateBook(ctx, book)
}

func (s *Service) GetBook(ctx context.Context, id int) (model.Book, error) {
	return s.repo.GetBook(ctx, id)
}

func (s *Service) SearchBooks(ctx context.Context, term string) ([]model.Book, error) {
	return s.repo.SearchBooks(ctx, term)
}

func (s *Service) ToggleBookAvailability(ctx context.Context, id int) error {
	return s.repo.ToggleBookAvailability(ctx, id)
}

func (s *Service) ToggleBookDeleted(ctx context.Context, id int) error {
	return s.repo.ToggleBookDeleted(ctx, id)
}

func (s *Service) AddCopy(ctx context.Context, bookID int) (model.BookCopy, error) {
	return s.repo.AddCopy(ctx, bookID)
}

func (s *Service) ToggleCopyAvailability(ctx context.Context, copyID int) error {
	return s.repo.ToggleCopyAvailability(ctx, copyID)
}

func (s *Service) ToggleCopyDeleted(ctx context.Context, copyID int) error {
	return s.repo.ToggleCopyDeleted(ctx, copyID)
}

func (s *Service) CreateAuthor(ctx context.Context, name string) (model.Author, error) {
	return s.repo.CreateAuthor(ctx, name)
}

func (s *Service) ListAuthors(ctx context.Context) ([]model.Author, error) {
	return s.repo.ListAuthors(ctx)
}

func (s *Service) CreateCategory(ctx context.Context, name string) (model.Category, error) {
	return s.repo.CreateCategory(ctx, name)
}

func (s *Service) ListCategories(ctx context.Context) ([]model.Category, error) {
	return s.repo.ListCategories(ctx)
}

func (s *Service) ListGovernorates(ctx context.Context) ([]model.Governorate, error) {
	return s.repo.ListGovernorates(ctx)
}

func (s *Service) ListAreas(ctx context.Context, governorateID int) ([]model.Area, error) {
	return s.repo.ListAreas(ctx, governorateID)
}

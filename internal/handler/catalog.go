package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/bookden/rental-service/internal/model"
)

type bookRequest struct {
	Title        string   `json:"title" validate:"required"`
	AuthorKey    string   `json:"authorKey" validate:"required"`
	Publisher    string   `json:"publisher" validate:"required"`
	PublishDate  string   `json:"publishDate" validate:"required,datetime=2006-01-02"`
	IsAvailable  bool     `json:"isAvailableForRental"`
	CategoryKeys []string `json:"categoryKeys"`
}

func (h *Handler) bookFromRequest(req bookRequest) (model.Book, error) {
	authorID, err := h.decodeKey(req.AuthorKey)
	if err != nil {
		return model.Book{}, err
	}
	categoryIDs := make([]int, 0, len(req.CategoryKeys))
	for _, key := range req.CategoryKeys {
		id, err := h.decodeKey(key)
		if err != nil {
			return model.Book{}, err
		}
		categoryIDs = append(categoryIDs, id)
	}
	publishDate, _ := time.Parse(time.DateOnly, req.PublishDate)
	return model.Book{
		Title:                req.Title,
		AuthorID:             authorID,
		Publisher:            req.Publisher,
		PublishDate:          publishDate,
		IsAvailableForRental: req.IsAvailable,
		CategoryIDs:          categoryIDs,
	}, nil
}

func (h *Handler) CreateBook(c echo.Context) error {
	var req bookRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(req); err != nil {
		return err
	}
	book, err := h.bookFromRequest(req)
	if err != nil {
		return err
	}
	book, err = h.catalogSvc.CreateBook(c.Request().Context(), book)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusCreated, h.bookWithKeys(book))
}

func (h *Handler) UpdateBook(c echo.Context) error {
	id, err := h.keyParam(c, "bookKey")
	if err != nil {
		return err
	}
	var req bookRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(req); err != nil {
		return err
	}
	book, err := h.bookFromRequest(req)
	if err != nil {
		return err
	}
	book.ID = id
	if err := h.catalogSvc.UpdateBook(c.Request().Context(), book); err != nil {
		return httpError(err)
	}
	return c.NoContent(http.StatusOK)
}

// GetBook godoc
//
//	@Summary	Book details by encoded id
//	@Tags		books
//	@Produce	json
//	@Param		bookKey	path		string	true	"encoded book id"
//	@Success	200		{object}	model.Book
//	@Failure	404		{object}	echo.HTTPError
//	@Router		/api/v1/books/{bookKey} [get]
func (h *Handler) GetBook(c echo.Context) error {
	id, err := h.keyParam(c, "bookKey")
	if err != nil {
		return err
	}
	book, err := h.catalogSvc.GetBook(c.Request().Context(), id)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, h.bookWithKeys(book))
}

// SearchBooks godoc
//
//	@Summary	Search books by title or author name
//	@Tags		books
//	@Produce	json
//	@Param		q	query		string	true	"search term"
//	@Success	200	{array}		model.Book
//	@Failure	400	{object}	echo.HTTPError
//	@Router		/api/v1/books/search [get]
func (h *Handler) SearchBooks(c echo.Context) error {
	term := c.QueryParam("q")
	if term == "" {
		return echo.NewHTTPError(http.StatusBadRequest, errors.New("q is required"))
	}
	books, err := h.catalogSvc.SearchBooks(c.Request().Context(), term)
	if err != nil {
		return httpError(err)
	}
	out := make([]model.Book, 0, len(books))
	for _, book := range books {
		out = append(out, h.bookWithKeys(book))
	}
	return c.JSON(http.StatusOK, out)
}

func (h *Handler) ToggleBookAvailability(c echo.Context) error {
	return h.toggleByKey(c, "bookKey", h.catalogSvc.ToggleBookAvailability)
}

func (h *Handler) ToggleBookDeleted(c echo.Context) error {
	return h.toggleByKey(c, "bookKey", h.catalogSvc.ToggleBookDeleted)
}

func (h *Handler) AddCopy(c echo.Context) error {
	bookID, err := h.keyParam(c, "bookKey")
	if err != nil {
		return err
	}
	copy, err := h.catalogSvc.AddCopy(c.Request().Context(), bookID)
	if err != nil {
		return httpError(err)
	}
	copy.Key = h.codec.Encode(copy.ID)
	return c.JSON(http.StatusCreated, copy)
}

func (h *Handler) ToggleCopyAvailability(c echo.Context) error {
	return h.toggleByKey(c, "copyKey", h.catalogSvc.ToggleCopyAvailability)
}

func (h *Handler) ToggleCopyDeleted(c echo.Context) error {
	return h.toggleByKey(c, "copyKey", h.catalogSvc.ToggleCopyDeleted)
}

type nameRequest struct {
	Name string `json:"name" validate:"required"`
}

func (h *Handler) CreateAuthor(c echo.Context) error {
	var req nameRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(req); err != nil {
		return err
	}
	author, err := h.catalogSvc.CreateAuthor(c.Request().Context(), req.Name)
	if err != nil {
		return httpError(err)
	}
	author.Key = h.codec.Encode(author.ID)
	return c.JSON(http.StatusCreated, author)
}

func (h *Handler) ListAuthors(c echo.Context) error {
	authors, err := h.catalogSvc.ListAuthors(c.Request().Context())
	if err != nil {
		return httpError(err)
	}
	for i := range authors {
		authors[i].Key = h.codec.Encode(authors[i].ID)
	}
	return c.JSON(http.StatusOK, authors)
}

func (h *Handler) CreateCategory(c echo.Context) error {
	var req nameRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(req); err != nil {
		return err
	}
	category, err := h.catalogSvc.CreateCategory(c.Request().Context(), req.Name)
	if err != nil {
		return httpError(err)
	}
	category.Key = h.codec.Encode(category.ID)
	return c.JSON(http.StatusCreated, category)
}

func (h *Handler) ListCategories(c echo.Context) error {
	categories, err := h.catalogSvc.ListCategories(c.Request().Context())
	if err != nil {
		return httpError(err)
	}
	for i := range categories {
		categories[i].Key = h.codec.Encode(categories[i].ID)
	}
	return c.JSON(http.StatusOK, categories)
}

func (h *Handler) ListGovernorates(c echo.Context) error {
	governorates, err := h.catalogSvc.ListGovernorates(c.Request().Context())
	if err != nil {
		return httpError(err)
	}
	for i := range governorates {
		governorates[i].Key = h.codec.Encode(governorates[i].ID)
	}
	return c.JSON(http.StatusOK, governorates)
}

func (h *Handler) ListAreas(c echo.Context) error {
	governorateID, err := h.keyParam(c, "governorateKey")
	if err != nil {
		return err
	}
	areas, err := h.catalogSvc.ListAreas(c.Request().Context(), governorateID)
	if err != nil {
		return httpError(err)
	}
	for i := range areas {
		areas[i].Key = h.codec.Encode(areas[i].ID)
	}
	return c.JSON(http.StatusOK, areas)
}

func (h *Handler) toggleByKey(c echo.Context, param string, toggle func(ctx context.Context, id int) error) error {
	id, err := h.keyParam(c, param)
	if err != nil {
		return err
	}
	if err := toggle(c.Request().Context(), id); err != nil {
		return httpError(err)
	}
	return c.NoContent(http.StatusOK)
}

func (h *Handler) bookWithKeys(book model.Book) model.Book {
	book.Key = h.codec.Encode(book.ID)
	book.AuthorKey = h.codec.Encode(book.AuthorID)
	return book
}

package handler

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/bookden/rental-service/internal/repository"
)

// BooksReport godoc
//
//	@Summary	Filtered, paginated book listing
//	@Tags		reports
//	@Produce	json
//	@Param		authors		query		string	false	"comma-separated encoded author ids"
//	@Param		categories	query		string	false	"comma-separated encoded category ids"
//	@Param		page		query		int		false	"page number"
//	@Success	200			{object}	report.BooksPage
//	@Failure	400			{object}	echo.HTTPError
//	@Router		/api/v1/reports/books [get]
func (h *Handler) BooksReport(c echo.Context) error {
	page, err := pageParam(c)
	if err != nil {
		return err
	}
	authorIDs, err := h.keysQuery(c, "authors")
	if err != nil {
		return err
	}
	categoryIDs, err := h.keysQuery(c, "categories")
	if err != nil {
		return err
	}

	result, err := h.reportSvc.Books(c.Request().Context(), repository.BookFilter{
		AuthorIDs:   authorIDs,
		CategoryIDs: categoryIDs,
	}, page)
	if err != nil {
		return httpError(err)
	}
	for i := range result.Items {
		result.Items[i] = h.bookWithKeys(result.Items[i])
	}
	return c.JSON(http.StatusOK, result)
}

func (h *Handler) RentalsReport(c echo.Context) error {
	page, err := pageParam(c)
	if err != nil {
		return err
	}
	from := c.QueryParam("from")
	to := c.QueryParam("to")

	result, err := h.reportSvc.Rentals(c.Request().Context(), from, to, page)
	if err != nil {
		return httpError(err)
	}
	for i := range result.Items {
		result.Items[i] = h.rentalCopyWithKeys(result.Items[i])
	}
	return c.JSON(http.StatusOK, result)
}

// keysQuery decodes a comma-separated list of encoded ids; an absent
// parameter means no filter.
func (h *Handler) keysQuery(c echo.Context, name string) ([]int, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return nil, nil
	}
	parts := strings.Split(raw, ",")
	ids := make([]int, 0, len(parts))
	for _, part := range parts {
		id, err := h.codec.Decode(strings.TrimSpace(part))
		if err != nil {
			return nil, echo.NewHTTPError(http.StatusBadRequest, name+" filter is invalid")
		}
		ids = append(ids, id)
	}
	return ids, nil
}

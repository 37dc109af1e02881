package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.uber.org/zap"

	_ "github.com/bookden/rental-service/docs"
	"github.com/bookden/rental-service/internal/errs"
	"github.com/bookden/rental-service/pkg/idtoken"
	md "github.com/bookden/rental-service/pkg/middleware"
	"github.com/bookden/rental-service/pkg/validate"
)

type Handler struct {
	rentalSvc     RentalService
	reportSvc     ReportService
	renewalSvc    RenewalService
	subscriberSvc SubscriberService
	catalogSvc    CatalogService
	codec         *idtoken.Codec
	log           *zap.Logger
}

func New(rentalSvc RentalService, reportSvc ReportService, renewalSvc RenewalService,
	subscriberSvc SubscriberService, catalogSvc CatalogService,
	codec *idtoken.Codec, log *zap.Logger) *Handler {
	return &Handler{
		rentalSvc:     rentalSvc,
		reportSvc:     reportSvc,
		renewalSvc:    renewalSvc,
		subscriberSvc: subscriberSvc,
		catalogSvc:    catalogSvc,
		codec:         codec,
		log:           log,
	}
}

func (h *Handler) NewRouter(jwtKey []byte) *echo.Echo {
	e := echo.New()
	const (
		baseRPS = 10
		apiRPS  = 100
	)
	e.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{
		StackSize: 4 << 10, // 4 KB
	}))
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{http.MethodGet, http.MethodOptions, http.MethodHead, http.MethodPut, http.MethodPatch, http.MethodPost, http.MethodDelete},
		AllowCredentials: true,
	}))

	base := e.Group("", md.NewRateLimiter(baseRPS))
	base.GET("/manage/health", h.Health)
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	e.Validator = validate.NewCustomValidator()
	api := e.Group("/api/v1",
		middleware.RequestLoggerWithConfig(md.RequestLoggerConfig(h.log.Named("echo"))),
		middleware.RequestID(),
		md.NewRateLimiter(apiRPS),
	)
	staff := api.Group("", md.StaffAuth(jwtKey), md.RequireRole(md.RoleAdmin, md.RoleStaff))

	staff.POST("/subscribers", h.CreateSubscriber)
	api.GET("/subscribers", h.ListSubscribers)
	api.GET("/subscribers/:subscriberKey", h.GetSubscriber)
	staff.PUT("/subscribers/:subscriberKey", h.UpdateSubscriber)
	staff.POST("/subscribers/:subscriberKey/blacklist", h.ToggleBlacklist)
	staff.DELETE("/subscribers/:subscriberKey", h.ToggleSubscriberDeleted)
	staff.POST("/subscribers/:subscriberKey/subscriptions", h.AddSubscription)
	api.GET("/subscribers/:subscriberKey/rentals", h.RentalsForSubscriber)
	api.GET("/subscribers/:subscriberKey/eligibility", h.CheckEligibility)

	staff.POST("/rentals", h.CreateRental)
	staff.POST("/rentals/:rentalKey/copies/:copyKey/return", h.ReturnCopy)
	staff.POST("/rentals/:rentalKey/copies/:copyKey/extend", h.ExtendRental)
	staff.DELETE("/rentals/:rentalKey", h.CancelRental)
	api.GET("/rentals/delayed", h.DelayedRentals)

	api.GET("/reports/books", h.BooksReport)
	api.GET("/reports/rentals", h.RentalsReport)
	api.GET("/subscriptions/expiring", h.ExpiringSubscriptions)

	staff.POST("/books", h.CreateBook)
	api.GET("/books/search", h.SearchBooks)
	api.GET("/books/:bookKey", h.GetBook)
	staff.PUT("/books/:bookKey", h.UpdateBook)
	staff.POST("/books/:bookKey/availability", h.ToggleBookAvailability)
	staff.DELETE("/books/:bookKey", h.ToggleBookDeleted)
	staff.POST("/books/:bookKey/copies", h.AddCopy)
	staff.POST("/copies/:copyKey/availability", h.ToggleCopyAvailability)
	staff.DELETE("/copies/:copyKey", h.ToggleCopyDeleted)

	staff.POST("/authors", h.CreateAuthor)
	api.GET("/authors", h.ListAuthors)
	staff.POST("/categories", h.CreateCategory)
	api.GET("/categories", h.ListCategories)
	api.GET("/governorates", h.ListGovernorates)
	api.GET("/governorates/:governorateKey/areas", h.ListAreas)

	return e
}

func (h *Handler) Health(c echo.Context) error {
	return c.String(http.StatusOK, "OK")
}

// keyParam decodes an encoded id from the URL. Malformed and forged
// tokens both come back as not-found so the response gives no oracle
// on why decoding failed.
func (h *Handler) keyParam(c echo.Context, name string) (int, error) {
	id, err := h.codec.Decode(c.Param(name))
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusNotFound, "not found")
	}
	return id, nil
}

func (h *Handler) decodeKey(token string) (int, error) {
	id, err := h.codec.Decode(token)
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusNotFound, "not found")
	}
	return id, nil
}

func pageParam(c echo.Context) (int, error) {
	pageParam := c.QueryParam("page")
	if pageParam == "" {
		return 0, nil
	}
	page, err := strconv.Atoi(pageParam)
	if err != nil || page < 0 {
		return 0, echo.NewHTTPError(http.StatusBadRequest, errors.New("page is invalid"))
	}
	return page, nil
}

// httpError maps typed core errors onto statuses: token failures and
// missing entities are 404, rule violations and bad input 400,
// anything else a plain 500.
func httpError(err error) *echo.HTTPError {
	switch {
	case errors.Is(err, idtoken.ErrInvalidToken):
		return echo.NewHTTPError(http.StatusNotFound, "not found")
	case errs.IsNotFound(err):
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	case errors.Is(err, errs.ErrInvalidDateRange):
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	case errs.IsBusinessRule(err):
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	default:
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
}

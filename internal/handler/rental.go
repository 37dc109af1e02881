package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/bookden/rental-service/internal/model"
	md "github.com/bookden/rental-service/pkg/middleware"
)

type createRentalRequest struct {
	SubscriberKey string `json:"subscriberKey" validate:"required"`
	CopyKey       string `json:"copyKey" validate:"required"`
}

// CreateRental godoc
//
//	@Summary	Rent a book copy to a subscriber
//	@Tags		rentals
//	@Accept		json
//	@Produce	json
//	@Param		input	body		createRentalRequest	true	"encoded subscriber and copy ids"
//	@Success	200		{object}	model.Rental
//	@Failure	400		{object}	echo.HTTPError
//	@Failure	404		{object}	echo.HTTPError
//	@Router		/api/v1/rentals [post]
func (h *Handler) CreateRental(c echo.Context) error {
	var req createRentalRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(req); err != nil {
		return err
	}
	subscriberID, err := h.decodeKey(req.SubscriberKey)
	if err != nil {
		return err
	}
	copyID, err := h.decodeKey(req.CopyKey)
	if err != nil {
		return err
	}

	ctx := c.Request().Context()
	rental, err := h.rentalSvc.CreateRental(ctx, subscriberID, copyID)
	if err != nil {
		return httpError(err)
	}
	h.log.Info("rental created",
		zap.Int("rentalId", rental.ID),
		zap.String("staff", md.UserName(ctx)))
	return c.JSON(http.StatusOK, h.rentalWithKeys(rental))
}

func (h *Handler) ReturnCopy(c echo.Context) error {
	rentalID, err := h.keyParam(c, "rentalKey")
	if err != nil {
		return err
	}
	copyID, err := h.keyParam(c, "copyKey")
	if err != nil {
		return err
	}
	rc, err := h.rentalSvc.ReturnCopy(c.Request().Context(), rentalID, copyID)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, h.rentalCopyWithKeys(rc))
}

func (h *Handler) ExtendRental(c echo.Context) error {
	rentalID, err := h.keyParam(c, "rentalKey")
	if err != nil {
		return err
	}
	copyID, err := h.keyParam(c, "copyKey")
	if err != nil {
		return err
	}
	rc, err := h.rentalSvc.ExtendRental(c.Request().Context(), rentalID, copyID)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, h.rentalCopyWithKeys(rc))
}

func (h *Handler) CancelRental(c echo.Context) error {
	rentalID, err := h.keyParam(c, "rentalKey")
	if err != nil {
		return err
	}
	ctx := c.Request().Context()
	if err := h.rentalSvc.CancelRental(ctx, rentalID); err != nil {
		return httpError(err)
	}
	h.log.Info("rental cancelled",
		zap.Int("rentalId", rentalID),
		zap.String("staff", md.UserName(ctx)))
	return c.NoContent(http.StatusOK)
}

func (h *Handler) DelayedRentals(c echo.Context) error {
	items, err := h.rentalSvc.DelayedRentals(c.Request().Context())
	if err != nil {
		return httpError(err)
	}
	out := make([]model.RentalCopy, 0, len(items))
	for _, rc := range items {
		out = append(out, h.rentalCopyWithKeys(rc))
	}
	return c.JSON(http.StatusOK, out)
}

func (h *Handler) RentalsForSubscriber(c echo.Context) error {
	subscriberID, err := h.keyParam(c, "subscriberKey")
	if err != nil {
		return err
	}
	rentals, err := h.rentalSvc.RentalsForSubscriber(c.Request().Context(), subscriberID)
	if err != nil {
		return httpError(err)
	}
	out := make([]model.Rental, 0, len(rentals))
	for _, rental := range rentals {
		out = append(out, h.rentalWithKeys(rental))
	}
	return c.JSON(http.StatusOK, out)
}

// CheckEligibility reports whether the subscriber may start a rental
// right now, with the blocking reason when not.
func (h *Handler) CheckEligibility(c echo.Context) error {
	subscriberID, err := h.keyParam(c, "subscriberKey")
	if err != nil {
		return err
	}
	type eligibility struct {
		Eligible bool   `json:"eligible"`
		Reason   string `json:"reason,omitempty"`
	}
	if err := h.rentalSvc.CheckEligibility(c.Request().Context(), subscriberID); err != nil {
		he := httpError(err)
		if he.Code == http.StatusBadRequest {
			return c.JSON(http.StatusOK, eligibility{Eligible: false, Reason: err.Error()})
		}
		return he
	}
	return c.JSON(http.StatusOK, eligibility{Eligible: true})
}

func (h *Handler) ExpiringSubscriptions(c echo.Context) error {
	days := 0
	if daysParam := c.QueryParam("days"); daysParam != "" {
		var err error
		if days, err = strconv.Atoi(daysParam); err != nil || days < 0 {
			return echo.NewHTTPError(http.StatusBadRequest, errors.New("days is invalid"))
		}
	}
	items, err := h.renewalSvc.ExpiringWithin(c.Request().Context(), days)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, items)
}

func (h *Handler) rentalWithKeys(rental model.Rental) model.Rental {
	rental.Key = h.codec.Encode(rental.ID)
	for i := range rental.Copies {
		rental.Copies[i] = h.rentalCopyWithKeys(rental.Copies[i])
	}
	return rental
}

func (h *Handler) rentalCopyWithKeys(rc model.RentalCopy) model.RentalCopy {
	rc.RentalKey = h.codec.Encode(rc.RentalID)
	rc.CopyKey = h.codec.Encode(rc.BookCopyID)
	return rc
}

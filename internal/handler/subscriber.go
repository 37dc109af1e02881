package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/bookden/rental-service/internal/model"
)

type subscriberRequest struct {
	FirstName    string `json:"firstName" validate:"required"`
	LastName     string `json:"lastName" validate:"required"`
	NationalID   string `json:"nationalId" validate:"required"`
	MobileNumber string `json:"mobileNumber" validate:"required"`
	Email        string `json:"email" validate:"required,email"`
	AreaKey      string `json:"areaKey" validate:"required"`
}

func (h *Handler) CreateSubscriber(c echo.Context) error {
	var req subscriberRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(req); err != nil {
		return err
	}
	areaID, err := h.decodeKey(req.AreaKey)
	if err != nil {
		return err
	}
	sub, err := h.subscriberSvc.Create(c.Request().Context(), model.Subscriber{
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		NationalID:   req.NationalID,
		MobileNumber: req.MobileNumber,
		Email:        req.Email,
		AreaID:       areaID,
	})
	if err != nil {
		return httpError(err)
	}
	sub.Key = h.codec.Encode(sub.ID)
	return c.JSON(http.StatusCreated, sub)
}

func (h *Handler) UpdateSubscriber(c echo.Context) error {
	id, err := h.keyParam(c, "subscriberKey")
	if err != nil {
		return err
	}
	var req subscriberRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(req); err != nil {
		return err
	}
	areaID, err := h.decodeKey(req.AreaKey)
	if err != nil {
		return err
	}
	err = h.subscriberSvc.Update(c.Request().Context(), model.Subscriber{
		ID:           id,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		NationalID:   req.NationalID,
		MobileNumber: req.MobileNumber,
		Email:        req.Email,
		AreaID:       areaID,
	})
	if err != nil {
		return httpError(err)
	}
	return c.NoContent(http.StatusOK)
}

func (h *Handler) GetSubscriber(c echo.Context) error {
	id, err := h.keyParam(c, "subscriberKey")
	if err != nil {
		return err
	}
	sub, err := h.subscriberSvc.Get(c.Request().Context(), id)
	if err != nil {
		return httpError(err)
	}
	sub.Key = h.codec.Encode(sub.ID)
	now := time.Now()
	for i := range sub.Subscriptions {
		sub.Subscriptions[i].Status = sub.Subscriptions[i].StatusAt(now)
	}
	for i := range sub.Rentals {
		sub.Rentals[i] = h.rentalWithKeys(sub.Rentals[i])
	}
	return c.JSON(http.StatusOK, sub)
}

func (h *Handler) ListSubscribers(c echo.Context) error {
	page, err := pageParam(c)
	if err != nil {
		return err
	}
	size := 0
	if sizeParam := c.QueryParam("size"); sizeParam != "" {
		if size, err = strconv.Atoi(sizeParam); err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, errors.New("size is invalid"))
		}
	}
	subs, paging, err := h.subscriberSvc.List(c.Request().Context(), page, size)
	if err != nil {
		return httpError(err)
	}
	for i := range subs {
		subs[i].Key = h.codec.Encode(subs[i].ID)
	}
	type listResponse struct {
		model.Paging `json:",inline"`
		Items        []model.Subscriber `json:"items"`
	}
	return c.JSON(http.StatusOK, listResponse{Paging: paging, Items: subs})
}

func (h *Handler) ToggleBlacklist(c echo.Context) error {
	id, err := h.keyParam(c, "subscriberKey")
	if err != nil {
		return err
	}
	blacklisted, err := h.subscriberSvc.ToggleBlacklist(c.Request().Context(), id)
	if err != nil {
		return httpError(err)
	}
	type toggleResponse struct {
		IsBlackListed bool `json:"isBlackListed"`
	}
	return c.JSON(http.StatusOK, toggleResponse{IsBlackListed: blacklisted})
}

func (h *Handler) ToggleSubscriberDeleted(c echo.Context) error {
	id, err := h.keyParam(c, "subscriberKey")
	if err != nil {
		return err
	}
	if err := h.subscriberSvc.ToggleDeleted(c.Request().Context(), id); err != nil {
		return httpError(err)
	}
	return c.NoContent(http.StatusOK)
}

type subscriptionRequest struct {
	StartDate string `json:"startDate" validate:"required,datetime=2006-01-02"`
	EndDate   string `json:"endDate" validate:"required,datetime=2006-01-02"`
}

func (h *Handler) AddSubscription(c echo.Context) error {
	id, err := h.keyParam(c, "subscriberKey")
	if err != nil {
		return err
	}
	var req subscriptionRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(req); err != nil {
		return err
	}
	start, _ := time.Parse(time.DateOnly, req.StartDate)
	end, _ := time.Parse(time.DateOnly, req.EndDate)
	if end.Before(start) {
		return echo.NewHTTPError(http.StatusBadRequest, "endDate before startDate")
	}
	sub, err := h.subscriberSvc.AddSubscription(c.Request().Context(), model.Subscription{
		SubscriberID: id,
		StartDate:    start,
		EndDate:      end,
	})
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusCreated, sub)
}

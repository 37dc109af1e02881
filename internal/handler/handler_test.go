package handler_test

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/bookden/rental-service/internal/errs"
	"github.com/bookden/rental-service/internal/handler"
	service_mocks "github.com/bookden/rental-service/internal/handler/mocks"
	"github.com/bookden/rental-service/internal/model"
	"github.com/bookden/rental-service/internal/repository"
	"github.com/bookden/rental-service/internal/service/report"
	"github.com/bookden/rental-service/pkg/idtoken"
	"github.com/bookden/rental-service/pkg/validate"
)

var testNow = time.Date(2025, time.June, 15, 10, 30, 0, 0, time.UTC)

type mocks struct {
	rental     *service_mocks.MockRentalService
	report     *service_mocks.MockReportService
	renewal    *service_mocks.MockRenewalService
	subscriber *service_mocks.MockSubscriberService
	catalog    *service_mocks.MockCatalogService
}

func newTestHandler(t *testing.T) (*handler.Handler, mocks, *idtoken.Codec) {
	t.Helper()
	c := gomock.NewController(t)
	t.Cleanup(c.Finish)
	m := mocks{
		rental:     service_mocks.NewMockRentalService(c),
		report:     service_mocks.NewMockReportService(c),
		renewal:    service_mocks.NewMockRenewalService(c),
		subscriber: service_mocks.NewMockSubscriberService(c),
		catalog:    service_mocks.NewMockCatalogService(c),
	}
	codec, err := idtoken.New("handler-test-secret")
	require.NoError(t, err)
	h := handler.New(m.rental, m.report, m.renewal, m.subscriber, m.catalog,
		codec, zap.NewExample().Named("test"))
	return h, m, codec
}

func TestHandler_CreateRental(t *testing.T) {
	t.Parallel()
	h, m, codec := newTestHandler(t)

	subscriberKey := codec.Encode(7)
	copyKey := codec.Encode(42)
	rentalKey := codec.Encode(100)
	due := testNow.AddDate(0, 0, 7)

	type response struct {
		expectedCode int
		expectedBody string
	}

	tests := []struct {
		name         string
		body         string
		mockBehavior func()
		response     response
	}{
		{
			name: "ok",
			body: fmt.Sprintf(`{"subscriberKey":%q,"copyKey":%q}`, subscriberKey, copyKey),
			mockBehavior: func() {
				m.rental.EXPECT().
					CreateRental(context.Background(), 7, 42).
					Return(model.Rental{
						ID:        100,
						StartDate: testNow,
						Copies: []model.RentalCopy{
							{RentalID: 100, BookCopyID: 42, RentalDate: testNow, EndDate: due},
						},
					}, nil)
			},
			response: response{
				expectedCode: http.StatusOK,
				expectedBody: fmt.Sprintf(
					`{"key":%q,"startDate":"2025-06-15T10:30:00Z","copies":[{"rentalKey":%q,"copyKey":%q,"rentalDate":"2025-06-15T10:30:00Z","endDate":"2025-06-22T10:30:00Z"}]}`,
					rentalKey, rentalKey, copyKey),
			},
		},
		{
			name:         "err. copyKey required",
			body:         fmt.Sprintf(`{"subscriberKey":%q}`, subscriberKey),
			mockBehavior: func() {},
			response: response{
				expectedCode: http.StatusBadRequest,
			},
		},
		{
			name:         "err. forged subscriber key",
			body:         fmt.Sprintf(`{"subscriberKey":"AAAAAAAAAAAAAAAAAAAAAA","copyKey":%q}`, copyKey),
			mockBehavior: func() {},
			response: response{
				expectedCode: http.StatusNotFound,
				expectedBody: `{"message":"not found"}`,
			},
		},
		{
			name: "err. copy cap reached",
			body: fmt.Sprintf(`{"subscriberKey":%q,"copyKey":%q}`, subscriberKey, copyKey),
			mockBehavior: func() {
				m.rental.EXPECT().
					CreateRental(context.Background(), 7, 42).
					Return(model.Rental{}, errs.ErrMaxCopiesReached)
			},
			response: response{
				expectedCode: http.StatusBadRequest,
				expectedBody: `{"message":"max allowed copies reached"}`,
			},
		},
		{
			name: "err. internal",
			body: fmt.Sprintf(`{"subscriberKey":%q,"copyKey":%q}`, subscriberKey, copyKey),
			mockBehavior: func() {
				m.rental.EXPECT().
					CreateRental(context.Background(), 7, 42).
					Return(model.Rental{}, errors.New("db internal"))
			},
			response: response{
				expectedCode: http.StatusInternalServerError,
				expectedBody: `{"message":"db internal"}`,
			},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			e.Validator = validate.NewCustomValidator()
			e.POST("/rentals", h.CreateRental)

			r := httptest.NewRequest(http.MethodPost, "/rentals", strings.NewReader(tt.body))
			r.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
			w := httptest.NewRecorder()

			tt.mockBehavior()
			e.ServeHTTP(w, r)

			require.Equal(t, tt.response.expectedCode, w.Code)
			if tt.response.expectedBody != "" {
				require.Equal(t, tt.response.expectedBody, strings.Trim(w.Body.String(), "\n"))
			}
		})
	}
}

func TestHandler_CheckEligibility(t *testing.T) {
	t.Parallel()
	h, m, codec := newTestHandler(t)

	subscriberKey := codec.Encode(7)

	tests := []struct {
		name         string
		key          string
		mockBehavior func()
		expectedCode int
		expectedBody string
	}{
		{
			name: "eligible",
			key:  subscriberKey,
			mockBehavior: func() {
				m.rental.EXPECT().CheckEligibility(context.Background(), 7).Return(nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: `{"eligible":true}`,
		},
		{
			name: "blacklisted reads as ineligible, not an error",
			key:  subscriberKey,
			mockBehavior: func() {
				m.rental.EXPECT().CheckEligibility(context.Background(), 7).
					Return(errs.ErrBlackListedSubscriber)
			},
			expectedCode: http.StatusOK,
			expectedBody: `{"eligible":false,"reason":"subscriber is blacklisted"}`,
		},
		{
			name: "missing subscriber stays 404",
			key:  subscriberKey,
			mockBehavior: func() {
				m.rental.EXPECT().CheckEligibility(context.Background(), 7).
					Return(errs.ErrSubscriberNotFound)
			},
			expectedCode: http.StatusNotFound,
			expectedBody: `{"message":"subscriber not found"}`,
		},
		{
			name:         "garbage key stays 404",
			key:          "not-a-key",
			mockBehavior: func() {},
			expectedCode: http.StatusNotFound,
			expectedBody: `{"message":"not found"}`,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			e.Validator = validate.NewCustomValidator()
			e.GET("/subscribers/:subscriberKey/eligibility", h.CheckEligibility)

			r := httptest.NewRequest(http.MethodGet,
				fmt.Sprintf("/subscribers/%s/eligibility", tt.key), http.NoBody)
			w := httptest.NewRecorder()

			tt.mockBehavior()
			e.ServeHTTP(w, r)

			require.Equal(t, tt.expectedCode, w.Code)
			require.Equal(t, tt.expectedBody, strings.Trim(w.Body.String(), "\n"))
		})
	}
}

func TestHandler_BooksReport(t *testing.T) {
	t.Parallel()
	h, m, codec := newTestHandler(t)

	authorKey := codec.Encode(3)
	bookKey := codec.Encode(11)
	publishDate := time.Date(1965, 8, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name         string
		query        string
		mockBehavior func()
		expectedCode int
		expectedBody string
	}{
		{
			name:  "filtered by author",
			query: fmt.Sprintf("authors=%s&page=2", authorKey),
			mockBehavior: func() {
				m.report.EXPECT().
					Books(context.Background(), repository.BookFilter{AuthorIDs: []int{3}}, 2).
					Return(report.BooksPage{
						Paging: model.Paging{Page: 2, PageSize: 10, TotalElements: 11, TotalPages: 2},
						Items: []model.Book{
							{
								ID: 11, Title: "Dune", AuthorID: 3, AuthorName: "Frank Herbert",
								Publisher: "Chilton Books", PublishDate: publishDate,
								IsAvailableForRental: true,
							},
						},
					}, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: fmt.Sprintf(
				`{"page":2,"pageSize":10,"totalElements":11,"totalPages":2,"items":[{"key":%q,"title":"Dune","authorKey":%q,"author":"Frank Herbert","publisher":"Chilton Books","publishDate":"1965-08-01T00:00:00Z","isAvailableForRental":true,"isDeleted":false}]}`,
				bookKey, authorKey),
		},
		{
			name:         "err. invalid filter key",
			query:        "authors=garbage",
			mockBehavior: func() {},
			expectedCode: http.StatusBadRequest,
			expectedBody: `{"message":"authors filter is invalid"}`,
		},
		{
			name:         "err. invalid page",
			query:        "page=abc",
			mockBehavior: func() {},
			expectedCode: http.StatusBadRequest,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			e.Validator = validate.NewCustomValidator()
			e.GET("/reports/books", h.BooksReport)

			r := httptest.NewRequest(http.MethodGet, "/reports/books?"+tt.query, http.NoBody)
			w := httptest.NewRecorder()

			tt.mockBehavior()
			e.ServeHTTP(w, r)

			require.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedBody != "" {
				require.Equal(t, tt.expectedBody, strings.Trim(w.Body.String(), "\n"))
			}
		})
	}
}

func TestHandler_SearchBooks(t *testing.T) {
	t.Parallel()
	h, m, codec := newTestHandler(t)

	authorKey := codec.Encode(3)
	bookKey := codec.Encode(11)
	publishDate := time.Date(1965, 8, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name         string
		query        string
		mockBehavior func()
		expectedCode int
		expectedBody string
	}{
		{
			name:  "ok",
			query: "q=dune",
			mockBehavior: func() {
				m.catalog.EXPECT().
					SearchBooks(context.Background(), "dune").
					Return([]model.Book{
						{
							ID: 11, Title: "Dune", AuthorID: 3, AuthorName: "Frank Herbert",
							Publisher: "Chilton Books", PublishDate: publishDate,
							IsAvailableForRental: true,
						},
					}, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: fmt.Sprintf(
				`[{"key":%q,"title":"Dune","authorKey":%q,"author":"Frank Herbert","publisher":"Chilton Books","publishDate":"1965-08-01T00:00:00Z","isAvailableForRental":true,"isDeleted":false}]`,
				bookKey, authorKey),
		},
		{
			name:  "no matches",
			query: "q=nothing",
			mockBehavior: func() {
				m.catalog.EXPECT().
					SearchBooks(context.Background(), "nothing").
					Return(nil, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: `[]`,
		},
		{
			name:         "err. missing term",
			query:        "",
			mockBehavior: func() {},
			expectedCode: http.StatusBadRequest,
			expectedBody: `{"message":"q is required"}`,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			e.GET("/books/search", h.SearchBooks)

			r := httptest.NewRequest(http.MethodGet, "/books/search?"+tt.query, http.NoBody)
			w := httptest.NewRecorder()

			tt.mockBehavior()
			e.ServeHTTP(w, r)

			require.Equal(t, tt.expectedCode, w.Code)
			require.Equal(t, tt.expectedBody, strings.Trim(w.Body.String(), "\n"))
		})
	}
}

func TestHandler_RentalsReport_InvalidRange(t *testing.T) {
	t.Parallel()
	h, m, _ := newTestHandler(t)

	m.report.EXPECT().
		Rentals(context.Background(), "2024-12-31", "2024-01-01", 0).
		Return(report.RentalsPage{}, errs.ErrInvalidDateRange)

	e := echo.New()
	e.GET("/reports/rentals", h.RentalsReport)

	r := httptest.NewRequest(http.MethodGet,
		"/reports/rentals?from=2024-12-31&to=2024-01-01", http.NoBody)
	w := httptest.NewRecorder()
	e.ServeHTTP(w, r)

	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Equal(t, `{"message":"invalid date range"}`, strings.Trim(w.Body.String(), "\n"))
}

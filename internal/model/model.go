package model

import (
	"time"
)

// Policy carries the rental business constants. It is built once from
// config and injected; nothing reads these from ambient state.
type Policy struct {
	RentalDurationDays    int
	ExtensionDurationDays int
	MaxAllowedCopies      int
	PageSize              int
	ExpiryAlertDays       int
}

func DefaultPolicy() Policy {
	return Policy{
		RentalDurationDays:    7,
		ExtensionDurationDays: 7,
		MaxAllowedCopies:      3,
		PageSize:              10,
		ExpiryAlertDays:       5,
	}
}

type Subscriber struct {
	ID            int    `json:"-" db:"id"`
	Key           string `json:"key" db:"-"`
	FirstName     string `json:"firstName" db:"first_name"`
	LastName      string `json:"lastName" db:"last_name"`
	NationalID    string `json:"nationalId" db:"national_id"`
	MobileNumber  string `json:"mobileNumber" db:"mobile_number"`
	Email         string `json:"email" db:"email"`
	AreaID        int    `json:"-" db:"area_id"`
	IsBlackListed bool   `json:"isBlackListed" db:"is_blacklisted"`
	IsDeleted     bool   `json:"isDeleted" db:"is_deleted"`

	Subscriptions []Subscription `json:"subscriptions,omitempty" db:"-"`
	Rentals       []Rental       `json:"rentals,omitempty" db:"-"`
}

type SubscriptionStatus string

const (
	SubscriptionActive   SubscriptionStatus = "ACTIVE"
	SubscriptionInactive SubscriptionStatus = "INACTIVE"
	SubscriptionPending  SubscriptionStatus = "PENDING"
)

type Subscription struct {
	ID           int       `json:"-" db:"id"`
	SubscriberID int       `json:"-" db:"subscriber_id"`
	StartDate    time.Time `json:"startDate" db:"start_date"`
	EndDate      time.Time `json:"endDate" db:"end_date"`

	Status SubscriptionStatus `json:"status,omitempty" db:"-"`
}

// StatusAt derives the status at read time, never stored.
func (s Subscription) StatusAt(now time.Time) SubscriptionStatus {
	today := Day(now)
	switch {
	case today.Before(Day(s.StartDate)):
		return SubscriptionPending
	case today.After(Day(s.EndDate)):
		return SubscriptionInactive
	default:
		return SubscriptionActive
	}
}

// Current picks the subscription with the latest end date.
func Current(subs []Subscription) (Subscription, bool) {
	if len(subs) == 0 {
		return Subscription{}, false
	}
	cur := subs[0]
	for _, s := range subs[1:] {
		if s.EndDate.After(cur.EndDate) {
			cur = s
		}
	}
	return cur, true
}

type Book struct {
	ID                   int       `json:"-" db:"id"`
	Key                  string    `json:"key" db:"-"`
	Title                string    `json:"title" db:"title"`
	AuthorID             int       `json:"-" db:"author_id"`
	AuthorKey            string    `json:"authorKey,omitempty" db:"-"`
	AuthorName           string    `json:"author" db:"author_name"`
	Publisher            string    `json:"publisher" db:"publisher"`
	PublishDate          time.Time `json:"publishDate" db:"publish_date"`
	IsAvailableForRental bool      `json:"isAvailableForRental" db:"is_available_for_rental"`
	IsDeleted            bool      `json:"isDeleted" db:"is_deleted"`

	CategoryIDs []int `json:"-" db:"-"`
}

type BookCopy struct {
	ID                   int    `json:"-" db:"id"`
	Key                  string `json:"key" db:"-"`
	BookID               int    `json:"-" db:"book_id"`
	SerialNumber         int    `json:"serialNumber" db:"serial_number"`
	IsAvailableForRental bool   `json:"isAvailableForRental" db:"is_available_for_rental"`
	IsDeleted            bool   `json:"isDeleted" db:"is_deleted"`

	BookTitle       string `json:"bookTitle" db:"book_title"`
	BookIsAvailable bool   `json:"-" db:"book_is_available"`
	BookIsDeleted   bool   `json:"-" db:"book_is_deleted"`
}

// IsRentable requires the copy and its parent book to be available
// and neither soft-deleted.
func (c BookCopy) IsRentable() bool {
	return c.IsAvailableForRental && !c.IsDeleted &&
		c.BookIsAvailable && !c.BookIsDeleted
}

type Rental struct {
	ID           int       `json:"-" db:"id"`
	Key          string    `json:"key" db:"-"`
	SubscriberID int       `json:"-" db:"subscriber_id"`
	StartDate    time.Time `json:"startDate" db:"start_date"`
	IsDeleted    bool      `json:"-" db:"is_deleted"`

	Copies []RentalCopy `json:"copies,omitempty" db:"-"`
}

type RentalCopy struct {
	RentalID   int        `json:"-" db:"rental_id"`
	RentalKey  string     `json:"rentalKey,omitempty" db:"-"`
	BookCopyID int        `json:"-" db:"book_copy_id"`
	CopyKey    string     `json:"copyKey,omitempty" db:"-"`
	RentalDate time.Time  `json:"rentalDate" db:"rental_date"`
	EndDate    time.Time  `json:"endDate" db:"end_date"`
	ReturnDate *time.Time `json:"returnDate,omitempty" db:"return_date"`
	ExtendedOn *time.Time `json:"extendedOn,omitempty" db:"extended_on"`

	BookTitle    string `json:"bookTitle,omitempty" db:"book_title"`
	SerialNumber int    `json:"serialNumber,omitempty" db:"serial_number"`
	SubscriberID int    `json:"-" db:"subscriber_id"`
}

func (rc RentalCopy) IsOutstanding() bool {
	return rc.ReturnDate == nil
}

// DelayInDays is zero until the day after the due date, then grows by
// one per day until the copy is returned.
func (rc RentalCopy) DelayInDays(now time.Time) int {
	until := now
	if rc.ReturnDate != nil {
		until = *rc.ReturnDate
	}
	delay := int(Day(until).Sub(Day(rc.EndDate)).Hours() / 24)
	if delay < 0 {
		return 0
	}
	return delay
}

type Author struct {
	ID        int    `json:"-" db:"id"`
	Key       string `json:"key" db:"-"`
	Name      string `json:"name" db:"name"`
	IsDeleted bool   `json:"isDeleted" db:"is_deleted"`
}

type Category struct {
	ID        int    `json:"-" db:"id"`
	Key       string `json:"key" db:"-"`
	Name      string `json:"name" db:"name"`
	IsDeleted bool   `json:"isDeleted" db:"is_deleted"`
}

type Governorate struct {
	ID   int    `json:"-" db:"id"`
	Key  string `json:"key" db:"-"`
	Name string `json:"name" db:"name"`
}

type Area struct {
	ID            int    `json:"-" db:"id"`
	Key           string `json:"key" db:"-"`
	GovernorateID int    `json:"-" db:"governorate_id"`
	Name          string `json:"name" db:"name"`
}

type Paging struct {
	Page          int `json:"page"`
	PageSize      int `json:"pageSize"`
	TotalElements int `json:"totalElements"`
	TotalPages    int `json:"totalPages"`
}

// Day truncates to midnight UTC, the granularity every date rule in
// the rental workflow operates on.
func Day(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

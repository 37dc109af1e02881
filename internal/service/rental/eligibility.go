package rental

import (
	"time"

	"github.com/bookden/rental-service/internal/errs"
	"github.com/bookden/rental-service/internal/model"
)

// ValidateSubscriber runs the rental eligibility checks in order,
// short-circuiting on the first failure:
//
//	nil subscriber        -> ErrSubscriberNotFound
//	blacklisted           -> ErrBlackListedSubscriber
//	outstanding copy cap  -> ErrMaxCopiesReached
//	subscription lapses   -> ErrInactiveSubscriber
//
// A nil return means eligible. No side effects; the caller re-runs
// this inside the create transaction to close the race window.
func (s *Service) ValidateSubscriber(sub *model.Subscriber) error {
	if sub == nil || sub.IsDeleted {
		return errs.ErrSubscriberNotFound
	}
	if sub.IsBlackListed {
		return errs.ErrBlackListedSubscriber
	}
	if outstandingCopies(*sub) >= s.policy.MaxAllowedCopies {
		return errs.ErrMaxCopiesReached
	}
	if !subscriptionCovers(*sub, s.now(), s.policy.RentalDurationDays) {
		return errs.ErrInactiveSubscriber
	}
	return nil
}

func outstandingCopies(sub model.Subscriber) int {
	n := 0
	for _, rental := range sub.Rentals {
		if rental.IsDeleted {
			continue
		}
		for _, rc := range rental.Copies {
			if rc.IsOutstanding() {
				n++
			}
		}
	}
	return n
}

func hasOutstandingCopy(sub model.Subscriber, copyID int) bool {
	for _, rental := range sub.Rentals {
		if rental.IsDeleted {
			continue
		}
		for _, rc := range rental.Copies {
			if rc.BookCopyID == copyID && rc.IsOutstanding() {
				return true
			}
		}
	}
	return false
}

// subscriptionCovers is true when some subscription contains the whole
// window from today through today plus the requested number of days.
// A renewal that has not started yet does not count.
func subscriptionCovers(sub model.Subscriber, now time.Time, days int) bool {
	today := model.Day(now)
	needed := today.AddDate(0, 0, days)
	for _, s := range sub.Subscriptions {
		if !model.Day(s.StartDate).After(today) && !model.Day(s.EndDate).Before(needed) {
			return true
		}
	}
	return false
}

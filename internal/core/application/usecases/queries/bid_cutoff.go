// Package queries contains read-only operations for fulfillment reporting.
// Query handlers read the database directly with raw SQL, bypassing the
// domain model, as they never modify state.
package queries

import (
	"time"

	"fulfillment/internal/pkg/errs"
)

// BidCutoff is the daily deadline up to which orders take part in the
// current fulfillment cycle. Orders created after the cutoff wait for the
// next day's cycle. The value comes from configuration and is passed into
// query handlers explicitly.
type BidCutoff struct {
	Hour   int
	Minute int
	Second int
}

// NewBidCutoff creates a validated daily cutoff time.
func NewBidCutoff(hour, minute, second int) (BidCutoff, error) {
	if hour < 0 || hour > 23 {
		return BidCutoff{}, errs.NewValueIsOutOfRangeError("hour", hour, 0, 23)
	}
	if minute < 0 || minute > 59 {
		return BidCutoff{}, errs.NewValueIsOutOfRangeError("minute", minute, 0, 59)
	}
	if second < 0 || second > 59 {
		return BidCutoff{}, errs.NewValueIsOutOfRangeError("second", second, 0, 59)
	}

	return BidCutoff{Hour: hour, Minute: minute, Second: second}, nil
}

// Today projects the cutoff onto the calendar day of now, in now's location.
func (c BidCutoff) Today(now time.Time) time.Time {
	return time.Date(now.Year(), now.Month(), now.Day(), c.Hour, c.Minute, c.Second, 0, now.Location())
}

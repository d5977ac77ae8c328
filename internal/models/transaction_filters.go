package models

import (
	"time"
)

// TransactionFilters contains filtering options for transaction queries.
// Zero values mean no restriction.
type TransactionFilters struct {
	StartDate *time.Time
	EndDate   *time.Time
	Offset    int
	Limit     int
}

// PeriodBounds returns the first day of ref's month and the first day of the following month
func PeriodBounds(ref time.Time) (time.Time, time.Time) {
	start := time.Date(ref.Year(), ref.Month(), 1, 0, 0, 0, 0, ref.Location())
	return start, start.AddDate(0, 1, 0)
}

package domain

import (
	"fmt"
	"time"
)

// PeriodStatus is the lifecycle state of an accounting period.
type PeriodStatus string

const (
	PeriodOpen   PeriodStatus = "OPEN"
	PeriodClosed PeriodStatus = "CLOSED"
)

// AccountingPeriod is one bookkeeping month. Exactly one period is active at
// a time; journal entries may only be posted into an open period.
type AccountingPeriod struct {
	PeriodID string       `json:"periodID"` // Primary key (UUID)
	Year     int          `json:"year"`
	Month    time.Month   `json:"month"`
	Status   PeriodStatus `json:"status"`
	IsActive bool         `json:"isActive"`
	AuditFields
}

// Label renders the period as "YYYY-MM" for messages and logs.
func (p AccountingPeriod) Label() string {
	return fmt.Sprintf("%04d-%02d", p.Year, int(p.Month))
}

// Contains reports whether a date falls inside the period's month.
func (p AccountingPeriod) Contains(date time.Time) bool {
	return date.Year() == p.Year && date.Month() == p.Month
}

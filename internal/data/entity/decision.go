package entity

import (
	"time"
)

// AdmissionReason identifies which business invariant rejected a candidate.
type AdmissionReason string

const (
	ReasonBlockedDate       AdmissionReason = "BLOCKED_DATE"
	ReasonDayUnavailable    AdmissionReason = "DAY_UNAVAILABLE"
	ReasonTimeOutsideWindow AdmissionReason = "TIME_OUTSIDE_WINDOW"
	ReasonDailyLimitReached AdmissionReason = "DAILY_LIMIT_REACHED"
	ReasonIntervalViolation AdmissionReason = "INTERVAL_VIOLATION"
)

// AdmissionDecision is the outcome of one evaluation. It is a value object
// produced fresh per call and never persisted. A rejection is the expected
// negative outcome of an evaluation, not an error.
type AdmissionDecision struct {
	Allowed     bool
	Reason      AdmissionReason // empty when allowed
	EvaluatedAt time.Time
	// BlockedBy carries the matching blocked-date entry when Reason is
	// BLOCKED_DATE, so intake can surface the decorator's stated reason.
	BlockedBy *BlockedDate
}

func Allowed(at time.Time) *AdmissionDecision {
	return &AdmissionDecision{Allowed: true, EvaluatedAt: at}
}

func Rejected(reason AdmissionReason, at time.Time) *AdmissionDecision {
	return &AdmissionDecision{Allowed: false, Reason: reason, EvaluatedAt: at}
}

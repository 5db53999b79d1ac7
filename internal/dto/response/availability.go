package response

import (
	"time"

	"decor-booking/internal/data/entity"
)

// The availability responses mirror the request shapes so a client can
// round-trip its own configuration. Intervals always come back in minutes.

type TimeScheduleResponse struct {
	Day       string `json:"day"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
}

type ServiceIntervalResponse struct {
	Day      string `json:"day"`
	Interval int    `json:"interval"`
	Unit     string `json:"unit"`
}

type AvailabilityRuleResponse struct {
	DecoratorID      string                    `json:"decorator_id"`
	AvailableDays    []string                  `json:"available_days"`
	TimeSchedules    []TimeScheduleResponse    `json:"time_schedules"`
	ServiceIntervals []ServiceIntervalResponse `json:"service_intervals"`
	DefaultInterval  int                       `json:"default_interval"`
	MaxDailyServices int                       `json:"max_daily_services"`
	UpdatedAt        time.Time                 `json:"updated_at"`
}

type BlockedDateResponse struct {
	ID          string    `json:"id"`
	BlockedDate string    `json:"blocked_date"`
	Reason      string    `json:"reason,omitempty"`
	IsRecurring bool      `json:"is_recurring"`
	CreatedAt   time.Time `json:"created_at"`
}

// AvailabilityCheckResponse is the raw public check payload. Its shape is a
// fixed external contract and is written without the standard envelope.
type AvailabilityCheckResponse struct {
	Success     bool   `json:"success"`
	Blocked     bool   `json:"blocked"`
	Reason      string `json:"reason,omitempty"`
	IsRecurring *bool  `json:"is_recurring,omitempty"`
	ReasonCode  string `json:"reason_code,omitempty"`
}

// Helper converters
func RuleToResponse(rule *entity.AvailabilityRule) *AvailabilityRuleResponse {
	days := make([]string, len(rule.AvailableDays))
	for i, d := range rule.AvailableDays {
		days[i] = string(d)
	}

	schedules := make([]TimeScheduleResponse, len(rule.TimeWindows))
	for i, w := range rule.TimeWindows {
		schedules[i] = TimeScheduleResponse{
			Day:       string(w.Day),
			StartTime: w.Start.String(),
			EndTime:   w.End.String(),
		}
	}

	intervals := make([]ServiceIntervalResponse, 0, len(rule.ServiceIntervals))
	for _, day := range entity.Weekdays {
		if iv, ok := rule.ServiceIntervals[day]; ok {
			intervals = append(intervals, ServiceIntervalResponse{
				Day:      string(day),
				Interval: iv,
				Unit:     "minutes",
			})
		}
	}

	return &AvailabilityRuleResponse{
		DecoratorID:      rule.DecoratorID.String(),
		AvailableDays:    days,
		TimeSchedules:    schedules,
		ServiceIntervals: intervals,
		DefaultInterval:  rule.DefaultIntervalMin,
		MaxDailyServices: rule.MaxDailyBookings,
		UpdatedAt:        rule.UpdatedAt,
	}
}

func BlockedDateToResponse(blocked *entity.BlockedDate) BlockedDateResponse {
	return BlockedDateResponse{
		ID:          blocked.ID.String(),
		BlockedDate: blocked.Date.Format("2006-01-02"),
		Reason:      blocked.Reason,
		IsRecurring: blocked.IsRecurring,
		CreatedAt:   blocked.CreatedAt,
	}
}

func DecisionToCheckResponse(decision *entity.AdmissionDecision) *AvailabilityCheckResponse {
	resp := &AvailabilityCheckResponse{
		Success: true,
		Blocked: !decision.Allowed,
	}

	if decision.Allowed {
		return resp
	}

	resp.ReasonCode = string(decision.Reason)
	if decision.BlockedBy != nil {
		resp.Reason = decision.BlockedBy.Reason
		recurring := decision.BlockedBy.IsRecurring
		resp.IsRecurring = &recurring
	}

	return resp
}

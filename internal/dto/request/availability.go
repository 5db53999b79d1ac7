package request

// The availability payloads keep the field names and shapes the existing
// clients already send: days as lowercase names, times as "HH:MM" and
// intervals as a value plus an hours/minutes unit.

type TimeScheduleRequest struct {
	Day       string `json:"day" validate:"required"`
	StartTime string `json:"start_time" validate:"required,datetime=15:04"`
	EndTime   string `json:"end_time" validate:"required,datetime=15:04"`
}

type ServiceIntervalRequest struct {
	Day      string `json:"day" validate:"required"`
	Interval int    `json:"interval" validate:"min=0"`
	Unit     string `json:"unit" validate:"required,oneof=hours minutes"`
}

// DefaultIntervalRequest applies to weekdays without a per-day interval.
type DefaultIntervalRequest struct {
	Interval int    `json:"interval" validate:"min=0"`
	Unit     string `json:"unit" validate:"required,oneof=hours minutes"`
}

type ReplaceAvailabilityRuleRequest struct {
	AvailableDays    []string                 `json:"available_days" validate:"required,min=1,max=7"`
	TimeSchedules    []TimeScheduleRequest    `json:"time_schedules" validate:"dive"`
	ServiceIntervals []ServiceIntervalRequest `json:"service_intervals" validate:"dive"`
	ServiceInterval  *DefaultIntervalRequest  `json:"service_interval,omitempty"`
	MaxDailyServices int                      `json:"max_daily_services" validate:"required,min=1,max=10"`
}

type AddBlockedDateRequest struct {
	BlockedDate string `json:"blocked_date" validate:"required,datetime=2006-01-02"`
	Reason      string `json:"reason" validate:"max=255"`
	IsRecurring bool   `json:"is_recurring"`
}

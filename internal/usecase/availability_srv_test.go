package usecase

import (
	"context"
	"errors"
	"testing"

	"decor-booking/internal/data/entity"
	"decor-booking/internal/dto/request"

	"github.com/google/uuid"
)

func validRuleRequest() *request.ReplaceAvailabilityRuleRequest {
	return &request.ReplaceAvailabilityRuleRequest{
		AvailableDays: []string{"monday", "wednesday", "friday"},
		TimeSchedules: []request.TimeScheduleRequest{
			{Day: "monday", StartTime: "09:00", EndTime: "17:00"},
		},
		ServiceIntervals: []request.ServiceIntervalRequest{
			{Day: "monday", Interval: 2, Unit: "hours"},
			{Day: "friday", Interval: 90, Unit: "minutes"},
		},
		MaxDailyServices: 3,
	}
}

func TestReplaceRuleNormalizesIntervalsToMinutes(t *testing.T) {
	t.Parallel()

	env := newTestEnv()
	id := env.addDecorator()
	svc := NewAvailabilityService(env.repo, testLogger())

	resp, err := svc.ReplaceRule(context.Background(), id.String(), validRuleRequest())
	if err != nil {
		t.Fatalf("ReplaceRule: %v", err)
	}

	stored := env.rules.rules[id]
	if stored == nil {
		t.Fatal("rule was not persisted")
	}
	if got := stored.ServiceIntervals[entity.Monday]; got != 120 {
		t.Errorf("monday interval = %d minutes, want 120 (2 hours)", got)
	}
	if got := stored.ServiceIntervals[entity.Friday]; got != 90 {
		t.Errorf("friday interval = %d minutes, want 90", got)
	}
	if len(stored.TimeWindows) != 1 || stored.TimeWindows[0].Start != 540 || stored.TimeWindows[0].End != 1020 {
		t.Errorf("unexpected stored windows: %+v", stored.TimeWindows)
	}

	// Response renders intervals in minutes only.
	for _, iv := range resp.ServiceIntervals {
		if iv.Unit != "minutes" {
			t.Errorf("response interval unit = %q, want minutes", iv.Unit)
		}
	}
}

func TestReplaceRuleIsFullOverwrite(t *testing.T) {
	t.Parallel()

	env := newTestEnv()
	id := env.addDecorator()
	svc := NewAvailabilityService(env.repo, testLogger())

	if _, err := svc.ReplaceRule(context.Background(), id.String(), validRuleRequest()); err != nil {
		t.Fatalf("ReplaceRule: %v", err)
	}

	second := &request.ReplaceAvailabilityRuleRequest{
		AvailableDays:    []string{"saturday"},
		MaxDailyServices: 1,
	}
	if _, err := svc.ReplaceRule(context.Background(), id.String(), second); err != nil {
		t.Fatalf("ReplaceRule overwrite: %v", err)
	}

	stored := env.rules.rules[id]
	if len(stored.AvailableDays) != 1 || stored.AvailableDays[0] != entity.Saturday {
		t.Errorf("overwrite kept old days: %v", stored.AvailableDays)
	}
	if len(stored.TimeWindows) != 0 || len(stored.ServiceIntervals) != 0 {
		t.Error("overwrite must drop previous windows and intervals, not merge")
	}
}

func TestReplaceRuleValidation(t *testing.T) {
	t.Parallel()

	env := newTestEnv()
	id := env.addDecorator()
	svc := NewAvailabilityService(env.repo, testLogger())

	cases := []struct {
		name   string
		mutate func(*request.ReplaceAvailabilityRuleRequest)
	}{
		{"no available days", func(r *request.ReplaceAvailabilityRuleRequest) {
			r.AvailableDays = nil
		}},
		{"unknown weekday", func(r *request.ReplaceAvailabilityRuleRequest) {
			r.AvailableDays = []string{"funday"}
		}},
		{"window start after end", func(r *request.ReplaceAvailabilityRuleRequest) {
			r.TimeSchedules = []request.TimeScheduleRequest{
				{Day: "monday", StartTime: "17:00", EndTime: "09:00"},
			}
		}},
		{"window start equals end", func(r *request.ReplaceAvailabilityRuleRequest) {
			r.TimeSchedules = []request.TimeScheduleRequest{
				{Day: "monday", StartTime: "09:00", EndTime: "09:00"},
			}
		}},
		{"interval above 24 hours", func(r *request.ReplaceAvailabilityRuleRequest) {
			r.ServiceIntervals = []request.ServiceIntervalRequest{
				{Day: "monday", Interval: 25, Unit: "hours"},
			}
		}},
		{"interval unit unknown", func(r *request.ReplaceAvailabilityRuleRequest) {
			r.ServiceIntervals = []request.ServiceIntervalRequest{
				{Day: "monday", Interval: 30, Unit: "seconds"},
			}
		}},
		{"daily cap zero", func(r *request.ReplaceAvailabilityRuleRequest) {
			r.MaxDailyServices = 0
		}},
		{"daily cap above ten", func(r *request.ReplaceAvailabilityRuleRequest) {
			r.MaxDailyServices = 11
		}},
	}

	for _, tc := range cases {
		req := validRuleRequest()
		tc.mutate(req)
		if _, err := svc.ReplaceRule(context.Background(), id.String(), req); !errors.Is(err, ErrValidation) {
			t.Errorf("%s: expected ErrValidation, got %v", tc.name, err)
		}
	}

	// Nothing was persisted by the failed attempts.
	if env.rules.rules[id] != nil {
		t.Error("failed validation must not write a rule")
	}
}

func TestDeleteRuleReturnsToPermissiveState(t *testing.T) {
	t.Parallel()

	env := newTestEnv()
	id := env.addDecorator()
	svc := NewAvailabilityService(env.repo, testLogger())

	if _, err := svc.ReplaceRule(context.Background(), id.String(), validRuleRequest()); err != nil {
		t.Fatalf("ReplaceRule: %v", err)
	}

	if err := svc.DeleteRule(context.Background(), id.String()); err != nil {
		t.Fatalf("DeleteRule: %v", err)
	}
	if env.rules.rules[id] != nil {
		t.Fatal("rule should be gone after delete")
	}

	// With no rule the engine is permissive again.
	admission := NewAdmissionService(env.repo, testLogger())
	decision, err := admission.Evaluate(context.Background(), id, saturday, mustParseTime(t, "22:00"))
	if err != nil {
		t.Fatalf("Evaluate: %v", err)
	}
	if !decision.Allowed {
		t.Errorf("deleted rule should leave the decorator permissive, got reason %s", decision.Reason)
	}

	// Deleting twice is a not-found, not a silent no-op.
	if err := svc.DeleteRule(context.Background(), id.String()); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound deleting an absent rule, got %v", err)
	}

	if err := svc.DeleteRule(context.Background(), "nope"); !errors.Is(err, ErrValidation) {
		t.Errorf("expected ErrValidation for malformed ID, got %v", err)
	}
}

func TestGetRuleNotFound(t *testing.T) {
	t.Parallel()

	env := newTestEnv()
	id := env.addDecorator()
	svc := NewAvailabilityService(env.repo, testLogger())

	if _, err := svc.GetRule(context.Background(), id.String()); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound for unconfigured decorator, got %v", err)
	}
}

func TestBlockedDateLifecycle(t *testing.T) {
	t.Parallel()

	env := newTestEnv()
	id := env.addDecorator()
	svc := NewAvailabilityService(env.repo, testLogger())

	added, err := svc.AddBlockedDate(context.Background(), id.String(), &request.AddBlockedDateRequest{
		BlockedDate: "2030-12-25",
		Reason:      "holiday",
		IsRecurring: true,
	})
	if err != nil {
		t.Fatalf("AddBlockedDate: %v", err)
	}
	if !added.IsRecurring || added.BlockedDate != "2030-12-25" {
		t.Errorf("unexpected response: %+v", added)
	}

	list, err := svc.ListBlockedDates(context.Background(), id.String())
	if err != nil {
		t.Fatalf("ListBlockedDates: %v", err)
	}
	if len(list) != 1 {
		t.Fatalf("expected 1 blocked date, got %d", len(list))
	}

	if err := svc.RemoveBlockedDate(context.Background(), id.String(), added.ID); err != nil {
		t.Fatalf("RemoveBlockedDate: %v", err)
	}

	list, err = svc.ListBlockedDates(context.Background(), id.String())
	if err != nil {
		t.Fatalf("ListBlockedDates: %v", err)
	}
	if len(list) != 0 {
		t.Errorf("expected empty list after removal, got %d entries", len(list))
	}
}

func TestAddBlockedDatePastRules(t *testing.T) {
	t.Parallel()

	env := newTestEnv()
	id := env.addDecorator()
	svc := NewAvailabilityService(env.repo, testLogger())

	// One-off in the past is pointless and rejected.
	_, err := svc.AddBlockedDate(context.Background(), id.String(), &request.AddBlockedDateRequest{
		BlockedDate: "2020-01-01",
	})
	if !errors.Is(err, ErrValidation) {
		t.Errorf("expected ErrValidation for past one-off date, got %v", err)
	}

	// A recurring entry anchored in the past still applies to future years.
	if _, err := svc.AddBlockedDate(context.Background(), id.String(), &request.AddBlockedDateRequest{
		BlockedDate: "2020-01-01",
		IsRecurring: true,
	}); err != nil {
		t.Errorf("recurring entry with past anchor date should be accepted: %v", err)
	}
}

func TestRemoveBlockedDateIsScopedToOwner(t *testing.T) {
	t.Parallel()

	env := newTestEnv()
	owner := env.addDecorator()
	other := env.addDecorator()
	svc := NewAvailabilityService(env.repo, testLogger())

	added, err := svc.AddBlockedDate(context.Background(), owner.String(), &request.AddBlockedDateRequest{
		BlockedDate: "2030-12-25",
	})
	if err != nil {
		t.Fatalf("AddBlockedDate: %v", err)
	}

	// A different decorator removing the same ID must not touch it.
	if err := svc.RemoveBlockedDate(context.Background(), other.String(), added.ID); err != nil {
		t.Fatalf("RemoveBlockedDate: %v", err)
	}

	list, err := svc.ListBlockedDates(context.Background(), owner.String())
	if err != nil {
		t.Fatalf("ListBlockedDates: %v", err)
	}
	if len(list) != 1 {
		t.Errorf("owner's blocked date was removed by another decorator")
	}
}

func TestAvailabilityRejectsMalformedIDs(t *testing.T) {
	t.Parallel()

	env := newTestEnv()
	svc := NewAvailabilityService(env.repo, testLogger())

	if _, err := svc.GetRule(context.Background(), "nope"); !errors.Is(err, ErrValidation) {
		t.Errorf("GetRule: expected ErrValidation, got %v", err)
	}
	if err := svc.RemoveBlockedDate(context.Background(), uuid.New().String(), "nope"); !errors.Is(err, ErrValidation) {
		t.Errorf("RemoveBlockedDate: expected ErrValidation, got %v", err)
	}
}

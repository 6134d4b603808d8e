package entities

import (
	"errors"
	"testing"
	"time"
)

func TestParseInterventionStatus(t *testing.T) {
	cases := []struct {
		in   string
		want InterventionStatus
		ok   bool
	}{
		{"planned", InterventionStatusPlanned, true},
		{"in_progress", InterventionStatusInProgress, true},
		{"COMPLETED", InterventionStatusCompleted, true},
		{"  cancelled  ", InterventionStatusCancelled, true},
		{"done", "", false},
		{"", "", false},
	}
	for _, tc := range cases {
		got, ok := ParseInterventionStatus(tc.in)
		if ok != tc.ok || got != tc.want {
			t.Fatalf("ParseInterventionStatus(%q) = (%q, %t), want (%q, %t)", tc.in, got, ok, tc.want, tc.ok)
		}
	}
}

func TestInterventionStatus_IsTerminal(t *testing.T) {
	if InterventionStatusPlanned.IsTerminal() || InterventionStatusInProgress.IsTerminal() {
		t.Fatalf("planned/in_progress must not be terminal")
	}
	if !InterventionStatusCompleted.IsTerminal() || !InterventionStatusCancelled.IsTerminal() {
		t.Fatalf("completed/cancelled must be terminal")
	}
}

func TestIntervention_Start(t *testing.T) {
	now := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)

	t.Run("planned starts", func(t *testing.T) {
		i := Intervention{Status: InterventionStatusPlanned}
		if err := i.Start(now); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if i.Status != InterventionStatusInProgress {
			t.Fatalf("expected in_progress, got %s", i.Status)
		}
		if i.StartedAt == nil || !i.StartedAt.Equal(now) {
			t.Fatalf("expected StartedAt = now, got %v", i.StartedAt)
		}
		if !i.UpdatedAt.Equal(now) {
			t.Fatalf("expected UpdatedAt stamped")
		}
	})

	t.Run("rejects non-planned", func(t *testing.T) {
		for _, from := range []InterventionStatus{InterventionStatusInProgress, InterventionStatusCompleted, InterventionStatusCancelled} {
			i := Intervention{Status: from}
			err := i.Start(now)
			var transition *InvalidTransitionError
			if !errors.As(err, &transition) {
				t.Fatalf("from %s: expected InvalidTransitionError, got %v", from, err)
			}
			if transition.From != from || transition.To != InterventionStatusInProgress {
				t.Fatalf("unexpected transition detail: %+v", transition)
			}
		}
	})
}

func TestIntervention_Finish(t *testing.T) {
	now := time.Date(2025, 6, 1, 16, 30, 0, 0, time.UTC)

	t.Run("in_progress finishes with report", func(t *testing.T) {
		i := Intervention{Status: InterventionStatusInProgress}
		if err := i.Finish("replaced the heating element", now); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if i.Status != InterventionStatusCompleted {
			t.Fatalf("expected completed, got %s", i.Status)
		}
		if i.FinishedAt == nil || !i.FinishedAt.Equal(now) {
			t.Fatalf("expected FinishedAt = now, got %v", i.FinishedAt)
		}
		if i.Report != "replaced the heating element" {
			t.Fatalf("report not stored: %q", i.Report)
		}
	})

	t.Run("empty report rejected", func(t *testing.T) {
		i := Intervention{Status: InterventionStatusInProgress}
		if err := i.Finish("   ", now); !errors.Is(err, ErrEmptyReport) {
			t.Fatalf("expected ErrEmptyReport, got %v", err)
		}
		if i.Status != InterventionStatusInProgress {
			t.Fatalf("status must not change on rejection")
		}
	})

	t.Run("finish before start rejected", func(t *testing.T) {
		i := Intervention{Status: InterventionStatusPlanned}
		err := i.Finish("report", now)
		var transition *InvalidTransitionError
		if !errors.As(err, &transition) {
			t.Fatalf("expected InvalidTransitionError, got %v", err)
		}
		if transition.From != InterventionStatusPlanned || transition.To != InterventionStatusCompleted {
			t.Fatalf("unexpected transition detail: %+v", transition)
		}
	})

	t.Run("finish twice rejected", func(t *testing.T) {
		i := Intervention{Status: InterventionStatusInProgress}
		if err := i.Finish("first", now); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		first := *i.FinishedAt
		if err := i.Finish("second", now.Add(time.Hour)); err == nil {
			t.Fatalf("expected error on second finish")
		}
		if !i.FinishedAt.Equal(first) {
			t.Fatalf("FinishedAt must be set exactly once")
		}
	})
}

func TestIntervention_Cancel(t *testing.T) {
	now := time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC)

	t.Run("planned cancels", func(t *testing.T) {
		i := Intervention{Status: InterventionStatusPlanned}
		if err := i.Cancel(now); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if i.Status != InterventionStatusCancelled {
			t.Fatalf("expected cancelled, got %s", i.Status)
		}
	})

	t.Run("in_progress cancels", func(t *testing.T) {
		i := Intervention{Status: InterventionStatusInProgress}
		if err := i.Cancel(now); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if i.Status != InterventionStatusCancelled {
			t.Fatalf("expected cancelled, got %s", i.Status)
		}
	})

	t.Run("terminal rejected", func(t *testing.T) {
		for _, from := range []InterventionStatus{InterventionStatusCompleted, InterventionStatusCancelled} {
			i := Intervention{Status: from}
			err := i.Cancel(now)
			var transition *InvalidTransitionError
			if !errors.As(err, &transition) {
				t.Fatalf("from %s: expected InvalidTransitionError, got %v", from, err)
			}
		}
	})
}

func TestIntervention_ApplyUpdate(t *testing.T) {
	now := time.Date(2025, 6, 3, 11, 0, 0, 0, time.UTC)

	t.Run("merges only provided fields", func(t *testing.T) {
		planned := time.Date(2025, 6, 10, 9, 0, 0, 0, time.UTC)
		i := Intervention{
			Status:              InterventionStatusPlanned,
			TechnicianName:      "Ahmed Ben Ali",
			TechnicianSpecialty: "chauffage",
			Description:         "boiler leak",
			PlannedDate:         planned,
		}
		newDate := planned.Add(48 * time.Hour)
		if err := i.ApplyUpdate(InterventionUpdate{Description: "boiler leak, second visit", PlannedDate: &newDate}, now); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if i.TechnicianName != "Ahmed Ben Ali" || i.TechnicianSpecialty != "chauffage" {
			t.Fatalf("untouched fields must survive the merge: %+v", i)
		}
		if i.Description != "boiler leak, second visit" || !i.PlannedDate.Equal(newDate) {
			t.Fatalf("provided fields not applied: %+v", i)
		}
		if !i.UpdatedAt.Equal(now) {
			t.Fatalf("expected UpdatedAt stamped")
		}
	})

	t.Run("terminal rejected", func(t *testing.T) {
		i := Intervention{Status: InterventionStatusCompleted}
		err := i.ApplyUpdate(InterventionUpdate{Description: "late edit"}, now)
		var transition *InvalidTransitionError
		if !errors.As(err, &transition) {
			t.Fatalf("expected InvalidTransitionError, got %v", err)
		}
	})
}

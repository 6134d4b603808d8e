package roster

import (
	"testing"

	"sav_interventions/internal/domain/entities"
)

func TestStaticRoster_Lookup(t *testing.T) {
	r := NewStaticRoster()

	t.Run("exact name", func(t *testing.T) {
		tech, found := r.Lookup("Ahmed Ben Ali")
		if !found {
			t.Fatalf("expected technician")
		}
		if tech.Specialty != entities.SpecialtyChauffage || tech.HourlyRate != 200 {
			t.Fatalf("unexpected technician: %+v", tech)
		}
	})

	t.Run("case insensitive with padding", func(t *testing.T) {
		tech, found := r.Lookup("  samia khaled  ")
		if !found {
			t.Fatalf("expected technician")
		}
		if tech.Name != "Samia Khaled" {
			t.Fatalf("expected canonical name, got %q", tech.Name)
		}
	})

	t.Run("unknown", func(t *testing.T) {
		if _, found := r.Lookup("Nobody"); found {
			t.Fatalf("expected no technician")
		}
	})
}

func TestStaticRoster_LookupRate(t *testing.T) {
	r := NewStaticRoster()

	rate, found := r.LookupRate("Fatma Jlassi")
	if !found || rate != 160 {
		t.Fatalf("expected 160, got %.2f found=%t", rate, found)
	}
	if _, found := r.LookupRate("Nobody"); found {
		t.Fatalf("expected no rate")
	}
}

func TestStaticRoster_DefaultRate(t *testing.T) {
	t.Run("fallback", func(t *testing.T) {
		r := NewStaticRoster()
		if r.DefaultRate() != fallbackHourlyRate {
			t.Fatalf("expected %d, got %.2f", fallbackHourlyRate, r.DefaultRate())
		}
	})

	t.Run("env override", func(t *testing.T) {
		t.Setenv("DEFAULT_HOURLY_RATE", "175")
		r := NewStaticRoster()
		if r.DefaultRate() != 175 {
			t.Fatalf("expected 175, got %.2f", r.DefaultRate())
		}
	})

	t.Run("invalid env ignored", func(t *testing.T) {
		t.Setenv("DEFAULT_HOURLY_RATE", "cheap")
		r := NewStaticRoster()
		if r.DefaultRate() != fallbackHourlyRate {
			t.Fatalf("expected %d, got %.2f", fallbackHourlyRate, r.DefaultRate())
		}
	})
}

func TestStaticRoster_List(t *testing.T) {
	r := NewStaticRoster()
	items := r.List()
	if len(items) != 4 {
		t.Fatalf("expected 4 technicians, got %d", len(items))
	}

	// Returned slice is a copy; mutating it must not corrupt the roster.
	items[0].HourlyRate = 1
	if tech, _ := r.Lookup("Ahmed Ben Ali"); tech.HourlyRate != 200 {
		t.Fatalf("roster mutated through List copy")
	}
}

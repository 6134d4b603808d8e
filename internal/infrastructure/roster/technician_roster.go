package roster

import (
	"os"
	"strconv"
	"strings"

	"sav_interventions/internal/domain/entities"
	"sav_interventions/internal/usecase/interfaces"
)

// fallbackHourlyRate applies when a billed technician no longer resolves in
// the roster. Overridable via DEFAULT_HOURLY_RATE.
const fallbackHourlyRate = 150

// StaticRoster is the in-memory technician catalog. Read-only and shared; it
// needs no locking and is replaceable by a real table behind the same port.

type StaticRoster struct {
	technicians []entities.Technician
	defaultRate float64
}

var _ interfaces.ITechnicianRoster = (*StaticRoster)(nil)

func NewStaticRoster() *StaticRoster {
	return &StaticRoster{
		technicians: []entities.Technician{
			{Name: "Ahmed Ben Ali", Specialty: entities.SpecialtyChauffage, HourlyRate: 200},
			{Name: "Samia Khaled", Specialty: entities.SpecialtySanitaire, HourlyRate: 180},
			{Name: "Mohamed Trabelsi", Specialty: entities.SpecialtyGeneraliste, HourlyRate: 150},
			{Name: "Fatma Jlassi", Specialty: entities.SpecialtyGeneraliste, HourlyRate: 160},
		},
		defaultRate: defaultRateFromEnv(),
	}
}

// Lookup resolves a technician by name, case-insensitively.
func (r *StaticRoster) Lookup(name string) (entities.Technician, bool) {
	name = strings.TrimSpace(name)
	for _, t := range r.technicians {
		if strings.EqualFold(t.Name, name) {
			return t, true
		}
	}
	return entities.Technician{}, false
}

func (r *StaticRoster) LookupRate(name string) (float64, bool) {
	t, found := r.Lookup(name)
	if !found {
		return 0, false
	}
	return t.HourlyRate, true
}

func (r *StaticRoster) List() []entities.Technician {
	out := make([]entities.Technician, len(r.technicians))
	copy(out, r.technicians)
	return out
}

func (r *StaticRoster) DefaultRate() float64 {
	return r.defaultRate
}

func defaultRateFromEnv() float64 {
	if v := strings.TrimSpace(os.Getenv("DEFAULT_HOURLY_RATE")); v != "" {
		if rate, err := strconv.ParseFloat(v, 64); err == nil && rate > 0 {
			return rate
		}
	}
	return fallbackHourlyRate
}

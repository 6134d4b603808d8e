package interfaces

import "sav_interventions/internal/domain/entities"

// ITechnicianRoster is the read-only technician catalog. The engine only
// resolves names and rates; the roster is refreshable out of band and
// replaceable by a real table without touching the use cases.

type ITechnicianRoster interface {
	Lookup(name string) (entities.Technician, bool)
	LookupRate(name string) (float64, bool)
	List() []entities.Technician
	DefaultRate() float64
}

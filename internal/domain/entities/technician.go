package entities

// Technician specialties carried on the roster and copied onto interventions
// at creation.
const (
	SpecialtyChauffage   = "chauffage"
	SpecialtySanitaire   = "sanitaire"
	SpecialtyGeneraliste = "generaliste"
)

// Technician is one entry of the read-only roster.
type Technician struct {
	Name       string  `json:"name"`
	Specialty  string  `json:"specialty"`
	HourlyRate float64 `json:"hourly_rate"`
}

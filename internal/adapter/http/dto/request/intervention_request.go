package request

import (
	"strings"
	"time"

	"sav_interventions/internal/domain/entities"
	"sav_interventions/internal/usecase"
)

// CreateInterventionRequest is the creation payload posted by the SAV
// responsable. UnderWarranty mirrors the reclamation's warranty computation.
type CreateInterventionRequest struct {
	ReclamationID  string    `json:"reclamation_id" binding:"required"`
	TechnicianName string    `json:"technician_name" binding:"required"`
	PlannedDate    time.Time `json:"planned_date" binding:"required"`
	Description    string    `json:"description" binding:"required"`
	UnderWarranty  *bool     `json:"under_warranty" binding:"required"`
}

func (r CreateInterventionRequest) ToCommand(createdBy string) usecase.CreateInterventionCommand {
	return usecase.CreateInterventionCommand{
		ReclamationID:  strings.TrimSpace(r.ReclamationID),
		TechnicianName: strings.TrimSpace(r.TechnicianName),
		PlannedDate:    r.PlannedDate,
		Description:    strings.TrimSpace(r.Description),
		UnderWarranty:  r.UnderWarranty != nil && *r.UnderWarranty,
		CreatedBy:      createdBy,
	}
}

// UpdateInterventionRequest carries the partial-field merge for non-terminal
// interventions. Absent fields are left untouched.
type UpdateInterventionRequest struct {
	TechnicianName      string     `json:"technician_name"`
	TechnicianSpecialty string     `json:"technician_specialty"`
	PlannedDate         *time.Time `json:"planned_date"`
	Description         string     `json:"description"`
	Report              string     `json:"report"`
}

func (r UpdateInterventionRequest) ToUpdate() entities.InterventionUpdate {
	return entities.InterventionUpdate{
		TechnicianName:      r.TechnicianName,
		TechnicianSpecialty: r.TechnicianSpecialty,
		PlannedDate:         r.PlannedDate,
		Description:         r.Description,
		Report:              r.Report,
	}
}

// FinishInterventionRequest carries the mandatory completion report.
type FinishInterventionRequest struct {
	Report string `json:"report" binding:"required"`
}

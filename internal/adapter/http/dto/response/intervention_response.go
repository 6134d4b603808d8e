package response

import (
	"time"

	"sav_interventions/internal/domain/entities"
)

type InterventionResponse struct {
	ID                  string     `json:"id"`
	Numero              string     `json:"numero"`
	ReclamationID       string     `json:"reclamation_id"`
	TechnicianName      string     `json:"technician_name"`
	TechnicianSpecialty string     `json:"technician_specialty"`
	PlannedDate         time.Time  `json:"planned_date"`
	StartedAt           *time.Time `json:"started_at,omitempty"`
	FinishedAt          *time.Time `json:"finished_at,omitempty"`
	Status              string     `json:"status"`
	Description         string     `json:"description"`
	Report              string     `json:"report,omitempty"`
	UnderWarranty       bool       `json:"under_warranty"`
	LaborCost           *float64   `json:"labor_cost,omitempty"`
	PartsCost           *float64   `json:"parts_cost,omitempty"`
	InvoiceAmount       *float64   `json:"invoice_amount,omitempty"`
	InvoicedAt          *time.Time `json:"invoiced_at,omitempty"`
	InvoicePaid         bool       `json:"invoice_paid"`
	CreatedAt           time.Time  `json:"created_at"`
	UpdatedAt           time.Time  `json:"updated_at"`
	CreatedBy           string     `json:"created_by,omitempty"`
}

func FromIntervention(i entities.Intervention) InterventionResponse {
	return InterventionResponse{
		ID:                  i.ID,
		Numero:              i.Numero,
		ReclamationID:       i.ReclamationID,
		TechnicianName:      i.TechnicianName,
		TechnicianSpecialty: i.TechnicianSpecialty,
		PlannedDate:         i.PlannedDate,
		StartedAt:           i.StartedAt,
		FinishedAt:          i.FinishedAt,
		Status:              string(i.Status),
		Description:         i.Description,
		Report:              i.Report,
		UnderWarranty:       i.UnderWarranty,
		LaborCost:           i.LaborCost,
		PartsCost:           i.PartsCost,
		InvoiceAmount:       i.InvoiceAmount,
		InvoicedAt:          i.InvoicedAt,
		InvoicePaid:         i.InvoicePaid,
		CreatedAt:           i.CreatedAt,
		UpdatedAt:           i.UpdatedAt,
		CreatedBy:           i.CreatedBy,
	}
}

func FromInterventions(items []entities.Intervention) []InterventionResponse {
	out := make([]InterventionResponse, 0, len(items))
	for _, i := range items {
		out = append(out, FromIntervention(i))
	}
	return out
}

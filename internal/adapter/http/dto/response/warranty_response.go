package response

import (
	"time"

	"sav_interventions/internal/domain/entities"
)

type WarrantyResponse struct {
	UnderWarranty bool      `json:"under_warranty"`
	ExpiryDate    time.Time `json:"expiry_date"`
	DaysRemaining int       `json:"days_remaining"`
}

func FromWarrantyStatus(w entities.WarrantyStatus) WarrantyResponse {
	return WarrantyResponse{
		UnderWarranty: w.UnderWarranty,
		ExpiryDate:    w.ExpiryDate,
		DaysRemaining: w.DaysRemaining,
	}
}

type TechnicianResponse struct {
	Name       string  `json:"name"`
	Specialty  string  `json:"specialty"`
	HourlyRate float64 `json:"hourly_rate"`
}

func FromTechnicians(items []entities.Technician) []TechnicianResponse {
	out := make([]TechnicianResponse, 0, len(items))
	for _, t := range items {
		out = append(out, TechnicianResponse{Name: t.Name, Specialty: t.Specialty, HourlyRate: t.HourlyRate})
	}
	return out
}

package entities

import (
	"fmt"
	"strings"
	"time"
)

// InterventionStatus represents the lifecycle of a technician intervention.
//
// Domain notes:
//   - The interventions-service is the source of truth for intervention state.
//   - planned is the only creation status; completed and cancelled are terminal.

type InterventionStatus string

const (
	InterventionStatusPlanned    InterventionStatus = "planned"
	InterventionStatusInProgress InterventionStatus = "in_progress"
	InterventionStatusCompleted  InterventionStatus = "completed"
	InterventionStatusCancelled  InterventionStatus = "cancelled"
)

// ParseInterventionStatus maps a wire string onto the closed status set.
func ParseInterventionStatus(s string) (InterventionStatus, bool) {
	switch InterventionStatus(strings.ToLower(strings.TrimSpace(s))) {
	case InterventionStatusPlanned:
		return InterventionStatusPlanned, true
	case InterventionStatusInProgress:
		return InterventionStatusInProgress, true
	case InterventionStatusCompleted:
		return InterventionStatusCompleted, true
	case InterventionStatusCancelled:
		return InterventionStatusCancelled, true
	}
	return "", false
}

// IsTerminal reports whether no further status mutation is permitted.
func (s InterventionStatus) IsTerminal() bool {
	return s == InterventionStatusCompleted || s == InterventionStatusCancelled
}

// InvalidTransitionError identifies the current and requested status of a
// rejected transition. Callers surface it as a client error (409).
type InvalidTransitionError struct {
	From InterventionStatus
	To   InterventionStatus
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("invalid transition from %s to %s", e.From, e.To)
}

// Intervention is the central entity: a scheduled technician visit addressing
// a reclamation, carrying its warranty flag and (out-of-warranty only) its
// billing fields.
//
// Storage model (DynamoDB):
//   - PK: id
//   - numero is a human-readable reference, INT-<yyyyMMdd>-<3-digit day sequence>.
//
// Billing fields stay unset while UnderWarranty is true.

type Intervention struct {
	ID                  string             `json:"id"`
	Numero              string             `json:"numero"`
	ReclamationID       string             `json:"reclamation_id"`
	TechnicianName      string             `json:"technician_name"`
	TechnicianSpecialty string             `json:"technician_specialty"`
	PlannedDate         time.Time          `json:"planned_date"`
	StartedAt           *time.Time         `json:"started_at,omitempty"`
	FinishedAt          *time.Time         `json:"finished_at,omitempty"`
	Status              InterventionStatus `json:"status"`
	Description         string             `json:"description"`
	Report              string             `json:"report,omitempty"`
	UnderWarranty       bool               `json:"under_warranty"`

	LaborCost     *float64   `json:"labor_cost,omitempty"`
	PartsCost     *float64   `json:"parts_cost,omitempty"`
	InvoiceAmount *float64   `json:"invoice_amount,omitempty"`
	InvoicedAt    *time.Time `json:"invoiced_at,omitempty"`
	InvoicePaid   bool       `json:"invoice_paid"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	CreatedBy string    `json:"created_by,omitempty"`
}

// Start moves a planned intervention to in_progress and stamps StartedAt.
func (i *Intervention) Start(now time.Time) error {
	if i.Status != InterventionStatusPlanned {
		return &InvalidTransitionError{From: i.Status, To: InterventionStatusInProgress}
	}
	i.Status = InterventionStatusInProgress
	i.StartedAt = &now
	i.UpdatedAt = now
	return nil
}

// Finish moves an in_progress intervention to completed. FinishedAt is set
// exactly once, here. The report is mandatory.
func (i *Intervention) Finish(report string, now time.Time) error {
	if i.Status != InterventionStatusInProgress {
		return &InvalidTransitionError{From: i.Status, To: InterventionStatusCompleted}
	}
	if strings.TrimSpace(report) == "" {
		return ErrEmptyReport
	}
	i.Status = InterventionStatusCompleted
	i.FinishedAt = &now
	i.Report = report
	i.UpdatedAt = now
	return nil
}

// Cancel moves any non-terminal intervention to cancelled.
func (i *Intervention) Cancel(now time.Time) error {
	if i.Status.IsTerminal() {
		return &InvalidTransitionError{From: i.Status, To: InterventionStatusCancelled}
	}
	i.Status = InterventionStatusCancelled
	i.UpdatedAt = now
	return nil
}

// InterventionUpdate is the partial-field merge applied by Update. Nil/empty
// fields are left untouched.
type InterventionUpdate struct {
	TechnicianName      string
	TechnicianSpecialty string
	PlannedDate         *time.Time
	Description         string
	Report              string
}

// ApplyUpdate merges mutable attributes onto a non-terminal intervention.
func (i *Intervention) ApplyUpdate(u InterventionUpdate, now time.Time) error {
	if i.Status.IsTerminal() {
		return &InvalidTransitionError{From: i.Status, To: i.Status}
	}
	if v := strings.TrimSpace(u.TechnicianName); v != "" {
		i.TechnicianName = v
	}
	if v := strings.TrimSpace(u.TechnicianSpecialty); v != "" {
		i.TechnicianSpecialty = v
	}
	if u.PlannedDate != nil {
		i.PlannedDate = *u.PlannedDate
	}
	if v := strings.TrimSpace(u.Description); v != "" {
		i.Description = v
	}
	if v := strings.TrimSpace(u.Report); v != "" {
		i.Report = v
	}
	i.UpdatedAt = now
	return nil
}

package interfaces

import (
	"context"
	"errors"
	"time"

	"sav_interventions/internal/domain/entities"
)

// ErrVersionConflict is returned by Update when the stored intervention was
// modified after the caller's snapshot was read.
var ErrVersionConflict = errors.New("intervention was modified concurrently")

// IInterventionRepository abstracts persistence for Intervention.
//
// The interventions-service must be able to:
//   - create an intervention when the SAV responsable schedules one
//   - reload it by id / numero / reclamation / status
//   - persist a mutated snapshot guarded by an optimistic token
//   - allocate the per-day sequence used in numero generation
//
// Update takes the updated_at value the caller observed before mutating;
// implementations reject the write with ErrVersionConflict when the stored
// row moved underneath it. Lost-update races are resolved here, not in the
// engine.

type IInterventionRepository interface {
	Create(ctx context.Context, i entities.Intervention) (entities.Intervention, error)
	GetByID(ctx context.Context, id string) (entities.Intervention, error)
	GetByNumero(ctx context.Context, numero string) (entities.Intervention, error)
	List(ctx context.Context) ([]entities.Intervention, error)
	ListByReclamationID(ctx context.Context, reclamationID string) ([]entities.Intervention, error)
	ListByStatus(ctx context.Context, status entities.InterventionStatus) ([]entities.Intervention, error)
	Update(ctx context.Context, i entities.Intervention, expectedUpdatedAt time.Time) (entities.Intervention, error)
	NextSequence(ctx context.Context, day string) (int, error)
}

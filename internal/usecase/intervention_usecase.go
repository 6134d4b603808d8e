package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"sav_interventions/internal/domain/entities"
	"sav_interventions/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrInterventionNotFound = errors.New("intervention not found")
	ErrInvalidIntervention  = errors.New("invalid intervention id")
	ErrInvalidReclamationID = errors.New("invalid reclamation_id")
	ErrInvalidNumero        = errors.New("invalid numero")
	ErrUnknownTechnician    = errors.New("unknown technician")
	ErrInvalidPlannedDate   = errors.New("planned date must be in the future")
	ErrMissingDescription   = errors.New("description is required")
	ErrInvalidStatusFilter  = errors.New("unknown intervention status")
)

// CreateInterventionCommand carries the creation contract. UnderWarranty is
// fixed here for the lifetime of the intervention (copied from the
// reclamation's warranty computation or asserted by the responsable).
type CreateInterventionCommand struct {
	ReclamationID  string
	TechnicianName string
	PlannedDate    time.Time
	Description    string
	UnderWarranty  bool
	CreatedBy      string
}

// IInterventionUseCase exposes intervention lifecycle operations.
//
// These map onto the SAV workflow:
//   - the responsable schedules an intervention => Create()
//   - the technician starts / completes it => Start() / Finish()
//   - cancellation stays possible until a terminal status => Cancel()

type IInterventionUseCase interface {
	Create(ctx context.Context, cmd CreateInterventionCommand) (entities.Intervention, error)
	Start(ctx context.Context, id string) (entities.Intervention, error)
	Finish(ctx context.Context, id, report string) (entities.Intervention, error)
	Cancel(ctx context.Context, id string) (entities.Intervention, error)
	Update(ctx context.Context, id string, upd entities.InterventionUpdate) (entities.Intervention, error)
	GetByID(ctx context.Context, id string) (entities.Intervention, error)
	GetByNumero(ctx context.Context, numero string) (entities.Intervention, error)
	List(ctx context.Context) ([]entities.Intervention, error)
	ListByReclamationID(ctx context.Context, reclamationID string) ([]entities.Intervention, error)
	ListByStatus(ctx context.Context, status string) ([]entities.Intervention, error)
}

type InterventionUseCase struct {
	repo   interfaces.IInterventionRepository
	roster interfaces.ITechnicianRoster
	now    func() time.Time
}

var _ IInterventionUseCase = (*InterventionUseCase)(nil)

func NewInterventionUseCase(repo interfaces.IInterventionRepository, roster interfaces.ITechnicianRoster) *InterventionUseCase {
	return &InterventionUseCase{repo: repo, roster: roster, now: func() time.Time { return time.Now().UTC() }}
}

func (u *InterventionUseCase) Create(ctx context.Context, cmd CreateInterventionCommand) (entities.Intervention, error) {
	cmd.ReclamationID = strings.TrimSpace(cmd.ReclamationID)
	if cmd.ReclamationID == "" {
		return entities.Intervention{}, ErrInvalidReclamationID
	}
	if strings.TrimSpace(cmd.Description) == "" {
		return entities.Intervention{}, ErrMissingDescription
	}

	tech, found := u.roster.Lookup(cmd.TechnicianName)
	if !found {
		return entities.Intervention{}, ErrUnknownTechnician
	}

	now := u.now()
	// Business rule enforced at the creation boundary, not inside the state machine.
	if !cmd.PlannedDate.After(now) {
		return entities.Intervention{}, ErrInvalidPlannedDate
	}

	numero, err := u.nextNumero(ctx, now)
	if err != nil {
		return entities.Intervention{}, err
	}

	i := entities.Intervention{
		ID:                  uuid.NewString(),
		Numero:              numero,
		ReclamationID:       cmd.ReclamationID,
		TechnicianName:      tech.Name,
		TechnicianSpecialty: tech.Specialty,
		PlannedDate:         cmd.PlannedDate,
		Status:              entities.InterventionStatusPlanned,
		Description:         cmd.Description,
		UnderWarranty:       cmd.UnderWarranty,
		CreatedAt:           now,
		UpdatedAt:           now,
		CreatedBy:           strings.TrimSpace(cmd.CreatedBy),
	}

	created, err := u.repo.Create(ctx, i)
	if err != nil {
		return entities.Intervention{}, err
	}
	log.Printf("[intervention][usecase] created numero=%s reclamation_id=%s technician=%s under_warranty=%t",
		created.Numero, created.ReclamationID, created.TechnicianName, created.UnderWarranty)
	return created, nil
}

func (u *InterventionUseCase) nextNumero(ctx context.Context, now time.Time) (string, error) {
	day := now.Format("20060102")
	seq, err := u.repo.NextSequence(ctx, day)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("INT-%s-%03d", day, seq), nil
}

func (u *InterventionUseCase) Start(ctx context.Context, id string) (entities.Intervention, error) {
	return u.transition(ctx, id, "start", func(i *entities.Intervention, now time.Time) error {
		return i.Start(now)
	})
}

func (u *InterventionUseCase) Finish(ctx context.Context, id, report string) (entities.Intervention, error) {
	return u.transition(ctx, id, "finish", func(i *entities.Intervention, now time.Time) error {
		return i.Finish(report, now)
	})
}

func (u *InterventionUseCase) Cancel(ctx context.Context, id string) (entities.Intervention, error) {
	return u.transition(ctx, id, "cancel", func(i *entities.Intervention, now time.Time) error {
		return i.Cancel(now)
	})
}

func (u *InterventionUseCase) Update(ctx context.Context, id string, upd entities.InterventionUpdate) (entities.Intervention, error) {
	if name := strings.TrimSpace(upd.TechnicianName); name != "" {
		tech, found := u.roster.Lookup(name)
		if !found {
			return entities.Intervention{}, ErrUnknownTechnician
		}
		upd.TechnicianName = tech.Name
		if strings.TrimSpace(upd.TechnicianSpecialty) == "" {
			upd.TechnicianSpecialty = tech.Specialty
		}
	}
	return u.transition(ctx, id, "update", func(i *entities.Intervention, now time.Time) error {
		return i.ApplyUpdate(upd, now)
	})
}

// transition loads a snapshot, applies a state-machine mutation and persists
// it guarded by the updated_at the snapshot was read with.
func (u *InterventionUseCase) transition(
	ctx context.Context,
	id string,
	op string,
	apply func(i *entities.Intervention, now time.Time) error,
) (entities.Intervention, error) {
	i, err := u.load(ctx, id)
	if err != nil {
		return entities.Intervention{}, err
	}

	observedUpdatedAt := i.UpdatedAt
	if err := apply(&i, u.now()); err != nil {
		return entities.Intervention{}, err
	}

	updated, err := u.repo.Update(ctx, i, observedUpdatedAt)
	if err != nil {
		return entities.Intervention{}, err
	}
	if updated.ID == "" {
		// The row vanished between load and write.
		return entities.Intervention{}, ErrInterventionNotFound
	}
	log.Printf("[intervention][usecase] %s numero=%s status=%s", op, updated.Numero, updated.Status)
	return updated, nil
}

func (u *InterventionUseCase) load(ctx context.Context, id string) (entities.Intervention, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Intervention{}, ErrInvalidIntervention
	}
	i, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Intervention{}, err
	}
	if i.ID == "" {
		return entities.Intervention{}, ErrInterventionNotFound
	}
	return i, nil
}

func (u *InterventionUseCase) GetByID(ctx context.Context, id string) (entities.Intervention, error) {
	return u.load(ctx, id)
}

func (u *InterventionUseCase) GetByNumero(ctx context.Context, numero string) (entities.Intervention, error) {
	numero = strings.TrimSpace(numero)
	if numero == "" {
		return entities.Intervention{}, ErrInvalidNumero
	}
	i, err := u.repo.GetByNumero(ctx, numero)
	if err != nil {
		return entities.Intervention{}, err
	}
	if i.ID == "" {
		return entities.Intervention{}, ErrInterventionNotFound
	}
	return i, nil
}

func (u *InterventionUseCase) List(ctx context.Context) ([]entities.Intervention, error) {
	return u.repo.List(ctx)
}

func (u *InterventionUseCase) ListByReclamationID(ctx context.Context, reclamationID string) ([]entities.Intervention, error) {
	reclamationID = strings.TrimSpace(reclamationID)
	if reclamationID == "" {
		return nil, ErrInvalidReclamationID
	}
	return u.repo.ListByReclamationID(ctx, reclamationID)
}

func (u *InterventionUseCase) ListByStatus(ctx context.Context, status string) ([]entities.Intervention, error) {
	parsed, ok := entities.ParseInterventionStatus(status)
	if !ok {
		return nil, ErrInvalidStatusFilter
	}
	return u.repo.ListByStatus(ctx, parsed)
}

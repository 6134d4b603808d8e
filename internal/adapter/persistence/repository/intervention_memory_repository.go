package repository

import (
	"context"
	"sync"
	"time"

	"sav_interventions/internal/domain/entities"
	"sav_interventions/internal/usecase/interfaces"
)

// InterventionMemoryRepository keeps interventions in process memory. It
// satisfies the same contract as the DynamoDB implementation, so the engine
// can run without infrastructure (local development, tests).

type InterventionMemoryRepository struct {
	mu       sync.RWMutex
	items    map[string]entities.Intervention
	counters map[string]int
}

var _ interfaces.IInterventionRepository = (*InterventionMemoryRepository)(nil)

func NewInterventionMemoryRepository() *InterventionMemoryRepository {
	return &InterventionMemoryRepository{
		items:    make(map[string]entities.Intervention),
		counters: make(map[string]int),
	}
}

func (r *InterventionMemoryRepository) Create(_ context.Context, i entities.Intervention) (entities.Intervention, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.items[i.ID]; exists {
		return entities.Intervention{}, interfaces.ErrVersionConflict
	}
	r.items[i.ID] = i
	return i, nil
}

func (r *InterventionMemoryRepository) GetByID(_ context.Context, id string) (entities.Intervention, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.items[id], nil
}

func (r *InterventionMemoryRepository) GetByNumero(_ context.Context, numero string) (entities.Intervention, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, i := range r.items {
		if i.Numero == numero {
			return i, nil
		}
	}
	return entities.Intervention{}, nil
}

func (r *InterventionMemoryRepository) List(_ context.Context) ([]entities.Intervention, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.collect(func(entities.Intervention) bool { return true }), nil
}

func (r *InterventionMemoryRepository) ListByReclamationID(_ context.Context, reclamationID string) ([]entities.Intervention, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.collect(func(i entities.Intervention) bool { return i.ReclamationID == reclamationID }), nil
}

func (r *InterventionMemoryRepository) ListByStatus(_ context.Context, status entities.InterventionStatus) ([]entities.Intervention, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.collect(func(i entities.Intervention) bool { return i.Status == status }), nil
}

func (r *InterventionMemoryRepository) Update(_ context.Context, i entities.Intervention, expectedUpdatedAt time.Time) (entities.Intervention, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	current, exists := r.items[i.ID]
	if !exists {
		return entities.Intervention{}, nil
	}
	if !current.UpdatedAt.Equal(expectedUpdatedAt) {
		return entities.Intervention{}, interfaces.ErrVersionConflict
	}
	r.items[i.ID] = i
	return i, nil
}

func (r *InterventionMemoryRepository) NextSequence(_ context.Context, day string) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.counters[day]++
	return r.counters[day], nil
}

func (r *InterventionMemoryRepository) collect(keep func(entities.Intervention) bool) []entities.Intervention {
	out := make([]entities.Intervention, 0, len(r.items))
	for _, i := range r.items {
		if keep(i) {
			out = append(out, i)
		}
	}
	sortByPlannedDateDesc(out)
	return out
}

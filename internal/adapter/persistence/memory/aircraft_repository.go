// Package memory keeps every aggregate in process memory. It backs the
// "memory" storage driver and the usecase scenario tests.
package memory

import (
	"aerocode/internal/domain/entities"
	"aerocode/internal/usecase/interfaces"
	"context"
	"sort"
	"sync"
)

type AircraftRepository struct {
	mu    sync.RWMutex
	items map[string]entities.Aircraft
}

var _ interfaces.IAircraftRepository = (*AircraftRepository)(nil)

func NewAircraftRepository() *AircraftRepository {
	return &AircraftRepository{items: make(map[string]entities.Aircraft)}
}

func (r *AircraftRepository) Create(ctx context.Context, a entities.Aircraft) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.items[a.Code]; exists {
		return false, nil
	}
	r.items[a.Code] = a.Clone()
	return true, nil
}

func (r *AircraftRepository) GetByCode(ctx context.Context, code string) (entities.Aircraft, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	a, ok := r.items[code]
	if !ok {
		return entities.Aircraft{}, nil
	}
	return a.Clone(), nil
}

// List returns aircraft in registration order.
func (r *AircraftRepository) List(ctx context.Context) ([]entities.Aircraft, error) {
	r.mu.RLock()
	out := make([]entities.Aircraft, 0, len(r.items))
	for _, a := range r.items {
		out = append(out, a.Clone())
	}
	r.mu.RUnlock()

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].Code < out[j].Code
		}
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out, nil
}

// Save overwrites an existing aircraft; a missing codigo yields a zero value.
func (r *AircraftRepository) Save(ctx context.Context, a entities.Aircraft) (entities.Aircraft, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[a.Code]; !ok {
		return entities.Aircraft{}, nil
	}
	r.items[a.Code] = a.Clone()
	return a.Clone(), nil
}

func (r *AircraftRepository) Delete(ctx context.Context, code string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[code]; !ok {
		return false, nil
	}
	delete(r.items, code)
	return true, nil
}

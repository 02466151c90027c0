package memory

import (
	"aerocode/internal/domain/entities"
	"aerocode/internal/usecase/interfaces"
	"context"
	"errors"
	"sync"
)

var ErrEmployeeConflict = errors.New("memory: employee id already taken")

type EmployeeRepository struct {
	mu    sync.RWMutex
	byID  map[string]entities.Employee
	order []string
}

var _ interfaces.IEmployeeRepository = (*EmployeeRepository)(nil)

func NewEmployeeRepository() *EmployeeRepository {
	return &EmployeeRepository{byID: make(map[string]entities.Employee)}
}

func (r *EmployeeRepository) Create(ctx context.Context, e entities.Employee) (entities.Employee, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byID[e.ID]; ok {
		return entities.Employee{}, ErrEmployeeConflict
	}
	if _, ok := r.findByUsername(e.Username); ok {
		return entities.Employee{}, interfaces.ErrUsernameTaken
	}
	r.byID[e.ID] = e
	r.order = append(r.order, e.ID)
	return e, nil
}

func (r *EmployeeRepository) GetByID(ctx context.Context, id string) (entities.Employee, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.byID[id], nil
}

func (r *EmployeeRepository) GetByUsername(ctx context.Context, username string) (entities.Employee, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	e, _ := r.findByUsername(username)
	return e, nil
}

func (r *EmployeeRepository) findByUsername(username string) (entities.Employee, bool) {
	for _, e := range r.byID {
		if e.Username == username {
			return e, true
		}
	}
	return entities.Employee{}, false
}

// List returns employees in creation order.
func (r *EmployeeRepository) List(ctx context.Context) ([]entities.Employee, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]entities.Employee, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.byID[id])
	}
	return out, nil
}

func (r *EmployeeRepository) Update(ctx context.Context, e entities.Employee) (entities.Employee, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byID[e.ID]; !ok {
		return entities.Employee{}, nil
	}
	if other, ok := r.findByUsername(e.Username); ok && other.ID != e.ID {
		return entities.Employee{}, interfaces.ErrUsernameTaken
	}
	r.byID[e.ID] = e
	return e, nil
}

func (r *EmployeeRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byID[id]; !ok {
		return nil
	}
	delete(r.byID, id)
	for i, v := range r.order {
		if v == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}

func (r *EmployeeRepository) CountByLevel(ctx context.Context, level entities.PermissionLevel, exclude ...string) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	skip := make(map[string]struct{}, len(exclude))
	for _, id := range exclude {
		skip[id] = struct{}{}
	}
	n := 0
	for id, e := range r.byID {
		if _, ok := skip[id]; ok {
			continue
		}
		if e.PermissionLevel == level {
			n++
		}
	}
	return n, nil
}


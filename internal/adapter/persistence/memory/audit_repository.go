package memory

import (
	"aerocode/internal/domain/entities"
	"aerocode/internal/usecase/interfaces"
	"context"
	"sync"
)

type AuditRepository struct {
	mu      sync.RWMutex
	records []entities.AuditRecord
}

var _ interfaces.IAuditRepository = (*AuditRepository)(nil)

func NewAuditRepository() *AuditRepository {
	return &AuditRepository{}
}

func (r *AuditRepository) Append(ctx context.Context, rec entities.AuditRecord) error {
	r.mu.Lock()
	r.records = append(r.records, rec)
	r.mu.Unlock()
	return nil
}

// List returns matching records oldest first.
func (r *AuditRepository) List(ctx context.Context, filter entities.AuditFilter) ([]entities.AuditRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]entities.AuditRecord, 0, len(r.records))
	for _, rec := range r.records {
		if filter.Match(rec) {
			out = append(out, rec)
		}
	}
	return out, nil
}

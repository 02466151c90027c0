package interfaces

import (
	"aerocode/internal/domain/entities"
	"context"
)

// IAuditRepository is append-only: there is no update or delete.
type IAuditRepository interface {
	Append(ctx context.Context, r entities.AuditRecord) error
	List(ctx context.Context, filter entities.AuditFilter) ([]entities.AuditRecord, error)
}

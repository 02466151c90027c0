package interfaces

import (
	"aerocode/internal/domain/entities"
	"context"
)

// IAircraftRepository persists whole Aircraft aggregates (nested parts, stages
// and tests included).
//
// Lookups that miss return a zero Aircraft (empty Code) and a nil error.
// Create reports a duplicate codigo through ok=false so callers can map it to
// their own error.
type IAircraftRepository interface {
	Create(ctx context.Context, a entities.Aircraft) (created bool, err error)
	GetByCode(ctx context.Context, code string) (entities.Aircraft, error)
	List(ctx context.Context) ([]entities.Aircraft, error)
	Save(ctx context.Context, a entities.Aircraft) (entities.Aircraft, error)
	Delete(ctx context.Context, code string) (deleted bool, err error)
}

package interfaces

import (
	"aerocode/internal/domain/entities"
	"context"
	"errors"
)

// ErrUsernameTaken is returned by Create and Update when another account
// already holds the usuario.
var ErrUsernameTaken = errors.New("usuario already taken")

// IEmployeeRepository abstracts account persistence.
//
// Misses return a zero Employee (empty ID) and a nil error, like the other
// repositories.
type IEmployeeRepository interface {
	Create(ctx context.Context, e entities.Employee) (entities.Employee, error)
	GetByID(ctx context.Context, id string) (entities.Employee, error)
	GetByUsername(ctx context.Context, username string) (entities.Employee, error)
	List(ctx context.Context) ([]entities.Employee, error)
	Update(ctx context.Context, e entities.Employee) (entities.Employee, error)
	Delete(ctx context.Context, id string) error
	// CountByLevel counts accounts at level, skipping the ids in exclude.
	CountByLevel(ctx context.Context, level entities.PermissionLevel, exclude ...string) (int, error)
}

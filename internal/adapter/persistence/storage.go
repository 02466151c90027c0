// Package persistence picks the repository implementation for the configured
// storage driver.
package persistence

import (
	"context"
	"fmt"

	"aerocode/internal/adapter/persistence/memory"
	"aerocode/internal/adapter/persistence/repository"
	"aerocode/internal/config"
	"aerocode/internal/infrastructure/database"
	"aerocode/internal/usecase/interfaces"
)

type Repositories struct {
	Aircraft  interfaces.IAircraftRepository
	Employees interfaces.IEmployeeRepository
	Audit     interfaces.IAuditRepository
}

func Open(ctx context.Context, cfg *config.Config) (Repositories, error) {
	switch cfg.Storage.Driver {
	case config.StorageMemory:
		return Repositories{
			Aircraft:  memory.NewAircraftRepository(),
			Employees: memory.NewEmployeeRepository(),
			Audit:     memory.NewAuditRepository(),
		}, nil
	case config.StorageDynamoDB:
		ddb, err := database.ConnectDynamoDB(ctx, cfg.AWS, cfg.DynamoDB)
		if err != nil {
			return Repositories{}, err
		}
		return Repositories{
			Aircraft:  repository.NewAircraftDynamoRepository(ddb, cfg.DynamoDB.AircraftTable),
			Employees: repository.NewEmployeeDynamoRepository(ddb, cfg.DynamoDB.EmployeesTable),
			Audit:     repository.NewAuditDynamoRepository(ddb, cfg.DynamoDB.AuditTable),
		}, nil
	default:
		return Repositories{}, fmt.Errorf("unknown storage driver %q", cfg.Storage.Driver)
	}
}

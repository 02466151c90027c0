package usecase

import (
	"aerocode/internal/adapter/persistence/memory"
	"aerocode/internal/domain/entities"
	"aerocode/internal/domain/policy"
	"aerocode/internal/usecase/interfaces"
	"context"
	"testing"
)

// fixture wires the real usecases over the in-memory repositories.
type fixture struct {
	ctx        context.Context
	aircraft   *memory.AircraftRepository
	employees  *memory.EmployeeRepository
	auditRepo  *memory.AuditRepository
	audit      *AuditUseCase
	identity   *IdentityUseCase
	production *ProductionUseCase

	admin    entities.Employee
	engineer entities.Employee
	operator entities.Employee
}

func newFixture(t *testing.T, renderer interfaces.IReportRenderer) *fixture {
	t.Helper()
	enforcer, err := policy.New()
	if err != nil {
		t.Fatalf("unexpected policy error: %v", err)
	}
	f := &fixture{
		ctx:       context.Background(),
		aircraft:  memory.NewAircraftRepository(),
		employees: memory.NewEmployeeRepository(),
		auditRepo: memory.NewAuditRepository(),
	}
	f.audit = NewAuditUseCase(f.auditRepo, enforcer, nil)
	f.identity = NewIdentityUseCase(f.employees, f.audit, enforcer, nil)
	f.production = NewProductionUseCase(f.aircraft, f.employees, f.audit, enforcer, renderer, nil)

	f.admin = f.seed(t, entities.Employee{ID: "adm", Name: "Ana", Username: "ana", Password: "x", PermissionLevel: entities.PermissionAdmin})
	f.engineer = f.seed(t, entities.Employee{ID: "eng", Name: "Edu", Username: "edu", Password: "x", PermissionLevel: entities.PermissionEngineer})
	f.operator = f.seed(t, entities.Employee{ID: "op", Name: "Olga", Username: "olga", Password: "x", PermissionLevel: entities.PermissionOperator})
	return f
}

// seed stores an employee without going through the audited path.
func (f *fixture) seed(t *testing.T, e entities.Employee) entities.Employee {
	t.Helper()
	created, err := f.employees.Create(f.ctx, e)
	if err != nil {
		t.Fatalf("unexpected seed error: %v", err)
	}
	return created
}

func (f *fixture) records(t *testing.T, action entities.AuditAction) []entities.AuditRecord {
	t.Helper()
	recs, err := f.auditRepo.List(f.ctx, entities.AuditFilter{Action: action})
	if err != nil {
		t.Fatalf("unexpected audit error: %v", err)
	}
	return recs
}

func (f *fixture) allRecords(t *testing.T) []entities.AuditRecord {
	return f.records(t, "")
}

func (f *fixture) newAircraft(t *testing.T, code string) entities.Aircraft {
	t.Helper()
	a, err := f.production.RegisterAircraft(f.ctx, f.engineer, entities.Aircraft{
		Code:     code,
		Model:    "E195",
		Type:     entities.AircraftTypeCommercial,
		Capacity: 120,
		RangeKm:  4000,
	})
	if err != nil {
		t.Fatalf("unexpected register error: %v", err)
	}
	return a
}

func (f *fixture) addStages(t *testing.T, code string, names ...string) {
	t.Helper()
	for _, n := range names {
		if _, err := f.production.AddStage(f.ctx, f.engineer, code, entities.Stage{Name: n, DeadlineDays: 10}); err != nil {
			t.Fatalf("unexpected add stage error: %v", err)
		}
	}
}

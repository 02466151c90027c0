package usecase

import (
	"context"
	"errors"
	"testing"

	"aerocode/internal/adapter/persistence/memory"
	"aerocode/internal/domain/entities"
	"aerocode/internal/domain/policy"
	mock_interfaces "aerocode/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestAuditUseCase_Record(t *testing.T) {
	t.Run("stamps id and time and runs hooks", func(t *testing.T) {
		repo := memory.NewAuditRepository()
		var seen []entities.AuditAction
		uc := NewAuditUseCase(repo, nil, nil).OnRecord(func(r entities.AuditRecord) {
			seen = append(seen, r.Action)
		})

		r, err := uc.Record(context.Background(), entities.AuditRegister, "system", "u1", "op1", entities.PermissionOperator)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if r.ID == "" || r.CreatedAt.IsZero() {
			t.Fatalf("expected id and timestamp, got %+v", r)
		}
		if len(seen) != 1 || seen[0] != entities.AuditRegister {
			t.Fatalf("expected hook call, got %v", seen)
		}
	})

	t.Run("append error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIAuditRepository(ctrl)
		called := false
		uc := NewAuditUseCase(repo, nil, nil).OnRecord(func(entities.AuditRecord) { called = true })

		repo.EXPECT().Append(gomock.Any(), gomock.Any()).Return(errors.New("db"))

		_, err := uc.Record(context.Background(), entities.AuditDelete, "a", "b", "c", entities.PermissionAdmin)
		if !errors.Is(err, ErrAuditAppend) {
			t.Fatalf("expected ErrAuditAppend, got %v", err)
		}
		if called {
			t.Fatalf("expected hook not to run on failure")
		}
	})
}

func TestAuditUseCase_List(t *testing.T) {
	enforcer, err := policy.New()
	if err != nil {
		t.Fatalf("unexpected policy error: %v", err)
	}
	repo := memory.NewAuditRepository()
	uc := NewAuditUseCase(repo, enforcer, nil)
	ctx := context.Background()
	_, _ = uc.Record(ctx, entities.AuditAircraftCreate, "eng", "AC1", "edu", entities.PermissionEngineer)
	_, _ = uc.Record(ctx, entities.AuditAircraftDelete.Denied(), "eng", "AC1", "edu", entities.PermissionEngineer)

	t.Run("admin filters", func(t *testing.T) {
		admin := entities.Employee{ID: "adm", PermissionLevel: entities.PermissionAdmin}
		recs, err := uc.List(ctx, admin, entities.AuditFilter{Action: entities.AuditAircraftDelete.Denied()})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(recs) != 1 || recs[0].TargetID != "AC1" {
			t.Fatalf("unexpected records: %+v", recs)
		}
	})

	t.Run("engineer denied", func(t *testing.T) {
		eng := entities.Employee{ID: "eng", PermissionLevel: entities.PermissionEngineer}
		if _, err := uc.List(ctx, eng, entities.AuditFilter{}); !errors.Is(err, ErrPermissionDenied) {
			t.Fatalf("expected ErrPermissionDenied, got %v", err)
		}
		all, _ := repo.List(ctx, entities.AuditFilter{})
		if len(all) != 2 {
			t.Fatalf("expected listing not to be audited, got %d records", len(all))
		}
	})
}

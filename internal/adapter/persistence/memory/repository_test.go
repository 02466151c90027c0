package memory

import (
	"aerocode/internal/domain/entities"
	"aerocode/internal/usecase/interfaces"
	"context"
	"errors"
	"testing"
	"time"
)

func TestAircraftRepository(t *testing.T) {
	ctx := context.Background()

	t.Run("create rejects duplicate codigo", func(t *testing.T) {
		r := NewAircraftRepository()
		ok, err := r.Create(ctx, entities.Aircraft{Code: "A1"})
		if err != nil || !ok {
			t.Fatalf("expected created, got %v %v", ok, err)
		}
		ok, err = r.Create(ctx, entities.Aircraft{Code: "A1"})
		if err != nil || ok {
			t.Fatalf("expected duplicate to be refused, got %v %v", ok, err)
		}
	})

	t.Run("reads are isolated from the stored copy", func(t *testing.T) {
		r := NewAircraftRepository()
		_, _ = r.Create(ctx, entities.Aircraft{Code: "A1", Parts: []entities.Part{{ID: "p1", Name: "Asa"}}})

		got, _ := r.GetByCode(ctx, "A1")
		got.Parts[0].Name = "changed"

		again, _ := r.GetByCode(ctx, "A1")
		if again.Parts[0].Name != "Asa" {
			t.Fatalf("expected stored part untouched, got %q", again.Parts[0].Name)
		}
	})

	t.Run("miss returns zero value", func(t *testing.T) {
		r := NewAircraftRepository()
		got, err := r.GetByCode(ctx, "nope")
		if err != nil || got.Code != "" {
			t.Fatalf("expected zero aircraft, got %+v %v", got, err)
		}
		saved, err := r.Save(ctx, entities.Aircraft{Code: "nope"})
		if err != nil || saved.Code != "" {
			t.Fatalf("expected zero aircraft on save, got %+v %v", saved, err)
		}
		deleted, err := r.Delete(ctx, "nope")
		if err != nil || deleted {
			t.Fatalf("expected nothing deleted, got %v %v", deleted, err)
		}
	})

	t.Run("list is ordered by creation", func(t *testing.T) {
		r := NewAircraftRepository()
		base := time.Now()
		_, _ = r.Create(ctx, entities.Aircraft{Code: "B", CreatedAt: base.Add(time.Second)})
		_, _ = r.Create(ctx, entities.Aircraft{Code: "A", CreatedAt: base})

		list, _ := r.List(ctx)
		if len(list) != 2 || list[0].Code != "A" || list[1].Code != "B" {
			t.Fatalf("expected [A B], got %+v", list)
		}
	})
}

func TestEmployeeRepository(t *testing.T) {
	ctx := context.Background()
	r := NewEmployeeRepository()

	_, _ = r.Create(ctx, entities.Employee{ID: "1", Username: "ana", PermissionLevel: entities.PermissionAdmin})
	_, _ = r.Create(ctx, entities.Employee{ID: "2", Username: "bia", PermissionLevel: entities.PermissionAdmin})
	_, _ = r.Create(ctx, entities.Employee{ID: "3", Username: "caio", PermissionLevel: entities.PermissionOperator})

	t.Run("conflicts on usuario", func(t *testing.T) {
		_, err := r.Create(ctx, entities.Employee{ID: "4", Username: "ana"})
		if !errors.Is(err, interfaces.ErrUsernameTaken) {
			t.Fatalf("expected ErrUsernameTaken, got %v", err)
		}
		_, err = r.Update(ctx, entities.Employee{ID: "2", Username: "ana"})
		if !errors.Is(err, interfaces.ErrUsernameTaken) {
			t.Fatalf("expected ErrUsernameTaken on update, got %v", err)
		}
	})

	t.Run("conflicts on id", func(t *testing.T) {
		_, err := r.Create(ctx, entities.Employee{ID: "1", Username: "outra"})
		if !errors.Is(err, ErrEmployeeConflict) {
			t.Fatalf("expected ErrEmployeeConflict, got %v", err)
		}
	})

	t.Run("count excludes ids", func(t *testing.T) {
		n, _ := r.CountByLevel(ctx, entities.PermissionAdmin, "1")
		if n != 1 {
			t.Fatalf("expected 1, got %d", n)
		}
	})

	t.Run("lookup by usuario", func(t *testing.T) {
		e, _ := r.GetByUsername(ctx, "caio")
		if e.ID != "3" {
			t.Fatalf("expected id 3, got %q", e.ID)
		}
	})

	t.Run("delete keeps order of the rest", func(t *testing.T) {
		_ = r.Delete(ctx, "2")
		list, _ := r.List(ctx)
		if len(list) != 2 || list[0].ID != "1" || list[1].ID != "3" {
			t.Fatalf("expected [1 3], got %+v", list)
		}
	})
}

func TestAuditRepositoryFilter(t *testing.T) {
	ctx := context.Background()
	r := NewAuditRepository()
	_ = r.Append(ctx, entities.AuditRecord{ID: "1", Action: entities.AuditRegister, ActorID: "system"})
	_ = r.Append(ctx, entities.AuditRecord{ID: "2", Action: entities.AuditRegister.Denied(), ActorID: "eng"})

	got, _ := r.List(ctx, entities.AuditFilter{ActorID: "eng"})
	if len(got) != 1 || got[0].ID != "2" {
		t.Fatalf("expected record 2, got %+v", got)
	}
	all, _ := r.List(ctx, entities.AuditFilter{})
	if len(all) != 2 {
		t.Fatalf("expected 2 records, got %d", len(all))
	}
}

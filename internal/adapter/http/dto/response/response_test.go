package response

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"aerocode/internal/domain/entities"
)

func TestFromAircraft(t *testing.T) {
	now := time.Now().UTC()
	a := entities.Aircraft{
		Code: "PR-1", Model: "E195", Type: entities.AircraftTypeCommercial, Capacity: 120, RangeKm: 4000,
		Parts: []entities.Part{{ID: "p0", Name: "Asa"}, {ID: "p1", Name: "Trem"}},
		Stages: []entities.Stage{
			{ID: "s0", Name: "Montagem", Order: 0, Status: entities.StageStatusCompleted, EmployeeIDs: []string{"eng"}},
			{ID: "s1", Name: "Pintura", Order: 1, Status: entities.StageStatusPending},
		},
		Tests:     []entities.Test{{ID: "t0", Type: entities.TestTypeElectrical, Result: entities.TestResultPassed}},
		CreatedAt: now,
		UpdatedAt: now,
	}

	res := FromAircraft(a)
	if res.Codigo != "PR-1" || res.Tipo != "COMMERCIAL" || res.Capacidade != 120 || res.AlcanceKm != 4000 {
		t.Fatalf("unexpected scalar fields: %+v", res)
	}
	if len(res.Pecas) != 2 || res.Pecas[1].Index != 1 || res.Pecas[1].Nome != "Trem" {
		t.Fatalf("unexpected parts: %+v", res.Pecas)
	}
	if res.Etapas[1].Ordem != 1 || res.Etapas[1].Funcionarios == nil {
		t.Fatalf("expected non-nil assignee list, got %+v", res.Etapas[1])
	}
	if res.Testes[0].Resultado != "PASSED" {
		t.Fatalf("unexpected tests: %+v", res.Testes)
	}
	if !res.CreatedAt.Equal(now) {
		t.Fatalf("unexpected dates: %+v", res)
	}
}

func TestFromEmployeeOmitsPassword(t *testing.T) {
	e := entities.Employee{ID: "u1", Name: "Edu", Username: "edu", Password: "secret", PermissionLevel: entities.PermissionEngineer}
	raw, err := json.Marshal(FromEmployees([]entities.Employee{e}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.Contains(string(raw), "secret") || strings.Contains(string(raw), "senha") {
		t.Fatalf("password leaked: %s", raw)
	}

	login := NewLoginResponse("tok", time.Now(), e)
	if login.SessionID != "tok" || login.User.Usuario != "edu" {
		t.Fatalf("unexpected login response: %+v", login)
	}
}

func TestFromAuditRecords(t *testing.T) {
	res := FromAuditRecords([]entities.AuditRecord{{ID: "r1", Action: entities.AuditDelete.Denied(), ActorID: "eng", Level: entities.PermissionEngineer}})
	if len(res) != 1 || res[0].Action != "DELETE_DENIED" || res[0].Nivel != "ENGINEER" {
		t.Fatalf("unexpected records: %+v", res)
	}
	if empty := FromAuditRecords(nil); empty == nil || len(empty) != 0 {
		t.Fatalf("expected empty non-nil slice")
	}
}

package response

import (
	"time"

	"aerocode/internal/domain/entities"
)

type PartResponse struct {
	Index      int    `json:"idx"`
	ID         string `json:"id"`
	Nome       string `json:"nome"`
	Tipo       string `json:"tipo"`
	Fornecedor string `json:"fornecedor"`
	Status     string `json:"status"`
}

type StageResponse struct {
	Index        int      `json:"idx"`
	ID           string   `json:"id"`
	Nome         string   `json:"nome"`
	PrazoDias    int      `json:"prazoDias"`
	Status       string   `json:"status"`
	Ordem        int      `json:"ordem"`
	Funcionarios []string `json:"funcionarios"`
}

type TestResponse struct {
	Index     int       `json:"idx"`
	ID        string    `json:"id"`
	Tipo      string    `json:"tipo"`
	Resultado string    `json:"resultado"`
	CreatedAt time.Time `json:"createdAt"`
}

type AircraftResponse struct {
	Codigo     string          `json:"codigo"`
	Modelo     string          `json:"modelo"`
	Tipo       string          `json:"tipo"`
	Capacidade int             `json:"capacidade"`
	AlcanceKm  float64         `json:"alcanceKm"`
	Pecas      []PartResponse  `json:"pecas"`
	Etapas     []StageResponse `json:"etapas"`
	Testes     []TestResponse  `json:"testes"`
	CreatedAt  time.Time       `json:"createdAt"`
	UpdatedAt  time.Time       `json:"updatedAt"`
}

func FromAircraft(a entities.Aircraft) AircraftResponse {
	return AircraftResponse{
		Codigo:     a.Code,
		Modelo:     a.Model,
		Tipo:       string(a.Type),
		Capacidade: a.Capacity,
		AlcanceKm:  a.RangeKm,
		Pecas:      FromParts(a.Parts),
		Etapas:     FromStages(a.Stages),
		Testes:     FromTests(a.Tests),
		CreatedAt:  a.CreatedAt,
		UpdatedAt:  a.UpdatedAt,
	}
}

func FromAircraftList(list []entities.Aircraft) []AircraftResponse {
	out := make([]AircraftResponse, 0, len(list))
	for _, a := range list {
		out = append(out, FromAircraft(a))
	}
	return out
}

// FromPart maps a part; idx is its current position in the aircraft's list.
func FromPart(idx int, p entities.Part) PartResponse {
	return PartResponse{
		Index:      idx,
		ID:         p.ID,
		Nome:       p.Name,
		Tipo:       string(p.Type),
		Fornecedor: p.Supplier,
		Status:     string(p.Status),
	}
}

func FromParts(parts []entities.Part) []PartResponse {
	out := make([]PartResponse, 0, len(parts))
	for i, p := range parts {
		out = append(out, FromPart(i, p))
	}
	return out
}

func FromStage(s entities.Stage) StageResponse {
	ids := s.EmployeeIDs
	if ids == nil {
		ids = []string{}
	}
	return StageResponse{
		Index:        s.Order,
		ID:           s.ID,
		Nome:         s.Name,
		PrazoDias:    s.DeadlineDays,
		Status:       string(s.Status),
		Ordem:        s.Order,
		Funcionarios: ids,
	}
}

func FromStages(stages []entities.Stage) []StageResponse {
	out := make([]StageResponse, 0, len(stages))
	for _, s := range stages {
		out = append(out, FromStage(s))
	}
	return out
}

func FromTest(idx int, t entities.Test) TestResponse {
	return TestResponse{
		Index:     idx,
		ID:        t.ID,
		Tipo:      string(t.Type),
		Resultado: string(t.Result),
		CreatedAt: t.CreatedAt,
	}
}

func FromTests(tests []entities.Test) []TestResponse {
	out := make([]TestResponse, 0, len(tests))
	for i, t := range tests {
		out = append(out, FromTest(i, t))
	}
	return out
}

package request

import (
	"strings"

	"aerocode/internal/domain/entities"
	"aerocode/internal/usecase"
)

type AircraftRequest struct {
	Codigo     string  `json:"codigo" binding:"required"`
	Modelo     string  `json:"modelo" binding:"required"`
	Tipo       string  `json:"tipo" binding:"required"`
	Capacidade int     `json:"capacidade"`
	AlcanceKm  float64 `json:"alcanceKm"`
}

func (r AircraftRequest) ToEntity() entities.Aircraft {
	return entities.Aircraft{
		Code:     strings.TrimSpace(r.Codigo),
		Model:    strings.TrimSpace(r.Modelo),
		Type:     entities.AircraftType(upper(r.Tipo)),
		Capacity: r.Capacidade,
		RangeKm:  r.AlcanceKm,
	}
}

// AircraftUpdateRequest carries only the fields the caller wants to change.
type AircraftUpdateRequest struct {
	Modelo     *string  `json:"modelo"`
	Tipo       *string  `json:"tipo"`
	Capacidade *int     `json:"capacidade"`
	AlcanceKm  *float64 `json:"alcanceKm"`
}

func (r AircraftUpdateRequest) ToChanges() usecase.AircraftChanges {
	changes := usecase.AircraftChanges{
		Model:    trimmed(r.Modelo),
		Capacity: r.Capacidade,
		RangeKm:  r.AlcanceKm,
	}
	if r.Tipo != nil {
		t := entities.AircraftType(upper(*r.Tipo))
		changes.Type = &t
	}
	return changes
}

func trimmed(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	return &v
}

func upper(s string) string {
	return strings.ToUpper(strings.TrimSpace(s))
}

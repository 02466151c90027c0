package request

import (
	"strings"

	"aerocode/internal/domain/entities"
)

type StageRequest struct {
	Nome      string `json:"nome" binding:"required"`
	PrazoDias int    `json:"prazoDias"`
}

func (r StageRequest) ToEntity() entities.Stage {
	return entities.Stage{Name: strings.TrimSpace(r.Nome), DeadlineDays: r.PrazoDias}
}

type AssignEmployeeRequest struct {
	FuncionarioID string `json:"funcionarioId" binding:"required"`
}

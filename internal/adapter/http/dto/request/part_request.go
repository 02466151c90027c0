package request

import (
	"strings"

	"aerocode/internal/domain/entities"
	"aerocode/internal/usecase"
)

type PartRequest struct {
	Nome       string `json:"nome" binding:"required"`
	Tipo       string `json:"tipo" binding:"required"`
	Fornecedor string `json:"fornecedor" binding:"required"`
	Status     string `json:"status"`
}

func (r PartRequest) ToEntity() entities.Part {
	return entities.Part{
		Name:     strings.TrimSpace(r.Nome),
		Type:     entities.PartType(upper(r.Tipo)),
		Supplier: strings.TrimSpace(r.Fornecedor),
		Status:   entities.PartStatus(upper(r.Status)),
	}
}

type PartUpdateRequest struct {
	Nome       *string `json:"nome"`
	Tipo       *string `json:"tipo"`
	Fornecedor *string `json:"fornecedor"`
	Status     *string `json:"status"`
}

func (r PartUpdateRequest) ToChanges() usecase.PartChanges {
	changes := usecase.PartChanges{
		Name:     trimmed(r.Nome),
		Supplier: trimmed(r.Fornecedor),
	}
	if r.Tipo != nil {
		t := entities.PartType(upper(*r.Tipo))
		changes.Type = &t
	}
	if r.Status != nil {
		s := entities.PartStatus(upper(*r.Status))
		changes.Status = &s
	}
	return changes
}

type PartStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

func (r PartStatusRequest) ToStatus() entities.PartStatus {
	return entities.PartStatus(upper(r.Status))
}

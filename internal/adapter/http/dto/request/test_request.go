package request

import (
	"aerocode/internal/domain/entities"
	"aerocode/internal/usecase"
)

type TestRequest struct {
	Tipo      string `json:"tipo" binding:"required"`
	Resultado string `json:"resultado" binding:"required"`
}

func (r TestRequest) ToEntity() entities.Test {
	return entities.Test{
		Type:   entities.TestType(upper(r.Tipo)),
		Result: entities.TestResult(upper(r.Resultado)),
	}
}

type TestUpdateRequest struct {
	Tipo      *string `json:"tipo"`
	Resultado *string `json:"resultado"`
}

func (r TestUpdateRequest) ToChanges() usecase.TestChanges {
	var changes usecase.TestChanges
	if r.Tipo != nil {
		t := entities.TestType(upper(*r.Tipo))
		changes.Type = &t
	}
	if r.Resultado != nil {
		res := entities.TestResult(upper(*r.Resultado))
		changes.Result = &res
	}
	return changes
}

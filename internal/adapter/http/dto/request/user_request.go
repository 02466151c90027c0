package request

import (
	"aerocode/internal/domain/entities"
)

// UserRequest is used for both registration and update. On update an empty
// senha keeps the stored password and an empty nivelPermissao keeps the level.
type UserRequest struct {
	ID             string `json:"id"`
	Nome           string `json:"nome"`
	Telefone       string `json:"telefone"`
	Endereco       string `json:"endereco"`
	Usuario        string `json:"usuario"`
	Senha          string `json:"senha"`
	NivelPermissao string `json:"nivelPermissao"`
}

func (r UserRequest) ToEntity() entities.Employee {
	return entities.Employee{
		ID:              r.ID,
		Name:            r.Nome,
		Phone:           r.Telefone,
		Address:         r.Endereco,
		Username:        r.Usuario,
		Password:        r.Senha,
		PermissionLevel: entities.PermissionLevel(upper(r.NivelPermissao)),
	}
}

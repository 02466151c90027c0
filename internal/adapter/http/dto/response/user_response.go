package response

import (
	"time"

	"aerocode/internal/domain/entities"
)

// UserResponse never carries the password.
type UserResponse struct {
	ID             string `json:"id"`
	Nome           string `json:"nome"`
	Telefone       string `json:"telefone"`
	Endereco       string `json:"endereco"`
	Usuario        string `json:"usuario"`
	NivelPermissao string `json:"nivelPermissao"`
}

func FromEmployee(e entities.Employee) UserResponse {
	return UserResponse{
		ID:             e.ID,
		Nome:           e.Name,
		Telefone:       e.Phone,
		Endereco:       e.Address,
		Usuario:        e.Username,
		NivelPermissao: string(e.PermissionLevel),
	}
}

func FromEmployees(list []entities.Employee) []UserResponse {
	out := make([]UserResponse, 0, len(list))
	for _, e := range list {
		out = append(out, FromEmployee(e))
	}
	return out
}

// LoginResponse keeps sessionId next to token for clients of the older API.
type LoginResponse struct {
	Token     string       `json:"token"`
	SessionID string       `json:"sessionId"`
	ExpiresAt time.Time    `json:"expiresAt"`
	User      UserResponse `json:"user"`
}

func NewLoginResponse(token string, expiresAt time.Time, e entities.Employee) LoginResponse {
	return LoginResponse{Token: token, SessionID: token, ExpiresAt: expiresAt, User: FromEmployee(e)}
}

package entities

type PermissionLevel string

const (
	PermissionAdmin    PermissionLevel = "ADMIN"
	PermissionEngineer PermissionLevel = "ENGINEER"
	PermissionOperator PermissionLevel = "OPERATOR"
)

func (p PermissionLevel) Valid() bool {
	switch p {
	case PermissionAdmin, PermissionEngineer, PermissionOperator:
		return true
	}
	return false
}

const (
	// SystemEmployeeID is the reserved, non-interactive account used as the
	// audit actor for registrations that have no human actor.
	SystemEmployeeID = "system"
	SystemUsername   = "system"
	SystemPassword   = "SYSTEM_NO_LOGIN"

	DefaultAdminID       = "admin"
	DefaultAdminUsername = "admin"
)

// Employee is both an account and the actor of every privileged operation.
//
// Storage model (DynamoDB):
//   - PK: id
//   - usuario#<usuario> reservation item per account, same table
//
// Password is stored as provided; there is no hashing.
type Employee struct {
	ID              string          `json:"id"`
	Name            string          `json:"nome"`
	Phone           string          `json:"telefone"`
	Address         string          `json:"endereco"`
	Username        string          `json:"usuario"`
	Password        string          `json:"senha,omitempty"`
	PermissionLevel PermissionLevel `json:"nivelPermissao"`
}

func (e Employee) IsAdmin() bool {
	return e.PermissionLevel == PermissionAdmin
}

func (e Employee) IsSystem() bool {
	return e.ID == SystemEmployeeID
}

// Public strips the password.
func (e Employee) Public() Employee {
	e.Password = ""
	return e
}

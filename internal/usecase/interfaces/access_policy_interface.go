package interfaces

import (
	"aerocode/internal/domain/entities"
	"aerocode/internal/domain/policy"
)

// IAccessPolicy is satisfied by *policy.Enforcer.
type IAccessPolicy interface {
	Allow(actor entities.Employee, obj policy.Object, act policy.Action, targetID string) (bool, error)
}

var _ IAccessPolicy = (*policy.Enforcer)(nil)

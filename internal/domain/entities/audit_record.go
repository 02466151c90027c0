package entities

import "time"

// AuditAction names what was attempted. Denials carry the "_DENIED" suffix.
type AuditAction string

const (
	AuditRegister AuditAction = "REGISTER"
	AuditUpdate   AuditAction = "UPDATE"
	AuditDelete   AuditAction = "DELETE"

	AuditAircraftCreate AuditAction = "AIRCRAFT_CREATE"
	AuditAircraftUpdate AuditAction = "AIRCRAFT_UPDATE"
	AuditAircraftDelete AuditAction = "AIRCRAFT_DELETE"
	AuditPartCreate     AuditAction = "PART_CREATE"
	AuditPartUpdate     AuditAction = "PART_UPDATE"
	AuditPartStatus     AuditAction = "PART_STATUS"
	AuditPartDelete     AuditAction = "PART_DELETE"
	AuditStageCreate    AuditAction = "STAGE_CREATE"
	AuditStageAdvance   AuditAction = "STAGE_ADVANCE"
	AuditStageComplete  AuditAction = "STAGE_COMPLETE"
	AuditStageAssign    AuditAction = "STAGE_ASSIGN"
	AuditTestCreate     AuditAction = "TEST_CREATE"
	AuditTestUpdate     AuditAction = "TEST_UPDATE"
	AuditTestDelete     AuditAction = "TEST_DELETE"
)

const deniedSuffix = "_DENIED"

func (a AuditAction) Denied() AuditAction {
	return a + deniedSuffix
}

func (a AuditAction) IsDenial() bool {
	n := len(a)
	return n > len(deniedSuffix) && string(a[n-len(deniedSuffix):]) == deniedSuffix
}

// AuditRecord is immutable once appended.
//
// Username and Level describe the target account for identity actions and the
// actor for production actions, matching what the operator sees in the trail.
type AuditRecord struct {
	ID        string          `json:"id"`
	Action    AuditAction     `json:"action"`
	ActorID   string          `json:"actorId"`
	TargetID  string          `json:"targetId"`
	Username  string          `json:"usuario"`
	Level     PermissionLevel `json:"nivel"`
	CreatedAt time.Time       `json:"createdAt"`
}

// AuditFilter narrows a listing; empty fields match everything.
type AuditFilter struct {
	Action   AuditAction
	ActorID  string
	TargetID string
}

func (f AuditFilter) Match(r AuditRecord) bool {
	if f.Action != "" && r.Action != f.Action {
		return false
	}
	if f.ActorID != "" && r.ActorID != f.ActorID {
		return false
	}
	if f.TargetID != "" && r.TargetID != f.TargetID {
		return false
	}
	return true
}

package request

import (
	"strings"

	"aerocode/internal/domain/entities"
)

// AuditQuery is bound from the query string of GET /v1/audit.
type AuditQuery struct {
	Action   string `form:"action"`
	ActorID  string `form:"actorId"`
	TargetID string `form:"targetId"`
}

func (q AuditQuery) ToFilter() entities.AuditFilter {
	return entities.AuditFilter{
		Action:   entities.AuditAction(upper(q.Action)),
		ActorID:  strings.TrimSpace(q.ActorID),
		TargetID: strings.TrimSpace(q.TargetID),
	}
}

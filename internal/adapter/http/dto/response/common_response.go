package response

import (
	"time"

	"aerocode/internal/domain/entities"
)

type MessageResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

func Success(message string) MessageResponse {
	return MessageResponse{Success: true, Message: message}
}

type ReportResponse struct {
	Success bool   `json:"success"`
	Codigo  string `json:"codigo"`
	Locator string `json:"arquivo"`
}

type AuditRecordResponse struct {
	ID        string    `json:"id"`
	Action    string    `json:"action"`
	ActorID   string    `json:"actorId"`
	TargetID  string    `json:"targetId"`
	Usuario   string    `json:"usuario"`
	Nivel     string    `json:"nivel"`
	CreatedAt time.Time `json:"createdAt"`
}

func FromAuditRecords(records []entities.AuditRecord) []AuditRecordResponse {
	out := make([]AuditRecordResponse, 0, len(records))
	for _, r := range records {
		out = append(out, AuditRecordResponse{
			ID:        r.ID,
			Action:    string(r.Action),
			ActorID:   r.ActorID,
			TargetID:  r.TargetID,
			Usuario:   r.Username,
			Nivel:     string(r.Level),
			CreatedAt: r.CreatedAt,
		})
	}
	return out
}

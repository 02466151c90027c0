package entities

import "time"

// StageAssignee is the slice of an Employee shown on a report.
type StageAssignee struct {
	ID              string          `json:"id"`
	Name            string          `json:"nome"`
	PermissionLevel PermissionLevel `json:"nivelPermissao"`
}

type StageReport struct {
	Stage
	Assignees []StageAssignee `json:"responsaveis"`
}

// AircraftReport is the fully hydrated snapshot handed to a report renderer.
type AircraftReport struct {
	Aircraft    Aircraft      `json:"aeronave"`
	Stages      []StageReport `json:"etapas"`
	GeneratedAt time.Time     `json:"geradoEm"`
}

package interfaces

import (
	"aerocode/internal/domain/entities"
	"context"
)

// IReportRenderer turns a hydrated aircraft snapshot into a stored report and
// returns where it can be fetched from (a file path, an object key, ...).
type IReportRenderer interface {
	Render(ctx context.Context, report entities.AircraftReport) (locator string, err error)
}

package reports

import (
	"context"
	"os"
	"path/filepath"
	"time"

	"aerocode/internal/domain/entities"
	"aerocode/internal/usecase/interfaces"
)

type FileRenderer struct {
	dir string
	now func() time.Time
}

var _ interfaces.IReportRenderer = (*FileRenderer)(nil)

func NewFileRenderer(dir string) *FileRenderer {
	if dir == "" {
		dir = "relatorios"
	}
	return &FileRenderer{dir: dir, now: time.Now}
}

// Render writes the snapshot as indented JSON and returns the file path.
func (r *FileRenderer) Render(ctx context.Context, report entities.AircraftReport) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	body, err := encode(report)
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(r.dir, 0o755); err != nil {
		return "", err
	}
	path := filepath.Join(r.dir, fileName(report.Aircraft.Code, r.now()))
	if err := os.WriteFile(path, body, 0o644); err != nil {
		return "", err
	}
	return path, nil
}

// Package reports archives hydrated aircraft snapshots. The filesystem driver
// writes under a local directory; the S3 driver writes to a bucket.
package reports

import (
	"encoding/json"
	"fmt"
	"regexp"
	"time"

	"aerocode/internal/domain/entities"
)

var unsafeChars = regexp.MustCompile(`[^A-Za-z0-9._-]+`)

// fileName returns relatorio_<codigo>_<unix ms>.json with codigo made path-safe.
func fileName(code string, at time.Time) string {
	safe := unsafeChars.ReplaceAllString(code, "_")
	if safe == "" {
		safe = "aeronave"
	}
	return fmt.Sprintf("relatorio_%s_%d.json", safe, at.UnixMilli())
}

func encode(report entities.AircraftReport) ([]byte, error) {
	return json.MarshalIndent(report, "", "  ")
}

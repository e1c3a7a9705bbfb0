package core

import (
	"fmt"

	"stackdeck/schema"
)

// BuildExport assembles the downloadable artifact for a live completed
// session. Ranked, Kept and Discarded partition the decided set, with Kept
// holding only the keepers that did not make the ranking; all three use
// display text rather than ids.
func BuildExport(s *Session) (schema.SessionExport, error) {
	if s.Phase != schema.PhaseComplete {
		return schema.SessionExport{}, fmt.Errorf("session for %s is not complete", s.UserName)
	}
	return ExportFromRecord(s.Record())
}

package core

import (
	"fmt"

	"stackdeck/schema"
)

// RecordComplete reports whether a stored record represents a finished
// session: every catalog principle decided, and prioritization either done or
// not required.
func RecordComplete(rec schema.SessionRecord) bool {
	if len(rec.Decisions) < schema.CatalogSize || rec.CompletedAt == nil {
		return false
	}
	kept := rec.KeptCount()
	return kept == 0 || len(rec.RankedPrinciples) > 0
}

// ResultRowFromRecord builds the remote submission row from a stored record,
// without needing a live session.
func ResultRowFromRecord(rec schema.SessionRecord) (schema.ResultRow, error) {
	if !RecordComplete(rec) {
		return schema.ResultRow{}, fmt.Errorf("session for %s is not complete", rec.UserName)
	}
	ranked := rec.RankedPrinciples
	if ranked == nil {
		ranked = []string{}
	}
	return schema.ResultRow{
		UserName:         rec.UserName,
		Decisions:        rec.Decisions,
		RankedPrinciples: ranked,
		CompletedAt:      *rec.CompletedAt,
	}, nil
}

// ExportFromRecord builds the export artifact from a stored record.
func ExportFromRecord(rec schema.SessionRecord) (schema.SessionExport, error) {
	if !RecordComplete(rec) {
		return schema.SessionExport{}, fmt.Errorf("session for %s is not complete", rec.UserName)
	}

	kept := rec.KeptCount()
	out := schema.SessionExport{
		User: rec.UserName,
		Date: *rec.CompletedAt,
		Summary: schema.ExportSummary{
			Total:     len(rec.Decisions),
			Kept:      kept,
			Discarded: len(rec.Decisions) - kept,
		},
		Kept:      []string{},
		Discarded: []string{},
	}

	ranked := make(map[string]bool, len(rec.RankedPrinciples))
	for _, id := range rec.RankedPrinciples {
		ranked[id] = true
		out.Ranked = append(out.Ranked, schema.PrincipleText(id))
	}
	for _, p := range schema.Catalog() {
		switch rec.Decisions[p.ID] {
		case schema.DecisionKept:
			if !ranked[p.ID] {
				out.Kept = append(out.Kept, p.Text)
			}
		case schema.DecisionDiscarded:
			out.Discarded = append(out.Discarded, p.Text)
		}
	}
	return out, nil
}

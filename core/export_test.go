package core

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stackdeck/schema"
)

func TestBuildExportRequiresCompletion(t *testing.T) {
	s, _ := newTestSession(t)
	require.NoError(t, s.Start("alice"))
	_, err := BuildExport(s)
	assert.Error(t, err)
}

func TestBuildExportPartitionsDecisions(t *testing.T) {
	s, _ := newTestSession(t)
	require.NoError(t, s.Start("alice"))
	swipeAll(t, s, 0, 1, 2, 3, 4, 5, 6)

	kept := s.KeptPrinciples()
	require.Len(t, kept, 7)
	ranked := []string{kept[6].ID, kept[0].ID, kept[1].ID, kept[2].ID, kept[3].ID}
	require.NoError(t, s.ConfirmRanking(ranked))

	out, err := BuildExport(s)
	require.NoError(t, err)

	assert.Equal(t, "alice", out.User)
	assert.Equal(t, s.CatalogSize(), out.Summary.Total)
	assert.Equal(t, 7, out.Summary.Kept)
	assert.Equal(t, s.CatalogSize()-7, out.Summary.Discarded)

	// Ranked entries keep confirmation order and show display text
	require.Len(t, out.Ranked, 5)
	assert.Equal(t, kept[6].Text, out.Ranked[0])
	assert.Equal(t, kept[0].Text, out.Ranked[1])

	// Kept lists only the unranked keepers
	assert.ElementsMatch(t, []string{kept[4].Text, kept[5].Text}, out.Kept)
	assert.Len(t, out.Discarded, s.CatalogSize()-7)
	assert.NotContains(t, out.Discarded, kept[0].Text)
	assert.False(t, out.Date.IsZero())
}

func TestBuildExportAllDiscarded(t *testing.T) {
	s, _ := newTestSession(t)
	require.NoError(t, s.Start("alice"))
	swipeAll(t, s)

	out, err := BuildExport(s)
	require.NoError(t, err)
	assert.Empty(t, out.Ranked)
	assert.Empty(t, out.Kept)
	assert.Len(t, out.Discarded, s.CatalogSize())
	assert.Zero(t, out.Summary.Kept)
}

func TestBuildExportJSONShape(t *testing.T) {
	s, _ := newTestSession(t)
	require.NoError(t, s.Start("alice"))
	swipeAll(t, s)

	out, err := BuildExport(s)
	require.NoError(t, err)

	raw, err := json.Marshal(out)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.Contains(t, decoded, "user")
	assert.Contains(t, decoded, "summary")
	// Empty slices serialize as [], not null
	assert.Equal(t, []any{}, decoded["kept"])
	assert.Len(t, decoded["discarded"], s.CatalogSize())
	assert.NotContains(t, decoded, "ranked")

	var roundTrip schema.SessionExport
	require.NoError(t, json.Unmarshal(raw, &roundTrip))
	assert.Equal(t, out.Summary, roundTrip.Summary)
}

func TestBuildExportJSONRoundTrip(t *testing.T) {
	s, _ := newTestSession(t)
	require.NoError(t, s.Start("alice"))
	swipeAll(t, s, 0, 1, 2, 3, 4, 5, 6)

	kept := s.KeptPrinciples()
	require.Len(t, kept, 7)
	ranked := []string{kept[6].ID, kept[0].ID, kept[1].ID, kept[2].ID, kept[3].ID}
	require.NoError(t, s.ConfirmRanking(ranked))

	out, err := BuildExport(s)
	require.NoError(t, err)

	raw, err := json.Marshal(out)
	require.NoError(t, err)

	// Re-reading the artifact reproduces the same text lists
	var roundTrip schema.SessionExport
	require.NoError(t, json.Unmarshal(raw, &roundTrip))
	assert.Equal(t, out.Ranked, roundTrip.Ranked)
	assert.Equal(t, out.Kept, roundTrip.Kept)
	assert.Equal(t, out.Discarded, roundTrip.Discarded)
	assert.Equal(t, out.User, roundTrip.User)
	assert.Equal(t, out.Summary, roundTrip.Summary)
	assert.True(t, out.Date.Equal(roundTrip.Date))
}

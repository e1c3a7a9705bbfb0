package schema

// Custom string types for type safety.
type (
	// Decision is the kept/discarded classification for one principle.
	Decision string

	// Phase identifies a screen of the session flow.
	Phase string

	// SwipeDirection is the raw gesture a decision is derived from.
	SwipeDirection string

	// StoreBackend is the database backend for the local session store.
	StoreBackend string

	// OutputMode is the format of non-interactive output.
	OutputMode string
)

// The two decision values. Absence of a decision means "not yet decided".
const (
	DecisionKept      Decision = "kept"
	DecisionDiscarded Decision = "discarded"
)

// All session phases. Admin is a side branch entered only with the reserved
// admin token; its sole exit is back to entry.
const (
	PhaseEntry          Phase = "entry"
	PhaseSwiping        Phase = "swiping"
	PhasePrioritization Phase = "prioritization"
	PhaseComplete       Phase = "complete"
	PhaseAdmin          Phase = "admin"
)

// Swipe directions and their meaning: right keeps, left discards.
const (
	SwipeLeft  SwipeDirection = "left"
	SwipeRight SwipeDirection = "right"
)

// All local store backends supported.
const (
	SQLiteBackend     StoreBackend = "sqlite" // default
	MySQLBackend      StoreBackend = "mysql"
	PostgreSQLBackend StoreBackend = "postgresql"
	MemoryBackend     StoreBackend = "memory"
)

// All output modes supported.
const (
	TextOut    OutputMode = "text" // default
	CSVOut     OutputMode = "csv"
	JSONOut    OutputMode = "json"
	ParquetOut OutputMode = "parquet"
)

// MaxRankSlots caps the prioritization selection. The required slot count for
// a session is min(MaxRankSlots, kept count).
const MaxRankSlots = 5

// ValidDecisions lists all valid decision values.
var ValidDecisions = map[Decision]struct{}{
	DecisionKept:      {},
	DecisionDiscarded: {},
}

// ValidStoreBackends lists all valid local store backends.
var ValidStoreBackends = map[StoreBackend]struct{}{
	SQLiteBackend:     {},
	MySQLBackend:      {},
	PostgreSQLBackend: {},
	MemoryBackend:     {},
}

// ValidOutputModes lists all valid output modes.
var ValidOutputModes = map[OutputMode]struct{}{
	TextOut:    {},
	CSVOut:     {},
	JSONOut:    {},
	ParquetOut: {},
}

// DecisionForDirection maps a swipe direction to its decision.
func DecisionForDirection(dir SwipeDirection) Decision {
	if dir == SwipeRight {
		return DecisionKept
	}
	return DecisionDiscarded
}

// RequiredSlots returns the number of prioritization slots a session with the
// given kept count must fill before confirming.
func RequiredSlots(keptCount int) int {
	return min(MaxRankSlots, keptCount)
}

package entity

// JournalKind classifies adventure log entries
type JournalKind int

const (
	JournalPickup JournalKind = iota
	JournalDrop
	JournalTalk
	JournalScan
)

// String returns the string representation of the journal kind
func (k JournalKind) String() string {
	switch k {
	case JournalPickup:
		return "pickup"
	case JournalDrop:
		return "drop"
	case JournalTalk:
		return "talk"
	case JournalScan:
		return "scan"
	default:
		return "unknown"
	}
}

// JournalEntry is one line of the adventure log
type JournalEntry struct {
	Tick uint64
	Kind JournalKind
	Text string
}

// Journal is the bounded adventure log. When full, the oldest entry is dropped.
type Journal struct {
	entries []JournalEntry
	limit   int
}

// NewJournal creates a journal keeping at most limit entries (limit <= 0 means unbounded)
func NewJournal(limit int) *Journal {
	return &Journal{limit: limit}
}

// Add appends an entry, evicting the oldest when over the limit
func (j *Journal) Add(e JournalEntry) {
	j.entries = append(j.entries, e)
	if j.limit > 0 && len(j.entries) > j.limit {
		j.entries = j.entries[len(j.entries)-j.limit:]
	}
}

// Entries returns the entries, oldest first
func (j *Journal) Entries() []JournalEntry {
	return j.entries
}

// Len returns the number of entries
func (j *Journal) Len() int {
	return len(j.entries)
}

// Clear removes every entry
func (j *Journal) Clear() {
	j.entries = nil
}

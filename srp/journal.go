package srp

import (
	"strconv"
	"strings"
)

// Journal is an ordered list of numbered text entries.
type Journal struct {
	entries []string
	seq     Sequence
}

// NewJournal returns an empty journal. Without WithSequence it numbers
// entries with a private Counter. The zero Journal behaves the same way.
func NewJournal(opts ...Option) *Journal {
	cfg := journalConfig{}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.seq == nil {
		cfg.seq = NewCounter()
	}

	return &Journal{seq: cfg.seq}
}

// AddEntry appends text tagged with the next sequence number and returns
// that number.
func (j *Journal) AddEntry(text string) int {
	if j.seq == nil {
		j.seq = NewCounter()
	}
	n := j.seq.Next()
	j.entries = append(j.entries, strconv.Itoa(n)+": "+text)

	return n
}

// Entries returns a copy of the rendered entries in insertion order.
func (j *Journal) Entries() []string {
	out := make([]string, len(j.entries))
	copy(out, j.entries)

	return out
}

// Len reports the number of entries.
func (j *Journal) Len() int { return len(j.entries) }

// String joins all entries with newlines.
func (j *Journal) String() string {
	return strings.Join(j.entries, "\n")
}

// Save is where a journal would write itself to storage. Doing so would give
// Journal a second reason to change, so it is left unimplemented and always
// returns ErrNotImplemented.
func (j *Journal) Save() error {
	return ErrNotImplemented
}

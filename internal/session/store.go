package session

import (
	"fmt"

	"github.com/veilbrook/go-haunt/internal/storage"
)

// Store persists sessions between turns. The engine owns session
// creation; Load reports absence instead of inventing a session.
type Store struct {
	records storage.Storer[*Record]
}

func NewStore(records storage.Storer[*Record]) *Store {
	return &Store{records: records}
}

// Load returns the session for an id, or ok=false when none exists.
func (st *Store) Load(id string) (*Session, bool, error) {
	rec, ok := st.records.Lookup(id)
	if !ok {
		return nil, false, nil
	}
	if err := rec.Validate(); err != nil {
		return nil, true, fmt.Errorf("session %s is corrupt: %w", id, err)
	}
	return fromRecord(rec), true, nil
}

// Save writes the session back through the record boundary.
func (st *Store) Save(s *Session) error {
	return st.records.Save(s.Id, toRecord(s))
}

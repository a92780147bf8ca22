package plans

import (
	"fmt"
	"slices"

	"github.com/google/uuid"

	"github.com/JaimeStill/floorplan/internal/housespec"
)

// Action is a destructive operation awaiting confirmation.
type Action string

const (
	ActionDelete   Action = "delete"
	ActionClearAll Action = "clear_all"
)

// Pending is the single outstanding destructive request of a store.
// Index is only meaningful for ActionDelete.
type Pending struct {
	Token  string `json:"token"`
	Action Action `json:"action"`
	Index  int    `json:"index"`
}

// Store is an ordered plan collection with one pending-action slot.
// It is not safe for concurrent use; Session serializes access.
type Store struct {
	records []Record
	pending *Pending
}

func NewStore() *Store {
	return &Store{records: make([]Record, 0)}
}

// Append adds r to the end of the store and returns its index.
func (s *Store) Append(r Record) int {
	s.records = append(s.records, r)
	return len(s.records) - 1
}

func (s *Store) Len() int {
	return len(s.records)
}

// Get returns the record at i.
func (s *Store) Get(i int) (Record, error) {
	if err := s.check(i); err != nil {
		return Record{}, err
	}
	return s.records[i], nil
}

// Records returns a copy of the records in insertion order.
func (s *Store) Records() []Record {
	out := make([]Record, len(s.records))
	copy(out, s.records)
	return out
}

// RequestRegenerate returns the input that produced the record at i.
// The store is not modified.
func (s *Store) RequestRegenerate(i int) (housespec.Input, error) {
	r, err := s.Get(i)
	if err != nil {
		return housespec.Input{}, err
	}
	return r.Spec, nil
}

// RequestDelete marks the record at i for deletion, replacing any pending action.
func (s *Store) RequestDelete(i int) (Pending, error) {
	if err := s.check(i); err != nil {
		return Pending{}, err
	}
	return s.request(ActionDelete, i), nil
}

// RequestClearAll marks the whole store for clearing, replacing any pending action.
func (s *Store) RequestClearAll() Pending {
	return s.request(ActionClearAll, -1)
}

// Pending returns the outstanding action, if any.
func (s *Store) Pending() (Pending, bool) {
	if s.pending == nil {
		return Pending{}, false
	}
	return *s.pending, true
}

// Confirm performs the pending action identified by token. The slot is
// consumed even when the delete target no longer exists.
func (s *Store) Confirm(token string) (Pending, error) {
	p, err := s.take(token)
	if err != nil {
		return Pending{}, err
	}

	switch p.Action {
	case ActionDelete:
		if err := s.check(p.Index); err != nil {
			return p, err
		}
		s.records = slices.Delete(s.records, p.Index, p.Index+1)
	case ActionClearAll:
		s.records = make([]Record, 0)
	}

	return p, nil
}

// Cancel discards the pending action identified by token.
func (s *Store) Cancel(token string) error {
	_, err := s.take(token)
	return err
}

func (s *Store) request(action Action, index int) Pending {
	p := Pending{
		Token:  uuid.NewString(),
		Action: action,
		Index:  index,
	}
	s.pending = &p
	return p
}

func (s *Store) take(token string) (Pending, error) {
	if s.pending == nil {
		return Pending{}, ErrNoPending
	}
	if s.pending.Token != token {
		return Pending{}, ErrStaleToken
	}
	p := *s.pending
	s.pending = nil
	return p, nil
}

func (s *Store) check(i int) error {
	if i < 0 || i >= len(s.records) {
		return fmt.Errorf("%w: %d (have %d)", ErrIndexOutOfRange, i, len(s.records))
	}
	return nil
}

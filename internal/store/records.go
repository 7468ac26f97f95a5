// Package store holds the in-memory record collection for the GanhosPro
// backend. The collection is the working copy of the persisted record
// blob: it is seeded once at startup and snapshotted back out after every
// mutation by the service layer.
//
// The store guards itself with a read-write mutex: each handler runs on
// its own goroutine, so reads and mutations arrive concurrently.
package store

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/ganhospro/backend/internal/domain"
)

// Outcome describes what an Upsert actually did, so callers can message
// the difference between a fresh save, an edit and a date-collision
// overwrite.
type Outcome string

const (
	// Inserted means a genuinely new record was appended.
	Inserted Outcome = "inserted"
	// Updated means an existing record with the same id was overwritten
	// in place.
	Updated Outcome = "updated"
	// Replaced means a record with the same date but a different id was
	// deleted first, then the new record appended as a fresh entry.
	Replaced Outcome = "replaced"
)

// RecordStore is an ordered collection of RunRecords with at most one
// record per calendar date. Order is insertion order; date-sorted views
// are produced by the calc package, not here.
type RecordStore struct {
	mu      sync.RWMutex
	records []domain.RunRecord
}

// NewRecordStore returns an empty RecordStore.
func NewRecordStore() *RecordStore {
	return &RecordStore{}
}

// Seed replaces the collection contents with the given records, dropping
// any entry that would violate the one-record-per-date invariant (later
// duplicates lose; the persisted blob should never contain any, but a
// corrupt or hand-edited blob must not poison the invariant).
func (s *RecordStore) Seed(records []domain.RunRecord) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.records = s.records[:0]
	for _, r := range records {
		r.Date = domain.Day(r.Date)
		if _, ok := s.findByDate(r.Date, uuid.Nil); ok {
			continue
		}
		s.records = append(s.records, r)
	}
}

// Records returns a copy of the collection in insertion order.
func (s *RecordStore) Records() []domain.RunRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.RunRecord, len(s.records))
	copy(out, s.records)
	return out
}

// Len returns the number of records held.
func (s *RecordStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.records)
}

// FindByDate returns the record for the given calendar date, skipping the
// record with excludingID (pass uuid.Nil to exclude nothing). The second
// return is false when no such record exists.
func (s *RecordStore) FindByDate(date time.Time, excludingID uuid.UUID) (domain.RunRecord, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.findByDate(date, excludingID)
}

// findByDate is FindByDate without locking, for use under a held mutex.
// A uuid.Nil excludingID excludes nothing, so even records that carry a
// nil id (only possible in a corrupt persisted blob) are matched.
func (s *RecordStore) findByDate(date time.Time, excludingID uuid.UUID) (domain.RunRecord, bool) {
	for _, r := range s.records {
		if excludingID != uuid.Nil && r.ID == excludingID {
			continue
		}
		if domain.SameDay(r.Date, date) {
			return r, true
		}
	}
	return domain.RunRecord{}, false
}

// Upsert adds or replaces a record and reports what happened.
//
// If a record with the same id exists it is overwritten in place, keeping
// its position. Otherwise, if a record for the same date exists under a
// different id, that record is deleted first and the new one appended as
// a fresh entry — the two-step replace keeps the one-record-per-date
// invariant intact even when an edit lands on an already-used day.
func (s *RecordStore) Upsert(rec domain.RunRecord) (Outcome, error) {
	if rec.ID == uuid.Nil {
		return "", fmt.Errorf("%w: record id is required", domain.ErrValidation)
	}
	rec.Date = domain.Day(rec.Date)

	s.mu.Lock()
	defer s.mu.Unlock()

	for i, r := range s.records {
		if r.ID == rec.ID {
			// Editing this record must not collide with a different
			// entry already holding the target date.
			if old, ok := s.findByDate(rec.Date, rec.ID); ok {
				s.deleteByID(old.ID)
				// The edited record's slot may have shifted left.
				for j, rr := range s.records {
					if rr.ID == rec.ID {
						s.records[j] = rec
						break
					}
				}
				return Replaced, nil
			}
			s.records[i] = rec
			return Updated, nil
		}
	}

	if old, ok := s.findByDate(rec.Date, rec.ID); ok {
		s.deleteByID(old.ID)
		s.records = append(s.records, rec)
		return Replaced, nil
	}

	s.records = append(s.records, rec)
	return Inserted, nil
}

// Delete removes the record with the given id.
// Returns domain.ErrNotFound when no such record exists.
func (s *RecordStore) Delete(id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.deleteByID(id) {
		return fmt.Errorf("store.RecordStore.Delete: %w", domain.ErrNotFound)
	}
	return nil
}

// deleteByID removes the record with the given id; callers hold s.mu.
func (s *RecordStore) deleteByID(id uuid.UUID) bool {
	for i, r := range s.records {
		if r.ID == id {
			s.records = append(s.records[:i], s.records[i+1:]...)
			return true
		}
	}
	return false
}

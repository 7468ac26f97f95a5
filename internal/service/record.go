// Package service contains the business logic for the GanhosPro backend.
// Services validate inputs, enforce business rules, and orchestrate the
// in-memory store, the state repo and the entitlement checker. No SQL
// lives here and no calculation formulas either — those belong to repo
// and calc respectively.
package service

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/google/uuid"

	"github.com/ganhospro/backend/internal/calc"
	"github.com/ganhospro/backend/internal/domain"
	"github.com/ganhospro/backend/internal/entitlement"
	"github.com/ganhospro/backend/internal/metrics"
	"github.com/ganhospro/backend/internal/repo"
	"github.com/ganhospro/backend/internal/store"
)

// FreeRecordLimit caps how many records the free tier may hold. The limit
// applies only to genuine new inserts: updating an existing record or
// overwriting a same-date record never counts against it.
const FreeRecordLimit = 15

// SaveResult reports what a record save did, so the client can message a
// plain save, an edit or a date-collision overwrite differently.
type SaveResult struct {
	Record  domain.RunRecord `json:"record"`
	Outcome store.Outcome    `json:"outcome"`
}

// RecordService implements the record save/delete/list flow.
//
// mu serializes mutations: the capacity check, the upsert and the
// persisted snapshot are a check-then-act sequence, and interleaving two
// of them could exceed the free-tier limit or persist a stale snapshot.
type RecordService struct {
	mu      sync.Mutex
	store   *store.RecordStore
	state   repo.StateRepo
	premium entitlement.Checker
}

// NewRecordService constructs a RecordService over the given collaborators.
func NewRecordService(s *store.RecordStore, state repo.StateRepo, premium entitlement.Checker) *RecordService {
	return &RecordService{store: s, state: state, premium: premium}
}

// Save validates and stores a record, then snapshots the collection out to
// the state repo. A zero ID is assigned a fresh one.
//
// The free-tier capacity policy is enforced here, not inside the store:
// when the collection already holds FreeRecordLimit records and the
// operation would be a genuine new insert, the save is refused with
// domain.ErrCapacityExceeded unless the premium entitlement lifts it.
func (s *RecordService) Save(ctx context.Context, rec domain.RunRecord) (SaveResult, error) {
	if rec.Date.IsZero() {
		return SaveResult{}, fmt.Errorf("%w: date is required", domain.ErrValidation)
	}
	if err := calc.ValidateRecord(rec); err != nil {
		return SaveResult{}, err
	}
	if rec.ID == uuid.Nil {
		rec.ID = uuid.New()
	}
	rec.Date = domain.Day(rec.Date)

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.isNewInsert(rec) && s.store.Len() >= FreeRecordLimit {
		premium, err := s.premium.Premium(ctx)
		if err != nil {
			return SaveResult{}, fmt.Errorf("service.RecordService.Save: %w", err)
		}
		if !premium {
			return SaveResult{}, fmt.Errorf("%w: free tier holds at most %d records", domain.ErrCapacityExceeded, FreeRecordLimit)
		}
	}

	outcome, err := s.store.Upsert(rec)
	if err != nil {
		return SaveResult{}, fmt.Errorf("service.RecordService.Save: %w", err)
	}

	if err := s.state.SaveRecords(ctx, s.store.Records()); err != nil {
		return SaveResult{}, fmt.Errorf("service.RecordService.Save: %w", err)
	}
	metrics.RecordsStored.Set(float64(s.store.Len()))
	return SaveResult{Record: rec, Outcome: outcome}, nil
}

// isNewInsert reports whether saving rec would append a fresh entry rather
// than update an existing id or overwrite a same-date record.
func (s *RecordService) isNewInsert(rec domain.RunRecord) bool {
	for _, r := range s.store.Records() {
		if r.ID == rec.ID {
			return false
		}
	}
	_, collides := s.store.FindByDate(rec.Date, rec.ID)
	return !collides
}

// Delete removes a record by id and snapshots the collection out.
// Returns domain.ErrNotFound when no such record exists.
func (s *RecordService) Delete(ctx context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.store.Delete(id); err != nil {
		return fmt.Errorf("service.RecordService.Delete: %w", err)
	}
	if err := s.state.SaveRecords(ctx, s.store.Records()); err != nil {
		return fmt.Errorf("service.RecordService.Delete: %w", err)
	}
	metrics.RecordsStored.Set(float64(s.store.Len()))
	return nil
}

// List returns all records ordered by date descending (most recent first),
// the order the history screen shows them in.
// Always returns a non-nil slice so callers can safely range over it.
func (s *RecordService) List(_ context.Context) ([]domain.RunRecord, error) {
	records := s.store.Records()
	sort.Slice(records, func(i, j int) bool {
		return records[j].Date.Before(records[i].Date)
	})
	return records, nil
}

// Compute derives the profitability metrics for a record at the current
// settings rate without touching the collection.
func (s *RecordService) Compute(ctx context.Context, rec domain.RunRecord) (domain.CalculationResult, error) {
	settings, err := s.state.LoadSettings(ctx)
	if err != nil {
		return domain.CalculationResult{}, fmt.Errorf("service.RecordService.Compute: %w", err)
	}
	return calc.Compute(rec, settings.CostPerKm)
}

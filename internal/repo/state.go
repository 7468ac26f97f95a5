// Package repo contains all database access logic for the GanhosPro
// backend. Persisted state is three independent whole-value blobs in the
// app_state table — the record collection, the settings object and the
// premium flag — each loaded and saved as one JSONB value under a fixed
// key. No business logic lives here, only SQL and type mapping.
package repo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/ganhospro/backend/internal/domain"
)

// State keys. Each key is an independent value; no cross-key
// transactionality is guaranteed or required.
const (
	keyRecords  = "records"
	keySettings = "settings"
	keyPremium  = "premium"
)

// db is the minimal interface satisfied by *pgxpool.Pool, pgx.Conn, and pgx.Tx.
// Accepting this interface instead of *pgxpool.Pool directly allows integration
// tests to pass a transaction that is rolled back after each test, giving free
// per-test isolation without any manual cleanup.
type db interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// StateRepo defines load/save of the three persisted state values.
// Loads fall back to the caller-visible default when the key is absent or
// the stored blob fails to decode; a corrupt value is discarded and
// overwritten by the next save.
type StateRepo interface {
	LoadRecords(ctx context.Context) ([]domain.RunRecord, error)
	SaveRecords(ctx context.Context, records []domain.RunRecord) error

	LoadSettings(ctx context.Context) (domain.AppSettings, error)
	SaveSettings(ctx context.Context, settings domain.AppSettings) error

	LoadPremium(ctx context.Context) (bool, error)
	SavePremium(ctx context.Context, premium bool) error
}

// pgStateRepo is the Postgres implementation of StateRepo.
type pgStateRepo struct {
	db db
}

// NewStateRepo constructs a StateRepo backed by the provided db connection.
// In production pass *pgxpool.Pool; in tests pass a pgx.Tx for rollback isolation.
func NewStateRepo(db db) StateRepo {
	return &pgStateRepo{db: db}
}

// LoadRecords returns the persisted record collection, or an empty slice
// when nothing is stored yet or the blob is unreadable.
func (r *pgStateRepo) LoadRecords(ctx context.Context) ([]domain.RunRecord, error) {
	var records []domain.RunRecord
	ok, err := r.load(ctx, keyRecords, &records)
	if err != nil {
		return nil, fmt.Errorf("repo.StateRepo.LoadRecords: %w", err)
	}
	if !ok || records == nil {
		return []domain.RunRecord{}, nil
	}
	return records, nil
}

// SaveRecords overwrites the persisted record collection.
func (r *pgStateRepo) SaveRecords(ctx context.Context, records []domain.RunRecord) error {
	if records == nil {
		records = []domain.RunRecord{}
	}
	if err := r.save(ctx, keyRecords, records); err != nil {
		return fmt.Errorf("repo.StateRepo.SaveRecords: %w", err)
	}
	return nil
}

// LoadSettings returns the persisted settings, or the defaults when
// nothing usable is stored.
func (r *pgStateRepo) LoadSettings(ctx context.Context) (domain.AppSettings, error) {
	var settings domain.AppSettings
	ok, err := r.load(ctx, keySettings, &settings)
	if err != nil {
		return domain.AppSettings{}, fmt.Errorf("repo.StateRepo.LoadSettings: %w", err)
	}
	if !ok {
		return domain.DefaultSettings(), nil
	}
	return settings, nil
}

// SaveSettings overwrites the persisted settings.
func (r *pgStateRepo) SaveSettings(ctx context.Context, settings domain.AppSettings) error {
	if err := r.save(ctx, keySettings, settings); err != nil {
		return fmt.Errorf("repo.StateRepo.SaveSettings: %w", err)
	}
	return nil
}

// LoadPremium returns the persisted entitlement flag, defaulting to false.
func (r *pgStateRepo) LoadPremium(ctx context.Context) (bool, error) {
	var premium bool
	ok, err := r.load(ctx, keyPremium, &premium)
	if err != nil {
		return false, fmt.Errorf("repo.StateRepo.LoadPremium: %w", err)
	}
	if !ok {
		return false, nil
	}
	return premium, nil
}

// SavePremium overwrites the persisted entitlement flag.
func (r *pgStateRepo) SavePremium(ctx context.Context, premium bool) error {
	if err := r.save(ctx, keyPremium, premium); err != nil {
		return fmt.Errorf("repo.StateRepo.SavePremium: %w", err)
	}
	return nil
}

// load fetches and decodes the value stored under key into dest.
// Returns false when the key is absent or the blob does not decode; a
// decode failure is logged and treated as absent, matching the
// fall-back-to-default contract.
func (r *pgStateRepo) load(ctx context.Context, key string, dest any) (bool, error) {
	const q = `SELECT value FROM app_state WHERE key = @key`

	var raw []byte
	err := r.db.QueryRow(ctx, q, pgx.NamedArgs{"key": key}).Scan(&raw)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, nil
		}
		return false, err
	}

	if err := json.Unmarshal(raw, dest); err != nil {
		slog.WarnContext(ctx, "discarding corrupt state value", "key", key, "error", err)
		return false, nil
	}
	return true, nil
}

// save encodes value and upserts it under key.
func (r *pgStateRepo) save(ctx context.Context, key string, value any) error {
	const q = `
		INSERT INTO app_state (key, value, updated_at)
		VALUES (@key, @value, now())
		ON CONFLICT (key) DO UPDATE
		SET value = excluded.value, updated_at = now()`

	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, q, pgx.NamedArgs{"key": key, "value": raw})
	return err
}

// Package entitlement is the single capability-check collaborator the
// rest of the backend queries. Gated features (unlimited records, the
// advanced cost layer) ask the Checker instead of threading boolean
// parameters through calculation and store code.
package entitlement

import (
	"context"
	"fmt"

	"github.com/ganhospro/backend/internal/repo"
)

// Checker reports whether the premium tier is unlocked.
type Checker interface {
	Premium(ctx context.Context) (bool, error)
}

// Manager is the persisted-flag implementation of Checker, backed by the
// state repo's premium key.
type Manager struct {
	state repo.StateRepo
}

// NewManager constructs a Manager backed by the provided state repo.
func NewManager(state repo.StateRepo) *Manager {
	return &Manager{state: state}
}

// Premium returns the stored entitlement flag (false when unset).
func (m *Manager) Premium(ctx context.Context) (bool, error) {
	premium, err := m.state.LoadPremium(ctx)
	if err != nil {
		return false, fmt.Errorf("entitlement.Manager.Premium: %w", err)
	}
	return premium, nil
}

// SetPremium persists the entitlement flag.
func (m *Manager) SetPremium(ctx context.Context, premium bool) error {
	if err := m.state.SavePremium(ctx, premium); err != nil {
		return fmt.Errorf("entitlement.Manager.SetPremium: %w", err)
	}
	return nil
}

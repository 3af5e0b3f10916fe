// Package session owns the client-side session identity: the only code that
// reads or writes wh_user, wh_token and wh_api_base.
//
// Manager.Load is the accessor; Manager.Save (login), Manager.Clear
// (logout) and Manager.Reset (forget everything) are the only mutators.
package session

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/whportal/internal/client/store"
	"github.com/dmitrijs2005/whportal/internal/common"
	"github.com/dmitrijs2005/whportal/internal/logging"
)

type Manager struct {
	db             *sql.DB
	repo           store.Repository
	log            logging.Logger
	defaultAPIBase string
}

func NewManager(db *sql.DB, defaultAPIBase string, log logging.Logger) *Manager {
	if defaultAPIBase == "" {
		defaultAPIBase = common.DefaultAPIBase
	}
	return &Manager{
		db:             db,
		repo:           store.NewSQLiteRepository(db),
		log:            log,
		defaultAPIBase: strings.TrimRight(defaultAPIBase, "/"),
	}
}

// Load reads the stored session. It never fails: missing or malformed data
// and storage errors all yield a guest session (the latter are logged).
func (m *Manager) Load(ctx context.Context) Session {
	s := Session{APIBase: m.APIBase(ctx)}

	raw, err := m.get(ctx, common.KeyUser)
	if err != nil {
		m.log.Warn(ctx, "reading stored identity failed", "error", err)
		return s
	}
	id, ok := ParseIdentity(raw)
	if !ok && raw != "" {
		m.log.Warn(ctx, "stored identity is malformed, treating as guest")
	}
	s.Identity = id

	if s.Token, err = m.get(ctx, common.KeyToken); err != nil {
		m.log.Warn(ctx, "reading stored token failed", "error", err)
	}
	return s
}

// Save writes the identity and token in one transaction. An empty token
// removes any previously stored one.
func (m *Manager) Save(ctx context.Context, id Identity, token string) error {
	data, err := json.Marshal(id)
	if err != nil {
		return fmt.Errorf("encode identity: %w", err)
	}

	return store.WithTx(ctx, m.db, func(ctx context.Context, r store.Repository) error {
		if err := r.Set(ctx, common.KeyUser, string(data)); err != nil {
			return err
		}
		if token == "" {
			return r.Delete(ctx, common.KeyToken)
		}
		return r.Set(ctx, common.KeyToken, token)
	})
}

// Clear removes the token and identity. wh_api_base survives logout.
func (m *Manager) Clear(ctx context.Context) error {
	return m.repo.Delete(ctx, common.KeyToken, common.KeyUser)
}

// Reset removes every stored key, including the API base override and any
// legacy keys.
func (m *Manager) Reset(ctx context.Context) error {
	if err := m.repo.Clear(ctx); err != nil {
		return err
	}
	m.log.Info(ctx, "local storage reset")
	return nil
}

// Entries returns a copy of everything stored, with the token masked.
func (m *Manager) Entries(ctx context.Context) (map[string]string, error) {
	entries, err := m.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	if tok, ok := entries[common.KeyToken]; ok {
		entries[common.KeyToken] = maskToken(tok)
	}
	return entries, nil
}

// maskToken keeps only the last four characters.
func maskToken(tok string) string {
	if len(tok) <= 4 {
		return strings.Repeat("*", len(tok))
	}
	return strings.Repeat("*", len(tok)-4) + tok[len(tok)-4:]
}

// APIBase returns the stored override or the configured default.
func (m *Manager) APIBase(ctx context.Context) string {
	base, err := m.get(ctx, common.KeyAPIBase)
	if err != nil {
		m.log.Warn(ctx, "reading api base override failed", "error", err)
	}
	if base = strings.TrimRight(strings.TrimSpace(base), "/"); base == "" {
		return m.defaultAPIBase
	}
	return base
}

// SetAPIBase stores an origin override; an empty base removes it.
func (m *Manager) SetAPIBase(ctx context.Context, base string) error {
	base = strings.TrimRight(strings.TrimSpace(base), "/")
	if base == "" {
		return m.repo.Delete(ctx, common.KeyAPIBase)
	}
	return m.repo.Set(ctx, common.KeyAPIBase, base)
}

// MigrateLegacy folds the session-scoped role/username keys written by the
// older login page into wh_user, then removes them. An existing wh_user
// always wins. The legacy role key holds the role exactly as the backend
// sent it.
func (m *Manager) MigrateLegacy(ctx context.Context) error {
	username, err := m.get(ctx, common.LegacyKeyUsername)
	if err != nil {
		return err
	}
	role, err := m.get(ctx, common.LegacyKeyRole)
	if err != nil {
		return err
	}
	if username == "" && role == "" {
		return nil
	}

	current, err := m.get(ctx, common.KeyUser)
	if err != nil {
		return err
	}

	return store.WithTx(ctx, m.db, func(ctx context.Context, r store.Repository) error {
		if current == "" && username != "" {
			data, err := json.Marshal(Identity{Name: username, Username: username, Role: RoleFromBackend(role)})
			if err != nil {
				return err
			}
			if err := r.Set(ctx, common.KeyUser, string(data)); err != nil {
				return err
			}
			m.log.Info(ctx, "migrated legacy session keys", "username", username)
		}
		return r.Delete(ctx, common.LegacyKeyRole, common.LegacyKeyUsername)
	})
}

// get maps a missing key to "".
func (m *Manager) get(ctx context.Context, key string) (string, error) {
	v, err := m.repo.Get(ctx, key)
	if errors.Is(err, common.ErrorNotFound) {
		return "", nil
	}
	return v, err
}

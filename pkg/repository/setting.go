package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/umputun/secwatch/pkg/domain"
)

// stateKey is the settings row holding the whole service state
const stateKey = "state"

// SettingRepository handles setting-related database operations
type SettingRepository struct {
	db *sqlx.DB
}

// NewSettingRepository creates a new setting repository
func NewSettingRepository(db *sqlx.DB) *SettingRepository {
	return &SettingRepository{db: db}
}

// GetSetting retrieves a setting value
func (r *SettingRepository) GetSetting(ctx context.Context, key string) (string, error) {
	var value string
	err := r.db.GetContext(ctx, &value, "SELECT value FROM settings WHERE key = ?", key)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("get setting: %w", err)
	}
	return value, nil
}

// SetSetting stores a setting value. The upsert is a single statement, so a
// failed write leaves the previous value in place.
func (r *SettingRepository) SetSetting(ctx context.Context, key, value string) error {
	query := `
		INSERT INTO settings (key, value, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at
	`
	return lockRetrier().Do(ctx, func() error {
		if _, err := r.db.ExecContext(ctx, query, key, value); err != nil {
			if isLockError(err) {
				return err // retry
			}
			return &criticalError{err: fmt.Errorf("set setting: %w", err)}
		}
		return nil
	}, errCritical)
}

// Load returns the stored settings aggregate or defaults if nothing was saved yet
func (r *SettingRepository) Load(ctx context.Context) (*domain.Settings, error) {
	raw, err := r.GetSetting(ctx, stateKey)
	if err != nil {
		return nil, fmt.Errorf("load settings: %w", err)
	}
	if raw == "" {
		return domain.DefaultSettings(), nil
	}

	res := &domain.Settings{}
	if err := json.Unmarshal([]byte(raw), res); err != nil {
		return nil, fmt.Errorf("decode settings: %w", err)
	}
	res.Normalize()
	return res, nil
}

// Save replaces the stored settings aggregate as a whole
func (r *SettingRepository) Save(ctx context.Context, s *domain.Settings) error {
	if s == nil {
		return errors.New("save settings: nil settings")
	}
	data, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("encode settings: %w", err)
	}
	if err := r.SetSetting(ctx, stateKey, string(data)); err != nil {
		return fmt.Errorf("save settings: %w", err)
	}
	return nil
}

package database

import (
	"context"
	"fmt"
	"maps"
	"slices"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"h37bot/internal/domain/entities"
	"h37bot/internal/ports/output"
)

var _ output.SettingsRepository = (*SettingsRepository)(nil)

const (
	selectSettingsSQL = `SELECT key, value FROM settings`
	upsertSettingSQL  = `INSERT INTO settings (key, value, updated_at) VALUES ($1, $2, now())
ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = now()`
)

// SettingsRepository stores settings as key/value rows.
type SettingsRepository struct {
	pool *pgxpool.Pool
}

func NewSettingsRepository(pool *pgxpool.Pool) *SettingsRepository {
	return &SettingsRepository{pool: pool}
}

// Load returns the stored settings; an empty table yields the defaults.
func (r *SettingsRepository) Load(ctx context.Context) (entities.Settings, error) {
	rows, err := r.pool.Query(ctx, selectSettingsSQL)
	if err != nil {
		return entities.Settings{}, fmt.Errorf("select settings: %w", err)
	}
	kv := map[string]string{}
	var key, value string
	_, err = pgx.ForEachRow(rows, []any{&key, &value}, func() error {
		kv[key] = value
		return nil
	})
	if err != nil {
		return entities.Settings{}, fmt.Errorf("scan settings: %w", err)
	}
	return settingsFromKV(kv)
}

// Save upserts every key in a single transaction.
func (r *SettingsRepository) Save(ctx context.Context, settings entities.Settings) error {
	kv := settingsToKV(settings)
	keys := slices.Sorted(maps.Keys(kv))

	err := pgx.BeginFunc(ctx, r.pool, func(tx pgx.Tx) error {
		batch := &pgx.Batch{}
		for _, k := range keys {
			batch.Queue(upsertSettingSQL, k, kv[k])
		}
		br := tx.SendBatch(ctx, batch)
		for _, k := range keys {
			if _, err := br.Exec(); err != nil {
				br.Close()
				return fmt.Errorf("upsert %s: %w", k, err)
			}
		}
		return br.Close()
	})
	if err != nil {
		return fmt.Errorf("save settings: %w", err)
	}
	return nil
}

// Package sqlite implements the snapshot Store on SQLite. Snapshots are
// small JSON blobs keyed by user and window; the engines never touch this
// layer.
package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	_ "modernc.org/sqlite"

	"github.com/mirrorwell/insight/pkg/insight/bridge"
	"github.com/mirrorwell/insight/pkg/insight/distribution"
	"github.com/mirrorwell/insight/pkg/insight/internalerr"
	"github.com/mirrorwell/insight/pkg/insight/store"
)

type sqliteStore struct {
	db *sql.DB
}

// Open opens (creating if needed) a SQLite snapshot store with WAL mode.
func Open(ctx context.Context, path string) (store.Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", internalerr.ErrStoreUnavailable, err)
	}

	if _, err := db.ExecContext(ctx, "PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("%w: %v", internalerr.ErrStoreUnavailable, err)
	}
	if err := initSchema(ctx, db); err != nil {
		db.Close()
		return nil, fmt.Errorf("%w: %v", internalerr.ErrStoreUnavailable, err)
	}

	return &sqliteStore{db: db}, nil
}

func initSchema(ctx context.Context, db *sql.DB) error {
	_, err := db.ExecContext(ctx, `
CREATE TABLE IF NOT EXISTS distributions (
    user_id     TEXT    NOT NULL,
    window_days INTEGER NOT NULL,
    computed_at TEXT    NOT NULL,
    result_json TEXT    NOT NULL,
    PRIMARY KEY (user_id, window_days)
);
CREATE TABLE IF NOT EXISTS bridge_sets (
    user_id      TEXT NOT NULL PRIMARY KEY,
    computed_at  TEXT NOT NULL,
    content_hash TEXT NOT NULL,
    bridges_json TEXT NOT NULL
);`)
	return err
}

func (s *sqliteStore) Close() error { return s.db.Close() }

func (s *sqliteStore) SaveDistribution(ctx context.Context, snap store.DistributionSnapshot) error {
	payload, err := json.Marshal(snap.Result)
	if err != nil {
		return err
	}
	_, err = s.db.ExecContext(ctx, `
INSERT INTO distributions (user_id, window_days, computed_at, result_json)
VALUES (?, ?, ?, ?)
ON CONFLICT (user_id, window_days) DO UPDATE SET
    computed_at = excluded.computed_at,
    result_json = excluded.result_json`,
		snap.UserID, snap.Result.WindowDays, snap.ComputedAt.Format(time.RFC3339Nano), string(payload))
	return err
}

func (s *sqliteStore) GetDistribution(ctx context.Context, userID string, windowDays int) (store.DistributionSnapshot, bool, error) {
	row := s.db.QueryRowContext(ctx, `
SELECT computed_at, result_json FROM distributions
WHERE user_id = ? AND window_days = ?`, userID, windowDays)

	var computedAt, payload string
	if err := row.Scan(&computedAt, &payload); err != nil {
		if err == sql.ErrNoRows {
			return store.DistributionSnapshot{}, false, nil
		}
		return store.DistributionSnapshot{}, false, err
	}

	snap := store.DistributionSnapshot{UserID: userID}
	if t, err := time.Parse(time.RFC3339Nano, computedAt); err == nil {
		snap.ComputedAt = t
	}
	var result distribution.DistributionResult
	if err := json.Unmarshal([]byte(payload), &result); err != nil {
		return store.DistributionSnapshot{}, false, err
	}
	snap.Result = result
	return snap, true, nil
}

func (s *sqliteStore) SaveBridgeSet(ctx context.Context, set store.BridgeSet) error {
	payload, err := json.Marshal(set.Bridges)
	if err != nil {
		return err
	}
	_, err = s.db.ExecContext(ctx, `
INSERT INTO bridge_sets (user_id, computed_at, content_hash, bridges_json)
VALUES (?, ?, ?, ?)
ON CONFLICT (user_id) DO UPDATE SET
    computed_at  = excluded.computed_at,
    content_hash = excluded.content_hash,
    bridges_json = excluded.bridges_json`,
		set.UserID, set.ComputedAt.Format(time.RFC3339Nano), formatHash(set.Hash), string(payload))
	return err
}

func (s *sqliteStore) GetBridgeSet(ctx context.Context, userID string) (store.BridgeSet, bool, error) {
	row := s.db.QueryRowContext(ctx, `
SELECT computed_at, content_hash, bridges_json FROM bridge_sets
WHERE user_id = ?`, userID)

	var computedAt, hash, payload string
	if err := row.Scan(&computedAt, &hash, &payload); err != nil {
		if err == sql.ErrNoRows {
			return store.BridgeSet{}, false, nil
		}
		return store.BridgeSet{}, false, err
	}

	set := store.BridgeSet{UserID: userID, Hash: parseHash(hash)}
	if t, err := time.Parse(time.RFC3339Nano, computedAt); err == nil {
		set.ComputedAt = t
	}
	var bridges []bridge.Bridge
	if err := json.Unmarshal([]byte(payload), &bridges); err != nil {
		return store.BridgeSet{}, false, err
	}
	set.Bridges = bridges
	return set, true, nil
}

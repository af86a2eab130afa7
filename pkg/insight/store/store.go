// Package store persists computed insight snapshots for the analytics
// tooling. The engines themselves never import this package; persistence is
// strictly the collaborator side of the boundary, and raw entries are never
// stored here.
package store

import (
	"context"
	"time"

	"github.com/mirrorwell/insight/pkg/insight/bridge"
	"github.com/mirrorwell/insight/pkg/insight/distribution"
)

// DistributionSnapshot is one computed window distribution for a user.
type DistributionSnapshot struct {
	UserID     string
	ComputedAt time.Time
	Result     distribution.DistributionResult
}

// BridgeSet is one user's final bridge output plus its determinism hash.
type BridgeSet struct {
	UserID     string
	ComputedAt time.Time
	Hash       uint64
	Bridges    []bridge.Bridge
}

// Store persists and retrieves computed snapshots.
type Store interface {
	Close() error

	SaveDistribution(ctx context.Context, snap DistributionSnapshot) error
	GetDistribution(ctx context.Context, userID string, windowDays int) (DistributionSnapshot, bool, error)

	SaveBridgeSet(ctx context.Context, set BridgeSet) error
	GetBridgeSet(ctx context.Context, userID string) (BridgeSet, bool, error)
}

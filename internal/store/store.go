// Package store caches the last good backend snapshot in the local
// database, so the console has data to show across restarts even while
// the backend is unreachable.
package store

import (
	"encoding/json"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/opencourt/tourney-admin/internal/types"
)

type snapshotRow struct {
	Collection string `gorm:"primaryKey"`
	Body       []byte
	UpdatedAt  time.Time
}

func (snapshotRow) TableName() string { return "snapshots" }

type Store struct{ db *gorm.DB }

func New(db *gorm.DB) *Store { return &Store{db: db} }

// SaveSnapshot writes one row per collection. Rows are upserted so a
// partial write failure leaves the previous copy of untouched collections
// in place.
func (s *Store) SaveSnapshot(snap types.Snapshot) error {
	rows := map[string]any{
		"tournaments": snap.Tournaments,
		"pools":       snap.Pools,
		"teams":       snap.Teams,
		"matches":     snap.Matches,
		"players":     snap.Players,
		"standings":   snap.Standings,
		"blogs":       snap.Blogs,
		"admins":      snap.Admins,
		"rules":       snap.Rules,
		"loadedAt":    snap.LoadedAt,
	}
	now := time.Now().UTC()
	for name, v := range rows {
		body, err := json.Marshal(v)
		if err != nil {
			return err
		}
		row := snapshotRow{Collection: name, Body: body, UpdatedAt: now}
		err = s.db.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "collection"}},
			DoUpdates: clause.AssignmentColumns([]string{"body", "updated_at"}),
		}).Create(&row).Error
		if err != nil {
			return err
		}
	}
	return nil
}

// LoadSnapshot rebuilds the cached snapshot. It reports false when nothing
// has been cached yet; a row that fails to decode is skipped rather than
// discarding the rest.
func (s *Store) LoadSnapshot() (types.Snapshot, bool) {
	var rows []snapshotRow
	if err := s.db.Find(&rows).Error; err != nil || len(rows) == 0 {
		return types.Snapshot{}, false
	}
	var snap types.Snapshot
	for _, row := range rows {
		var dst any
		switch row.Collection {
		case "tournaments":
			dst = &snap.Tournaments
		case "pools":
			dst = &snap.Pools
		case "teams":
			dst = &snap.Teams
		case "matches":
			dst = &snap.Matches
		case "players":
			dst = &snap.Players
		case "standings":
			dst = &snap.Standings
		case "blogs":
			dst = &snap.Blogs
		case "admins":
			dst = &snap.Admins
		case "rules":
			dst = &snap.Rules
		case "loadedAt":
			dst = &snap.LoadedAt
		default:
			continue
		}
		_ = json.Unmarshal(row.Body, dst)
	}
	return snap, true
}

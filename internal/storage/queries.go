package storage

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/Jearnest94/NadeStacked/internal/model"
)

// InsertAnalysis stores one analysis run. INSERT OR REPLACE keeps re-running
// the same (demo, player) pair idempotent.
func (db *DB) InsertAnalysis(rec model.AnalysisRecord) error {
	_, err := db.conn.Exec(`
		INSERT OR REPLACE INTO analyses(demo_hash, player, map_name, tickrate, analyzed_at, segment_count, sample_count)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		rec.DemoHash, rec.Player, rec.MapName, rec.Tickrate,
		rec.AnalyzedAt, rec.SegmentCount, rec.SampleCount,
	)
	return err
}

// InsertPositions bulk-inserts a player's position summary in a transaction.
// Occurrence lists are stored as JSON alongside the count.
func (db *DB) InsertPositions(demoHash string, summary []model.PlayerSummary) error {
	tx, err := db.conn.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(`
		INSERT OR REPLACE INTO positions(demo_hash, player, x, y, z, count, occurrences)
		VALUES (?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, ps := range summary {
		for _, pos := range ps.Positions {
			occJSON, err := json.Marshal(pos.Occurrences)
			if err != nil {
				return fmt.Errorf("marshal occurrences for %s: %w", ps.Player, err)
			}
			if _, err := stmt.Exec(demoHash, ps.Player,
				pos.Position[0], pos.Position[1], pos.Position[2],
				pos.Count, string(occJSON)); err != nil {
				return fmt.Errorf("insert position for %s: %w", ps.Player, err)
			}
		}
	}
	return tx.Commit()
}

// ListAnalyses returns all stored runs ordered by analysis time descending.
func (db *DB) ListAnalyses() ([]model.AnalysisRecord, error) {
	rows, err := db.conn.Query(`
		SELECT demo_hash, player, map_name, tickrate, analyzed_at, segment_count, sample_count
		FROM analyses ORDER BY analyzed_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.AnalysisRecord
	for rows.Next() {
		var rec model.AnalysisRecord
		if err := rows.Scan(&rec.DemoHash, &rec.Player, &rec.MapName, &rec.Tickrate,
			&rec.AnalyzedAt, &rec.SegmentCount, &rec.SampleCount); err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}

// GetAnalysisByPrefix finds the first stored run whose demo hash starts with
// the given prefix. Returns nil when none matches.
func (db *DB) GetAnalysisByPrefix(prefix string) (*model.AnalysisRecord, error) {
	var rec model.AnalysisRecord
	err := db.conn.QueryRow(`
		SELECT demo_hash, player, map_name, tickrate, analyzed_at, segment_count, sample_count
		FROM analyses WHERE demo_hash LIKE ? LIMIT 1`, prefix+"%").
		Scan(&rec.DemoHash, &rec.Player, &rec.MapName, &rec.Tickrate,
			&rec.AnalyzedAt, &rec.SegmentCount, &rec.SampleCount)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

// GetPositions loads one player's stored position summary for a demo.
func (db *DB) GetPositions(demoHash, player string) ([]model.PositionSummary, error) {
	rows, err := db.conn.Query(`
		SELECT x, y, z, count, occurrences
		FROM positions WHERE demo_hash = ? AND player = ?
		ORDER BY count DESC, x, y, z`, demoHash, player)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.PositionSummary
	for rows.Next() {
		var pos model.PositionSummary
		var occJSON string
		if err := rows.Scan(&pos.Position[0], &pos.Position[1], &pos.Position[2],
			&pos.Count, &occJSON); err != nil {
			return nil, err
		}
		if err := json.Unmarshal([]byte(occJSON), &pos.Occurrences); err != nil {
			return nil, fmt.Errorf("unmarshal occurrences: %w", err)
		}
		out = append(out, pos)
	}
	return out, rows.Err()
}

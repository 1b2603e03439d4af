package main

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	_ "github.com/mattn/go-sqlite3"
)

const leadersSchema = `
CREATE TABLE IF NOT EXISTS leaders (
	player_name TEXT PRIMARY KEY,
	wins INTEGER NOT NULL DEFAULT 0,
	losses INTEGER NOT NULL DEFAULT 0,
	draws INTEGER NOT NULL DEFAULT 0
);`

const (
	upsertWin = `INSERT INTO leaders (player_name, wins) VALUES (?, 1)
		ON CONFLICT(player_name) DO UPDATE SET wins = wins + 1`
	upsertLoss = `INSERT INTO leaders (player_name, losses) VALUES (?, 1)
		ON CONFLICT(player_name) DO UPDATE SET losses = losses + 1`
	upsertDraw = `INSERT INTO leaders (player_name, draws) VALUES (?, 1)
		ON CONFLICT(player_name) DO UPDATE SET draws = draws + 1`
	selectTop = `SELECT player_name, wins, losses, draws FROM leaders
		ORDER BY wins DESC, draws DESC, losses ASC LIMIT ?`
)

// sqliteLeaderboard persists standings in a local SQLite file.
type sqliteLeaderboard struct {
	db *sql.DB
}

func newSQLiteLeaderboard(dsn string) (*sqliteLeaderboard, error) {
	if !strings.HasPrefix(dsn, ":memory:") {
		if dir := filepath.Dir(dsn); dir != "." && dir != "" {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return nil, fmt.Errorf("mkdir %s: %w", dir, err)
			}
		}
	}
	db, err := sql.Open("sqlite3", dsn+"?_busy_timeout=5000&_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("opening sqlite db: %w", err)
	}
	if _, err := db.Exec(leadersSchema); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating leaders table: %w", err)
	}
	return &sqliteLeaderboard{db: db}, nil
}

func (s *sqliteLeaderboard) RecordWin(ctx context.Context, winner, loser string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx, upsertWin, winner); err != nil {
		tx.Rollback()
		return fmt.Errorf("recording win for %s: %w", winner, err)
	}
	if _, err := tx.ExecContext(ctx, upsertLoss, loser); err != nil {
		tx.Rollback()
		return fmt.Errorf("recording loss for %s: %w", loser, err)
	}
	return tx.Commit()
}

func (s *sqliteLeaderboard) RecordDraw(ctx context.Context, a, b string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	for _, name := range []string{a, b} {
		if _, err := tx.ExecContext(ctx, upsertDraw, name); err != nil {
			tx.Rollback()
			return fmt.Errorf("recording draw for %s: %w", name, err)
		}
	}
	return tx.Commit()
}

func (s *sqliteLeaderboard) TopN(ctx context.Context, n int) ([]LeaderboardRow, error) {
	result, err := s.db.QueryContext(ctx, selectTop, n)
	if err != nil {
		return nil, fmt.Errorf("querying leaders: %w", err)
	}
	defer result.Close()

	rows := make([]LeaderboardRow, 0, n)
	for result.Next() {
		var row LeaderboardRow
		if err := result.Scan(&row.PlayerName, &row.Wins, &row.Losses, &row.Draws); err != nil {
			return nil, err
		}
		rows = append(rows, row)
	}
	return rows, result.Err()
}

func (s *sqliteLeaderboard) Close() error {
	return s.db.Close()
}

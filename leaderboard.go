package main

import (
	"context"
	"fmt"
	"sort"
	"strconv"

	"github.com/go-redis/redis/v8"
)

// leaderboardSize is how many rows each standings broadcast carries.
const leaderboardSize = 14

// LeaderboardRow is one line of the standings table.
type LeaderboardRow struct {
	PlayerName string `json:"player_name"`
	Wins       int    `json:"wins"`
	Losses     int    `json:"losses"`
	Draws      int    `json:"draws"`
}

// LeaderboardStore is the narrow persistence interface the hub uses for
// standings. Backends: redis (redisLeaderboard) and SQLite
// (sqliteLeaderboard).
type LeaderboardStore interface {
	RecordWin(ctx context.Context, winner, loser string) error
	RecordDraw(ctx context.Context, a, b string) error
	// TopN returns up to n rows ordered by wins desc, draws desc,
	// losses asc.
	TopN(ctx context.Context, n int) ([]LeaderboardRow, error)
	Close() error
}

// sortRows orders standings by wins desc, draws desc, losses asc.
func sortRows(rows []LeaderboardRow) {
	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].Wins != rows[j].Wins {
			return rows[i].Wins > rows[j].Wins
		}
		if rows[i].Draws != rows[j].Draws {
			return rows[i].Draws > rows[j].Draws
		}
		return rows[i].Losses < rows[j].Losses
	})
}

const (
	leaderboardPlayersKey = "leaderboard:players"
	leaderboardStatsKey   = "leaderboard:stats:%s"
)

// redisLeaderboard keeps one hash of counters per player plus a set of
// known player names. Ordering is applied client-side on fetch.
type redisLeaderboard struct {
	rdb *redis.Client
}

func newRedisLeaderboard(url string) (*redisLeaderboard, error) {
	opt, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("parsing redis url: %w", err)
	}
	rdb := redis.NewClient(opt)
	if err := rdb.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("connecting to redis: %w", err)
	}
	return &redisLeaderboard{rdb: rdb}, nil
}

func (s *redisLeaderboard) RecordWin(ctx context.Context, winner, loser string) error {
	pipe := s.rdb.TxPipeline()
	pipe.SAdd(ctx, leaderboardPlayersKey, winner, loser)
	pipe.HIncrBy(ctx, fmt.Sprintf(leaderboardStatsKey, winner), "wins", 1)
	pipe.HIncrBy(ctx, fmt.Sprintf(leaderboardStatsKey, loser), "losses", 1)
	_, err := pipe.Exec(ctx)
	return err
}

func (s *redisLeaderboard) RecordDraw(ctx context.Context, a, b string) error {
	pipe := s.rdb.TxPipeline()
	pipe.SAdd(ctx, leaderboardPlayersKey, a, b)
	pipe.HIncrBy(ctx, fmt.Sprintf(leaderboardStatsKey, a), "draws", 1)
	pipe.HIncrBy(ctx, fmt.Sprintf(leaderboardStatsKey, b), "draws", 1)
	_, err := pipe.Exec(ctx)
	return err
}

func (s *redisLeaderboard) TopN(ctx context.Context, n int) ([]LeaderboardRow, error) {
	names, err := s.rdb.SMembers(ctx, leaderboardPlayersKey).Result()
	if err != nil {
		return nil, fmt.Errorf("fetching player set: %w", err)
	}
	if len(names) == 0 {
		return []LeaderboardRow{}, nil
	}

	pipe := s.rdb.Pipeline()
	cmds := make([]*redis.StringStringMapCmd, len(names))
	for i, name := range names {
		cmds[i] = pipe.HGetAll(ctx, fmt.Sprintf(leaderboardStatsKey, name))
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return nil, fmt.Errorf("fetching player stats: %w", err)
	}

	rows := make([]LeaderboardRow, 0, len(names))
	for i, name := range names {
		stats := cmds[i].Val()
		rows = append(rows, LeaderboardRow{
			PlayerName: name,
			Wins:       atoi(stats["wins"]),
			Losses:     atoi(stats["losses"]),
			Draws:      atoi(stats["draws"]),
		})
	}
	sortRows(rows)
	if len(rows) > n {
		rows = rows[:n]
	}
	return rows, nil
}

func (s *redisLeaderboard) Close() error {
	return s.rdb.Close()
}

func atoi(s string) int {
	n, _ := strconv.Atoi(s)
	return n
}

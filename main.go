package main

import (
	"context"
	"net/http"
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/cors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	_ = godotenv.Load()
	if lvl, err := zerolog.ParseLevel(getEnv("LOG_LEVEL", "info")); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}

	store, err := openLeaderboard()
	if err != nil {
		log.Fatal().Err(err).Msg("opening leaderboard store")
	}
	defer store.Close()

	hub := newHub(store, log.With().Str("component", "hub").Logger())
	go hub.run(context.Background())

	mux := http.NewServeMux()
	mux.HandleFunc("/ws", func(w http.ResponseWriter, r *http.Request) {
		serveWs(hub, w, r)
	})
	handler := cors.Default().Handler(mux)

	addr := ":" + getEnv("PORT", "8080")
	log.Info().Str("addr", addr).Msg("server starting")
	if err := http.ListenAndServe(addr, handler); err != nil {
		log.Fatal().Err(err).Msg("server exited")
	}
}

// openLeaderboard picks the standings backend: redis when REDIS_URL is
// set, a local SQLite file otherwise.
func openLeaderboard() (LeaderboardStore, error) {
	if url := os.Getenv("REDIS_URL"); url != "" {
		log.Info().Str("url", url).Msg("using redis leaderboard")
		return newRedisLeaderboard(url)
	}
	dsn := getEnv("LEADERBOARD_DB", "./data/leaderboard.db")
	log.Info().Str("path", dsn).Msg("using sqlite leaderboard")
	return newSQLiteLeaderboard(dsn)
}

func getEnv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

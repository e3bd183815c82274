// The syncservice binary is the desktop companion process that pair-check
// launches. It keeps a heartbeat against the shared database so the desktop
// side notices connectivity problems before the next sync attempt.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"sync-backend/internal/timeutil"
)

var logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}).With().Timestamp().Logger()

const heartbeatInterval = 30 * time.Second

// session accumulates heartbeat statistics for this run only.
type session struct {
	started  time.Time
	beats    uint64
	failures uint64
}

func main() {
	godotenv.Load()

	logger.Info().Str("date", timeutil.Today()).Msg("sync service started")

	st := session{started: timeutil.Now()}
	ticker := time.NewTicker(heartbeatInterval)
	defer ticker.Stop()

	for {
		if err := heartbeat(); err != nil {
			st.failures++
			logger.Error().
				Err(err).
				Uint64("failures", st.failures).
				Msg("heartbeat failed")
		} else {
			st.beats++
			logger.Info().
				Uint64("beats", st.beats).
				Str("uptime", time.Since(st.started).Round(time.Second).String()).
				Msg("db heartbeat ok")
		}
		<-ticker.C
	}
}

func heartbeat() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	conn, err := pgx.Connect(ctx, dsnFromEnv())
	if err != nil {
		return err
	}
	defer conn.Close(ctx)

	var one int
	return conn.QueryRow(ctx, "SELECT 1").Scan(&one)
}

func dsnFromEnv() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s",
		getEnv("DB_USER", "postgres"),
		getEnv("DB_PASSWORD", ""),
		getEnv("DB_HOST", "localhost"),
		getEnv("DB_PORT", "5432"),
		getEnv("DB_NAME", "sync_db"),
	)
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

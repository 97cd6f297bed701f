// Command waitforpostgres blocks until the configured Postgres instance
// accepts connections. Used by deploy scripts to order startup.
package main

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/Alisher1994/dbudget/internal/infrastructure/config"
	"github.com/Alisher1994/dbudget/internal/infrastructure/db/postgres"
)

const retryInterval = 2 * time.Second

func main() {
	cfg := config.Load()

	timeout := 60 * time.Second
	if raw := os.Getenv("WAIT_FOR_POSTGRES_TIMEOUT_SEC"); raw != "" {
		secs, err := strconv.Atoi(raw)
		if err != nil || secs <= 0 {
			fmt.Fprintf(os.Stderr, "invalid WAIT_FOR_POSTGRES_TIMEOUT_SEC: %q\n", raw)
			os.Exit(2)
		}
		timeout = time.Duration(secs) * time.Second
	}

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	var lastErr error
	for {
		db, err := postgres.Connect(ctx, postgres.Config{DSN: cfg.Postgres.DSN, Timeout: retryInterval})
		if err == nil {
			db.Close()
			fmt.Println("postgres ready")
			return
		}
		lastErr = err

		select {
		case <-ctx.Done():
			fmt.Fprintf(os.Stderr, "postgres not ready within %s: %v\n", timeout, lastErr)
			os.Exit(1)
		case <-time.After(retryInterval):
		}
	}
}

// Package storage persists generated pattern libraries: a Redis
// cache for fast lookup by the tools, and a Postgres archive as
// the durable copy.  Storage is optional; the generator runs
// fully without it.
package storage

import (
	"context"
	"fmt"
	"os"
	"sync"

	"github.com/gomodule/redigo/redis"
	"github.com/jackc/pgx/v5"
)

// Connect opens the cache and archive connections and makes sure
// the archive schema exists.  It returns the identifiers of the
// endpoints it connected to.
func Connect() (cacheId, databaseId string, err error) {
	rdInit()
	rdMutex.Lock()
	defer rdMutex.Unlock()
	cacheId, err = rdConnect()
	if err != nil {
		return
	}

	pgInit()
	databaseId, err = pgConnect()
	if err != nil {
		return
	}
	err = ensureSchema()
	return
}

// Close shuts down both connections.
func Close() {
	rdMutex.Lock()
	defer rdMutex.Unlock()
	pgClose()
	rdClose()
}

/*

cache using Redis

*/

// Redis connection data
var (
	rdc     redis.Conn // open connection, if any
	rdUrl   string     // URL for the open connection
	rdMutex sync.Mutex // prevent concurrent connection use
)

// rdInit - look up Redis info from the environment
func rdInit() {
	url := os.Getenv("REDIS_URL")
	if url == "" {
		rdUrl = "redis://localhost:6379/"
	} else {
		rdUrl = url
	}
}

// rdConnect: connect to the given Redis URL.  Returns the
// connection id, if successful, an error otherwise.
func rdConnect() (string, error) {
	conn, err := redis.DialURL(rdUrl)
	if err != nil {
		return "", fmt.Errorf("couldn't connect to cache at %q: %v", rdUrl, err)
	}
	rdc = conn
	return rdUrl, nil
}

// rdClose: close the open Redis connection, if any.
func rdClose() {
	if rdc != nil {
		rdc.Close()
		rdc = nil
	}
}

// rdExecute: execute the body with the Redis mutex and
// connection held.  Because Redis connections can go away
// without warning, it pings first and reconnects if needed.
func rdExecute(body func(conn redis.Conn) error) error {
	rdMutex.Lock()
	defer rdMutex.Unlock()
	if rdc == nil {
		return fmt.Errorf("cache is not connected")
	}
	if _, err := rdc.Do("PING"); err != nil {
		rdClose()
		if _, err := rdConnect(); err != nil {
			return fmt.Errorf("failed to reconnect to cache at %q: %v", rdUrl, err)
		}
	}
	return body(rdc)
}

/*

persistence using Postgres

*/

// Postgres connection data
var (
	pgConn *pgx.Conn // open database, if any
	pgUrl  string    // URL for the open connection
)

// pgInit - look up Postgres info from the environment
func pgInit() {
	url := os.Getenv("DATABASE_URL")
	if url == "" {
		pgUrl = "postgres://localhost/starbattle?sslmode=disable"
	} else {
		pgUrl = url
	}
}

// pgConnect: open the Postgres database.  Returns any error
// encountered during the open.
func pgConnect() (string, error) {
	conn, err := pgx.Connect(context.Background(), pgUrl)
	if err != nil {
		return "", fmt.Errorf("couldn't connect to db at %q: %v", pgUrl, err)
	}
	pgConn = conn
	return pgUrl, nil
}

// pgClose: close the open Postgres connection, if any.
func pgClose() {
	if pgConn != nil {
		pgConn.Close(context.Background())
		pgConn = nil
	}
}

// pgExecute: execute the body inside a single transaction.  If
// the body errs out, the transaction is rolled back, otherwise
// it's committed.
func pgExecute(body func(tx pgx.Tx) error) error {
	if pgConn == nil {
		return fmt.Errorf("database is not connected")
	}
	ctx := context.Background()
	tx, err := pgConn.Begin(ctx)
	if err != nil {
		return fmt.Errorf("can't open a transaction against database: %v", err)
	}
	if err := body(tx); err != nil {
		tx.Rollback(ctx)
		return err
	}
	return tx.Commit(ctx)
}

// the one archive table; no seed data, so the schema is ensured
// inline rather than through a migration tool
const librariesSchema = `
CREATE TABLE IF NOT EXISTS pattern_libraries (
	family_id        text PRIMARY KEY,
	board_size       integer NOT NULL,
	stars_per_row    integer NOT NULL,
	stars_per_column integer NOT NULL,
	content          jsonb NOT NULL,
	updated_at       timestamptz NOT NULL DEFAULT now()
)`

// ensureSchema creates the archive table if it doesn't exist.
func ensureSchema() error {
	return pgExecute(func(tx pgx.Tx) error {
		_, err := tx.Exec(context.Background(), librariesSchema)
		return err
	})
}

package storage

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/gomodule/redigo/redis"
	"github.com/jackc/pgx/v5"

	"github.com/kristofer84/star-battle-patterns/patterns"
)

/*

pattern library persistence

Libraries are stored whole, as the same JSON blob the file
artifacts use: the consumer-facing encoding is the one source of
truth for the shape.

*/

// cacheKey returns the Redis key for a family's library.
func cacheKey(familyID string) string {
	return "starb:library:" + familyID
}

// SaveLibrary writes a library to both the cache and the
// archive.  The archive row is upserted, so regenerating a
// family replaces its prior patterns.
func SaveLibrary(lib patterns.Library) error {
	if lib.FamilyID == "" {
		return fmt.Errorf("library has no family id")
	}
	blob, err := json.Marshal(lib)
	if err != nil {
		return err
	}
	if err := rdExecute(func(conn redis.Conn) error {
		_, err := conn.Do("SET", cacheKey(lib.FamilyID), blob)
		return err
	}); err != nil {
		return err
	}
	return pgExecute(func(tx pgx.Tx) error {
		_, err := tx.Exec(context.Background(),
			`INSERT INTO pattern_libraries
				(family_id, board_size, stars_per_row, stars_per_column, content, updated_at)
			 VALUES ($1, $2, $3, $4, $5, now())
			 ON CONFLICT (family_id) DO UPDATE SET
				board_size = EXCLUDED.board_size,
				stars_per_row = EXCLUDED.stars_per_row,
				stars_per_column = EXCLUDED.stars_per_column,
				content = EXCLUDED.content,
				updated_at = now()`,
			lib.FamilyID, lib.BoardSize, lib.StarsPerRow, lib.StarsPerColumn, blob)
		return err
	})
}

// LoadLibrary reads a family's library, preferring the cache and
// falling back to the archive (re-caching on a hit there).  The
// boolean reports whether the library was found at all.
func LoadLibrary(familyID string) (patterns.Library, bool, error) {
	var lib patterns.Library
	var blob []byte
	err := rdExecute(func(conn redis.Conn) error {
		b, err := redis.Bytes(conn.Do("GET", cacheKey(familyID)))
		if err == redis.ErrNil {
			return nil
		}
		if err != nil {
			return err
		}
		blob = b
		return nil
	})
	if err != nil {
		return lib, false, err
	}
	if blob == nil {
		err = pgExecute(func(tx pgx.Tx) error {
			row := tx.QueryRow(context.Background(),
				`SELECT content FROM pattern_libraries WHERE family_id = $1`, familyID)
			if err := row.Scan(&blob); err != nil {
				if err == pgx.ErrNoRows {
					blob = nil
					return nil
				}
				return err
			}
			return nil
		})
		if err != nil {
			return lib, false, err
		}
		if blob == nil {
			return lib, false, nil
		}
		// archive hit; repopulate the cache for next time
		recache := blob
		_ = rdExecute(func(conn redis.Conn) error {
			_, err := conn.Do("SET", cacheKey(familyID), recache)
			return err
		})
	}
	if err := json.Unmarshal(blob, &lib); err != nil {
		return lib, false, fmt.Errorf("malformed stored library %q: %v", familyID, err)
	}
	return lib, true, nil
}

// ListLibraries returns the family ids present in the archive.
func ListLibraries() ([]string, error) {
	var ids []string
	err := pgExecute(func(tx pgx.Tx) error {
		rows, err := tx.Query(context.Background(),
			`SELECT family_id FROM pattern_libraries ORDER BY family_id`)
		if err != nil {
			return err
		}
		defer rows.Close()
		for rows.Next() {
			var id string
			if err := rows.Scan(&id); err != nil {
				return err
			}
			ids = append(ids, id)
		}
		return rows.Err()
	})
	return ids, err
}

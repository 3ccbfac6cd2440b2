package metrics

import (
	"context"
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

// schemaV1 defines the result database schema.
const schemaV1 = `
CREATE TABLE IF NOT EXISTS runs (
	id              INTEGER PRIMARY KEY AUTOINCREMENT,
	seed            TEXT NOT NULL,
	games           INTEGER NOT NULL DEFAULT 0,
	mismatches      INTEGER NOT NULL DEFAULT 0,
	created_at_unix INTEGER NOT NULL DEFAULT 0
);

CREATE TABLE IF NOT EXISTS game_checks (
	id                 INTEGER PRIMARY KEY AUTOINCREMENT,
	run_id             INTEGER NOT NULL,
	game_id            INTEGER NOT NULL,
	players            INTEGER NOT NULL,
	flat_players       INTEGER NOT NULL,
	local_games        INTEGER NOT NULL,
	profiles           INTEGER NOT NULL,
	utility_checks     INTEGER NOT NULL,
	utility_mismatches INTEGER NOT NULL,
	nash_checks        INTEGER NOT NULL,
	nash_mismatches    INTEGER NOT NULL,
	duration_ns        INTEGER NOT NULL,
	UNIQUE(run_id, game_id)
);
CREATE INDEX IF NOT EXISTS idx_game_checks_run ON game_checks(run_id);
`

// Store persists experiment results to SQLite.
type Store struct {
	db *sql.DB
}

// NewStore opens a SQLite database at the given path with recommended
// pragmas and runs the schema migration.
func NewStore(path string) (*Store, error) {
	dsn := fmt.Sprintf("file:%s?_pragma=journal_mode(WAL)&_pragma=synchronous(NORMAL)&_pragma=busy_timeout(5000)", path)

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	// Limit connections to 1 for SQLite (WAL allows concurrent reads but single writer).
	db.SetMaxOpenConns(1)

	if _, err := db.ExecContext(context.Background(), schemaV1); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate schema: %w", err)
	}

	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

// SaveRun records a whole experiment run and its per-game checks in one
// transaction, returning the run's row id.
func (s *Store) SaveRun(ctx context.Context, seed uint64, createdAtUnix int64, records []GameRecord) (int64, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback()

	mismatches := 0
	for _, record := range records {
		mismatches += record.UtilityMismatches + record.NashMismatches
	}

	res, err := tx.ExecContext(ctx,
		`INSERT INTO runs (seed, games, mismatches, created_at_unix) VALUES (?, ?, ?, ?)`,
		fmt.Sprintf("%d", seed), len(records), mismatches, createdAtUnix)
	if err != nil {
		return 0, fmt.Errorf("insert run: %w", err)
	}
	runID, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("run id: %w", err)
	}

	for _, record := range records {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO game_checks (
				run_id, game_id, players, flat_players, local_games, profiles,
				utility_checks, utility_mismatches, nash_checks, nash_mismatches, duration_ns
			) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			runID, record.ID, record.Players, record.FlatPlayers, record.LocalGames,
			record.Profiles, record.UtilityChecks, record.UtilityMismatches,
			record.NashChecks, record.NashMismatches, record.Duration.Nanoseconds())
		if err != nil {
			return 0, fmt.Errorf("insert game check %d: %w", record.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit: %w", err)
	}
	return runID, nil
}

// RunSummary reads back a run's aggregate row.
func (s *Store) RunSummary(ctx context.Context, runID int64) (games, mismatches int, err error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT games, mismatches FROM runs WHERE id = ?`, runID)
	if err := row.Scan(&games, &mismatches); err != nil {
		return 0, 0, fmt.Errorf("scan run %d: %w", runID, err)
	}
	return games, mismatches, nil
}

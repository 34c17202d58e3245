package iocache

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-sql-driver/mysql"
	"github.com/hoopworks/courtside/internal/contract"
	"github.com/hoopworks/courtside/schema"
)

// Table names for standings snapshot tracking.
const (
	snapshotRunsTable      = "courtside_runs"
	snapshotStandingsTable = "courtside_standings"
)

// SnapshotStoreImpl implements the SnapshotStore interface.
type SnapshotStoreImpl struct {
	db         *sql.DB
	backend    schema.DatabaseBackend
	driverName string
}

var _ contract.SnapshotStore = &SnapshotStoreImpl{} // Compile-time check

// NewSnapshotStore creates a new SnapshotStore with the specified backend.
func NewSnapshotStore(backend schema.DatabaseBackend, connStr string) (contract.SnapshotStore, error) {
	var db *sql.DB
	var err error
	var driverName string

	switch backend {
	case schema.SQLiteBackend:
		driverName = "sqlite"
		dbPath := connStr
		if dbPath == "" {
			dbPath = GetSnapshotDBFilePath()
		}
		db, err = sql.Open(driverName, dbPath)
		if err != nil {
			return nil, fmt.Errorf("failed to open SQLite database at %q: %w. Check that the directory is writable", dbPath, err)
		}
		// Limit SQLite to a single open connection to avoid "database is locked" errors
		db.SetMaxOpenConns(1)

	case schema.MySQLBackend:
		driverName = "mysql"
		// run_time is a DATETIME column scanned into time.Time, which the
		// MySQL driver only does when the DSN carries parseTime=true.
		dsn, parseErr := mysql.ParseDSN(connStr)
		if parseErr != nil {
			return nil, fmt.Errorf("invalid MySQL connection string: %w. Check connection string format: user:password@tcp(host:port)/dbname", parseErr)
		}
		if !dsn.ParseTime {
			return nil, fmt.Errorf("MySQL snapshot connections require parseTime=true to read run timestamps. Append ?parseTime=true to the connection string")
		}
		db, err = sql.Open(driverName, connStr)
		if err != nil {
			return nil, fmt.Errorf("failed to open MySQL database: %w. Check connection string format: user:password@tcp(host:port)/dbname", err)
		}

	case schema.PostgreSQLBackend:
		driverName = "pgx"
		db, err = sql.Open(driverName, connStr)
		if err != nil {
			return nil, fmt.Errorf("failed to open PostgreSQL database: %w. Check connection string format: host=localhost port=5432 user=postgres dbname=mydb", err)
		}

	case schema.NoneBackend:
		// Return a no-op store for disabled snapshot tracking
		return &SnapshotStoreImpl{
			db:         nil,
			backend:    backend,
			driverName: "",
		}, nil

	default:
		return nil, fmt.Errorf("unsupported backend: %s", backend)
	}

	// Ping to verify connection
	if err := db.Ping(); err != nil {
		_ = db.Close()
		var connDetail string
		switch backend {
		case schema.MySQLBackend:
			connDetail = "Check that MySQL is running and the connection string is correct. Ensure user/password are valid."
		case schema.PostgreSQLBackend:
			connDetail = "Check that PostgreSQL is running and the connection string is correct. Ensure user/password are valid."
		default:
			connDetail = "Verify the database server is running and accessible."
		}
		return nil, fmt.Errorf("failed to connect to %s database: %w. %s", backend, err, connDetail)
	}

	// Create the table schemas
	if err := createSnapshotTables(db, backend); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to create snapshot tables: %w", err)
	}

	return &SnapshotStoreImpl{
		db:         db,
		backend:    backend,
		driverName: driverName,
	}, nil
}

// createSnapshotTables creates the standings snapshot tables.
func createSnapshotTables(db *sql.DB, backend schema.DatabaseBackend) error {
	tables := []struct {
		name  string
		query string
	}{
		{snapshotRunsTable, getCreateRunsQuery(backend)},
		{snapshotStandingsTable, getCreateStandingsQuery(backend)},
	}

	for _, table := range tables {
		if _, err := db.Exec(table.query); err != nil {
			return fmt.Errorf("failed to create table %s: %w", table.name, err)
		}
	}

	return nil
}

// getCreateRunsQuery returns the CREATE TABLE query for courtside_runs.
func getCreateRunsQuery(backend schema.DatabaseBackend) string {
	quotedTableName := quoteTableName(snapshotRunsTable, backend)

	switch backend {
	case schema.MySQLBackend:
		return fmt.Sprintf(`
			CREATE TABLE IF NOT EXISTS %s (
				run_id BIGINT AUTO_INCREMENT PRIMARY KEY,
				run_time DATETIME(6) NOT NULL,
				fingerprint VARCHAR(64) NOT NULL,
				team_count INT,
				params TEXT
			);
		`, quotedTableName)

	case schema.PostgreSQLBackend:
		return fmt.Sprintf(`
			CREATE TABLE IF NOT EXISTS %s (
				run_id BIGSERIAL PRIMARY KEY,
				run_time TIMESTAMPTZ NOT NULL,
				fingerprint TEXT NOT NULL,
				team_count INT,
				params TEXT
			);
		`, quotedTableName)

	default: // SQLite
		return fmt.Sprintf(`
			CREATE TABLE IF NOT EXISTS %s (
				run_id INTEGER PRIMARY KEY AUTOINCREMENT,
				run_time TEXT NOT NULL,
				fingerprint TEXT NOT NULL,
				team_count INTEGER,
				params TEXT
			);
		`, quotedTableName)
	}
}

// getCreateStandingsQuery returns the CREATE TABLE query for courtside_standings.
func getCreateStandingsQuery(backend schema.DatabaseBackend) string {
	quotedTableName := quoteTableName(snapshotStandingsTable, backend)

	switch backend {
	case schema.MySQLBackend:
		return fmt.Sprintf(`
			CREATE TABLE IF NOT EXISTS %s (
				run_id BIGINT NOT NULL,
				team VARCHAR(100) NOT NULL,
				conference VARCHAR(10) NOT NULL,
				team_rank INT NOT NULL,
				wins INT NOT NULL,
				losses INT NOT NULL,
				win_pct DOUBLE NOT NULL,
				expected_win_pct DOUBLE NOT NULL,
				expected_wins DOUBLE NOT NULL,
				luck_index DOUBLE NOT NULL,
				PRIMARY KEY (run_id, team)
			);
		`, quotedTableName)

	case schema.PostgreSQLBackend:
		return fmt.Sprintf(`
			CREATE TABLE IF NOT EXISTS %s (
				run_id BIGINT NOT NULL,
				team TEXT NOT NULL,
				conference TEXT NOT NULL,
				team_rank INT NOT NULL,
				wins INT NOT NULL,
				losses INT NOT NULL,
				win_pct DOUBLE PRECISION NOT NULL,
				expected_win_pct DOUBLE PRECISION NOT NULL,
				expected_wins DOUBLE PRECISION NOT NULL,
				luck_index DOUBLE PRECISION NOT NULL,
				PRIMARY KEY (run_id, team)
			);
		`, quotedTableName)

	default: // SQLite
		return fmt.Sprintf(`
			CREATE TABLE IF NOT EXISTS %s (
				run_id INTEGER NOT NULL,
				team TEXT NOT NULL,
				conference TEXT NOT NULL,
				team_rank INTEGER NOT NULL,
				wins INTEGER NOT NULL,
				losses INTEGER NOT NULL,
				win_pct REAL NOT NULL,
				expected_win_pct REAL NOT NULL,
				expected_wins REAL NOT NULL,
				luck_index REAL NOT NULL,
				PRIMARY KEY (run_id, team)
			);
		`, quotedTableName)
	}
}

// BeginRun creates a new standings run and returns its unique ID.
func (ss *SnapshotStoreImpl) BeginRun(runTime time.Time, fingerprint string, params map[string]any) (int64, error) {
	// Skip for NoneBackend
	if ss.backend == schema.NoneBackend || ss.db == nil {
		return 0, nil
	}

	// Serialize analytics params to JSON
	paramsJSON, err := json.Marshal(params)
	if err != nil {
		return 0, fmt.Errorf("failed to marshal run params: %w", err)
	}

	quotedTableName := quoteTableName(snapshotRunsTable, ss.backend)

	var runID int64
	switch ss.backend {
	case schema.PostgreSQLBackend:
		query := fmt.Sprintf(`INSERT INTO %s (run_time, fingerprint, params) VALUES ($1, $2, $3) RETURNING run_id`, quotedTableName)
		err = ss.db.QueryRow(query, runTime, fingerprint, string(paramsJSON)).Scan(&runID)
	default: // SQLite and MySQL
		query := fmt.Sprintf(`INSERT INTO %s (run_time, fingerprint, params) VALUES (?, ?, ?)`, quotedTableName)
		var result sql.Result
		result, err = ss.db.Exec(query, formatTime(runTime, ss.backend), fingerprint, string(paramsJSON))
		if err != nil {
			return 0, err
		}
		runID, err = result.LastInsertId()
	}

	if err != nil {
		return 0, fmt.Errorf("failed to insert standings run: %w", err)
	}

	return runID, nil
}

// EndRun updates the run with its final team count.
func (ss *SnapshotStoreImpl) EndRun(runID int64, teamCount int) error {
	// Skip for NoneBackend
	if ss.backend == schema.NoneBackend || ss.db == nil {
		return nil
	}

	quotedTableName := quoteTableName(snapshotRunsTable, ss.backend)

	var query string
	switch ss.backend {
	case schema.PostgreSQLBackend:
		query = fmt.Sprintf(`UPDATE %s SET team_count = $1 WHERE run_id = $2`, quotedTableName)
	default: // SQLite and MySQL
		query = fmt.Sprintf(`UPDATE %s SET team_count = ? WHERE run_id = ?`, quotedTableName)
	}

	if _, err := ss.db.Exec(query, teamCount, runID); err != nil {
		return fmt.Errorf("failed to update standings run: %w", err)
	}

	return nil
}

// RecordStanding stores one ranked standing row with its luck figures.
func (ss *SnapshotStoreImpl) RecordStanding(runID int64, standing schema.ConferenceStanding, luck schema.LuckEntry) error {
	// Skip for NoneBackend
	if ss.backend == schema.NoneBackend || ss.db == nil {
		return nil
	}

	quotedTableName := quoteTableName(snapshotStandingsTable, ss.backend)

	var query string
	switch ss.backend {
	case schema.PostgreSQLBackend:
		query = fmt.Sprintf(`
			INSERT INTO %s (run_id, team, conference, team_rank, wins, losses,
			                 win_pct, expected_win_pct, expected_wins, luck_index)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		`, quotedTableName)
	default: // SQLite and MySQL
		query = fmt.Sprintf(`
			INSERT INTO %s (run_id, team, conference, team_rank, wins, losses,
			                 win_pct, expected_win_pct, expected_wins, luck_index)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		`, quotedTableName)
	}

	args := []any{
		runID, standing.Team, string(standing.Conference), standing.Rank, standing.Wins, standing.Losses,
		standing.WinPct, luck.ExpectedWinPct, luck.ExpectedWins, luck.LuckIndex,
	}

	if _, err := ss.db.Exec(query, args...); err != nil {
		return fmt.Errorf("failed to insert standing row: %w", err)
	}

	return nil
}

// Close closes the underlying connection.
func (ss *SnapshotStoreImpl) Close() error {
	if ss.db != nil {
		return ss.db.Close()
	}
	return nil
}

// GetStatus returns status information about the snapshot store.
func (ss *SnapshotStoreImpl) GetStatus() (schema.SnapshotStatus, error) {
	status := schema.SnapshotStatus{
		Backend:    string(ss.backend),
		Connected:  ss.db != nil,
		TableSizes: make(map[string]int64),
	}

	if ss.backend == schema.NoneBackend || ss.db == nil {
		return status, nil
	}

	// Get total runs
	runsQuery := fmt.Sprintf("SELECT COUNT(*) FROM %s", quoteTableName(snapshotRunsTable, ss.backend))
	row := ss.db.QueryRow(runsQuery)
	if err := row.Scan(&status.TotalRuns); err != nil {
		return status, fmt.Errorf("failed to get total runs: %w", err)
	}

	if status.TotalRuns > 0 {
		// Get last run info
		lastRunQuery := fmt.Sprintf("SELECT run_id, run_time FROM %s ORDER BY run_id DESC LIMIT 1", quoteTableName(snapshotRunsTable, ss.backend))
		row = ss.db.QueryRow(lastRunQuery)

		switch ss.backend {
		case schema.SQLiteBackend:
			var lastRunID int64
			var lastRunTimeStr string
			if err := row.Scan(&lastRunID, &lastRunTimeStr); err != nil {
				return status, fmt.Errorf("failed to get last run info: %w", err)
			}
			status.LastRunID = lastRunID
			lastRunTime, err := time.Parse(time.RFC3339Nano, lastRunTimeStr)
			if err != nil {
				return status, fmt.Errorf("failed to parse last run time: %w", err)
			}
			status.LastRunTime = lastRunTime
		default: // MySQL and PostgreSQL store as native datetime
			if err := row.Scan(&status.LastRunID, &status.LastRunTime); err != nil {
				return status, fmt.Errorf("failed to get last run info: %w", err)
			}
		}

		// Get oldest run time
		oldestRunQuery := fmt.Sprintf("SELECT run_time FROM %s ORDER BY run_id ASC LIMIT 1", quoteTableName(snapshotRunsTable, ss.backend))
		row = ss.db.QueryRow(oldestRunQuery)

		switch ss.backend {
		case schema.SQLiteBackend:
			var oldestRunTimeStr string
			if err := row.Scan(&oldestRunTimeStr); err != nil {
				return status, fmt.Errorf("failed to get oldest run time: %w", err)
			}
			oldestRunTime, err := time.Parse(time.RFC3339Nano, oldestRunTimeStr)
			if err != nil {
				return status, fmt.Errorf("failed to parse oldest run time: %w", err)
			}
			status.OldestRunTime = oldestRunTime
		default: // MySQL and PostgreSQL store as native datetime
			if err := row.Scan(&status.OldestRunTime); err != nil {
				return status, fmt.Errorf("failed to get oldest run time: %w", err)
			}
		}

		// Get total standings recorded across runs
		standingsQuery := fmt.Sprintf("SELECT COUNT(*) FROM %s", quoteTableName(snapshotStandingsTable, ss.backend))
		row = ss.db.QueryRow(standingsQuery)
		if err := row.Scan(&status.TotalStandings); err != nil {
			return status, fmt.Errorf("failed to get total standings: %w", err)
		}
	}

	// Get table sizes
	tables := []string{snapshotRunsTable, snapshotStandingsTable}
	for _, table := range tables {
		quotedTable := quoteTableName(table, ss.backend)
		countQuery := fmt.Sprintf("SELECT COUNT(*) FROM %s", quotedTable)
		row = ss.db.QueryRow(countQuery)
		var count int64
		if err := row.Scan(&count); err != nil {
			return status, fmt.Errorf("failed to get count for table %s: %w", table, err)
		}
		status.TableSizes[table] = count
	}

	return status, nil
}

// GetAllRuns retrieves all standings runs from the store.
func (ss *SnapshotStoreImpl) GetAllRuns() ([]schema.SnapshotRunRecord, error) {
	// Skip for NoneBackend
	if ss.backend == schema.NoneBackend || ss.db == nil {
		return nil, nil
	}

	quotedTableName := quoteTableName(snapshotRunsTable, ss.backend)
	query := fmt.Sprintf("SELECT run_id, run_time, fingerprint, team_count, params FROM %s ORDER BY run_id", quotedTableName)

	rows, err := ss.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to query standings runs: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var results []schema.SnapshotRunRecord

	for rows.Next() {
		var record schema.SnapshotRunRecord
		var teamCount sql.NullInt32

		switch ss.backend {
		case schema.SQLiteBackend:
			var runTimeStr string
			if err := rows.Scan(&record.RunID, &runTimeStr, &record.Fingerprint, &teamCount, &record.Params); err != nil {
				return nil, fmt.Errorf("failed to scan standings run: %w", err)
			}
			runTime, err := time.Parse(time.RFC3339Nano, runTimeStr)
			if err != nil {
				return nil, fmt.Errorf("failed to parse run_time: %w", err)
			}
			record.RunTime = runTime
		default: // MySQL and PostgreSQL
			if err := rows.Scan(&record.RunID, &record.RunTime, &record.Fingerprint, &teamCount, &record.Params); err != nil {
				return nil, fmt.Errorf("failed to scan standings run: %w", err)
			}
		}

		if teamCount.Valid {
			record.TeamCount = teamCount.Int32
		}
		results = append(results, record)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating standings runs: %w", err)
	}

	return results, nil
}

// GetAllStandings retrieves all recorded standing rows from the store.
func (ss *SnapshotStoreImpl) GetAllStandings() ([]schema.StandingRecord, error) {
	// Skip for NoneBackend
	if ss.backend == schema.NoneBackend || ss.db == nil {
		return nil, nil
	}

	quotedTableName := quoteTableName(snapshotStandingsTable, ss.backend)
	query := fmt.Sprintf(`SELECT run_id, team, conference, team_rank, wins, losses,
    win_pct, expected_win_pct, expected_wins, luck_index
    FROM %s ORDER BY run_id, team_rank`, quotedTableName)

	rows, err := ss.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to query standings: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var results []schema.StandingRecord

	for rows.Next() {
		var record schema.StandingRecord
		if err := rows.Scan(&record.RunID, &record.Team, &record.Conference, &record.Rank,
			&record.Wins, &record.Losses, &record.WinPct, &record.ExpectedWinPct,
			&record.ExpectedWins, &record.LuckIndex); err != nil {
			return nil, fmt.Errorf("failed to scan standing row: %w", err)
		}
		results = append(results, record)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating standings: %w", err)
	}

	return results, nil
}

// Package store persists user and menu documents in a SQL database.
// Documents are stored as JSON blobs keyed by their identifier, so the
// same schema works across every supported backend.
package store

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "github.com/go-sql-driver/mysql" // MySQL driver
	_ "github.com/jackc/pgx/v5/stdlib" // PostgreSQL driver
	"github.com/platefit/platefit/internal/contract"
	"github.com/platefit/platefit/schema"
	_ "modernc.org/sqlite" // SQLite driver
)

// Document tables. Fixed identifiers, never interpolated from input.
const (
	usersTable = "platefit_users"
	menusTable = "platefit_menus"
)

// ErrNotFound marks a missing document. Callers that tolerate absence
// (the recommend pipeline) match on it; everything else propagates.
var ErrNotFound = errors.New("record not found")

// RecordStore handles durable storage of user and menu documents using
// various database backends.
type RecordStore struct {
	db      *sql.DB
	backend schema.DatabaseBackend
}

// Open connects to the configured backend and ensures the document tables
// exist. An empty SQLite connection string falls back to the default file
// under the home directory.
func Open(backend schema.DatabaseBackend, connStr string) (*RecordStore, error) {
	var db *sql.DB
	var err error

	switch backend {
	case schema.SQLiteBackend:
		dbPath := connStr
		if dbPath == "" {
			dbPath = contract.GetStoreDBFilePath()
		}
		db, err = sql.Open("sqlite", dbPath)
		if err != nil {
			return nil, fmt.Errorf("failed to open SQLite store at %q: %w. Ensure the directory is writable", dbPath, err)
		}
		// Single connection avoids "database is locked" errors.
		db.SetMaxOpenConns(1)

	case schema.MySQLBackend:
		db, err = sql.Open("mysql", connStr)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to MySQL store: %w. Check connection format: user:password@tcp(host:port)/dbname", err)
		}

	case schema.PostgreSQLBackend:
		db, err = sql.Open("pgx", connStr)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to PostgreSQL store: %w. Check connection format: host=localhost port=5432 user=postgres dbname=platefit", err)
		}

	default:
		return nil, fmt.Errorf("unsupported store backend: %s. Must be sqlite, mysql, postgresql", backend)
	}

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to connect to %s database. Check that the server is running and connection parameters are valid: %w", backend, err)
	}

	for _, table := range []string{usersTable, menusTable} {
		if _, err := db.Exec(createTableQuery(table, backend)); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("failed to create table %s: %w", table, err)
		}
	}

	return &RecordStore{db: db, backend: backend}, nil
}

// createTableQuery returns the CREATE TABLE statement for the backend.
func createTableQuery(table string, backend schema.DatabaseBackend) string {
	switch backend {
	case schema.MySQLBackend:
		return fmt.Sprintf(`
			CREATE TABLE IF NOT EXISTS %s (
				doc_id VARCHAR(255) PRIMARY KEY,
				doc_body BLOB NOT NULL,
				doc_timestamp BIGINT NOT NULL
			);
		`, table)

	case schema.PostgreSQLBackend:
		return fmt.Sprintf(`
			CREATE TABLE IF NOT EXISTS %s (
				doc_id TEXT PRIMARY KEY,
				doc_body BYTEA NOT NULL,
				doc_timestamp BIGINT NOT NULL
			);
		`, table)

	default: // SQLite
		return fmt.Sprintf(`
			CREATE TABLE IF NOT EXISTS %s (
				doc_id TEXT PRIMARY KEY,
				doc_body BLOB NOT NULL,
				doc_timestamp INTEGER NOT NULL
			);
		`, table)
	}
}

// placeholder returns the parameter placeholder for the backend at the
// given ordinal position.
func (rs *RecordStore) placeholder(n int) string {
	if rs.backend == schema.PostgreSQLBackend {
		return fmt.Sprintf("$%d", n)
	}
	return "?"
}

// upsertQuery returns the document UPSERT statement for the backend.
func (rs *RecordStore) upsertQuery(table string) string {
	switch rs.backend {
	case schema.MySQLBackend:
		return fmt.Sprintf(`INSERT INTO %s (doc_id, doc_body, doc_timestamp) VALUES (?, ?, ?) AS new
			ON DUPLICATE KEY UPDATE doc_body = new.doc_body, doc_timestamp = new.doc_timestamp`, table)

	case schema.PostgreSQLBackend:
		return fmt.Sprintf(`INSERT INTO %s (doc_id, doc_body, doc_timestamp) VALUES ($1, $2, $3)
			ON CONFLICT (doc_id) DO UPDATE SET doc_body = EXCLUDED.doc_body, doc_timestamp = EXCLUDED.doc_timestamp`, table)

	default: // SQLite
		return fmt.Sprintf(`INSERT OR REPLACE INTO %s (doc_id, doc_body, doc_timestamp) VALUES (?, ?, ?)`, table)
	}
}

// putDoc inserts or replaces one document blob.
func (rs *RecordStore) putDoc(table, id string, body []byte) error {
	_, err := rs.db.Exec(rs.upsertQuery(table), id, body, time.Now().Unix())
	return err
}

// getDoc retrieves one document blob by identifier.
func (rs *RecordStore) getDoc(table, id string) ([]byte, error) {
	query := fmt.Sprintf(`SELECT doc_body FROM %s WHERE doc_id = %s`, table, rs.placeholder(1))
	var body []byte
	if err := rs.db.QueryRow(query, id).Scan(&body); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%s %q: %w", table, id, ErrNotFound)
		}
		return nil, err
	}
	return body, nil
}

// listIDs returns every document identifier of a table in sorted order.
func (rs *RecordStore) listIDs(table string) ([]string, error) {
	rows, err := rs.db.Query(fmt.Sprintf(`SELECT doc_id FROM %s ORDER BY doc_id`, table))
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

// Close closes the underlying DB connection.
func (rs *RecordStore) Close() error {
	if rs.db != nil {
		return rs.db.Close()
	}
	return nil
}

// Status summarizes the store for the status command.
type Status struct {
	Backend   string    `json:"backend"`
	UserCount int       `json:"user_count"`
	MenuCount int       `json:"menu_count"`
	LastWrite time.Time `json:"last_write,omitempty"`
}

// GetStatus reports document counts and the most recent write time.
func (rs *RecordStore) GetStatus() (Status, error) {
	status := Status{Backend: string(rs.backend)}

	if err := rs.db.QueryRow(fmt.Sprintf("SELECT COUNT(*) FROM %s", usersTable)).Scan(&status.UserCount); err != nil {
		return status, fmt.Errorf("failed to count users: %w", err)
	}
	if err := rs.db.QueryRow(fmt.Sprintf("SELECT COUNT(*) FROM %s", menusTable)).Scan(&status.MenuCount); err != nil {
		return status, fmt.Errorf("failed to count menus: %w", err)
	}
	if status.UserCount+status.MenuCount == 0 {
		return status, nil
	}

	var last int64
	query := fmt.Sprintf(`SELECT MAX(ts) FROM (
		SELECT MAX(doc_timestamp) AS ts FROM %s
		UNION ALL
		SELECT MAX(doc_timestamp) AS ts FROM %s
	) AS both_tables`, usersTable, menusTable)
	if err := rs.db.QueryRow(query).Scan(&last); err == nil {
		status.LastWrite = time.Unix(last, 0)
	}
	return status, nil
}

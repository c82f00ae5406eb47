package iostore

import (
	"database/sql"
	"fmt"
	"os"
	"sync"

	"github.com/auditlens/auditlens/internal/contract"
	"github.com/auditlens/auditlens/schema"
)

// Global Manager instance for main logic.
var (
	Manager   = &ReportStoreManager{}
	initOnce  sync.Once
	closeOnce sync.Once
)

// GetReportDBFilePath returns the path to the SQLite DB file for report storage.
func GetReportDBFilePath() string {
	return contract.GetReportDBFilePath()
}

// InitStores initializes the global store manager.
// backend can be empty to disable report tracking.
func InitStores(backend schema.DatabaseBackend, connStr string) error {
	var initErr error

	initOnce.Do(func() {
		// This function body runs exactly once, even with concurrent calls.
		if backend == "" {
			return
		}

		store, err := NewReportStore(backend, connStr)
		if err != nil {
			initErr = fmt.Errorf("failed to initialize report store: %w", err)
			return
		}

		Manager.Lock()
		Manager.report = store
		Manager.Unlock()
	})

	// After once.Do, initErr will contain any error from the initialization block.
	return initErr
}

// CloseStores should be called on application shutdown.
func CloseStores() { // called in main defer
	closeOnce.Do(func() {
		Manager.Lock()
		defer Manager.Unlock()
		if Manager.report != nil {
			_ = Manager.report.Close()
		}
	})
}

// ClearReports clears the stored reports for the specified backend.
// For SQLite, it deletes the database file.
// For SQL backends (MySQL/PostgreSQL), it drops the table.
// For NoneBackend, it does nothing.
func ClearReports(backend schema.DatabaseBackend, dbFilePath, connStr string) error {
	switch backend {
	case schema.SQLiteBackend:
		if dbFilePath == "" {
			return fmt.Errorf("dbFilePath cannot be empty for SQLite backend")
		}
		// Remove the file; ignore if it doesn't exist
		if err := os.Remove(dbFilePath); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("failed to remove SQLite database file %s: %w", dbFilePath, err)
		}
		return nil

	case schema.MySQLBackend:
		return clearSQLTable("mysql", connStr, reportRunsTable)

	case schema.PostgreSQLBackend:
		return clearSQLTable("pgx", connStr, reportRunsTable)

	case schema.NoneBackend:
		return nil

	default:
		return fmt.Errorf("unsupported report backend for clearing: %s", backend)
	}
}

// clearSQLTable connects to the SQL database and drops the table if it exists.
func clearSQLTable(driverName, connStr, tableName string) error {
	db, err := openSQL(driverName, connStr)
	if err != nil {
		return err
	}
	defer func() { _ = db.Close() }()

	query := fmt.Sprintf("DROP TABLE IF EXISTS %s", tableName)
	if _, err := db.Exec(query); err != nil {
		return fmt.Errorf("failed to drop table %s: %w", tableName, err)
	}

	return nil
}

// openSQL opens a database connection and verifies it with a ping.
func openSQL(driverName, connStr string) (*sql.DB, error) {
	db, err := sql.Open(driverName, connStr)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to %s database: %w", driverName, err)
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to ping %s database: %w", driverName, err)
	}
	return db, nil
}

// Package iostore persists analysis reports across runs.
package iostore

import (
	"fmt"
	"sync"

	"github.com/auditlens/auditlens/internal/contract"
	"github.com/auditlens/auditlens/schema"
)

// ReportStoreManager manages the report store instance.
type ReportStoreManager struct {
	sync.RWMutex // Protects the store pointer during initialization
	report       contract.ReportStore
}

var _ contract.StoreManager = &ReportStoreManager{} // Compile-time check

// GetReportStore returns the report store.
func (mgr *ReportStoreManager) GetReportStore() contract.ReportStore {
	mgr.RLock()
	defer mgr.RUnlock()
	return mgr.report
}

// quoteTableName returns the properly quoted table name for the given backend.
func quoteTableName(name string, backend schema.DatabaseBackend) string {
	switch backend {
	case schema.MySQLBackend:
		return fmt.Sprintf("`%s`", name)
	default: // SQLite and PostgreSQL
		return fmt.Sprintf("\"%s\"", name)
	}
}

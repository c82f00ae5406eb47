package iostore

import (
	"github.com/stretchr/testify/mock"

	"github.com/auditlens/auditlens/internal/contract"
	"github.com/auditlens/auditlens/schema"
)

// MockStoreManager is a mock implementation of StoreManager for testing.
type MockStoreManager struct {
	mock.Mock
}

var _ contract.StoreManager = &MockStoreManager{} // Compile-time check

// GetReportStore implements the StoreManager interface.
func (m *MockStoreManager) GetReportStore() contract.ReportStore {
	ret := m.Called()
	store, _ := ret.Get(0).(contract.ReportStore)
	return store
}

// MockReportStore is a mock implementation of ReportStore for testing.
type MockReportStore struct {
	mock.Mock
}

var _ contract.ReportStore = &MockReportStore{} // Compile-time check

// SaveReport implements the ReportStore interface.
func (m *MockReportStore) SaveReport(report *schema.AnalysisReport) (int64, error) {
	args := m.Called(report)
	return args.Get(0).(int64), args.Error(1)
}

// ExportRuns implements the ReportStore interface.
func (m *MockReportStore) ExportRuns() ([]schema.ReportRun, error) {
	args := m.Called()
	runs, _ := args.Get(0).([]schema.ReportRun)
	return runs, args.Error(1)
}

// GetStatus implements the ReportStore interface.
func (m *MockReportStore) GetStatus() (schema.ReportStatus, error) {
	args := m.Called()
	return args.Get(0).(schema.ReportStatus), args.Error(1)
}

// Close implements the ReportStore interface.
func (m *MockReportStore) Close() error {
	args := m.Called()
	return args.Error(0)
}

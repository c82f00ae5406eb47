package contract

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/auditlens/auditlens/schema"
)

// --- MockSourceEnumerator Implementation ---

// MockSourceEnumerator is an autogenerated mock type for the SourceEnumerator type.
type MockSourceEnumerator struct {
	mock.Mock
}

var _ SourceEnumerator = &MockSourceEnumerator{} // Compile-time check

// Enumerate implements the contract.SourceEnumerator interface.
func (m *MockSourceEnumerator) Enumerate(ctx context.Context, root string, allowList, excludes []string) ([]SourceFile, int, error) {
	ret := m.Called(ctx, root, allowList, excludes)
	files, _ := ret.Get(0).([]SourceFile)
	skipped, _ := ret.Get(1).(int)
	return files, skipped, ret.Error(2)
}

// --- MockAugmenter Implementation ---

// MockAugmenter is an autogenerated mock type for the Augmenter type.
type MockAugmenter struct {
	mock.Mock
}

var _ Augmenter = &MockAugmenter{} // Compile-time check

// Augment implements the contract.Augmenter interface.
func (m *MockAugmenter) Augment(ctx context.Context, workspaceID string, selectedFiles []string) (*schema.AugmentResult, error) {
	ret := m.Called(ctx, workspaceID, selectedFiles)
	result, _ := ret.Get(0).(*schema.AugmentResult)
	return result, ret.Error(1)
}

package endpoints

import (
	"github.com/stretchr/testify/mock"

	"github.com/doodlesbykumbi/drive-console/pkg/model"
	"github.com/doodlesbykumbi/drive-console/pkg/server/store"
)

// MockResourcesStore implements store.ResourcesStore for testing using testify/mock
type MockResourcesStore struct {
	mock.Mock
}

var _ store.ResourcesStore = (*MockResourcesStore)(nil)

func (m *MockResourcesStore) ListResources(org string, trashed bool, limit int) ([]model.Resource, error) {
	args := m.Called(org, trashed, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Resource), args.Error(1)
}

func (m *MockResourcesStore) LookupResources(org string, ids []string) ([]model.Resource, error) {
	args := m.Called(org, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Resource), args.Error(1)
}

func (m *MockResourcesStore) RestoreResource(org, id string) error {
	args := m.Called(org, id)
	return args.Error(0)
}

// MockGrantsStore implements store.GrantsStore for testing using testify/mock
type MockGrantsStore struct {
	mock.Mock
}

var _ store.GrantsStore = (*MockGrantsStore)(nil)

func (m *MockGrantsStore) CreateGrant(grant *model.Grant) error {
	args := m.Called(grant)
	return args.Error(0)
}

func (m *MockGrantsStore) ListGrants(org, granteeID string) ([]model.Grant, error) {
	args := m.Called(org, granteeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Grant), args.Error(1)
}

func (m *MockGrantsStore) DeleteGrant(org, id string) error {
	args := m.Called(org, id)
	return args.Error(0)
}

// MockHealthStore implements store.HealthStore for testing using testify/mock
type MockHealthStore struct {
	mock.Mock
}

var _ store.HealthStore = (*MockHealthStore)(nil)

func (m *MockHealthStore) CheckConnectivity() error {
	args := m.Called()
	return args.Error(0)
}

// test/mock/dao.go
package mock

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/scoutdesk/backoffice/model"
	"github.com/scoutdesk/backoffice/service"
)

var (
	_ service.IAttributeDAO   = &MockAttributeDAO{}
	_ service.IUserTypeDAO    = &MockUserTypeDAO{}
	_ service.IProfileDAO     = &MockProfileDAO{}
	_ service.IIntegrityGuard = &MockIntegrityGuard{}
	_ service.ICacheService   = &MockCacheService{}
)

// MockAttributeDAO is a mock implementation of service.IAttributeDAO
type MockAttributeDAO struct {
	mock.Mock
}

func (m *MockAttributeDAO) CreateAttribute(ctx context.Context, attribute model.Attribute) error {
	args := m.Called(ctx, attribute)
	return args.Error(0)
}

func (m *MockAttributeDAO) GetAttribute(ctx context.Context, slug string) (*model.Attribute, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Attribute), args.Error(1)
}

func (m *MockAttributeDAO) GetAttributesBySlugs(ctx context.Context, slugs []string) (map[string]model.Attribute, error) {
	args := m.Called(ctx, slugs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]model.Attribute), args.Error(1)
}

func (m *MockAttributeDAO) UpdateAttribute(ctx context.Context, attribute model.Attribute) (*model.Attribute, error) {
	args := m.Called(ctx, attribute)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Attribute), args.Error(1)
}

func (m *MockAttributeDAO) DeleteAttribute(ctx context.Context, slug string) error {
	args := m.Called(ctx, slug)
	return args.Error(0)
}

func (m *MockAttributeDAO) ListAttributes(ctx context.Context, limit int, offset int) ([]*model.Attribute, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Attribute), args.Error(1)
}

// MockUserTypeDAO is a mock implementation of service.IUserTypeDAO
type MockUserTypeDAO struct {
	mock.Mock
}

func (m *MockUserTypeDAO) CreateUserType(ctx context.Context, userType model.UserTypeConfig) error {
	args := m.Called(ctx, userType)
	return args.Error(0)
}

func (m *MockUserTypeDAO) GetUserType(ctx context.Context, slug string) (*model.UserTypeConfig, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.UserTypeConfig), args.Error(1)
}

func (m *MockUserTypeDAO) UpdateUserType(ctx context.Context, userType model.UserTypeConfig) (*model.UserTypeConfig, error) {
	args := m.Called(ctx, userType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.UserTypeConfig), args.Error(1)
}

func (m *MockUserTypeDAO) DeleteUserType(ctx context.Context, slug string) error {
	args := m.Called(ctx, slug)
	return args.Error(0)
}

func (m *MockUserTypeDAO) ListUserTypes(ctx context.Context, limit int, offset int) ([]*model.UserTypeConfig, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.UserTypeConfig), args.Error(1)
}

func (m *MockUserTypeDAO) CountUserTypesReferencing(ctx context.Context, attributeSlug string) (int, []string, error) {
	args := m.Called(ctx, attributeSlug)
	var sample []string
	if args.Get(1) != nil {
		sample = args.Get(1).([]string)
	}
	return args.Int(0), sample, args.Error(2)
}

// MockProfileDAO is a mock implementation of service.IProfileDAO
type MockProfileDAO struct {
	mock.Mock
}

func (m *MockProfileDAO) CreateProfile(ctx context.Context, profile model.Profile) error {
	args := m.Called(ctx, profile)
	return args.Error(0)
}

func (m *MockProfileDAO) GetProfile(ctx context.Context, profileID string) (*model.Profile, error) {
	args := m.Called(ctx, profileID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Profile), args.Error(1)
}

func (m *MockProfileDAO) UpdateProfile(ctx context.Context, profile model.Profile) (*model.Profile, error) {
	args := m.Called(ctx, profile)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Profile), args.Error(1)
}

func (m *MockProfileDAO) DeleteProfile(ctx context.Context, profileID string) error {
	args := m.Called(ctx, profileID)
	return args.Error(0)
}

func (m *MockProfileDAO) ListProfiles(ctx context.Context, limit int, offset int) ([]*model.Profile, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Profile), args.Error(1)
}

func (m *MockProfileDAO) CountProfilesWithUserType(ctx context.Context, userTypeSlug string) (int, error) {
	args := m.Called(ctx, userTypeSlug)
	return args.Int(0), args.Error(1)
}

// MockIntegrityGuard is a mock implementation of service.IIntegrityGuard
type MockIntegrityGuard struct {
	mock.Mock
}

func (m *MockIntegrityGuard) AttributeInUse(ctx context.Context, attributeSlug string) (*service.ReferenceCheck, error) {
	args := m.Called(ctx, attributeSlug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.ReferenceCheck), args.Error(1)
}

func (m *MockIntegrityGuard) UserTypeInUse(ctx context.Context, userTypeSlug string) (*service.ReferenceCheck, error) {
	args := m.Called(ctx, userTypeSlug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.ReferenceCheck), args.Error(1)
}

// MockCacheService is a mock implementation of service.ICacheService. Most
// tests only care that the service tolerates a cache miss, so On calls are
// typically blanket Returns.
type MockCacheService struct {
	mock.Mock
}

func (m *MockCacheService) GetAttribute(ctx context.Context, slug string) (*model.Attribute, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Attribute), args.Error(1)
}

func (m *MockCacheService) SetAttribute(ctx context.Context, attribute model.Attribute) error {
	args := m.Called(ctx, attribute)
	return args.Error(0)
}

func (m *MockCacheService) DeleteAttribute(ctx context.Context, slug string) error {
	args := m.Called(ctx, slug)
	return args.Error(0)
}

func (m *MockCacheService) GetUserType(ctx context.Context, slug string) (*model.UserTypeConfig, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.UserTypeConfig), args.Error(1)
}

func (m *MockCacheService) SetUserType(ctx context.Context, userType model.UserTypeConfig) error {
	args := m.Called(ctx, userType)
	return args.Error(0)
}

func (m *MockCacheService) DeleteUserType(ctx context.Context, slug string) error {
	args := m.Called(ctx, slug)
	return args.Error(0)
}

func (m *MockCacheService) GetProfile(ctx context.Context, profileID string) (*model.Profile, error) {
	args := m.Called(ctx, profileID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Profile), args.Error(1)
}

func (m *MockCacheService) SetProfile(ctx context.Context, profile model.Profile) error {
	args := m.Called(ctx, profile)
	return args.Error(0)
}

func (m *MockCacheService) DeleteProfile(ctx context.Context, profileID string) error {
	args := m.Called(ctx, profileID)
	return args.Error(0)
}

func (m *MockCacheService) GetStaticLists(ctx context.Context) (*model.StaticLists, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.StaticLists), args.Error(1)
}

func (m *MockCacheService) SetStaticLists(ctx context.Context, lists model.StaticLists) error {
	args := m.Called(ctx, lists)
	return args.Error(0)
}

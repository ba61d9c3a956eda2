// test/mock/services.go
package mock

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/scoutdesk/backoffice/dynamicform"
	"github.com/scoutdesk/backoffice/model"
	"github.com/scoutdesk/backoffice/service"
)

// MockAttributeService is a mock implementation of service.IAttributeService
type MockAttributeService struct {
	mock.Mock
}

func (m *MockAttributeService) CreateAttribute(ctx context.Context, attribute model.Attribute) (*model.Attribute, error) {
	args := m.Called(ctx, attribute)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Attribute), args.Error(1)
}

func (m *MockAttributeService) UpdateAttribute(ctx context.Context, slug string, attribute model.Attribute) (*model.Attribute, error) {
	args := m.Called(ctx, slug, attribute)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Attribute), args.Error(1)
}

func (m *MockAttributeService) DeleteAttribute(ctx context.Context, slug string) error {
	args := m.Called(ctx, slug)
	return args.Error(0)
}

func (m *MockAttributeService) GetAttribute(ctx context.Context, slug string) (*model.Attribute, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Attribute), args.Error(1)
}

func (m *MockAttributeService) GetAttributesBySlugs(ctx context.Context, slugs []string) (map[string]model.Attribute, error) {
	args := m.Called(ctx, slugs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]model.Attribute), args.Error(1)
}

func (m *MockAttributeService) ListAttributes(ctx context.Context, limit int, offset int) ([]*model.Attribute, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Attribute), args.Error(1)
}

// MockUserTypeService is a mock implementation of service.IUserTypeService
type MockUserTypeService struct {
	mock.Mock
}

func (m *MockUserTypeService) CreateUserType(ctx context.Context, userType model.UserTypeConfig) (*model.UserTypeConfig, error) {
	args := m.Called(ctx, userType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.UserTypeConfig), args.Error(1)
}

func (m *MockUserTypeService) UpdateUserType(ctx context.Context, slug string, userType model.UserTypeConfig) (*model.UserTypeConfig, error) {
	args := m.Called(ctx, slug, userType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.UserTypeConfig), args.Error(1)
}

func (m *MockUserTypeService) DeleteUserType(ctx context.Context, slug string) error {
	args := m.Called(ctx, slug)
	return args.Error(0)
}

func (m *MockUserTypeService) GetUserType(ctx context.Context, slug string) (*model.UserTypeConfig, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.UserTypeConfig), args.Error(1)
}

func (m *MockUserTypeService) ListUserTypes(ctx context.Context, limit int, offset int) ([]*model.UserTypeConfig, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.UserTypeConfig), args.Error(1)
}

// MockProfileService is a mock implementation of service.IProfileService
type MockProfileService struct {
	mock.Mock
}

func (m *MockProfileService) CreateProfile(ctx context.Context, payload map[string]any) (*model.Profile, error) {
	args := m.Called(ctx, payload)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Profile), args.Error(1)
}

func (m *MockProfileService) UpdateProfile(ctx context.Context, profileID string, payload map[string]any) (*model.Profile, error) {
	args := m.Called(ctx, profileID, payload)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Profile), args.Error(1)
}

func (m *MockProfileService) DeleteProfile(ctx context.Context, profileID string) error {
	args := m.Called(ctx, profileID)
	return args.Error(0)
}

func (m *MockProfileService) GetProfile(ctx context.Context, profileID string) (*model.Profile, error) {
	args := m.Called(ctx, profileID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Profile), args.Error(1)
}

func (m *MockProfileService) GetMergedView(ctx context.Context, profileID string) (map[string]any, error) {
	args := m.Called(ctx, profileID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]any), args.Error(1)
}

func (m *MockProfileService) CurrentValues(ctx context.Context, profileID string) (map[string]any, error) {
	args := m.Called(ctx, profileID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]any), args.Error(1)
}

func (m *MockProfileService) ListProfiles(ctx context.Context, limit int, offset int) ([]*model.Profile, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Profile), args.Error(1)
}

// MockFormService is a mock implementation of service.IFormService
type MockFormService struct {
	mock.Mock
}

func (m *MockFormService) BuildForm(ctx context.Context, userTypeSlug string, mode dynamicform.Mode, profileID string) (*service.FormResult, error) {
	args := m.Called(ctx, userTypeSlug, mode, profileID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.FormResult), args.Error(1)
}

// MockStaticDataService is a mock implementation of service.IStaticDataService
type MockStaticDataService struct {
	mock.Mock
}

func (m *MockStaticDataService) Lists(ctx context.Context) (model.StaticLists, error) {
	args := m.Called(ctx)
	return args.Get(0).(model.StaticLists), args.Error(1)
}

func (m *MockStaticDataService) Refresh(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

// service/deps.go
package service

import (
	"context"

	"github.com/scoutdesk/backoffice/model"
)

// Store and cache seams the services depend on. The dao and util types
// satisfy them in production wiring; tests substitute mocks so guard and
// validation branches can be exercised without a database.

// IAttributeDAO is the registry store behind the attribute service.
type IAttributeDAO interface {
	CreateAttribute(ctx context.Context, attribute model.Attribute) error
	GetAttribute(ctx context.Context, slug string) (*model.Attribute, error)
	GetAttributesBySlugs(ctx context.Context, slugs []string) (map[string]model.Attribute, error)
	UpdateAttribute(ctx context.Context, attribute model.Attribute) (*model.Attribute, error)
	DeleteAttribute(ctx context.Context, slug string) error
	ListAttributes(ctx context.Context, limit int, offset int) ([]*model.Attribute, error)
}

// IUserTypeDAO is the schema store behind the user type service and the
// integrity guard.
type IUserTypeDAO interface {
	CreateUserType(ctx context.Context, userType model.UserTypeConfig) error
	GetUserType(ctx context.Context, slug string) (*model.UserTypeConfig, error)
	UpdateUserType(ctx context.Context, userType model.UserTypeConfig) (*model.UserTypeConfig, error)
	DeleteUserType(ctx context.Context, slug string) error
	ListUserTypes(ctx context.Context, limit int, offset int) ([]*model.UserTypeConfig, error)
	CountUserTypesReferencing(ctx context.Context, attributeSlug string) (int, []string, error)
}

// IProfileDAO is the entity value store behind the profile service and the
// integrity guard.
type IProfileDAO interface {
	CreateProfile(ctx context.Context, profile model.Profile) error
	GetProfile(ctx context.Context, profileID string) (*model.Profile, error)
	UpdateProfile(ctx context.Context, profile model.Profile) (*model.Profile, error)
	DeleteProfile(ctx context.Context, profileID string) error
	ListProfiles(ctx context.Context, limit int, offset int) ([]*model.Profile, error)
	CountProfilesWithUserType(ctx context.Context, userTypeSlug string) (int, error)
}

// ICacheService is the read-through cache the services write on every
// successful mutation. Cache failures are logged, never fatal.
type ICacheService interface {
	GetAttribute(ctx context.Context, slug string) (*model.Attribute, error)
	SetAttribute(ctx context.Context, attribute model.Attribute) error
	DeleteAttribute(ctx context.Context, slug string) error
	GetUserType(ctx context.Context, slug string) (*model.UserTypeConfig, error)
	SetUserType(ctx context.Context, userType model.UserTypeConfig) error
	DeleteUserType(ctx context.Context, slug string) error
	GetProfile(ctx context.Context, profileID string) (*model.Profile, error)
	SetProfile(ctx context.Context, profile model.Profile) error
	DeleteProfile(ctx context.Context, profileID string) error
	GetStaticLists(ctx context.Context) (*model.StaticLists, error)
	SetStaticLists(ctx context.Context, lists model.StaticLists) error
}

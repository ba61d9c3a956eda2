// util/cache_service.go

package util

import (
	"context"

	"github.com/scoutdesk/backoffice/db"
	"github.com/scoutdesk/backoffice/model"
)

type CacheService struct{}

func NewCacheService() *CacheService {
	return &CacheService{}
}

func (c *CacheService) GetAttribute(ctx context.Context, slug string) (*model.Attribute, error) {
	return db.GetCachedAttribute(ctx, slug)
}

func (c *CacheService) SetAttribute(ctx context.Context, attribute model.Attribute) error {
	return db.CacheAttribute(ctx, &attribute)
}

func (c *CacheService) DeleteAttribute(ctx context.Context, slug string) error {
	return db.DeleteCachedAttribute(ctx, slug)
}

func (c *CacheService) GetUserType(ctx context.Context, slug string) (*model.UserTypeConfig, error) {
	return db.GetCachedUserType(ctx, slug)
}

func (c *CacheService) SetUserType(ctx context.Context, userType model.UserTypeConfig) error {
	return db.CacheUserType(ctx, &userType)
}

func (c *CacheService) DeleteUserType(ctx context.Context, slug string) error {
	return db.DeleteCachedUserType(ctx, slug)
}

func (c *CacheService) GetProfile(ctx context.Context, profileID string) (*model.Profile, error) {
	return db.GetCachedProfile(ctx, profileID)
}

func (c *CacheService) SetProfile(ctx context.Context, profile model.Profile) error {
	return db.CacheProfile(ctx, &profile)
}

func (c *CacheService) DeleteProfile(ctx context.Context, profileID string) error {
	return db.DeleteCachedProfile(ctx, profileID)
}

func (c *CacheService) GetStaticLists(ctx context.Context) (*model.StaticLists, error) {
	return db.GetCachedStaticLists(ctx)
}

func (c *CacheService) SetStaticLists(ctx context.Context, lists model.StaticLists) error {
	return db.CacheStaticLists(ctx, &lists)
}

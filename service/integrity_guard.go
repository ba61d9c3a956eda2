// service/integrity_guard.go
package service

import (
	"context"
)

// ReferenceCheck is the guard's answer: whether the slug is still referenced
// and by what, so conflict errors can name the blockers.
type ReferenceCheck struct {
	InUse     bool
	Count     int
	Referrers []string
}

// IIntegrityGuard answers whether a registry or composer entry is still
// referenced by live data. Deletion paths consult it before removing
// anything; a reference left dangling would silently orphan stored values.
type IIntegrityGuard interface {
	AttributeInUse(ctx context.Context, attributeSlug string) (*ReferenceCheck, error)
	UserTypeInUse(ctx context.Context, userTypeSlug string) (*ReferenceCheck, error)
}

type IntegrityGuard struct {
	userTypeDAO IUserTypeDAO
	profileDAO  IProfileDAO
}

var _ IIntegrityGuard = &IntegrityGuard{}

func NewIntegrityGuard(userTypeDAO IUserTypeDAO, profileDAO IProfileDAO) *IntegrityGuard {
	return &IntegrityGuard{userTypeDAO: userTypeDAO, profileDAO: profileDAO}
}

// AttributeInUse reports whether any user type currently binds the attribute.
// Answers reflect store state at call time; a delete racing a concurrent
// create may fail either way, but never leaves a dangling reference.
func (g *IntegrityGuard) AttributeInUse(ctx context.Context, attributeSlug string) (*ReferenceCheck, error) {
	count, referrers, err := g.userTypeDAO.CountUserTypesReferencing(ctx, attributeSlug)
	if err != nil {
		return nil, err
	}
	return &ReferenceCheck{InUse: count > 0, Count: count, Referrers: referrers}, nil
}

// UserTypeInUse reports whether any live profile carries the user type as
// its discriminator.
func (g *IntegrityGuard) UserTypeInUse(ctx context.Context, userTypeSlug string) (*ReferenceCheck, error) {
	count, err := g.profileDAO.CountProfilesWithUserType(ctx, userTypeSlug)
	if err != nil {
		return nil, err
	}
	return &ReferenceCheck{InUse: count > 0, Count: count}, nil
}

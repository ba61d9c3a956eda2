// model/profile_test.go
package model_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/scoutdesk/backoffice/model"
)

func sampleProfile() *model.Profile {
	return &model.Profile{
		ID:               "p-1",
		Email:            "lena@example.com",
		FirstName:        "Lena",
		LastName:         "Costa",
		Country:          "Portugal",
		PasswordHash:     "$2a$10$hash",
		UserType:         model.ParentCollaborator,
		CollaboratorType: "photographer",
		Attributes: map[string]any{
			"bio":              "travel photographer",
			"years_experience": 6,
		},
	}
}

func TestProfileField(t *testing.T) {
	t.Run("CoreFieldResolvesFirst", func(t *testing.T) {
		p := sampleProfile()

		value, ok := p.Field("email")
		assert.True(t, ok)
		assert.Equal(t, "lena@example.com", value)
	})

	t.Run("UnknownNameFallsThroughToBag", func(t *testing.T) {
		p := sampleProfile()

		value, ok := p.Field("bio")
		assert.True(t, ok)
		assert.Equal(t, "travel photographer", value)
	})

	t.Run("BagCannotShadowCoreField", func(t *testing.T) {
		p := sampleProfile()
		p.Attributes["email"] = "evil@example.com"

		value, ok := p.Field("email")
		assert.True(t, ok)
		assert.Equal(t, "lena@example.com", value)
	})

	t.Run("PasswordHashUnreadable", func(t *testing.T) {
		p := sampleProfile()

		_, ok := p.Field("password")
		assert.False(t, ok)
	})

	t.Run("AbsentEverywhere", func(t *testing.T) {
		p := sampleProfile()

		_, ok := p.Field("nonexistent")
		assert.False(t, ok)
	})
}

func TestProfileSchemaSlug(t *testing.T) {
	t.Run("CollaboratorDiscriminator", func(t *testing.T) {
		p := sampleProfile()
		assert.Equal(t, "photographer", p.SchemaSlug())
	})

	t.Run("AgencyDiscriminator", func(t *testing.T) {
		p := sampleProfile()
		p.UserType = model.ParentAgency
		p.AgencyType = "talent-agency"

		assert.Equal(t, "talent-agency", p.SchemaSlug())
	})
}

func TestProfileMergedView(t *testing.T) {
	t.Run("CoreWinsOnCollision", func(t *testing.T) {
		p := sampleProfile()
		p.Attributes["country"] = "France"

		view := p.MergedView()
		assert.Equal(t, "Portugal", view["country"])
		assert.Equal(t, "travel photographer", view["bio"])
	})

	t.Run("NoPasswordHashLeak", func(t *testing.T) {
		view := sampleProfile().MergedView()

		_, hasPassword := view["password"]
		_, hasHash := view["passwordHash"]
		assert.False(t, hasPassword)
		assert.False(t, hasHash)
	})

	t.Run("DiscriminatorIncluded", func(t *testing.T) {
		view := sampleProfile().MergedView()

		assert.Equal(t, model.ParentCollaborator, view["userType"])
		assert.Equal(t, "photographer", view["collaboratorType"])
		_, hasAgency := view["agencyType"]
		assert.False(t, hasAgency)
	})
}

func TestProfileSetCoreField(t *testing.T) {
	t.Run("SetsStringValue", func(t *testing.T) {
		p := sampleProfile()

		assert.NoError(t, p.SetCoreField("city", "Lisbon"))
		assert.Equal(t, "Lisbon", p.City)
	})

	t.Run("RejectsNonString", func(t *testing.T) {
		p := sampleProfile()

		assert.Error(t, p.SetCoreField("city", 42))
	})

	t.Run("RejectsUnknownName", func(t *testing.T) {
		p := sampleProfile()

		assert.Error(t, p.SetCoreField("bio", "nope"))
	})
}

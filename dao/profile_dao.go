// dao/profile_dao.go

package dao

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
	"go.uber.org/zap"

	"github.com/scoutdesk/backoffice/audit"
	apperrors "github.com/scoutdesk/backoffice/errors"
	logger "github.com/scoutdesk/backoffice/logging"
	"github.com/scoutdesk/backoffice/model"
	bo_neo4j "github.com/scoutdesk/backoffice/model/neo4j"
)

type ProfileDAO struct {
	Driver       neo4j.Driver
	AuditService audit.Service
}

func NewProfileDAO(driver neo4j.Driver, auditService audit.Service) *ProfileDAO {
	dao := &ProfileDAO{Driver: driver, AuditService: auditService}
	ctx := context.Background()
	if err := dao.EnsureUniqueConstraint(ctx); err != nil {
		logger.Fatal("Failed to ensure unique constraint for Profile", zap.Error(err))
	}
	return dao
}

func (dao *ProfileDAO) EnsureUniqueConstraint(ctx context.Context) error {
	logger.Info("Ensuring unique constraints on Profile")
	session := dao.Driver.NewSession(neo4j.SessionConfig{AccessMode: neo4j.AccessModeWrite})
	defer session.Close()

	_, err := session.WriteTransaction(func(transaction neo4j.Transaction) (interface{}, error) {
		for _, query := range []string{
			`CREATE CONSTRAINT unique_profile_id IF NOT EXISTS
			FOR (p:` + bo_neo4j.LabelProfile + `) REQUIRE p.id IS UNIQUE`,
			`CREATE CONSTRAINT unique_profile_email IF NOT EXISTS
			FOR (p:` + bo_neo4j.LabelProfile + `) REQUIRE p.email IS UNIQUE`,
		} {
			if _, err := transaction.Run(query, nil); err != nil {
				return nil, err
			}
		}
		return nil, nil
	})

	if err != nil {
		logger.Error("Failed to ensure unique constraints on Profile", zap.Error(err))
		return err
	}

	return nil
}

// CreateProfile persists the record and links it to its governing user type.
func (dao *ProfileDAO) CreateProfile(ctx context.Context, profile model.Profile) error {
	start := time.Now()
	logger.Info("Creating new profile", zap.String("profileID", profile.ID))
	session := dao.Driver.NewSession(neo4j.SessionConfig{AccessMode: neo4j.AccessModeWrite})
	defer session.Close()

	_, err := session.WriteTransaction(func(transaction neo4j.Transaction) (interface{}, error) {
		existing, err := transaction.Run(`
        MATCH (p:`+bo_neo4j.LabelProfile+`)
        WHERE p.id = $id OR p.email = $email
        RETURN p.id
        `, map[string]interface{}{"id": profile.ID, "email": profile.Email})
		if err != nil {
			return nil, err
		}
		if existing.Next() {
			return nil, apperrors.ErrProfileConflict
		}

		params, err := profileParams(profile)
		if err != nil {
			return nil, err
		}

		query := `
        CREATE (p:` + bo_neo4j.LabelProfile + ` {
            id: $id,
            email: $email,
            name: $name,
            firstName: $firstName,
            lastName: $lastName,
            phone: $phone,
            city: $city,
            country: $country,
            address: $address,
            zipCode: $zipCode,
            profilePicture: $profilePicture,
            passwordHash: $passwordHash,
            userType: $userType,
            collaboratorType: $collaboratorType,
            agencyType: $agencyType,
            attributes: $attributes,
            createdAt: $createdAt,
            updatedAt: $updatedAt
        })
        WITH p
        MATCH (ut:` + bo_neo4j.LabelUserType + ` {slug: $schemaSlug})
        MERGE (p)-[:` + bo_neo4j.RelHasUserType + `]->(ut)
        `

		_, err = transaction.Run(query, params)
		return nil, err
	})

	duration := time.Since(start)
	if err != nil {
		logger.Error("Failed to create profile",
			zap.Error(err),
			zap.String("profileID", profile.ID),
			zap.Duration("duration", duration))
		return err
	}

	logger.Info("Profile created successfully",
		zap.String("profileID", profile.ID),
		zap.Duration("duration", duration))

	logAudit(ctx, dao.AuditService, "CREATE_PROFILE", "Profile", profile.ID, nil)
	return nil
}

func (dao *ProfileDAO) GetProfile(ctx context.Context, profileID string) (*model.Profile, error) {
	session := dao.Driver.NewSession(neo4j.SessionConfig{AccessMode: neo4j.AccessModeRead})
	defer session.Close()

	result, err := session.ReadTransaction(func(transaction neo4j.Transaction) (interface{}, error) {
		result, err := transaction.Run(`
        MATCH (p:`+bo_neo4j.LabelProfile+` {id: $id})
        RETURN p
        `, map[string]interface{}{"id": profileID})
		if err != nil {
			return nil, err
		}

		if result.Next() {
			node := result.Record().Values[0].(neo4j.Node)
			return mapNodeToProfile(node)
		}

		return nil, apperrors.ErrProfileNotFound
	})

	if err != nil {
		return nil, err
	}

	return result.(*model.Profile), nil
}

// UpdateProfile overwrites the record and repoints the user type link; the
// write path has already validated the merged record against its schema.
func (dao *ProfileDAO) UpdateProfile(ctx context.Context, profile model.Profile) (*model.Profile, error) {
	start := time.Now()
	logger.Info("Updating profile", zap.String("profileID", profile.ID))
	session := dao.Driver.NewSession(neo4j.SessionConfig{AccessMode: neo4j.AccessModeWrite})
	defer session.Close()

	result, err := session.WriteTransaction(func(transaction neo4j.Transaction) (interface{}, error) {
		params, err := profileParams(profile)
		if err != nil {
			return nil, err
		}

		query := `
        MATCH (p:` + bo_neo4j.LabelProfile + ` {id: $id})
        SET p.email = $email,
            p.name = $name,
            p.firstName = $firstName,
            p.lastName = $lastName,
            p.phone = $phone,
            p.city = $city,
            p.country = $country,
            p.address = $address,
            p.zipCode = $zipCode,
            p.profilePicture = $profilePicture,
            p.passwordHash = $passwordHash,
            p.userType = $userType,
            p.collaboratorType = $collaboratorType,
            p.agencyType = $agencyType,
            p.attributes = $attributes,
            p.updatedAt = $updatedAt
        WITH p
        OPTIONAL MATCH (p)-[r:` + bo_neo4j.RelHasUserType + `]->()
        DELETE r
        WITH DISTINCT p
        MATCH (ut:` + bo_neo4j.LabelUserType + ` {slug: $schemaSlug})
        MERGE (p)-[:` + bo_neo4j.RelHasUserType + `]->(ut)
        RETURN p
        `

		result, err := transaction.Run(query, params)
		if err != nil {
			return nil, err
		}

		if result.Next() {
			node := result.Record().Values[0].(neo4j.Node)
			return mapNodeToProfile(node)
		}

		return nil, apperrors.ErrProfileNotFound
	})

	duration := time.Since(start)
	if err != nil {
		logger.Error("Failed to update profile",
			zap.Error(err),
			zap.String("profileID", profile.ID),
			zap.Duration("duration", duration))
		return nil, err
	}

	updated := result.(*model.Profile)
	logger.Info("Profile updated successfully",
		zap.String("profileID", updated.ID),
		zap.Duration("duration", duration))

	logAudit(ctx, dao.AuditService, "UPDATE_PROFILE", "Profile", updated.ID, nil)
	return updated, nil
}

func (dao *ProfileDAO) DeleteProfile(ctx context.Context, profileID string) error {
	start := time.Now()
	logger.Info("Deleting profile", zap.String("profileID", profileID))
	session := dao.Driver.NewSession(neo4j.SessionConfig{AccessMode: neo4j.AccessModeWrite})
	defer session.Close()

	_, err := session.WriteTransaction(func(transaction neo4j.Transaction) (interface{}, error) {
		result, err := transaction.Run(`
        MATCH (p:`+bo_neo4j.LabelProfile+` {id: $id})
        DETACH DELETE p
        RETURN count(p) as deleted
        `, map[string]interface{}{"id": profileID})
		if err != nil {
			return nil, err
		}

		if result.Next() {
			deleted := result.Record().Values[0].(int64)
			if deleted == 0 {
				return nil, apperrors.ErrProfileNotFound
			}
		}
		return nil, nil
	})

	duration := time.Since(start)
	if err != nil {
		logger.Error("Failed to delete profile",
			zap.Error(err),
			zap.String("profileID", profileID),
			zap.Duration("duration", duration))
		return err
	}

	logger.Info("Profile deleted successfully",
		zap.String("profileID", profileID),
		zap.Duration("duration", duration))

	logAudit(ctx, dao.AuditService, "DELETE_PROFILE", "Profile", profileID, nil)
	return nil
}

func (dao *ProfileDAO) ListProfiles(ctx context.Context, limit int, offset int) ([]*model.Profile, error) {
	session := dao.Driver.NewSession(neo4j.SessionConfig{AccessMode: neo4j.AccessModeRead})
	defer session.Close()

	result, err := session.ReadTransaction(func(transaction neo4j.Transaction) (interface{}, error) {
		result, err := transaction.Run(`
        MATCH (p:`+bo_neo4j.LabelProfile+`)
        RETURN p
        ORDER BY p.createdAt DESC
        SKIP $offset LIMIT $limit
        `, map[string]interface{}{"offset": offset, "limit": limit})
		if err != nil {
			return nil, err
		}

		var profiles []*model.Profile
		for result.Next() {
			node := result.Record().Values[0].(neo4j.Node)
			profile, err := mapNodeToProfile(node)
			if err != nil {
				return nil, err
			}
			profiles = append(profiles, profile)
		}
		return profiles, nil
	})

	if err != nil {
		logger.Error("Failed to list profiles", zap.Error(err))
		return nil, err
	}

	return result.([]*model.Profile), nil
}

// CountProfilesWithUserType reports how many live profiles carry the user
// type slug as their discriminator.
func (dao *ProfileDAO) CountProfilesWithUserType(ctx context.Context, userTypeSlug string) (int, error) {
	session := dao.Driver.NewSession(neo4j.SessionConfig{AccessMode: neo4j.AccessModeRead})
	defer session.Close()

	result, err := session.ReadTransaction(func(transaction neo4j.Transaction) (interface{}, error) {
		result, err := transaction.Run(`
        MATCH (p:`+bo_neo4j.LabelProfile+`)-[:`+bo_neo4j.RelHasUserType+`]->(ut:`+bo_neo4j.LabelUserType+` {slug: $slug})
        RETURN count(p) as total
        `, map[string]interface{}{"slug": userTypeSlug})
		if err != nil {
			return nil, err
		}

		if result.Next() {
			return int(result.Record().Values[0].(int64)), nil
		}
		return 0, nil
	})

	if err != nil {
		logger.Error("Failed to count profiles with user type",
			zap.Error(err),
			zap.String("userTypeSlug", userTypeSlug))
		return 0, err
	}

	return result.(int), nil
}

func profileParams(profile model.Profile) (map[string]interface{}, error) {
	attributesJSON, err := json.Marshal(profile.Attributes)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal dynamic attributes: %w", err)
	}

	return map[string]interface{}{
		"id":               profile.ID,
		"email":            profile.Email,
		"name":             profile.Name,
		"firstName":        profile.FirstName,
		"lastName":         profile.LastName,
		"phone":            profile.Phone,
		"city":             profile.City,
		"country":          profile.Country,
		"address":          profile.Address,
		"zipCode":          profile.ZipCode,
		"profilePicture":   profile.ProfilePicture,
		"passwordHash":     profile.PasswordHash,
		"userType":         string(profile.UserType),
		"collaboratorType": profile.CollaboratorType,
		"agencyType":       profile.AgencyType,
		"attributes":       string(attributesJSON),
		"schemaSlug":       profile.SchemaSlug(),
		"createdAt":        profile.CreatedAt.Format(time.RFC3339),
		"updatedAt":        profile.UpdatedAt.Format(time.RFC3339),
	}, nil
}

func mapNodeToProfile(node neo4j.Node) (*model.Profile, error) {
	props := node.Props

	profile := &model.Profile{
		ID:               nodeString(props, "id"),
		Email:            nodeString(props, "email"),
		Name:             nodeString(props, "name"),
		FirstName:        nodeString(props, "firstName"),
		LastName:         nodeString(props, "lastName"),
		Phone:            nodeString(props, "phone"),
		City:             nodeString(props, "city"),
		Country:          nodeString(props, "country"),
		Address:          nodeString(props, "address"),
		ZipCode:          nodeString(props, "zipCode"),
		ProfilePicture:   nodeString(props, "profilePicture"),
		PasswordHash:     nodeString(props, "passwordHash"),
		UserType:         model.ParentType(nodeString(props, "userType")),
		CollaboratorType: nodeString(props, "collaboratorType"),
		AgencyType:       nodeString(props, "agencyType"),
		CreatedAt:        nodeTime(props, "createdAt"),
		UpdatedAt:        nodeTime(props, "updatedAt"),
	}

	if attributesJSON := nodeString(props, "attributes"); attributesJSON != "" {
		if err := json.Unmarshal([]byte(attributesJSON), &profile.Attributes); err != nil {
			return nil, fmt.Errorf("failed to unmarshal dynamic attributes for %s: %w", profile.ID, err)
		}
	}
	if profile.Attributes == nil {
		profile.Attributes = make(map[string]any)
	}

	return profile, nil
}

// dao/attribute_dao.go

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

type AttributeDAO struct {
	Driver       neo4j.Driver
	AuditService audit.Service
}

func NewAttributeDAO(driver neo4j.Driver, auditService audit.Service) *AttributeDAO {
	dao := &AttributeDAO{Driver: driver, AuditService: auditService}
	ctx := context.Background()
	if err := dao.EnsureUniqueConstraint(ctx); err != nil {
		logger.Fatal("Failed to ensure unique constraint for Attribute", zap.Error(err))
	}
	return dao
}

func (dao *AttributeDAO) EnsureUniqueConstraint(ctx context.Context) error {
	logger.Info("Ensuring unique constraint on Attribute slug")
	session := dao.Driver.NewSession(neo4j.SessionConfig{AccessMode: neo4j.AccessModeWrite})
	defer session.Close()

	_, err := session.WriteTransaction(func(transaction neo4j.Transaction) (interface{}, error) {
		query := `
		CREATE CONSTRAINT unique_attribute_slug IF NOT EXISTS
		FOR (a:` + bo_neo4j.LabelAttribute + `) REQUIRE a.slug IS UNIQUE
		`
		_, err := transaction.Run(query, nil)
		return nil, err
	})

	if err != nil {
		logger.Error("Failed to ensure unique constraint on Attribute slug", zap.Error(err))
		return err
	}

	return nil
}

func (dao *AttributeDAO) CreateAttribute(ctx context.Context, attribute model.Attribute) error {
	start := time.Now()
	logger.Info("Creating new attribute", zap.String("slug", attribute.Slug))
	session := dao.Driver.NewSession(neo4j.SessionConfig{AccessMode: neo4j.AccessModeWrite})
	defer session.Close()

	_, err := session.WriteTransaction(func(transaction neo4j.Transaction) (interface{}, error) {
		existing, err := transaction.Run(`
        MATCH (a:`+bo_neo4j.LabelAttribute+` {slug: $slug})
        RETURN a.slug
        `, map[string]interface{}{"slug": attribute.Slug})
		if err != nil {
			return nil, err
		}
		if existing.Next() {
			return nil, apperrors.ErrAttributeConflict
		}

		optionsJSON, err := json.Marshal(attribute.DefaultOptions)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal default options: %w", err)
		}

		query := `
        CREATE (a:` + bo_neo4j.LabelAttribute + ` {
            slug: $slug,
            name: $name,
            fieldType: $fieldType,
            defaultOptions: $defaultOptions,
            description: $description,
            createdAt: $createdAt,
            updatedAt: $updatedAt
        })
        RETURN a.slug as slug
        `

		params := map[string]interface{}{
			"slug":           attribute.Slug,
			"name":           attribute.Name,
			"fieldType":      string(attribute.FieldType),
			"defaultOptions": string(optionsJSON),
			"description":    attribute.Description,
			"createdAt":      attribute.CreatedAt.Format(time.RFC3339),
			"updatedAt":      attribute.UpdatedAt.Format(time.RFC3339),
		}

		result, err := transaction.Run(query, params)
		if err != nil {
			return nil, err
		}

		if result.Next() {
			return result.Record().Values[0], nil
		}

		return nil, fmt.Errorf("no slug returned")
	})

	duration := time.Since(start)
	if err != nil {
		logger.Error("Failed to create attribute",
			zap.Error(err),
			zap.String("slug", attribute.Slug),
			zap.Duration("duration", duration))
		return err
	}

	logger.Info("Attribute created successfully",
		zap.String("slug", attribute.Slug),
		zap.Duration("duration", duration))

	logAudit(ctx, dao.AuditService, "CREATE_ATTRIBUTE", "Attribute", attribute.Slug, attribute)
	return nil
}

func (dao *AttributeDAO) GetAttribute(ctx context.Context, slug string) (*model.Attribute, error) {
	session := dao.Driver.NewSession(neo4j.SessionConfig{AccessMode: neo4j.AccessModeRead})
	defer session.Close()

	result, err := session.ReadTransaction(func(transaction neo4j.Transaction) (interface{}, error) {
		result, err := transaction.Run(`
        MATCH (a:`+bo_neo4j.LabelAttribute+` {slug: $slug})
        RETURN a
        `, map[string]interface{}{"slug": slug})
		if err != nil {
			return nil, err
		}

		if result.Next() {
			node := result.Record().Values[0].(neo4j.Node)
			return mapNodeToAttribute(node)
		}

		return nil, apperrors.ErrAttributeNotFound
	})

	if err != nil {
		return nil, err
	}

	return result.(*model.Attribute), nil
}

// GetAttributesBySlugs fetches the named attributes keyed by slug. Missing
// slugs are simply absent from the result; callers decide whether that is a
// validation failure or an integrity violation.
func (dao *AttributeDAO) GetAttributesBySlugs(ctx context.Context, slugs []string) (map[string]model.Attribute, error) {
	session := dao.Driver.NewSession(neo4j.SessionConfig{AccessMode: neo4j.AccessModeRead})
	defer session.Close()

	result, err := session.ReadTransaction(func(transaction neo4j.Transaction) (interface{}, error) {
		result, err := transaction.Run(`
        MATCH (a:`+bo_neo4j.LabelAttribute+`)
        WHERE a.slug IN $slugs
        RETURN a
        `, map[string]interface{}{"slugs": slugs})
		if err != nil {
			return nil, err
		}

		attributes := make(map[string]model.Attribute)
		for result.Next() {
			node := result.Record().Values[0].(neo4j.Node)
			attribute, err := mapNodeToAttribute(node)
			if err != nil {
				return nil, err
			}
			attributes[attribute.Slug] = *attribute
		}
		return attributes, nil
	})

	if err != nil {
		logger.Error("Failed to retrieve attributes by slugs", zap.Error(err))
		return nil, err
	}

	return result.(map[string]model.Attribute), nil
}

// UpdateAttribute overwrites the mutable fields of an attribute. The slug is
// the write-once join key for bindings and stored values; it is used only to
// match the node, never rewritten.
func (dao *AttributeDAO) UpdateAttribute(ctx context.Context, attribute model.Attribute) (*model.Attribute, error) {
	start := time.Now()
	logger.Info("Updating attribute", zap.String("slug", attribute.Slug))
	session := dao.Driver.NewSession(neo4j.SessionConfig{AccessMode: neo4j.AccessModeWrite})
	defer session.Close()

	result, err := session.WriteTransaction(func(transaction neo4j.Transaction) (interface{}, error) {
		optionsJSON, err := json.Marshal(attribute.DefaultOptions)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal default options: %w", err)
		}

		query := `
        MATCH (a:` + bo_neo4j.LabelAttribute + ` {slug: $slug})
        SET a.name = $name,
            a.fieldType = $fieldType,
            a.defaultOptions = $defaultOptions,
            a.description = $description,
            a.updatedAt = $updatedAt
        RETURN a
        `

		params := map[string]interface{}{
			"slug":           attribute.Slug,
			"name":           attribute.Name,
			"fieldType":      string(attribute.FieldType),
			"defaultOptions": string(optionsJSON),
			"description":    attribute.Description,
			"updatedAt":      attribute.UpdatedAt.Format(time.RFC3339),
		}

		result, err := transaction.Run(query, params)
		if err != nil {
			return nil, err
		}

		if result.Next() {
			node := result.Record().Values[0].(neo4j.Node)
			return mapNodeToAttribute(node)
		}

		return nil, apperrors.ErrAttributeNotFound
	})

	duration := time.Since(start)
	if err != nil {
		logger.Error("Failed to update attribute",
			zap.Error(err),
			zap.String("slug", attribute.Slug),
			zap.Duration("duration", duration))
		return nil, err
	}

	updated := result.(*model.Attribute)
	logger.Info("Attribute updated successfully",
		zap.String("slug", updated.Slug),
		zap.Duration("duration", duration))

	logAudit(ctx, dao.AuditService, "UPDATE_ATTRIBUTE", "Attribute", updated.Slug, updated)
	return updated, nil
}

func (dao *AttributeDAO) DeleteAttribute(ctx context.Context, slug string) error {
	start := time.Now()
	logger.Info("Deleting attribute", zap.String("slug", slug))
	session := dao.Driver.NewSession(neo4j.SessionConfig{AccessMode: neo4j.AccessModeWrite})
	defer session.Close()

	// The reference count and the delete share one transaction, so a user
	// type created between the service's guard check and this point still
	// blocks the delete instead of being left dangling.
	_, err := session.WriteTransaction(func(transaction neo4j.Transaction) (interface{}, error) {
		result, err := transaction.Run(`
        MATCH (a:`+bo_neo4j.LabelAttribute+` {slug: $slug})
        OPTIONAL MATCH (ut:`+bo_neo4j.LabelUserType+`)-[:`+bo_neo4j.RelUsesAttribute+`]->(a)
        WITH a, count(ut) AS refs
        FOREACH (_ IN CASE WHEN refs = 0 THEN [1] ELSE [] END | DETACH DELETE a)
        RETURN refs
        `, map[string]interface{}{"slug": slug})
		if err != nil {
			return nil, err
		}

		if !result.Next() {
			return nil, apperrors.ErrAttributeNotFound
		}
		if refs := result.Record().Values[0].(int64); refs > 0 {
			return nil, &apperrors.ConflictError{
				Resource:  "attribute",
				Slug:      slug,
				BlockedBy: "user type",
				Count:     int(refs),
			}
		}
		return nil, nil
	})

	duration := time.Since(start)
	if err != nil {
		logger.Error("Failed to delete attribute",
			zap.Error(err),
			zap.String("slug", slug),
			zap.Duration("duration", duration))
		return err
	}

	logger.Info("Attribute deleted successfully",
		zap.String("slug", slug),
		zap.Duration("duration", duration))

	logAudit(ctx, dao.AuditService, "DELETE_ATTRIBUTE", "Attribute", slug, nil)
	return nil
}

func (dao *AttributeDAO) ListAttributes(ctx context.Context, limit int, offset int) ([]*model.Attribute, error) {
	session := dao.Driver.NewSession(neo4j.SessionConfig{AccessMode: neo4j.AccessModeRead})
	defer session.Close()

	result, err := session.ReadTransaction(func(transaction neo4j.Transaction) (interface{}, error) {
		result, err := transaction.Run(`
        MATCH (a:`+bo_neo4j.LabelAttribute+`)
        RETURN a
        ORDER BY a.slug
        SKIP $offset LIMIT $limit
        `, map[string]interface{}{"offset": offset, "limit": limit})
		if err != nil {
			return nil, err
		}

		var attributes []*model.Attribute
		for result.Next() {
			node := result.Record().Values[0].(neo4j.Node)
			attribute, err := mapNodeToAttribute(node)
			if err != nil {
				return nil, err
			}
			attributes = append(attributes, attribute)
		}
		return attributes, nil
	})

	if err != nil {
		logger.Error("Failed to list attributes", zap.Error(err))
		return nil, err
	}

	return result.([]*model.Attribute), nil
}

func mapNodeToAttribute(node neo4j.Node) (*model.Attribute, error) {
	props := node.Props

	attribute := &model.Attribute{
		Slug:        nodeString(props, "slug"),
		Name:        nodeString(props, "name"),
		FieldType:   model.FieldType(nodeString(props, "fieldType")),
		Description: nodeString(props, "description"),
		CreatedAt:   nodeTime(props, "createdAt"),
		UpdatedAt:   nodeTime(props, "updatedAt"),
	}

	if optionsJSON := nodeString(props, "defaultOptions"); optionsJSON != "" {
		if err := json.Unmarshal([]byte(optionsJSON), &attribute.DefaultOptions); err != nil {
			return nil, fmt.Errorf("failed to unmarshal default options for %s: %w", attribute.Slug, err)
		}
	}

	return attribute, nil
}

// model/neo4j/nodes.go
package backoffice_neo4j

// Node Labels
const (
	// LabelAttribute represents a reusable field definition in the registry
	LabelAttribute = "Attribute"

	// LabelUserType represents a composed entity schema (user type config)
	LabelUserType = "UserType"

	// LabelProfile represents a creator or agency profile record
	LabelProfile = "Profile"

	// LabelJobPosting represents an agency job listing
	LabelJobPosting = "JobPosting"

	// LabelAnnouncement represents an operator announcement
	LabelAnnouncement = "Announcement"
)

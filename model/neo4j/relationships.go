// model/neo4j/relationships.go
package backoffice_neo4j

// Relationship Types
const (
	// RelUsesAttribute links a user type to every attribute its bindings
	// reference; the integrity guard counts these edges before a delete
	RelUsesAttribute = "USES_ATTRIBUTE"

	// RelHasUserType links a profile to the user type governing it
	RelHasUserType = "HAS_USER_TYPE"

	// RelPostedBy links a job posting to the agency profile that owns it
	RelPostedBy = "POSTED_BY"
)

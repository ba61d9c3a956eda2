// model/job.go
package model

import "time"

// JobPosting is an agency-authored listing creators can apply to. The
// application workflow itself lives in an external collaborator; this side
// only manages the postings.
type JobPosting struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	AgencyID     string    `json:"agency_id"`
	Location     string    `json:"location,omitempty"`
	ContractType string    `json:"contract_type,omitempty"`
	Tags         []string  `json:"tags,omitempty"`
	Published    bool      `json:"published"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type JobSearchCriteria struct {
	AgencyID  string `json:"agency_id,omitempty"`
	Location  string `json:"location,omitempty"`
	Published *bool  `json:"published,omitempty"`
	Limit     int    `json:"limit,omitempty"`
	Offset    int    `json:"offset,omitempty"`
}

// service/job_service.go
package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/scoutdesk/backoffice/dao"
	apperrors "github.com/scoutdesk/backoffice/errors"
	logger "github.com/scoutdesk/backoffice/logging"
	"github.com/scoutdesk/backoffice/model"
	"github.com/scoutdesk/backoffice/util"
)

// IJobService defines the interface for job posting operations
type IJobService interface {
	CreateJob(ctx context.Context, job model.JobPosting) (*model.JobPosting, error)
	UpdateJob(ctx context.Context, jobID string, job model.JobPosting) (*model.JobPosting, error)
	DeleteJob(ctx context.Context, jobID string) error
	GetJob(ctx context.Context, jobID string) (*model.JobPosting, error)
	ListJobs(ctx context.Context, limit int, offset int) ([]*model.JobPosting, error)
	SearchJobs(ctx context.Context, criteria model.JobSearchCriteria) ([]*model.JobPosting, error)
}

// JobService handles business logic for agency job postings
type JobService struct {
	jobDAO         *dao.JobDAO
	profileDAO     *dao.ProfileDAO
	validationUtil *util.ValidationUtil
	eventBus       *util.EventBus
}

var _ IJobService = &JobService{}

// NewJobService creates a new instance of JobService
func NewJobService(jobDAO *dao.JobDAO, profileDAO *dao.ProfileDAO, validationUtil *util.ValidationUtil, eventBus *util.EventBus) *JobService {
	return &JobService{
		jobDAO:         jobDAO,
		profileDAO:     profileDAO,
		validationUtil: validationUtil,
		eventBus:       eventBus,
	}
}

// CreateJob registers a new posting. The authoring profile must exist and be
// an agency.
func (s *JobService) CreateJob(ctx context.Context, job model.JobPosting) (*model.JobPosting, error) {
	if err := s.validationUtil.ValidateJob(job); err != nil {
		logger.Error("Validation for job posting failed", zap.Error(err))
		return nil, err
	}

	agency, err := s.profileDAO.GetProfile(ctx, job.AgencyID)
	if err != nil {
		if errors.Is(err, apperrors.ErrProfileNotFound) {
			return nil, apperrors.NewValidationError("agency_id", "unknown profile "+job.AgencyID)
		}
		return nil, err
	}
	if agency.UserType != model.ParentAgency {
		return nil, apperrors.NewValidationError("agency_id", "profile is not an agency")
	}

	job.ID = uuid.New().String()
	job.CreatedAt = time.Now()
	job.UpdatedAt = time.Now()

	if err := s.jobDAO.CreateJob(ctx, job); err != nil {
		logger.Error("Error creating job posting", zap.Error(err), zap.String("jobID", job.ID))
		return nil, err
	}

	s.eventBus.Publish(ctx, "job.created", job)

	logger.Info("Job posting created successfully", zap.String("jobID", job.ID))
	return &job, nil
}

// UpdateJob applies changes to an existing posting. The agency that posted
// it never changes.
func (s *JobService) UpdateJob(ctx context.Context, jobID string, job model.JobPosting) (*model.JobPosting, error) {
	existing, err := s.jobDAO.GetJob(ctx, jobID)
	if err != nil {
		return nil, err
	}

	job.ID = jobID
	job.AgencyID = existing.AgencyID
	if err := s.validationUtil.ValidateJob(job); err != nil {
		logger.Error("Validation for job posting failed", zap.Error(err))
		return nil, err
	}

	job.CreatedAt = existing.CreatedAt
	job.UpdatedAt = time.Now()

	updated, err := s.jobDAO.UpdateJob(ctx, job)
	if err != nil {
		logger.Error("Error updating job posting", zap.Error(err), zap.String("jobID", jobID))
		return nil, err
	}

	s.eventBus.Publish(ctx, "job.updated", *updated)

	logger.Info("Job posting updated successfully", zap.String("jobID", jobID))
	return updated, nil
}

// DeleteJob removes a posting
func (s *JobService) DeleteJob(ctx context.Context, jobID string) error {
	if err := s.jobDAO.DeleteJob(ctx, jobID); err != nil {
		return err
	}

	s.eventBus.Publish(ctx, "job.deleted", jobID)

	logger.Info("Job posting deleted successfully", zap.String("jobID", jobID))
	return nil
}

// GetJob retrieves a posting by ID
func (s *JobService) GetJob(ctx context.Context, jobID string) (*model.JobPosting, error) {
	return s.jobDAO.GetJob(ctx, jobID)
}

// ListJobs retrieves postings with pagination
func (s *JobService) ListJobs(ctx context.Context, limit int, offset int) ([]*model.JobPosting, error) {
	return s.jobDAO.ListJobs(ctx, limit, offset)
}

// SearchJobs filters postings by agency, location, and published state
func (s *JobService) SearchJobs(ctx context.Context, criteria model.JobSearchCriteria) ([]*model.JobPosting, error) {
	return s.jobDAO.SearchJobs(ctx, criteria)
}

// controller/job_controller.go
package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	apperrors "github.com/scoutdesk/backoffice/errors"
	"github.com/scoutdesk/backoffice/model"
	"github.com/scoutdesk/backoffice/service"
	"github.com/scoutdesk/backoffice/util"
	helper_util "github.com/scoutdesk/backoffice/util/helper"
)

type JobController struct {
	jobService service.IJobService
}

func NewJobController(jobService service.IJobService) *JobController {
	return &JobController{
		jobService: jobService,
	}
}

// RegisterRoutes registers the job posting routes
func (jc *JobController) RegisterRoutes(r *gin.RouterGroup) {
	jobs := r.Group("/jobs")
	{
		jobs.POST("", jc.CreateJob)
		jobs.PUT("/:id", jc.UpdateJob)
		jobs.DELETE("/:id", jc.DeleteJob)
		jobs.GET("/:id", jc.GetJob)
		jobs.GET("", jc.ListJobs)
		jobs.GET("/search", jc.SearchJobs)
	}
}

// CreateJob endpoint
func (jc *JobController) CreateJob(c *gin.Context) {
	var job model.JobPosting
	if err := c.ShouldBindJSON(&job); err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid job posting data", err)
		return
	}

	createdJob, err := jc.jobService.CreateJob(c, job)
	if err != nil {
		if ve, ok := apperrors.AsValidationError(err); ok {
			util.RespondWithError(c, http.StatusBadRequest, ve.Error(), err)
			return
		}
		util.RespondWithError(c, http.StatusInternalServerError, "Failed to create job posting", err)
		return
	}

	c.JSON(http.StatusCreated, createdJob)
}

// UpdateJob endpoint
func (jc *JobController) UpdateJob(c *gin.Context) {
	jobID := c.Param("id")
	var job model.JobPosting
	if err := c.ShouldBindJSON(&job); err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid job posting data", err)
		return
	}

	updatedJob, err := jc.jobService.UpdateJob(c, jobID, job)
	if err != nil {
		if ve, ok := apperrors.AsValidationError(err); ok {
			util.RespondWithError(c, http.StatusBadRequest, ve.Error(), err)
			return
		}
		if errors.Is(err, apperrors.ErrJobNotFound) {
			util.RespondWithError(c, http.StatusNotFound, "Job posting not found", err)
			return
		}
		util.RespondWithError(c, http.StatusInternalServerError, "Failed to update job posting", err)
		return
	}

	c.JSON(http.StatusOK, updatedJob)
}

// DeleteJob endpoint
func (jc *JobController) DeleteJob(c *gin.Context) {
	jobID := c.Param("id")

	if err := jc.jobService.DeleteJob(c, jobID); err != nil {
		if errors.Is(err, apperrors.ErrJobNotFound) {
			util.RespondWithError(c, http.StatusNotFound, "Job posting not found", err)
			return
		}
		util.RespondWithError(c, http.StatusInternalServerError, "Failed to delete job posting", err)
		return
	}

	c.Status(http.StatusNoContent)
}

// GetJob endpoint
func (jc *JobController) GetJob(c *gin.Context) {
	jobID := c.Param("id")

	job, err := jc.jobService.GetJob(c, jobID)
	if err != nil {
		if errors.Is(err, apperrors.ErrJobNotFound) {
			util.RespondWithError(c, http.StatusNotFound, "Job posting not found", err)
			return
		}
		util.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve job posting", err)
		return
	}

	c.JSON(http.StatusOK, job)
}

// SearchJobs endpoint. Filters on agency, location substring, and published
// state, all optional.
func (jc *JobController) SearchJobs(c *gin.Context) {
	limit, offset, err := helper_util.GetPaginationParams(c)
	if err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid pagination parameters", apperrors.ErrInvalidPagination)
		return
	}

	criteria := model.JobSearchCriteria{
		AgencyID: c.Query("agency"),
		Location: c.Query("location"),
		Limit:    limit,
		Offset:   offset,
	}
	if raw := c.Query("published"); raw != "" {
		published, err := strconv.ParseBool(raw)
		if err != nil {
			util.RespondWithError(c, http.StatusBadRequest, "Invalid published filter", err)
			return
		}
		criteria.Published = &published
	}

	jobs, err := jc.jobService.SearchJobs(c, criteria)
	if err != nil {
		util.RespondWithError(c, http.StatusInternalServerError, "Failed to search job postings", err)
		return
	}
	if jobs == nil {
		jobs = []*model.JobPosting{}
	}

	c.JSON(http.StatusOK, jobs)
}

// ListJobs endpoint
func (jc *JobController) ListJobs(c *gin.Context) {
	limit, offset, err := helper_util.GetPaginationParams(c)
	if err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid pagination parameters", apperrors.ErrInvalidPagination)
		return
	}

	jobs, err := jc.jobService.ListJobs(c, limit, offset)
	if err != nil {
		util.RespondWithError(c, http.StatusInternalServerError, "Failed to list job postings", err)
		return
	}
	if jobs == nil {
		jobs = []*model.JobPosting{}
	}

	c.JSON(http.StatusOK, jobs)
}

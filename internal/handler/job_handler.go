package handler

import (
	"errors"

	apperrors "github.com/Malmeu/food-force-v2-sub001/internal/errors"
	"github.com/Malmeu/food-force-v2-sub001/internal/middleware"
	"github.com/Malmeu/food-force-v2-sub001/internal/models"
	"github.com/Malmeu/food-force-v2-sub001/internal/service"
	"github.com/Malmeu/food-force-v2-sub001/pkg/response"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// JobHandler handles HTTP requests for job postings.
type JobHandler struct {
	service service.JobServicer
}

// NewJobHandler creates a new JobHandler.
func NewJobHandler(service service.JobServicer) *JobHandler {
	return &JobHandler{service: service}
}

// CreateJob godoc
// @Summary      Create a job posting
// @Description  Create a job posting owned by the authenticated establishment
// @Tags         jobs
// @Accept       json
// @Produce      json
// @Param        body  body      models.CreateJobRequest  true  "Job details"
// @Success      201   {object}  response.Response{data=models.Job}
// @Failure      400   {object}  response.Response
// @Failure      401   {object}  response.Response
// @Failure      403   {object}  response.Response
// @Failure      500   {object}  response.Response
// @Security     BearerAuth
// @Router       /jobs [post]
func (h *JobHandler) CreateJob(c *gin.Context) {
	var req models.CreateJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, err)
		return
	}

	job, err := h.service.CreateJob(c.Request.Context(), middleware.GetUserID(c), &req)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.Created(c, job)
}

// SearchJobs godoc
// @Summary      Search jobs
// @Description  List active job postings, optionally filtered by city, contract type or sector
// @Tags         jobs
// @Produce      json
// @Param        city          query     string  false  "City"
// @Param        contractType  query     string  false  "Contract type"
// @Param        sector        query     string  false  "Sector"
// @Param        page          query     int     false  "Page number (default: 1)"
// @Param        limit         query     int     false  "Items per page (default: 10)"
// @Success      200  {object}  response.Response{data=models.JobListResponse}
// @Failure      500  {object}  response.Response
// @Router       /jobs [get]
func (h *JobHandler) SearchJobs(c *gin.Context) {
	var filter models.JobFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.ValidationError(c, err)
		return
	}
	page, limit := pagination(c)

	result, err := h.service.SearchJobs(c.Request.Context(), &filter, page, limit)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.Success(c, result)
}

// GetJob godoc
// @Summary      Get a job posting
// @Tags         jobs
// @Produce      json
// @Param        id   path      string  true  "Job ID"
// @Success      200  {object}  response.Response{data=models.Job}
// @Failure      400  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Failure      500  {object}  response.Response
// @Router       /jobs/{id} [get]
func (h *JobHandler) GetJob(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid job id")
		return
	}

	job, err := h.service.GetJob(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, apperrors.ErrJobNotFound) {
			response.NotFound(c, err.Error())
			return
		}
		response.InternalError(c)
		return
	}

	response.Success(c, job)
}

// ListEstablishmentJobs godoc
// @Summary      List own job postings
// @Description  List the authenticated establishment's postings, all statuses included
// @Tags         jobs
// @Produce      json
// @Param        page   query     int  false  "Page number (default: 1)"
// @Param        limit  query     int  false  "Items per page (default: 10)"
// @Success      200  {object}  response.Response{data=models.JobListResponse}
// @Failure      401  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Failure      500  {object}  response.Response
// @Security     BearerAuth
// @Router       /jobs/establishment [get]
func (h *JobHandler) ListEstablishmentJobs(c *gin.Context) {
	page, limit := pagination(c)

	result, err := h.service.ListEstablishmentJobs(c.Request.Context(), middleware.GetUserID(c), page, limit)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.Success(c, result)
}

// UpdateJob godoc
// @Summary      Update a job posting
// @Tags         jobs
// @Accept       json
// @Produce      json
// @Param        id    path      string                  true  "Job ID"
// @Param        body  body      models.UpdateJobRequest  true  "Fields to update"
// @Success      200   {object}  response.Response{data=models.Job}
// @Failure      400   {object}  response.Response
// @Failure      401   {object}  response.Response
// @Failure      403   {object}  response.Response
// @Failure      404   {object}  response.Response
// @Failure      500   {object}  response.Response
// @Security     BearerAuth
// @Router       /jobs/{id} [put]
func (h *JobHandler) UpdateJob(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid job id")
		return
	}

	var req models.UpdateJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, err)
		return
	}

	job, err := h.service.UpdateJob(c.Request.Context(), id, middleware.GetUserID(c), &req)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrForbidden):
			response.Forbidden(c, err.Error())
		case errors.Is(err, apperrors.ErrJobNotFound):
			response.NotFound(c, err.Error())
		default:
			response.InternalError(c)
		}
		return
	}

	response.Success(c, job)
}

// DeleteJob godoc
// @Summary      Delete a job posting
// @Tags         jobs
// @Produce      json
// @Param        id   path      string  true  "Job ID"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Failure      401  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Failure      500  {object}  response.Response
// @Security     BearerAuth
// @Router       /jobs/{id} [delete]
func (h *JobHandler) DeleteJob(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid job id")
		return
	}

	if err := h.service.DeleteJob(c.Request.Context(), id, middleware.GetUserID(c)); err != nil {
		switch {
		case errors.Is(err, apperrors.ErrForbidden):
			response.Forbidden(c, err.Error())
		case errors.Is(err, apperrors.ErrJobNotFound):
			response.NotFound(c, err.Error())
		default:
			response.InternalError(c)
		}
		return
	}

	response.SuccessMessage(c, "job deleted", nil)
}

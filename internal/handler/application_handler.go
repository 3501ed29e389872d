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

// ApplicationHandler handles HTTP requests for job applications.
type ApplicationHandler struct {
	service service.ApplicationServicer
}

// NewApplicationHandler creates a new ApplicationHandler.
func NewApplicationHandler(service service.ApplicationServicer) *ApplicationHandler {
	return &ApplicationHandler{service: service}
}

// Apply godoc
// @Summary      Apply to a job
// @Description  Submit an application to an active job. One application per candidate per job.
// @Tags         applications
// @Accept       json
// @Produce      json
// @Param        body  body      models.CreateApplicationRequest  true  "Application details"
// @Success      201   {object}  response.Response{data=models.Application}
// @Failure      400   {object}  response.Response
// @Failure      401   {object}  response.Response
// @Failure      403   {object}  response.Response
// @Failure      404   {object}  response.Response
// @Failure      500   {object}  response.Response
// @Security     BearerAuth
// @Router       /applications [post]
func (h *ApplicationHandler) Apply(c *gin.Context) {
	var req models.CreateApplicationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, err)
		return
	}

	application, err := h.service.Apply(c.Request.Context(), middleware.GetUserID(c), &req)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrJobNotFound):
			response.NotFound(c, err.Error())
		case errors.Is(err, apperrors.ErrJobInactive), errors.Is(err, apperrors.ErrAlreadyApplied):
			response.BadRequest(c, err.Error())
		default:
			response.InternalError(c)
		}
		return
	}

	response.Created(c, application)
}

// ListJobApplications godoc
// @Summary      List a job's applications
// @Description  List the applications for a job the authenticated establishment owns
// @Tags         applications
// @Produce      json
// @Param        jobId  path      string  true   "Job ID"
// @Param        page   query     int     false  "Page number (default: 1)"
// @Param        limit  query     int     false  "Items per page (default: 10)"
// @Success      200  {object}  response.Response{data=models.ApplicationListResponse}
// @Failure      400  {object}  response.Response
// @Failure      401  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Failure      500  {object}  response.Response
// @Security     BearerAuth
// @Router       /applications/job/{jobId} [get]
func (h *ApplicationHandler) ListJobApplications(c *gin.Context) {
	jobID, err := primitive.ObjectIDFromHex(c.Param("jobId"))
	if err != nil {
		response.BadRequest(c, "invalid job id")
		return
	}
	page, limit := pagination(c)

	result, err := h.service.ListJobApplications(c.Request.Context(), jobID, middleware.GetUserID(c), page, limit)
	if err != nil {
		if errors.Is(err, apperrors.ErrForbidden) {
			response.Forbidden(c, err.Error())
			return
		}
		response.InternalError(c)
		return
	}

	response.Success(c, result)
}

// ListCandidateApplications godoc
// @Summary      List own applications
// @Tags         applications
// @Produce      json
// @Param        page   query     int  false  "Page number (default: 1)"
// @Param        limit  query     int  false  "Items per page (default: 10)"
// @Success      200  {object}  response.Response{data=models.ApplicationListResponse}
// @Failure      401  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Failure      500  {object}  response.Response
// @Security     BearerAuth
// @Router       /applications/candidate [get]
func (h *ApplicationHandler) ListCandidateApplications(c *gin.Context) {
	page, limit := pagination(c)

	result, err := h.service.ListCandidateApplications(c.Request.Context(), middleware.GetUserID(c), page, limit)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.Success(c, result)
}

// UpdateStatus godoc
// @Summary      Update an application's status
// @Description  Move an application through review. English and legacy French labels are accepted.
// @Tags         applications
// @Accept       json
// @Produce      json
// @Param        id    path      string                                 true  "Application ID"
// @Param        body  body      models.UpdateApplicationStatusRequest  true  "New status"
// @Success      200   {object}  response.Response{data=models.Application}
// @Failure      400   {object}  response.Response
// @Failure      401   {object}  response.Response
// @Failure      403   {object}  response.Response
// @Failure      404   {object}  response.Response
// @Failure      500   {object}  response.Response
// @Security     BearerAuth
// @Router       /applications/{id}/status [put]
func (h *ApplicationHandler) UpdateStatus(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid application id")
		return
	}

	var req models.UpdateApplicationStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, err)
		return
	}

	application, err := h.service.UpdateStatus(c.Request.Context(), id, middleware.GetUserID(c), req.Status)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrUnknownApplicationStatus):
			response.BadRequest(c, err.Error())
		case errors.Is(err, apperrors.ErrForbidden):
			response.Forbidden(c, err.Error())
		case errors.Is(err, apperrors.ErrApplicationNotFound):
			response.NotFound(c, err.Error())
		default:
			response.InternalError(c)
		}
		return
	}

	response.Success(c, application)
}

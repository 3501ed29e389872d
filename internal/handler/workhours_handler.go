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

// WorkHoursHandler handles HTTP requests for work-hours entries.
type WorkHoursHandler struct {
	service service.WorkHoursServicer
}

// NewWorkHoursHandler creates a new WorkHoursHandler.
func NewWorkHoursHandler(service service.WorkHoursServicer) *WorkHoursHandler {
	return &WorkHoursHandler{service: service}
}

// Record godoc
// @Summary      Record work hours
// @Description  Log a dated time entry against a mission assigned to the authenticated candidate
// @Tags         workhours
// @Accept       json
// @Produce      json
// @Param        body  body      models.RecordWorkHoursRequest  true  "Time entry"
// @Success      201   {object}  response.Response{data=models.WorkHours}
// @Failure      400   {object}  response.Response
// @Failure      401   {object}  response.Response
// @Failure      403   {object}  response.Response
// @Failure      404   {object}  response.Response
// @Failure      500   {object}  response.Response
// @Security     BearerAuth
// @Router       /workhours [post]
func (h *WorkHoursHandler) Record(c *gin.Context) {
	var req models.RecordWorkHoursRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, err)
		return
	}

	entry, err := h.service.Record(c.Request.Context(), middleware.GetUserID(c), &req)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrForbidden):
			response.Forbidden(c, err.Error())
		case errors.Is(err, apperrors.ErrMissionNotFound):
			response.NotFound(c, err.Error())
		case errors.Is(err, apperrors.ErrDateOutsideMission):
			response.BadRequest(c, err.Error())
		default:
			response.InternalError(c)
		}
		return
	}

	response.Created(c, entry)
}

// ListMissionWorkHours godoc
// @Summary      List a mission's work hours
// @Description  List the time entries logged against a mission. Only the mission's parties may view them.
// @Tags         workhours
// @Produce      json
// @Param        missionId  path      string  true   "Mission ID"
// @Param        page       query     int     false  "Page number (default: 1)"
// @Param        limit      query     int     false  "Items per page (default: 10)"
// @Success      200  {object}  response.Response{data=models.WorkHoursListResponse}
// @Failure      400  {object}  response.Response
// @Failure      401  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Failure      500  {object}  response.Response
// @Security     BearerAuth
// @Router       /workhours/mission/{missionId} [get]
func (h *WorkHoursHandler) ListMissionWorkHours(c *gin.Context) {
	missionID, err := primitive.ObjectIDFromHex(c.Param("missionId"))
	if err != nil {
		response.BadRequest(c, "invalid mission id")
		return
	}
	page, limit := pagination(c)

	result, err := h.service.ListMissionWorkHours(c.Request.Context(), missionID, middleware.GetUserID(c), page, limit)
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

// ListCandidateWorkHours godoc
// @Summary      List own work hours
// @Tags         workhours
// @Produce      json
// @Param        page   query     int  false  "Page number (default: 1)"
// @Param        limit  query     int  false  "Items per page (default: 10)"
// @Success      200  {object}  response.Response{data=models.WorkHoursListResponse}
// @Failure      401  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Failure      500  {object}  response.Response
// @Security     BearerAuth
// @Router       /workhours/candidate [get]
func (h *WorkHoursHandler) ListCandidateWorkHours(c *gin.Context) {
	page, limit := pagination(c)

	result, err := h.service.ListCandidateWorkHours(c.Request.Context(), middleware.GetUserID(c), page, limit)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.Success(c, result)
}

// Validate godoc
// @Summary      Validate a work-hours entry
// @Description  Approve a pending entry. The mission's actual hours are recomputed from the validated total.
// @Tags         workhours
// @Produce      json
// @Param        id   path      string  true  "Work-hours entry ID"
// @Success      200  {object}  response.Response{data=models.WorkHours}
// @Failure      400  {object}  response.Response
// @Failure      401  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Failure      500  {object}  response.Response
// @Security     BearerAuth
// @Router       /workhours/{id}/validate [put]
func (h *WorkHoursHandler) Validate(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid work hours id")
		return
	}

	entry, err := h.service.Validate(c.Request.Context(), id, middleware.GetUserID(c))
	if err != nil {
		h.respondReviewError(c, err)
		return
	}

	response.Success(c, entry)
}

// Reject godoc
// @Summary      Reject a work-hours entry
// @Description  Refuse a pending entry with a mandatory reason
// @Tags         workhours
// @Accept       json
// @Produce      json
// @Param        id    path      string                         true  "Work-hours entry ID"
// @Param        body  body      models.RejectWorkHoursRequest  true  "Rejection reason"
// @Success      200   {object}  response.Response{data=models.WorkHours}
// @Failure      400   {object}  response.Response
// @Failure      401   {object}  response.Response
// @Failure      403   {object}  response.Response
// @Failure      404   {object}  response.Response
// @Failure      500   {object}  response.Response
// @Security     BearerAuth
// @Router       /workhours/{id}/reject [put]
func (h *WorkHoursHandler) Reject(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid work hours id")
		return
	}

	var req models.RejectWorkHoursRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, err)
		return
	}

	entry, err := h.service.Reject(c.Request.Context(), id, middleware.GetUserID(c), req.Reason)
	if err != nil {
		h.respondReviewError(c, err)
		return
	}

	response.Success(c, entry)
}

func (h *WorkHoursHandler) respondReviewError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, apperrors.ErrForbidden):
		response.Forbidden(c, err.Error())
	case errors.Is(err, apperrors.ErrWorkHoursNotFound):
		response.NotFound(c, err.Error())
	case errors.Is(err, apperrors.ErrWorkHoursAlreadyReviewed):
		response.BadRequest(c, err.Error())
	default:
		response.InternalError(c)
	}
}

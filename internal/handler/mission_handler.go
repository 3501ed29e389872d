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

// MissionHandler handles HTTP requests for missions.
type MissionHandler struct {
	service service.MissionServicer
}

// NewMissionHandler creates a new MissionHandler.
func NewMissionHandler(service service.MissionServicer) *MissionHandler {
	return &MissionHandler{service: service}
}

// CreateMission godoc
// @Summary      Create a mission
// @Description  Create a mission from an accepted application on one of the establishment's jobs
// @Tags         missions
// @Accept       json
// @Produce      json
// @Param        body  body      models.CreateMissionRequest  true  "Mission details"
// @Success      201   {object}  response.Response{data=models.Mission}
// @Failure      400   {object}  response.Response
// @Failure      401   {object}  response.Response
// @Failure      403   {object}  response.Response
// @Failure      404   {object}  response.Response
// @Failure      500   {object}  response.Response
// @Security     BearerAuth
// @Router       /missions [post]
func (h *MissionHandler) CreateMission(c *gin.Context) {
	var req models.CreateMissionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, err)
		return
	}

	mission, err := h.service.CreateMission(c.Request.Context(), middleware.GetUserID(c), &req)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrForbidden):
			response.Forbidden(c, err.Error())
		case errors.Is(err, apperrors.ErrApplicationNotFound), errors.Is(err, apperrors.ErrUserNotFound):
			response.NotFound(c, err.Error())
		case errors.Is(err, apperrors.ErrApplicationNotAccepted):
			response.BadRequest(c, err.Error())
		default:
			response.InternalError(c)
		}
		return
	}

	response.Created(c, mission)
}

// GetMission godoc
// @Summary      Get a mission
// @Description  Retrieve a mission. Only its establishment or candidate may view it.
// @Tags         missions
// @Produce      json
// @Param        id   path      string  true  "Mission ID"
// @Success      200  {object}  response.Response{data=models.Mission}
// @Failure      400  {object}  response.Response
// @Failure      401  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Failure      500  {object}  response.Response
// @Security     BearerAuth
// @Router       /missions/{id} [get]
func (h *MissionHandler) GetMission(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid mission id")
		return
	}

	mission, err := h.service.GetMission(c.Request.Context(), id, middleware.GetUserID(c))
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrForbidden):
			response.Forbidden(c, err.Error())
		case errors.Is(err, apperrors.ErrMissionNotFound):
			response.NotFound(c, err.Error())
		default:
			response.InternalError(c)
		}
		return
	}

	response.Success(c, mission)
}

// ListEstablishmentMissions godoc
// @Summary      List own missions (establishment)
// @Tags         missions
// @Produce      json
// @Param        page   query     int  false  "Page number (default: 1)"
// @Param        limit  query     int  false  "Items per page (default: 10)"
// @Success      200  {object}  response.Response{data=models.MissionListResponse}
// @Failure      401  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Failure      500  {object}  response.Response
// @Security     BearerAuth
// @Router       /missions/establishment [get]
func (h *MissionHandler) ListEstablishmentMissions(c *gin.Context) {
	page, limit := pagination(c)

	result, err := h.service.ListEstablishmentMissions(c.Request.Context(), middleware.GetUserID(c), page, limit)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.Success(c, result)
}

// ListCandidateMissions godoc
// @Summary      List own missions (candidate)
// @Tags         missions
// @Produce      json
// @Param        page   query     int  false  "Page number (default: 1)"
// @Param        limit  query     int  false  "Items per page (default: 10)"
// @Success      200  {object}  response.Response{data=models.MissionListResponse}
// @Failure      401  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Failure      500  {object}  response.Response
// @Security     BearerAuth
// @Router       /missions/candidate [get]
func (h *MissionHandler) ListCandidateMissions(c *gin.Context) {
	page, limit := pagination(c)

	result, err := h.service.ListCandidateMissions(c.Request.Context(), middleware.GetUserID(c), page, limit)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.Success(c, result)
}

// UpdateMission godoc
// @Summary      Update a mission
// @Description  Update a mission's fields. Only the owning establishment may update.
// @Tags         missions
// @Accept       json
// @Produce      json
// @Param        id    path      string                       true  "Mission ID"
// @Param        body  body      models.UpdateMissionRequest  true  "Fields to update"
// @Success      200   {object}  response.Response{data=models.Mission}
// @Failure      400   {object}  response.Response
// @Failure      401   {object}  response.Response
// @Failure      403   {object}  response.Response
// @Failure      404   {object}  response.Response
// @Failure      500   {object}  response.Response
// @Security     BearerAuth
// @Router       /missions/{id} [put]
func (h *MissionHandler) UpdateMission(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid mission id")
		return
	}

	var req models.UpdateMissionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, err)
		return
	}

	mission, err := h.service.UpdateMission(c.Request.Context(), id, middleware.GetUserID(c), &req)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrForbidden):
			response.Forbidden(c, err.Error())
		case errors.Is(err, apperrors.ErrMissionNotFound):
			response.NotFound(c, err.Error())
		case errors.Is(err, apperrors.ErrUnknownMissionStatus), errors.Is(err, apperrors.ErrInvalidMissionTransition):
			response.BadRequest(c, err.Error())
		default:
			response.InternalError(c)
		}
		return
	}

	response.Success(c, mission)
}

// UpdateStatus godoc
// @Summary      Update a mission's status
// @Description  Move a mission through its lifecycle. English and legacy French labels are accepted.
// @Tags         missions
// @Accept       json
// @Produce      json
// @Param        id    path      string                             true  "Mission ID"
// @Param        body  body      models.UpdateMissionStatusRequest  true  "New status"
// @Success      200   {object}  response.Response{data=models.Mission}
// @Failure      400   {object}  response.Response
// @Failure      401   {object}  response.Response
// @Failure      403   {object}  response.Response
// @Failure      404   {object}  response.Response
// @Failure      500   {object}  response.Response
// @Security     BearerAuth
// @Router       /missions/{id}/status [put]
func (h *MissionHandler) UpdateStatus(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid mission id")
		return
	}

	var req models.UpdateMissionStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, err)
		return
	}

	mission, err := h.service.UpdateStatus(c.Request.Context(), id, middleware.GetUserID(c), middleware.GetUserType(c), req.Status)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrForbidden):
			response.Forbidden(c, err.Error())
		case errors.Is(err, apperrors.ErrMissionNotFound):
			response.NotFound(c, err.Error())
		case errors.Is(err, apperrors.ErrUnknownMissionStatus), errors.Is(err, apperrors.ErrInvalidMissionTransition):
			response.BadRequest(c, err.Error())
		default:
			response.InternalError(c)
		}
		return
	}

	response.Success(c, mission)
}

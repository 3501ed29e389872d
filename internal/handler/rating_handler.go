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

// RatingHandler handles HTTP requests for ratings.
type RatingHandler struct {
	service service.RatingServicer
}

// NewRatingHandler creates a new RatingHandler.
func NewRatingHandler(service service.RatingServicer) *RatingHandler {
	return &RatingHandler{service: service}
}

// RateMission godoc
// @Summary      Rate a mission's counterparty
// @Description  Score the other party of a completed mission. One rating per rater per mission.
// @Tags         ratings
// @Accept       json
// @Produce      json
// @Param        body  body      models.CreateRatingRequest  true  "Rating"
// @Success      201   {object}  response.Response{data=models.Rating}
// @Failure      400   {object}  response.Response
// @Failure      401   {object}  response.Response
// @Failure      403   {object}  response.Response
// @Failure      404   {object}  response.Response
// @Failure      500   {object}  response.Response
// @Security     BearerAuth
// @Router       /ratings [post]
func (h *RatingHandler) RateMission(c *gin.Context) {
	var req models.CreateRatingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, err)
		return
	}

	rating, err := h.service.RateMission(c.Request.Context(), middleware.GetUserID(c), &req)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrForbidden):
			response.Forbidden(c, err.Error())
		case errors.Is(err, apperrors.ErrMissionNotFound):
			response.NotFound(c, err.Error())
		case errors.Is(err, apperrors.ErrMissionNotCompleted), errors.Is(err, apperrors.ErrAlreadyRated):
			response.BadRequest(c, err.Error())
		default:
			response.InternalError(c)
		}
		return
	}

	response.Created(c, rating)
}

// ListUserRatings godoc
// @Summary      List a user's ratings
// @Tags         ratings
// @Produce      json
// @Param        userId  path      string  true   "User ID"
// @Param        page    query     int     false  "Page number (default: 1)"
// @Param        limit   query     int     false  "Items per page (default: 10)"
// @Success      200  {object}  response.Response{data=models.RatingListResponse}
// @Failure      400  {object}  response.Response
// @Failure      401  {object}  response.Response
// @Failure      500  {object}  response.Response
// @Security     BearerAuth
// @Router       /ratings/user/{userId} [get]
func (h *RatingHandler) ListUserRatings(c *gin.Context) {
	userID, err := primitive.ObjectIDFromHex(c.Param("userId"))
	if err != nil {
		response.BadRequest(c, "invalid user id")
		return
	}
	page, limit := pagination(c)

	result, err := h.service.ListUserRatings(c.Request.Context(), userID, page, limit)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.Success(c, result)
}

// GetUserAverage godoc
// @Summary      Get a user's average rating
// @Tags         ratings
// @Produce      json
// @Param        userId  path      string  true  "User ID"
// @Success      200  {object}  response.Response{data=models.RatingAverage}
// @Failure      400  {object}  response.Response
// @Failure      401  {object}  response.Response
// @Failure      500  {object}  response.Response
// @Security     BearerAuth
// @Router       /ratings/user/{userId}/average [get]
func (h *RatingHandler) GetUserAverage(c *gin.Context) {
	userID, err := primitive.ObjectIDFromHex(c.Param("userId"))
	if err != nil {
		response.BadRequest(c, "invalid user id")
		return
	}

	average, err := h.service.GetUserAverage(c.Request.Context(), userID)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.Success(c, average)
}

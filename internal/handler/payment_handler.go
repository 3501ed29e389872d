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

// PaymentHandler handles HTTP requests for payments.
type PaymentHandler struct {
	service service.PaymentServicer
}

// NewPaymentHandler creates a new PaymentHandler.
func NewPaymentHandler(service service.PaymentServicer) *PaymentHandler {
	return &PaymentHandler{service: service}
}

// CreateMissionPayment godoc
// @Summary      Create a mission payment
// @Description  Create a payment for hours worked on a mission. The claimed hours must be covered by validated work-hours entries in the period.
// @Tags         payments
// @Accept       json
// @Produce      json
// @Param        body  body      models.CreateMissionPaymentRequest  true  "Payment details"
// @Success      201   {object}  response.Response{data=models.Payment}
// @Failure      400   {object}  response.Response
// @Failure      401   {object}  response.Response
// @Failure      403   {object}  response.Response
// @Failure      404   {object}  response.Response
// @Failure      500   {object}  response.Response
// @Security     BearerAuth
// @Router       /payments/mission [post]
func (h *PaymentHandler) CreateMissionPayment(c *gin.Context) {
	var req models.CreateMissionPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, err)
		return
	}

	payment, err := h.service.CreateMissionPayment(c.Request.Context(), middleware.GetUserID(c), &req)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrForbidden):
			response.Forbidden(c, err.Error())
		case errors.Is(err, apperrors.ErrMissionNotFound):
			response.NotFound(c, err.Error())
		case errors.Is(err, apperrors.ErrInsufficientValidatedHours):
			response.BadRequest(c, err.Error())
		default:
			response.InternalError(c)
		}
		return
	}

	response.Created(c, payment)
}

// ListMissionPayments godoc
// @Summary      List a mission's payments
// @Description  List the payments tied to a mission. Only the mission's parties may view them.
// @Tags         payments
// @Produce      json
// @Param        missionId  path      string  true   "Mission ID"
// @Param        page       query     int     false  "Page number (default: 1)"
// @Param        limit      query     int     false  "Items per page (default: 10)"
// @Success      200  {object}  response.Response{data=models.PaymentListResponse}
// @Failure      400  {object}  response.Response
// @Failure      401  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Failure      500  {object}  response.Response
// @Security     BearerAuth
// @Router       /payments/mission/{missionId} [get]
func (h *PaymentHandler) ListMissionPayments(c *gin.Context) {
	missionID, err := primitive.ObjectIDFromHex(c.Param("missionId"))
	if err != nil {
		response.BadRequest(c, "invalid mission id")
		return
	}
	page, limit := pagination(c)

	result, err := h.service.ListMissionPayments(c.Request.Context(), missionID, middleware.GetUserID(c), page, limit)
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

// ListEmployerPayments godoc
// @Summary      List own payments (establishment)
// @Tags         payments
// @Produce      json
// @Param        page   query     int  false  "Page number (default: 1)"
// @Param        limit  query     int  false  "Items per page (default: 10)"
// @Success      200  {object}  response.Response{data=models.PaymentListResponse}
// @Failure      401  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Failure      500  {object}  response.Response
// @Security     BearerAuth
// @Router       /payments/employer [get]
func (h *PaymentHandler) ListEmployerPayments(c *gin.Context) {
	page, limit := pagination(c)

	result, err := h.service.ListEmployerPayments(c.Request.Context(), middleware.GetUserID(c), page, limit)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.Success(c, result)
}

// ListCandidatePayments godoc
// @Summary      List own payments (candidate)
// @Tags         payments
// @Produce      json
// @Param        page   query     int  false  "Page number (default: 1)"
// @Param        limit  query     int  false  "Items per page (default: 10)"
// @Success      200  {object}  response.Response{data=models.PaymentListResponse}
// @Failure      401  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Failure      500  {object}  response.Response
// @Security     BearerAuth
// @Router       /payments/candidate [get]
func (h *PaymentHandler) ListCandidatePayments(c *gin.Context) {
	page, limit := pagination(c)

	result, err := h.service.ListCandidatePayments(c.Request.Context(), middleware.GetUserID(c), page, limit)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.Success(c, result)
}

// UpdateStatus godoc
// @Summary      Update a payment's status
// @Description  Advance a payment one step: pending to processed, processed to paid. English and legacy French labels are accepted.
// @Tags         payments
// @Accept       json
// @Produce      json
// @Param        id    path      string                             true  "Payment ID"
// @Param        body  body      models.UpdatePaymentStatusRequest  true  "New status"
// @Success      200   {object}  response.Response{data=models.Payment}
// @Failure      400   {object}  response.Response
// @Failure      401   {object}  response.Response
// @Failure      403   {object}  response.Response
// @Failure      404   {object}  response.Response
// @Failure      500   {object}  response.Response
// @Security     BearerAuth
// @Router       /payments/{id}/status [put]
func (h *PaymentHandler) UpdateStatus(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid payment id")
		return
	}

	var req models.UpdatePaymentStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, err)
		return
	}

	payment, err := h.service.UpdateStatus(c.Request.Context(), id, middleware.GetUserID(c), req.Status)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrForbidden):
			response.Forbidden(c, err.Error())
		case errors.Is(err, apperrors.ErrPaymentNotFound):
			response.NotFound(c, err.Error())
		case errors.Is(err, apperrors.ErrUnknownPaymentStatus),
			errors.Is(err, apperrors.ErrPaymentAlreadyPaid),
			errors.Is(err, apperrors.ErrInvalidPaymentTransition):
			response.BadRequest(c, err.Error())
		default:
			response.InternalError(c)
		}
		return
	}

	response.Success(c, payment)
}

// EmployerStats godoc
// @Summary      Get payment statistics
// @Description  Aggregate the authenticated establishment's payments by status and by month
// @Tags         payments
// @Produce      json
// @Success      200  {object}  response.Response{data=models.EmployerPaymentStats}
// @Failure      401  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Failure      500  {object}  response.Response
// @Security     BearerAuth
// @Router       /payments/employer/stats [get]
func (h *PaymentHandler) EmployerStats(c *gin.Context) {
	stats, err := h.service.EmployerStats(c.Request.Context(), middleware.GetUserID(c))
	if err != nil {
		response.InternalError(c)
		return
	}

	response.Success(c, stats)
}

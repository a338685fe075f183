package controllers

import (
	"hotel-booking/dto"
	"hotel-booking/response"
	"hotel-booking/services"

	"github.com/gin-gonic/gin"
)

type PaymentController struct {
	Payments *services.PaymentService
}

func NewPaymentController(payments *services.PaymentService) PaymentController {
	return PaymentController{Payments: payments}
}

func (p PaymentController) Methods(c *gin.Context) {
	response.SuccessWithMessage(c, "Payment methods retrieved successfully", p.Payments.Methods())
}

func (p PaymentController) Process(c *gin.Context) {
	var req dto.ProcessPaymentRequest
	if !bindJSON(c, &req) {
		return
	}
	payment, err := p.Payments.ProcessPayment(c.Request.Context(), currentActor(c), req)
	if err != nil {
		_ = c.Error(err)
		return
	}
	response.Created(c, "Payment processed successfully", payment)
}

func (p PaymentController) List(c *gin.Context) {
	var q dto.PaymentListQuery
	if !bindQuery(c, &q) {
		return
	}
	payments, page, err := p.Payments.List(c.Request.Context(), currentActor(c), q)
	if err != nil {
		_ = c.Error(err)
		return
	}
	response.SuccessWithPagination(c, payments, page)
}

func (p PaymentController) UpdateStatus(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	var req dto.UpdatePaymentStatusRequest
	if !bindJSON(c, &req) {
		return
	}
	payment, err := p.Payments.UpdateStatus(c.Request.Context(), currentActor(c), id, req)
	if err != nil {
		_ = c.Error(err)
		return
	}
	response.SuccessWithMessage(c, "Payment status updated successfully", payment)
}

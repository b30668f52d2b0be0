package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/mhc-billing/payroll-backend-go/internal/domain/extra"
	"github.com/mhc-billing/payroll-backend-go/internal/handler/http/response"
)

type ExtraPaymentHandler interface {
	CreatePayment(w http.ResponseWriter, r *http.Request)
	GetPayment(w http.ResponseWriter, r *http.Request)
	UpdatePayment(w http.ResponseWriter, r *http.Request)
	DeletePayment(w http.ResponseWriter, r *http.Request)
	ListForPayroll(w http.ResponseWriter, r *http.Request)
	TotalsByWorker(w http.ResponseWriter, r *http.Request)
	TotalsByCode(w http.ResponseWriter, r *http.Request)
}

type extraPaymentHandlerImpl struct {
	paymentService extra.PaymentService
}

func NewExtraPaymentHandler(paymentService extra.PaymentService) ExtraPaymentHandler {
	return &extraPaymentHandlerImpl{
		paymentService: paymentService,
	}
}

func (h *extraPaymentHandlerImpl) CreatePayment(w http.ResponseWriter, r *http.Request) {
	var req extra.CreatePaymentRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.paymentService.CreatePayment(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Extra payment created successfully", result)
}

func (h *extraPaymentHandlerImpl) GetPayment(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	result, err := h.paymentService.GetPayment(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *extraPaymentHandlerImpl) UpdatePayment(w http.ResponseWriter, r *http.Request) {
	var req extra.UpdatePaymentRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")

	result, err := h.paymentService.UpdatePayment(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Extra payment updated successfully", result)
}

func (h *extraPaymentHandlerImpl) DeletePayment(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.paymentService.DeletePayment(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Extra payment deleted successfully", nil)
}

func (h *extraPaymentHandlerImpl) ListForPayroll(w http.ResponseWriter, r *http.Request) {
	payrollID := chi.URLParam(r, "id")

	result, err := h.paymentService.ListForPayroll(r.Context(), payrollID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *extraPaymentHandlerImpl) TotalsByWorker(w http.ResponseWriter, r *http.Request) {
	payrollID := chi.URLParam(r, "id")

	result, err := h.paymentService.TotalsByWorker(r.Context(), payrollID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *extraPaymentHandlerImpl) TotalsByCode(w http.ResponseWriter, r *http.Request) {
	payrollID := chi.URLParam(r, "id")

	result, err := h.paymentService.TotalsByCode(r.Context(), payrollID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

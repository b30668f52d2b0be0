package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/mhc-billing/payroll-backend-go/internal/domain/hours"
	"github.com/mhc-billing/payroll-backend-go/internal/handler/http/response"
)

type HoursHandler interface {
	SetHours(w http.ResponseWriter, r *http.Request)
	BulkSetHours(w http.ResponseWriter, r *http.Request)
	GetEntry(w http.ResponseWriter, r *http.Request)
	DeleteEntry(w http.ResponseWriter, r *http.Request)
	ListLines(w http.ResponseWriter, r *http.Request)
	TotalsByWorker(w http.ResponseWriter, r *http.Request)
	TotalsByPatient(w http.ResponseWriter, r *http.Request)
	TotalsByRole(w http.ResponseWriter, r *http.Request)
}

type hoursHandlerImpl struct {
	hoursService hours.HoursService
}

func NewHoursHandler(hoursService hours.HoursService) HoursHandler {
	return &hoursHandlerImpl{
		hoursService: hoursService,
	}
}

func (h *hoursHandlerImpl) SetHours(w http.ResponseWriter, r *http.Request) {
	var req hours.SetHoursRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.hoursService.SetHours(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Hours saved", result)
}

func (h *hoursHandlerImpl) BulkSetHours(w http.ResponseWriter, r *http.Request) {
	var req hours.BulkSetHoursRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.hoursService.BulkSetHours(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Hours import finished", result)
}

func (h *hoursHandlerImpl) GetEntry(w http.ResponseWriter, r *http.Request) {
	segmentID := chi.URLParam(r, "segmentID")
	assignmentID := chi.URLParam(r, "assignmentID")

	result, err := h.hoursService.GetEntry(r.Context(), segmentID, assignmentID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *hoursHandlerImpl) DeleteEntry(w http.ResponseWriter, r *http.Request) {
	segmentID := chi.URLParam(r, "segmentID")
	assignmentID := chi.URLParam(r, "assignmentID")

	if err := h.hoursService.DeleteEntry(r.Context(), segmentID, assignmentID); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Hours entry deleted", nil)
}

func (h *hoursHandlerImpl) ListLines(w http.ResponseWriter, r *http.Request) {
	payrollID := chi.URLParam(r, "id")

	result, err := h.hoursService.ListLinesForPayroll(r.Context(), payrollID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *hoursHandlerImpl) TotalsByWorker(w http.ResponseWriter, r *http.Request) {
	payrollID := chi.URLParam(r, "id")

	result, err := h.hoursService.TotalsByWorker(r.Context(), payrollID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *hoursHandlerImpl) TotalsByPatient(w http.ResponseWriter, r *http.Request) {
	payrollID := chi.URLParam(r, "id")

	result, err := h.hoursService.TotalsByPatient(r.Context(), payrollID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *hoursHandlerImpl) TotalsByRole(w http.ResponseWriter, r *http.Request) {
	payrollID := chi.URLParam(r, "id")

	result, err := h.hoursService.TotalsByRole(r.Context(), payrollID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

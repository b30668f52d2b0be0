package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/mhc-billing/payroll-backend-go/internal/domain/master/insurer"
	"github.com/mhc-billing/payroll-backend-go/internal/domain/master/specialrate"
	"github.com/mhc-billing/payroll-backend-go/internal/handler/http/response"
	"github.com/mhc-billing/payroll-backend-go/internal/service/master"
)

type MasterHandler interface {
	// Insurer handlers
	CreateInsurer(w http.ResponseWriter, r *http.Request)
	ListInsurers(w http.ResponseWriter, r *http.Request)
	UpdateInsurer(w http.ResponseWriter, r *http.Request)
	DeleteInsurer(w http.ResponseWriter, r *http.Request)

	// Special rate handlers
	CreateSpecialRate(w http.ResponseWriter, r *http.Request)
	ListSpecialRates(w http.ResponseWriter, r *http.Request)
	UpdateSpecialRate(w http.ResponseWriter, r *http.Request)
}

type masterHandlerImpl struct {
	masterService master.MasterService
}

func NewMasterHandler(masterService master.MasterService) MasterHandler {
	return &masterHandlerImpl{
		masterService: masterService,
	}
}

// ==================== INSURER HANDLERS ====================

func (h *masterHandlerImpl) CreateInsurer(w http.ResponseWriter, r *http.Request) {
	var req insurer.CreateInsurerRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.masterService.CreateInsurer(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Insurer created successfully", result)
}

func (h *masterHandlerImpl) ListInsurers(w http.ResponseWriter, r *http.Request) {
	activeOnly := r.URL.Query().Get("active") == "true"

	result, err := h.masterService.ListInsurers(r.Context(), activeOnly)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *masterHandlerImpl) UpdateInsurer(w http.ResponseWriter, r *http.Request) {
	var req insurer.UpdateInsurerRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")

	result, err := h.masterService.UpdateInsurer(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Insurer updated successfully", result)
}

func (h *masterHandlerImpl) DeleteInsurer(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.masterService.DeleteInsurer(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Insurer deleted successfully", nil)
}

// ==================== SPECIAL RATE HANDLERS ====================

func (h *masterHandlerImpl) CreateSpecialRate(w http.ResponseWriter, r *http.Request) {
	var req specialrate.CreateSpecialRateRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.masterService.CreateSpecialRate(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Special rate created successfully", result)
}

func (h *masterHandlerImpl) ListSpecialRates(w http.ResponseWriter, r *http.Request) {
	activeOnly := r.URL.Query().Get("active") == "true"

	result, err := h.masterService.ListSpecialRates(r.Context(), activeOnly)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *masterHandlerImpl) UpdateSpecialRate(w http.ResponseWriter, r *http.Request) {
	var req specialrate.UpdateSpecialRateRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")

	result, err := h.masterService.UpdateSpecialRate(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Special rate updated successfully", result)
}

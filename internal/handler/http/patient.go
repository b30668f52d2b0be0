package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/mhc-billing/payroll-backend-go/internal/domain/patient"
	"github.com/mhc-billing/payroll-backend-go/internal/handler/http/response"
)

type PatientHandler interface {
	CreatePatient(w http.ResponseWriter, r *http.Request)
	GetPatient(w http.ResponseWriter, r *http.Request)
	ListPatients(w http.ResponseWriter, r *http.Request)
	UpdatePatient(w http.ResponseWriter, r *http.Request)
	DeletePatient(w http.ResponseWriter, r *http.Request)
}

type patientHandlerImpl struct {
	patientService patient.PatientService
}

func NewPatientHandler(patientService patient.PatientService) PatientHandler {
	return &patientHandlerImpl{
		patientService: patientService,
	}
}

func (h *patientHandlerImpl) CreatePatient(w http.ResponseWriter, r *http.Request) {
	var req patient.CreatePatientRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.patientService.CreatePatient(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Patient created successfully", result)
}

func (h *patientHandlerImpl) GetPatient(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	result, err := h.patientService.GetPatient(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *patientHandlerImpl) ListPatients(w http.ResponseWriter, r *http.Request) {
	activeOnly := r.URL.Query().Get("active") == "true"

	result, err := h.patientService.ListPatients(r.Context(), activeOnly)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *patientHandlerImpl) UpdatePatient(w http.ResponseWriter, r *http.Request) {
	var req patient.UpdatePatientRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")

	result, err := h.patientService.UpdatePatient(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Patient updated successfully", result)
}

func (h *patientHandlerImpl) DeletePatient(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.patientService.DeletePatient(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Patient deactivated successfully", nil)
}

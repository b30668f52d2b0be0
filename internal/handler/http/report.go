package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/mhc-billing/payroll-backend-go/internal/domain/report"
	"github.com/mhc-billing/payroll-backend-go/internal/handler/http/response"
)

type ReportHandler interface {
	GetPayrollTotals(w http.ResponseWriter, r *http.Request)
	GetPayrollDetail(w http.ResponseWriter, r *http.Request)
	GetWorkerSlips(w http.ResponseWriter, r *http.Request)
}

type reportHandlerImpl struct {
	reportService report.ReportService
}

func NewReportHandler(reportService report.ReportService) ReportHandler {
	return &reportHandlerImpl{
		reportService: reportService,
	}
}

func (h *reportHandlerImpl) GetPayrollTotals(w http.ResponseWriter, r *http.Request) {
	payrollID := chi.URLParam(r, "id")

	result, err := h.reportService.GetPayrollTotals(r.Context(), payrollID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *reportHandlerImpl) GetPayrollDetail(w http.ResponseWriter, r *http.Request) {
	payrollID := chi.URLParam(r, "id")

	result, err := h.reportService.GetPayrollDetail(r.Context(), payrollID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *reportHandlerImpl) GetWorkerSlips(w http.ResponseWriter, r *http.Request) {
	payrollID := chi.URLParam(r, "id")

	result, err := h.reportService.GetWorkerSlips(r.Context(), payrollID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

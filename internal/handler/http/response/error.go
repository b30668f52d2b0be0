package response

import (
	"errors"
	"net/http"

	"github.com/mhc-billing/payroll-backend-go/internal/domain/assignment"
	"github.com/mhc-billing/payroll-backend-go/internal/domain/auth"
	"github.com/mhc-billing/payroll-backend-go/internal/domain/extra"
	"github.com/mhc-billing/payroll-backend-go/internal/domain/hours"
	"github.com/mhc-billing/payroll-backend-go/internal/domain/master/insurer"
	"github.com/mhc-billing/payroll-backend-go/internal/domain/master/specialrate"
	"github.com/mhc-billing/payroll-backend-go/internal/domain/patient"
	"github.com/mhc-billing/payroll-backend-go/internal/domain/payroll"
	"github.com/mhc-billing/payroll-backend-go/internal/domain/role"
	"github.com/mhc-billing/payroll-backend-go/internal/domain/user"
	"github.com/mhc-billing/payroll-backend-go/internal/domain/worker"
	"github.com/mhc-billing/payroll-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid or expired token")
	case errors.Is(err, user.ErrAdminPrivilegeRequired):
		Forbidden(w, "Admin privilege required")
	case errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")

	// Master data errors
	case errors.Is(err, role.ErrRoleNotFound):
		NotFound(w, "Role not found")
	case errors.Is(err, role.ErrRoleCodeExists):
		Conflict(w, "Role code already exists")
	case errors.Is(err, role.ErrRoleInUse):
		Conflict(w, "Role is referenced by rates or assignments")
	case errors.Is(err, insurer.ErrInsurerNotFound):
		NotFound(w, "Insurer not found")
	case errors.Is(err, insurer.ErrInsurerNameExists):
		Conflict(w, "Insurer name already exists")
	case errors.Is(err, specialrate.ErrSpecialRateNotFound):
		NotFound(w, "Special rate not found")
	case errors.Is(err, specialrate.ErrSpecialRateCodeExists):
		Conflict(w, "Special rate code already exists")

	// Worker domain errors
	case errors.Is(err, worker.ErrWorkerNotFound):
		NotFound(w, "Worker not found")
	case errors.Is(err, worker.ErrSupervisorNotFound):
		NotFound(w, "Supervisor not found")
	case errors.Is(err, worker.ErrRoleRateNotFound):
		NotFound(w, "Role rate not found")

	// Patient domain errors
	case errors.Is(err, patient.ErrPatientNotFound):
		NotFound(w, "Patient not found")

	// Assignment domain errors
	case errors.Is(err, assignment.ErrAssignmentNotFound):
		NotFound(w, "Assignment not found")
	case errors.Is(err, assignment.ErrAssignmentHasHours):
		Conflict(w, "Assignment has recorded hours")

	// Payroll domain errors
	case errors.Is(err, payroll.ErrPayrollNotFound):
		NotFound(w, "Payroll not found")
	case errors.Is(err, payroll.ErrPayrollOverlap):
		Conflict(w, "Payroll period overlaps an existing payroll")

	case errors.Is(err, payroll.ErrPayrollHasHours):
		Conflict(w, "Payroll dates cannot change once hours are recorded")
	case errors.Is(err, payroll.ErrPayrollInvalidRange):
		BadRequest(w, "End date must not be before start date", nil)
	case errors.Is(err, payroll.ErrPayrollLocked):
		Locked(w, "Payroll is finalized")
	case errors.Is(err, payroll.ErrSegmentNotFound):
		NotFound(w, "Payroll segment not found")
	case errors.Is(err, payroll.ErrPatientPayrollNotFound):
		NotFound(w, "Patient is not part of this payroll")

	// Hours domain errors
	case errors.Is(err, hours.ErrEntryNotFound):
		NotFound(w, "Hours entry not found")
	case errors.Is(err, hours.ErrHoursLimitExceeded):
		BadRequest(w, "Patient hours limit for the segment exceeded", nil)

	// Extra payment errors
	case errors.Is(err, extra.ErrPaymentNotFound):
		NotFound(w, "Extra payment not found")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}

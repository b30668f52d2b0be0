package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
	"github.com/mhc-billing/payroll-backend-go/internal/handler/http/middleware"
	"github.com/mhc-billing/payroll-backend-go/internal/pkg/jwt"
)

func NewRouter(
	JWTService jwt.Service,
	authHandler AuthHandler,
	roleHandler RoleHandler,
	workerHandler WorkerHandler,
	patientHandler PatientHandler,
	masterHandler MasterHandler,
	assignmentHandler AssignmentHandler,
	payrollHandler PayrollHandler,
	hoursHandler HoursHandler,
	extraHandler ExtraPaymentHandler,
	reportHandler ReportHandler,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "mhc-payroll"),
		slog.String("version", "v1.0.0"),
		slog.String("env", "development"),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000"},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {

		r.Route("/auth", func(r chi.Router) {
			r.Post("/login", authHandler.Login)
		})

		// Requires an authenticated admin
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(JWTService.JWTAuth()))
			r.Use(middleware.AuthRequired(JWTService.JWTAuth()))
			r.Use(middleware.AdminOnly)

			r.Route("/roles", func(r chi.Router) {
				r.Post("/", roleHandler.CreateRole)
				r.Get("/", roleHandler.ListRoles)
				r.Get("/{id}", roleHandler.GetRole)
				r.Put("/{id}", roleHandler.UpdateRole)
				r.Delete("/{id}", roleHandler.DeleteRole)
			})

			r.Route("/workers", func(r chi.Router) {
				r.Post("/", workerHandler.CreateWorker)
				r.Get("/", workerHandler.ListWorkers)

				r.Route("/{id}", func(r chi.Router) {
					r.Get("/", workerHandler.GetWorker)
					r.Put("/", workerHandler.UpdateWorker)
					r.Delete("/", workerHandler.DeleteWorker)
					r.Get("/assignments", assignmentHandler.ListByWorker)
					r.Get("/roles/{roleID}/rate", workerHandler.GetGeneralRate)
				})
			})

			r.Route("/patients", func(r chi.Router) {
				r.Post("/", patientHandler.CreatePatient)
				r.Get("/", patientHandler.ListPatients)

				r.Route("/{id}", func(r chi.Router) {
					r.Get("/", patientHandler.GetPatient)
					r.Put("/", patientHandler.UpdatePatient)
					r.Delete("/", patientHandler.DeletePatient)
					r.Get("/assignments", assignmentHandler.ListByPatient)
				})
			})

			r.Route("/insurers", func(r chi.Router) {
				r.Post("/", masterHandler.CreateInsurer)
				r.Get("/", masterHandler.ListInsurers)
				r.Put("/{id}", masterHandler.UpdateInsurer)
				r.Delete("/{id}", masterHandler.DeleteInsurer)
			})

			r.Route("/special-rates", func(r chi.Router) {
				r.Post("/", masterHandler.CreateSpecialRate)
				r.Get("/", masterHandler.ListSpecialRates)
				r.Put("/{id}", masterHandler.UpdateSpecialRate)
			})

			r.Route("/assignments", func(r chi.Router) {
				r.Post("/", assignmentHandler.CreateAssignment)
				r.Get("/{id}", assignmentHandler.GetAssignment)
				r.Put("/{id}", assignmentHandler.UpdateAssignment)
				r.Delete("/{id}", assignmentHandler.DeleteAssignment)
			})

			r.Route("/payrolls", func(r chi.Router) {
				r.Post("/", payrollHandler.CreatePayroll)
				r.Get("/", payrollHandler.ListPayrolls)

				r.Route("/{id}", func(r chi.Router) {
					r.Get("/", payrollHandler.GetPayroll)
					r.Put("/", payrollHandler.UpdatePayroll)
					r.Delete("/", payrollHandler.DeletePayroll)
					r.Post("/finalize", payrollHandler.FinalizePayroll)
					r.Post("/reopen", payrollHandler.ReopenPayroll)
					r.Get("/segments", payrollHandler.ListSegments)

					r.Route("/patients", func(r chi.Router) {
						r.Get("/", payrollHandler.ListPatients)
						r.Get("/status", payrollHandler.GetPatientStatusCounts)
						r.Post("/seed", payrollHandler.SeedPatients)
						r.Put("/processed", payrollHandler.SetPatientProcessed)
					})

					r.Route("/hours", func(r chi.Router) {
						r.Get("/", hoursHandler.ListLines)
						r.Get("/totals/workers", hoursHandler.TotalsByWorker)
						r.Get("/totals/patients", hoursHandler.TotalsByPatient)
						r.Get("/totals/roles", hoursHandler.TotalsByRole)
					})

					r.Route("/extra-payments", func(r chi.Router) {
						r.Get("/", extraHandler.ListForPayroll)
						r.Get("/totals/workers", extraHandler.TotalsByWorker)
						r.Get("/totals/codes", extraHandler.TotalsByCode)
					})

					r.Route("/report", func(r chi.Router) {
						r.Get("/totals", reportHandler.GetPayrollTotals)
						r.Get("/detail", reportHandler.GetPayrollDetail)
						r.Get("/slips", reportHandler.GetWorkerSlips)
					})
				})
			})

			r.Route("/hours", func(r chi.Router) {
				r.Put("/", hoursHandler.SetHours)
				r.Put("/bulk", hoursHandler.BulkSetHours)

				r.Route("/segments/{segmentID}/assignments/{assignmentID}", func(r chi.Router) {
					r.Get("/", hoursHandler.GetEntry)
					r.Delete("/", hoursHandler.DeleteEntry)
				})
			})

			r.Route("/extra-payments", func(r chi.Router) {
				r.Post("/", extraHandler.CreatePayment)
				r.Get("/{id}", extraHandler.GetPayment)
				r.Put("/{id}", extraHandler.UpdatePayment)
				r.Delete("/{id}", extraHandler.DeletePayment)
			})
		})
	})
	return r
}

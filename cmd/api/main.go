package main

import (
	"context"
	"fmt"
	"log"
	"net/http"

	"github.com/mhc-billing/payroll-backend-go/internal/config"
	"github.com/mhc-billing/payroll-backend-go/internal/fixtures"
	appHTTP "github.com/mhc-billing/payroll-backend-go/internal/handler/http"
	"github.com/mhc-billing/payroll-backend-go/internal/pkg/database"
	"github.com/mhc-billing/payroll-backend-go/internal/pkg/jwt"
	"github.com/mhc-billing/payroll-backend-go/internal/repository/postgresql"
	assignmentService "github.com/mhc-billing/payroll-backend-go/internal/service/assignment"
	authService "github.com/mhc-billing/payroll-backend-go/internal/service/auth"
	extraService "github.com/mhc-billing/payroll-backend-go/internal/service/extra"
	hoursService "github.com/mhc-billing/payroll-backend-go/internal/service/hours"
	masterService "github.com/mhc-billing/payroll-backend-go/internal/service/master"
	patientService "github.com/mhc-billing/payroll-backend-go/internal/service/patient"
	payrollService "github.com/mhc-billing/payroll-backend-go/internal/service/payroll"
	rateService "github.com/mhc-billing/payroll-backend-go/internal/service/rate"
	reportService "github.com/mhc-billing/payroll-backend-go/internal/service/report"
	roleService "github.com/mhc-billing/payroll-backend-go/internal/service/role"
	workerService "github.com/mhc-billing/payroll-backend-go/internal/service/worker"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	dsn := cfg.DatabaseURL()
	db, err := database.NewPostgreSQLDB(dsn)
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}

	userRepo := postgresql.NewUserRepository(db)
	roleRepo := postgresql.NewRoleRepository(db)
	workerRepo := postgresql.NewWorkerRepository(db)
	patientRepo := postgresql.NewPatientRepository(db)
	insurerRepo := postgresql.NewInsurerRepository(db)
	specialRateRepo := postgresql.NewSpecialRateRepository(db)
	assignmentRepo := postgresql.NewAssignmentRepository(db)
	payrollRepo := postgresql.NewPayrollRepository(db)
	hoursRepo := postgresql.NewHoursRepository(db)
	extraRepo := postgresql.NewExtraPaymentRepository(db)

	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)
	rateResolver := rateService.NewResolver(workerRepo)

	authSvc := authService.NewAuthService(userRepo, JWTService)
	roleSvc := roleService.NewRoleService(roleRepo)
	workerSvc := workerService.NewWorkerService(workerRepo, rateResolver)
	patientSvc := patientService.NewPatientService(patientRepo, insurerRepo)
	masterSvc := masterService.NewMasterService(insurerRepo, specialRateRepo)
	assignmentSvc := assignmentService.NewAssignmentService(assignmentRepo, workerRepo, patientRepo, roleRepo)
	payrollSvc := payrollService.NewPayrollService(payrollRepo, patientRepo, cfg.Payroll)
	hoursSvc := hoursService.NewHoursService(hoursRepo, payrollRepo, assignmentRepo, rateResolver, cfg.Payroll)
	extraSvc := extraService.NewPaymentService(extraRepo, payrollRepo, workerRepo, specialRateRepo)
	reportSvc := reportService.NewReportService(payrollSvc, hoursSvc, extraSvc)

	if err := specialRateRepo.Seed(context.Background(), fixtures.GetDefaultSpecialRates()); err != nil {
		log.Fatal("Failed to seed special rate catalog:", err)
	}

	authHandler := appHTTP.NewAuthHandler(authSvc)
	roleHandler := appHTTP.NewRoleHandler(roleSvc)
	workerHandler := appHTTP.NewWorkerHandler(workerSvc)
	patientHandler := appHTTP.NewPatientHandler(patientSvc)
	masterHandler := appHTTP.NewMasterHandler(masterSvc)
	assignmentHandler := appHTTP.NewAssignmentHandler(assignmentSvc)
	payrollHandler := appHTTP.NewPayrollHandler(payrollSvc)
	hoursHandler := appHTTP.NewHoursHandler(hoursSvc)
	extraHandler := appHTTP.NewExtraPaymentHandler(extraSvc)
	reportHandler := appHTTP.NewReportHandler(reportSvc)

	router := appHTTP.NewRouter(
		JWTService,
		authHandler,
		roleHandler,
		workerHandler,
		patientHandler,
		masterHandler,
		assignmentHandler,
		payrollHandler,
		hoursHandler,
		extraHandler,
		reportHandler,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}

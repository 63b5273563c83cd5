package main

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/cors"

	getproposal "grant-portal/http-server/proposals/get"
	savebudget "grant-portal/http-server/proposals/budget"
	saveproposal "grant-portal/http-server/proposals/save"
	"grant-portal/http-server/reports/catalog"
	"grant-portal/http-server/reports/custom"
	"grant-portal/http-server/reports/excel"
	deletetemplate "grant-portal/http-server/reports/templates/delete"
	gettemplate "grant-portal/http-server/reports/templates/get"
	savetemplate "grant-portal/http-server/reports/templates/save"
	"grant-portal/internal/config"
	"grant-portal/internal/middleware/auth"
)

// Storage is everything the handlers need from the database.
type Storage interface {
	gettemplate.TemplateProvider
	savetemplate.TemplateCreateProvider
	deletetemplate.TemplateDeleter
	getproposal.ProposalProvider
	saveproposal.ProposalCreateProvider
}

func routes(cfg config.Config, log *slog.Logger, storage Storage, reports custom.ReportGenerator, excelGen excel.ExcelGenerator) *chi.Mux {
	router := chi.NewRouter()

	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
	})

	router.Use(corsHandler.Handler)

	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)

	// отчёты
	router.Get("/api/reports/catalog", catalog.GetCatalog(log))
	router.Post("/api/reports/custom", custom.GenerateCustomReport(log, reports))
	router.Post("/api/reports/custom/excel", excel.GenerateReportExcel(log, excelGen))

	router.Get("/api/reports/templates", gettemplate.GetReportTemplates(log, storage))
	router.Get("/api/reports/templates/{id}", gettemplate.GetReportTemplateByID(log, storage))
	router.Post("/api/reports/templates", savetemplate.SaveReportTemplate(log, storage))

	// заявки
	router.Post("/api/proposals/budget/summary", savebudget.SummarizeBudget(log))
	router.Post("/api/proposals", saveproposal.SubmitProposal(log, storage))
	router.Get("/api/proposals/{id}", getproposal.GetProposal(log, storage))

	adminRouter := chi.NewRouter()
	adminRouter.Use(auth.BasicAuth(cfg.AdminLogin, cfg.AdminPass))

	adminRouter.Delete("/reports/templates/{id}", deletetemplate.DeleteReportTemplate(log, storage))

	router.Mount("/api/admin", adminRouter)

	router.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	return router
}

package get

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	"grant-portal/internal/storage"
)

type TemplateProvider interface {
	GetReportTemplates(ctx context.Context) ([]*storage.ReportTemplate, error)
	GetReportTemplateByID(ctx context.Context, id string) (*storage.ReportTemplate, error)
}

type ResponseAll struct {
	Templates []*storage.ReportTemplate `json:"templates"`
}

func GetReportTemplates(log *slog.Logger, provider TemplateProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.reports.templates.GetReportTemplates"

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		templates, err := provider.GetReportTemplates(ctx)
		if err != nil {
			log.With(slog.String("op", op), slog.String("error", err.Error())).Error("Failed to fetch templates")
			http.Error(w, "Internal server error", http.StatusInternalServerError)
			return
		}

		if templates == nil {
			templates = []*storage.ReportTemplate{}
		}

		render.JSON(w, r, ResponseAll{Templates: templates})
	}
}

func GetReportTemplateByID(log *slog.Logger, provider TemplateProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.reports.templates.GetReportTemplateByID"

		id := chi.URLParam(r, "id")
		if id == "" {
			http.Error(w, "Missing template id", http.StatusBadRequest)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		tpl, err := provider.GetReportTemplateByID(ctx, id)
		if err != nil {
			if errors.Is(err, storage.ErrTemplateNotFound) {
				log.With(slog.String("op", op), slog.String("id", id)).Warn("Template not found")
				http.Error(w, "Template not found", http.StatusNotFound)
				return
			}

			log.With(
				slog.String("op", op),
				slog.String("id", id),
				slog.String("error", err.Error()),
			).Error("Failed to fetch template")
			http.Error(w, "Internal server error", http.StatusInternalServerError)
			return
		}

		render.JSON(w, r, tpl)
	}
}

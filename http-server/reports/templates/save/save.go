package save

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"grant-portal/internal/constants"
	"grant-portal/internal/storage"
)

type TemplateCreateProvider interface {
	CreateReportTemplate(ctx context.Context, tpl storage.ReportTemplate) error
}

type Request struct {
	storage.ReportSpecification
	Name string `json:"name,omitempty"`
}

// SaveReportTemplate stores the specification in the body. The report itself
// is not executed.
func SaveReportTemplate(log *slog.Logger, temp TemplateCreateProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.reports.templates.SaveReportTemplate"

		var req Request
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "ошибка парсинга JSON", http.StatusBadRequest)
			return
		}

		if !constants.KnownSource(req.DataSource) {
			http.Error(w, fmt.Sprintf("неизвестный источник данных %q", req.DataSource), http.StatusBadRequest)
			return
		}

		name := strings.TrimSpace(req.Name)
		if name == "" {
			name = fmt.Sprintf("%s report", req.DataSource)
		}

		if req.Fields == nil {
			req.Fields = []string{}
		}
		if req.Filters == nil {
			req.Filters = []storage.ReportFilter{}
		}

		tpl := storage.ReportTemplate{
			ID:         uuid.NewString(),
			Name:       name,
			DataSource: req.DataSource,
			Spec:       req.ReportSpecification,
			CreatedAt:  time.Now().UTC(),
		}

		if err := temp.CreateReportTemplate(r.Context(), tpl); err != nil {
			log.Error(fmt.Sprintf("%s: %v", op, err))
			http.Error(w, "ошибка создания шаблона", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(map[string]string{"status": "created", "id": tpl.ID})
	}
}

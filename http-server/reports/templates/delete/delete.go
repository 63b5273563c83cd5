package delete

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	"grant-portal/internal/storage"
)

type TemplateDeleter interface {
	DeleteReportTemplate(ctx context.Context, id string) error
}

func DeleteReportTemplate(log *slog.Logger, temp TemplateDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.reports.templates.DeleteReportTemplate"

		id := chi.URLParam(r, "id")
		if id == "" {
			http.Error(w, "id не указан", http.StatusBadRequest)
			return
		}

		if err := temp.DeleteReportTemplate(r.Context(), id); err != nil {
			if errors.Is(err, storage.ErrTemplateNotFound) {
				http.Error(w, "шаблон не найден", http.StatusNotFound)
				return
			}
			log.Error(fmt.Sprintf("%s: %v", op, err))
			http.Error(w, "ошибка удаления шаблона", http.StatusInternalServerError)
			return
		}

		render.JSON(w, r, map[string]string{"status": "deleted"})
	}
}

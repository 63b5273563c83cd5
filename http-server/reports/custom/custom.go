package custom

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"

	"grant-portal/internal/storage"
)

type ReportGenerator interface {
	Generate(ctx context.Context, spec storage.ReportSpecification) (*storage.ReportResult, error)
}

// GenerateCustomReport executes the report specification in the request body
// and answers {data, total}.
func GenerateCustomReport(log *slog.Logger, gen ReportGenerator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.reports.GenerateCustomReport"

		log := log.With(
			slog.String("op", op),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		var spec storage.ReportSpecification
		if err := json.NewDecoder(r.Body).Decode(&spec); err != nil {
			log.Warn("invalid request body", slog.String("error", err.Error()))
			http.Error(w, "invalid report specification", http.StatusBadRequest)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
		defer cancel()

		res, err := gen.Generate(ctx, spec)
		if err != nil {
			if IsSpecError(err) {
				log.Warn("rejected report specification", slog.String("error", err.Error()))
				http.Error(w, err.Error(), http.StatusBadRequest)
				return
			}

			log.Error("failed to generate report",
				slog.String("data_source", string(spec.DataSource)),
				slog.String("error", err.Error()),
			)
			http.Error(w, "Internal server error", http.StatusInternalServerError)
			return
		}

		render.JSON(w, r, res)
	}
}

// IsSpecError reports whether err was caused by the request rather than the
// database: an unknown source, a field outside the catalog or a bad filter.
func IsSpecError(err error) bool {
	return errors.Is(err, storage.ErrUnknownDataSource) ||
		errors.Is(err, storage.ErrUnknownField) ||
		errors.Is(err, storage.ErrInvalidFilter)
}

package catalog

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/render"

	"grant-portal/internal/constants"
	"grant-portal/internal/storage"
)

type Response struct {
	DataSource storage.DataSource    `json:"dataSource"`
	Fields     []storage.ReportField `json:"fields"`
}

// GetCatalog answers the selectable fields of ?source=. Without a source it
// lists every catalog.
func GetCatalog(log *slog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.reports.GetCatalog"

		source := storage.DataSource(r.URL.Query().Get("source"))
		if source == "" {
			all := make([]Response, 0, len(storage.DataSources))
			for _, src := range storage.DataSources {
				all = append(all, Response{DataSource: src, Fields: constants.Catalog(src)})
			}
			render.JSON(w, r, all)
			return
		}

		if !constants.KnownSource(source) {
			log.With(slog.String("op", op), slog.String("source", string(source))).Warn("unknown data source")
			http.Error(w, "unknown data source", http.StatusBadRequest)
			return
		}

		render.JSON(w, r, Response{DataSource: source, Fields: constants.Catalog(source)})
	}
}

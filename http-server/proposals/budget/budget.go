package budget

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"

	"grant-portal/internal/service/budget"
	"grant-portal/internal/storage"
)

type Response struct {
	Budget  storage.BudgetAllocation `json:"budget"`
	Summary storage.BudgetSummary    `json:"summary"`
	Errors  []string                 `json:"errors"`
}

// SummarizeBudget recalculates a draft allocation for the proposal form.
// Gate failures are reported in the body, never as an error status.
func SummarizeBudget(log *slog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.proposals.SummarizeBudget"

		var alloc storage.BudgetAllocation
		if err := json.NewDecoder(r.Body).Decode(&alloc); err != nil {
			log.With(
				slog.String("op", op),
				slog.String("request_id", middleware.GetReqID(r.Context())),
			).Warn("invalid budget", slog.String("error", err.Error()))
			http.Error(w, "invalid budget", http.StatusBadRequest)
			return
		}

		alloc = budget.Derive(alloc)

		errs := budget.Messages(errors.Join(budget.CheckAmounts(alloc), budget.Validate(alloc)))
		if errs == nil {
			errs = []string{}
		}

		render.JSON(w, r, Response{
			Budget:  alloc,
			Summary: budget.Summarize(alloc),
			Errors:  errs,
		})
	}
}

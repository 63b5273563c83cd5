package get

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	"grant-portal/internal/service/budget"
	"grant-portal/internal/storage"
)

type ProposalProvider interface {
	GetProposalByID(ctx context.Context, id string) (*storage.Proposal, error)
}

func GetProposal(log *slog.Logger, provider ProposalProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.proposals.GetProposal"

		id := chi.URLParam(r, "id")

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		p, err := provider.GetProposalByID(ctx, id)
		if err != nil {
			if errors.Is(err, storage.ErrProposalNotFound) {
				http.Error(w, "Proposal not found", http.StatusNotFound)
				return
			}
			log.With(
				slog.String("op", op),
				slog.String("id", id),
				slog.String("error", err.Error()),
			).Error("Failed to fetch proposal")
			http.Error(w, "Internal server error", http.StatusInternalServerError)
			return
		}

		// summary is not stored
		p.Summary = budget.Summarize(p.Budget)

		render.JSON(w, r, p)
	}
}

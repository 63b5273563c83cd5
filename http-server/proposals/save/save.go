package save

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/render"
	"github.com/google/uuid"

	"grant-portal/internal/service/budget"
	"grant-portal/internal/storage"
)

type ProposalCreateProvider interface {
	CreateProposal(ctx context.Context, p storage.Proposal) error
}

type Request struct {
	Title        string                   `json:"title"`
	ResearcherID int64                    `json:"researcherId"`
	Budget       storage.BudgetAllocation `json:"budget"`
}

type ErrorResponse struct {
	Errors []string `json:"errors"`
}

// SubmitProposal recomputes every line total, runs the budget gate and stores
// the proposal as submitted. A failing gate or a negative amount answers 422
// with all messages.
func SubmitProposal(log *slog.Logger, provider ProposalCreateProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.proposals.SubmitProposal"

		var req Request
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "ошибка парсинга JSON", http.StatusBadRequest)
			return
		}

		req.Title = strings.TrimSpace(req.Title)
		if req.Title == "" {
			http.Error(w, "не указано название заявки", http.StatusBadRequest)
			return
		}

		alloc := budget.Derive(req.Budget)

		if err := errors.Join(budget.CheckAmounts(alloc), budget.Validate(alloc)); err != nil {
			render.Status(r, http.StatusUnprocessableEntity)
			render.JSON(w, r, ErrorResponse{Errors: budget.Messages(err)})
			return
		}

		p := storage.Proposal{
			ID:           uuid.NewString(),
			Title:        req.Title,
			ResearcherID: req.ResearcherID,
			Status:       storage.ProposalSubmitted,
			Budget:       alloc,
			Summary:      budget.Summarize(alloc),
			SubmittedAt:  time.Now().UTC(),
		}

		if err := provider.CreateProposal(r.Context(), p); err != nil {
			log.Error(fmt.Sprintf("%s: %v", op, err))
			http.Error(w, "ошибка сохранения заявки", http.StatusInternalServerError)
			return
		}

		render.Status(r, http.StatusCreated)
		render.JSON(w, r, p)
	}
}

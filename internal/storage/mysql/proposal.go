package mysql

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"grant-portal/internal/storage"
)

func (s *Storage) CreateProposal(ctx context.Context, p storage.Proposal) error {
	const op = "storage.mysql.CreateProposal"

	budgetJSON, err := json.Marshal(p.Budget)
	if err != nil {
		return fmt.Errorf("%s: ошибка сериализации бюджета: %w", op, err)
	}

	stmt := `INSERT INTO proposals (id, title, researcher_id, status, budget, total_budget, equipment_percentage, submitted_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`

	_, err = s.db.ExecContext(ctx, stmt,
		p.ID, p.Title, p.ResearcherID, p.Status, string(budgetJSON),
		p.Summary.TotalBudget.String(), p.Summary.EquipmentPercentage.StringFixed(2), p.SubmittedAt)
	if err != nil {
		return fmt.Errorf("%s: ошибка сохранения заявки: %w", op, err)
	}

	return nil
}

// GetProposalByID returns the stored proposal. The summary is not a column of
// its own; callers rederive it from the budget.
func (s *Storage) GetProposalByID(ctx context.Context, id string) (*storage.Proposal, error) {
	const op = "storage.mysql.GetProposalByID"

	stmt := `SELECT id, title, researcher_id, status, budget, submitted_at FROM proposals WHERE id = ?`

	p := &storage.Proposal{}
	var budgetJSON string

	err := s.db.QueryRowContext(ctx, stmt, id).Scan(&p.ID, &p.Title, &p.ResearcherID, &p.Status, &budgetJSON, &p.SubmittedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%s: id='%s': %w", op, id, storage.ErrProposalNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if err := json.Unmarshal([]byte(budgetJSON), &p.Budget); err != nil {
		return nil, fmt.Errorf("%s: ошибка парсинга JSON бюджета: %w", op, err)
	}

	return p, nil
}

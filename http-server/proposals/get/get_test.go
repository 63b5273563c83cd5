package get

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"grant-portal/internal/storage"
)

type MockProposalProvider struct {
	mock.Mock
}

func (m *MockProposalProvider) GetProposalByID(ctx context.Context, id string) (*storage.Proposal, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*storage.Proposal), args.Error(1)
}

func TestGetProposal(t *testing.T) {
	mockProvider := new(MockProposalProvider)
	mockProvider.On("GetProposalByID", mock.Anything, "p1").Return(&storage.Proposal{
		ID:     "p1",
		Title:  "Survey",
		Status: storage.ProposalSubmitted,
		Budget: storage.BudgetAllocation{
			Equipment: []storage.BudgetLineItem{{Item: "Scope", Quantity: "1", UnitPrice: "900", Total: decimal.NewFromInt(900)}},
			Travel:    decimal.NewFromInt(100),
		},
	}, nil)
	mockProvider.On("GetProposalByID", mock.Anything, "nope").
		Return(nil, fmt.Errorf("storage.mysql.GetProposalByID: %w", storage.ErrProposalNotFound))
	mockProvider.On("GetProposalByID", mock.Anything, "err").Return(nil, errors.New("timeout"))

	r := chi.NewRouter()
	r.Get("/api/proposals/{id}", GetProposal(slog.Default(), mockProvider))

	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/proposals/p1", nil))
	require.Equal(t, http.StatusOK, rr.Code)

	var resp storage.Proposal
	require.NoError(t, render.DecodeJSON(strings.NewReader(rr.Body.String()), &resp))
	assert.Equal(t, "1000", resp.Summary.TotalBudget.String())
	assert.Equal(t, "90", resp.Summary.EquipmentPercentage.String())

	rr = httptest.NewRecorder()
	r.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/proposals/nope", nil))
	assert.Equal(t, http.StatusNotFound, rr.Code)

	rr = httptest.NewRecorder()
	r.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/proposals/err", nil))
	assert.Equal(t, http.StatusInternalServerError, rr.Code)
}

package save

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/render"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"grant-portal/internal/service/budget"
	"grant-portal/internal/storage"
)

type MockProposalCreateProvider struct {
	mock.Mock
}

func (m *MockProposalCreateProvider) CreateProposal(ctx context.Context, p storage.Proposal) error {
	return m.Called(ctx, p).Error(0)
}

const passingBody = `{
	"title": "Soil microbiome survey",
	"researcherId": 7,
	"budget": {
		"equipment": [{"item": "Microscope", "quantity": "2", "unitPrice": "10000", "total": 5}],
		"consumables": [{"item": "Reagents", "quantity": "10", "unitPrice": "500"}],
		"travel": 3000,
		"personnel": 2000
	}
}`

func submit(provider ProposalCreateProvider, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/proposals", strings.NewReader(body))
	rr := httptest.NewRecorder()
	SubmitProposal(slog.Default(), provider).ServeHTTP(rr, req)
	return rr
}

func TestSubmitProposal_Success(t *testing.T) {
	mockProvider := new(MockProposalCreateProvider)
	mockProvider.On("CreateProposal", mock.Anything, mock.MatchedBy(func(p storage.Proposal) bool {
		return p.Title == "Soil microbiome survey" &&
			p.ResearcherID == 7 &&
			p.Status == storage.ProposalSubmitted &&
			p.ID != "" &&
			p.Budget.Equipment[0].Total.String() == "20000" &&
			p.Summary.TotalBudget.String() == "30000"
	})).Return(nil)

	rr := submit(mockProvider, passingBody)
	require.Equal(t, http.StatusCreated, rr.Code)

	var resp storage.Proposal
	require.NoError(t, render.DecodeJSON(strings.NewReader(rr.Body.String()), &resp))
	assert.Equal(t, storage.ProposalSubmitted, resp.Status)
	assert.False(t, resp.SubmittedAt.IsZero())

	mockProvider.AssertExpectations(t)
}

func TestSubmitProposal_GateFailure(t *testing.T) {
	mockProvider := new(MockProposalCreateProvider)

	rr := submit(mockProvider, `{
		"title": "Field trip",
		"budget": {"equipment": [], "consumables": [], "travel": 5000, "personnel": 0}
	}`)

	assert.Equal(t, http.StatusUnprocessableEntity, rr.Code)

	var resp ErrorResponse
	require.NoError(t, render.DecodeJSON(strings.NewReader(rr.Body.String()), &resp))
	assert.Equal(t, []string{
		budget.ErrMissingEquipmentItem.Error(),
		budget.ErrMissingConsumableItem.Error(),
		budget.ErrBudgetAllocationViolation.Error(),
	}, resp.Errors)

	mockProvider.AssertNotCalled(t, "CreateProposal")
}

func TestSubmitProposal_ClientTotalWithoutQuantityIsIgnored(t *testing.T) {
	mockProvider := new(MockProposalCreateProvider)

	rr := submit(mockProvider, `{
		"title": "Inflated equipment",
		"budget": {
			"equipment": [
				{"item": "Pipette", "quantity": "1", "unitPrice": "10"},
				{"item": "ghost", "total": "900000"}
			],
			"consumables": [{"item": "Reagents", "quantity": "1", "unitPrice": "500000"}],
			"travel": 0,
			"personnel": 0
		}
	}`)

	assert.Equal(t, http.StatusUnprocessableEntity, rr.Code)

	var resp ErrorResponse
	require.NoError(t, render.DecodeJSON(strings.NewReader(rr.Body.String()), &resp))
	assert.Equal(t, []string{budget.ErrBudgetAllocationViolation.Error()}, resp.Errors)

	mockProvider.AssertNotCalled(t, "CreateProposal")
}

func TestSubmitProposal_NegativeAmounts(t *testing.T) {
	mockProvider := new(MockProposalCreateProvider)

	rr := submit(mockProvider, `{
		"title": "Negative personnel",
		"budget": {
			"equipment": [{"item": "Scope", "quantity": "1", "unitPrice": "1000"}],
			"consumables": [{"item": "Gloves", "quantity": "1", "unitPrice": "100"}],
			"travel": 0,
			"personnel": -5000
		}
	}`)

	assert.Equal(t, http.StatusUnprocessableEntity, rr.Code)
	assert.Contains(t, rr.Body.String(), budget.ErrNegativeAmount.Error())
	mockProvider.AssertNotCalled(t, "CreateProposal")
}

func TestSubmitProposal_BadRequest(t *testing.T) {
	mockProvider := new(MockProposalCreateProvider)

	rr := submit(mockProvider, `{`)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Contains(t, rr.Body.String(), "ошибка парсинга JSON")

	rr = submit(mockProvider, `{"title": "  "}`)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Contains(t, rr.Body.String(), "не указано название заявки")

	mockProvider.AssertNotCalled(t, "CreateProposal")
}

func TestSubmitProposal_StorageError(t *testing.T) {
	mockProvider := new(MockProposalCreateProvider)
	mockProvider.On("CreateProposal", mock.Anything, mock.Anything).Return(errors.New("db down"))

	rr := submit(mockProvider, passingBody)

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
}

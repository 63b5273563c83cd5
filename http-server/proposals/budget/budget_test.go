package budget

import (
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/render"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"grant-portal/internal/service/budget"
)

func post(t *testing.T, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/proposals/budget/summary", strings.NewReader(body))
	rr := httptest.NewRecorder()
	SummarizeBudget(slog.Default()).ServeHTTP(rr, req)
	return rr
}

func TestSummarizeBudget_Passing(t *testing.T) {
	rr := post(t, `{
		"equipment": [{"item": "Microscope", "quantity": "2", "unitPrice": "10000", "total": 1}],
		"consumables": [{"item": "Reagents", "quantity": 10, "unitPrice": 500}],
		"travel": 3000,
		"personnel": 2000
	}`)
	require.Equal(t, http.StatusOK, rr.Code)

	var resp Response
	require.NoError(t, render.DecodeJSON(strings.NewReader(rr.Body.String()), &resp))

	assert.Empty(t, resp.Errors)
	assert.Equal(t, "20000", resp.Budget.Equipment[0].Total.String(), "client totals are recomputed")
	assert.Equal(t, "30000", resp.Summary.TotalBudget.String())
	assert.Equal(t, "66.67", resp.Summary.EquipmentPercentage.StringFixed(2))
}

func TestSummarizeBudget_ReportsEveryFailure(t *testing.T) {
	rr := post(t, `{
		"equipment": [{"item": "Laptop", "quantity": "1", "unitPrice": "1000"}],
		"consumables": [{"item": "", "quantity": "", "unitPrice": ""}],
		"travel": 5000,
		"personnel": 0
	}`)
	require.Equal(t, http.StatusOK, rr.Code)

	var resp Response
	require.NoError(t, render.DecodeJSON(strings.NewReader(rr.Body.String()), &resp))

	assert.Equal(t, []string{
		budget.ErrMissingConsumableItem.Error(),
		budget.ErrBudgetAllocationViolation.Error(),
	}, resp.Errors)
}

func TestSummarizeBudget_InvalidJSON(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, post(t, `[`).Code)
}

func TestSummarizeBudget_NegativeAmounts(t *testing.T) {
	rr := post(t, `{
		"equipment": [{"item": "Microscope", "quantity": "2", "unitPrice": "10000"}],
		"consumables": [{"item": "Reagents", "quantity": 1, "unitPrice": 500}],
		"travel": -3000,
		"personnel": 0
	}`)
	require.Equal(t, http.StatusOK, rr.Code)

	var resp Response
	require.NoError(t, render.DecodeJSON(strings.NewReader(rr.Body.String()), &resp))

	assert.Equal(t, []string{budget.ErrNegativeAmount.Error()}, resp.Errors)
}

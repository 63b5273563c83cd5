package storage

import (
	"bytes"
	"encoding/json"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// FormValue is a raw form input. It accepts both JSON strings and numbers so
// clients may send either "12" or 12.
type FormValue string

func (v *FormValue) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*v = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*v = FormValue(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*v = FormValue(n.String())
	return nil
}

func (v FormValue) Empty() bool {
	return strings.TrimSpace(string(v)) == ""
}

type BudgetLineItem struct {
	Item      string          `json:"item"`
	Quantity  FormValue       `json:"quantity"`
	UnitPrice FormValue       `json:"unitPrice"`
	Total     decimal.Decimal `json:"total"`
}

type BudgetAllocation struct {
	Equipment   []BudgetLineItem `json:"equipment"`
	Consumables []BudgetLineItem `json:"consumables"`
	Travel      decimal.Decimal  `json:"travel"`
	Personnel   decimal.Decimal  `json:"personnel"`
}

type BudgetSummary struct {
	TotalEquipment          decimal.Decimal `json:"totalEquipment"`
	TotalConsumables        decimal.Decimal `json:"totalConsumables"`
	TotalTravel             decimal.Decimal `json:"totalTravel"`
	TotalPersonnel          decimal.Decimal `json:"totalPersonnel"`
	TotalBudget             decimal.Decimal `json:"totalBudget"`
	EquipmentPercentage     decimal.Decimal `json:"equipmentPercentage"`
	OtherExpensesPercentage decimal.Decimal `json:"otherExpensesPercentage"`
}

const ProposalSubmitted = "SUBMITTED"

type Proposal struct {
	ID           string           `json:"id"`
	Title        string           `json:"title"`
	ResearcherID int64            `json:"researcherId"`
	Status       string           `json:"status"`
	Budget       BudgetAllocation `json:"budget"`
	Summary      BudgetSummary    `json:"summary"`
	SubmittedAt  time.Time        `json:"submittedAt"`
}

package budget

import (
	"errors"
	"strings"

	"github.com/shopspring/decimal"

	"grant-portal/internal/storage"
)

var (
	ErrMissingEquipmentItem      = errors.New("add at least one equipment item with name, quantity and unit price")
	ErrMissingConsumableItem     = errors.New("add at least one consumables item with name, quantity and unit price")
	ErrBudgetAllocationViolation = errors.New("equipment must be at least 60% of the total budget and other expenses at most 40%")
	ErrNegativeAmount            = errors.New("quantities, prices, travel and personnel must not be negative")
)

var (
	MinEquipmentPercentage = decimal.NewFromInt(60)
	MaxOtherPercentage     = decimal.NewFromInt(40)

	hundred = decimal.NewFromInt(100)
)

// ParseAmount reads a form number. Empty or malformed input counts as zero.
func ParseAmount(v storage.FormValue) decimal.Decimal {
	d, err := decimal.NewFromString(strings.TrimSpace(string(v)))
	if err != nil {
		return decimal.Zero
	}
	return d
}

func LineTotal(quantity, unitPrice storage.FormValue) decimal.Decimal {
	return ParseAmount(quantity).Mul(ParseAmount(unitPrice))
}

// Complete reports whether the row has item, quantity and unit price filled in.
func Complete(item storage.BudgetLineItem) bool {
	return strings.TrimSpace(item.Item) != "" && !item.Quantity.Empty() && !item.UnitPrice.Empty()
}

// EditLineItem applies a single field edit. Once quantity and unit price are
// both present the total is rederived from them, overwriting any prior total.
func EditLineItem(item storage.BudgetLineItem, key, value string) storage.BudgetLineItem {
	switch key {
	case "item":
		item.Item = value
		return item
	case "quantity":
		item.Quantity = storage.FormValue(value)
	case "unitPrice":
		item.UnitPrice = storage.FormValue(value)
	default:
		return item
	}

	if !item.Quantity.Empty() && !item.UnitPrice.Empty() {
		item.Total = LineTotal(item.Quantity, item.UnitPrice)
	}

	return item
}

// Derive recomputes every line total. Totals sent by a client are never
// trusted: a row without both quantity and unit price totals zero.
func Derive(alloc storage.BudgetAllocation) storage.BudgetAllocation {
	alloc.Equipment = deriveItems(alloc.Equipment)
	alloc.Consumables = deriveItems(alloc.Consumables)
	return alloc
}

func deriveItems(items []storage.BudgetLineItem) []storage.BudgetLineItem {
	out := make([]storage.BudgetLineItem, len(items))
	for i, it := range items {
		it.Total = decimal.Zero
		if !it.Quantity.Empty() && !it.UnitPrice.Empty() {
			it.Total = LineTotal(it.Quantity, it.UnitPrice)
		}
		out[i] = it
	}
	return out
}

func sum(items []storage.BudgetLineItem) decimal.Decimal {
	total := decimal.Zero
	for _, it := range items {
		total = total.Add(it.Total)
	}
	return total
}

func Summarize(alloc storage.BudgetAllocation) storage.BudgetSummary {
	s := storage.BudgetSummary{
		TotalEquipment:   sum(alloc.Equipment),
		TotalConsumables: sum(alloc.Consumables),
		TotalTravel:      alloc.Travel,
		TotalPersonnel:   alloc.Personnel,
	}

	s.TotalBudget = s.TotalEquipment.Add(s.TotalConsumables).Add(s.TotalTravel).Add(s.TotalPersonnel)

	s.EquipmentPercentage = decimal.Zero
	if s.TotalBudget.GreaterThan(decimal.Zero) {
		s.EquipmentPercentage = s.TotalEquipment.Div(s.TotalBudget).Mul(hundred)
	}
	s.OtherExpensesPercentage = hundred.Sub(s.EquipmentPercentage)

	return s
}

// Validate runs the step gate and returns every failure joined together, or nil.
func Validate(alloc storage.BudgetAllocation) error {
	var errs []error

	if !anyComplete(alloc.Equipment) {
		errs = append(errs, ErrMissingEquipmentItem)
	}
	if !anyComplete(alloc.Consumables) {
		errs = append(errs, ErrMissingConsumableItem)
	}

	s := Summarize(alloc)
	if s.EquipmentPercentage.LessThan(MinEquipmentPercentage) || s.OtherExpensesPercentage.GreaterThan(MaxOtherPercentage) {
		errs = append(errs, ErrBudgetAllocationViolation)
	}

	return errors.Join(errs...)
}

func anyComplete(items []storage.BudgetLineItem) bool {
	for _, it := range items {
		if Complete(it) {
			return true
		}
	}
	return false
}

// CheckAmounts rejects negative quantities, unit prices, travel or personnel.
// The form tolerates them while editing; a submitted budget must not.
func CheckAmounts(alloc storage.BudgetAllocation) error {
	if alloc.Travel.IsNegative() || alloc.Personnel.IsNegative() {
		return ErrNegativeAmount
	}
	for _, items := range [][]storage.BudgetLineItem{alloc.Equipment, alloc.Consumables} {
		for _, it := range items {
			if ParseAmount(it.Quantity).IsNegative() || ParseAmount(it.UnitPrice).IsNegative() {
				return ErrNegativeAmount
			}
		}
	}
	return nil
}

// Messages flattens an error returned by Validate into user-facing messages.
func Messages(err error) []string {
	if err == nil {
		return nil
	}

	joined, ok := err.(interface{ Unwrap() []error })
	if !ok {
		return []string{err.Error()}
	}

	var out []string
	for _, e := range joined.Unwrap() {
		out = append(out, Messages(e)...)
	}
	return out
}

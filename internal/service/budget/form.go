package budget

import (
	"grant-portal/internal/storage"
)

// Form holds the budget step of the multi-step proposal form. Every edit
// refreshes Summary; only Next is gated by validation.
type Form struct {
	Step       int
	Allocation storage.BudgetAllocation
	Summary    storage.BudgetSummary
	Errors     []string
}

func NewForm(step int) *Form {
	f := &Form{
		Step: step,
		Allocation: storage.BudgetAllocation{
			Equipment:   []storage.BudgetLineItem{{}},
			Consumables: []storage.BudgetLineItem{{}},
		},
	}
	f.recalculate()
	return f
}

func (f *Form) recalculate() {
	f.Summary = Summarize(f.Allocation)
}

func (f *Form) AddEquipment() {
	f.Allocation.Equipment = append(f.Allocation.Equipment, storage.BudgetLineItem{})
	f.recalculate()
}

func (f *Form) RemoveEquipment(i int) {
	f.Allocation.Equipment = removeAt(f.Allocation.Equipment, i)
	f.recalculate()
}

func (f *Form) SetEquipment(i int, key, value string) {
	if i < 0 || i >= len(f.Allocation.Equipment) {
		return
	}
	f.Allocation.Equipment[i] = EditLineItem(f.Allocation.Equipment[i], key, value)
	f.recalculate()
}

func (f *Form) AddConsumable() {
	f.Allocation.Consumables = append(f.Allocation.Consumables, storage.BudgetLineItem{})
	f.recalculate()
}

func (f *Form) RemoveConsumable(i int) {
	f.Allocation.Consumables = removeAt(f.Allocation.Consumables, i)
	f.recalculate()
}

func (f *Form) SetConsumable(i int, key, value string) {
	if i < 0 || i >= len(f.Allocation.Consumables) {
		return
	}
	f.Allocation.Consumables[i] = EditLineItem(f.Allocation.Consumables[i], key, value)
	f.recalculate()
}

func (f *Form) SetTravel(value string) {
	f.Allocation.Travel = ParseAmount(storage.FormValue(value))
	f.recalculate()
}

func (f *Form) SetPersonnel(value string) {
	f.Allocation.Personnel = ParseAmount(storage.FormValue(value))
	f.recalculate()
}

// Next advances to the following step when the budget passes validation.
// On failure the step is unchanged and Errors lists every problem.
func (f *Form) Next() error {
	err := Validate(f.Allocation)
	f.Errors = Messages(err)
	if err != nil {
		return err
	}

	f.Step++
	return nil
}

func removeAt(items []storage.BudgetLineItem, i int) []storage.BudgetLineItem {
	if i < 0 || i >= len(items) {
		return items
	}
	out := make([]storage.BudgetLineItem, 0, len(items)-1)
	out = append(out, items[:i]...)
	return append(out, items[i+1:]...)
}

package budget

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestForm_RecalculatesOnEveryEdit(t *testing.T) {
	f := NewForm(2)
	assert.True(t, f.Summary.TotalBudget.IsZero())

	f.SetEquipment(0, "item", "Spectrometer")
	f.SetEquipment(0, "quantity", "2")
	f.SetEquipment(0, "unitPrice", "350000")
	assertDec(t, "700000", f.Summary.TotalEquipment)

	f.SetConsumable(0, "item", "Reagents")
	f.SetConsumable(0, "quantity", "4")
	f.SetConsumable(0, "unitPrice", "50000")
	f.SetTravel("50000")
	f.SetPersonnel("50000")

	assertDec(t, "1000000", f.Summary.TotalBudget)
	assertDec(t, "70", f.Summary.EquipmentPercentage)

	require.NoError(t, f.Next())
	assert.Equal(t, 3, f.Step)
	assert.Empty(t, f.Errors)
}

func TestForm_NextBlockedButEditingAllowed(t *testing.T) {
	f := NewForm(1)

	err := f.Next()
	require.Error(t, err)
	assert.Equal(t, 1, f.Step)
	assert.Len(t, f.Errors, 3)

	f.SetEquipment(0, "item", "Rig")
	f.SetEquipment(0, "quantity", "1")
	f.SetEquipment(0, "unitPrice", "100")
	f.SetConsumable(0, "item", "Gas")
	f.SetConsumable(0, "quantity", "1")
	f.SetConsumable(0, "unitPrice", "900")

	err = f.Next()
	assert.ErrorIs(t, err, ErrBudgetAllocationViolation)
	assert.Equal(t, []string{ErrBudgetAllocationViolation.Error()}, f.Errors)
	assert.Equal(t, 1, f.Step)

	f.AddEquipment()
	f.SetEquipment(1, "item", "Laser")
	f.SetEquipment(1, "quantity", "2")
	f.SetEquipment(1, "unitPrice", "1000")

	require.NoError(t, f.Next())
	assert.Equal(t, 2, f.Step)
}

func TestForm_RowsAddRemove(t *testing.T) {
	f := NewForm(0)
	f.AddConsumable()
	f.SetConsumable(1, "item", "Gloves")
	f.SetConsumable(1, "quantity", "10")
	f.SetConsumable(1, "unitPrice", "3")
	assertDec(t, "30", f.Summary.TotalConsumables)

	f.RemoveConsumable(1)
	assert.Len(t, f.Allocation.Consumables, 1)
	assert.True(t, f.Summary.TotalConsumables.IsZero())

	f.RemoveEquipment(5)
	f.SetEquipment(5, "item", "ignored")
	assert.Len(t, f.Allocation.Equipment, 1)
}

package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSnapshot_Validate(t *testing.T) {
	valid := &SelectionSnapshot{Items: []SnapshotLine{
		{ProductID: "p-1", Qty: 2, Price: 100, Total: 200},
	}}
	assert.NoError(t, valid.Validate())
}

func TestSnapshot_Validate_Empty(t *testing.T) {
	var nilSnapshot *SelectionSnapshot
	assert.ErrorIs(t, nilSnapshot.Validate(), ErrEmptySelection)

	empty := &SelectionSnapshot{}
	assert.ErrorIs(t, empty.Validate(), ErrEmptySelection)
}

func TestSnapshot_Validate_MissingProductID(t *testing.T) {
	s := &SelectionSnapshot{Items: []SnapshotLine{{Qty: 1, Price: 100}}}
	assert.ErrorIs(t, s.Validate(), ErrInvalidLine)
}

func TestSnapshot_Validate_ZeroQuantity(t *testing.T) {
	s := &SelectionSnapshot{Items: []SnapshotLine{{ProductID: "p-1", Qty: 0}}}
	assert.ErrorIs(t, s.Validate(), ErrZeroQuantity)

	s.Items[0].Qty = -1
	assert.ErrorIs(t, s.Validate(), ErrZeroQuantity)
}

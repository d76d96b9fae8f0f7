package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCartLine_LineTotal(t *testing.T) {
	line := CartLine{ProductID: "p-1", Qty: 3, UnitPrice: 250}
	assert.Equal(t, int64(750), line.LineTotal())
}

func TestCart_SelectedTotal_OnlyCheckedLines(t *testing.T) {
	cart := Cart{Lines: []CartLine{
		{ProductID: "p-1", Qty: 2, UnitPrice: 100, Selected: true},
		{ProductID: "p-2", Qty: 1, UnitPrice: 500, Selected: false},
		{ProductID: "p-3", Qty: 4, UnitPrice: 50, Selected: true},
	}}

	assert.Equal(t, int64(400), cart.SelectedTotal())
	assert.Len(t, cart.Selected(), 2)
}

func TestCart_Line(t *testing.T) {
	cart := Cart{Lines: []CartLine{{ProductID: "p-1", Qty: 1}}}

	line := cart.Line("p-1")
	assert.NotNil(t, line)

	line.Qty = 5
	assert.Equal(t, 5, cart.Lines[0].Qty)

	assert.Nil(t, cart.Line("missing"))
}

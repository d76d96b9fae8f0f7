package domain

// CartLine is the client-side mirror of one backend cart row. The backend
// remains the source of truth; the mirror exists so render code can be a pure
// projection instead of scraping ad-hoc UI state.
type CartLine struct {
	ProductID string `json:"product_id"`
	Name      string `json:"name"`
	Qty       int    `json:"qty"`
	UnitPrice int64  `json:"unit_price"` // minor units
	Selected  bool   `json:"selected"`
}

// LineTotal is always derived, never stored.
func (l CartLine) LineTotal() int64 {
	return l.UnitPrice * int64(l.Qty)
}

type Cart struct {
	Lines []CartLine
}

// Line returns a pointer into the cart so callers can mutate quantity and
// selection in place. Nil when the product is not in the cart.
func (c *Cart) Line(productID string) *CartLine {
	for i := range c.Lines {
		if c.Lines[i].ProductID == productID {
			return &c.Lines[i]
		}
	}
	return nil
}

func (c *Cart) Selected() []CartLine {
	var out []CartLine
	for _, l := range c.Lines {
		if l.Selected {
			out = append(out, l)
		}
	}
	return out
}

// SelectedTotal sums line totals over the currently selected lines only.
func (c *Cart) SelectedTotal() int64 {
	var total int64
	for _, l := range c.Lines {
		if l.Selected {
			total += l.LineTotal()
		}
	}
	return total
}

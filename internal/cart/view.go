package cart

// Row is one rendered cart line. Rows is a pure projection of the cart model;
// nothing here is a source of truth.
type Row struct {
	ProductID string
	Name      string
	Qty       int
	UnitPrice int64
	LineTotal int64
	Selected  bool
}

func (c *Controller) Rows() []Row {
	rows := make([]Row, 0, len(c.cart.Lines))
	for _, line := range c.cart.Lines {
		rows = append(rows, Row{
			ProductID: line.ProductID,
			Name:      line.Name,
			Qty:       line.Qty,
			UnitPrice: line.UnitPrice,
			LineTotal: line.LineTotal(),
			Selected:  line.Selected,
		})
	}
	return rows
}

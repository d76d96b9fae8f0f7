package domain

import "time"

const (
	OrderStatusSuccess   = "success"
	OrderStatusCancelled = "cancelled"
)

type OrderItem struct {
	Qty   int    `json:"qty"`
	Name  string `json:"name"`
	Total int64  `json:"total"`
}

// Order is a read model of a past purchase. The client only reads it and
// issues cancel/reorder commands by id.
type Order struct {
	OrderID     string      `json:"order_id"`
	Timestamp   string      `json:"timestamp"`
	Items       []OrderItem `json:"items"`
	Status      string      `json:"status"`
	DeliveryETA string      `json:"delivery_eta"`
}

func (o Order) Cancelled() bool {
	return o.Status == OrderStatusCancelled
}

const orderTimeLayout = "2006-01-02 15:04:05"

// DeliveryETA estimates the delivery date for an order timestamp: orders
// placed at or after 18:00 count from the next day, then a flat seven days.
func DeliveryETA(timestamp string) (string, error) {
	t, err := time.Parse(orderTimeLayout, timestamp)
	if err != nil {
		return "", err
	}
	if t.Hour() >= 18 {
		t = t.AddDate(0, 0, 1)
	}
	return t.AddDate(0, 0, 7).Format("2006-01-02"), nil
}

// OrderTimestamp formats a placement time the way order records carry it.
func OrderTimestamp(t time.Time) string {
	return t.Format(orderTimeLayout)
}

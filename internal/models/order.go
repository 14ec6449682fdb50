package models

// Order statuses. An order starts as created and moves to paid, cancelled
// or fulfilled; cancelled orders are excluded from every statistic.
const (
	OrderStatusCreated   = "created"
	OrderStatusPaid      = "paid"
	OrderStatusCancelled = "cancelled"
	OrderStatusFulfilled = "fulfilled"
)

// Order is a cafeteria order placed by an authenticated user. TotalPrice
// is fixed at creation time as quantity times the unit price of the meal
// the order references.
type Order struct {
	UID        string  `json:"id"`
	UserUID    string  `json:"user_id"`
	MealUID    string  `json:"meal_id"`
	Quantity   int     `json:"quantity"`
	TotalPrice float64 `json:"total_price"`
	Status     string  `json:"status"`
}

// DummyOrder carries the JSON payload of an order creation request.
type DummyOrder struct {
	MealUID  string `json:"meal_id" validate:"required,uuid"`
	Quantity int    `json:"quantity" validate:"required,gte=1"`
}

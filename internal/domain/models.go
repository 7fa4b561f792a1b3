package domain

import "time"

type Dish struct {
	ID           int                    `json:"id"`
	Name         string                 `json:"name"`
	Price        float64                `json:"price"`
	Calories     *int                   `json:"calories"`
	PortionGrams *int                   `json:"portion_grams"`
	Category     *string                `json:"category"`
	Meta         map[string]interface{} `json:"meta"`
}

// DishPatch carries a partial update. Nil fields are left untouched.
type DishPatch struct {
	Name         *string                `json:"name"`
	Price        *float64               `json:"price"`
	Calories     *int                   `json:"calories"`
	PortionGrams *int                   `json:"portion_grams"`
	Category     *string                `json:"category"`
	Meta         map[string]interface{} `json:"meta"`
}

type Client struct {
	ID           int     `json:"id"`
	FullName     string  `json:"full_name"`
	Age          *int    `json:"age"`
	WeightKg     *int    `json:"weight_kg"`
	Organization *string `json:"organization"`
	Preferences  *string `json:"preferences"`
}

type ClientPatch struct {
	FullName     *string `json:"full_name"`
	Age          *int    `json:"age"`
	WeightKg     *int    `json:"weight_kg"`
	Organization *string `json:"organization"`
	Preferences  *string `json:"preferences"`
}

type Order struct {
	ID          int         `json:"id"`
	ClientID    int         `json:"client_id"`
	PaymentType *string     `json:"payment_type"`
	CreatedAt   time.Time   `json:"created_at"`
	Items       []OrderItem `json:"items"`
}

type OrderItem struct {
	DishID   int `json:"dish_id"`
	Quantity int `json:"quantity"`
}

type OrderCreate struct {
	ClientID    int         `json:"client_id"`
	PaymentType *string     `json:"payment_type"`
	Items       []OrderItem `json:"items"`
}

// DishFilter holds the dish listing predicates. Nil pointers mean "no bound".
// SortBy outside the storage allow-list falls back to id.
type DishFilter struct {
	MinPrice    *float64
	MaxPrice    *float64
	MinCalories *int
	Category    *string
	SortBy      string
	SortDir     string
	Limit       int
	Offset      int
}

type ClientFilter struct {
	Organization *string
	MinAge       *int
	SortBy       string
	SortDir      string
	Limit        int
	Offset       int
}

type ClientOrderSummary struct {
	OrderID     int       `json:"order_id"`
	CreatedAt   time.Time `json:"created_at"`
	PaymentType *string   `json:"payment_type"`
	TotalSum    float64   `json:"total_sum"`
}

type ClientSpend struct {
	ClientID   int     `json:"client_id"`
	FullName   string  `json:"full_name"`
	TotalSpend float64 `json:"total_spend"`
}

type OrderBreakdownItem struct {
	DishID    int     `json:"dish_id"`
	DishName  string  `json:"dish_name"`
	DishPrice float64 `json:"dish_price"`
	Quantity  int     `json:"quantity"`
	LineSum   float64 `json:"line_sum"`
}

type ClientSummary struct {
	ClientID int    `json:"client_id"`
	FullName string `json:"full_name"`
}

type OrderBreakdown struct {
	OrderID     int                  `json:"order_id"`
	CreatedAt   time.Time            `json:"created_at"`
	PaymentType *string              `json:"payment_type"`
	Client      ClientSummary        `json:"client"`
	Items       []OrderBreakdownItem `json:"items"`
	TotalSum    float64              `json:"total_sum"`
}

type PriceRaiseResult struct {
	Updated  int64   `json:"updated"`
	Category string  `json:"category"`
	Percent  float64 `json:"percent"`
}

type OrderEvent struct {
	Type      string    `json:"type"`
	OrderID   int       `json:"order_id"`
	ClientID  int       `json:"client_id"`
	ItemCount int       `json:"item_count"`
	Timestamp time.Time `json:"timestamp"`
}

const EventOrderCreated = "order_created"

package storage

import (
	"restomanage/internal/domain"
)

// Report queries. All joins and numeric semantics mirror the write-side
// schema: money totals are floating-point sums of price * quantity.

func (r *PostgresRepository) ClientOrders(clientID int) ([]domain.ClientOrderSummary, error) {
	rows, err := r.DB.Query(`
		SELECT
		  o.id AS order_id,
		  o.created_at,
		  o.payment_type,
		  SUM(d.price * oi.quantity) AS total_sum
		FROM orders o
		JOIN order_items oi ON oi.order_id = o.id
		JOIN dishes d ON d.id = oi.dish_id
		WHERE o.client_id = $1
		GROUP BY o.id, o.created_at, o.payment_type
		ORDER BY o.id DESC`, clientID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	summaries := []domain.ClientOrderSummary{}
	for rows.Next() {
		var s domain.ClientOrderSummary
		if err := rows.Scan(&s.OrderID, &s.CreatedAt, &s.PaymentType, &s.TotalSum); err != nil {
			return nil, err
		}
		summaries = append(summaries, s)
	}
	return summaries, rows.Err()
}

func (r *PostgresRepository) TopClientsBySpend(limit int) ([]domain.ClientSpend, error) {
	rows, err := r.DB.Query(`
		SELECT
		  c.id AS client_id,
		  c.full_name,
		  SUM(d.price * oi.quantity) AS total_spend
		FROM clients c
		JOIN orders o ON o.client_id = c.id
		JOIN order_items oi ON oi.order_id = o.id
		JOIN dishes d ON d.id = oi.dish_id
		GROUP BY c.id, c.full_name
		ORDER BY total_spend DESC
		LIMIT $1`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	spenders := []domain.ClientSpend{}
	for rows.Next() {
		var s domain.ClientSpend
		if err := rows.Scan(&s.ClientID, &s.FullName, &s.TotalSpend); err != nil {
			return nil, err
		}
		spenders = append(spenders, s)
	}
	return spenders, rows.Err()
}

// OrderBreakdown returns nil without error when the order has no rows, so the
// caller can shape its own not-found payload.
func (r *PostgresRepository) OrderBreakdown(orderID int) (*domain.OrderBreakdown, error) {
	rows, err := r.DB.Query(`
		SELECT
		  o.id AS order_id,
		  o.created_at,
		  o.payment_type,
		  c.id AS client_id,
		  c.full_name,
		  oi.dish_id,
		  d.name AS dish_name,
		  d.price AS dish_price,
		  oi.quantity,
		  (d.price * oi.quantity) AS line_sum
		FROM orders o
		JOIN clients c ON c.id = o.client_id
		JOIN order_items oi ON oi.order_id = o.id
		JOIN dishes d ON d.id = oi.dish_id
		WHERE o.id = $1
		ORDER BY oi.dish_id`, orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var breakdown *domain.OrderBreakdown
	for rows.Next() {
		var item domain.OrderBreakdownItem
		var head domain.OrderBreakdown
		if err := rows.Scan(&head.OrderID, &head.CreatedAt, &head.PaymentType,
			&head.Client.ClientID, &head.Client.FullName,
			&item.DishID, &item.DishName, &item.DishPrice, &item.Quantity, &item.LineSum); err != nil {
			return nil, err
		}
		if breakdown == nil {
			head.Items = []domain.OrderBreakdownItem{}
			breakdown = &head
		}
		breakdown.Items = append(breakdown.Items, item)
		breakdown.TotalSum += item.LineSum
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return breakdown, nil
}

func (r *PostgresRepository) RaisePrices(category string, minCalories int, percent float64) (int64, error) {
	multiplier := 1.0 + percent/100.0
	result, err := r.DB.Exec(`
		UPDATE dishes
		SET price = price * $1
		WHERE category = $2
		  AND calories >= $3`, multiplier, category, minCalories)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

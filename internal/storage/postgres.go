package storage

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"

	"restomanage/internal/domain"
)

type PostgresRepository struct {
	DB *sql.DB
}

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{DB: db}
}

// Sort keys are mapped to column references through fixed tables; anything
// outside the allow-list falls back to id instead of being rejected.
var dishSortColumns = map[string]string{
	"id":       "id",
	"price":    "price",
	"name":     "name",
	"calories": "calories",
}

var clientSortColumns = map[string]string{
	"id":        "id",
	"full_name": "full_name",
	"age":       "age",
}

func orderBy(allowed map[string]string, sortBy, sortDir string) string {
	column, ok := allowed[sortBy]
	if !ok {
		column = "id"
	}
	direction := "ASC"
	if strings.EqualFold(sortDir, "desc") {
		direction = "DESC"
	}
	return column + " " + direction
}

func marshalMeta(meta map[string]interface{}) (interface{}, error) {
	if meta == nil {
		return nil, nil
	}
	raw, err := json.Marshal(meta)
	if err != nil {
		return nil, fmt.Errorf("marshal meta: %w", err)
	}
	return raw, nil
}

func scanDish(scan func(dest ...interface{}) error) (domain.Dish, error) {
	var dish domain.Dish
	var metaRaw []byte
	err := scan(&dish.ID, &dish.Name, &dish.Price, &dish.Calories, &dish.PortionGrams, &dish.Category, &metaRaw)
	if err != nil {
		return dish, err
	}
	if len(metaRaw) > 0 {
		if err := json.Unmarshal(metaRaw, &dish.Meta); err != nil {
			return dish, fmt.Errorf("unmarshal meta: %w", err)
		}
	}
	return dish, nil
}

func (r *PostgresRepository) CreateDish(dish *domain.Dish) error {
	meta, err := marshalMeta(dish.Meta)
	if err != nil {
		return err
	}
	return r.DB.QueryRow(`
		INSERT INTO dishes (name, price, calories, portion_grams, category, meta)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`, dish.Name, dish.Price, dish.Calories, dish.PortionGrams, dish.Category, meta).Scan(&dish.ID)
}

func (r *PostgresRepository) ListDishes(filter domain.DishFilter) ([]domain.Dish, error) {
	query := `
		SELECT id, name, price, calories, portion_grams, category, meta
		FROM dishes
		WHERE ($1::double precision IS NULL OR price >= $1)
		  AND ($2::double precision IS NULL OR price <= $2)
		  AND ($3::int IS NULL OR calories >= $3)
		  AND ($4::text IS NULL OR category = $4)
		ORDER BY ` + orderBy(dishSortColumns, filter.SortBy, filter.SortDir) + `
		LIMIT $5 OFFSET $6`

	rows, err := r.DB.Query(query,
		filter.MinPrice, filter.MaxPrice, filter.MinCalories, filter.Category,
		filter.Limit, filter.Offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	dishes := []domain.Dish{}
	for rows.Next() {
		dish, err := scanDish(rows.Scan)
		if err != nil {
			return nil, err
		}
		dishes = append(dishes, dish)
	}
	return dishes, rows.Err()
}

func (r *PostgresRepository) GetDish(id int) (*domain.Dish, error) {
	dish, err := scanDish(r.DB.QueryRow(`
		SELECT id, name, price, calories, portion_grams, category, meta
		FROM dishes
		WHERE id = $1`, id).Scan)
	if err == sql.ErrNoRows {
		return nil, domain.ErrDishNotFound
	}
	if err != nil {
		return nil, err
	}
	return &dish, nil
}

func (r *PostgresRepository) UpdateDish(dish *domain.Dish) error {
	meta, err := marshalMeta(dish.Meta)
	if err != nil {
		return err
	}
	res, err := r.DB.Exec(`
		UPDATE dishes
		SET name=$1, price=$2, calories=$3, portion_grams=$4, category=$5, meta=$6
		WHERE id=$7
	`, dish.Name, dish.Price, dish.Calories, dish.PortionGrams, dish.Category, meta, dish.ID)
	if err != nil {
		return err
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrDishNotFound
	}
	return nil
}

func (r *PostgresRepository) DeleteDish(id int) (int64, error) {
	result, err := r.DB.Exec("DELETE FROM dishes WHERE id=$1", id)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

func (r *PostgresRepository) CreateClient(client *domain.Client) error {
	return r.DB.QueryRow(`
		INSERT INTO clients (full_name, age, weight_kg, organization, preferences)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`, client.FullName, client.Age, client.WeightKg, client.Organization, client.Preferences).Scan(&client.ID)
}

func (r *PostgresRepository) ListClients(filter domain.ClientFilter) ([]domain.Client, error) {
	query := `
		SELECT id, full_name, age, weight_kg, organization, preferences
		FROM clients
		WHERE ($1::text IS NULL OR organization = $1)
		  AND ($2::int IS NULL OR age >= $2)
		ORDER BY ` + orderBy(clientSortColumns, filter.SortBy, filter.SortDir) + `
		LIMIT $3 OFFSET $4`

	rows, err := r.DB.Query(query, filter.Organization, filter.MinAge, filter.Limit, filter.Offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	clients := []domain.Client{}
	for rows.Next() {
		var client domain.Client
		if err := rows.Scan(&client.ID, &client.FullName, &client.Age, &client.WeightKg,
			&client.Organization, &client.Preferences); err != nil {
			return nil, err
		}
		clients = append(clients, client)
	}
	return clients, rows.Err()
}

func (r *PostgresRepository) GetClient(id int) (*domain.Client, error) {
	var client domain.Client
	err := r.DB.QueryRow(`
		SELECT id, full_name, age, weight_kg, organization, preferences
		FROM clients
		WHERE id = $1`, id).
		Scan(&client.ID, &client.FullName, &client.Age, &client.WeightKg,
			&client.Organization, &client.Preferences)
	if err == sql.ErrNoRows {
		return nil, domain.ErrClientNotFound
	}
	if err != nil {
		return nil, err
	}
	return &client, nil
}

func (r *PostgresRepository) UpdateClient(client *domain.Client) error {
	res, err := r.DB.Exec(`
		UPDATE clients
		SET full_name=$1, age=$2, weight_kg=$3, organization=$4, preferences=$5
		WHERE id=$6
	`, client.FullName, client.Age, client.WeightKg, client.Organization, client.Preferences, client.ID)
	if err != nil {
		return err
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrClientNotFound
	}
	return nil
}

func (r *PostgresRepository) DeleteClient(id int) (int64, error) {
	result, err := r.DB.Exec("DELETE FROM clients WHERE id=$1", id)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

// CreateOrder validates the client and every dish reference and writes the
// order plus its items in one transaction. Any missing reference rolls the
// whole unit back.
func (r *PostgresRepository) CreateOrder(order *domain.Order) error {
	tx, err := r.DB.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	var clientExists bool
	if err := tx.QueryRow("SELECT EXISTS(SELECT 1 FROM clients WHERE id = $1)", order.ClientID).
		Scan(&clientExists); err != nil {
		return err
	}
	if !clientExists {
		return domain.ErrClientNotFound
	}

	if len(order.Items) == 0 {
		return domain.ErrNoItems
	}

	if err := tx.QueryRow(`
		INSERT INTO orders (client_id, payment_type)
		VALUES ($1, $2)
		RETURNING id, created_at
	`, order.ClientID, order.PaymentType).Scan(&order.ID, &order.CreatedAt); err != nil {
		return err
	}

	for _, item := range order.Items {
		var dishExists bool
		if err := tx.QueryRow("SELECT EXISTS(SELECT 1 FROM dishes WHERE id = $1)", item.DishID).
			Scan(&dishExists); err != nil {
			return err
		}
		if !dishExists {
			return fmt.Errorf("%w: %d", domain.ErrDishNotFound, item.DishID)
		}
		if _, err := tx.Exec(`
			INSERT INTO order_items (order_id, dish_id, quantity)
			VALUES ($1, $2, $3)
		`, order.ID, item.DishID, item.Quantity); err != nil {
			return err
		}
	}

	return tx.Commit()
}

func (r *PostgresRepository) GetOrder(id int) (*domain.Order, error) {
	var order domain.Order
	err := r.DB.QueryRow(`
		SELECT id, client_id, payment_type, created_at
		FROM orders
		WHERE id = $1`, id).
		Scan(&order.ID, &order.ClientID, &order.PaymentType, &order.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, domain.ErrOrderNotFound
	}
	if err != nil {
		return nil, err
	}

	items, err := r.orderItems(order.ID)
	if err != nil {
		return nil, err
	}
	order.Items = items
	return &order, nil
}

func (r *PostgresRepository) ListOrders(limit, offset int) ([]domain.Order, error) {
	rows, err := r.DB.Query(`
		SELECT id, client_id, payment_type, created_at
		FROM orders
		ORDER BY id DESC
		LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := []domain.Order{}
	for rows.Next() {
		var order domain.Order
		if err := rows.Scan(&order.ID, &order.ClientID, &order.PaymentType, &order.CreatedAt); err != nil {
			return nil, err
		}
		orders = append(orders, order)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range orders {
		items, err := r.orderItems(orders[i].ID)
		if err != nil {
			return nil, err
		}
		orders[i].Items = items
	}
	return orders, nil
}

func (r *PostgresRepository) orderItems(orderID int) ([]domain.OrderItem, error) {
	rows, err := r.DB.Query(`
		SELECT dish_id, quantity
		FROM order_items
		WHERE order_id = $1
		ORDER BY dish_id`, orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := []domain.OrderItem{}
	for rows.Next() {
		var item domain.OrderItem
		if err := rows.Scan(&item.DishID, &item.Quantity); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

// EnsureSchema applies the additive schema. Safe to run on every start.
func (r *PostgresRepository) EnsureSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS dishes (
			id SERIAL PRIMARY KEY,
			name TEXT NOT NULL,
			price DOUBLE PRECISION NOT NULL,
			calories INT,
			portion_grams INT,
			category TEXT,
			meta JSONB
		)`,
		`CREATE TABLE IF NOT EXISTS clients (
			id SERIAL PRIMARY KEY,
			full_name TEXT NOT NULL,
			age INT,
			weight_kg INT,
			organization TEXT,
			preferences TEXT
		)`,
		`CREATE TABLE IF NOT EXISTS orders (
			id SERIAL PRIMARY KEY,
			client_id INT NOT NULL REFERENCES clients(id),
			created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
			payment_type TEXT
		)`,
		`CREATE TABLE IF NOT EXISTS order_items (
			order_id INT NOT NULL REFERENCES orders(id) ON DELETE CASCADE,
			dish_id INT NOT NULL REFERENCES dishes(id),
			quantity INT NOT NULL,
			PRIMARY KEY (order_id, dish_id)
		)`,
		"ALTER TABLE IF EXISTS clients ADD COLUMN IF NOT EXISTS phone TEXT",
		"ALTER TABLE IF EXISTS orders ADD COLUMN IF NOT EXISTS status TEXT",
	}
	for _, stmt := range statements {
		if _, err := r.DB.Exec(stmt); err != nil {
			return fmt.Errorf("ensure schema `%s`: %w", stmt, err)
		}
	}
	return nil
}

package storage

import (
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"

	"restomanage/internal/domain"
)

func setupTestDB(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return NewPostgresRepository(db), mock
}

func TestOrderBy(t *testing.T) {
	tests := []struct {
		name    string
		sortBy  string
		sortDir string
		want    string
	}{
		{"default", "", "", "id ASC"},
		{"allowed column", "price", "asc", "price ASC"},
		{"descending", "name", "desc", "name DESC"},
		{"case insensitive direction", "calories", "DESC", "calories DESC"},
		{"unknown column falls back to id", "price; DROP TABLE dishes", "asc", "id ASC"},
		{"unknown direction falls back to asc", "id", "sideways", "id ASC"},
	}
	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			assert.Equal(t, testCase.want, orderBy(dishSortColumns, testCase.sortBy, testCase.sortDir))
		})
	}
}

func TestCreateOrder_ClientMissing(t *testing.T) {
	repo, mock := setupTestDB(t)

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT EXISTS").
		WithArgs(42).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))
	mock.ExpectRollback()

	order := &domain.Order{ClientID: 42, Items: []domain.OrderItem{{DishID: 1, Quantity: 1}}}
	err := repo.CreateOrder(order)

	assert.ErrorIs(t, err, domain.ErrClientNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateOrder_EmptyItems(t *testing.T) {
	repo, mock := setupTestDB(t)

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT EXISTS").
		WithArgs(1).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))
	mock.ExpectRollback()

	err := repo.CreateOrder(&domain.Order{ClientID: 1})

	assert.ErrorIs(t, err, domain.ErrNoItems)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateOrder_DishMissingRollsBackEverything(t *testing.T) {
	repo, mock := setupTestDB(t)

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT EXISTS").
		WithArgs(1).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))
	mock.ExpectQuery("INSERT INTO orders").
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow(7, time.Now()))
	mock.ExpectQuery("SELECT EXISTS").
		WithArgs(10).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))
	mock.ExpectExec("INSERT INTO order_items").
		WithArgs(7, 10, 2).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery("SELECT EXISTS").
		WithArgs(11).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))
	mock.ExpectRollback()

	order := &domain.Order{
		ClientID: 1,
		Items: []domain.OrderItem{
			{DishID: 10, Quantity: 2},
			{DishID: 11, Quantity: 1},
		},
	}
	err := repo.CreateOrder(order)

	assert.ErrorIs(t, err, domain.ErrDishNotFound)
	assert.Contains(t, err.Error(), "11")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateOrder_CommitsWholeUnit(t *testing.T) {
	repo, mock := setupTestDB(t)

	created := time.Date(2026, 2, 1, 12, 0, 0, 0, time.UTC)

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT EXISTS").
		WithArgs(1).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))
	mock.ExpectQuery("INSERT INTO orders").
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow(3, created))
	mock.ExpectQuery("SELECT EXISTS").
		WithArgs(10).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))
	mock.ExpectExec("INSERT INTO order_items").
		WithArgs(3, 10, 2).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	order := &domain.Order{ClientID: 1, Items: []domain.OrderItem{{DishID: 10, Quantity: 2}}}
	err := repo.CreateOrder(order)

	assert.NoError(t, err)
	assert.Equal(t, 3, order.ID)
	assert.Equal(t, created, order.CreatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetDish_NotFound(t *testing.T) {
	repo, mock := setupTestDB(t)

	mock.ExpectQuery("SELECT id, name, price").
		WithArgs(99).
		WillReturnError(sql.ErrNoRows)

	dish, err := repo.GetDish(99)

	assert.Nil(t, dish)
	assert.ErrorIs(t, err, domain.ErrDishNotFound)
}

func TestGetDish_UnmarshalsMeta(t *testing.T) {
	repo, mock := setupTestDB(t)

	rows := sqlmock.NewRows([]string{"id", "name", "price", "calories", "portion_grams", "category", "meta"}).
		AddRow(1, "Borscht", 4.5, 250, 300, "soup", []byte(`{"spicy":false}`))
	mock.ExpectQuery("SELECT id, name, price").
		WithArgs(1).
		WillReturnRows(rows)

	dish, err := repo.GetDish(1)

	assert.NoError(t, err)
	assert.Equal(t, "Borscht", dish.Name)
	assert.Equal(t, 4.5, dish.Price)
	assert.Equal(t, map[string]interface{}{"spicy": false}, dish.Meta)
}

func TestListDishes_SortFallback(t *testing.T) {
	repo, mock := setupTestDB(t)

	mock.ExpectQuery("ORDER BY id ASC").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "price", "calories", "portion_grams", "category", "meta"}))

	dishes, err := repo.ListDishes(domain.DishFilter{SortBy: "owner", Limit: 50})

	assert.NoError(t, err)
	assert.Empty(t, dishes)
	assert.NotNil(t, dishes)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListDishes_SortDescending(t *testing.T) {
	repo, mock := setupTestDB(t)

	rows := sqlmock.NewRows([]string{"id", "name", "price", "calories", "portion_grams", "category", "meta"}).
		AddRow(2, "Steak", 25.0, nil, nil, nil, nil).
		AddRow(1, "Soup", 4.0, nil, nil, nil, nil)
	mock.ExpectQuery("ORDER BY price DESC").WillReturnRows(rows)

	dishes, err := repo.ListDishes(domain.DishFilter{SortBy: "price", SortDir: "desc", Limit: 50})

	assert.NoError(t, err)
	assert.Len(t, dishes, 2)
	assert.Nil(t, dishes[0].Calories)
	assert.Nil(t, dishes[0].Category)
}

func TestUpdateDish_NotFound(t *testing.T) {
	repo, mock := setupTestDB(t)

	mock.ExpectExec("UPDATE dishes").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.UpdateDish(&domain.Dish{ID: 5, Name: "Renamed", Price: 1})

	assert.ErrorIs(t, err, domain.ErrDishNotFound)
}

func TestDeleteClient_ReportsRowsAffected(t *testing.T) {
	repo, mock := setupTestDB(t)

	mock.ExpectExec("DELETE FROM clients").
		WithArgs(9).
		WillReturnResult(sqlmock.NewResult(0, 1))

	rows, err := repo.DeleteClient(9)

	assert.NoError(t, err)
	assert.Equal(t, int64(1), rows)
}

func TestGetOrder_EagerItems(t *testing.T) {
	repo, mock := setupTestDB(t)

	mock.ExpectQuery("SELECT id, client_id, payment_type, created_at").
		WithArgs(4).
		WillReturnRows(sqlmock.NewRows([]string{"id", "client_id", "payment_type", "created_at"}).
			AddRow(4, 2, "card", time.Now()))
	mock.ExpectQuery("SELECT dish_id, quantity").
		WithArgs(4).
		WillReturnRows(sqlmock.NewRows([]string{"dish_id", "quantity"}).
			AddRow(10, 2).
			AddRow(11, 1))

	order, err := repo.GetOrder(4)

	assert.NoError(t, err)
	assert.Equal(t, 2, order.ClientID)
	assert.Equal(t, []domain.OrderItem{{DishID: 10, Quantity: 2}, {DishID: 11, Quantity: 1}}, order.Items)
}

func TestGetOrder_NotFound(t *testing.T) {
	repo, mock := setupTestDB(t)

	mock.ExpectQuery("SELECT id, client_id, payment_type, created_at").
		WithArgs(999).
		WillReturnError(sql.ErrNoRows)

	order, err := repo.GetOrder(999)

	assert.Nil(t, order)
	assert.ErrorIs(t, err, domain.ErrOrderNotFound)
}

func TestListOrders_PassesPagination(t *testing.T) {
	repo, mock := setupTestDB(t)

	mock.ExpectQuery("ORDER BY id DESC").
		WithArgs(1, 1).
		WillReturnRows(sqlmock.NewRows([]string{"id", "client_id", "payment_type", "created_at"}).
			AddRow(8, 2, nil, time.Now()))
	mock.ExpectQuery("SELECT dish_id, quantity").
		WithArgs(8).
		WillReturnRows(sqlmock.NewRows([]string{"dish_id", "quantity"}).AddRow(1, 1))

	orders, err := repo.ListOrders(1, 1)

	assert.NoError(t, err)
	assert.Len(t, orders, 1)
	assert.Equal(t, 8, orders[0].ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateDish_ReturnsID(t *testing.T) {
	repo, mock := setupTestDB(t)

	mock.ExpectQuery("INSERT INTO dishes").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(12))

	dish := &domain.Dish{Name: "Pelmeni", Price: 6.0}
	err := repo.CreateDish(dish)

	assert.NoError(t, err)
	assert.Equal(t, 12, dish.ID)
}

func TestCreateDish_PropagatesError(t *testing.T) {
	repo, mock := setupTestDB(t)

	mock.ExpectQuery("INSERT INTO dishes").
		WillReturnError(errors.New("db down"))

	err := repo.CreateDish(&domain.Dish{Name: "Pelmeni", Price: 6.0})

	assert.Error(t, err)
}

package storage

import (
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
)

func TestClientOrders_SumsPerOrder(t *testing.T) {
	repo, mock := setupTestDB(t)

	rows := sqlmock.NewRows([]string{"order_id", "created_at", "payment_type", "total_sum"}).
		AddRow(9, time.Now(), "card", 31.5).
		AddRow(4, time.Now(), nil, 12.0)
	mock.ExpectQuery("GROUP BY o.id").
		WithArgs(2).
		WillReturnRows(rows)

	summaries, err := repo.ClientOrders(2)

	assert.NoError(t, err)
	assert.Len(t, summaries, 2)
	assert.Equal(t, 9, summaries[0].OrderID)
	assert.Equal(t, 31.5, summaries[0].TotalSum)
	assert.Nil(t, summaries[1].PaymentType)
}

func TestClientOrders_EmptyIsNotNil(t *testing.T) {
	repo, mock := setupTestDB(t)

	mock.ExpectQuery("GROUP BY o.id").
		WithArgs(77).
		WillReturnRows(sqlmock.NewRows([]string{"order_id", "created_at", "payment_type", "total_sum"}))

	summaries, err := repo.ClientOrders(77)

	assert.NoError(t, err)
	assert.NotNil(t, summaries)
	assert.Empty(t, summaries)
}

func TestTopClientsBySpend_PassesLimit(t *testing.T) {
	repo, mock := setupTestDB(t)

	rows := sqlmock.NewRows([]string{"client_id", "full_name", "total_spend"}).
		AddRow(3, "Alice Stone", 120.0).
		AddRow(1, "Bob Reed", 80.5)
	mock.ExpectQuery("ORDER BY total_spend DESC").
		WithArgs(10).
		WillReturnRows(rows)

	spenders, err := repo.TopClientsBySpend(10)

	assert.NoError(t, err)
	assert.Len(t, spenders, 2)
	assert.Equal(t, "Alice Stone", spenders[0].FullName)
	assert.Equal(t, 120.0, spenders[0].TotalSpend)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOrderBreakdown_AccumulatesLineSums(t *testing.T) {
	repo, mock := setupTestDB(t)

	created := time.Date(2026, 3, 10, 9, 30, 0, 0, time.UTC)
	rows := sqlmock.NewRows([]string{
		"order_id", "created_at", "payment_type", "client_id", "full_name",
		"dish_id", "dish_name", "dish_price", "quantity", "line_sum",
	}).
		AddRow(5, created, "cash", 2, "Alice Stone", 10, "Steak", 100.0, 2, 200.0).
		AddRow(5, created, "cash", 2, "Alice Stone", 11, "Soup", 25.0, 2, 50.0)
	mock.ExpectQuery("JOIN clients c").
		WithArgs(5).
		WillReturnRows(rows)

	breakdown, err := repo.OrderBreakdown(5)

	assert.NoError(t, err)
	assert.Equal(t, 5, breakdown.OrderID)
	assert.Equal(t, "Alice Stone", breakdown.Client.FullName)
	assert.Len(t, breakdown.Items, 2)
	assert.Equal(t, 200.0, breakdown.Items[0].LineSum)
	assert.Equal(t, 50.0, breakdown.Items[1].LineSum)
	assert.Equal(t, 250.0, breakdown.TotalSum)
}

func TestOrderBreakdown_MissingOrderIsNil(t *testing.T) {
	repo, mock := setupTestDB(t)

	mock.ExpectQuery("JOIN clients c").
		WithArgs(404).
		WillReturnRows(sqlmock.NewRows([]string{
			"order_id", "created_at", "payment_type", "client_id", "full_name",
			"dish_id", "dish_name", "dish_price", "quantity", "line_sum",
		}))

	breakdown, err := repo.OrderBreakdown(404)

	assert.NoError(t, err)
	assert.Nil(t, breakdown)
}

func TestRaisePrices_AppliesMultiplier(t *testing.T) {
	repo, mock := setupTestDB(t)

	mock.ExpectExec("UPDATE dishes").
		WithArgs(1.1, "soup", 0).
		WillReturnResult(sqlmock.NewResult(0, 3))

	updated, err := repo.RaisePrices("soup", 0, 10.0)

	assert.NoError(t, err)
	assert.Equal(t, int64(3), updated)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRaisePrices_NoMatchesIsZeroNotError(t *testing.T) {
	repo, mock := setupTestDB(t)

	mock.ExpectExec("UPDATE dishes").
		WithArgs(1.25, "dessert", 500).
		WillReturnResult(sqlmock.NewResult(0, 0))

	updated, err := repo.RaisePrices("dessert", 500, 25.0)

	assert.NoError(t, err)
	assert.Equal(t, int64(0), updated)
}

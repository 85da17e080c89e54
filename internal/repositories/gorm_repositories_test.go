package repositories_test

import (
	"fmt"
	"strings"
	"testing"

	"storefront/internal/models"
	"storefront/internal/repositories"

	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupDB opens a fresh in-memory SQLite database with all tables migrated.
func setupDB(t *testing.T) *gorm.DB {
	t.Helper()

	// A named shared-cache DSN keeps every pooled connection on the same
	// in-memory database while isolating tests from each other.
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open in-memory database: %v", err)
	}

	err = db.AutoMigrate(&models.User{}, &models.Product{}, &models.Order{}, &models.OrderProduct{})
	if err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}
	return db
}

func TestGORMUserRepository_DuplicateUsername(t *testing.T) {
	db := setupDB(t)
	repo := repositories.NewGORMUserRepository(db)

	first := &models.User{FirstName: "A", LastName: "B", Username: "taken", PasswordHash: "hash"}
	assert.NoError(t, repo.Create(first))
	assert.NotZero(t, first.ID)

	// The unique index rejects the second insert; only one row survives.
	second := &models.User{FirstName: "C", LastName: "D", Username: "taken", PasswordHash: "hash"}
	err := repo.Create(second)
	assert.ErrorIs(t, err, models.ErrDuplicateUsername)

	users, err := repo.GetAll()
	assert.NoError(t, err)
	assert.Len(t, users, 1)
}

func TestGORMUserRepository_DeleteReturnsRecord(t *testing.T) {
	db := setupDB(t)
	repo := repositories.NewGORMUserRepository(db)
	orderRepo := repositories.NewGORMOrderRepository(db)

	user := &models.User{FirstName: "A", LastName: "B", Username: "deleteme", PasswordHash: "hash"}
	assert.NoError(t, repo.Create(user))
	assert.NoError(t, orderRepo.Create(&models.Order{UserID: user.ID, Status: models.OrderStatusActive}))

	deleted, err := repo.Delete(user.ID)
	assert.NoError(t, err)
	assert.Equal(t, "deleteme", deleted.Username)

	_, err = repo.GetByID(user.ID)
	assert.ErrorIs(t, err, models.ErrNotFound)

	// Deleting a user does not cascade to their orders.
	orders, err := orderRepo.GetAll()
	assert.NoError(t, err)
	assert.Len(t, orders, 1)

	_, err = repo.Delete(user.ID)
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestGORMProductRepository_GetByCategory(t *testing.T) {
	db := setupDB(t)
	repo := repositories.NewGORMProductRepository(db)

	assert.NoError(t, repo.Create(&models.Product{Name: "Laptop", Price: 1200, Category: "electronics"}))
	assert.NoError(t, repo.Create(&models.Product{Name: "Mug", Price: 9.5, Category: "kitchen"}))
	assert.NoError(t, repo.Create(&models.Product{Name: "Keyboard", Price: 75, Category: "electronics"}))

	electronics, err := repo.GetByCategory("electronics")
	assert.NoError(t, err)
	assert.Len(t, electronics, 2)

	// Exact, case-sensitive match.
	none, err := repo.GetByCategory("Electronics")
	assert.NoError(t, err)
	assert.Empty(t, none)
}

func TestGORMProductRepository_TopPopular(t *testing.T) {
	db := setupDB(t)
	productRepo := repositories.NewGORMProductRepository(db)
	orderRepo := repositories.NewGORMOrderRepository(db)

	quantities := map[string]int{"A": 10, "B": 5, "C": 15, "D": 8, "E": 7, "F": 2}
	names := []string{"A", "B", "C", "D", "E", "F"}
	products := make(map[string]*models.Product, len(names))
	for _, name := range names {
		p := &models.Product{Name: name, Price: 1}
		assert.NoError(t, productRepo.Create(p))
		products[name] = p
	}

	// Spread line items across orders of mixed status; ranking must count
	// them all.
	active := &models.Order{UserID: 1, Status: models.OrderStatusActive}
	complete := &models.Order{UserID: 1, Status: models.OrderStatusComplete}
	assert.NoError(t, orderRepo.Create(active))
	assert.NoError(t, orderRepo.Create(complete))

	for name, quantity := range quantities {
		half := quantity / 2
		if half > 0 {
			assert.NoError(t, orderRepo.AddProduct(&models.OrderProduct{
				OrderID: active.ID, ProductID: products[name].ID, Quantity: half,
			}))
		}
		assert.NoError(t, orderRepo.AddProduct(&models.OrderProduct{
			OrderID: complete.ID, ProductID: products[name].ID, Quantity: quantity - half,
		}))
	}

	ranked, err := productRepo.TopPopular(5)
	assert.NoError(t, err)
	assert.Len(t, ranked, 5)

	gotNames := make([]string, 0, len(ranked))
	gotTotals := make([]int64, 0, len(ranked))
	for _, p := range ranked {
		gotNames = append(gotNames, p.Name)
		gotTotals = append(gotTotals, p.TotalQuantity)
	}
	assert.Equal(t, []string{"C", "A", "D", "E", "B"}, gotNames)
	assert.Equal(t, []int64{15, 10, 8, 7, 5}, gotTotals)
}

func TestGORMProductRepository_TopPopularTiebreak(t *testing.T) {
	db := setupDB(t)
	productRepo := repositories.NewGORMProductRepository(db)
	orderRepo := repositories.NewGORMOrderRepository(db)

	first := &models.Product{Name: "First", Price: 1}
	second := &models.Product{Name: "Second", Price: 1}
	assert.NoError(t, productRepo.Create(first))
	assert.NoError(t, productRepo.Create(second))

	order := &models.Order{UserID: 1, Status: models.OrderStatusActive}
	assert.NoError(t, orderRepo.Create(order))
	assert.NoError(t, orderRepo.AddProduct(&models.OrderProduct{OrderID: order.ID, ProductID: second.ID, Quantity: 4}))
	assert.NoError(t, orderRepo.AddProduct(&models.OrderProduct{OrderID: order.ID, ProductID: first.ID, Quantity: 4}))

	// Equal totals rank by ascending product id.
	ranked, err := productRepo.TopPopular(5)
	assert.NoError(t, err)
	assert.Len(t, ranked, 2)
	assert.Equal(t, first.ID, ranked[0].ID)
	assert.Equal(t, second.ID, ranked[1].ID)
}

func TestGORMOrderRepository_CurrentActiveByUser(t *testing.T) {
	db := setupDB(t)
	repo := repositories.NewGORMOrderRepository(db)

	// No active order is a normal outcome.
	order, err := repo.CurrentActiveByUser(1)
	assert.NoError(t, err)
	assert.Nil(t, order)

	older := &models.Order{UserID: 1, Status: models.OrderStatusActive}
	newer := &models.Order{UserID: 1, Status: models.OrderStatusActive}
	otherUser := &models.Order{UserID: 2, Status: models.OrderStatusActive}
	assert.NoError(t, repo.Create(older))
	assert.NoError(t, repo.Create(newer))
	assert.NoError(t, repo.Create(otherUser))

	// The highest-id active order wins when several exist.
	order, err = repo.CurrentActiveByUser(1)
	assert.NoError(t, err)
	assert.Equal(t, newer.ID, order.ID)
}

func TestGORMOrderRepository_CompletedByUser(t *testing.T) {
	db := setupDB(t)
	repo := repositories.NewGORMOrderRepository(db)

	assert.NoError(t, repo.Create(&models.Order{UserID: 1, Status: models.OrderStatusComplete}))
	assert.NoError(t, repo.Create(&models.Order{UserID: 1, Status: models.OrderStatusActive}))
	assert.NoError(t, repo.Create(&models.Order{UserID: 1, Status: models.OrderStatusComplete}))
	assert.NoError(t, repo.Create(&models.Order{UserID: 2, Status: models.OrderStatusComplete}))

	completed, err := repo.CompletedByUser(1)
	assert.NoError(t, err)
	assert.Len(t, completed, 2)
	for _, order := range completed {
		assert.Equal(t, uint(1), order.UserID)
		assert.Equal(t, models.OrderStatusComplete, order.Status)
	}
}

func TestGORMOrderRepository_DeleteRemovesLineItems(t *testing.T) {
	db := setupDB(t)
	orderRepo := repositories.NewGORMOrderRepository(db)
	productRepo := repositories.NewGORMProductRepository(db)

	product := &models.Product{Name: "Mug", Price: 9.5}
	assert.NoError(t, productRepo.Create(product))

	order := &models.Order{UserID: 1, Status: models.OrderStatusActive}
	assert.NoError(t, orderRepo.Create(order))
	assert.NoError(t, orderRepo.AddProduct(&models.OrderProduct{OrderID: order.ID, ProductID: product.ID, Quantity: 3}))

	deleted, err := orderRepo.Delete(order.ID)
	assert.NoError(t, err)
	assert.Equal(t, order.ID, deleted.ID)

	_, err = orderRepo.GetByID(order.ID)
	assert.ErrorIs(t, err, models.ErrNotFound)

	var remaining int64
	assert.NoError(t, db.Model(&models.OrderProduct{}).Where("order_id = ?", order.ID).Count(&remaining).Error)
	assert.Zero(t, remaining)
}

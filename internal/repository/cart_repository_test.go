package repository

import (
	"sync"
	"testing"

	"github.com/martshop-next/internal/models"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

func newCartRepoTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file:"+t.Name()+"?mode=memory&cache=shared"), &gorm.Config{
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(&models.User{}, &models.Product{}, &models.CartItem{}); err != nil {
		t.Fatalf("auto migrate failed: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("get sql db failed: %v", err)
	}
	// 单连接串行化写入，避免内存库并发写返回 busy
	sqlDB.SetMaxOpenConns(1)
	return db
}

func TestMergeAddCreatesThenIncrements(t *testing.T) {
	db := newCartRepoTestDB(t)
	repo := NewCartRepository(db)

	if err := repo.MergeAdd(1, 10, 2); err != nil {
		t.Fatalf("first merge add failed: %v", err)
	}
	if err := repo.MergeAdd(1, 10, 3); err != nil {
		t.Fatalf("second merge add failed: %v", err)
	}

	item, err := repo.GetByUserAndProduct(1, 10)
	if err != nil {
		t.Fatalf("get item failed: %v", err)
	}
	if item == nil {
		t.Fatalf("expected item to exist")
	}
	if item.Quantity != 5 {
		t.Fatalf("expected quantity 5, got %d", item.Quantity)
	}

	var count int64
	if err := db.Model(&models.CartItem{}).Where("user_id = ? AND product_id = ?", 1, 10).Count(&count).Error; err != nil {
		t.Fatalf("count failed: %v", err)
	}
	if count != 1 {
		t.Fatalf("expected single row, got %d", count)
	}
}

func TestMergeAddConcurrentWritersKeepTotal(t *testing.T) {
	db := newCartRepoTestDB(t)
	repo := NewCartRepository(db)

	const writers = 8
	var wg sync.WaitGroup
	errCh := make(chan error, writers)
	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			errCh <- repo.MergeAdd(2, 20, 1)
		}()
	}
	wg.Wait()
	close(errCh)
	for err := range errCh {
		if err != nil {
			t.Fatalf("concurrent merge add failed: %v", err)
		}
	}

	item, err := repo.GetByUserAndProduct(2, 20)
	if err != nil {
		t.Fatalf("get item failed: %v", err)
	}
	if item == nil {
		t.Fatalf("expected item to exist")
	}
	if item.Quantity != writers {
		t.Fatalf("expected quantity %d, got %d", writers, item.Quantity)
	}
}

func TestIsUniqueViolation(t *testing.T) {
	db := newCartRepoTestDB(t)

	first := models.CartItem{UserID: 3, ProductID: 30, Quantity: 1}
	if err := db.Create(&first).Error; err != nil {
		t.Fatalf("create failed: %v", err)
	}
	dup := models.CartItem{UserID: 3, ProductID: 30, Quantity: 1}
	err := db.Create(&dup).Error
	if err == nil {
		t.Fatalf("expected unique violation")
	}
	if !IsUniqueViolation(err) {
		t.Fatalf("expected IsUniqueViolation to match, got %v", err)
	}
	if IsUniqueViolation(nil) {
		t.Fatalf("nil error must not match")
	}
}

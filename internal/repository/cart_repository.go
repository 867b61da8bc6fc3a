package repository

import (
	"errors"

	"github.com/martshop-next/internal/models"

	"gorm.io/gorm"
)

// CartRepository 购物车数据访问接口
type CartRepository interface {
	ListByUser(userID uint) ([]models.CartItem, error)
	GetByID(id uint) (*models.CartItem, error)
	GetByUserAndProduct(userID, productID uint) (*models.CartItem, error)
	MergeAdd(userID, productID uint, quantity int) error
	UpdateQuantity(id uint, quantity int) error
	Delete(id uint) error
}

// GormCartRepository GORM 实现
type GormCartRepository struct {
	db *gorm.DB
}

// NewCartRepository 创建购物车仓库
func NewCartRepository(db *gorm.DB) *GormCartRepository {
	return &GormCartRepository{db: db}
}

// ListByUser 获取用户购物车项
func (r *GormCartRepository) ListByUser(userID uint) ([]models.CartItem, error) {
	var items []models.CartItem
	if err := r.db.Preload("Product").Where("user_id = ?", userID).Order("id ASC").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// GetByID 根据 ID 获取购物车项
func (r *GormCartRepository) GetByID(id uint) (*models.CartItem, error) {
	var item models.CartItem
	if err := r.db.Preload("Product").First(&item, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &item, nil
}

// GetByUserAndProduct 按用户和商品获取购物车项
func (r *GormCartRepository) GetByUserAndProduct(userID, productID uint) (*models.CartItem, error) {
	var item models.CartItem
	err := r.db.Preload("Product").Where("user_id = ? AND product_id = ?", userID, productID).First(&item).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// MergeAdd 合并累加购物车项数量；不存在时创建。
// 先尝试原子 UPDATE（quantity = quantity + ?），未命中再 INSERT；
// INSERT 撞到 (user_id, product_id) 唯一索引说明有并发写入，重试一次 UPDATE。
func (r *GormCartRepository) MergeAdd(userID, productID uint, quantity int) error {
	increment := func() (int64, error) {
		result := r.db.Model(&models.CartItem{}).
			Where("user_id = ? AND product_id = ?", userID, productID).
			UpdateColumn("quantity", gorm.Expr("quantity + ?", quantity))
		return result.RowsAffected, result.Error
	}

	affected, err := increment()
	if err != nil {
		return err
	}
	if affected > 0 {
		return nil
	}

	item := models.CartItem{UserID: userID, ProductID: productID, Quantity: quantity}
	if err := r.db.Create(&item).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) || IsUniqueViolation(err) {
			if _, retryErr := increment(); retryErr != nil {
				return retryErr
			}
			return nil
		}
		return err
	}
	return nil
}

// UpdateQuantity 更新购物车项数量
func (r *GormCartRepository) UpdateQuantity(id uint, quantity int) error {
	return r.db.Model(&models.CartItem{}).Where("id = ?", id).UpdateColumn("quantity", quantity).Error
}

// Delete 删除购物车项
func (r *GormCartRepository) Delete(id uint) error {
	return r.db.Delete(&models.CartItem{}, id).Error
}

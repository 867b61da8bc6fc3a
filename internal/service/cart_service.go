package service

import (
	"github.com/martshop-next/internal/models"
	"github.com/martshop-next/internal/repository"
)

// CartService 购物车服务
type CartService struct {
	cartRepo    repository.CartRepository
	productRepo repository.ProductRepository
}

// NewCartService 创建购物车服务
func NewCartService(cartRepo repository.CartRepository, productRepo repository.ProductRepository) *CartService {
	return &CartService{
		cartRepo:    cartRepo,
		productRepo: productRepo,
	}
}

// ListByUser 获取用户购物车项
func (s *CartService) ListByUser(userID uint) ([]models.CartItem, error) {
	return s.cartRepo.ListByUser(userID)
}

// AddItem 添加商品到购物车，已存在时累加数量
func (s *CartService) AddItem(userID, productID uint, quantity int) (*models.CartItem, error) {
	if productID == 0 {
		return nil, ErrMissingProductID
	}
	product, err := s.productRepo.GetByID(productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, ErrNotFound
	}

	if quantity < 1 {
		quantity = 1
	}
	if err := s.cartRepo.MergeAdd(userID, productID, quantity); err != nil {
		return nil, err
	}

	item, err := s.cartRepo.GetByUserAndProduct(userID, productID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, ErrNotFound
	}
	return item, nil
}

// UpdateQuantity 更新购物车项数量，数量下限为 1；quantity 为 nil 时保持原数量
func (s *CartService) UpdateQuantity(userID, itemID uint, quantity *int) (*models.CartItem, error) {
	item, err := s.cartRepo.GetByID(itemID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, ErrNotFound
	}
	if item.UserID != userID {
		return nil, ErrNotOwner
	}
	if quantity == nil {
		return item, nil
	}

	q := *quantity
	if q < 1 {
		q = 1
	}
	if err := s.cartRepo.UpdateQuantity(item.ID, q); err != nil {
		return nil, err
	}
	item.Quantity = q
	return item, nil
}

// RemoveItem 删除购物车项
func (s *CartService) RemoveItem(userID, itemID uint) error {
	item, err := s.cartRepo.GetByID(itemID)
	if err != nil {
		return err
	}
	if item == nil {
		return ErrNotFound
	}
	if item.UserID != userID {
		return ErrNotOwner
	}
	return s.cartRepo.Delete(item.ID)
}

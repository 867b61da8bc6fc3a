package service

import (
	"strings"

	"github.com/martshop-next/internal/models"
	"github.com/martshop-next/internal/repository"
)

// ProductService 商品服务
type ProductService struct {
	productRepo repository.ProductRepository
}

// NewProductService 创建商品服务
func NewProductService(productRepo repository.ProductRepository) *ProductService {
	return &ProductService{productRepo: productRepo}
}

// ProductUpdate 商品更新字段，nil 表示不修改
type ProductUpdate struct {
	Title       *string
	Description *string
	PriceCents  *int64
	ImageURL    *string
}

// List 商品列表
func (s *ProductService) List() ([]models.Product, error) {
	return s.productRepo.List()
}

// GetByID 根据 ID 获取商品
func (s *ProductService) GetByID(id uint) (*models.Product, error) {
	product, err := s.productRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, ErrNotFound
	}
	return product, nil
}

// Create 创建商品，标题与价格为必填
func (s *ProductService) Create(title, description string, priceCents *int64, imageURL string) (*models.Product, error) {
	if strings.TrimSpace(title) == "" {
		return nil, ErrMissingTitle
	}
	if priceCents == nil {
		return nil, ErrMissingPrice
	}
	product := &models.Product{
		Title:       strings.TrimSpace(title),
		Description: description,
		PriceCents:  *priceCents,
		ImageURL:    imageURL,
	}
	if err := s.productRepo.Create(product); err != nil {
		return nil, err
	}
	product.RefreshPrice()
	return product, nil
}

// Update 更新商品（仅更新提供的字段）
func (s *ProductService) Update(id uint, update ProductUpdate) (*models.Product, error) {
	product, err := s.productRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, ErrNotFound
	}

	if update.Title != nil {
		if strings.TrimSpace(*update.Title) == "" {
			return nil, ErrMissingTitle
		}
		product.Title = strings.TrimSpace(*update.Title)
	}
	if update.Description != nil {
		product.Description = *update.Description
	}
	if update.PriceCents != nil {
		product.PriceCents = *update.PriceCents
	}
	if update.ImageURL != nil {
		product.ImageURL = *update.ImageURL
	}

	if err := s.productRepo.Update(product); err != nil {
		return nil, err
	}
	product.RefreshPrice()
	return product, nil
}

// Delete 删除商品及引用它的购物车项
func (s *ProductService) Delete(id uint) error {
	product, err := s.productRepo.GetByID(id)
	if err != nil {
		return err
	}
	if product == nil {
		return ErrNotFound
	}
	return s.productRepo.DeleteWithCart(id)
}

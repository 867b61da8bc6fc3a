package public

import (
	"errors"

	"github.com/martshop-next/internal/http/response"
	"github.com/martshop-next/internal/service"

	"github.com/gin-gonic/gin"
)

// CreateProductRequest 创建商品请求，price_cents 缺省视为非法输入
type CreateProductRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	PriceCents  *int64 `json:"price_cents"`
	ImageURL    string `json:"image_url"`
}

// UpdateProductRequest 更新商品请求，指针字段缺省表示不修改
type UpdateProductRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	PriceCents  *int64  `json:"price_cents"`
	ImageURL    *string `json:"image_url"`
}

// ListProducts 商品列表
func (h *Handler) ListProducts(c *gin.Context) {
	products, err := h.ProductService.List()
	if err != nil {
		respondError(c, response.CodeInternal, "list products failed", err)
		return
	}
	response.Success(c, gin.H{"products": products})
}

// GetProduct 商品详情
func (h *Handler) GetProduct(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	product, err := h.ProductService.GetByID(id)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			respondError(c, response.CodeNotFound, "product not found", nil)
			return
		}
		respondError(c, response.CodeInternal, "fetch product failed", err)
		return
	}
	response.Success(c, gin.H{"product": product})
}

// CreateProduct 创建商品
func (h *Handler) CreateProduct(c *gin.Context) {
	var req CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "invalid request body", err)
		return
	}

	product, err := h.ProductService.Create(req.Title, req.Description, req.PriceCents, req.ImageURL)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrMissingTitle):
			respondError(c, response.CodeBadRequest, "title is required", nil)
		case errors.Is(err, service.ErrMissingPrice):
			respondError(c, response.CodeBadRequest, "price_cents is required", nil)
		default:
			respondError(c, response.CodeInternal, "create product failed", err)
		}
		return
	}
	response.Created(c, gin.H{"product": product})
}

// UpdateProduct 更新商品
func (h *Handler) UpdateProduct(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req UpdateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "invalid request body", err)
		return
	}

	product, err := h.ProductService.Update(id, service.ProductUpdate{
		Title:       req.Title,
		Description: req.Description,
		PriceCents:  req.PriceCents,
		ImageURL:    req.ImageURL,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNotFound):
			respondError(c, response.CodeNotFound, "product not found", nil)
		case errors.Is(err, service.ErrMissingTitle):
			respondError(c, response.CodeBadRequest, "title is required", nil)
		default:
			respondError(c, response.CodeInternal, "update product failed", err)
		}
		return
	}
	response.Success(c, gin.H{"product": product})
}

// DeleteProduct 删除商品
func (h *Handler) DeleteProduct(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.ProductService.Delete(id); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			respondError(c, response.CodeNotFound, "product not found", nil)
			return
		}
		respondError(c, response.CodeInternal, "delete product failed", err)
		return
	}
	response.SuccessWithMsg(c, "product deleted", nil)
}

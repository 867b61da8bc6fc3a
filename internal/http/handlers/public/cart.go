package public

import (
	"errors"

	"github.com/martshop-next/internal/http/response"
	"github.com/martshop-next/internal/service"

	"github.com/gin-gonic/gin"
)

// AddCartItemRequest 添加购物车项请求
type AddCartItemRequest struct {
	ProductID uint `json:"product_id"`
	Quantity  int  `json:"quantity"`
}

// UpdateCartItemRequest 更新购物车项请求，未提供 quantity 时保持原数量
type UpdateCartItemRequest struct {
	Quantity *int `json:"quantity"`
}

// GetCart 获取购物车
func (h *Handler) GetCart(c *gin.Context) {
	uid, ok := getUserID(c)
	if !ok {
		return
	}

	items, err := h.CartService.ListByUser(uid)
	if err != nil {
		respondError(c, response.CodeInternal, "fetch cart failed", err)
		return
	}
	response.Success(c, gin.H{"items": items})
}

// AddCartItem 添加商品到购物车，已存在时累加数量
func (h *Handler) AddCartItem(c *gin.Context) {
	uid, ok := getUserID(c)
	if !ok {
		return
	}

	var req AddCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "invalid request body", err)
		return
	}

	item, err := h.CartService.AddItem(uid, req.ProductID, req.Quantity)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrMissingProductID):
			respondError(c, response.CodeBadRequest, "product_id is required", nil)
		case errors.Is(err, service.ErrNotFound):
			respondError(c, response.CodeNotFound, "product not found", nil)
		default:
			respondError(c, response.CodeInternal, "add cart item failed", err)
		}
		return
	}
	response.Created(c, gin.H{"item": item})
}

// UpdateCartItem 更新购物车项数量
func (h *Handler) UpdateCartItem(c *gin.Context) {
	uid, ok := getUserID(c)
	if !ok {
		return
	}
	itemID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req UpdateCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "invalid request body", err)
		return
	}

	item, err := h.CartService.UpdateQuantity(uid, itemID, req.Quantity)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNotFound):
			respondError(c, response.CodeNotFound, "cart item not found", nil)
		case errors.Is(err, service.ErrNotOwner):
			respondError(c, response.CodeForbidden, "not your cart item", nil)
		default:
			respondError(c, response.CodeInternal, "update cart item failed", err)
		}
		return
	}
	response.Success(c, gin.H{"item": item})
}

// DeleteCartItem 删除购物车项
func (h *Handler) DeleteCartItem(c *gin.Context) {
	uid, ok := getUserID(c)
	if !ok {
		return
	}
	itemID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.CartService.RemoveItem(uid, itemID); err != nil {
		switch {
		case errors.Is(err, service.ErrNotFound):
			respondError(c, response.CodeNotFound, "cart item not found", nil)
		case errors.Is(err, service.ErrNotOwner):
			respondError(c, response.CodeForbidden, "not your cart item", nil)
		default:
			respondError(c, response.CodeInternal, "delete cart item failed", err)
		}
		return
	}
	response.SuccessWithMsg(c, "cart item deleted", nil)
}

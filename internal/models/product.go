package models

import (
	"time"

	"gorm.io/gorm"
)

// Product 商品表
type Product struct {
	ID          uint      `gorm:"primarykey" json:"id"`                  // 主键
	Title       string    `gorm:"type:varchar(200);not null" json:"title"` // 标题
	Description string    `gorm:"type:text" json:"description"`          // 描述
	PriceCents  int64     `gorm:"not null;default:0" json:"price_cents"` // 价格（分，避免浮点误差）
	ImageURL    string    `gorm:"type:varchar(500)" json:"image_url"`    // 主图地址
	Price       Money     `gorm:"-" json:"price"`                        // 展示价格（仅结构，不写入数据库）
	CreatedAt   time.Time `gorm:"index" json:"created_at"`               // 创建时间
	UpdatedAt   time.Time `json:"updated_at"`                            // 更新时间
}

// TableName 指定表名
func (Product) TableName() string {
	return "products"
}

// AfterFind 查询后填充展示价格
func (p *Product) AfterFind(*gorm.DB) error {
	p.Price = MoneyFromCents(p.PriceCents)
	return nil
}

// RefreshPrice 按当前 PriceCents 重算展示价格
func (p *Product) RefreshPrice() {
	p.Price = MoneyFromCents(p.PriceCents)
}

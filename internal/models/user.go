package models

import (
	"time"
)

// User 用户表
type User struct {
	ID           uint      `gorm:"primarykey" json:"id"`                  // 主键
	Email        string    `gorm:"uniqueIndex;not null" json:"email"`     // 邮箱（登录凭证）
	PasswordHash string    `gorm:"not null" json:"-"`                     // 密码哈希（不返回给前端）
	Name         string    `gorm:"type:varchar(80)" json:"name"`          // 名
	Lastname     string    `gorm:"type:varchar(80)" json:"lastname"`      // 姓
	Address      string    `gorm:"type:varchar(200)" json:"address"`      // 收货地址
	IsActive     bool      `gorm:"not null;default:true" json:"is_active"` // 账号是否可用
	CreatedAt    time.Time `gorm:"index" json:"created_at"`               // 创建时间
	UpdatedAt    time.Time `json:"updated_at"`                            // 更新时间
}

// TableName 指定表名
func (User) TableName() string {
	return "users"
}

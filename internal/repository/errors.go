package repository

import (
	"strings"
)

// IsUniqueViolation 判断错误是否为唯一约束冲突（sqlite/postgres 文案差异较大，按关键字匹配）
func IsUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "unique") || strings.Contains(msg, "duplicate")
}

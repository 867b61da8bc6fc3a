package service

import "errors"

// 业务语义错误，由 handler 层映射为 HTTP 状态码
var (
	ErrInvalidEmail       = errors.New("邮箱格式不正确")
	ErrMissingCredentials = errors.New("邮箱和密码不能为空")
	ErrEmailExists        = errors.New("邮箱已被注册")
	ErrInvalidCredentials = errors.New("邮箱或密码错误")
	ErrNotFound           = errors.New("记录不存在")
	ErrNotOwner           = errors.New("无权操作该资源")
	ErrMissingTitle       = errors.New("商品标题不能为空")
	ErrMissingPrice       = errors.New("商品价格不能为空")
	ErrMissingProductID   = errors.New("缺少商品 ID")
)

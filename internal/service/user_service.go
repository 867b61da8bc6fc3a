package service

import (
	"net/mail"
	"strings"
	"time"

	"github.com/martshop-next/internal/models"
	"github.com/martshop-next/internal/repository"
)

// UserService 用户服务（注册、登录、资料维护）
type UserService struct {
	auth     *AuthService
	userRepo repository.UserRepository
}

// NewUserService 创建用户服务
func NewUserService(auth *AuthService, userRepo repository.UserRepository) *UserService {
	return &UserService{
		auth:     auth,
		userRepo: userRepo,
	}
}

// ProfileUpdate 资料更新字段，nil 表示不修改
type ProfileUpdate struct {
	Email    *string
	Password *string
	Name     *string
	Lastname *string
	Address  *string
}

// RegisterInput 注册入参，资料字段可选
type RegisterInput struct {
	Email    string
	Password string
	Name     string
	Lastname string
	Address  string
}

// Register 注册新用户
func (s *UserService) Register(input RegisterInput) (*models.User, error) {
	if strings.TrimSpace(input.Email) == "" || input.Password == "" {
		return nil, ErrMissingCredentials
	}
	normalized, err := normalizeEmail(input.Email)
	if err != nil {
		return nil, err
	}

	existing, err := s.userRepo.GetByEmail(normalized)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrEmailExists
	}

	hash, err := s.auth.HashPassword(input.Password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Email:        normalized,
		PasswordHash: hash,
		Name:         strings.TrimSpace(input.Name),
		Lastname:     strings.TrimSpace(input.Lastname),
		Address:      strings.TrimSpace(input.Address),
		IsActive:     true,
	}
	if err := s.userRepo.Create(user); err != nil {
		// 并发注册撞到邮箱唯一索引时同样按冲突处理
		if repository.IsUniqueViolation(err) {
			return nil, ErrEmailExists
		}
		return nil, err
	}
	return user, nil
}

// Authenticate 校验凭证并签发 Token
func (s *UserService) Authenticate(email, password string) (*models.User, string, time.Time, error) {
	if strings.TrimSpace(email) == "" || password == "" {
		return nil, "", time.Time{}, ErrMissingCredentials
	}
	normalized := strings.ToLower(strings.TrimSpace(email))

	user, err := s.userRepo.GetByEmail(normalized)
	if err != nil {
		return nil, "", time.Time{}, err
	}
	if user == nil {
		return nil, "", time.Time{}, ErrInvalidCredentials
	}
	if err := s.auth.VerifyPassword(user.PasswordHash, password); err != nil {
		return nil, "", time.Time{}, ErrInvalidCredentials
	}

	token, expiresAt, err := s.auth.GenerateJWT(user)
	if err != nil {
		return nil, "", time.Time{}, err
	}
	return user, token, expiresAt, nil
}

// GetByID 根据 ID 获取用户
func (s *UserService) GetByID(id uint) (*models.User, error) {
	user, err := s.userRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrNotFound
	}
	return user, nil
}

// List 用户列表
func (s *UserService) List() ([]models.User, error) {
	return s.userRepo.List()
}

// UpdateProfile 更新用户资料（仅更新提供的字段）
func (s *UserService) UpdateProfile(id uint, update ProfileUpdate) (*models.User, error) {
	user, err := s.userRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrNotFound
	}

	if update.Email != nil {
		normalized, err := normalizeEmail(*update.Email)
		if err != nil {
			return nil, err
		}
		if normalized != user.Email {
			taken, err := s.userRepo.EmailTaken(normalized, user.ID)
			if err != nil {
				return nil, err
			}
			if taken {
				return nil, ErrEmailExists
			}
			user.Email = normalized
		}
	}
	if update.Password != nil && *update.Password != "" {
		hash, err := s.auth.HashPassword(*update.Password)
		if err != nil {
			return nil, err
		}
		user.PasswordHash = hash
	}
	if update.Name != nil {
		user.Name = strings.TrimSpace(*update.Name)
	}
	if update.Lastname != nil {
		user.Lastname = strings.TrimSpace(*update.Lastname)
	}
	if update.Address != nil {
		user.Address = strings.TrimSpace(*update.Address)
	}

	if err := s.userRepo.Update(user); err != nil {
		if repository.IsUniqueViolation(err) {
			return nil, ErrEmailExists
		}
		return nil, err
	}
	return user, nil
}

// Delete 删除用户及其购物车
func (s *UserService) Delete(id uint) error {
	user, err := s.userRepo.GetByID(id)
	if err != nil {
		return err
	}
	if user == nil {
		return ErrNotFound
	}
	return s.userRepo.DeleteWithCart(id)
}

func normalizeEmail(email string) (string, error) {
	normalized := strings.ToLower(strings.TrimSpace(email))
	if normalized == "" {
		return "", ErrInvalidEmail
	}
	if _, err := mail.ParseAddress(normalized); err != nil {
		return "", ErrInvalidEmail
	}
	return normalized, nil
}

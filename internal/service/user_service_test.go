package service

import (
	"errors"
	"testing"

	"github.com/martshop-next/internal/models"
	"github.com/martshop-next/internal/repository"
	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file:"+t.Name()+"?mode=memory&cache=shared"), &gorm.Config{
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(&models.User{}, &models.Product{}, &models.CartItem{}); err != nil {
		t.Fatalf("auto migrate failed: %v", err)
	}
	return db
}

func newUserTestService(t *testing.T) (*UserService, *gorm.DB) {
	t.Helper()
	db := newTestDB(t)
	auth := NewAuthService(newAuthTestConfig())
	return NewUserService(auth, repository.NewUserRepository(db)), db
}

func TestRegisterAndAuthenticate(t *testing.T) {
	svc, _ := newUserTestService(t)

	user, err := svc.Register(RegisterInput{Email: "Test@Example.com", Password: "p"})
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}
	if user.Email != "test@example.com" {
		t.Fatalf("expected normalized email, got %s", user.Email)
	}
	if !user.IsActive {
		t.Fatalf("expected new user to be active")
	}

	got, token, _, err := svc.Authenticate("test@example.com", "p")
	if err != nil {
		t.Fatalf("authenticate failed: %v", err)
	}
	if got.ID != user.ID {
		t.Fatalf("expected user id %d, got %d", user.ID, got.ID)
	}
	if token == "" {
		t.Fatalf("expected non-empty token")
	}

	if _, _, _, err := svc.Authenticate("test@example.com", "wrong"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
	if _, _, _, err := svc.Authenticate("nobody@example.com", "p"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials for unknown email, got %v", err)
	}
}

func TestRegisterPersistsProfileFields(t *testing.T) {
	svc, _ := newUserTestService(t)

	user, err := svc.Register(RegisterInput{
		Email:    "ada@example.com",
		Password: "p",
		Name:     " Ada ",
		Lastname: "Lovelace",
		Address:  "1 Main St",
	})
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}
	if user.Name != "Ada" || user.Lastname != "Lovelace" || user.Address != "1 Main St" {
		t.Fatalf("unexpected profile fields: %q %q %q", user.Name, user.Lastname, user.Address)
	}

	got, err := svc.GetByID(user.ID)
	if err != nil {
		t.Fatalf("get by id failed: %v", err)
	}
	if got.Name != "Ada" || got.Lastname != "Lovelace" || got.Address != "1 Main St" {
		t.Fatalf("profile fields not persisted: %q %q %q", got.Name, got.Lastname, got.Address)
	}
}

func TestRegisterValidation(t *testing.T) {
	svc, _ := newUserTestService(t)

	if _, err := svc.Register(RegisterInput{Email: "", Password: "p"}); !errors.Is(err, ErrMissingCredentials) {
		t.Fatalf("expected ErrMissingCredentials for empty email, got %v", err)
	}
	if _, err := svc.Register(RegisterInput{Email: "a@example.com", Password: ""}); !errors.Is(err, ErrMissingCredentials) {
		t.Fatalf("expected ErrMissingCredentials for empty password, got %v", err)
	}
	if _, err := svc.Register(RegisterInput{Email: "not-an-email", Password: "p"}); !errors.Is(err, ErrInvalidEmail) {
		t.Fatalf("expected ErrInvalidEmail, got %v", err)
	}
}

func TestRegisterDuplicateEmailKeepsSingleRow(t *testing.T) {
	svc, db := newUserTestService(t)

	if _, err := svc.Register(RegisterInput{Email: "dup@example.com", Password: "p"}); err != nil {
		t.Fatalf("first register failed: %v", err)
	}
	if _, err := svc.Register(RegisterInput{Email: "dup@example.com", Password: "q"}); !errors.Is(err, ErrEmailExists) {
		t.Fatalf("expected ErrEmailExists, got %v", err)
	}

	var count int64
	if err := db.Model(&models.User{}).Where("email = ?", "dup@example.com").Count(&count).Error; err != nil {
		t.Fatalf("count users failed: %v", err)
	}
	if count != 1 {
		t.Fatalf("expected exactly 1 row, got %d", count)
	}
}

func TestUpdateProfilePartialPatch(t *testing.T) {
	svc, _ := newUserTestService(t)

	user, err := svc.Register(RegisterInput{Email: "patch@example.com", Password: "p"})
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}

	name := "Ada"
	updated, err := svc.UpdateProfile(user.ID, ProfileUpdate{Name: &name})
	if err != nil {
		t.Fatalf("update profile failed: %v", err)
	}
	if updated.Name != "Ada" {
		t.Fatalf("expected name Ada, got %s", updated.Name)
	}
	if updated.Email != "patch@example.com" {
		t.Fatalf("email must stay unchanged, got %s", updated.Email)
	}

	// 改密码后旧密码失效，新密码可登录
	newPass := "p2"
	if _, err := svc.UpdateProfile(user.ID, ProfileUpdate{Password: &newPass}); err != nil {
		t.Fatalf("update password failed: %v", err)
	}
	if _, _, _, err := svc.Authenticate("patch@example.com", "p"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected old password to fail, got %v", err)
	}
	if _, _, _, err := svc.Authenticate("patch@example.com", "p2"); err != nil {
		t.Fatalf("new password should work: %v", err)
	}
}

func TestUpdateProfileEmailConflict(t *testing.T) {
	svc, _ := newUserTestService(t)

	if _, err := svc.Register(RegisterInput{Email: "one@example.com", Password: "p"}); err != nil {
		t.Fatalf("register one failed: %v", err)
	}
	two, err := svc.Register(RegisterInput{Email: "two@example.com", Password: "p"})
	if err != nil {
		t.Fatalf("register two failed: %v", err)
	}

	taken := "one@example.com"
	if _, err := svc.UpdateProfile(two.ID, ProfileUpdate{Email: &taken}); !errors.Is(err, ErrEmailExists) {
		t.Fatalf("expected ErrEmailExists, got %v", err)
	}

	// 提交自己当前的邮箱不算冲突
	same := "two@example.com"
	if _, err := svc.UpdateProfile(two.ID, ProfileUpdate{Email: &same}); err != nil {
		t.Fatalf("same email must be accepted: %v", err)
	}
}

func TestDeleteUserCascadesCart(t *testing.T) {
	svc, db := newUserTestService(t)

	user, err := svc.Register(RegisterInput{Email: "gone@example.com", Password: "p"})
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}

	product := models.Product{Title: "t", PriceCents: 100}
	if err := db.Create(&product).Error; err != nil {
		t.Fatalf("create product failed: %v", err)
	}
	item := models.CartItem{UserID: user.ID, ProductID: product.ID, Quantity: 2}
	if err := db.Create(&item).Error; err != nil {
		t.Fatalf("create cart item failed: %v", err)
	}

	if err := svc.Delete(user.ID); err != nil {
		t.Fatalf("delete user failed: %v", err)
	}

	var count int64
	if err := db.Model(&models.CartItem{}).Where("user_id = ?", user.ID).Count(&count).Error; err != nil {
		t.Fatalf("count cart items failed: %v", err)
	}
	if count != 0 {
		t.Fatalf("expected cart items to be removed, got %d", count)
	}

	if err := svc.Delete(user.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for deleted user, got %v", err)
	}
}

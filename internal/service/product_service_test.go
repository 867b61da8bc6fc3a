package service

import (
	"errors"
	"testing"

	"github.com/martshop-next/internal/repository"
)

func newProductTestService(t *testing.T) *ProductService {
	t.Helper()
	db := newTestDB(t)
	return NewProductService(repository.NewProductRepository(db))
}

func int64Ptr(v int64) *int64 {
	return &v
}

func TestCreateProductRequiresTitleAndPrice(t *testing.T) {
	svc := newProductTestService(t)

	if _, err := svc.Create("  ", "d", int64Ptr(100), ""); !errors.Is(err, ErrMissingTitle) {
		t.Fatalf("expected ErrMissingTitle, got %v", err)
	}
	if _, err := svc.Create("NoPrice", "d", nil, ""); !errors.Is(err, ErrMissingPrice) {
		t.Fatalf("expected ErrMissingPrice, got %v", err)
	}

	product, err := svc.Create("Gadget", "desc", int64Ptr(1234), "https://example.com/g.jpg")
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if product.ID == 0 {
		t.Fatalf("expected assigned id")
	}
	if product.Price.String() != "12.34" {
		t.Fatalf("expected display price 12.34, got %s", product.Price.String())
	}
}

func TestUpdateProductPartialPatch(t *testing.T) {
	svc := newProductTestService(t)

	product, err := svc.Create("Gadget", "desc", int64Ptr(1000), "")
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	price := int64(2000)
	updated, err := svc.Update(product.ID, ProductUpdate{PriceCents: &price})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if updated.PriceCents != 2000 {
		t.Fatalf("expected price 2000, got %d", updated.PriceCents)
	}
	if updated.Title != "Gadget" {
		t.Fatalf("title must stay unchanged, got %s", updated.Title)
	}

	empty := " "
	if _, err := svc.Update(product.ID, ProductUpdate{Title: &empty}); !errors.Is(err, ErrMissingTitle) {
		t.Fatalf("expected ErrMissingTitle on blank title, got %v", err)
	}

	if _, err := svc.Update(product.ID+999, ProductUpdate{}); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestDeleteProduct(t *testing.T) {
	svc := newProductTestService(t)

	product, err := svc.Create("Gone", "", int64Ptr(100), "")
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if err := svc.Delete(product.ID); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if _, err := svc.GetByID(product.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}
	if err := svc.Delete(product.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound on second delete, got %v", err)
	}
}

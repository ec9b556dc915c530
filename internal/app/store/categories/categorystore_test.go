package categorystore

import (
	"errors"
	"testing"

	"github.com/dalemusser/hydrasite/internal/app/store/storeutil"
	"github.com/dalemusser/hydrasite/internal/domain/models"
	"github.com/dalemusser/hydrasite/internal/testutil"
	"go.mongodb.org/mongo-driver/bson"
)

func TestStore_CreateAndGetBySlug(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	cat, err := store.Create(ctx, models.ProductCategory{
		NameEN: "Automation",
		NameAR: "الأتمتة",
		Slug:   "automation",
		Order:  1,
	})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	got, err := store.GetBySlug(ctx, "automation")
	if err != nil {
		t.Fatalf("GetBySlug() error = %v", err)
	}
	if got.ID != cat.ID || got.NameAR != "الأتمتة" {
		t.Errorf("GetBySlug() = %+v, want id %d", got, cat.ID)
	}

	if _, err := store.GetBySlug(ctx, "missing"); !errors.Is(err, storeutil.ErrNotFound) {
		t.Errorf("GetBySlug(missing) error = %v, want ErrNotFound", err)
	}
}

func TestStore_Create_DuplicateSlug(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	cat := models.ProductCategory{NameEN: "A", NameAR: "أ", Slug: "dup"}
	if _, err := store.Create(ctx, cat); err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if _, err := store.Create(ctx, cat); !errors.Is(err, ErrDuplicateSlug) {
		t.Errorf("second Create() error = %v, want ErrDuplicateSlug", err)
	}
}

func TestStore_Update_RefreshesProducts(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	cat, err := store.Create(ctx, models.ProductCategory{NameEN: "Panels", NameAR: "لوحات", Slug: "panels"})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	p := models.Product{ID: 1, NameEN: "Panel", NameAR: "لوحة"}.WithCategory(cat)
	if _, err := db.Collection("products").InsertOne(ctx, p); err != nil {
		t.Fatalf("insert product: %v", err)
	}

	cat.NameEN = "Control Panels"
	cat.Slug = "control-panels"
	if err := store.Update(ctx, cat); err != nil {
		t.Fatalf("Update() error = %v", err)
	}

	var got models.Product
	if err := db.Collection("products").FindOne(ctx, bson.M{"_id": int64(1)}).Decode(&got); err != nil {
		t.Fatalf("find product: %v", err)
	}
	if got.CategorySlug != "control-panels" || got.CategoryNameEN != "Control Panels" {
		t.Errorf("product category = %q/%q, want control-panels/Control Panels", got.CategorySlug, got.CategoryNameEN)
	}
}

func TestStore_Delete_RemovesProducts(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	cat, err := store.Create(ctx, models.ProductCategory{NameEN: "Gone", NameAR: "محذوف", Slug: "gone"})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	p := models.Product{ID: 7, NameEN: "X", NameAR: "س"}.WithCategory(cat)
	if _, err := db.Collection("products").InsertOne(ctx, p); err != nil {
		t.Fatalf("insert product: %v", err)
	}

	if err := store.Delete(ctx, cat.ID); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	n, err := db.Collection("products").CountDocuments(ctx, bson.M{"category_id": cat.ID})
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if n != 0 {
		t.Errorf("products left = %d, want 0", n)
	}
}

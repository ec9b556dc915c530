package seeding

import (
	"testing"

	productstore "github.com/dalemusser/hydrasite/internal/app/store/products"
	servicestore "github.com/dalemusser/hydrasite/internal/app/store/services"
	settingsstore "github.com/dalemusser/hydrasite/internal/app/store/settings"
	"github.com/dalemusser/hydrasite/internal/app/store/storeutil"
	"github.com/dalemusser/hydrasite/internal/testutil"
	"go.uber.org/zap"
)

func TestSeedAll_Idempotent(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	if err := SeedAll(ctx, db, zap.NewNop()); err != nil {
		t.Fatalf("first SeedAll() error = %v", err)
	}
	if err := SeedAll(ctx, db, zap.NewNop()); err != nil {
		t.Fatalf("second SeedAll() error = %v", err)
	}

	services, total, err := servicestore.New(db).List(ctx, storeutil.ListQuery{})
	if err != nil {
		t.Fatalf("List services error = %v", err)
	}
	if total != int64(len(DefaultServices())) {
		t.Errorf("services total = %d, want %d", total, len(DefaultServices()))
	}
	if len(services) > 0 && services[0].TitleEN != "Smart Home" {
		t.Errorf("first service = %q, want Smart Home", services[0].TitleEN)
	}

	products, _, err := productstore.New(db).List(ctx, productstore.Filter{CategorySlug: "automation"}, storeutil.ListQuery{})
	if err != nil {
		t.Fatalf("List products error = %v", err)
	}
	if len(products) != 1 || products[0].NameEN != "PLC" {
		t.Fatalf("automation products = %+v, want [PLC]", products)
	}
	if products[0].CategoryNameAR != "الأتمتة" {
		t.Errorf("CategoryNameAR = %q, want the category copy", products[0].CategoryNameAR)
	}
}

func TestSeedAll_KeepsEditedSettings(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	store := settingsstore.New(db)
	edited := DefaultSettings()
	edited.Email = "sales@example.com"
	if err := store.Save(ctx, edited); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	if err := SeedAll(ctx, db, zap.NewNop()); err != nil {
		t.Fatalf("SeedAll() error = %v", err)
	}

	got, err := store.Get(ctx)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if got.Email != "sales@example.com" {
		t.Errorf("Email = %q, seeding should not overwrite saved settings", got.Email)
	}
}

func TestDefaultProducts_ReferenceKnownCategories(t *testing.T) {
	slugs := map[string]bool{}
	for _, c := range DefaultCategories() {
		slugs[c.Slug] = true
	}
	for _, p := range DefaultProducts() {
		if !slugs[p.CategorySlug] {
			t.Errorf("product %q references unknown category %q", p.Product.NameEN, p.CategorySlug)
		}
	}
}

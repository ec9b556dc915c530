package storeutil

import (
	"errors"
	"testing"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

func TestPaginate(t *testing.T) {
	opts := Paginate(10, 3)
	if *opts.Limit != 10 {
		t.Errorf("Limit = %d, want 10", *opts.Limit)
	}
	if *opts.Skip != 20 {
		t.Errorf("Skip = %d, want 20", *opts.Skip)
	}

	opts = Paginate(0, 0)
	if *opts.Limit != 20 || *opts.Skip != 0 {
		t.Errorf("Paginate(0,0) = limit %d skip %d, want 20/0", *opts.Limit, *opts.Skip)
	}
}

func TestListQuery_Normalized(t *testing.T) {
	tests := []struct {
		name         string
		in           ListQuery
		wantPage     int64
		wantPageSize int64
	}{
		{"zero values", ListQuery{}, 1, DefaultPageSize},
		{"negative page", ListQuery{Page: -2, PageSize: 10}, 1, 10},
		{"too large", ListQuery{Page: 2, PageSize: 10000}, 2, MaxPageSize},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.in.Normalized()
			if got.Page != tt.wantPage || got.PageSize != tt.wantPageSize {
				t.Errorf("Normalized() = %+v, want page %d size %d", got, tt.wantPage, tt.wantPageSize)
			}
		})
	}
}

func TestSort(t *testing.T) {
	tests := []struct {
		ordering string
		want     bson.D
	}{
		{"", bson.D{{Key: "order", Value: 1}, {Key: "title_en", Value: 1}, {Key: "_id", Value: 1}}},
		{"bogus", bson.D{{Key: "order", Value: 1}, {Key: "title_en", Value: 1}, {Key: "_id", Value: 1}}},
		{"-order", bson.D{{Key: "order", Value: -1}, {Key: "title_en", Value: 1}, {Key: "_id", Value: 1}}},
		{"-created_at", bson.D{{Key: "created_at", Value: -1}, {Key: "_id", Value: -1}}},
	}
	for _, tt := range tests {
		t.Run(tt.ordering, func(t *testing.T) {
			got := Sort(tt.ordering, "title_en")
			if len(got) != len(tt.want) {
				t.Fatalf("Sort(%q) = %v, want %v", tt.ordering, got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("Sort(%q)[%d] = %v, want %v", tt.ordering, i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestValidOrdering(t *testing.T) {
	for _, ok := range []string{"", "order", "-order", "created_at", "-created_at"} {
		if !ValidOrdering(ok) {
			t.Errorf("ValidOrdering(%q) = false, want true", ok)
		}
	}
	for _, bad := range []string{"name", "--order", "price"} {
		if ValidOrdering(bad) {
			t.Errorf("ValidOrdering(%q) = true, want false", bad)
		}
	}
}

func TestNotFound(t *testing.T) {
	if !errors.Is(NotFound(mongo.ErrNoDocuments), ErrNotFound) {
		t.Error("NotFound(ErrNoDocuments) should be ErrNotFound")
	}
	other := errors.New("boom")
	if NotFound(other) != other {
		t.Error("NotFound should pass other errors through")
	}
	if NotFound(nil) != nil {
		t.Error("NotFound(nil) should be nil")
	}
}

package menu

import (
	"errors"
	"testing"
)

func TestCategoryValid(t *testing.T) {
	tests := []struct {
		category Category
		want     bool
	}{
		{Starters, true},
		{MainCourse, true},
		{SideDishes, true},
		{Beverages, true},
		{Category(""), false},
		{Category("desserts"), false},
		{Category("Main_Course"), false},
	}

	for _, tt := range tests {
		t.Run(string(tt.category), func(t *testing.T) {
			if got := tt.category.Valid(); got != tt.want {
				t.Errorf("Category(%q).Valid() = %v, want %v", tt.category, got, tt.want)
			}
		})
	}
}

func TestNewCatalog_Validation(t *testing.T) {
	tests := []struct {
		name      string
		entries   []Entry
		wantErr   bool
		wantField string
	}{
		{
			name: "valid entries",
			entries: []Entry{
				{MenuItem: MenuItem{Name: "Steak", Price: 12.30}, Category: MainCourse},
				{MenuItem: MenuItem{Name: "Beer", Price: 3.50}, Category: Beverages},
			},
			wantErr: false,
		},
		{
			name:      "empty menu",
			entries:   nil,
			wantErr:   true,
			wantField: "items",
		},
		{
			name: "missing name",
			entries: []Entry{
				{MenuItem: MenuItem{Name: "", Price: 3.50}, Category: Beverages},
			},
			wantErr:   true,
			wantField: "items[0].name",
		},
		{
			name: "name too long",
			entries: []Entry{
				{MenuItem: MenuItem{Name: "Slow-Braised Heritage Pork Belly With Apple And Cider Jus", Price: 18.00}, Category: MainCourse},
			},
			wantErr:   true,
			wantField: "items[0].name",
		},
		{
			name: "negative price",
			entries: []Entry{
				{MenuItem: MenuItem{Name: "Steak", Price: -1}, Category: MainCourse},
			},
			wantErr:   true,
			wantField: "items[0].price",
		},
		{
			name: "price too high",
			entries: []Entry{
				{MenuItem: MenuItem{Name: "Steak", Price: 1000}, Category: MainCourse},
			},
			wantErr:   true,
			wantField: "items[0].price",
		},
		{
			name: "unknown category",
			entries: []Entry{
				{MenuItem: MenuItem{Name: "Cake", Price: 4.50}, Category: Category("desserts")},
			},
			wantErr:   true,
			wantField: "items[0].category",
		},
		{
			name: "duplicate name",
			entries: []Entry{
				{MenuItem: MenuItem{Name: "Steak", Price: 12.30}, Category: MainCourse},
				{MenuItem: MenuItem{Name: "Steak", Price: 9.99}, Category: Starters},
			},
			wantErr:   true,
			wantField: "items[1].name",
		},
		{
			name: "zero price allowed",
			entries: []Entry{
				{MenuItem: MenuItem{Name: "Tap Water", Price: 0}, Category: Beverages},
			},
			wantErr: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewCatalog(tt.entries)
			if (err != nil) != tt.wantErr {
				t.Fatalf("NewCatalog() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				var verr ValidationError
				if !errors.As(err, &verr) {
					t.Fatalf("error %v is not a ValidationError", err)
				}
				if verr.Field != tt.wantField {
					t.Errorf("error field = %q, want %q", verr.Field, tt.wantField)
				}
			}
		})
	}
}

func TestCatalogFind(t *testing.T) {
	catalog, err := NewCatalog([]Entry{
		{MenuItem: MenuItem{Name: "Steak", Price: 12.30}, Category: MainCourse},
		{MenuItem: MenuItem{Name: "Fries", Price: 4.20}, Category: SideDishes},
	})
	if err != nil {
		t.Fatalf("NewCatalog() error = %v", err)
	}

	entry, ok := catalog.Find("Fries")
	if !ok {
		t.Fatalf("Find(Fries) not found")
	}
	if entry.Category != SideDishes || entry.Price != 4.20 {
		t.Errorf("Find(Fries) = %+v, want side dish at 4.20", entry)
	}

	if _, ok := catalog.Find("Pizza"); ok {
		t.Errorf("Find(Pizza) found an item that is not on the menu")
	}

	if catalog.Len() != 2 {
		t.Errorf("Len() = %d, want 2", catalog.Len())
	}
}

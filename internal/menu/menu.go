package menu

import "fmt"

// Category identifies which section of an order a menu item belongs to.
type Category string

const (
	Starters   Category = "starters"
	MainCourse Category = "main_course"
	SideDishes Category = "side_dishes"
	Beverages  Category = "beverages"
)

// Categories returns the four order sections in menu order.
func Categories() [4]Category {
	return [4]Category{Starters, MainCourse, SideDishes, Beverages}
}

// Valid reports whether c is one of the four known categories.
func (c Category) Valid() bool {
	switch c {
	case Starters, MainCourse, SideDishes, Beverages:
		return true
	}
	return false
}

// MenuItem is an immutable dish description: a unique name and a unit price.
type MenuItem struct {
	Name  string  `json:"name" yaml:"name"`
	Price float64 `json:"price" yaml:"price"`
}

// Entry is a menu item together with the category it is listed under.
type Entry struct {
	MenuItem `yaml:",inline"`
	Category Category `json:"category" yaml:"category"`
}

// ValidationError describes a single invalid input field.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

const (
	maxNameLength = 50
	maxItemPrice  = 999.99
)

func validateEntry(e Entry, index int) error {
	prefix := fmt.Sprintf("items[%d]", index)

	if e.Name == "" {
		return ValidationError{
			Field:   prefix + ".name",
			Message: "item name is required",
		}
	}

	if len(e.Name) > maxNameLength {
		return ValidationError{
			Field:   prefix + ".name",
			Message: fmt.Sprintf("item name must be at most %d characters", maxNameLength),
		}
	}

	if e.Price < 0 {
		return ValidationError{
			Field:   prefix + ".price",
			Message: "item price must not be negative",
		}
	}

	if e.Price > maxItemPrice {
		return ValidationError{
			Field:   prefix + ".price",
			Message: fmt.Sprintf("item price must be at most %.2f", maxItemPrice),
		}
	}

	if !e.Category.Valid() {
		return ValidationError{
			Field:   prefix + ".category",
			Message: "category must be one of: starters, main_course, side_dishes, beverages",
		}
	}

	return nil
}

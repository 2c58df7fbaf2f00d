package compose

import (
	"fmt"

	"menu-composer/internal/menu"
	"menu-composer/internal/order"
)

// Pick names one menu item a customer wants. A zero Quantity means one.
type Pick struct {
	Item     string `json:"item" yaml:"item"`
	Quantity int    `json:"quantity,omitempty" yaml:"quantity,omitempty"`
}

// Request is a customer's full list of picks, however it arrived.
type Request struct {
	CustomerName string `json:"customer_name" yaml:"customer_name"`
	Picks        []Pick `json:"picks" yaml:"picks"`
}

const (
	maxCustomerName = 100
	maxPicks        = 20
	maxPickQuantity = 10
)

// Validate checks the request fields before any menu lookup happens.
func (r *Request) Validate() error {
	if r.CustomerName == "" {
		return menu.ValidationError{
			Field:   "customer_name",
			Message: "customer name is required",
		}
	}

	if len(r.CustomerName) > maxCustomerName {
		return menu.ValidationError{
			Field:   "customer_name",
			Message: fmt.Sprintf("customer name must be at most %d characters", maxCustomerName),
		}
	}

	if len(r.Picks) == 0 {
		return menu.ValidationError{
			Field:   "picks",
			Message: "picks cannot be empty",
		}
	}

	if len(r.Picks) > maxPicks {
		return menu.ValidationError{
			Field:   "picks",
			Message: fmt.Sprintf("a maximum of %d picks is allowed", maxPicks),
		}
	}

	for i, pick := range r.Picks {
		if pick.Item == "" {
			return menu.ValidationError{
				Field:   fmt.Sprintf("picks[%d].item", i),
				Message: "item name is required",
			}
		}
		if pick.Quantity < 0 {
			return menu.ValidationError{
				Field:   fmt.Sprintf("picks[%d].quantity", i),
				Message: "quantity must not be negative",
			}
		}
		if pick.Quantity > maxPickQuantity {
			return menu.ValidationError{
				Field:   fmt.Sprintf("picks[%d].quantity", i),
				Message: fmt.Sprintf("quantity must be at most %d", maxPickQuantity),
			}
		}
	}

	return nil
}

// Source is anything a compose request can be read from: a file on disk,
// an AMQP delivery, a test fixture.
type Source interface {
	RequestID() string
	Request() (*Request, error)
}

// Compose resolves a request's picks against the menu and drives the
// builder to assemble the order. Picks for the same item accumulate into
// one line item.
func Compose(src Source, catalog *menu.Catalog, b *order.Builder) (*order.Order, error) {
	req, err := src.Request()
	if err != nil {
		return nil, err
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}

	b.Reset()
	for _, pick := range req.Picks {
		entry, ok := catalog.Find(pick.Item)
		if !ok {
			return nil, fmt.Errorf("item %q is not on the menu", pick.Item)
		}
		quantity := pick.Quantity
		if quantity == 0 {
			quantity = 1
		}
		for n := 0; n < quantity; n++ {
			b.AddItem(entry.MenuItem, entry.Category)
		}
	}

	result, ok := b.Result()
	if !ok {
		return nil, fmt.Errorf("no order in progress after compose")
	}
	return result, nil
}

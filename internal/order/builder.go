package order

import "menu-composer/internal/menu"

// Builder assembles one Order at a time. Reset starts a fresh order,
// AddItem grows it, Result hands it out. A builder with no order in
// progress ignores AddItem rather than inventing an order on its own.
//
// A Builder is not safe for concurrent use; give each order-in-progress
// its own builder.
type Builder struct {
	order *Order
}

// NewBuilder returns a builder with no order in progress.
func NewBuilder() *Builder {
	return &Builder{}
}

// Reset discards any in-progress order and starts a new, empty one.
func (b *Builder) Reset() {
	b.order = &Order{}
}

// AddItem adds one unit of item to the category's sequence. If the item is
// already present there, its quantity is incremented in place and it keeps
// its position. Without an order in progress the call is a no-op.
func (b *Builder) AddItem(item menu.MenuItem, c menu.Category) {
	if b.order == nil {
		return
	}
	b.order.add(item, c)
}

// Result returns the in-progress order, or ok=false when none has been
// started. The builder keeps the order; it is not reset by this call.
func (b *Builder) Result() (*Order, bool) {
	if b.order == nil {
		return nil, false
	}
	return b.order, true
}

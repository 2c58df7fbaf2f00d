package order

import "menu-composer/internal/menu"

// LineItem is N units of one menu item. Quantity grows as the same item is
// added again; the embedded item itself never changes.
type LineItem struct {
	Item     menu.MenuItem `json:"item"`
	Quantity int           `json:"quantity"`
}

// Order holds one ordered sequence of line items per menu category.
// The total is always derived from the lines, never stored.
type Order struct {
	Starters   []LineItem `json:"starters"`
	MainCourse []LineItem `json:"main_course"`
	SideDishes []LineItem `json:"side_dishes"`
	Beverages  []LineItem `json:"beverages"`
}

// lines maps a category to its sequence. Returns nil for a value outside
// the four known categories, which callers treat as "do nothing".
func (o *Order) lines(c menu.Category) *[]LineItem {
	switch c {
	case menu.Starters:
		return &o.Starters
	case menu.MainCourse:
		return &o.MainCourse
	case menu.SideDishes:
		return &o.SideDishes
	case menu.Beverages:
		return &o.Beverages
	}
	return nil
}

// Items returns the line items for a category in first-insertion order.
func (o *Order) Items(c menu.Category) []LineItem {
	if seq := o.lines(c); seq != nil {
		return *seq
	}
	return nil
}

func (o *Order) add(item menu.MenuItem, c menu.Category) {
	seq := o.lines(c)
	if seq == nil {
		return
	}
	for i := range *seq {
		if (*seq)[i].Item.Name == item.Name {
			(*seq)[i].Quantity++
			return
		}
	}
	*seq = append(*seq, LineItem{Item: item, Quantity: 1})
}

// TotalPrice sums unit price times quantity over every line item.
func (o *Order) TotalPrice() float64 {
	total := 0.0
	for _, c := range menu.Categories() {
		for _, line := range o.Items(c) {
			total += line.Item.Price * float64(line.Quantity)
		}
	}
	return total
}

// LineCount returns the number of distinct line items across all categories.
func (o *Order) LineCount() int {
	count := 0
	for _, c := range menu.Categories() {
		count += len(o.Items(c))
	}
	return count
}

// Receipt is the summary handed back to the caller once an order is composed.
type Receipt struct {
	Items       *Order  `json:"items"`
	LineCount   int     `json:"line_count"`
	TotalAmount float64 `json:"total_amount"`
}

// Receipt builds the order summary.
func (o *Order) Receipt() Receipt {
	return Receipt{
		Items:       o,
		LineCount:   o.LineCount(),
		TotalAmount: o.TotalPrice(),
	}
}

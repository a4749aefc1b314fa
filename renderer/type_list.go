package renderer

import "github.com/etnz/wallets"

// List is the holdings list page.
// Numbers use the exact decimal types so that they already know how to print themselves.
type List struct {
	// TotalBalance is the sum of all holding values.
	TotalBalance wallets.Money `json:"totalBalance"`
	// Count is the number of holdings.
	Count int `json:"count"`
	// Rows are the holdings in display order.
	Rows []ListRow `json:"rows"`
}

// ListRow is one activatable row of the list.
type ListRow struct {
	ID      string           `json:"id"`
	Initial string           `json:"initial"`
	Name    string           `json:"name"`
	Symbol  string           `json:"symbol"`
	Balance wallets.Quantity `json:"balance"`
	Value   wallets.Money    `json:"value"`
	Change  wallets.Percent  `json:"change"`
	IsUp    bool             `json:"isUp"`
	Color   string           `json:"color,omitempty"`

	// Marker is printed before the initial, interactive renderers use it for the cursor.
	Marker string `json:"-"`
}

// NewList creates the List of the holdings.
func NewList(hs wallets.Holdings) *List {
	l := &List{
		TotalBalance: hs.TotalValue(),
		Count:        hs.Len(),
		Rows:         make([]ListRow, 0, hs.Len()),
	}
	for _, h := range hs.All() {
		l.Rows = append(l.Rows, ListRow{
			ID:      h.ID,
			Initial: h.Initial(),
			Name:    h.Name,
			Symbol:  h.Symbol,
			Balance: h.Balance,
			Value:   h.Value,
			Change:  h.Change,
			IsUp:    h.IsUp(),
			Color:   h.Color,
		})
	}
	return l
}

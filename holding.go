package wallets

import (
	"errors"
	"fmt"
)

var (
	// ErrDuplicateHolding is returned when two holdings share the same identifier.
	ErrDuplicateHolding = errors.New("duplicate holding identifier")
	// ErrInvalidHolding is returned for a holding that breaks a field constraint.
	ErrInvalidHolding = errors.New("invalid holding")
)

// Holding is one cryptocurrency position shown on the wallets page.
type Holding struct {
	ID      string   // unique key
	Name    string   // display name, e.g. "Bitcoin"
	Symbol  string   // ticker, e.g. "BTC"
	Balance Quantity // in the coin's native unit
	Value   Money    // in the reference fiat currency
	Address string   // chain specific, never validated
	Color   string   // display color token
	Change  Percent  // 24h change
}

// IsUp reports whether the 24h change is zero or positive.
// The sign is always derived from Change, never stored.
func (h Holding) IsUp() bool { return h.Change.IsUp() }

// Initial returns the first letter of the symbol, used as a badge.
func (h Holding) Initial() string {
	for _, r := range h.Symbol {
		return string(r)
	}
	return ""
}

func (h Holding) validate() error {
	if h.ID == "" {
		return fmt.Errorf("%w: empty identifier", ErrInvalidHolding)
	}
	if h.Balance.IsNegative() {
		return fmt.Errorf("%w %q: negative balance %s", ErrInvalidHolding, h.ID, h.Balance)
	}
	if h.Value.IsNegative() {
		return fmt.Errorf("%w %q: negative value %s", ErrInvalidHolding, h.ID, h.Value)
	}
	return nil
}

// Holdings is an ordered collection of holdings with unique identifiers.
// The order is the display order.
type Holdings struct {
	items []Holding
}

// NewHoldings returns a collection of holdings in the given order.
// It fails if an identifier is empty or used twice, or if a balance or a value is negative.
// All holdings must share the same value currency.
func NewHoldings(hs ...Holding) (Holdings, error) {
	seen := make(map[string]struct{}, len(hs))
	currency := ""
	for _, h := range hs {
		if err := h.validate(); err != nil {
			return Holdings{}, err
		}
		if _, exists := seen[h.ID]; exists {
			return Holdings{}, fmt.Errorf("%w: %q", ErrDuplicateHolding, h.ID)
		}
		seen[h.ID] = struct{}{}
		if currency == "" {
			currency = h.Value.Currency()
		} else if c := h.Value.Currency(); c != "" && c != currency {
			return Holdings{}, fmt.Errorf("%w %q: value in %s, previous holdings are in %s", ErrInvalidHolding, h.ID, c, currency)
		}
	}
	items := make([]Holding, len(hs))
	copy(items, hs)
	return Holdings{items: items}, nil
}

// Len returns the number of holdings.
func (s Holdings) Len() int { return len(s.items) }

// All returns a copy of the holdings in display order.
func (s Holdings) All() []Holding {
	out := make([]Holding, len(s.items))
	copy(out, s.items)
	return out
}

// Find returns the holding with the given identifier, ok is false if there is none.
func (s Holdings) Find(id string) (Holding, bool) {
	for _, h := range s.items {
		if h.ID == id {
			return h, true
		}
	}
	return Holding{}, false
}

// IDs returns the identifiers in display order.
func (s Holdings) IDs() []string {
	ids := make([]string, len(s.items))
	for i, h := range s.items {
		ids[i] = h.ID
	}
	return ids
}

// TotalValue returns the sum of all holding values.
// An empty collection is worth zero in the DefaultCurrency.
func (s Holdings) TotalValue() Money {
	total := M(0, "")
	for _, h := range s.items {
		total = total.Add(h.Value)
	}
	if total.Currency() == "" {
		total.cur = DefaultCurrency
	}
	return total
}

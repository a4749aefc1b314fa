package renderer

import (
	"github.com/etnz/wallets"
)

// Detail is the detail page of one holding.
type Detail struct {
	ID      string           `json:"id"`
	Initial string           `json:"initial"`
	Name    string           `json:"name"`
	Symbol  string           `json:"symbol"`
	Balance wallets.Quantity `json:"balance"`
	Value   wallets.Money    `json:"value"`
	Change  wallets.Percent  `json:"change"`
	IsUp    bool             `json:"isUp"`
	Address string           `json:"address"`
	Color   string           `json:"color,omitempty"`
	// Copied is the copy feedback flag at rendering time.
	Copied bool `json:"copied"`
	// QR is a text QR code of the address, empty unless requested.
	QR string `json:"-"`
}

// NewDetail creates the Detail of a mounted detail view.
func NewDetail(d *wallets.Detail, opts PageOptions) *Detail {
	h := d.Holding()
	out := &Detail{
		ID:      h.ID,
		Initial: h.Initial(),
		Name:    h.Name,
		Symbol:  h.Symbol,
		Balance: h.Balance,
		Value:   h.Value,
		Change:  h.Change,
		IsUp:    h.IsUp(),
		Address: h.Address,
		Color:   h.Color,
		Copied:  d.Copied(),
	}
	if opts.QR {
		// a QR code is decoration, the address is printed anyway.
		out.QR, _ = QRCode(h.Address)
	}
	return out
}

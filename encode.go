package wallets

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/PaesslerAG/jsonpath"
	"github.com/shopspring/decimal"
)

// RootPath is the JSONPath of a document that is directly the holdings array.
const RootPath = "$"

// jholding is a holding as read from a JSON document.
type jholding struct {
	ID       string           `json:"id"`
	Name     string           `json:"name"`
	Symbol   string           `json:"symbol"`
	Balance  decimal.Decimal  `json:"balance"`
	Value    *decimal.Decimal `json:"value"`
	USDValue *decimal.Decimal `json:"usdValue"`
	Address  string           `json:"address"`
	Color    string           `json:"color"`
	Change   float64          `json:"change"`
	IsUp     *bool            `json:"isUp"`
}

// holding converts the JSON holding, currency is the currency of the value.
func (j jholding) holding(currency string) (Holding, error) {
	value := decimal.Zero
	switch {
	case j.Value != nil:
		value = *j.Value
	case j.USDValue != nil:
		value = *j.USDValue
	}
	h := Holding{
		ID:      j.ID,
		Name:    j.Name,
		Symbol:  j.Symbol,
		Balance: Q(j.Balance),
		Value:   M(value, currency),
		Address: j.Address,
		Color:   j.Color,
		Change:  Percent(j.Change),
	}
	// isUp is redundant with change, it is only checked.
	if j.IsUp != nil && *j.IsUp != h.IsUp() {
		return Holding{}, fmt.Errorf("%w %q: isUp is %v but change is %s", ErrInvalidHolding, j.ID, *j.IsUp, h.Change)
	}
	return h, nil
}

// DecodeHoldings reads a JSON document from r and decodes the array of holdings found at path.
//
// path is a JSONPath expression (e.g. "$.wallets"), RootPath when the document is the array itself.
// Values are in the given currency.
func DecodeHoldings(r io.Reader, path, currency string) (Holdings, error) {
	if path == "" {
		path = RootPath
	}
	if currency == "" {
		currency = DefaultCurrency
	}

	var doc any
	dec := json.NewDecoder(r)
	dec.UseNumber() // keep numbers exact until they reach decimal.
	if err := dec.Decode(&doc); err != nil {
		return Holdings{}, fmt.Errorf("error decoding holdings document: %w", err)
	}

	jval, err := jsonpath.Get(path, doc)
	if err != nil {
		return Holdings{}, fmt.Errorf("error evaluating %q: %w", path, err)
	}
	if _, ok := jval.([]any); !ok {
		return Holdings{}, fmt.Errorf("error evaluating %q: not an array but %T", path, jval)
	}

	// The selected node is re-encoded so that each holding goes through the typed decoder.
	raw, err := json.Marshal(jval)
	if err != nil {
		return Holdings{}, fmt.Errorf("error re-encoding %q: %w", path, err)
	}
	var list []jholding
	if err := json.NewDecoder(bytes.NewReader(raw)).Decode(&list); err != nil {
		return Holdings{}, fmt.Errorf("error decoding holdings at %q: %w", path, err)
	}

	hs := make([]Holding, 0, len(list))
	for _, j := range list {
		h, err := j.holding(currency)
		if err != nil {
			return Holdings{}, err
		}
		hs = append(hs, h)
	}
	return NewHoldings(hs...)
}

// DecodeHoldingsFile is DecodeHoldings on the content of a file.
func DecodeHoldingsFile(filename, path, currency string) (Holdings, error) {
	f, err := os.Open(filename)
	if err != nil {
		return Holdings{}, err
	}
	defer f.Close()

	hs, err := DecodeHoldings(f, path, currency)
	if err != nil {
		return Holdings{}, fmt.Errorf("error in %q: %w", filename, err)
	}
	return hs, nil
}

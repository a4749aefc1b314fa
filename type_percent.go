package wallets

import "strconv"

// Percent is a percent change, 3.15 means +3.15%.
type Percent float64

// IsUp reports whether the change is zero or positive.
func (p Percent) IsUp() bool { return p >= 0 }

// String returns the shortest representation of the percent, e.g. "0.32%".
func (p Percent) String() string {
	if p == 0 {
		p = 0 // drops the sign of -0
	}
	return strconv.FormatFloat(float64(p), 'f', -1, 64) + "%"
}

// SignedString is like String with an explicit "+" for changes that are up.
func (p Percent) SignedString() string {
	if p.IsUp() {
		return "+" + p.String()
	}
	return p.String()
}

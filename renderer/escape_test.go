package renderer

import (
	"strings"
	"testing"

	"github.com/etnz/wallets"
)

func TestEscapeMarkdown(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"Bitcoin", "Bitcoin"},
		{"Foo | Bar", `Foo \| Bar`},
		{"*star*", `\*star\*`},
		{"a_b`c", "a\\_b\\`c"},
		{`back\slash`, `back\\slash`},
		{"-X", `\-X`},
		{"1. one", `1\. one`},
		{"Wrapped (W)", "Wrapped (W)"},
	}
	for _, tt := range tests {
		if got := escapeMarkdown(tt.in); got != tt.want {
			t.Errorf("escapeMarkdown(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestCodeSpan(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"0x742d", "`0x742d`"},
		{"a`b", "``a`b``"},
		{"a``b`", "``` a``b` ```"},
	}
	for _, tt := range tests {
		if got := codeSpan(tt.in); got != tt.want {
			t.Errorf("codeSpan(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func oddHoldings(t *testing.T) wallets.Holdings {
	t.Helper()
	hs, err := wallets.NewHoldings(wallets.Holding{
		ID:      "foo",
		Name:    "Foo | Bar",
		Symbol:  "F*",
		Balance: wallets.Q(2),
		Value:   wallets.M(1, "USD"),
		Address: "ab`c|d",
		Change:  2,
	})
	if err != nil {
		t.Fatal(err)
	}
	return hs
}

func TestHTML_HoldingFieldsVerbatim(t *testing.T) {
	html, err := HTML(RenderList(NewList(oddHoldings(t))))
	if err != nil {
		t.Fatalf("HTML() error = %v", err)
	}
	for _, want := range []string{"Foo | Bar</td>", "2 F*</td>", "$1.00</td>", "+2%</td>"} {
		if !strings.Contains(html, want) {
			t.Errorf("HTML() does not contain %q:\n%s", want, html)
		}
	}
	body := html[strings.Index(html, "<tbody>"):]
	if got := strings.Count(body, "<td"); got != 5 {
		t.Errorf("row has %d cells, want 5:\n%s", got, html)
	}
}

func TestHTML_DetailFieldsVerbatim(t *testing.T) {
	v := wallets.NewView(oddHoldings(t))
	v.Select("foo")
	html, err := HTML(RenderDetail(NewDetail(v.Detail(), PageOptions{})))
	if err != nil {
		t.Fatalf("HTML() error = %v", err)
	}
	for _, want := range []string{"<h1>Foo | Bar</h1>", "<p>F*</p>", "<strong>2 F*</strong>", "<code>ab`c|d</code>"} {
		if !strings.Contains(html, want) {
			t.Errorf("HTML() does not contain %q:\n%s", want, html)
		}
	}
}

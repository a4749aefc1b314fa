package renderer

import (
	"context"
	"encoding/json"
	"flag"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/etnz/wallets"
)

var fixGolden = flag.Bool("fix-golden", false, "if true, update failing golden .md files with the received output")

func TestFixGoldenIsOff(t *testing.T) {
	if *fixGolden {
		t.Fatal("-fix-golden is enabled. This flag should only be used for updating test fixtures and must be disabled for regular tests.")
	}
}

// checkGolden compares got with the content of testdata/golden.
func checkGolden(t *testing.T, golden, got string) {
	t.Helper()
	path := filepath.Join("testdata", golden)
	want, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read golden file %q: %v", path, err)
	}
	if got == string(want) {
		return
	}
	if *fixGolden {
		if err := os.WriteFile(path, []byte(got), 0644); err != nil {
			t.Fatalf("failed to fix golden file %q: %v", path, err)
		}
		t.Logf("fixed golden file %q", path)
		return
	}
	t.Errorf("rendered output mismatch for %q\n--- got ---\n%s\n--- want ---\n%s", golden, got, want)
}

// idleClock never runs the calls it schedules.
type idleClock struct{}

type idleTimer struct{}

func (idleClock) AfterFunc(time.Duration, func()) wallets.Timer { return idleTimer{} }
func (idleTimer) Stop() bool                                  { return true }

func okClipboard() wallets.Clipboard {
	return wallets.ClipboardFunc(func(context.Context, string) error { return nil })
}

func TestRenderList(t *testing.T) {
	checkGolden(t, "list.md", RenderList(NewList(wallets.Sample())))
}

func TestRenderDetail(t *testing.T) {
	v := wallets.NewView(wallets.Sample(), wallets.WithClipboard(okClipboard()), wallets.WithClock(idleClock{}))

	v.Select("bitcoin")
	checkGolden(t, "detail_bitcoin.md", RenderPage(v, PageOptions{}))

	v.Back()
	v.Select("ethereum")
	v.Detail().CopyAddress(context.Background())
	checkGolden(t, "detail_ethereum_copied.md", RenderPage(v, PageOptions{}))
}

func TestRenderDetail_Fields(t *testing.T) {
	v := wallets.NewView(wallets.Sample())
	for _, h := range wallets.Sample().All() {
		v.Select(h.ID)
		md := RenderPage(v, PageOptions{})
		for _, want := range []string{h.Name, h.Symbol, h.Balance.String(), h.Address} {
			if !strings.Contains(md, want) {
				t.Errorf("detail of %s does not contain %q", h.ID, want)
			}
		}
	}
}

func TestRenderPage(t *testing.T) {
	v := wallets.NewView(wallets.Sample())
	if got := RenderPage(v, PageOptions{}); !strings.HasPrefix(got, "# Wallets\n") {
		t.Errorf("list page starts with %q, want the wallets title", firstLine(got))
	}

	v.Select("dogecoin")
	if got := RenderPage(v, PageOptions{}); got != "" {
		t.Errorf("unknown holding rendered %q, want nothing", got)
	}

	v.Back()
	if got := RenderPage(v, PageOptions{}); !strings.HasPrefix(got, "# Wallets\n") {
		t.Errorf("page after Back() starts with %q, want the wallets title", firstLine(got))
	}
}

func TestRenderDetail_QR(t *testing.T) {
	v := wallets.NewView(wallets.Sample())
	v.Select("bitcoin")
	md := RenderPage(v, PageOptions{QR: true})
	if !strings.Contains(md, "```text\n") {
		t.Errorf("detail with QR has no text block:\n%s", md)
	}
	if !strings.Contains(md, "█") && !strings.Contains(md, "▀") && !strings.Contains(md, "▄") {
		t.Errorf("detail with QR has no block characters:\n%s", md)
	}
}

func TestListSingular(t *testing.T) {
	h, _ := wallets.Sample().Find("solana")
	hs, err := wallets.NewHoldings(h)
	if err != nil {
		t.Fatal(err)
	}
	md := RenderList(NewList(hs))
	if !strings.Contains(md, "\n1 wallet\n") {
		t.Errorf("single holding list does not say %q:\n%s", "1 wallet", md)
	}
	if !strings.Contains(md, "**$4,051.35**") {
		t.Errorf("single holding list total is not the holding value:\n%s", md)
	}
}

func TestHTML(t *testing.T) {
	html, err := HTML(RenderList(NewList(wallets.Sample())))
	if err != nil {
		t.Fatalf("HTML() error = %v", err)
	}
	for _, want := range []string{"<h1>Wallets</h1>", "<strong>$38,587.92</strong>", "<table>", "Cardano</td>"} {
		if !strings.Contains(html, want) {
			t.Errorf("HTML() does not contain %q:\n%s", want, html)
		}
	}
}

func TestTerminal(t *testing.T) {
	out, err := Terminal(RenderList(NewList(wallets.Sample())), "notty", 100)
	if err != nil {
		t.Fatalf("Terminal() error = %v", err)
	}
	if !strings.Contains(out, "$38,587.92") {
		t.Errorf("Terminal() lost the total balance:\n%s", out)
	}
}

func TestListJSON(t *testing.T) {
	b, err := json.Marshal(NewList(wallets.Sample()))
	if err != nil {
		t.Fatalf("json.Marshal() error = %v", err)
	}
	var got struct {
		TotalBalance struct {
			Currency string `json:"currency"`
			Amount   string `json:"amount"`
		} `json:"totalBalance"`
		Count int `json:"count"`
		Rows  []struct {
			ID string `json:"id"`
		} `json:"rows"`
	}
	if err := json.Unmarshal(b, &got); err != nil {
		t.Fatalf("json.Unmarshal() error = %v", err)
	}
	if got.TotalBalance.Amount != "38587.92" || got.TotalBalance.Currency != "USD" {
		t.Errorf("totalBalance = %+v, want 38587.92 USD", got.TotalBalance)
	}
	if got.Count != 4 || len(got.Rows) != 4 || got.Rows[0].ID != "bitcoin" {
		t.Errorf("count = %d, rows = %+v, want 4 rows starting with bitcoin", got.Count, got.Rows)
	}
}

func firstLine(s string) string {
	line, _, _ := strings.Cut(s, "\n")
	return line
}

package renderer

import (
	"strings"
	"testing"

	"github.com/ledgerkit/payproc"
	"github.com/shopspring/decimal"
)

func amt(v int64) payproc.Amount {
	return payproc.NewAmount(decimal.NewFromInt(v))
}

func TestNewSummary(t *testing.T) {
	summary := NewSummary([]payproc.AccountSnapshot{
		{Client: 1, Available: amt(50), Total: amt(50)},
		{Client: 2, Locked: true, Total: amt(0)},
		{Client: 3, Available: amt(10), Held: amt(5), Total: amt(15)},
	})

	if summary.Locked != 1 {
		t.Errorf("locked = %d, want 1", summary.Locked)
	}
	if !summary.Total.Equal(amt(65)) {
		t.Errorf("total = %s, want 65", summary.Total)
	}
}

func TestSummaryMarkdown(t *testing.T) {
	summary := NewSummary([]payproc.AccountSnapshot{
		{Client: 1, Available: amt(50), Total: amt(50)},
		{Client: 2, Locked: true},
	})

	md := SummaryMarkdown(summary)

	for _, want := range []string{
		"# Account Summary",
		"2 account(s), 1 locked",
		"| 1 | 50 | 0 | 50 | no |",
		"| 2 | 0 | 0 | 0 | yes |",
	} {
		if !strings.Contains(md, want) {
			t.Errorf("markdown missing %q:\n%s", want, md)
		}
	}
}

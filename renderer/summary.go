// Package renderer renders processing results as markdown for the
// CLI to display.
package renderer

import (
	"strings"
	"text/template"

	"github.com/ledgerkit/payproc"
)

// Summary aggregates the final snapshots for rendering.
type Summary struct {
	Accounts []payproc.AccountSnapshot
	Locked   int
	Total    payproc.Amount
}

// NewSummary computes the summary of a snapshot collection.
func NewSummary(snapshots []payproc.AccountSnapshot) *Summary {
	s := &Summary{Accounts: snapshots}
	for _, snapshot := range snapshots {
		if snapshot.Locked {
			s.Locked++
		}
		s.Total = s.Total.Add(snapshot.Total)
	}
	return s
}

var summaryTemplate = template.Must(template.New("summary").Parse(`# Account Summary

{{len .Accounts}} account(s), {{.Locked}} locked, {{.Total}} in total balances.

| Client | Available | Held | Total | Locked |
|--------|-----------|------|-------|--------|
{{range .Accounts -}}
| {{.Client}} | {{.Available}} | {{.Held}} | {{.Total}} | {{if .Locked}}yes{{else}}no{{end}} |
{{end}}`))

// SummaryMarkdown renders the summary to a markdown string.
func SummaryMarkdown(s *Summary) string {
	var b strings.Builder
	if err := summaryTemplate.Execute(&b, s); err != nil {
		// The template is static and the data plain values, execution
		// cannot fail at runtime.
		return err.Error()
	}
	return b.String()
}

// Package report aggregates comparison results into summaries and renders
// them as markdown documents for humans. Rendering is display-only; the
// JSON-serializable result list remains the machine interface.
package report

import (
	"fmt"
	"sort"
	"strings"

	"github.com/hellenic-development/design-diff/pkg/design"
)

// Summary aggregates a result list into headline numbers.
type Summary struct {
	Total      int            `json:"total"`
	Matches    int            `json:"matches"`
	Mismatches int            `json:"mismatches"`
	MatchRate  float64        `json:"matchRate"` // 0..1, 1 for an empty report
	ByDomain   map[string]int `json:"mismatchesByDomain,omitempty"`
}

// Summarize counts matches and mismatches, overall and per domain.
func Summarize(results []design.Result) Summary {
	s := Summary{ByDomain: make(map[string]int)}
	for _, r := range results {
		s.Total++
		if r.Status == design.StatusMatch {
			s.Matches++
			continue
		}
		s.Mismatches++
		s.ByDomain[domainOf(r.Property)]++
	}

	if s.Total > 0 {
		s.MatchRate = float64(s.Matches) / float64(s.Total)
	} else {
		s.MatchRate = 1
	}
	if len(s.ByDomain) == 0 {
		s.ByDomain = nil
	}
	return s
}

// domainOf extracts the domain segment of a namespaced property name.
// The synthetic "node" property is its own domain.
func domainOf(property string) string {
	if i := strings.IndexByte(property, ':'); i >= 0 {
		return property[:i]
	}
	return property
}

// ToMarkdown transforms a comparison run into a markdown document with a
// headline summary, a per-domain mismatch table, and one section per node
// listing every compared property.
func ToMarkdown(results []design.Result, title string) string {
	summary := Summarize(results)

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("# Design Comparison Report - %s\n\n", title))
	sb.WriteString("This document compares the design source against the rendered implementation, property by property.\n\n")

	sb.WriteString("## Summary\n\n")
	sb.WriteString(fmt.Sprintf("- **Properties compared**: %d\n", summary.Total))
	sb.WriteString(fmt.Sprintf("- **Matches**: %d\n", summary.Matches))
	sb.WriteString(fmt.Sprintf("- **Mismatches**: %d\n", summary.Mismatches))
	sb.WriteString(fmt.Sprintf("- **Match rate**: %.1f%%\n\n", summary.MatchRate*100))

	if len(summary.ByDomain) > 0 {
		sb.WriteString("### Mismatches by Domain\n\n")
		sb.WriteString("| Domain | Mismatches |\n")
		sb.WriteString("|--------|------------|\n")
		for _, domain := range sortedDomains(summary.ByDomain) {
			sb.WriteString(fmt.Sprintf("| %s | %d |\n", domain, summary.ByDomain[domain]))
		}
		sb.WriteString("\n")
	}

	sb.WriteString("## Nodes\n\n")
	for _, nodeID := range nodeOrder(results) {
		sb.WriteString(fmt.Sprintf("### Node `%s`\n\n", nodeID))
		sb.WriteString("| Property | Figma | Web | Diff | Status |\n")
		sb.WriteString("|----------|-------|-----|------|--------|\n")
		for _, r := range results {
			if r.NodeID != nodeID {
				continue
			}
			sb.WriteString(fmt.Sprintf("| %s | %s | %s | %s | %s |\n",
				r.Property, formatValue(r.Figma), formatValue(r.Web), formatDiff(r.Diff), statusBadge(r.Status)))
		}
		sb.WriteString("\n")
	}

	return sb.String()
}

// nodeOrder returns node IDs in first-appearance order.
func nodeOrder(results []design.Result) []string {
	seen := make(map[string]bool)
	var order []string
	for _, r := range results {
		if !seen[r.NodeID] {
			seen[r.NodeID] = true
			order = append(order, r.NodeID)
		}
	}
	return order
}

func sortedDomains(byDomain map[string]int) []string {
	domains := make([]string, 0, len(byDomain))
	for d := range byDomain {
		domains = append(domains, d)
	}
	sort.Strings(domains)
	return domains
}

func formatValue(v any) string {
	switch t := v.(type) {
	case nil:
		return "—"
	case string:
		return "`" + t + "`"
	case float64:
		return fmt.Sprintf("%g", t)
	default:
		return fmt.Sprintf("%v", t)
	}
}

// formatDiff renders the maximal sentinel as a dash; the numeric ceiling
// is an implementation detail readers should not see.
func formatDiff(diff float64) string {
	if diff >= design.MaxDiff {
		return "—"
	}
	return fmt.Sprintf("%.2f", diff)
}

func statusBadge(status design.Status) string {
	if status == design.StatusMatch {
		return "✅ match"
	}
	return "❌ mismatch"
}

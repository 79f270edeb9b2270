// Package metrics computes the aggregate summaries the dashboard and the
// reminder messages report.
package metrics

import (
	"sort"

	"github.com/Iamhuzaifasabahuddin/BlinkDigitally-sub000/internal/domain"
)

// Retention computes the review-attainment ratio for a PM:
// attained / (pending + sent + attained). The denominator is closed; when
// it is zero the rate is reported as 0.
func Retention(pendingAndSent, attained int) float64 {
	total := pendingAndSent + attained
	if total == 0 {
		return 0
	}
	return float64(attained) / float64(total)
}

// Summarize builds the per-PM rollup from the classified populations.
func Summarize(pm string, pending, sent, attained int) domain.ReviewSummary {
	return domain.ReviewSummary{
		ProjectManager: pm,
		Pending:        pending,
		Sent:           sent,
		Attained:       attained,
		Total:          pending + sent + attained,
		Retention:      Retention(pending+sent, attained),
	}
}

// BrandCounts returns categorical value counts of brands over the
// published, qualified subset, descending by count with name tie-breaks.
func BrandCounts(projects []domain.Project) []domain.ValueCount {
	counts := make(map[string]int)
	for _, p := range projects {
		if !p.Qualified() {
			continue
		}
		counts[string(p.Brand)]++
	}
	return sortedCounts(counts)
}

// PlatformCounts returns categorical value counts of platforms over the
// published, qualified subset.
func PlatformCounts(projects []domain.Project) []domain.ValueCount {
	counts := make(map[string]int)
	for _, p := range projects {
		if !p.Qualified() {
			continue
		}
		counts[string(p.Platform)]++
	}
	return sortedCounts(counts)
}

// Prints aggregates the print-order worksheet. Empty input yields a
// zero-valued summary.
func Prints(orders []domain.PrintOrder) domain.PrintSummary {
	var s domain.PrintSummary
	if len(orders) == 0 {
		return s
	}

	s.Orders = len(orders)
	s.MinOrderCost = orders[0].OrderCost
	s.MinOrderCopies = orders[0].Copies
	for _, o := range orders {
		s.TotalCopies += o.Copies
		s.TotalCost += o.OrderCost
		if o.OrderCost > s.MaxOrderCost {
			s.MaxOrderCost = o.OrderCost
		}
		if o.OrderCost < s.MinOrderCost {
			s.MinOrderCost = o.OrderCost
		}
		if o.Copies > s.MaxOrderCopies {
			s.MaxOrderCopies = o.Copies
		}
		if o.Copies < s.MinOrderCopies {
			s.MinOrderCopies = o.Copies
		}
		if o.Type == domain.PrintTypeUpcoming {
			s.UpcomingOrders++
		}
		if o.Accepted == "Yes" || o.Accepted == "TRUE" {
			s.AcceptedOrders++
		}
	}
	if s.TotalCopies > 0 {
		s.AvgCostPerCopy = s.TotalCost / s.TotalCopies
	}
	return s
}

// Copyrights aggregates the copyright worksheet at a flat unit cost per
// submission.
func Copyrights(records []domain.CopyrightRecord, unitCost float64) domain.CopyrightSummary {
	var s domain.CopyrightSummary
	s.TotalCount = len(records)
	s.TotalCost = unitCost * float64(s.TotalCount)
	for _, r := range records {
		if r.Result == domain.CopyrightGranted {
			s.Success++
		}
	}
	if s.TotalCount > 0 {
		s.SuccessRate = float64(s.Success) / float64(s.TotalCount)
	}
	return s
}

// CountryCounts returns categorical value counts of copyright filing
// countries.
func CountryCounts(records []domain.CopyrightRecord) []domain.ValueCount {
	counts := make(map[string]int)
	for _, r := range records {
		counts[string(r.Country)]++
	}
	return sortedCounts(counts)
}

// sortedCounts renders a count map as a slice, descending by count and
// ascending by value for equal counts.
func sortedCounts(counts map[string]int) []domain.ValueCount {
	out := make([]domain.ValueCount, 0, len(counts))
	for value, count := range counts {
		out = append(out, domain.ValueCount{Value: value, Count: count})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Value < out[j].Value
	})
	return out
}

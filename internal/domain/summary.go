package domain

import "time"

// ReviewWindow scopes attained-review queries. Month is optional; when
// zero the year filter applies alone.
type ReviewWindow struct {
	Year  int        `json:"year"`
	Month time.Month `json:"month,omitempty"`
}

// Contains reports whether a review date falls inside the window.
// Missing dates never match.
func (w ReviewWindow) Contains(d Date) bool {
	if !d.Valid() {
		return false
	}
	if d.Year() != w.Year {
		return false
	}
	return w.Month == 0 || d.Month() == w.Month
}

// ReviewSummary is the per-PM attainment rollup the dashboard and the
// reminder messages are built from.
type ReviewSummary struct {
	ProjectManager string  `json:"project_manager"`
	Pending        int     `json:"pending"`
	Sent           int     `json:"sent"`
	Attained       int     `json:"attained"`
	Total          int     `json:"total"`     // pending + sent + attained
	Retention      float64 `json:"retention"` // attained / total, 0 when total is 0
}

// ValueCount is one bucket of a categorical rollup, e.g. rows per brand.
type ValueCount struct {
	Value string `json:"value"`
	Count int    `json:"count"`
}

// PrintSummary aggregates the print-order worksheet.
type PrintSummary struct {
	Orders         int     `json:"orders"`
	TotalCopies    float64 `json:"total_copies"`
	TotalCost      float64 `json:"total_cost"`
	AvgCostPerCopy float64 `json:"avg_cost_per_copy"`
	MaxOrderCost   float64 `json:"max_order_cost"`
	MinOrderCost   float64 `json:"min_order_cost"`
	MaxOrderCopies float64 `json:"max_order_copies"`
	MinOrderCopies float64 `json:"min_order_copies"`
	UpcomingOrders int     `json:"upcoming_orders"`
	AcceptedOrders int     `json:"accepted_orders"`
}

// CopyrightSummary aggregates the copyright worksheet. Cost is a flat
// per-submission unit cost.
type CopyrightSummary struct {
	TotalCount  int     `json:"total_count"`
	TotalCost   float64 `json:"total_cost"`
	Success     int     `json:"success"`
	SuccessRate float64 `json:"success_rate"`
}

package domain

import "strings"

// PrintType distinguishes fulfilled order rows from upcoming ones.
type PrintType string

// Print order types.
const (
	PrintTypeOrder    PrintType = "Order"
	PrintTypeUpcoming PrintType = "Upcoming"
)

// ParsePrintType canonicalizes a worksheet cell.
func ParsePrintType(raw string) PrintType {
	trimmed := strings.TrimSpace(raw)
	if strings.EqualFold(trimmed, "upcoming") {
		return PrintTypeUpcoming
	}
	if strings.EqualFold(trimmed, "order") {
		return PrintTypeOrder
	}
	return PrintType(trimmed)
}

// PrintOrder is one row of the print-order worksheet, after normalization.
// Columns right of Accepted are ignored at ingest.
type PrintOrder struct {
	Ordinal        int       `json:"ordinal"`
	ClientName     string    `json:"client_name"`
	Brand          Brand     `json:"brand"`
	ProjectManager string    `json:"project_manager"`
	Address        string    `json:"address"`
	Book           string    `json:"book"`
	Format         string    `json:"format"`
	InkType        string    `json:"ink_type"`
	Copies         float64   `json:"copies"`
	OrderCost      float64   `json:"order_cost"` // parsed from a "$X,Y" literal
	OrderDate      Date      `json:"order_date"`
	ShippingDate   Date      `json:"shipping_date"`
	FulfilledDate  Date      `json:"fulfilled_date"`
	DeliveryMethod string    `json:"delivery_method"`
	Status         string    `json:"status"`
	Type           PrintType `json:"type"`
	Accepted       string    `json:"accepted"`
}

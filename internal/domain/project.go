package domain

// Project is one publication row from a per-country worksheet, after
// normalization. Columns right of Issues are ignored at ingest.
type Project struct {
	Ordinal          int              `json:"ordinal"` // 1-based display index
	ClientName       string           `json:"client_name"`
	Brand            Brand            `json:"brand"`
	Book             string           `json:"book"`
	Format           string           `json:"format"`
	ProjectManager   string           `json:"project_manager"` // Title-Case, trimmed
	Platform         Platform         `json:"platform"`
	PublishingStatus PublishingStatus `json:"publishing_status"`
	PublishingDate   Date             `json:"publishing_date"`
	LastEditDate     Date             `json:"last_edit_date"`
	ReviewState      ReviewState      `json:"review_state"`
	ReviewDate       Date             `json:"review_date"`
	ReviewLink       string           `json:"review_link"`
	Issues           string           `json:"issues"`
}

// Qualified reports whether the row counts toward review metrics: a
// published title under one of the outreach-tracked brands.
func (p Project) Qualified() bool {
	return p.Brand.Qualified() && p.PublishingStatus == StatusPublished
}

package domain

import "strings"

// CopyrightResult records whether a copyright submission was granted.
type CopyrightResult string

// Copyright results as entered on the worksheet.
const (
	CopyrightGranted CopyrightResult = "Yes"
	CopyrightDenied  CopyrightResult = "No"
)

// ParseCopyrightResult canonicalizes a worksheet cell.
func ParseCopyrightResult(raw string) CopyrightResult {
	trimmed := strings.TrimSpace(raw)
	switch strings.ToLower(trimmed) {
	case "yes":
		return CopyrightGranted
	case "no":
		return CopyrightDenied
	default:
		return CopyrightResult(trimmed)
	}
}

// CopyrightCountry is where the submission was filed.
type CopyrightCountry string

// Filing countries.
const (
	CopyrightUSA    CopyrightCountry = "USA"
	CopyrightCanada CopyrightCountry = "Canada"
)

// ParseCopyrightCountry canonicalizes a worksheet cell.
func ParseCopyrightCountry(raw string) CopyrightCountry {
	trimmed := strings.TrimSpace(raw)
	switch strings.ToLower(trimmed) {
	case "usa", "us":
		return CopyrightUSA
	case "canada":
		return CopyrightCanada
	default:
		return CopyrightCountry(trimmed)
	}
}

// CopyrightRecord is one row of the copyright worksheet, after
// normalization. Columns right of Country are ignored at ingest.
type CopyrightRecord struct {
	Ordinal        int              `json:"ordinal"`
	ClientName     string           `json:"client_name"`
	ProjectManager string           `json:"project_manager"`
	SubmissionDate Date             `json:"submission_date"`
	Country        CopyrightCountry `json:"country"`
	Result         CopyrightResult  `json:"result"`
}

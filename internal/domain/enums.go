package domain

import "strings"

// PublishingStatus tracks where a project is in its publication lifecycle.
type PublishingStatus string

// Publishing statuses.
const (
	StatusPending    PublishingStatus = "Pending"
	StatusInProgress PublishingStatus = "In-Progress"
	StatusPublished  PublishingStatus = "Published"
)

// ParsePublishingStatus canonicalizes a worksheet cell; unknown values are
// preserved verbatim.
func ParsePublishingStatus(raw string) PublishingStatus {
	trimmed := strings.TrimSpace(raw)
	switch strings.ToLower(trimmed) {
	case "pending":
		return StatusPending
	case "in-progress", "in progress":
		return StatusInProgress
	case "published":
		return StatusPublished
	default:
		return PublishingStatus(trimmed)
	}
}

// ReviewState tracks the client feedback request for a project.
type ReviewState string

// Review states. "Sent" means a reminder has already been issued but no
// review has landed yet.
const (
	ReviewPending  ReviewState = "Pending"
	ReviewSent     ReviewState = "Sent"
	ReviewAttained ReviewState = "Attained"
)

// ParseReviewState canonicalizes a worksheet cell; unknown values are
// preserved verbatim.
func ParseReviewState(raw string) ReviewState {
	trimmed := strings.TrimSpace(raw)
	switch strings.ToLower(trimmed) {
	case "pending":
		return ReviewPending
	case "sent":
		return ReviewSent
	case "attained":
		return ReviewAttained
	default:
		return ReviewState(trimmed)
	}
}

// Unresolved reports whether the client has not yet posted feedback.
func (s ReviewState) Unresolved() bool {
	return s == ReviewPending || s == ReviewSent
}

// Platform is the storefront a title was published to.
type Platform string

// Known platforms. Worksheets occasionally carry others; those are kept
// verbatim so platform counts stay truthful.
const (
	PlatformAmazon      Platform = "Amazon"
	PlatformBarnesNoble Platform = "Barnes & Noble"
	PlatformIngramSpark Platform = "Ingram Spark"
	PlatformFAV         Platform = "FAV"
)

// ParsePlatform canonicalizes a worksheet cell.
func ParsePlatform(raw string) Platform {
	trimmed := strings.TrimSpace(raw)
	switch strings.ToLower(trimmed) {
	case "amazon":
		return PlatformAmazon
	case "barnes & noble", "barnes and noble":
		return PlatformBarnesNoble
	case "ingram spark", "ingramspark":
		return PlatformIngramSpark
	case "fav":
		return PlatformFAV
	default:
		return Platform(trimmed)
	}
}

// Region selects the backing worksheet, delivery channel, and PM roster.
type Region string

// Supported regions.
const (
	RegionUSA Region = "USA"
	RegionUK  Region = "UK"
)

// ParseRegion canonicalizes a region name.
func ParseRegion(raw string) (Region, bool) {
	switch strings.ToUpper(strings.TrimSpace(raw)) {
	case "USA", "US":
		return RegionUSA, true
	case "UK":
		return RegionUK, true
	default:
		return "", false
	}
}

// Role gates dashboard operations. The "Send" family is admin-only.
type Role string

// Dashboard roles.
const (
	RoleAdmin Role = "Admin"
	RolePM    Role = "PM"
)

// Valid reports whether the role is recognized.
func (r Role) Valid() bool {
	return r == RoleAdmin || r == RolePM
}

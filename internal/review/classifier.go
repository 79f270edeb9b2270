// Package review derives the per-PM review populations: Pending, Sent,
// and Attained.
package review

import (
	"sort"

	"github.com/Iamhuzaifasabahuddin/BlinkDigitally-sub000/internal/domain"
)

// Pending returns the PM's published, brand-qualified rows still awaiting
// a first reminder. Sorted by publishing date ascending with stable
// tie-breaks; duplicate clients collapse keep-last.
func Pending(projects []domain.Project, pm string) []domain.Project {
	return unresolved(projects, pm, false)
}

// PendingAndSent returns the PM's published, brand-qualified rows whose
// review is still unresolved, whether or not a reminder has gone out.
func PendingAndSent(projects []domain.Project, pm string) []domain.Project {
	return unresolved(projects, pm, true)
}

// unresolved applies the shared Pending/Sent predicate. KDP rows and
// unpublished rows never count.
func unresolved(projects []domain.Project, pm string, includeSent bool) []domain.Project {
	matched := make([]domain.Project, 0)
	for _, p := range projects {
		if p.ProjectManager != pm || !p.Qualified() {
			continue
		}
		if p.ReviewState == domain.ReviewPending || (includeSent && p.ReviewState == domain.ReviewSent) {
			matched = append(matched, p)
		}
	}

	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].PublishingDate.Before(matched[j].PublishingDate)
	})
	return dedupeKeepLast(matched)
}

// Attained returns the PM's brand-qualified attained reviews whose review
// date falls inside the window. Rows with a missing review date are
// excluded from every window. Sorted by review date ascending; duplicate
// clients collapse keep-last.
func Attained(projects []domain.Project, pm string, window domain.ReviewWindow) []domain.Project {
	matched := make([]domain.Project, 0)
	for _, p := range projects {
		if p.ProjectManager != pm || p.ReviewState != domain.ReviewAttained {
			continue
		}
		if !p.Brand.Qualified() {
			continue
		}
		if !window.Contains(p.ReviewDate) {
			continue
		}
		matched = append(matched, p)
	}

	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].ReviewDate.Before(matched[j].ReviewDate)
	})
	return dedupeKeepLast(matched)
}

// Managers returns the distinct PM names present in the projects, in first
// appearance order. Useful for bulk sends when no roster is configured.
func Managers(projects []domain.Project) []string {
	seen := make(map[string]bool)
	names := make([]string, 0)
	for _, p := range projects {
		if p.ProjectManager == "" || seen[p.ProjectManager] {
			continue
		}
		seen[p.ProjectManager] = true
		names = append(names, p.ProjectManager)
	}
	return names
}

// dedupeKeepLast collapses duplicate client names, keeping only each
// client's last row by list order.
func dedupeKeepLast(projects []domain.Project) []domain.Project {
	last := make(map[string]int, len(projects))
	for i, p := range projects {
		last[p.ClientName] = i
	}

	out := make([]domain.Project, 0, len(last))
	for i, p := range projects {
		if last[p.ClientName] == i {
			out = append(out, p)
		}
	}
	return out
}

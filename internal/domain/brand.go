package domain

import "strings"

// Brand identifies the publishing imprint a project was sold under.
// Unrecognized worksheet values are preserved verbatim so schema drift shows
// up in value counts instead of silently dropping rows.
type Brand string

// Known brands.
const (
	BrandBookMarketeers  Brand = "BookMarketeers"
	BrandWritersClique   Brand = "Writers Clique"
	BrandAuroraWriters   Brand = "Aurora Writers"
	BrandKDP             Brand = "KDP"
	BrandAuthorsSolution Brand = "Authors Solution"
	BrandBookPublication Brand = "Book Publication"
)

//nolint:gochecknoglobals // Static lookup table
var knownBrands = map[string]Brand{
	"bookmarketeers":   BrandBookMarketeers,
	"writers clique":   BrandWritersClique,
	"aurora writers":   BrandAuroraWriters,
	"kdp":              BrandKDP,
	"authors solution": BrandAuthorsSolution,
	"book publication": BrandBookPublication,
}

// ReviewBrandURLs maps each outreach-tracked brand to its Trustpilot page.
// These are listed in the reminder preamble.
//
//nolint:gochecknoglobals // Static lookup table
var ReviewBrandURLs = map[Brand]string{
	BrandBookMarketeers:  "https://www.trustpilot.com/review/bookmarketeers.com",
	BrandWritersClique:   "https://www.trustpilot.com/review/writersclique.com",
	BrandAuroraWriters:   "https://www.trustpilot.com/review/aurorawriters.com",
	BrandAuthorsSolution: "https://www.trustpilot.com/review/authorssolution.co.uk",
	BrandBookPublication: "https://www.trustpilot.com/review/bookpublication.co.uk",
}

// ParseBrand canonicalizes a worksheet cell to a known brand, or preserves
// the trimmed raw value for unknown ones.
func ParseBrand(raw string) Brand {
	trimmed := strings.TrimSpace(raw)
	if b, ok := knownBrands[strings.ToLower(trimmed)]; ok {
		return b
	}
	return Brand(trimmed)
}

// Known reports whether the brand is one of the recognized imprints.
func (b Brand) Known() bool {
	_, ok := knownBrands[strings.ToLower(string(b))]
	return ok
}

// Qualified reports whether review outreach is tracked for this brand.
// KDP titles are excluded along with anything unrecognized.
func (b Brand) Qualified() bool {
	return b.Known() && b != BrandKDP
}

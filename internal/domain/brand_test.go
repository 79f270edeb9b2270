package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseBrand(t *testing.T) {
	tests := []struct {
		raw  string
		want Brand
	}{
		{"BookMarketeers", BrandBookMarketeers},
		{"bookmarketeers", BrandBookMarketeers},
		{"  Writers Clique  ", BrandWritersClique},
		{"KDP", BrandKDP},
		{"kdp", BrandKDP},
		{"Aurora Writers", BrandAuroraWriters},
		{"Authors Solution", BrandAuthorsSolution},
		{"Book Publication", BrandBookPublication},
		// Unknown values survive verbatim so drift is visible downstream.
		{"Shelf Life Press", Brand("Shelf Life Press")},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ParseBrand(tt.raw), "raw=%q", tt.raw)
	}
}

func TestBrandQualified(t *testing.T) {
	assert.True(t, BrandBookMarketeers.Qualified())
	assert.True(t, BrandWritersClique.Qualified())
	assert.True(t, BrandAuthorsSolution.Qualified())

	// KDP is tracked but never review-qualified.
	assert.True(t, BrandKDP.Known())
	assert.False(t, BrandKDP.Qualified())

	assert.False(t, Brand("Shelf Life Press").Qualified())
	assert.False(t, Brand("").Qualified())
}

func TestProjectQualified(t *testing.T) {
	base := Project{Brand: BrandBookMarketeers, PublishingStatus: StatusPublished}
	assert.True(t, base.Qualified())

	unpublished := base
	unpublished.PublishingStatus = StatusInProgress
	assert.False(t, unpublished.Qualified())

	kdp := base
	kdp.Brand = BrandKDP
	assert.False(t, kdp.Qualified())
}

func TestReviewBrandURLsExcludeKDP(t *testing.T) {
	_, ok := ReviewBrandURLs[BrandKDP]
	assert.False(t, ok)
	assert.Len(t, ReviewBrandURLs, 5)
}

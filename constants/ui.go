package constants

// Mirror Debug Overlay Layout
const (
	// MirrorInfoBoxWidth is the width of the white box behind the mirror statistics
	MirrorInfoBoxWidth = 60

	// MirrorInfoBoxHeight is the height of the white box behind the mirror statistics
	MirrorInfoBoxHeight = 10

	// MirrorInfoBoxX is the left edge of the mirror statistics box
	MirrorInfoBoxX = ScreenWidth - MirrorInfoBoxWidth

	// MirrorInfoTextX is the left edge of the statistics text
	MirrorInfoTextX = ScreenWidth - 58

	// MirrorInfoTextY is the text baseline
	MirrorInfoTextY = 8

	// MirrorInfoFormat renders average area and visible centroid count
	MirrorInfoFormat = "# %d T: %d"
)

// Lattice Info Banner Layout
const (
	// LatticeBannerHeight is the height of the full-width banner
	LatticeBannerHeight = 8

	// LatticeBannerTextX is the left edge of the banner text
	LatticeBannerTextX = 1

	// LatticeBannerTextY is the banner text baseline
	LatticeBannerTextY = 6

	// LatticeBannerFormat renders side, line count, full, partial and area
	LatticeBannerFormat = "S%d L%d F%d P%d A%d"
)

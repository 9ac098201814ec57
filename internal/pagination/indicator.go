package pagination

import "strconv"

// EllipsisMarker is the rendered form of a collapsed page run.
const EllipsisMarker = "…"

// IndicatorKind discriminates the two indicator variants.
type IndicatorKind int

const (
	// IndicatorPage is a clickable page number.
	IndicatorPage IndicatorKind = iota
	// IndicatorEllipsis marks a collapsed run of page numbers.
	IndicatorEllipsis
)

// Indicator is a single renderable pagination slot: either a page number in
// [1, pageCount] or an ellipsis marker. Hosts distinguish the two through
// Kind (or IsEllipsis) rather than a reserved page value.
type Indicator struct {
	Kind IndicatorKind
	Page int
}

// PageIndicator creates a page-number indicator.
func PageIndicator(page int) Indicator {
	return Indicator{Kind: IndicatorPage, Page: page}
}

// EllipsisIndicator creates an ellipsis indicator.
func EllipsisIndicator() Indicator {
	return Indicator{Kind: IndicatorEllipsis}
}

// IsEllipsis reports whether the indicator is an ellipsis marker.
func (i Indicator) IsEllipsis() bool {
	return i.Kind == IndicatorEllipsis
}

// String renders the page number, or the ellipsis marker.
func (i Indicator) String() string {
	if i.IsEllipsis() {
		return EllipsisMarker
	}
	return strconv.Itoa(i.Page)
}

func pageIndicators(pages []int) []Indicator {
	indicators := make([]Indicator, 0, len(pages))
	for _, page := range pages {
		indicators = append(indicators, PageIndicator(page))
	}
	return indicators
}

package pagination

import (
	"fmt"

	quilterrors "github.com/quiltui/quilt/pkg/errors"
)

// PageCount returns ceil(total/limit), the number of pages needed to hold
// total items at limit items per page. It is zero when total is zero.
func PageCount(total, limit int) int {
	if limit <= 0 || total <= 0 {
		return 0
	}
	return (total + limit - 1) / limit
}

// Compute produces the ordered sequence of indicators to render for the
// given inputs. siblingCount controls how many page numbers appear adjacent
// to the current page on each side before a run collapses into an ellipsis.
//
// The first and last page are always present whenever more than one page
// exists. Inputs that violate the documented preconditions (limit <= 0,
// total < 0, siblingCount < 0) fail fast with an invalid-argument error
// rather than producing a silently wrong range.
func Compute(total, limit, currentPage, siblingCount int) ([]Indicator, error) {
	if limit <= 0 {
		return nil, quilterrors.NewInvalidArgumentError("limit", fmt.Sprintf("must be a positive integer, got %d", limit), nil)
	}
	if total < 0 {
		return nil, quilterrors.NewInvalidArgumentError("total", fmt.Sprintf("must be non-negative, got %d", total), nil)
	}
	if siblingCount < 0 {
		return nil, quilterrors.NewInvalidArgumentError("siblingCount", fmt.Sprintf("must be non-negative, got %d", siblingCount), nil)
	}

	pageCount := PageCount(total, limit)

	// Slots for the current page, its siblings, the first and last page,
	// and the two potential ellipses. When every page fits there is nothing
	// to collapse.
	totalSlots := siblingCount + 5
	if totalSlots >= pageCount {
		return pageIndicators(Range(1, pageCount)), nil
	}

	leftSibling := max(currentPage-siblingCount, 1)
	rightSibling := min(currentPage+siblingCount, pageCount)

	showLeftEllipsis := leftSibling > 2
	showRightEllipsis := rightSibling < pageCount-2

	// Width of the contiguous run rendered next to a single ellipsis.
	runWidth := 3 + 2*siblingCount

	switch {
	case !showLeftEllipsis && showRightEllipsis:
		indicators := pageIndicators(Range(1, runWidth))
		indicators = append(indicators, EllipsisIndicator(), PageIndicator(pageCount))
		return indicators, nil

	case showLeftEllipsis && !showRightEllipsis:
		indicators := []Indicator{PageIndicator(1), EllipsisIndicator()}
		indicators = append(indicators, pageIndicators(Range(pageCount-runWidth+1, pageCount))...)
		return indicators, nil

	case showLeftEllipsis && showRightEllipsis:
		indicators := []Indicator{PageIndicator(1), EllipsisIndicator()}
		indicators = append(indicators, pageIndicators(Range(leftSibling, rightSibling))...)
		indicators = append(indicators, EllipsisIndicator(), PageIndicator(pageCount))
		return indicators, nil
	}

	// Unreachable given the totalSlots guard above. Returning nil keeps a
	// misbehaving caller from crashing the render path.
	return nil, nil
}

package pagination

import (
	"fmt"
	"sync"

	"github.com/go-playground/validator/v10"

	quilterrors "github.com/quiltui/quilt/pkg/errors"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate
)

func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		validateInst = validator.New(validator.WithRequiredStructEnabled())
	})
	return validateInst
}

// Callback receives the zero-based offset of the first item on the new page
// together with the page size. It is invoked exactly once per accepted
// navigation event; fetching the data behind that offset is the host's job.
type Callback func(offset, limit int)

// Options configures a Controller. Validation happens once, at the
// constructor boundary, so the calculator never sees malformed input.
type Options struct {
	Total        int `validate:"gte=0"`
	Limit        int `validate:"required,gt=0"`
	Offset       int `validate:"gte=0"`
	SiblingCount int `validate:"gte=0"`
	OnPageChange Callback
}

// Controller tracks the current page and maps navigation events to new
// pages. It is hidden (renders nothing, accepts no events) whenever the
// computed range holds fewer than two indicators.
type Controller struct {
	total        int
	limit        int
	siblingCount int
	currentPage  int
	loading      bool
	onPageChange Callback
	indicators   []Indicator
}

// NewController validates opts and builds a controller positioned on the
// page containing opts.Offset.
func NewController(opts Options) (*Controller, error) {
	if err := validatorInstance().Struct(opts); err != nil {
		return nil, convertValidationError(err)
	}

	currentPage := opts.Offset/opts.Limit + 1
	if pageCount := PageCount(opts.Total, opts.Limit); pageCount > 0 {
		currentPage = min(currentPage, pageCount)
	} else {
		currentPage = 1
	}

	c := &Controller{
		total:        opts.Total,
		limit:        opts.Limit,
		siblingCount: opts.SiblingCount,
		currentPage:  currentPage,
		onPageChange: opts.OnPageChange,
	}
	c.recompute()
	return c, nil
}

func convertValidationError(err error) error {
	if ves, ok := err.(validator.ValidationErrors); ok && len(ves) > 0 {
		ve := ves[0]
		msg := fmt.Sprintf("%s failed validation for tag '%s'", ve.Field(), ve.Tag())
		return quilterrors.NewInvalidArgumentError(ve.Field(), msg, err)
	}
	return quilterrors.NewInvalidArgumentError("options", err.Error(), err)
}

// recompute refreshes the cached indicator sequence. Inputs were validated
// at construction, so a calculator error here cannot occur; a nil result
// simply leaves the controller hidden.
func (c *Controller) recompute() {
	indicators, err := Compute(c.total, c.limit, c.currentPage, c.siblingCount)
	if err != nil {
		c.indicators = nil
		return
	}
	c.indicators = indicators
}

// Indicators returns the ordered indicator sequence for the current state.
func (c *Controller) Indicators() []Indicator {
	c.recompute()
	return c.indicators
}

// Visible reports whether the paginator should render at all. A single page
// (or no pages) yields fewer than two indicators and hides the control.
func (c *Controller) Visible() bool {
	c.recompute()
	return len(c.indicators) >= 2
}

// CurrentPage returns the 1-indexed current page.
func (c *Controller) CurrentPage() int {
	return c.currentPage
}

// Offset returns the zero-based index of the first item on the current page.
func (c *Controller) Offset() int {
	return (c.currentPage - 1) * c.limit
}

// Limit returns the page size.
func (c *Controller) Limit() int {
	return c.limit
}

// LastPage returns the page number of the final indicator in the most
// recently computed range, or zero when the range is empty.
func (c *Controller) LastPage() int {
	c.recompute()
	if len(c.indicators) == 0 {
		return 0
	}
	last := c.indicators[len(c.indicators)-1]
	if last.IsEllipsis() {
		return 0
	}
	return last.Page
}

// Loading reports whether navigation is currently gated.
func (c *Controller) Loading() bool {
	return c.loading
}

// SetLoading gates or ungates navigation. While loading is true every
// navigation event is ignored, preventing duplicate page-change requests
// while a fetch is in flight.
func (c *Controller) SetLoading(loading bool) {
	c.loading = loading
}

// Next advances to the following page. It reports whether the event was
// accepted; no-ops occur while loading, while hidden, and on the last page.
func (c *Controller) Next() bool {
	if c.loading || !c.Visible() || c.currentPage == c.LastPage() {
		return false
	}

	previous := c.currentPage
	c.currentPage++
	c.recompute()
	c.emit(previous * c.limit)
	return true
}

// Previous moves back one page. It reports whether the event was accepted;
// no-ops occur while loading, while hidden, and on the first page.
func (c *Controller) Previous() bool {
	if c.loading || !c.Visible() || c.currentPage == 1 {
		return false
	}

	previous := c.currentPage
	c.currentPage--
	c.recompute()
	c.emit((previous - 2) * c.limit)
	return true
}

// JumpTo moves directly to the given page. It reports whether the event was
// accepted; no-ops occur while loading, while hidden, and for pages outside
// [1, LastPage()].
func (c *Controller) JumpTo(page int) bool {
	if c.loading || !c.Visible() {
		return false
	}
	if page < 1 || page > c.LastPage() {
		return false
	}

	c.currentPage = page
	c.recompute()
	c.emit((page - 1) * c.limit)
	return true
}

func (c *Controller) emit(offset int) {
	if c.onPageChange == nil {
		return
	}
	c.onPageChange(offset, c.limit)
}

// Package pagination computes which page indicators a paginator should
// render and tracks the current page across navigation events.
//
// The package has three layers:
//
//  1. Range - a contiguous ascending integer sequence between two bounds.
//  2. Compute - the pure range calculator. Given a total item count, page
//     size, current page and sibling count it produces the ordered sequence
//     of indicators (page numbers and ellipsis markers) to render.
//  3. Controller - owns the current page, maps navigation events
//     (Next/Previous/JumpTo) to new pages and reports (offset, limit) pairs
//     to the host through a callback. It never fetches data itself.
//
// The calculator is stateless and recomputed on every render; the
// controller's loading flag is the only concurrency-control device,
// serialising page-change requests against an external fetch whose
// completion is signalled by the host clearing the flag.
package pagination

package viewer

import "github.com/govardhan-06/pdf-upload-extract-system/internal/chunk"

// Window planning defaults. The margin absorbs back-and-forth navigation
// near a boundary without refetching every page turn; it is a tuning knob,
// not an invariant.
const (
	DefaultPageSize = 10
	DefaultMargin   = 5
)

// WindowPlanner decides whether navigating to a page requires a new fetch
// window, and what its bounds are. Zero values fall back to the defaults.
type WindowPlanner struct {
	PageSize int // pages per fetch window
	Margin   int // look-behind pages when anchoring a new window
}

// Plan returns the window needed for targetPage. If targetPage lies strictly
// inside current (boundary pages excluded), the loaded window still has
// margin and no fetch is needed. Otherwise the new window is anchored so
// targetPage sits Margin pages in, clamped to page 1 at the low end. There is
// no upper clamp: the backend truncates out-of-range windows itself.
func (p WindowPlanner) Plan(current chunk.Window, targetPage int) (chunk.Window, bool) {
	pageSize := p.PageSize
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	margin := p.Margin
	if margin <= 0 {
		margin = DefaultMargin
	}

	if !current.IsZero() && current.Interior(targetPage) {
		return current, false
	}

	start := targetPage - margin
	if start < 1 {
		start = 1
	}
	return chunk.Window{Start: start, End: start + pageSize - 1}, true
}

package viewer

import (
	"context"
	"log/slog"
	"sync"

	"github.com/govardhan-06/pdf-upload-extract-system/internal/chunk"
)

// ViewportState is what the rendering surface currently shows.
type ViewportState struct {
	Page  int     // 1-based visible page
	Scale float64 // render scale, 1.0 = 100%
}

// Session is one viewing session for one document. It owns the range cache,
// the window planner, and the selection, and reacts to viewport events:
// navigation plans and loads fetch windows, zoom triggers re-projection,
// clicks set the selection. All state lives for the session only; nothing is
// persisted.
type Session struct {
	mu sync.Mutex

	docURL  string
	cache   *RangeCache
	planner WindowPlanner
	sel     SelectionController
	log     *slog.Logger

	window     chunk.Window
	groups     []chunk.PageGroup
	page       int
	scale      float64
	totalPages int
	loading    bool

	// epoch invalidates loading-state side effects of superseded fetches. A
	// late response is still cached (harmless) but must not flip indicators
	// owned by a newer navigation.
	epoch uint64
}

func NewSession(docURL string, fetcher Fetcher, planner WindowPlanner, log *slog.Logger) *Session {
	if log == nil {
		log = slog.Default()
	}
	return &Session{
		docURL:  docURL,
		cache:   NewRangeCache(fetcher),
		planner: planner,
		log:     log.With("doc", docURL),
		page:    1,
		scale:   1.0,
	}
}

// Goto handles navigation to a 1-based page: clears a selection left behind
// on another page, and loads a new fetch window when the planner calls for
// one. A failed fetch leaves previously loaded chunks and the window
// untouched; the caller surfaces the error and the session stays usable.
func (s *Session) Goto(ctx context.Context, page int) error {
	if page < 1 {
		page = 1
	}

	s.mu.Lock()
	s.page = page
	s.sel.PageChanged(page)

	next, needFetch := s.planner.Plan(s.window, page)
	if !needFetch {
		s.mu.Unlock()
		return nil
	}

	s.epoch++
	myEpoch := s.epoch
	s.loading = true
	key := WindowKey{DocID: s.docURL, Start: next.Start, End: next.End}
	s.mu.Unlock()

	// Fetch outside the lock; the session stays responsive to zoom and
	// selection events while the window loads.
	snap, err := s.cache.GetOrFetch(ctx, key)

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.epoch == myEpoch {
		s.loading = false
	}
	if err != nil {
		s.log.Warn("window fetch failed", "start", next.Start, "end", next.End, "error", err)
		return err
	}
	if s.epoch != myEpoch {
		// A newer navigation superseded this fetch. The result is cached for
		// later; applying it now would clobber newer state.
		return nil
	}

	s.window = next
	s.groups = chunk.GroupByPage(snap.Chunks)
	if snap.TotalPages > 0 {
		s.totalPages = snap.TotalPages
	}
	s.log.Debug("window loaded", "start", next.Start, "end", next.End, "chunks", len(snap.Chunks))
	return nil
}

// SetScale handles a zoom event. The selection is preserved; because
// projection is pure, the new scale takes effect on the next Overlay call
// without touching selection state.
func (s *Session) SetScale(scale float64) {
	if scale <= 0 {
		return
	}
	s.mu.Lock()
	s.scale = scale
	s.mu.Unlock()
}

// Select makes c the highlighted chunk, e.g. after a click in the text panel.
func (s *Session) Select(c chunk.TextChunk) {
	s.mu.Lock()
	s.sel.Select(c)
	s.mu.Unlock()
}

// ClearSelection drops the highlight.
func (s *Session) ClearSelection() {
	s.mu.Lock()
	s.sel.Clear()
	s.mu.Unlock()
}

// Selected returns the highlighted chunk, if any.
func (s *Session) Selected() (chunk.TextChunk, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sel.Selected()
}

// Overlay projects the current selection for the given 0-based render page.
// It returns false when there is no selection or the selection belongs to a
// different page; that page renders with no overlay.
func (s *Session) Overlay(renderPage int) (chunk.Rect, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sel, ok := s.sel.Selected()
	if !ok || !sel.OnPage(renderPage) {
		return chunk.Rect{}, false
	}
	return chunk.Project(sel.BBox, s.scale), true
}

// Groups returns the loaded chunks grouped by page in reading order.
func (s *Session) Groups() []chunk.PageGroup {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.groups
}

// Viewport returns the current viewport state.
func (s *Session) Viewport() ViewportState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return ViewportState{Page: s.page, Scale: s.scale}
}

// Window returns the currently loaded fetch window.
func (s *Session) Window() chunk.Window {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.window
}

// TotalPages returns the document length as last reported by the backend,
// or 0 when no window has loaded yet.
func (s *Session) TotalPages() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.totalPages
}

// Loading reports whether a fetch for the current navigation is in flight.
func (s *Session) Loading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}

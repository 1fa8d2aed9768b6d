package viewer

import "github.com/govardhan-06/pdf-upload-extract-system/internal/chunk"

// SelectionController tracks the single highlighted chunk. The chunk is held
// by value, not as a pointer into the loaded chunk list: the list may be
// replaced wholesale on refetch, and the selection must survive that.
type SelectionController struct {
	selected chunk.TextChunk
	active   bool
}

// Select makes c the current selection.
func (s *SelectionController) Select(c chunk.TextChunk) {
	s.selected = c
	s.active = true
}

// Clear drops any selection.
func (s *SelectionController) Clear() {
	s.selected = chunk.TextChunk{}
	s.active = false
}

// Selected returns the current selection, if any.
func (s *SelectionController) Selected() (chunk.TextChunk, bool) {
	return s.selected, s.active
}

// PageChanged handles a navigation event. A highlight belonging to a page no
// longer in view must not linger, so any selection is cleared. Scale changes
// do not come through here: zoom preserves the selection and only requires
// re-projection.
func (s *SelectionController) PageChanged(newPage int) {
	if s.active && s.selected.Page != newPage {
		s.Clear()
	}
}
